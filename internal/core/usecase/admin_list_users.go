package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"
	"strings"
)

// AdminListUsersUseCase serves the back-office user table with role and
// free-text narrowing over email and display name.
type AdminListUsersUseCase struct {
	users port.UserRepositoryPort
}

func NewAdminListUsersUseCase(users port.UserRepositoryPort) *AdminListUsersUseCase {
	return &AdminListUsersUseCase{users: users}
}

func (uc *AdminListUsersUseCase) Execute(ctx context.Context, filters usecases_port.UserListFilters) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "AdminListUsers",
		"role":     filters.Role,
	})
	ucLogger.Info("Use case started", nil)

	users, err := uc.users.List(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filters.Query))
	result := make([]domain.User, 0, len(users))
	for _, user := range users {
		if filters.Role != "" && user.Role != filters.Role {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(user.Email), term) &&
			!strings.Contains(strings.ToLower(user.Name), term) {
			continue
		}
		result = append(result, user)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(result)})
	return result, nil
}
