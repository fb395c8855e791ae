package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `
	id, email, password_hash, name, role,
	is_suspended, suspended_until, suspension_reason,
	trial_expires_at, created_at`

// UserRepository - PostgreSQL implementation of UserRepositoryPort.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{pool: pool}, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Create",
		"user_id":   user.ID.String(),
		"email":     user.Email,
	})

	query := `
		INSERT INTO users (
			id, email, password_hash, name, role,
			is_suspended, suspended_until, suspension_reason,
			trial_expires_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	repoLogger.Debug("Executing query to create user.", nil)
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role,
		user.IsSuspended, user.SuspendedUntil, user.SuspensionReason,
		user.TrialExpiresAt, user.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to create user", err, nil)
		return fmt.Errorf("failed to create user: %w", err)
	}

	repoLogger.Debug("User created successfully.", nil)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Update",
		"user_id":   user.ID.String(),
	})

	query := `
		UPDATE users SET
			email = $2,
			password_hash = $3,
			name = $4,
			role = $5,
			is_suspended = $6,
			suspended_until = $7,
			suspension_reason = $8,
			trial_expires_at = $9
		WHERE id = $1`

	repoLogger.Debug("Executing query to update user.", nil)
	tag, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role,
		user.IsSuspended, user.SuspendedUntil, user.SuspensionReason,
		user.TrialExpiresAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update user", err, nil)
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		repoLogger.Warn("Update affected no rows.", nil)
		return domain.ErrUserNotFound
	}

	repoLogger.Debug("User updated successfully.", nil)
	return nil
}

// FindByEmail returns (nil, nil) when no user matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "FindByEmail",
		"email":     email,
	})

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	repoLogger.Debug("Executing query to find user by email.", nil)
	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("User not found by email.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find user by email", err, nil)
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	repoLogger.Debug("User found by email.", port.Fields{"user_id": user.ID.String()})
	return user, nil
}

// FindByID returns (nil, nil) when no user matches.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "FindByID",
		"user_id":   id.String(),
	})

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	repoLogger.Debug("Executing query to find user by ID.", nil)
	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("User not found by ID.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find user by ID", err, nil)
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "List",
	})

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query users", err, nil)
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			repoLogger.Error("Failed to scan user row", err, nil)
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	repoLogger.Debug("Users loaded.", port.Fields{"count": len(users)})
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.IsSuspended, &u.SuspendedUntil, &u.SuspensionReason,
		&u.TrialExpiresAt, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
