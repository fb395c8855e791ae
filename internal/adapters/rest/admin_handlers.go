package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler serves the back-office: property moderation and account
// management. Every route behind it requires the admin role.
type AdminHandler struct {
	listPropertiesUC usecases_port.AdminListPropertiesUseCase
	updateStatusUC   usecases_port.UpdatePropertyStatusUseCase
	featureUC        usecases_port.FeaturePropertyUseCase

	listUsersUC   usecases_port.AdminListUsersUseCase
	suspendUC     usecases_port.SuspendUserUseCase
	unsuspendUC   usecases_port.UnsuspendUserUseCase
	extendTrialUC usecases_port.ExtendTrialUseCase
	changeRoleUC  usecases_port.ChangeUserRoleUseCase
}

func NewAdminHandler(
	listPropertiesUC usecases_port.AdminListPropertiesUseCase,
	updateStatusUC usecases_port.UpdatePropertyStatusUseCase,
	featureUC usecases_port.FeaturePropertyUseCase,
	listUsersUC usecases_port.AdminListUsersUseCase,
	suspendUC usecases_port.SuspendUserUseCase,
	unsuspendUC usecases_port.UnsuspendUserUseCase,
	extendTrialUC usecases_port.ExtendTrialUseCase,
	changeRoleUC usecases_port.ChangeUserRoleUseCase,
) *AdminHandler {
	return &AdminHandler{
		listPropertiesUC: listPropertiesUC,
		updateStatusUC:   updateStatusUC,
		featureUC:        featureUC,
		listUsersUC:      listUsersUC,
		suspendUC:        suspendUC,
		unsuspendUC:      unsuspendUC,
		extendTrialUC:    extendTrialUC,
		changeRoleUC:     changeRoleUC,
	}
}

// ListProperties handles GET /admin/properties: every status, optionally
// narrowed to one owner via owner_id.
func (h *AdminHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	filters := parseSearchFilters(r)
	filters.OwnerID = uuidParam(r, "owner_id")

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid offset parameter")
		return
	}

	result, err := h.listPropertiesUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to list properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, paginatedToResponse(result, filters.Lang))
}

// UpdatePropertyStatus handles PUT /admin/properties/{propertyID}/status.
func (h *AdminHandler) UpdatePropertyStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdatePropertyStatus"})

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode status request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.updateStatusUC.Execute(r.Context(), propertyID, domain.PropertyStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		default:
			logger.Error("Update status use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update property status")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, propertyToResponse(property, langFromRequest(r)))
}

// FeatureProperty handles PUT /admin/properties/{propertyID}/feature.
func (h *AdminHandler) FeatureProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FeatureProperty"})

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req FeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode feature request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.featureUC.Execute(r.Context(), propertyID, req.Featured)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Feature property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}

	RespondWithJSON(w, http.StatusOK, propertyToResponse(property, langFromRequest(r)))
}

// ListUsers handles GET /admin/users with optional role and q narrowing.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filters := usecases_port.UserListFilters{
		Role:  domain.Role(r.URL.Query().Get("role")),
		Query: r.URL.Query().Get("q"),
	}

	users, err := h.listUsersUC.Execute(r.Context(), filters)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	response := make([]UserResponse, 0, len(users))
	for i := range users {
		response = append(response, userToResponse(&users[i]))
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// SuspendUser handles POST /admin/users/{userID}/suspend.
func (h *AdminHandler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SuspendUser"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req SuspendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode suspend request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.suspendUC.Execute(r.Context(), userID, req.Until, req.Reason)
	if err != nil {
		h.writeUserError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, userToResponse(user))
}

// UnsuspendUser handles POST /admin/users/{userID}/unsuspend.
func (h *AdminHandler) UnsuspendUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UnsuspendUser"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.unsuspendUC.Execute(r.Context(), userID)
	if err != nil {
		h.writeUserError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, userToResponse(user))
}

// ExtendTrial handles POST /admin/users/{userID}/extend-trial.
func (h *AdminHandler) ExtendTrial(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ExtendTrial"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req ExtendTrialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode extend trial request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.extendTrialUC.Execute(r.Context(), userID, req.Days)
	if err != nil {
		h.writeUserError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, userToResponse(user))
}

// ChangeUserRole handles PUT /admin/users/{userID}/role.
func (h *AdminHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ChangeUserRole"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode change role request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.changeRoleUC.Execute(r.Context(), userID, domain.Role(req.Role))
	if err != nil {
		h.writeUserError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, userToResponse(user))
}

func (h *AdminHandler) writeUserError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		WriteJSONError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, err.Error())
	default:
		logger.Error("User management use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
