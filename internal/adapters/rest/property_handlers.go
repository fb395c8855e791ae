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

// PropertyHandler serves the public search, listing details and the
// owner-facing listing CRUD.
type PropertyHandler struct {
	searchUC     usecases_port.SearchPropertiesUseCase
	detailsUC    usecases_port.GetPropertyDetailsUseCase
	saveUC       usecases_port.SavePropertyUseCase
	deleteUC     usecases_port.DeletePropertyUseCase
	ownListingUC usecases_port.AdminListPropertiesUseCase
}

func NewPropertyHandler(
	searchUC usecases_port.SearchPropertiesUseCase,
	detailsUC usecases_port.GetPropertyDetailsUseCase,
	saveUC usecases_port.SavePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	ownListingUC usecases_port.AdminListPropertiesUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		searchUC:     searchUC,
		detailsUC:    detailsUC,
		saveUC:       saveUC,
		deleteUC:     deleteUC,
		ownListingUC: ownListingUC,
	}
}

// SearchProperties handles GET /properties.
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	filters := parseSearchFilters(r)

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

	result, err := h.searchUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, paginatedToResponse(result, filters.Lang))
}

// GetPropertyDetails handles GET /properties/{propertyID}. Anonymous
// visitors see only publicly visible listings; owners and admins see
// their pending and hidden ones too.
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	property, err := h.detailsUC.Execute(r.Context(), propertyID, claims)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load property")
		return
	}

	RespondWithJSON(w, http.StatusOK, propertyToResponse(property, langFromRequest(r)))
}

// CreateProperty handles POST /properties.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode property request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	property, err := h.saveUC.Execute(r.Context(), req.toDomain(), claims)
	if err != nil {
		h.writeSaveError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, propertyToResponse(property, langFromRequest(r)))
}

// UpdateProperty handles PUT /properties/{propertyID}.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode property request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property := req.toDomain()
	property.ID = propertyID

	claims := contextkeys.ClaimsFromContext(r.Context())
	updated, err := h.saveUC.Execute(r.Context(), property, claims)
	if err != nil {
		h.writeSaveError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, propertyToResponse(updated, langFromRequest(r)))
}

// DeleteProperty handles DELETE /properties/{propertyID}.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.deleteUC.Execute(r.Context(), propertyID, claims); err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrForbidden):
			WriteJSONError(w, http.StatusForbidden, "Not allowed to delete this property")
		default:
			WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyProperties handles GET /my/properties: the owner's listings in every
// status, with the same filters and sorting as the back-office table.
func (h *PropertyHandler) MyProperties(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	filters := parseSearchFilters(r)
	filters.OwnerID = claims.UserID

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

	result, err := h.ownListingUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, paginatedToResponse(result, filters.Lang))
}

func (h *PropertyHandler) writeSaveError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, "Not allowed to modify this property")
	case errors.Is(err, domain.ErrUserSuspended):
		WriteJSONError(w, http.StatusForbidden, "Account is suspended")
	case errors.Is(err, domain.ErrTrialExpired):
		WriteJSONError(w, http.StatusForbidden, "Trial period has expired")
	default:
		logger.Error("Save property use case failed with an unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save property")
	}
}
