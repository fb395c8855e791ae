package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"
)

// SettingsHandler - public read and admin write of the site settings.
type SettingsHandler struct {
	getUC    usecases_port.GetSiteSettingsUseCase
	updateUC usecases_port.UpdateSiteSettingsUseCase
}

func NewSettingsHandler(getUC usecases_port.GetSiteSettingsUseCase, updateUC usecases_port.UpdateSiteSettingsUseCase) *SettingsHandler {
	return &SettingsHandler{getUC: getUC, updateUC: updateUC}
}

// GetSettings handles GET /settings.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.getUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load site settings")
		return
	}

	RespondWithJSON(w, http.StatusOK, settingsToDTO(settings))
}

// UpdateSettings handles PUT /admin/settings.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateSettings"})

	var req SiteSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode settings request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Update settings use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update site settings")
		return
	}

	RespondWithJSON(w, http.StatusOK, settingsToDTO(updated))
}
