package rest

import (
	"net/http"
	"strings"

	"listings-service/internal/core/domain"
	"listings-service/internal/core/port/usecases_port"
)

// FilterHandler serves the search-control derivation endpoints.
type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	getDictionariesUC  usecases_port.GetDictionariesUseCase
}

func NewFilterHandler(
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	getDictionariesUC usecases_port.GetDictionariesUseCase,
) *FilterHandler {
	return &FilterHandler{
		getFilterOptionsUC: getFilterOptionsUC,
		getDictionariesUC:  getDictionariesUC,
	}
}

// GetFilterOptions handles GET /filters/options: derived price bounds, the
// re-clamped price selection, narrowed district and layout options and the
// match count for the current filter state.
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	filters := parseSearchFilters(r)

	// The current slider selection rides in as selected_price_min/max.
	var selection *domain.PriceBounds
	selMin := floatParam(r, "selected_price_min")
	selMax := floatParam(r, "selected_price_max")
	if selMin != nil && selMax != nil {
		selection = &domain.PriceBounds{Min: *selMin, Max: *selMax}
	}

	options, err := h.getFilterOptionsUC.Execute(r.Context(), filters, selection)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, FilterOptionsResponse{
		PriceBounds:    PriceBoundsResponse{Min: options.PriceBounds.Min, Max: options.PriceBounds.Max},
		PriceSelection: PriceBoundsResponse{Min: options.PriceSelection.Min, Max: options.PriceSelection.Max},
		Districts:      optionsToResponse(options.Districts),
		Layouts:        optionsToResponse(options.Layouts),
		Count:          options.Count,
	})
}

// GetDictionaries handles GET /dictionaries. With no names parameter every
// dictionary is returned.
func (h *FilterHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	namesStr := r.URL.Query().Get("names")
	var names []string
	if namesStr != "" {
		names = strings.Split(namesStr, ",")
	}

	dictionaries, err := h.getDictionariesUC.Execute(r.Context(), names, langFromRequest(r))
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve dictionaries")
		return
	}

	response := make(DictionariesResponse, len(dictionaries))
	for key, options := range dictionaries {
		response[key] = optionsToResponse(options)
	}

	RespondWithJSON(w, http.StatusOK, response)
}
