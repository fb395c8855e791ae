package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"strings"
)

// GetDictionariesUseCase returns the requested reference lists, localized
// for the active language. An empty names list returns every dictionary.
// A failing dictionary is logged and skipped, never fatal.
type GetDictionariesUseCase struct {
	refs port.ReferenceDataPort
}

func NewGetDictionariesUseCase(refs port.ReferenceDataPort) *GetDictionariesUseCase {
	return &GetDictionariesUseCase{refs: refs}
}

func (uc *GetDictionariesUseCase) Execute(ctx context.Context, names []string, lang domain.Lang) (domain.Dictionaries, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDictionaries",
		"lang":     lang,
	})
	ucLogger.Info("Use case started", nil)

	requested := make(map[string]bool)
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			requested[trimmed] = true
		}
	}
	wantAll := len(requested) == 0

	result := make(domain.Dictionaries)

	if wantAll || requested["cities"] {
		cities, err := uc.refs.Cities(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting cities", err, nil)
		} else {
			result["cities"] = domain.CityOptions(cities, lang)
		}
	}

	if wantAll || requested["districts"] {
		districts, err := uc.refs.Districts(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting districts", err, nil)
		} else {
			options := make([]domain.Option, 0, len(districts))
			for _, d := range districts {
				options = append(options, domain.Option{Value: d.ID, Label: d.Name.In(lang)})
			}
			result["districts"] = options
		}
	}

	if wantAll || requested["property_types"] {
		types, err := uc.refs.PropertyTypes(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting property types", err, nil)
		} else {
			result["property_types"] = domain.PropertyTypeOptions(types, lang)
		}
	}

	if wantAll || requested["property_layouts"] {
		layouts, err := uc.refs.PropertyLayouts(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting property layouts", err, nil)
		} else {
			options := make([]domain.Option, 0, len(layouts))
			for _, l := range layouts {
				options = append(options, domain.Option{Value: l.ID, Label: l.Name.In(lang)})
			}
			result["property_layouts"] = options
		}
	}

	return result, nil
}
