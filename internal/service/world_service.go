package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/tripcraft/internal/models"
	"github.com/mmynk/tripcraft/internal/plan"
	"github.com/mmynk/tripcraft/internal/storage"
	"github.com/mmynk/tripcraft/internal/translate"
)

// WorldService answers world reference queries and resolves destination
// references for the plan service. It also implements plan.GeographyResolver.
type WorldService struct {
	store     storage.Store
	translate *translate.Service
	logger    *slog.Logger
}

// NewWorldService creates a new world reference service.
func NewWorldService(store storage.Store, ts *translate.Service, logger *slog.Logger) *WorldService {
	return &WorldService{store: store, translate: ts, logger: logger}
}

// Regions returns regions matching the name prefix or the structured filter.
// A non-empty name runs a full-text prefix search and ignores the filter.
func (s *WorldService) Regions(ctx context.Context, name string, filter storage.WorldFilter) ([]models.Region, error) {
	if name != "" {
		return s.store.SearchRegions(ctx, name)
	}
	return s.store.ListRegions(ctx, filter)
}

// SubRegions returns sub-regions matching the name prefix or the filter.
func (s *WorldService) SubRegions(ctx context.Context, name string, filter storage.WorldFilter) ([]models.SubRegion, error) {
	if name != "" {
		return s.store.SearchSubRegions(ctx, name)
	}
	return s.store.ListSubRegions(ctx, filter)
}

// Countries returns one page of countries plus the total match count.
func (s *WorldService) Countries(ctx context.Context, name string, filter storage.WorldFilter, page storage.Page) ([]models.Country, int, error) {
	if name != "" {
		return s.store.SearchCountries(ctx, name, page)
	}
	return s.store.ListCountries(ctx, filter, page)
}

// States returns one page of states plus the total match count.
func (s *WorldService) States(ctx context.Context, name string, filter storage.WorldFilter, page storage.Page) ([]models.State, int, error) {
	if name != "" {
		return s.store.SearchStates(ctx, name, page)
	}
	return s.store.ListStates(ctx, filter, page)
}

// Cities returns one page of cities plus the total match count.
func (s *WorldService) Cities(ctx context.Context, name string, filter storage.WorldFilter, page storage.Page) ([]models.City, int, error) {
	if name != "" {
		return s.store.SearchCities(ctx, name, page)
	}
	return s.store.ListCities(ctx, filter, page)
}

// ResolveDestination looks up a destination reference and returns its
// translated name bundle and country code. It returns nil with a nil error
// when the reference does not exist, so callers can distinguish a stale
// reference from a store failure.
func (s *WorldService) ResolveDestination(ctx context.Context, kind models.DestinationKind, id int64) (*plan.ResolvedPlace, error) {
	switch kind {
	case models.DestinationCountry:
		country, err := s.store.GetCountry(ctx, id)
		if err != nil {
			return nil, notFoundAsNil(err, "country", id)
		}
		return &plan.ResolvedPlace{
			Name:        s.translate.StoredBundle(country.Name, country.RawTranslations, translate.KeyCN),
			CountryISO2: country.ISO2,
		}, nil

	case models.DestinationState:
		state, err := s.store.GetState(ctx, id)
		if err != nil {
			return nil, notFoundAsNil(err, "state", id)
		}
		place := &plan.ResolvedPlace{Name: s.translate.Bundle(state.Name)}
		if state.Country != nil {
			place.CountryISO2 = state.Country.ISO2
		}
		return place, nil

	case models.DestinationCity:
		city, err := s.store.GetCity(ctx, id)
		if err != nil {
			return nil, notFoundAsNil(err, "city", id)
		}
		place := &plan.ResolvedPlace{Name: s.translate.Bundle(city.Name)}
		if city.Country != nil {
			place.CountryISO2 = city.Country.ISO2
		}
		return place, nil
	}

	// Unknown kinds resolve to nothing rather than failing the store.
	return nil, nil
}

// notFoundAsNil maps storage.ErrNotFound to a nil error so the caller's
// (nil, nil) contract holds; other failures are wrapped.
func notFoundAsNil(err error, kind string, id int64) error {
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("failed to look up %s %d: %w", kind, id, err)
}
