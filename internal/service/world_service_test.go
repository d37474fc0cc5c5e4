package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mmynk/tripcraft/internal/models"
	"github.com/mmynk/tripcraft/internal/storage"
	"github.com/mmynk/tripcraft/internal/storage/sqlite"
	"github.com/mmynk/tripcraft/internal/translate"
)

func newTestWorldService(t *testing.T) *WorldService {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"), 1, 0)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	rows := []struct {
		query string
		args  []any
	}{
		{"INSERT INTO regions (id, name, translations) VALUES (?, ?, ?)",
			[]any{1, "Asia", `{"cn":"亚洲"}`}},
		{"INSERT INTO subregions (id, name, region_id, translations) VALUES (?, ?, ?, ?)",
			[]any{1, "Eastern Asia", 1, `{"chinese":"东亚"}`}},
		{`INSERT INTO countries (id, name, iso3, iso2, capital, latitude, longitude, emoji, region_id, subregion_id, translations)
		  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{1, "Japan", "JPN", "JP", "Tokyo", 36.0, 138.0, "🇯🇵", 1, 1, `{"cn":"日本"}`}},
		{"INSERT INTO states (id, name, latitude, longitude, country_id) VALUES (?, ?, ?, ?, ?)",
			[]any{1, "Tokyo", 35.68, 139.69, 1}},
		{"INSERT INTO cities (id, name, latitude, longitude, state_id, country_id) VALUES (?, ?, ?, ?, ?, ?)",
			[]any{1, "Tokyo", 35.68, 139.69, 1, 1}},
	}
	for _, r := range rows {
		if _, err := store.DB().Exec(r.query, r.args...); err != nil {
			t.Fatalf("failed to seed world row: %v", err)
		}
	}

	ts, err := translate.NewService(nil)
	if err != nil {
		t.Fatalf("failed to create translate service: %v", err)
	}
	return NewWorldService(store, ts, slog.Default())
}

func TestResolveDestination(t *testing.T) {
	svc := newTestWorldService(t)
	ctx := context.Background()

	t.Run("country", func(t *testing.T) {
		place, err := svc.ResolveDestination(ctx, models.DestinationCountry, 1)
		if err != nil {
			t.Fatalf("ResolveDestination() error = %v", err)
		}
		if place == nil || place.CountryISO2 != "JP" {
			t.Fatalf("place = %+v, want Japan", place)
		}
		if place.Name.En != "Japan" || place.Name.ZhHans != "日本" {
			t.Errorf("Name = %+v, want stored translation applied", place.Name)
		}
	})

	t.Run("state inherits country code", func(t *testing.T) {
		place, err := svc.ResolveDestination(ctx, models.DestinationState, 1)
		if err != nil {
			t.Fatalf("ResolveDestination() error = %v", err)
		}
		if place == nil || place.Name.En != "Tokyo" || place.CountryISO2 != "JP" {
			t.Errorf("place = %+v, want Tokyo/JP", place)
		}
	})

	t.Run("city inherits country code", func(t *testing.T) {
		place, err := svc.ResolveDestination(ctx, models.DestinationCity, 1)
		if err != nil {
			t.Fatalf("ResolveDestination() error = %v", err)
		}
		if place == nil || place.Name.En != "Tokyo" || place.CountryISO2 != "JP" {
			t.Errorf("place = %+v, want Tokyo/JP", place)
		}
	})

	t.Run("missing reference resolves to nil", func(t *testing.T) {
		place, err := svc.ResolveDestination(ctx, models.DestinationCity, 999)
		if err != nil {
			t.Fatalf("ResolveDestination() error = %v", err)
		}
		if place != nil {
			t.Errorf("place = %+v, want nil for missing id", place)
		}
	})

	t.Run("unknown kind resolves to nil", func(t *testing.T) {
		place, err := svc.ResolveDestination(ctx, "galaxy", 1)
		if err != nil || place != nil {
			t.Errorf("ResolveDestination() = (%+v, %v), want (nil, nil)", place, err)
		}
	})
}

func TestWorldQueries(t *testing.T) {
	svc := newTestWorldService(t)
	ctx := context.Background()

	t.Run("search wins over filter", func(t *testing.T) {
		countries, total, err := svc.Countries(ctx, "Ja", storage.WorldFilter{}, storage.Page{Index: 0, Size: 10})
		if err != nil {
			t.Fatalf("Countries() error = %v", err)
		}
		if total != 1 || len(countries) != 1 || countries[0].Name != "Japan" {
			t.Errorf("countries = %+v (total %d), want Japan", countries, total)
		}
	})

	t.Run("list with filter", func(t *testing.T) {
		regionID := int64(1)
		subRegions, err := svc.SubRegions(ctx, "", storage.WorldFilter{RegionID: &regionID})
		if err != nil {
			t.Fatalf("SubRegions() error = %v", err)
		}
		if len(subRegions) != 1 || subRegions[0].Name != "Eastern Asia" {
			t.Errorf("subRegions = %+v, want Eastern Asia", subRegions)
		}
	})
}
