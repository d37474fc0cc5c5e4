package plan

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/mmynk/tripcraft/internal/models"
)

// fakeResolver resolves destinations from a fixed table.
type fakeResolver struct {
	places map[string]*ResolvedPlace
}

func (f *fakeResolver) ResolveDestination(_ context.Context, kind models.DestinationKind, id int64) (*ResolvedPlace, error) {
	return f.places[string(kind)+"/"+strconv.FormatInt(id, 10)], nil
}

func tokyoResolver() *fakeResolver {
	return &fakeResolver{places: map[string]*ResolvedPlace{
		"city/1": {
			Name:        models.Translations{En: "Tokyo", ZhHans: "东京", ZhHant: "東京"},
			CountryISO2: "JP",
		},
		"country/2": {
			Name:        models.Translations{En: "Japan", ZhHans: "日本", ZhHant: "日本"},
			CountryISO2: "JP",
		},
	}}
}

func TestReconcileFillsFullRange(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 3)

	days, err := Reconcile(context.Background(), start, end, nil, tokyoResolver())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, day := range days {
		want := start.AddDays(i)
		if !day.Date.Time.Equal(want.Time) {
			t.Errorf("day %d: date = %s, want %s", i, day.Date, want)
		}
		if len(day.Destinations) != 0 || len(day.Schedules) != 0 {
			t.Errorf("day %d: expected empty day, got %+v", i, day)
		}
	}
}

func TestReconcileRangeLengths(t *testing.T) {
	tests := []struct {
		name     string
		start    models.Date
		end      models.Date
		wantDays int
	}{
		{"single day", models.NewDate(2024, time.March, 5), models.NewDate(2024, time.March, 5), 1},
		{"week", models.NewDate(2024, time.March, 1), models.NewDate(2024, time.March, 7), 7},
		{"across month boundary", models.NewDate(2024, time.January, 30), models.NewDate(2024, time.February, 2), 4},
		{"across leap day", models.NewDate(2024, time.February, 28), models.NewDate(2024, time.March, 1), 3},
		{"across year boundary", models.NewDate(2023, time.December, 30), models.NewDate(2024, time.January, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := Reconcile(context.Background(), tt.start, tt.end, nil, tokyoResolver())
			if err != nil {
				t.Fatalf("Reconcile failed: %v", err)
			}
			if len(days) != tt.wantDays {
				t.Fatalf("expected %d days, got %d", tt.wantDays, len(days))
			}
			for i := 1; i < len(days); i++ {
				if days[i-1].Date.DaysUntil(days[i].Date) != 1 {
					t.Errorf("gap or duplicate between %s and %s", days[i-1].Date, days[i].Date)
				}
			}
		})
	}
}

func TestReconcileInvalidRange(t *testing.T) {
	start := models.NewDate(2024, time.January, 3)
	end := models.NewDate(2024, time.January, 1)

	_, err := Reconcile(context.Background(), start, end, nil, tokyoResolver())
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestReconcileResolvesDestinations(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 3)

	submitted := []models.PlanDay{
		{
			Date: models.NewDate(2024, time.January, 2),
			Destinations: []models.Destination{
				// stale client-side name and code must be overwritten
				{Type: models.DestinationCity, ID: 1, Name: models.Translations{En: "Spoofed"}, CountryISO2: "XX"},
			},
			Schedules: []models.ScheduleEntry{
				{Place: "Meiji Shrine"},
			},
		},
	}

	days, err := Reconcile(context.Background(), start, end, submitted, tokyoResolver())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if len(days[0].Destinations) != 0 || len(days[2].Destinations) != 0 {
		t.Errorf("expected unsubmitted days to be empty")
	}

	day := days[1]
	if len(day.Destinations) != 1 {
		t.Fatalf("expected 1 destination on 2024-01-02, got %d", len(day.Destinations))
	}
	dest := day.Destinations[0]
	if dest.Name.En != "Tokyo" {
		t.Errorf("destination name = %q, want %q", dest.Name.En, "Tokyo")
	}
	if dest.CountryISO2 != "JP" {
		t.Errorf("destination country = %q, want %q", dest.CountryISO2, "JP")
	}
	if len(day.Schedules) != 1 || day.Schedules[0].Place != "Meiji Shrine" {
		t.Errorf("schedules not copied verbatim: %+v", day.Schedules)
	}
}

func TestReconcileUnresolvedDestinationAborts(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 3)

	submitted := []models.PlanDay{
		{
			Date: models.NewDate(2024, time.January, 2),
			Destinations: []models.Destination{
				{Type: models.DestinationCity, ID: 999},
			},
		},
	}

	days, err := Reconcile(context.Background(), start, end, submitted, tokyoResolver())
	if days != nil {
		t.Errorf("expected no partial result, got %d days", len(days))
	}
	var unresolved *UnresolvedDestinationError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedDestinationError, got %v", err)
	}
	if unresolved.Kind != models.DestinationCity || unresolved.ID != 999 {
		t.Errorf("unexpected error detail: %+v", unresolved)
	}
}

func TestReconcileDuplicateDateFirstWins(t *testing.T) {
	start := models.NewDate(2024, time.January, 2)
	end := models.NewDate(2024, time.January, 2)

	submitted := []models.PlanDay{
		{
			Date:         models.NewDate(2024, time.January, 2),
			Destinations: []models.Destination{{Type: models.DestinationCity, ID: 1}},
		},
		{
			Date:         models.NewDate(2024, time.January, 2),
			Destinations: []models.Destination{{Type: models.DestinationCountry, ID: 2}},
		},
	}

	days, err := Reconcile(context.Background(), start, end, submitted, tokyoResolver())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(days) != 1 || len(days[0].Destinations) != 1 {
		t.Fatalf("unexpected result: %+v", days)
	}
	if days[0].Destinations[0].Type != models.DestinationCity {
		t.Errorf("expected first submitted entry to win, got %s", days[0].Destinations[0].Type)
	}
}

func TestReconcileIgnoresEntriesOutsideRange(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 2)

	submitted := []models.PlanDay{
		{
			Date:         models.NewDate(2024, time.January, 10),
			Destinations: []models.Destination{{Type: models.DestinationCity, ID: 1}},
		},
	}

	days, err := Reconcile(context.Background(), start, end, submitted, tokyoResolver())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	for _, day := range days {
		if len(day.Destinations) != 0 {
			t.Errorf("entry outside the range leaked into %s", day.Date)
		}
	}
}
