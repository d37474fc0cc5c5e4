package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/tripcraft/internal/models"
)

// ErrInvalidRange is returned when the requested date range ends before it
// starts.
var ErrInvalidRange = errors.New("date range end precedes start")

// UnresolvedDestinationError reports a submitted destination whose (kind, id)
// pair does not exist in the world store.
type UnresolvedDestinationError struct {
	Kind models.DestinationKind
	ID   int64
}

func (e *UnresolvedDestinationError) Error() string {
	return fmt.Sprintf("unresolved destination %s/%d", e.Kind, e.ID)
}

// ResolvedPlace is the world store's answer for a destination reference.
type ResolvedPlace struct {
	Name        models.Translations
	CountryISO2 string
}

// GeographyResolver looks up a geography entity by kind and id. It returns
// nil (with a nil error) when no such entity exists.
type GeographyResolver interface {
	ResolveDestination(ctx context.Context, kind models.DestinationKind, id int64) (*ResolvedPlace, error)
}

// Reconcile converts a submitted plan configuration, a date range plus a
// sparse and possibly partial set of day entries, into the canonical
// complete day sequence stored on the plan.
//
// For every calendar date from dateStart to dateEnd inclusive, in ascending
// order, the first submitted entry matching that date (in submission order)
// supplies destinations and schedule entries; dates with no entry become
// empty days. Every destination is re-resolved against the world store so
// stale or spoofed client fields are never persisted; schedule entries are
// copied verbatim.
//
// The result always has exactly dateEnd-dateStart+1 days with no gaps and no
// duplicates. Any failure aborts the whole operation; no partial sequence is
// ever returned.
func Reconcile(
	ctx context.Context,
	dateStart, dateEnd models.Date,
	submitted []models.PlanDay,
	geo GeographyResolver,
) ([]models.PlanDay, error) {
	if dateEnd.Time.Before(dateStart.Time) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, dateStart, dateEnd)
	}

	numDays := dateStart.DaysUntil(dateEnd) + 1
	days := make([]models.PlanDay, 0, numDays)

	for date := dateStart; !date.Time.After(dateEnd.Time); date = date.AddDays(1) {
		day := models.PlanDay{
			Date:         date,
			Destinations: []models.Destination{},
			Schedules:    []models.ScheduleEntry{},
		}

		if match := firstMatch(submitted, date); match != nil {
			for _, dest := range match.Destinations {
				place, err := geo.ResolveDestination(ctx, dest.Type, dest.ID)
				if err != nil {
					return nil, fmt.Errorf("failed to resolve destination %s/%d: %w", dest.Type, dest.ID, err)
				}
				if place == nil {
					return nil, &UnresolvedDestinationError{Kind: dest.Type, ID: dest.ID}
				}
				day.Destinations = append(day.Destinations, models.Destination{
					Type:        dest.Type,
					ID:          dest.ID,
					Name:        place.Name,
					CountryISO2: place.CountryISO2,
				})
			}
			day.Schedules = append(day.Schedules, match.Schedules...)
		}

		days = append(days, day)
	}

	return days, nil
}

// firstMatch returns the first submitted day entry with the given date.
// At most one entry per date is expected; when clients submit duplicates the
// first in submission order wins.
func firstMatch(submitted []models.PlanDay, date models.Date) *models.PlanDay {
	for i := range submitted {
		if submitted[i].Date.Time.Equal(date.Time) {
			return &submitted[i]
		}
	}
	return nil
}
