package plan

import (
	"github.com/mmynk/tripcraft/internal/holiday"
	"github.com/mmynk/tripcraft/internal/models"
)

// NameTranslator turns a holiday name into a three-language bundle.
type NameTranslator interface {
	Bundle(name string) models.Translations
}

// DeriveHolidays computes the destination-holiday annotation for one day:
// for each distinct country code among the day's destinations, the name of
// the public holiday that country observes on the day, keyed by country
// code. Countries with no holiday that day are omitted.
//
// The annotation is pure derived data, recomputed on every read and never
// persisted. The derivation is idempotent: repeated calls on the same day
// yield identical output.
func DeriveHolidays(day models.PlanDay, source holiday.Source, names NameTranslator) map[string]models.Translations {
	holidays := make(map[string]models.Translations)
	seen := make(map[string]bool)

	for _, dest := range day.Destinations {
		iso2 := dest.CountryISO2
		if iso2 == "" || seen[iso2] {
			continue
		}
		seen[iso2] = true

		name, ok := source.Holiday(iso2, day.Date)
		if !ok {
			continue
		}
		holidays[iso2] = names.Bundle(name)
	}

	return holidays
}
