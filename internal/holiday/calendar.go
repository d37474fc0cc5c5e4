// Package holiday answers public-holiday lookups per country. It wraps the
// rickar/cal holiday definitions behind the narrow Source interface the plan
// package consumes.
package holiday

import (
	"strings"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/at"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/be"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/ch"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fi"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/ie"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/mx"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/nz"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/pt"
	"github.com/rickar/cal/v2/se"
	"github.com/rickar/cal/v2/us"

	"github.com/mmynk/tripcraft/internal/models"
)

// Source reports the public holiday a country observes on a date, if any.
// Implementations must be side-effect free: repeated calls with the same
// arguments return identical results.
type Source interface {
	Holiday(countryISO2 string, date models.Date) (name string, ok bool)
}

// Calendar is a Source backed by per-country holiday definitions, keyed by
// ISO-3166 alpha-2 code. Countries without definitions report no holidays.
type Calendar struct {
	byCountry map[string]*cal.Calendar
}

// NewCalendar builds a Calendar covering every country rickar/cal defines
// holidays for.
func NewCalendar() *Calendar {
	defs := map[string][]*cal.Holiday{
		"AT": at.Holidays,
		"AU": au.Holidays,
		"BE": be.Holidays,
		"CA": ca.Holidays,
		"CH": ch.Holidays,
		"DE": de.Holidays,
		"DK": dk.Holidays,
		"ES": es.Holidays,
		"FI": fi.Holidays,
		"FR": fr.Holidays,
		"GB": gb.Holidays,
		"IE": ie.Holidays,
		"IT": it.Holidays,
		"JP": jp.Holidays,
		"MX": mx.Holidays,
		"NL": nl.Holidays,
		"NO": no.Holidays,
		"NZ": nz.Holidays,
		"PL": pl.Holidays,
		"PT": pt.Holidays,
		"SE": se.Holidays,
		"US": us.Holidays,
	}

	byCountry := make(map[string]*cal.Calendar, len(defs))
	for iso2, holidays := range defs {
		c := &cal.Calendar{Name: iso2, Cacheable: true}
		c.AddHoliday(holidays...)
		byCountry[iso2] = c
	}
	return &Calendar{byCountry: byCountry}
}

// Holiday implements Source. The name returned is the holiday's name as
// defined by the calendar data; callers derive translated bundles from it.
func (c *Calendar) Holiday(countryISO2 string, date models.Date) (string, bool) {
	countryCal, ok := c.byCountry[strings.ToUpper(countryISO2)]
	if !ok {
		return "", false
	}
	actual, observed, h := countryCal.IsHoliday(date.Time)
	if (!actual && !observed) || h == nil {
		return "", false
	}
	return h.Name, true
}
