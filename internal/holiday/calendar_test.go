package holiday

import (
	"testing"

	"github.com/mmynk/tripcraft/internal/models"
)

func TestCalendarHoliday(t *testing.T) {
	cal := NewCalendar()

	tests := []struct {
		name    string
		iso2    string
		date    models.Date
		wantHit bool
	}{
		{"japanese new year", "JP", models.NewDate(2024, 1, 1), true},
		{"us independence day", "US", models.NewDate(2024, 7, 4), true},
		{"lowercase country code", "jp", models.NewDate(2024, 1, 1), true},
		{"ordinary day", "JP", models.NewDate(2024, 1, 10), false},
		{"unsupported country", "XX", models.NewDate(2024, 1, 1), false},
		{"empty country", "", models.NewDate(2024, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := cal.Holiday(tt.iso2, tt.date)
			if ok != tt.wantHit {
				t.Fatalf("Holiday(%s, %s) ok = %v, want %v", tt.iso2, tt.date, ok, tt.wantHit)
			}
			if ok && name == "" {
				t.Error("holiday hit with empty name")
			}
		})
	}
}

func TestCalendarObservedHoliday(t *testing.T) {
	cal := NewCalendar()

	// July 4 2021 fell on a Sunday; the US observed it on Monday July 5.
	if _, ok := cal.Holiday("US", models.NewDate(2021, 7, 5)); !ok {
		t.Error("Holiday(US, 2021-07-05) = false, want observed holiday")
	}
}
