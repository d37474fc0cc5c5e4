package models

import "time"

// Role is a user's role on a plan.
type Role string

const (
	// RoleOwner is assigned to the creating user and is never reassigned.
	RoleOwner Role = "owner"
	// RoleEditor may replace the plan document.
	RoleEditor Role = "editor"
	// RoleViewer may only read the plan.
	RoleViewer Role = "viewer"
)

// Valid reports whether the role is one of the known membership roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// DestinationKind discriminates what a Destination's ID points at.
type DestinationKind string

const (
	DestinationCountry DestinationKind = "country"
	DestinationState   DestinationKind = "state"
	DestinationCity    DestinationKind = "city"
)

// Valid reports whether the kind is a known geography entity kind.
func (k DestinationKind) Valid() bool {
	switch k {
	case DestinationCountry, DestinationState, DestinationCity:
		return true
	}
	return false
}

// Plan is a shareable trip itinerary document spanning a date range.
type Plan struct {
	// ID is the unique identifier for the plan (UUID format).
	ID string

	// Name is the human-readable plan title.
	Name string

	// Config is the itinerary document. It is stored as a single JSON
	// column and replaced wholesale on update.
	Config PlanConfig

	// PublicVisibility makes the plan readable by anyone when true.
	PublicVisibility bool

	// PublicRole is the role granted to non-members when the plan is
	// public. Only RoleEditor and RoleViewer are meaningful here.
	PublicRole Role

	// Memberships are the per-user role associations for this plan.
	Memberships []Membership

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// MembershipFor returns the membership for the given user, or nil when the
// user is not a member.
func (p *Plan) MembershipFor(userID string) *Membership {
	for i := range p.Memberships {
		if p.Memberships[i].UserID == userID {
			return &p.Memberships[i]
		}
	}
	return nil
}

// Membership associates one user with one role on one plan.
type Membership struct {
	PlanID string
	UserID string
	Role   Role
}

// PlanConfig is the itinerary document owned by a plan. Details always
// covers every calendar date from DateStart to DateEnd inclusive, in
// ascending order, with no gaps and no duplicates.
type PlanConfig struct {
	DateStart Date      `json:"dateStart"`
	DateEnd   Date      `json:"dateEnd"`
	Details   []PlanDay `json:"details"`
}

// PlanDay is one calendar day's destinations and schedule entries.
type PlanDay struct {
	Date         Date            `json:"date"`
	Destinations []Destination   `json:"destinations"`
	Schedules    []ScheduleEntry `json:"schedules"`
}

// Destination references a geography entity attached to a PlanDay. Name and
// CountryISO2 are denormalized from the world store when the plan is written;
// client-submitted values are never trusted.
type Destination struct {
	Type        DestinationKind `json:"type"`
	ID          int64           `json:"id"`
	Name        Translations    `json:"name"`
	CountryISO2 string          `json:"countryIso2"`
}

// ScheduleEntry is a free-form agenda item within a day. Entries are kept in
// submission order; no overlap or ordering constraint is enforced.
type ScheduleEntry struct {
	Place     string    `json:"place"`
	TimeStart time.Time `json:"timeStart"`
	TimeEnd   time.Time `json:"timeEnd"`
}
