package plan

import (
	"github.com/mmynk/tripcraft/internal/models"
)

// IsVisible reports whether the plan may be exposed to the requester.
// userID is empty for anonymous requests. A private plan is invisible to
// every non-member regardless of its public role. The predicate is pure and
// never fails; absence of membership is a valid input, not an error.
//
// Callers must check IsVisible before exposing any plan data so that
// unauthorized reads are indistinguishable from not-found.
func IsVisible(p *models.Plan, userID string) bool {
	if p.PublicVisibility {
		return true
	}
	if userID == "" {
		return false
	}
	return p.MembershipFor(userID) != nil
}

// IsEditable reports whether the requester may mutate the plan. Anonymous
// requesters can never edit. Members edit with the owner or editor role;
// non-members edit only when the plan is public with an editor public role.
//
// Callers must check IsEditable before accepting any mutation.
func IsEditable(p *models.Plan, userID string) bool {
	if userID == "" {
		return false
	}
	if m := p.MembershipFor(userID); m != nil {
		if m.Role == models.RoleOwner || m.Role == models.RoleEditor {
			return true
		}
	}
	return p.PublicVisibility && p.PublicRole == models.RoleEditor
}
