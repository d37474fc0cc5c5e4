package plan

import (
	"testing"

	"github.com/mmynk/tripcraft/internal/models"
)

func planWith(public bool, publicRole models.Role, memberships ...models.Membership) *models.Plan {
	return &models.Plan{
		ID:               "plan-1",
		Name:             "Test Trip",
		PublicVisibility: public,
		PublicRole:       publicRole,
		Memberships:      memberships,
	}
}

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name   string
		plan   *models.Plan
		userID string
		want   bool
	}{
		{
			name:   "anonymous on public plan",
			plan:   planWith(true, models.RoleViewer),
			userID: "",
			want:   true,
		},
		{
			name:   "anonymous on private plan",
			plan:   planWith(false, models.RoleViewer),
			userID: "",
			want:   false,
		},
		{
			name:   "non-member on private plan with editor public role",
			plan:   planWith(false, models.RoleEditor),
			userID: "stranger",
			want:   false,
		},
		{
			name:   "viewer member on private plan",
			plan:   planWith(false, models.RoleViewer, models.Membership{UserID: "u1", Role: models.RoleViewer}),
			userID: "u1",
			want:   true,
		},
		{
			name:   "owner on private plan",
			plan:   planWith(false, models.RoleViewer, models.Membership{UserID: "u1", Role: models.RoleOwner}),
			userID: "u1",
			want:   true,
		},
		{
			name:   "non-member on public plan",
			plan:   planWith(true, models.RoleViewer),
			userID: "stranger",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVisible(tt.plan, tt.userID); got != tt.want {
				t.Errorf("IsVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsEditable(t *testing.T) {
	tests := []struct {
		name   string
		plan   *models.Plan
		userID string
		want   bool
	}{
		{
			name:   "anonymous is never editable",
			plan:   planWith(true, models.RoleEditor),
			userID: "",
			want:   false,
		},
		{
			name:   "owner member",
			plan:   planWith(false, models.RoleViewer, models.Membership{UserID: "u1", Role: models.RoleOwner}),
			userID: "u1",
			want:   true,
		},
		{
			name:   "editor member",
			plan:   planWith(false, models.RoleViewer, models.Membership{UserID: "u1", Role: models.RoleEditor}),
			userID: "u1",
			want:   true,
		},
		{
			name:   "viewer member on private plan",
			plan:   planWith(false, models.RoleViewer, models.Membership{UserID: "u1", Role: models.RoleViewer}),
			userID: "u1",
			want:   false,
		},
		{
			name:   "non-member on public plan with editor public role",
			plan:   planWith(true, models.RoleEditor),
			userID: "stranger",
			want:   true,
		},
		{
			name:   "non-member on public plan with viewer public role",
			plan:   planWith(true, models.RoleViewer),
			userID: "stranger",
			want:   false,
		},
		{
			name:   "viewer member on public editor plan gets public role",
			plan:   planWith(true, models.RoleEditor, models.Membership{UserID: "u1", Role: models.RoleViewer}),
			userID: "u1",
			want:   true,
		},
		{
			name:   "non-member on private plan with editor public role",
			plan:   planWith(false, models.RoleEditor),
			userID: "stranger",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEditable(tt.plan, tt.userID); got != tt.want {
				t.Errorf("IsEditable() = %v, want %v", got, tt.want)
			}
		})
	}
}
