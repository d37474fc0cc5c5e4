// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripcraft/internal/models"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// Page is a zero-based pagination window.
type Page struct {
	Index int
	Size  int
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	return p.Index * p.Size
}

// WorldFilter narrows world reference queries. Nil fields are ignored.
type WorldFilter struct {
	ID          *int64
	RegionID    *int64
	SubRegionID *int64
	CountryID   *int64
	StateID     *int64
}

// Store defines the persistence interface for TripCraft. The sqlite
// implementation is the only backend; the abstraction keeps the service
// layer independent of the engine and makes tests cheap.
//
// World reference data is immutable: it is seeded out of band (cmd/seed) and
// only ever read here.
type Store interface {
	// CreateUser persists a new user together with its credential rows in
	// one transaction.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user with credentials loaded.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail retrieves a user with credentials loaded.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreatePlan persists a new plan and its owner membership atomically:
	// both rows are inserted, or neither.
	CreatePlan(ctx context.Context, plan *models.Plan, ownerID string) error

	// GetPlan retrieves a plan with memberships loaded.
	GetPlan(ctx context.Context, id string) (*models.Plan, error)

	// ListPlansByUser returns every plan the user holds a membership on.
	ListPlansByUser(ctx context.Context, userID string) ([]*models.Plan, error)

	// UpdatePlan replaces the plan document wholesale (name, config and
	// sharing settings). Memberships are not touched.
	UpdatePlan(ctx context.Context, plan *models.Plan) error

	// DeletePlan removes all memberships and then the plan itself in one
	// transaction.
	DeletePlan(ctx context.Context, id string) error

	// World reference reads. Search* run full-text prefix queries against
	// the name index; List* apply structured filters. Paginated methods
	// also return the total row count for the filter.
	ListRegions(ctx context.Context, filter WorldFilter) ([]models.Region, error)
	SearchRegions(ctx context.Context, name string) ([]models.Region, error)
	ListSubRegions(ctx context.Context, filter WorldFilter) ([]models.SubRegion, error)
	SearchSubRegions(ctx context.Context, name string) ([]models.SubRegion, error)
	ListCountries(ctx context.Context, filter WorldFilter, page Page) ([]models.Country, int, error)
	SearchCountries(ctx context.Context, name string, page Page) ([]models.Country, int, error)
	ListStates(ctx context.Context, filter WorldFilter, page Page) ([]models.State, int, error)
	SearchStates(ctx context.Context, name string, page Page) ([]models.State, int, error)
	ListCities(ctx context.Context, filter WorldFilter, page Page) ([]models.City, int, error)
	SearchCities(ctx context.Context, name string, page Page) ([]models.City, int, error)

	// Destination resolution lookups; state and city come with their
	// country preloaded so the ISO2 code is available.
	GetCountry(ctx context.Context, id int64) (*models.Country, error)
	GetState(ctx context.Context, id int64) (*models.State, error)
	GetCity(ctx context.Context, id int64) (*models.City, error)

	// Close releases any resources held by the store.
	Close() error
}
