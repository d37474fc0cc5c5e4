package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/tripcraft/internal/apperr"
	"github.com/mmynk/tripcraft/internal/holiday"
	"github.com/mmynk/tripcraft/internal/models"
	"github.com/mmynk/tripcraft/internal/plan"
	"github.com/mmynk/tripcraft/internal/storage"
)

// PlanInput is a submitted plan document. Destinations inside Config are
// references only; names and country codes are resolved server-side.
type PlanInput struct {
	Name             string
	Config           models.PlanConfig
	PublicVisibility bool
	PublicRole       models.Role
}

// PlanView is a plan ready for presentation: the stored document plus the
// derived per-day holiday annotation, index-aligned with Config.Details.
type PlanView struct {
	Plan     *models.Plan
	Holidays []map[string]models.Translations
}

// PlanService implements the plan lifecycle: create, read, update, delete,
// all gated by the authorization predicates.
type PlanService struct {
	store    storage.Store
	geo      plan.GeographyResolver
	holidays holiday.Source
	names    plan.NameTranslator
	logger   *slog.Logger
}

// NewPlanService creates a new plan service.
func NewPlanService(
	store storage.Store,
	geo plan.GeographyResolver,
	holidays holiday.Source,
	names plan.NameTranslator,
	logger *slog.Logger,
) *PlanService {
	return &PlanService{
		store:    store,
		geo:      geo,
		holidays: holidays,
		names:    names,
		logger:   logger,
	}
}

// List returns every plan the user holds a membership on.
func (s *PlanService) List(ctx context.Context, userID string) ([]*PlanView, error) {
	plans, err := s.store.ListPlansByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list plans", "user_id", userID, "error", err)
		return nil, apperr.Internal("failed to list plans")
	}

	views := make([]*PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, s.view(p))
	}
	return views, nil
}

// Create reconciles the submitted document and persists a new plan with the
// caller as owner.
func (s *PlanService) Create(ctx context.Context, userID string, input PlanInput) (*PlanView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	details, err := s.reconcile(ctx, input.Config)
	if err != nil {
		return nil, err
	}

	p := &models.Plan{
		Name: input.Name,
		Config: models.PlanConfig{
			DateStart: input.Config.DateStart,
			DateEnd:   input.Config.DateEnd,
			Details:   details,
		},
		PublicVisibility: input.PublicVisibility,
		PublicRole:       input.PublicRole,
	}

	if err := s.store.CreatePlan(ctx, p, userID); err != nil {
		s.logger.Error("Failed to create plan", "user_id", userID, "error", err)
		return nil, apperr.Internal("failed to create plan")
	}

	s.logger.Info("Plan created", "plan_id", p.ID, "user_id", userID)
	return s.view(p), nil
}

// Get returns a plan when it is visible to the caller. Invisible plans are
// indistinguishable from missing ones.
func (s *PlanService) Get(ctx context.Context, planID, userID string) (*PlanView, error) {
	p, err := s.visiblePlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}
	return s.view(p), nil
}

// Update replaces the plan document wholesale after reconciling the submitted
// configuration. The caller must hold edit rights.
func (s *PlanService) Update(ctx context.Context, planID, userID string, input PlanInput) (*PlanView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p, err := s.editablePlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.reconcile(ctx, input.Config)
	if err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.Config = models.PlanConfig{
		DateStart: input.Config.DateStart,
		DateEnd:   input.Config.DateEnd,
		Details:   details,
	}
	p.PublicVisibility = input.PublicVisibility
	p.PublicRole = input.PublicRole

	if err := s.store.UpdatePlan(ctx, p); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound()
		}
		s.logger.Error("Failed to update plan", "plan_id", planID, "error", err)
		return nil, apperr.Internal("failed to update plan")
	}

	return s.view(p), nil
}

// Delete removes a plan the caller may edit and returns the caller's
// remaining plans.
func (s *PlanService) Delete(ctx context.Context, planID, userID string) ([]*PlanView, error) {
	if _, err := s.editablePlan(ctx, planID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeletePlan(ctx, planID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound()
		}
		s.logger.Error("Failed to delete plan", "plan_id", planID, "error", err)
		return nil, apperr.Internal("failed to delete plan")
	}

	s.logger.Info("Plan deleted", "plan_id", planID, "user_id", userID)
	return s.List(ctx, userID)
}

func (s *PlanService) visiblePlan(ctx context.Context, planID, userID string) (*models.Plan, error) {
	p, err := s.store.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound()
		}
		s.logger.Error("Failed to get plan", "plan_id", planID, "error", err)
		return nil, apperr.Internal("failed to get plan")
	}
	if !plan.IsVisible(p, userID) {
		return nil, apperr.NotFound()
	}
	return p, nil
}

func (s *PlanService) editablePlan(ctx context.Context, planID, userID string) (*models.Plan, error) {
	p, err := s.visiblePlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}
	if !plan.IsEditable(p, userID) {
		return nil, apperr.Forbidden()
	}
	return p, nil
}

func (s *PlanService) reconcile(ctx context.Context, cfg models.PlanConfig) ([]models.PlanDay, error) {
	details, err := plan.Reconcile(ctx, cfg.DateStart, cfg.DateEnd, cfg.Details, s.geo)
	if err != nil {
		var unresolved *plan.UnresolvedDestinationError
		switch {
		case errors.Is(err, plan.ErrInvalidRange):
			return nil, apperr.InvalidRequest(err.Error())
		case errors.As(err, &unresolved):
			return nil, apperr.InvalidRequest(unresolved.Error())
		default:
			s.logger.Error("Failed to reconcile plan config", "error", err)
			return nil, apperr.Internal("failed to reconcile plan")
		}
	}
	return details, nil
}

func (s *PlanService) view(p *models.Plan) *PlanView {
	holidays := make([]map[string]models.Translations, len(p.Config.Details))
	for i, day := range p.Config.Details {
		holidays[i] = plan.DeriveHolidays(day, s.holidays, s.names)
	}
	return &PlanView{Plan: p, Holidays: holidays}
}

func validateInput(input PlanInput) error {
	if input.Name == "" {
		return apperr.InvalidRequest("plan name is required")
	}
	if input.Config.DateStart.IsZero() || input.Config.DateEnd.IsZero() {
		return apperr.InvalidRequest("dateStart and dateEnd are required")
	}
	if input.PublicRole != "" && !input.PublicRole.Valid() {
		return apperr.InvalidRequest("invalid public role")
	}
	for _, day := range input.Config.Details {
		for _, dest := range day.Destinations {
			if !dest.Type.Valid() {
				return apperr.InvalidRequest("invalid destination type")
			}
		}
	}
	return nil
}
