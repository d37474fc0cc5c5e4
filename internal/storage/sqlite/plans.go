package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripcraft/internal/models"
	"github.com/mmynk/tripcraft/internal/storage"
)

// CreatePlan persists a new plan and its owner membership in a single
// transaction: both rows are inserted, or neither.
func (s *Store) CreatePlan(ctx context.Context, plan *models.Plan, ownerID string) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if plan.CreatedAt == 0 {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now
	if plan.PublicRole == "" {
		plan.PublicRole = models.RoleViewer
	}

	config, err := json.Marshal(plan.Config)
	if err != nil {
		return fmt.Errorf("failed to encode plan config: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO plans (id, name, config, public_visibility, public_role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		plan.ID, plan.Name, string(config), plan.PublicVisibility, string(plan.PublicRole), plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO plan_users (plan_id, user_id, role, created_at) VALUES (?, ?, ?, ?)",
		plan.ID, ownerID, string(models.RoleOwner), now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	plan.Memberships = []models.Membership{
		{PlanID: plan.ID, UserID: ownerID, Role: models.RoleOwner},
	}
	return nil
}

// GetPlan retrieves a plan with memberships loaded.
func (s *Store) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	plan, err := s.scanPlanRow(s.db.QueryRowContext(ctx,
		"SELECT id, name, config, public_visibility, public_role, created_at, updated_at FROM plans WHERE id = ?",
		id,
	))
	if err != nil {
		return nil, err
	}

	plan.Memberships, err = s.planMemberships(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ListPlansByUser returns every plan the user holds a membership on, with
// memberships loaded, ordered by creation time.
func (s *Store) ListPlansByUser(ctx context.Context, userID string) ([]*models.Plan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.name, p.config, p.public_visibility, p.public_role, p.created_at, p.updated_at
		 FROM plans p
		 JOIN plan_users pu ON pu.plan_id = p.id
		 WHERE pu.user_id = ?
		 ORDER BY p.created_at, p.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		plan, err := s.scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}

	for _, plan := range plans {
		plan.Memberships, err = s.planMemberships(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
	}
	return plans, nil
}

// UpdatePlan replaces the plan document wholesale.
func (s *Store) UpdatePlan(ctx context.Context, plan *models.Plan) error {
	config, err := json.Marshal(plan.Config)
	if err != nil {
		return fmt.Errorf("failed to encode plan config: %w", err)
	}
	plan.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		"UPDATE plans SET name = ?, config = ?, public_visibility = ?, public_role = ?, updated_at = ? WHERE id = ?",
		plan.Name, string(config), plan.PublicVisibility, string(plan.PublicRole), plan.UpdatedAt, plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeletePlan removes all memberships and then the plan itself in one
// transaction.
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM plan_users WHERE plan_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanPlanRow(row rowScanner) (*models.Plan, error) {
	plan := &models.Plan{}
	var config string
	var publicRole string
	err := row.Scan(&plan.ID, &plan.Name, &config, &plan.PublicVisibility, &publicRole, &plan.CreatedAt, &plan.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}
	plan.PublicRole = models.Role(publicRole)
	if err := json.Unmarshal([]byte(config), &plan.Config); err != nil {
		return nil, fmt.Errorf("failed to decode plan config: %w", err)
	}
	return plan, nil
}

func (s *Store) planMemberships(ctx context.Context, planID string) ([]models.Membership, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT plan_id, user_id, role FROM plan_users WHERE plan_id = ? ORDER BY created_at, user_id",
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}
	defer rows.Close()

	var memberships []models.Membership
	for rows.Next() {
		var m models.Membership
		var role string
		if err := rows.Scan(&m.PlanID, &m.UserID, &role); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		m.Role = models.Role(role)
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}
	return memberships, nil
}
