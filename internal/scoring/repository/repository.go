// Package repository provides data access for calculated scores.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/reviewhub/reviewcycles/internal/scoring/model"
)

// Repository defines the interface for calculated score persistence.
type Repository interface {
	Upsert(ctx context.Context, score *model.CalculatedScore) error
	GetScore(ctx context.Context, cycleID, employeeID string) (*model.CalculatedScore, error)
	ListByCycle(ctx context.Context, cycleID string) ([]model.CalculatedScore, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]model.CalculatedScore, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new scoring repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert writes the score for an (employee, cycle) pair, fully replacing any
// existing row. The conflict target is the unique (cycle_id, employee_id)
// index, so reruns never duplicate and never merge.
func (r *repository) Upsert(ctx context.Context, score *model.CalculatedScore) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cycle_id"}, {Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"colleague_score",
				"self_score",
				"final_label",
				"competency_scores",
				"category_scores",
				"total_reviewers",
				"calculated_at",
			}),
		}).
		Create(score).Error
	if err != nil {
		return fmt.Errorf("failed to upsert calculated score: %w", err)
	}
	return nil
}

// GetScore retrieves the calculated score for an employee in a cycle.
func (r *repository) GetScore(ctx context.Context, cycleID, employeeID string) (*model.CalculatedScore, error) {
	var score model.CalculatedScore
	err := r.db.WithContext(ctx).
		Where("cycle_id = ? AND employee_id = ?", cycleID, employeeID).
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to get calculated score: %w", err)
	}
	return &score, nil
}

// ListByCycle retrieves all calculated scores for a cycle, ordered by employee.
func (r *repository) ListByCycle(ctx context.Context, cycleID string) ([]model.CalculatedScore, error) {
	var scores []model.CalculatedScore
	err := r.db.WithContext(ctx).
		Where("cycle_id = ?", cycleID).
		Order("employee_id ASC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scores by cycle: %w", err)
	}
	if scores == nil {
		scores = []model.CalculatedScore{}
	}
	return scores, nil
}

// ListByEmployee retrieves an employee's calculated scores across all cycles,
// newest first.
func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]model.CalculatedScore, error) {
	var scores []model.CalculatedScore
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("calculated_at DESC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scores by employee: %w", err)
	}
	if scores == nil {
		scores = []model.CalculatedScore{}
	}
	return scores, nil
}
