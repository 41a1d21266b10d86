// Package repository provides data access layer for the cycle module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	cycleModel "github.com/reviewhub/reviewcycles/internal/cycle/model"
)

// Repository defines the interface for review cycle data access operations.
type Repository interface {
	// Create persists a new review cycle.
	Create(ctx context.Context, cycle *cycleModel.ReviewCycle) error

	// GetByID finds a review cycle by id.
	GetByID(ctx context.Context, id string) (*cycleModel.ReviewCycle, error)

	// List returns all review cycles ordered by start date.
	List(ctx context.Context) ([]cycleModel.ReviewCycle, error)

	// ListByStatus returns all cycles in any of the given statuses.
	ListByStatus(ctx context.Context, statuses ...string) ([]cycleModel.ReviewCycle, error)

	// FindOverlapping returns an ACTIVE or CLOSING cycle whose [start, end) range
	// overlaps the given one, excluding excludeID; nil when none exists.
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) (*cycleModel.ReviewCycle, error)

	// TransitionStatus advances a cycle from one status to another. The update is
	// guarded on the source status, so under concurrent attempts at most one
	// caller succeeds; the others get a TransitionError.
	TransitionStatus(ctx context.Context, id, fromStatus, toStatus string) (*cycleModel.ReviewCycle, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new cycle repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new review cycle.
func (r *repository) Create(ctx context.Context, cycle *cycleModel.ReviewCycle) error {
	return r.db.WithContext(ctx).Create(cycle).Error
}

// GetByID finds a review cycle by id.
func (r *repository) GetByID(ctx context.Context, id string) (*cycleModel.ReviewCycle, error) {
	var cycle cycleModel.ReviewCycle
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cycle).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cycleModel.ErrCycleNotFound
		}
		return nil, err
	}

	return &cycle, nil
}

// List returns all review cycles ordered by start date.
func (r *repository) List(ctx context.Context) ([]cycleModel.ReviewCycle, error) {
	var cycles []cycleModel.ReviewCycle
	err := r.db.WithContext(ctx).
		Order("start_date ASC, id ASC").
		Find(&cycles).Error
	if err != nil {
		return nil, err
	}

	if cycles == nil {
		cycles = []cycleModel.ReviewCycle{}
	}

	return cycles, nil
}

// ListByStatus returns all cycles in any of the given statuses.
func (r *repository) ListByStatus(ctx context.Context, statuses ...string) ([]cycleModel.ReviewCycle, error) {
	var cycles []cycleModel.ReviewCycle
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("start_date ASC, id ASC").
		Find(&cycles).Error
	if err != nil {
		return nil, err
	}

	if cycles == nil {
		cycles = []cycleModel.ReviewCycle{}
	}

	return cycles, nil
}

// FindOverlapping returns an ACTIVE or CLOSING cycle overlapping [start, end).
// The candidates are few (at most a handful of live cycles), so the overlap
// predicate is applied in Go via ReviewCycle.Overlaps rather than duplicated
// in SQL.
func (r *repository) FindOverlapping(
	ctx context.Context,
	start, end time.Time,
	excludeID string,
) (*cycleModel.ReviewCycle, error) {
	cycles, err := r.ListByStatus(ctx, cycleModel.StatusActive, cycleModel.StatusClosing)
	if err != nil {
		return nil, err
	}

	for i := range cycles {
		cycle := &cycles[i]
		if cycle.ID == excludeID {
			continue
		}
		if cycle.Overlaps(start, end) {
			return cycle, nil
		}
	}

	return nil, nil
}

// TransitionStatus advances a cycle from one status to another.
func (r *repository) TransitionStatus(
	ctx context.Context,
	id, fromStatus, toStatus string,
) (*cycleModel.ReviewCycle, error) {
	result := r.db.WithContext(ctx).
		Model(&cycleModel.ReviewCycle{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]interface{}{
			"status":     toStatus,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the cycle is gone or another caller already moved it.
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, &cycleModel.TransitionError{
			CycleID:  id,
			Expected: fromStatus,
			Actual:   current.Status,
		}
	}

	return r.GetByID(ctx, id)
}
