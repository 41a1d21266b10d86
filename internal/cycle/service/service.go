// Package service provides business logic layer for the cycle module:
// the review-cycle lifecycle state machine and its time-driven sweep.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reviewhub/reviewcycles/internal/audit"
	"github.com/reviewhub/reviewcycles/internal/clock"
	cycleModel "github.com/reviewhub/reviewcycles/internal/cycle/model"
	"github.com/reviewhub/reviewcycles/internal/cycle/repository"
)

// Orchestrator triggers score computation for a cycle that just completed.
// The cycle service only depends on this narrow contract so lifecycle and
// scoring can be tested independently.
type Orchestrator interface {
	// RunForCycle computes and persists aggregate scores for every assignment
	// in the cycle.
	RunForCycle(ctx context.Context, cycleID string) error
}

// OrchestratorFunc adapts a plain function to the Orchestrator interface.
type OrchestratorFunc func(ctx context.Context, cycleID string) error

// RunForCycle calls f.
func (f OrchestratorFunc) RunForCycle(ctx context.Context, cycleID string) error {
	return f(ctx, cycleID)
}

// Service defines the interface for review cycle lifecycle operations.
type Service interface {
	// Create validates and persists a new DRAFT review cycle.
	Create(ctx context.Context, req *cycleModel.CreateCycleRequest) (*cycleModel.CycleResponse, error)

	// GetByID returns one review cycle.
	GetByID(ctx context.Context, id string) (*cycleModel.CycleResponse, error)

	// List returns all review cycles.
	List(ctx context.Context) ([]cycleModel.CycleResponse, error)

	// Activate moves a DRAFT cycle to ACTIVE after checking that no other
	// ACTIVE or CLOSING cycle's date range overlaps it.
	Activate(ctx context.Context, id string) (*cycleModel.CycleResponse, error)

	// Publish moves a COMPLETED cycle to PUBLISHED.
	Publish(ctx context.Context, id string) (*cycleModel.CycleResponse, error)

	// Sweep performs all due time-triggered transitions: ACTIVE cycles past
	// their end date move to CLOSING, and CLOSING cycles past their grace
	// window move to COMPLETED and get their scores computed. Every cycle is
	// processed independently; failures are logged and counted, never raised.
	Sweep(ctx context.Context) *cycleModel.SweepResult
}

type service struct {
	repo         repository.Repository
	auditor      audit.Recorder
	orchestrator Orchestrator
	clk          clock.Clock
	logger       *zap.SugaredLogger
}

// New creates a new cycle service instance.
func New(
	repo repository.Repository,
	auditor audit.Recorder,
	orchestrator Orchestrator,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:         repo,
		auditor:      auditor,
		orchestrator: orchestrator,
		clk:          clk,
		logger:       logger,
	}
}

// Create validates and persists a new DRAFT review cycle.
func (s *service) Create(
	ctx context.Context,
	req *cycleModel.CreateCycleRequest,
) (*cycleModel.CycleResponse, error) {
	if len(req.Name) == 0 || len(req.Name) > 255 {
		return nil, cycleModel.ErrInvalidCycleName
	}

	start, err := time.ParseInLocation(cycleModel.DateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, cycleModel.ErrInvalidDateRange
	}
	end, err := time.ParseInLocation(cycleModel.DateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, cycleModel.ErrInvalidDateRange
	}
	if !end.After(start) {
		return nil, cycleModel.ErrInvalidDateRange
	}

	if req.GracePeriodDays < cycleModel.MinGracePeriodDays ||
		req.GracePeriodDays > cycleModel.MaxGracePeriodDays {
		return nil, cycleModel.ErrInvalidGracePeriod
	}

	// Feature flags default to enabled when omitted.
	selfAssessment := true
	if req.SelfAssessmentEnabled != nil {
		selfAssessment = *req.SelfAssessmentEnabled
	}
	colleagueFeedback := true
	if req.ColleagueFeedbackEnabled != nil {
		colleagueFeedback = *req.ColleagueFeedbackEnabled
	}

	now := s.clk.Now()
	cycle := &cycleModel.ReviewCycle{
		ID:                       uuid.NewString(),
		Name:                     req.Name,
		StartDate:                start,
		EndDate:                  end,
		GracePeriodDays:          req.GracePeriodDays,
		Status:                   cycleModel.StatusDraft,
		SelfAssessmentEnabled:    selfAssessment,
		ColleagueFeedbackEnabled: colleagueFeedback,
		ReminderOffsets:          cycleModel.DayOffsets(req.ReminderOffsets).Normalize(),
		CreatedBy:                req.CreatedBy,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := s.repo.Create(ctx, cycle); err != nil {
		s.logger.Errorw("cycle create failed", "name", req.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("cycle created",
		"cycle_id", cycle.ID,
		"name", cycle.Name,
		"start_date", req.StartDate,
		"end_date", req.EndDate,
	)
	return cycleModel.NewCycleResponse(cycle), nil
}

// GetByID returns one review cycle.
func (s *service) GetByID(ctx context.Context, id string) (*cycleModel.CycleResponse, error) {
	cycle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cycleModel.NewCycleResponse(cycle), nil
}

// List returns all review cycles.
func (s *service) List(ctx context.Context) ([]cycleModel.CycleResponse, error) {
	cycles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]cycleModel.CycleResponse, 0, len(cycles))
	for i := range cycles {
		responses = append(responses, *cycleModel.NewCycleResponse(&cycles[i]))
	}
	return responses, nil
}

// Activate moves a DRAFT cycle to ACTIVE.
func (s *service) Activate(ctx context.Context, id string) (*cycleModel.CycleResponse, error) {
	cycle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cycle.Status != cycleModel.StatusDraft {
		return nil, &cycleModel.TransitionError{
			CycleID:  id,
			Expected: cycleModel.StatusDraft,
			Actual:   cycle.Status,
		}
	}

	overlapping, err := s.repo.FindOverlapping(ctx, cycle.StartDate, cycle.EndDate, id)
	if err != nil {
		return nil, err
	}
	if overlapping != nil {
		return nil, &cycleModel.OverlapError{
			CycleID:   overlapping.ID,
			CycleName: overlapping.Name,
		}
	}

	updated, err := s.transition(ctx, id, cycleModel.StatusDraft, cycleModel.StatusActive, audit.TriggerAdmin)
	if err != nil {
		return nil, err
	}

	return cycleModel.NewCycleResponse(updated), nil
}

// Publish moves a COMPLETED cycle to PUBLISHED.
func (s *service) Publish(ctx context.Context, id string) (*cycleModel.CycleResponse, error) {
	cycle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cycle.Status != cycleModel.StatusCompleted {
		return nil, &cycleModel.TransitionError{
			CycleID:  id,
			Expected: cycleModel.StatusCompleted,
			Actual:   cycle.Status,
		}
	}

	updated, err := s.transition(ctx, id, cycleModel.StatusCompleted, cycleModel.StatusPublished, audit.TriggerAdmin)
	if err != nil {
		return nil, err
	}

	return cycleModel.NewCycleResponse(updated), nil
}

// Sweep performs all due time-triggered transitions.
func (s *service) Sweep(ctx context.Context) *cycleModel.SweepResult {
	result := &cycleModel.SweepResult{}
	today := clock.Today(s.clk)

	s.sweepActive(ctx, today, result)
	s.sweepClosing(ctx, today, result)

	s.logger.Infow("sweep finished",
		"to_closing", result.ToClosing,
		"to_completed", result.ToCompleted,
		"errors", result.Errors,
	)
	return result
}

// sweepActive moves ACTIVE cycles whose end date has passed to CLOSING.
func (s *service) sweepActive(ctx context.Context, today time.Time, result *cycleModel.SweepResult) {
	cycles, err := s.repo.ListByStatus(ctx, cycleModel.StatusActive)
	if err != nil {
		s.logger.Errorw("sweep: listing active cycles failed", "error", err)
		result.Errors++
		return
	}

	for i := range cycles {
		cycle := &cycles[i]
		if !cycle.EndDate.Before(today) {
			continue
		}

		if _, err := s.transition(ctx, cycle.ID, cycleModel.StatusActive, cycleModel.StatusClosing, audit.TriggerAuto); err != nil {
			s.logger.Errorw("sweep: closing transition failed",
				"cycle_id", cycle.ID,
				"error", err,
			)
			result.Errors++
			continue
		}
		result.ToClosing++
	}
}

// sweepClosing moves CLOSING cycles past their grace window to COMPLETED and
// triggers score computation for each.
func (s *service) sweepClosing(ctx context.Context, today time.Time, result *cycleModel.SweepResult) {
	cycles, err := s.repo.ListByStatus(ctx, cycleModel.StatusClosing)
	if err != nil {
		s.logger.Errorw("sweep: listing closing cycles failed", "error", err)
		result.Errors++
		return
	}

	for i := range cycles {
		cycle := &cycles[i]
		if !cycle.GraceEnd().Before(today) {
			continue
		}

		if _, err := s.transition(ctx, cycle.ID, cycleModel.StatusClosing, cycleModel.StatusCompleted, audit.TriggerAuto); err != nil {
			s.logger.Errorw("sweep: completed transition failed",
				"cycle_id", cycle.ID,
				"error", err,
			)
			result.Errors++
			continue
		}
		result.ToCompleted++

		// Scoring failures do not roll back the transition; a recompute
		// request is the recovery path once the underlying fault is fixed.
		if err := s.orchestrator.RunForCycle(ctx, cycle.ID); err != nil {
			s.logger.Errorw("sweep: score run failed",
				"cycle_id", cycle.ID,
				"error", err,
			)
			result.Errors++
		}
	}
}

// transition advances the cycle status and records the audit event. An audit
// write failure is logged but does not undo an already committed transition.
func (s *service) transition(
	ctx context.Context,
	id, fromStatus, toStatus, trigger string,
) (*cycleModel.ReviewCycle, error) {
	updated, err := s.repo.TransitionStatus(ctx, id, fromStatus, toStatus)
	if err != nil {
		return nil, err
	}

	event := audit.Event{
		CycleID:   id,
		Action:    "cycle.transition",
		OldStatus: fromStatus,
		NewStatus: toStatus,
		Trigger:   trigger,
	}
	if err := s.auditor.Record(ctx, event); err != nil {
		s.logger.Warnw("audit record failed after transition",
			"cycle_id", id,
			"old_status", fromStatus,
			"new_status", toStatus,
			"error", err,
		)
	}

	s.logger.Infow("cycle status changed",
		"cycle_id", id,
		"old_status", fromStatus,
		"new_status", toStatus,
		"trigger", trigger,
	)
	return updated, nil
}
