// Package service implements score aggregation orchestration.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	assignmentRepository "github.com/reviewhub/reviewcycles/internal/assignment/repository"
	"github.com/reviewhub/reviewcycles/internal/clock"
	cycleModel "github.com/reviewhub/reviewcycles/internal/cycle/model"
	cycleRepository "github.com/reviewhub/reviewcycles/internal/cycle/repository"
	"github.com/reviewhub/reviewcycles/internal/scoring/calc"
	"github.com/reviewhub/reviewcycles/internal/scoring/model"
	"github.com/reviewhub/reviewcycles/internal/scoring/repository"
)

// Service defines the interface for scoring operations.
type Service interface {
	// RunForCycle computes and persists scores for every assignment in a cycle.
	// One assignment's failure never aborts the run; failures are counted in
	// the summary and the loop moves on.
	RunForCycle(ctx context.Context, cycleID string) (*model.RunSummary, error)

	// Recompute re-runs aggregation for a COMPLETED or PUBLISHED cycle.
	Recompute(ctx context.Context, cycleID string) (*model.RunSummary, error)

	// GetScore returns the calculated score for an employee in a cycle.
	GetScore(ctx context.Context, cycleID, employeeID string) (*model.ScoreResponse, error)

	// ListByCycle returns all calculated scores for a cycle.
	ListByCycle(ctx context.Context, cycleID string) (*model.ScoresResponse, error)

	// ListByEmployee returns an employee's scores across cycles, newest first.
	ListByEmployee(ctx context.Context, employeeID string) (*model.ScoresResponse, error)
}

type service struct {
	scoreRepo      repository.Repository
	assignmentRepo assignmentRepository.Repository
	cycleRepo      cycleRepository.Repository
	clock          clock.Clock
	logger         *zap.SugaredLogger
}

// New creates a new scoring service instance.
func New(
	scoreRepo repository.Repository,
	assignmentRepo assignmentRepository.Repository,
	cycleRepo cycleRepository.Repository,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		scoreRepo:      scoreRepo,
		assignmentRepo: assignmentRepo,
		cycleRepo:      cycleRepo,
		clock:          clk,
		logger:         logger,
	}
}

// RunForCycle computes and persists scores for every assignment in a cycle.
func (s *service) RunForCycle(ctx context.Context, cycleID string) (*model.RunSummary, error) {
	assignments, err := s.assignmentRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for scoring: %w", err)
	}

	catalog, err := s.assignmentRepo.LoadQuestionCompetencyMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load question catalog: %w", err)
	}

	summary := &model.RunSummary{}
	for _, assignment := range assignments {
		outcome, err := s.scoreAssignment(ctx, cycleID, assignment.ID, assignment.EmployeeID, catalog)
		if err != nil {
			summary.Errors++
			s.logger.Errorw("failed to score assignment",
				"cycle_id", cycleID,
				"assignment_id", assignment.ID,
				"employee_id", assignment.EmployeeID,
				"error", err)
			continue
		}
		if outcome == outcomeSkipped {
			summary.Skipped++
			continue
		}
		summary.Calculated++
	}

	s.logger.Infow("scoring run finished",
		"cycle_id", cycleID,
		"calculated", summary.Calculated,
		"skipped", summary.Skipped,
		"errors", summary.Errors)

	return summary, nil
}

// Recompute re-runs aggregation after verifying the cycle has finished.
func (s *service) Recompute(ctx context.Context, cycleID string) (*model.RunSummary, error) {
	cycle, err := s.cycleRepo.GetByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	if cycle.Status != cycleModel.StatusCompleted && cycle.Status != cycleModel.StatusPublished {
		return nil, model.ErrCycleNotScorable
	}

	return s.RunForCycle(ctx, cycleID)
}

type scoreOutcome int

const (
	outcomeCalculated scoreOutcome = iota
	outcomeSkipped
)

// scoreAssignment aggregates one assignment's responses and upserts the
// result. A panic in the computation is converted to an error so the caller's
// loop survives malformed data.
func (s *service) scoreAssignment(
	ctx context.Context,
	cycleID, assignmentID, employeeID string,
	catalog map[string]string,
) (outcome scoreOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while scoring assignment %s: %v", assignmentID, r)
		}
	}()

	reviewers, err := s.assignmentRepo.ListCompletedReviewersWithResponses(ctx, assignmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to load completed reviewers: %w", err)
	}

	colleagueScore, totalReviewers, ok := calc.ColleagueScore(reviewers)
	if !ok {
		// Nothing to aggregate; any previously stored score stays untouched.
		return outcomeSkipped, nil
	}

	selfValues, err := s.assignmentRepo.LoadSubmittedSelfAssessment(ctx, employeeID, cycleID)
	if err != nil {
		return 0, fmt.Errorf("failed to load self-assessment: %w", err)
	}

	score := &model.CalculatedScore{
		ID:               uuid.NewString(),
		CycleID:          cycleID,
		EmployeeID:       employeeID,
		ColleagueScore:   colleagueScore,
		SelfScore:        calc.SelfScore(selfValues),
		FinalLabel:       calc.ScoreToLabel(colleagueScore),
		CompetencyScores: calc.CompetencyScores(reviewers, catalog),
		CategoryScores:   calc.CategoryScores(reviewers),
		TotalReviewers:   totalReviewers,
		CalculatedAt:     s.clock.Now().UTC(),
	}

	if err := s.scoreRepo.Upsert(ctx, score); err != nil {
		return 0, err
	}

	return outcomeCalculated, nil
}

// GetScore returns the calculated score for an employee in a cycle.
func (s *service) GetScore(ctx context.Context, cycleID, employeeID string) (*model.ScoreResponse, error) {
	score, err := s.scoreRepo.GetScore(ctx, cycleID, employeeID)
	if err != nil {
		return nil, err
	}
	return model.NewScoreResponse(score), nil
}

// ListByCycle returns all calculated scores for a cycle.
func (s *service) ListByCycle(ctx context.Context, cycleID string) (*model.ScoresResponse, error) {
	if _, err := s.cycleRepo.GetByID(ctx, cycleID); err != nil {
		return nil, err
	}

	scores, err := s.scoreRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	return newScoresResponse(scores), nil
}

// ListByEmployee returns an employee's scores across cycles.
func (s *service) ListByEmployee(ctx context.Context, employeeID string) (*model.ScoresResponse, error) {
	scores, err := s.scoreRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return newScoresResponse(scores), nil
}

func newScoresResponse(scores []model.CalculatedScore) *model.ScoresResponse {
	responses := make([]model.ScoreResponse, 0, len(scores))
	for i := range scores {
		responses = append(responses, *model.NewScoreResponse(&scores[i]))
	}
	return &model.ScoresResponse{Scores: responses, Total: len(responses)}
}
