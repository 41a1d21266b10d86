// Package service provides business logic layer for the assignment module.
package service

import (
	"context"

	"go.uber.org/zap"

	assignmentModel "github.com/reviewhub/reviewcycles/internal/assignment/model"
	"github.com/reviewhub/reviewcycles/internal/assignment/repository"
)

// Service defines the interface for assignment read operations.
type Service interface {
	// ListByCycle returns a cycle's assignments with derived completion status.
	ListByCycle(ctx context.Context, cycleID string) (*assignmentModel.AssignmentsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new assignment service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListByCycle returns a cycle's assignments with derived completion status.
func (s *service) ListByCycle(
	ctx context.Context,
	cycleID string,
) (*assignmentModel.AssignmentsResponse, error) {
	assignments, err := s.repo.ListByCycle(ctx, cycleID)
	if err != nil {
		s.logger.Errorw("ListByCycle failed", "cycle_id", cycleID, "error", err)
		return nil, err
	}

	responses := make([]assignmentModel.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		reviewers, err := s.repo.ListReviewers(ctx, assignment.ID)
		if err != nil {
			s.logger.Errorw("ListReviewers failed",
				"cycle_id", cycleID,
				"assignment_id", assignment.ID,
				"error", err,
			)
			return nil, err
		}

		completed := 0
		for _, reviewer := range reviewers {
			if reviewer.Status == assignmentModel.ReviewerCompleted {
				completed++
			}
		}

		responses = append(responses, assignmentModel.AssignmentResponse{
			AssignmentID:  assignment.ID,
			EmployeeID:    assignment.EmployeeID,
			CycleID:       assignment.CycleID,
			Status:        DeriveStatus(reviewers),
			ReviewerCount: len(reviewers),
			CompletedBy:   completed,
		})
	}

	return &assignmentModel.AssignmentsResponse{
		Assignments: responses,
		Total:       len(responses),
	}, nil
}

// DeriveStatus computes an assignment's status from its reviewers: COMPLETED
// when every reviewer finished, IN_PROGRESS when any reviewer started or
// finished, PENDING otherwise (including the no-reviewer case).
func DeriveStatus(reviewers []assignmentModel.Reviewer) string {
	if len(reviewers) == 0 {
		return assignmentModel.AssignmentPending
	}

	completed := 0
	started := 0
	for _, reviewer := range reviewers {
		switch reviewer.Status {
		case assignmentModel.ReviewerCompleted:
			completed++
			started++
		case assignmentModel.ReviewerInProgress:
			started++
		}
	}

	if completed == len(reviewers) {
		return assignmentModel.AssignmentCompleted
	}
	if started > 0 {
		return assignmentModel.AssignmentInProgress
	}
	return assignmentModel.AssignmentPending
}
