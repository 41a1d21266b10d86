// Package repository provides data access layer for the assignment module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	assignmentModel "github.com/reviewhub/reviewcycles/internal/assignment/model"
)

// Repository defines the interface for assignment data access operations.
type Repository interface {
	// ListByCycle returns all assignments for a cycle.
	ListByCycle(ctx context.Context, cycleID string) ([]assignmentModel.Assignment, error)

	// GetByID finds an assignment by id.
	GetByID(ctx context.Context, id string) (*assignmentModel.Assignment, error)

	// ListReviewers returns all reviewers of an assignment.
	ListReviewers(ctx context.Context, assignmentID string) ([]assignmentModel.Reviewer, error)

	// ListCompletedReviewersWithResponses returns the assignment's COMPLETED
	// reviewers, each with their full rating set.
	ListCompletedReviewersWithResponses(ctx context.Context, assignmentID string) ([]assignmentModel.CompletedReviewer, error)

	// LoadQuestionCompetencyMap returns the question -> competency catalog.
	LoadQuestionCompetencyMap(ctx context.Context) (map[string]string, error)

	// LoadSubmittedSelfAssessment returns the values of an employee's SUBMITTED
	// self-assessment for a cycle; nil when none was submitted.
	LoadSubmittedSelfAssessment(ctx context.Context, employeeID, cycleID string) ([]int, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new assignment repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListByCycle returns all assignments for a cycle.
func (r *repository) ListByCycle(
	ctx context.Context,
	cycleID string,
) ([]assignmentModel.Assignment, error) {
	var assignments []assignmentModel.Assignment
	err := r.db.WithContext(ctx).
		Where("cycle_id = ?", cycleID).
		Order("employee_id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	if assignments == nil {
		assignments = []assignmentModel.Assignment{}
	}

	return assignments, nil
}

// GetByID finds an assignment by id.
func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*assignmentModel.Assignment, error) {
	var assignment assignmentModel.Assignment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assignment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assignmentModel.ErrAssignmentNotFound
		}
		return nil, err
	}

	return &assignment, nil
}

// ListReviewers returns all reviewers of an assignment.
func (r *repository) ListReviewers(
	ctx context.Context,
	assignmentID string,
) ([]assignmentModel.Reviewer, error) {
	var reviewers []assignmentModel.Reviewer
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("created_at ASC, id ASC").
		Find(&reviewers).Error
	if err != nil {
		return nil, err
	}

	if reviewers == nil {
		reviewers = []assignmentModel.Reviewer{}
	}

	return reviewers, nil
}

// ListCompletedReviewersWithResponses returns COMPLETED reviewers with ratings.
func (r *repository) ListCompletedReviewersWithResponses(
	ctx context.Context,
	assignmentID string,
) ([]assignmentModel.CompletedReviewer, error) {
	var reviewers []assignmentModel.Reviewer
	err := r.db.WithContext(ctx).
		Where("assignment_id = ? AND status = ?", assignmentID, assignmentModel.ReviewerCompleted).
		Order("created_at ASC, id ASC").
		Find(&reviewers).Error
	if err != nil {
		return nil, err
	}

	if len(reviewers) == 0 {
		return []assignmentModel.CompletedReviewer{}, nil
	}

	reviewerIDs := make([]string, 0, len(reviewers))
	for _, reviewer := range reviewers {
		reviewerIDs = append(reviewerIDs, reviewer.ID)
	}

	var responses []assignmentModel.RatingResponse
	err = r.db.WithContext(ctx).
		Where("reviewer_id IN ?", reviewerIDs).
		Order("reviewer_id ASC, question_id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}

	ratingsByReviewer := make(map[string][]assignmentModel.Rating, len(reviewers))
	for _, response := range responses {
		ratingsByReviewer[response.ReviewerID] = append(
			ratingsByReviewer[response.ReviewerID],
			assignmentModel.Rating{QuestionID: response.QuestionID, Value: response.Value},
		)
	}

	completed := make([]assignmentModel.CompletedReviewer, 0, len(reviewers))
	for _, reviewer := range reviewers {
		completed = append(completed, assignmentModel.CompletedReviewer{
			ReviewerID: reviewer.ID,
			Category:   reviewer.Category,
			Ratings:    ratingsByReviewer[reviewer.ID],
		})
	}

	return completed, nil
}

// LoadQuestionCompetencyMap returns the question -> competency catalog.
func (r *repository) LoadQuestionCompetencyMap(ctx context.Context) (map[string]string, error) {
	var questions []assignmentModel.Question
	err := r.db.WithContext(ctx).Find(&questions).Error
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]string, len(questions))
	for _, q := range questions {
		catalog[q.QuestionID] = q.CompetencyID
	}

	return catalog, nil
}

// LoadSubmittedSelfAssessment returns the values of a SUBMITTED self-assessment.
func (r *repository) LoadSubmittedSelfAssessment(
	ctx context.Context,
	employeeID, cycleID string,
) ([]int, error) {
	var selfAssessment assignmentModel.SelfAssessment
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND cycle_id = ? AND status = ?",
			employeeID, cycleID, assignmentModel.SelfAssessmentSubmitted).
		First(&selfAssessment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var ratings []assignmentModel.SelfAssessmentRating
	err = r.db.WithContext(ctx).
		Where("self_assessment_id = ?", selfAssessment.ID).
		Order("competency_id ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	values := make([]int, 0, len(ratings))
	for _, rating := range ratings {
		values = append(values, rating.Value)
	}

	return values, nil
}
