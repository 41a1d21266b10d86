// Package model provides data transfer objects and domain models for the cycle module.
package model

import "time"

// CreateCycleRequest represents the request to create a DRAFT review cycle.
type CreateCycleRequest struct {
	Name                     string `json:"name"       binding:"required"`
	StartDate                string `json:"start_date" binding:"required"`
	EndDate                  string `json:"end_date"   binding:"required"`
	GracePeriodDays          int    `json:"grace_period_days"`
	SelfAssessmentEnabled    *bool  `json:"self_assessment_enabled"`
	ColleagueFeedbackEnabled *bool  `json:"colleague_feedback_enabled"`
	ReminderOffsets          []int  `json:"reminder_offsets"`
	CreatedBy                string `json:"created_by"`
}

// CycleResponse represents a review cycle returned by the API.
type CycleResponse struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	StartDate                string `json:"start_date"`
	EndDate                  string `json:"end_date"`
	GracePeriodDays          int    `json:"grace_period_days"`
	Status                   string `json:"status"`
	SelfAssessmentEnabled    bool   `json:"self_assessment_enabled"`
	ColleagueFeedbackEnabled bool   `json:"colleague_feedback_enabled"`
	ReminderOffsets          []int  `json:"reminder_offsets"`
	CreatedBy                string `json:"created_by,omitempty"`
	CreatedAt                string `json:"created_at,omitempty"`
}

// NewCycleResponse maps a ReviewCycle entity to its API shape.
func NewCycleResponse(c *ReviewCycle) *CycleResponse {
	return &CycleResponse{
		ID:                       c.ID,
		Name:                     c.Name,
		StartDate:                c.StartDate.Format(DateLayout),
		EndDate:                  c.EndDate.Format(DateLayout),
		GracePeriodDays:          c.GracePeriodDays,
		Status:                   c.Status,
		SelfAssessmentEnabled:    c.SelfAssessmentEnabled,
		ColleagueFeedbackEnabled: c.ColleagueFeedbackEnabled,
		ReminderOffsets:          c.ReminderOffsets,
		CreatedBy:                c.CreatedBy,
		CreatedAt:                c.CreatedAt.Format(time.RFC3339),
	}
}

// DateLayout is the wire format for cycle dates.
const DateLayout = "2006-01-02"

// SweepResult reports the outcome of one lifecycle sweep tick.
type SweepResult struct {
	// ToClosing counts cycles moved ACTIVE -> CLOSING.
	ToClosing int `json:"to_closing"`
	// ToCompleted counts cycles moved CLOSING -> COMPLETED.
	ToCompleted int `json:"to_completed"`
	// Errors counts cycles whose transition or scoring run failed. Failed cycles
	// are retried naturally on the next tick.
	Errors int `json:"errors"`
}
