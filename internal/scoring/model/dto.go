// Package model provides data transfer objects and domain models for the scoring module.
package model

import "time"

// RunSummary reports the outcome of one scoring run over a cycle.
type RunSummary struct {
	// Calculated counts assignments for which a score row was written.
	Calculated int `json:"calculated"`
	// Skipped counts assignments with no completed reviewers (not an error;
	// nothing is written or overwritten for them).
	Skipped int `json:"skipped"`
	// Errors counts assignments whose computation or upsert failed.
	Errors int `json:"errors"`
}

// ScoreResponse is one calculated score returned by the API.
type ScoreResponse struct {
	CycleID          string           `json:"cycle_id"`
	EmployeeID       string           `json:"employee_id"`
	ColleagueScore   float64          `json:"colleague_score"`
	SelfScore        *float64         `json:"self_score,omitempty"`
	FinalLabel       string           `json:"final_label"`
	CompetencyScores CompetencyScores `json:"competency_scores"`
	CategoryScores   CategoryScores   `json:"category_scores"`
	TotalReviewers   int              `json:"total_reviewers"`
	CalculatedAt     string           `json:"calculated_at"`
}

// NewScoreResponse maps a CalculatedScore entity to its API shape.
func NewScoreResponse(s *CalculatedScore) *ScoreResponse {
	return &ScoreResponse{
		CycleID:          s.CycleID,
		EmployeeID:       s.EmployeeID,
		ColleagueScore:   s.ColleagueScore,
		SelfScore:        s.SelfScore,
		FinalLabel:       s.FinalLabel,
		CompetencyScores: s.CompetencyScores,
		CategoryScores:   s.CategoryScores,
		TotalReviewers:   s.TotalReviewers,
		CalculatedAt:     s.CalculatedAt.UTC().Format(time.RFC3339),
	}
}

// ScoresResponse wraps a list of calculated scores.
type ScoresResponse struct {
	Scores []ScoreResponse `json:"scores"`
	Total  int             `json:"total"`
}
