// Package model provides data transfer objects and domain models for the assignment module.
package model

// AssignmentResponse is one assignment with its derived completion status.
type AssignmentResponse struct {
	AssignmentID  string `json:"assignment_id"`
	EmployeeID    string `json:"employee_id"`
	CycleID       string `json:"cycle_id"`
	Status        string `json:"status"`
	ReviewerCount int    `json:"reviewer_count"`
	CompletedBy   int    `json:"completed_reviewers"`
}

// AssignmentsResponse wraps a cycle's assignment list.
type AssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}
