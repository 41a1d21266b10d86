package model

import (
	"time"
)

// Assignment statuses, derived from reviewer completion.
const (
	AssignmentPending    = "PENDING"
	AssignmentInProgress = "IN_PROGRESS"
	AssignmentCompleted  = "COMPLETED"
)

// Reviewer statuses.
const (
	ReviewerPending    = "PENDING"
	ReviewerInProgress = "IN_PROGRESS"
	ReviewerCompleted  = "COMPLETED"
)

// Reviewer categories classify the reviewer's relationship to the ratee.
const (
	CategoryManager        = "MANAGER"
	CategoryPeer           = "PEER"
	CategoryDirectReport   = "DIRECT_REPORT"
	CategoryIndirectReport = "INDIRECT_REPORT"
	CategoryCrossFunc      = "CROSS_FUNCTIONAL"
	CategoryCXO            = "CXO"
)

// CategoryOrder is the canonical ordering used when category aggregates are
// serialized, keeping recomputed records byte-identical.
var CategoryOrder = []string{
	CategoryManager,
	CategoryPeer,
	CategoryDirectReport,
	CategoryIndirectReport,
	CategoryCrossFunc,
	CategoryCXO,
}

// CategoryRank returns the canonical position of a category; unknown
// categories sort last, alphabetically by their own name.
func CategoryRank(category string) int {
	for i, c := range CategoryOrder {
		if c == category {
			return i
		}
	}
	return len(CategoryOrder)
}

// Rating bounds for individual responses.
const (
	MinRating = 1
	MaxRating = 4
)

// Assignment pairs one ratee with one review cycle.
// Matches the assignments table schema.
type Assignment struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(36)"                                                       json:"id"`
	CycleID    string    `gorm:"column:cycle_id;type:varchar(36);not null;uniqueIndex:idx_assignments_cycle_employee"        json:"cycle_id"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(255);not null;uniqueIndex:idx_assignments_cycle_employee"    json:"employee_id"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                                   json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Assignment) TableName() string {
	return "assignments"
}

// Reviewer is one evaluator within one assignment.
// Matches the reviewers table schema.
type Reviewer struct {
	ID                 string     `gorm:"primaryKey;column:id;type:varchar(36)"                                           json:"id"`
	AssignmentID       string     `gorm:"column:assignment_id;type:varchar(36);not null;index:idx_reviewers_assignment"   json:"assignment_id"`
	ReviewerEmployeeID string     `gorm:"column:reviewer_employee_id;type:varchar(255);not null"                          json:"reviewer_employee_id"`
	Category           string     `gorm:"column:category;type:varchar(32);not null"                                       json:"category"`
	Status             string     `gorm:"column:status;type:varchar(32);not null;default:PENDING"                         json:"status"`
	CompletedAt        *time.Time `gorm:"column:completed_at;type:timestamptz"                                            json:"completed_at,omitempty"`
	AccessToken        string     `gorm:"column:access_token;type:varchar(64);not null"                                   json:"-"`
	CreatedAt          time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"                       json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Reviewer) TableName() string {
	return "reviewers"
}

// RatingResponse is one reviewer's integer rating for one question.
// Matches the rating_responses table schema.
type RatingResponse struct {
	ID         int64  `gorm:"primaryKey;column:id;autoIncrement"                                                       json:"id"`
	ReviewerID string `gorm:"column:reviewer_id;type:varchar(36);not null;uniqueIndex:idx_ratings_reviewer_question"   json:"reviewer_id"`
	QuestionID string `gorm:"column:question_id;type:varchar(36);not null;uniqueIndex:idx_ratings_reviewer_question"   json:"question_id"`
	Value      int    `gorm:"column:value;not null"                                                                    json:"value"`
}

// TableName specifies the table name for GORM.
func (RatingResponse) TableName() string {
	return "rating_responses"
}

// Question maps a question to its competency; the catalog itself (question
// text, ordering) is owned by an external collaborator.
type Question struct {
	QuestionID   string `gorm:"primaryKey;column:question_id;type:varchar(36)"  json:"question_id"`
	CompetencyID string `gorm:"column:competency_id;type:varchar(36);not null"  json:"competency_id"`
}

// TableName specifies the table name for GORM.
func (Question) TableName() string {
	return "questions"
}

// Self-assessment statuses. A SUBMITTED self-assessment is immutable.
const (
	SelfAssessmentDraft     = "DRAFT"
	SelfAssessmentSubmitted = "SUBMITTED"
)

// SelfAssessment is one employee's per-competency self-rating set for a cycle.
// Reference-only: it never enters the colleague aggregate.
type SelfAssessment struct {
	ID          string     `gorm:"primaryKey;column:id;type:varchar(36)"                                                           json:"id"`
	CycleID     string     `gorm:"column:cycle_id;type:varchar(36);not null;uniqueIndex:idx_self_assessments_cycle_employee"       json:"cycle_id"`
	EmployeeID  string     `gorm:"column:employee_id;type:varchar(255);not null;uniqueIndex:idx_self_assessments_cycle_employee"   json:"employee_id"`
	Status      string     `gorm:"column:status;type:varchar(32);not null;default:DRAFT"                                           json:"status"`
	SubmittedAt *time.Time `gorm:"column:submitted_at;type:timestamptz"                                                            json:"submitted_at,omitempty"`
}

// TableName specifies the table name for GORM.
func (SelfAssessment) TableName() string {
	return "self_assessments"
}

// SelfAssessmentRating is one competency rating within a self-assessment.
type SelfAssessmentRating struct {
	ID               int64  `gorm:"primaryKey;column:id;autoIncrement"                        json:"id"`
	SelfAssessmentID string `gorm:"column:self_assessment_id;type:varchar(36);not null;index" json:"self_assessment_id"`
	CompetencyID     string `gorm:"column:competency_id;type:varchar(36);not null"           json:"competency_id"`
	Value            int    `gorm:"column:value;not null"                                    json:"value"`
}

// TableName specifies the table name for GORM.
func (SelfAssessmentRating) TableName() string {
	return "self_assessment_ratings"
}

// Rating is one (question, value) pair carried by a completed reviewer.
type Rating struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}

// CompletedReviewer is the scoring view of a reviewer who finished their
// review: identity, category and the full rating set.
type CompletedReviewer struct {
	ReviewerID string   `json:"reviewer_id"`
	Category   string   `json:"category"`
	Ratings    []Rating `json:"ratings"`
}
