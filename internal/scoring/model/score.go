package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CalculatedScore is the persisted aggregate for one (employee, cycle) pair.
// Recomputation fully overwrites the row; it is never merged.
// Matches the calculated_scores table schema.
type CalculatedScore struct {
	ID               string           `gorm:"primaryKey;column:id;type:varchar(36)"                                                      json:"id"`
	CycleID          string           `gorm:"column:cycle_id;type:varchar(36);not null;uniqueIndex:idx_scores_cycle_employee"            json:"cycle_id"`
	EmployeeID       string           `gorm:"column:employee_id;type:varchar(255);not null;uniqueIndex:idx_scores_cycle_employee"        json:"employee_id"`
	ColleagueScore   float64          `gorm:"column:colleague_score;not null"                                                            json:"colleague_score"`
	SelfScore        *float64         `gorm:"column:self_score"                                                                          json:"self_score,omitempty"`
	FinalLabel       string           `gorm:"column:final_label;type:varchar(64);not null"                                               json:"final_label"`
	CompetencyScores CompetencyScores `gorm:"column:competency_scores;type:text"                                                        json:"competency_scores"`
	CategoryScores   CategoryScores   `gorm:"column:category_scores;type:text"                                                          json:"category_scores"`
	TotalReviewers   int              `gorm:"column:total_reviewers;not null"                                                            json:"total_reviewers"`
	CalculatedAt     time.Time        `gorm:"column:calculated_at;type:timestamptz;not null"                                             json:"calculated_at"`
}

// TableName specifies the table name for GORM.
func (CalculatedScore) TableName() string {
	return "calculated_scores"
}

// CompetencyScore is the aggregate for one competency: the mean of every
// individual rating in the bucket (rating-weighted).
type CompetencyScore struct {
	CompetencyID  string  `json:"competency_id"`
	Score         float64 `json:"score"`
	Label         string  `json:"label"`
	ResponseCount int     `json:"response_count"`
}

// CompetencyScores is an ordered association of competency aggregates, kept
// sorted by competency id so serialization is deterministic.
type CompetencyScores []CompetencyScore

// Value implements driver.Valuer.
func (s CompetencyScores) Value() (driver.Value, error) {
	if s == nil {
		s = CompetencyScores{}
	}
	data, err := json.Marshal([]CompetencyScore(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (s *CompetencyScores) Scan(value interface{}) error {
	return scanJSON(value, (*[]CompetencyScore)(s))
}

// CategoryScore is the aggregate for one reviewer category: the mean of the
// per-reviewer averages within the category (reviewer-weighted).
type CategoryScore struct {
	Category      string  `json:"category"`
	Score         float64 `json:"score"`
	Label         string  `json:"label"`
	ReviewerCount int     `json:"reviewer_count"`
}

// CategoryScores is an ordered association of category aggregates, kept in
// the canonical category order so serialization is deterministic.
type CategoryScores []CategoryScore

// Value implements driver.Valuer.
func (s CategoryScores) Value() (driver.Value, error) {
	if s == nil {
		s = CategoryScores{}
	}
	data, err := json.Marshal([]CategoryScore(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (s *CategoryScores) Scan(value interface{}) error {
	return scanJSON(value, (*[]CategoryScore)(s))
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported column type: %T", value)
	}
	return json.Unmarshal(data, dest)
}
