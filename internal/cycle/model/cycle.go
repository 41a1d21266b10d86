package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Review cycle statuses. A cycle only ever advances forward along
// DRAFT -> ACTIVE -> CLOSING -> COMPLETED -> PUBLISHED.
const (
	StatusDraft     = "DRAFT"
	StatusActive    = "ACTIVE"
	StatusClosing   = "CLOSING"
	StatusCompleted = "COMPLETED"
	StatusPublished = "PUBLISHED"
)

// Grace period bounds in days.
const (
	MinGracePeriodDays = 0
	MaxGracePeriodDays = 7
)

// ReviewCycle represents a review period entity in the system.
// Matches the review_cycles table schema.
type ReviewCycle struct {
	ID                       string     `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	Name                     string     `gorm:"column:name;type:varchar(255);not null"                     json:"name"`
	StartDate                time.Time  `gorm:"column:start_date;type:date;not null"                       json:"start_date"`
	EndDate                  time.Time  `gorm:"column:end_date;type:date;not null"                         json:"end_date"`
	GracePeriodDays          int        `gorm:"column:grace_period_days;not null;default:0"                json:"grace_period_days"`
	Status                   string     `gorm:"column:status;type:varchar(32);not null;index:idx_cycles_status" json:"status"`
	SelfAssessmentEnabled    bool       `gorm:"column:self_assessment_enabled;not null;default:true"       json:"self_assessment_enabled"`
	ColleagueFeedbackEnabled bool       `gorm:"column:colleague_feedback_enabled;not null;default:true"    json:"colleague_feedback_enabled"`
	ReminderOffsets          DayOffsets `gorm:"column:reminder_offsets;type:text"                          json:"reminder_offsets"`
	CreatedBy                string     `gorm:"column:created_by;type:varchar(255)"                        json:"created_by"`
	CreatedAt                time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"created_at"`
	UpdatedAt                time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"  json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ReviewCycle) TableName() string {
	return "review_cycles"
}

// Overlaps reports whether the cycle's [start, end) range overlaps another's.
// Adjacent ranges (one ends exactly where the other starts) do not overlap.
func (c *ReviewCycle) Overlaps(start, end time.Time) bool {
	return c.StartDate.Before(end) && c.EndDate.After(start)
}

// GraceEnd returns the last date of the grace window following EndDate.
func (c *ReviewCycle) GraceEnd() time.Time {
	return c.EndDate.AddDate(0, 0, c.GracePeriodDays)
}

// DayOffsets is an ordered set of reminder day counts, stored as a JSON array.
// Normalized form is ascending and deduplicated so storage is deterministic.
type DayOffsets []int

// Normalize returns the offsets sorted ascending with duplicates removed.
func (o DayOffsets) Normalize() DayOffsets {
	if len(o) == 0 {
		return DayOffsets{}
	}
	seen := make(map[int]bool, len(o))
	out := make(DayOffsets, 0, len(o))
	for _, d := range o {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

// Value implements driver.Valuer, serializing offsets as a JSON array.
func (o DayOffsets) Value() (driver.Value, error) {
	if o == nil {
		o = DayOffsets{}
	}
	data, err := json.Marshal([]int(o))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (o *DayOffsets) Scan(value interface{}) error {
	if value == nil {
		*o = DayOffsets{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for DayOffsets: %T", value)
	}
	return json.Unmarshal(data, (*[]int)(o))
}
