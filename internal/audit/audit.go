// Package audit provides recording of cycle lifecycle transition events.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Trigger values distinguish operator-initiated transitions from sweep-driven ones.
const (
	TriggerAdmin = "ADMIN"
	TriggerAuto  = "AUTO"
)

// Event represents one recorded cycle status transition.
// Matches the audit_events table schema.
type Event struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                              json:"id"`
	CycleID   string    `gorm:"column:cycle_id;type:varchar(36);not null;index:idx_audit_cycle_id" json:"cycle_id"`
	Action    string    `gorm:"column:action;type:varchar(64);not null"                            json:"action"`
	OldStatus string    `gorm:"column:old_status;type:varchar(32);not null"                        json:"old_status"`
	NewStatus string    `gorm:"column:new_status;type:varchar(32);not null"                        json:"new_status"`
	Trigger   string    `gorm:"column:triggered_by;type:varchar(16);not null"                      json:"triggered_by"`
	Actor     string    `gorm:"column:actor;type:varchar(255)"                                     json:"actor"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"          json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "audit_events"
}

// Recorder persists audit events. Consumers of the audit trail must tolerate
// duplicate AUTO events: a repeated sweep tick may re-record a transition.
type Recorder interface {
	// Record persists one transition event.
	Record(ctx context.Context, event Event) error

	// ListByCycle returns all events for a cycle, oldest first.
	ListByCycle(ctx context.Context, cycleID string) ([]Event, error)
}

type recorder struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new audit recorder instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Recorder {
	return &recorder{
		db:     db,
		logger: logger,
	}
}

// Record persists one transition event.
func (r *recorder) Record(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		r.logger.Errorw("audit event insert failed",
			"cycle_id", event.CycleID,
			"action", event.Action,
			"error", err,
		)
		return err
	}

	return nil
}

// ListByCycle returns all events for a cycle, oldest first.
func (r *recorder) ListByCycle(ctx context.Context, cycleID string) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("cycle_id = ?", cycleID).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = []Event{}
	}

	return events, nil
}
