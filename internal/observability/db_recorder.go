package observability

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// FailureEvent is the persisted form of an Event.
type FailureEvent struct {
	ID        uint `gorm:"primaryKey"`
	Source    string
	Action    string
	Message   string
	RequestID string
	CreatedAt time.Time
}

// DefaultWriteTimeout bounds one failure_events insert.
const DefaultWriteTimeout = 2 * time.Second

// DBRecorder persists events so unclassified failures can be inspected after the fact.
// Write errors are logged and swallowed.
type DBRecorder struct {
	db      *gorm.DB
	logger  *slog.Logger
	timeout time.Duration
}

func NewDBRecorder(db *gorm.DB, logger *slog.Logger) *DBRecorder {
	return &DBRecorder{db: db, logger: logger, timeout: DefaultWriteTimeout}
}

// WithTimeout sets how long a single write may take. Non-positive values keep the default.
func (r *DBRecorder) WithTimeout(d time.Duration) *DBRecorder {
	if d > 0 {
		r.timeout = d
	}
	return r
}

func (r *DBRecorder) Record(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	row := FailureEvent{
		Source:    ev.Source,
		Action:    ev.Action,
		Message:   ev.Message,
		RequestID: ev.RequestID,
		CreatedAt: ev.At,
	}
	// The request context may already be canceled when a failure is reported,
	// and the store that just failed may not answer at all.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()
	if err := r.db.WithContext(writeCtx).Create(&row).Error; err != nil && r.logger != nil {
		r.logger.Warn("failed to persist failure event", "source", ev.Source, "err", err)
	}
}
