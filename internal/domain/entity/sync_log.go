package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus tracks the lifecycle of one sync attempt.
type SyncStatus string

const (
	SyncStatusStarted   SyncStatus = "started"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

// SyncKindAttendance is the only sync kind the pipeline currently runs.
const SyncKindAttendance = "attendance"

// SyncLog is one audit row per sync attempt. It is created with status
// "started" and updated exactly once at the end; rows are never deleted.
type SyncLog struct {
	ID              uuid.UUID  `json:"id"`
	DeviceID        uuid.UUID  `json:"device_id"`
	Kind            string     `json:"kind"` // e.g. "attendance".
	Status          SyncStatus `json:"status"`
	RecordsSynced   int        `json:"records_synced"`
	RecordsSkipped  int        `json:"records_skipped"`
	DurationSeconds float64    `json:"duration_seconds"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
