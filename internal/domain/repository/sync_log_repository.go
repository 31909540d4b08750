package repository

import (
	"context"

	"punchsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSyncLogNotFound is returned when the audit row to finish is missing.
var ErrSyncLogNotFound = errors.New("sync log not found")

// SyncLogFinish carries the terminal state written to an audit row.
type SyncLogFinish struct {
	Status          entity.SyncStatus
	RecordsSynced   int
	RecordsSkipped  int
	DurationSeconds float64
	ErrorMessage    string
}

// SyncLogRepository is the append-then-update-once audit store. Writes are
// best-effort telemetry: callers log failures and continue.
type SyncLogRepository interface {
	// Create inserts a row with status "started" and fills in its ID.
	Create(ctx context.Context, log *entity.SyncLog) error

	// Finish updates the same row exactly once with the final outcome.
	Finish(ctx context.Context, id uuid.UUID, finish SyncLogFinish) error

	// FindRecent lists the newest audit rows, optionally filtered by device.
	FindRecent(ctx context.Context, deviceID *uuid.UUID, limit int) ([]*entity.SyncLog, error)
}
