package repository

import (
	"context"

	"punchsync/internal/domain/entity"

	"github.com/google/uuid"
)

// PunchLogRepository is the attendance store. The table enforces a unique
// constraint on (employee_id, device_id, punched_at); that constraint, not
// application locking, is the dedup mechanism against overlapping syncs.
type PunchLogRepository interface {
	// InsertIgnoreDuplicates writes one chunk of punch logs with
	// insert-or-ignore-on-conflict semantics and returns the number of rows
	// actually inserted. Duplicates are silently absorbed.
	InsertIgnoreDuplicates(ctx context.Context, logs []*entity.PunchLog) (int64, error)

	// FindRecentByDevice returns the newest punch logs for a device.
	FindRecentByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.PunchLog, error)

	// CountByDevice returns the number of stored punch logs for a device.
	CountByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error)
}
