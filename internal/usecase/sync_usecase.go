// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"
	"time"

	"punchsync/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncOptions tunes one sync cycle.
type SyncOptions struct {
	// ClearAfterSync erases the terminal's punch buffer once at least one
	// record has been durably written. Clearing is irreversible.
	ClearAfterSync bool
}

// DeviceSyncResult is the stable outcome shape of one device sync cycle.
// Callers render it the same way whether the cycle fully, partially or
// never succeeded.
type DeviceSyncResult struct {
	DeviceID   uuid.UUID         `json:"device_id"`
	DeviceName string            `json:"device_name"`
	Status     entity.SyncStatus `json:"status"`

	Fetched int `json:"fetched"` // Raw records pulled off the terminal.
	Synced  int `json:"synced"`  // Records durably persisted (duplicates absorbed).
	Skipped int `json:"skipped"` // Records without a usable employee mapping.

	// UnmappedIDs lists device-local user ids with no employee mapping.
	UnmappedIDs []string `json:"unmapped_ids,omitempty"`
	// ConflictingIDs lists device-local user ids claimed by more than one
	// employee; such records are skipped rather than guessed at.
	ConflictingIDs []string `json:"conflicting_ids,omitempty"`

	ErrorCount int           `json:"error_count"` // Records lost to failed write chunks.
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// FleetSyncResult aggregates a sync across every active device.
type FleetSyncResult struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []*DeviceSyncResult `json:"results"`
}

// SyncUsecase drives attendance sync cycles with per-device fault isolation.
type SyncUsecase interface {
	// SyncAll syncs every active device. One device's failure never aborts
	// the others; an empty active fleet is a success with zero records.
	SyncAll(ctx context.Context, opts SyncOptions) (*FleetSyncResult, error)

	// SyncOne syncs a single device. The returned error is non-nil only
	// when the device cannot be looked up (repository.ErrDeviceNotFound);
	// device-cycle failures are reported inside the result.
	SyncOne(ctx context.Context, deviceID uuid.UUID, opts SyncOptions) (*DeviceSyncResult, error)

	// RecentLogs lists the newest sync audit rows for operational visibility.
	RecentLogs(ctx context.Context, deviceID *uuid.UUID, limit int) ([]*entity.SyncLog, error)
}
