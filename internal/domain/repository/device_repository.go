// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"punchsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found in the registry.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository is the durable registry of known terminals.
type DeviceRepository interface {
	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindActiveDevices retrieves all devices with active status.
	FindActiveDevices(ctx context.Context) ([]*entity.Device, error)

	// UpdateLastConnected records the time of the last successful session.
	UpdateLastConnected(ctx context.Context, id uuid.UUID, at time.Time) error
}
