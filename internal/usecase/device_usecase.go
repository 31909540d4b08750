package usecase

import (
	"context"

	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/service"

	"github.com/google/uuid"
)

// DeviceProbe is the outcome of a live connectivity test against a terminal.
type DeviceProbe struct {
	Device *entity.Device      `json:"device"`
	Info   *service.DeviceInfo `json:"info"`
}

// DeviceUsecase exposes the device registry and live terminal probes.
type DeviceUsecase interface {
	// ListActiveDevices returns every device eligible for fleet sync.
	ListActiveDevices(ctx context.Context) ([]*entity.Device, error)

	// GetDevice retrieves one device by id.
	GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// TestConnection opens a short-lived session and reads the terminal's
	// identity and counters, then disconnects.
	TestConnection(ctx context.Context, id uuid.UUID) (*DeviceProbe, error)
}
