package impl

import (
	"context"
	"fmt"

	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/repository"
	"punchsync/internal/domain/service"
	"punchsync/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	sessions   service.SessionFactory
}

// NewDeviceService creates the device registry/probe service.
func NewDeviceService(deviceRepo repository.DeviceRepository, sessions service.SessionFactory) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		sessions:   sessions,
	}
}

// ListActiveDevices returns every device eligible for fleet sync.
func (s *deviceService) ListActiveDevices(ctx context.Context) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find active devices: %w", err)
	}

	return devices, nil
}

// GetDevice retrieves one device by id.
func (s *deviceService) GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return device, nil
}

// TestConnection opens a short-lived session, reads the terminal's
// identity and counters, then disconnects.
func (s *deviceService) TestConnection(ctx context.Context, id uuid.UUID) (*usecase.DeviceProbe, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session := s.sessions.NewSession(device)
	if err := session.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to device: %w", err)
	}
	defer session.Disconnect(ctx)

	info, err := session.GetDeviceInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read device info: %w", err)
	}

	return &usecase.DeviceProbe{Device: device, Info: info}, nil
}
