package impl

import (
	"context"
	"testing"

	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/repository"
	"punchsync/internal/domain/service"
	mockRepo "punchsync/internal/mocks/repository"
	mockService "punchsync/internal/mocks/service"
	"punchsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	sessions   *mockService.MockSessionFactory
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	sessions := mockService.NewMockSessionFactory(t)
	svc := NewDeviceService(deviceRepo, sessions)

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
		sessions:   sessions,
	}
}

func TestDeviceService_ListActiveDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	devices := []*entity.Device{testDevice("lobby"), testDevice("warehouse")}

	fx.deviceRepo.EXPECT().
		FindActiveDevices(ctx).
		Return(devices, nil)

	got, err := fx.service.ListActiveDevices(ctx)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_ListActiveDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindActiveDevices(ctx).
		Return(nil, errors.New("database unavailable"))

	got, err := fx.service.ListActiveDevices(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestDeviceService_GetDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	got, err := fx.service.GetDevice(ctx, deviceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
	assert.Nil(t, got)
}

func TestDeviceService_TestConnection_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := testDevice("lobby")
	info := &service.DeviceInfo{
		SerialNumber:    "A8N5234560001",
		FirmwareVersion: "Ver 6.60",
		DeviceName:      "F18/ID",
		UserCount:       42,
		RecordCount:     1305,
		RecordCapacity:  100000,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetDeviceInfo(ctx).Return(info, nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	probe, err := fx.service.TestConnection(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, device, probe.Device)
	assert.Equal(t, info, probe.Info)
}

func TestDeviceService_TestConnection_ConnectFailure(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := testDevice("warehouse")
	connErr := &service.ConnectionError{
		Endpoint: device.Endpoint(),
		Err:      errors.New("connection refused"),
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(connErr)
	fx.sessions.EXPECT().NewSession(device).Return(session)

	probe, err := fx.service.TestConnection(ctx, device.ID)
	require.Error(t, err)
	assert.Nil(t, probe)

	var target *service.ConnectionError
	assert.True(t, errors.As(err, &target))
}
