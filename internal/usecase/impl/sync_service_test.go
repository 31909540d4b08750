package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"punchsync/config"
	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/repository"
	"punchsync/internal/domain/service"
	mockRepo "punchsync/internal/mocks/repository"
	mockService "punchsync/internal/mocks/service"
	"punchsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service     usecase.SyncUsecase
	deviceRepo  *mockRepo.MockDeviceRepository
	mappingRepo *mockRepo.MockEmployeeMappingRepository
	punchRepo   *mockRepo.MockPunchLogRepository
	syncLogRepo *mockRepo.MockSyncLogRepository
	sessions    *mockService.MockSessionFactory
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	mappingRepo := mockRepo.NewMockEmployeeMappingRepository(t)
	punchRepo := mockRepo.NewMockPunchLogRepository(t)
	syncLogRepo := mockRepo.NewMockSyncLogRepository(t)
	sessions := mockService.NewMockSessionFactory(t)

	cfg := &config.Config{
		Sync: config.SyncConfig{
			Offset:    "+05:30",
			BatchSize: 500,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSyncService(cfg, logger, deviceRepo, mappingRepo, punchRepo, syncLogRepo, sessions)

	return syncServiceFixtures{
		service:     svc,
		deviceRepo:  deviceRepo,
		mappingRepo: mappingRepo,
		punchRepo:   punchRepo,
		syncLogRepo: syncLogRepo,
		sessions:    sessions,
	}
}

func testDevice(name string) *entity.Device {
	return &entity.Device{
		ID:       uuid.New(),
		Name:     name,
		Address:  "192.168.1.201",
		Port:     4370,
		IsActive: true,
	}
}

// expectAudit wires the started/finished audit row pair for one device cycle.
func expectAudit(fx syncServiceFixtures, ctx context.Context) {
	auditID := uuid.New()
	fx.syncLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SyncLog")).
		Run(func(_ context.Context, log *entity.SyncLog) {
			log.ID = auditID
		}).
		Return(nil).
		Once()

	fx.syncLogRepo.EXPECT().
		Finish(ctx, auditID, mock.AnythingOfType("repository.SyncLogFinish")).
		Return(nil).
		Once()
}

func makeRecords(userID string, count int) []service.AttendanceRecord {
	base := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	records := make([]service.AttendanceRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, service.AttendanceRecord{
			UserID:     userID,
			RecordID:   uint32(i + 1),
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
			StateCode:  i % 2,
			VerifyCode: 1,
		})
	}

	return records
}

func TestSyncService_SyncOne_Success(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("lobby")
	employeeID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	expectAudit(fx, ctx)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(makeRecords("101", 3), nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: employeeID, DeviceID: device.ID, DeviceUserID: "101"},
		}, nil)

	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Run(func(_ context.Context, logs []*entity.PunchLog) {
			require.Len(t, logs, 3)
			for _, log := range logs {
				assert.Equal(t, employeeID, log.EmployeeID)
				assert.Equal(t, device.ID, log.DeviceID)
			}
		}).
		Return(int64(3), nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusCompleted, result.Status)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 3, result.Synced)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestSyncService_SyncOne_DeviceNotFound(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	result, err := fx.service.SyncOne(ctx, deviceID, usecase.SyncOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
	assert.Nil(t, result)
}

func TestSyncService_SyncOne_ConnectFailure(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("warehouse")

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	auditID := uuid.New()
	fx.syncLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SyncLog")).
		Run(func(_ context.Context, log *entity.SyncLog) {
			log.ID = auditID
		}).
		Return(nil)

	fx.syncLogRepo.EXPECT().
		Finish(ctx, auditID, mock.MatchedBy(func(finish repository.SyncLogFinish) bool {
			return finish.Status == entity.SyncStatusFailed && finish.ErrorMessage != ""
		})).
		Return(nil)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(&service.ConnectionError{
		Endpoint: device.Endpoint(),
		Err:      errors.New("connection refused"),
	})
	fx.sessions.EXPECT().NewSession(device).Return(session)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusFailed, result.Status)
	assert.Contains(t, result.Error, "connection refused")
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 0, result.Synced)
}

func TestSyncService_SyncOne_UnmappedRecordsSkipped(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("lobby")
	employeeID := uuid.New()

	records := append(makeRecords("101", 2), makeRecords("999", 3)...)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	expectAudit(fx, ctx)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(records, nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: employeeID, DeviceID: device.ID, DeviceUserID: "101"},
		}, nil)

	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Return(int64(2), nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusCompleted, result.Status)
	assert.Equal(t, 5, result.Fetched)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, result.Fetched, result.Synced+result.Skipped)
	assert.Equal(t, []string{"999"}, result.UnmappedIDs)
}

func TestSyncService_SyncOne_ConflictingMappingsSkipped(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("lobby")

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	expectAudit(fx, ctx)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(makeRecords("101", 4), nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	// Two employees claim the same device-local id; guessing would
	// attribute punches to the wrong person.
	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: uuid.New(), DeviceID: device.ID, DeviceUserID: "101"},
			{EmployeeID: uuid.New(), DeviceID: device.ID, DeviceUserID: "101"},
		}, nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusCompleted, result.Status)
	assert.Equal(t, 4, result.Fetched)
	assert.Equal(t, 0, result.Synced)
	assert.Equal(t, 4, result.Skipped)
	assert.Equal(t, []string{"101"}, result.ConflictingIDs)
}

func TestSyncService_SyncOne_ChunkFailureIsolated(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("factory")
	employeeID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	expectAudit(fx, ctx)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(makeRecords("101", 1200), nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: employeeID, DeviceID: device.ID, DeviceUserID: "101"},
		}, nil)

	// 1200 records with a batch size of 500 yields chunks of 500/500/200;
	// the middle chunk fails.
	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Return(int64(500), nil).
		Once()
	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Return(int64(0), errors.New("deadlock detected")).
		Once()
	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Return(int64(200), nil).
		Once()

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusCompleted, result.Status)
	assert.Equal(t, 1200, result.Fetched)
	assert.Equal(t, 700, result.Synced)
	assert.Equal(t, 500, result.ErrorCount)
}

func TestSyncService_SyncOne_ClearAfterSync(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("lobby")
	employeeID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	expectAudit(fx, ctx)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(makeRecords("101", 2), nil)
	session.EXPECT().ClearAttendanceLogs(ctx).Return(nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: employeeID, DeviceID: device.ID, DeviceUserID: "101"},
		}, nil)

	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Return(int64(2), nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{ClearAfterSync: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
}

func TestSyncService_SyncOne_ClearSkippedWhenNothingPersisted(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("lobby")

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	expectAudit(fx, ctx)

	// Every record is unmapped, so nothing is persisted and the device
	// buffer must stay intact: ClearAttendanceLogs is never called.
	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(makeRecords("999", 3), nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{}, nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{ClearAfterSync: true})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Synced)
	assert.Equal(t, 3, result.Skipped)
}

func TestSyncService_SyncOne_TimestampKeepsWallClock(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("lobby")
	employeeID := uuid.New()

	deviceTime := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	records := []service.AttendanceRecord{{
		UserID:     "101",
		RecordID:   1,
		Timestamp:  deviceTime,
		StateCode:  0,
		VerifyCode: 1,
	}}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	expectAudit(fx, ctx)

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(records, nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: employeeID, DeviceID: device.ID, DeviceUserID: "101"},
		}, nil)

	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Run(func(_ context.Context, logs []*entity.PunchLog) {
			require.Len(t, logs, 1)
			// The terminal reported 09:30 local; the stored timestamp must
			// still read 09:30 in the configured +05:30 zone.
			assert.Equal(t, "2025-01-15T09:30:00+05:30", logs[0].PunchedAt.Format(time.RFC3339))
			assert.Equal(t, entity.PunchTypeIn, logs[0].PunchType)
			assert.Equal(t, "fingerprint", logs[0].VerifyMethod)
		}).
		Return(int64(1), nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	_, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{})
	require.NoError(t, err)
}

func TestSyncService_SyncAll_FaultIsolation(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	deviceA := testDevice("broken")
	deviceB := testDevice("healthy")
	employeeID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevices(ctx).
		Return([]*entity.Device{deviceA, deviceB}, nil)

	// Audit rows for both cycles.
	fx.syncLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SyncLog")).
		Run(func(_ context.Context, log *entity.SyncLog) {
			log.ID = uuid.New()
		}).
		Return(nil).
		Times(2)
	fx.syncLogRepo.EXPECT().
		Finish(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("repository.SyncLogFinish")).
		Return(nil).
		Times(2)

	sessionA := mockService.NewMockDeviceSession(t)
	sessionA.EXPECT().Connect(ctx).Return(&service.ConnectionError{
		Endpoint: deviceA.Endpoint(),
		Err:      errors.New("i/o timeout"),
	})

	sessionB := mockService.NewMockDeviceSession(t)
	sessionB.EXPECT().Connect(ctx).Return(nil)
	sessionB.EXPECT().GetAttendanceLogs(ctx).Return(makeRecords("101", 2), nil)
	sessionB.EXPECT().Disconnect(ctx).Return()

	fx.sessions.EXPECT().NewSession(deviceA).Return(sessionA)
	fx.sessions.EXPECT().NewSession(deviceB).Return(sessionB)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, deviceB.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: employeeID, DeviceID: deviceB.ID, DeviceUserID: "101"},
		}, nil)

	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Return(int64(2), nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, deviceB.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	fleet, err := fx.service.SyncAll(ctx, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, fleet.Total)
	assert.Equal(t, 1, fleet.Succeeded)
	assert.Equal(t, 1, fleet.Failed)
	require.Len(t, fleet.Results, 2)
	assert.Equal(t, entity.SyncStatusFailed, fleet.Results[0].Status)
	assert.Equal(t, entity.SyncStatusCompleted, fleet.Results[1].Status)
	assert.Equal(t, 2, fleet.Results[1].Synced)
}

func TestSyncService_SyncAll_EmptyFleet(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindActiveDevices(ctx).
		Return([]*entity.Device{}, nil)

	fleet, err := fx.service.SyncAll(ctx, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, fleet.Total)
	assert.Equal(t, 0, fleet.Succeeded)
	assert.Equal(t, 0, fleet.Failed)
	assert.Empty(t, fleet.Results)
}

func TestSyncService_SyncAll_DeviceListFailure(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindActiveDevices(ctx).
		Return(nil, errors.New("database unavailable"))

	fleet, err := fx.service.SyncAll(ctx, usecase.SyncOptions{})
	require.Error(t, err)
	assert.Nil(t, fleet)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestSyncService_SyncOne_AuditFailureDoesNotAbort(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := testDevice("lobby")
	employeeID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	// Audit row creation fails; the cycle must still run, and Finish is
	// never attempted for a row that was never created.
	fx.syncLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SyncLog")).
		Return(errors.New("audit table locked"))

	session := mockService.NewMockDeviceSession(t)
	session.EXPECT().Connect(ctx).Return(nil)
	session.EXPECT().GetAttendanceLogs(ctx).Return(makeRecords("101", 1), nil)
	session.EXPECT().Disconnect(ctx).Return()
	fx.sessions.EXPECT().NewSession(device).Return(session)

	fx.mappingRepo.EXPECT().
		FindMappingsByDevice(ctx, device.ID).
		Return([]*entity.EmployeeDeviceMapping{
			{EmployeeID: employeeID, DeviceID: device.ID, DeviceUserID: "101"},
		}, nil)

	fx.punchRepo.EXPECT().
		InsertIgnoreDuplicates(ctx, mock.AnythingOfType("[]*entity.PunchLog")).
		Return(int64(1), nil)

	fx.deviceRepo.EXPECT().
		UpdateLastConnected(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := fx.service.SyncOne(ctx, device.ID, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusCompleted, result.Status)
	assert.Equal(t, 1, result.Synced)
}

func TestSyncService_RecentLogs(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	expected := []*entity.SyncLog{
		{ID: uuid.New(), DeviceID: deviceID, Kind: entity.SyncKindAttendance, Status: entity.SyncStatusCompleted},
	}

	fx.syncLogRepo.EXPECT().
		FindRecent(ctx, &deviceID, 20).
		Return(expected, nil)

	logs, err := fx.service.RecentLogs(ctx, &deviceID, 20)
	require.NoError(t, err)
	assert.Equal(t, expected, logs)
}

func TestChunkLogs(t *testing.T) {
	logs := make([]*entity.PunchLog, 1200)
	for i := range logs {
		logs[i] = &entity.PunchLog{ID: uuid.New()}
	}

	chunks := chunkLogs(logs, 500)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 200)

	assert.Empty(t, chunkLogs(nil, 500))

	// A degenerate batch size still makes progress.
	single := chunkLogs(logs[:3], 0)
	require.Len(t, single, 3)
	for i, chunk := range single {
		assert.Len(t, chunk, 1, fmt.Sprintf("chunk %d", i))
	}
}
