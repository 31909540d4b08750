// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"punchsync/config"
	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/repository"
	"punchsync/internal/domain/service"
	"punchsync/internal/usecase"

	"github.com/google/uuid"
)

type syncService struct {
	deviceRepo  repository.DeviceRepository
	mappingRepo repository.EmployeeMappingRepository
	punchRepo   repository.PunchLogRepository
	syncLogRepo repository.SyncLogRepository
	sessions    service.SessionFactory
	logger      *slog.Logger

	batchSize int
	offset    time.Duration
}

// NewSyncService creates the attendance sync orchestrator.
func NewSyncService(
	cfg *config.Config,
	logger *slog.Logger,
	deviceRepo repository.DeviceRepository,
	mappingRepo repository.EmployeeMappingRepository,
	punchRepo repository.PunchLogRepository,
	syncLogRepo repository.SyncLogRepository,
	sessions service.SessionFactory,
) usecase.SyncUsecase {
	return &syncService{
		deviceRepo:  deviceRepo,
		mappingRepo: mappingRepo,
		punchRepo:   punchRepo,
		syncLogRepo: syncLogRepo,
		sessions:    sessions,
		logger:      logger,
		batchSize:   cfg.Sync.BatchSize,
		offset:      cfg.Sync.OffsetDuration(),
	}
}

// SyncAll syncs every active device, isolating failures per device.
func (s *syncService) SyncAll(ctx context.Context, opts usecase.SyncOptions) (*usecase.FleetSyncResult, error) {
	devices, err := s.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find active devices: %w", err)
	}

	fleet := &usecase.FleetSyncResult{
		Total:   len(devices),
		Results: make([]*usecase.DeviceSyncResult, 0, len(devices)),
	}

	for _, device := range devices {
		result := s.syncDevice(ctx, device, opts)
		fleet.Results = append(fleet.Results, result)
		if result.Status == entity.SyncStatusCompleted {
			fleet.Succeeded++
		} else {
			fleet.Failed++
		}
	}

	return fleet, nil
}

// SyncOne syncs a single device by id.
func (s *syncService) SyncOne(ctx context.Context, deviceID uuid.UUID, opts usecase.SyncOptions) (*usecase.DeviceSyncResult, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return s.syncDevice(ctx, device, opts), nil
}

// RecentLogs lists the newest sync audit rows.
func (s *syncService) RecentLogs(ctx context.Context, deviceID *uuid.UUID, limit int) ([]*entity.SyncLog, error) {
	logs, err := s.syncLogRepo.FindRecent(ctx, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent sync logs: %w", err)
	}

	return logs, nil
}

// syncDevice runs one full device cycle: connect, fetch, resolve,
// normalize, chunked write, optional clear, heartbeat, disconnect, audit.
// It never returns an error; every failure becomes a failed result so one
// device cannot abort a fleet sync.
func (s *syncService) syncDevice(ctx context.Context, device *entity.Device, opts usecase.SyncOptions) *usecase.DeviceSyncResult {
	start := time.Now()
	logger := s.logger.With(
		slog.String("device_id", device.ID.String()),
		slog.String("device", device.Name),
	)
	result := &usecase.DeviceSyncResult{
		DeviceID:   device.ID,
		DeviceName: device.Name,
		Status:     entity.SyncStatusStarted,
	}

	auditID := s.auditStart(ctx, logger, device.ID)

	session := s.sessions.NewSession(device)
	if err := session.Connect(ctx); err != nil {
		return s.failDevice(ctx, logger, result, auditID, start, fmt.Errorf("connect: %w", err))
	}
	defer session.Disconnect(ctx)

	records, err := session.GetAttendanceLogs(ctx)
	if err != nil {
		return s.failDevice(ctx, logger, result, auditID, start, fmt.Errorf("fetch attendance logs: %w", err))
	}
	result.Fetched = len(records)

	mappings, err := s.mappingRepo.FindMappingsByDevice(ctx, device.ID)
	if err != nil {
		return s.failDevice(ctx, logger, result, auditID, start, fmt.Errorf("load employee mappings: %w", err))
	}

	logs := s.resolveRecords(device, records, mappings, result)

	for _, chunk := range chunkLogs(logs, s.batchSize) {
		if _, err := s.punchRepo.InsertIgnoreDuplicates(ctx, chunk); err != nil {
			// One failed chunk loses its records, not the cycle.
			result.ErrorCount += len(chunk)
			logger.WarnContext(ctx, "Punch log chunk write failed",
				slog.Int("chunk_size", len(chunk)),
				slog.Any("error", err))

			continue
		}
		result.Synced += len(chunk)
	}

	if opts.ClearAfterSync && result.Synced > 0 {
		if err := session.ClearAttendanceLogs(ctx); err != nil {
			// Records are already persisted; report and move on.
			logger.WarnContext(ctx, "Failed to clear device log buffer", slog.Any("error", err))
		}
	}

	if err := s.deviceRepo.UpdateLastConnected(ctx, device.ID, time.Now()); err != nil {
		logger.WarnContext(ctx, "Failed to update device heartbeat", slog.Any("error", err))
	}

	result.Status = entity.SyncStatusCompleted
	result.Duration = time.Since(start)

	s.auditFinish(ctx, logger, auditID, repository.SyncLogFinish{
		Status:          entity.SyncStatusCompleted,
		RecordsSynced:   result.Synced,
		RecordsSkipped:  result.Skipped,
		DurationSeconds: result.Duration.Seconds(),
	})

	logger.InfoContext(ctx, "Device sync completed",
		slog.Int("fetched", result.Fetched),
		slog.Int("synced", result.Synced),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.ErrorCount),
		slog.Duration("duration", result.Duration))

	return result
}

// resolveRecords maps raw device records onto employees and normalizes
// them. Each record lands in one of three buckets: resolved (returned),
// unmapped (no employee claims the device-local id) or conflicting (more
// than one employee claims it). The latter two are counted and reported,
// never fatal.
func (s *syncService) resolveRecords(
	device *entity.Device,
	records []service.AttendanceRecord,
	mappings []*entity.EmployeeDeviceMapping,
	result *usecase.DeviceSyncResult,
) []*entity.PunchLog {
	byDeviceUserID := make(map[string]uuid.UUID, len(mappings))
	conflicting := make(map[string]struct{})
	for _, mapping := range mappings {
		if _, seen := byDeviceUserID[mapping.DeviceUserID]; seen {
			conflicting[mapping.DeviceUserID] = struct{}{}

			continue
		}
		byDeviceUserID[mapping.DeviceUserID] = mapping.EmployeeID
	}

	unmapped := make(map[string]struct{})
	conflicted := make(map[string]struct{})
	logs := make([]*entity.PunchLog, 0, len(records))

	for _, record := range records {
		if _, bad := conflicting[record.UserID]; bad {
			conflicted[record.UserID] = struct{}{}
			result.Skipped++

			continue
		}

		employeeID, ok := byDeviceUserID[record.UserID]
		if !ok {
			unmapped[record.UserID] = struct{}{}
			result.Skipped++

			continue
		}

		logs = append(logs, &entity.PunchLog{
			EmployeeID:   employeeID,
			DeviceID:     device.ID,
			PunchedAt:    entity.PunchTimeInOffset(record.Timestamp, s.offset),
			PunchType:    entity.PunchTypeFromCode(record.StateCode),
			VerifyMethod: entity.VerifyMethodFromCode(record.VerifyCode),
			RawPayload: fmt.Sprintf("sn=%d uid=%s state=%d verify=%d time=%s",
				record.RecordID, record.UserID, record.StateCode, record.VerifyCode,
				record.Timestamp.Format("2006-01-02 15:04:05")),
		})
	}

	result.UnmappedIDs = sortedKeys(unmapped)
	result.ConflictingIDs = sortedKeys(conflicted)

	return logs
}

// failDevice converts a fatal step error into a failed result and closes
// the audit row. Fatal means connect/fetch/mapping lookup; everything
// after those is downgraded to a warning inside syncDevice.
func (s *syncService) failDevice(
	ctx context.Context,
	logger *slog.Logger,
	result *usecase.DeviceSyncResult,
	auditID uuid.UUID,
	start time.Time,
	err error,
) *usecase.DeviceSyncResult {
	result.Status = entity.SyncStatusFailed
	result.Error = err.Error()
	result.ErrorCount++
	result.Duration = time.Since(start)

	s.auditFinish(ctx, logger, auditID, repository.SyncLogFinish{
		Status:          entity.SyncStatusFailed,
		RecordsSynced:   result.Synced,
		RecordsSkipped:  result.Skipped,
		DurationSeconds: result.Duration.Seconds(),
		ErrorMessage:    err.Error(),
	})

	logger.ErrorContext(ctx, "Device sync failed", slog.Any("error", err))

	return result
}

// auditStart opens the sync audit row. Audit is best-effort telemetry: a
// failed write is logged and the cycle continues without one.
func (s *syncService) auditStart(ctx context.Context, logger *slog.Logger, deviceID uuid.UUID) uuid.UUID {
	log := &entity.SyncLog{
		DeviceID: deviceID,
		Kind:     entity.SyncKindAttendance,
		Status:   entity.SyncStatusStarted,
	}
	if err := s.syncLogRepo.Create(ctx, log); err != nil {
		logger.WarnContext(ctx, "Failed to create sync audit row", slog.Any("error", err))

		return uuid.Nil
	}

	return log.ID
}

// auditFinish closes the audit row opened by auditStart, at most once.
func (s *syncService) auditFinish(ctx context.Context, logger *slog.Logger, auditID uuid.UUID, finish repository.SyncLogFinish) {
	if auditID == uuid.Nil {
		return
	}
	if err := s.syncLogRepo.Finish(ctx, auditID, finish); err != nil {
		logger.WarnContext(ctx, "Failed to finish sync audit row", slog.Any("error", err))
	}
}

// chunkLogs splits the normalized batch into store-sized insert chunks.
func chunkLogs(logs []*entity.PunchLog, size int) [][]*entity.PunchLog {
	if size <= 0 {
		size = 1
	}

	chunks := make([][]*entity.PunchLog, 0, (len(logs)+size-1)/size)
	for start := 0; start < len(logs); start += size {
		end := start + size
		if end > len(logs) {
			end = len(logs)
		}
		chunks = append(chunks, logs[start:end])
	}

	return chunks
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
