package postgres

import (
	"context"

	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/repository"
	"punchsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// punchLogRepository implements the repository.PunchLogRepository interface.
type punchLogRepository struct {
	db *gorm.DB
}

// NewPunchLogRepository is the constructor for punchLogRepository.
func NewPunchLogRepository(db *gorm.DB) repository.PunchLogRepository {
	return &punchLogRepository{
		db: db,
	}
}

// InsertIgnoreDuplicates writes one chunk with ON CONFLICT DO NOTHING
// against the (employee_id, device_id, punched_at) dedup index and reports
// how many rows were actually inserted. Duplicate punches from re-synced
// device windows are absorbed here, not surfaced as errors.
func (repo *punchLogRepository) InsertIgnoreDuplicates(ctx context.Context, logs []*entity.PunchLog) (int64, error) {
	if len(logs) == 0 {
		return 0, nil
	}

	logModels := make([]*model.PunchLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromPunchLogDomain(log))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"},
				{Name: "device_id"},
				{Name: "punched_at"},
			},
			DoNothing: true,
		}).
		Create(&logModels)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to insert punch logs")
	}

	return result.RowsAffected, nil
}

// FindRecentByDevice returns the newest punch logs for a device.
func (repo *punchLogRepository) FindRecentByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.PunchLog, error) {
	var logModels []*model.PunchLogModel

	query := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("punched_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find punch logs by device")
	}

	logs := make([]*entity.PunchLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toPunchLogDomain(logM))
	}

	return logs, nil
}

// CountByDevice returns the number of stored punch logs for a device.
func (repo *punchLogRepository) CountByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PunchLogModel{}).
		Where("device_id = ?", deviceID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count punch logs by device")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPunchLogDomain converts a GORM PunchLogModel to a domain PunchLog entity.
func toPunchLogDomain(data *model.PunchLogModel) *entity.PunchLog {
	if data == nil {
		return nil
	}

	return &entity.PunchLog{
		ID:           data.ID,
		EmployeeID:   data.EmployeeID,
		DeviceID:     data.DeviceID,
		PunchedAt:    data.PunchedAt,
		PunchType:    entity.PunchType(data.PunchType),
		VerifyMethod: data.VerifyMethod,
		RawPayload:   data.RawPayload,
		Processed:    data.Processed,
		CreatedAt:    data.CreatedAt,
	}
}

// fromPunchLogDomain converts a domain PunchLog entity to a GORM PunchLogModel.
func fromPunchLogDomain(data *entity.PunchLog) *model.PunchLogModel {
	if data == nil {
		return nil
	}

	return &model.PunchLogModel{
		ID:           data.ID,
		EmployeeID:   data.EmployeeID,
		DeviceID:     data.DeviceID,
		PunchedAt:    data.PunchedAt,
		PunchType:    string(data.PunchType),
		VerifyMethod: data.VerifyMethod,
		RawPayload:   data.RawPayload,
		Processed:    data.Processed,
		CreatedAt:    data.CreatedAt,
	}
}
