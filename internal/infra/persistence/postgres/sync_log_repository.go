package postgres

import (
	"context"

	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/repository"
	"punchsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// syncLogRepository implements the repository.SyncLogRepository interface.
type syncLogRepository struct {
	db *gorm.DB
}

// NewSyncLogRepository is the constructor for syncLogRepository.
func NewSyncLogRepository(db *gorm.DB) repository.SyncLogRepository {
	return &syncLogRepository{
		db: db,
	}
}

// Create inserts a row with status "started" and fills in its generated ID.
func (repo *syncLogRepository) Create(ctx context.Context, log *entity.SyncLog) error {
	logM := fromSyncLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required sync log information")
		}

		return errors.Wrap(err, "failed to create sync log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// Finish updates the same row exactly once with the final outcome.
func (repo *syncLogRepository) Finish(ctx context.Context, id uuid.UUID, finish repository.SyncLogFinish) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SyncLogModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           string(finish.Status),
			"records_synced":   finish.RecordsSynced,
			"records_skipped":  finish.RecordsSkipped,
			"duration_seconds": finish.DurationSeconds,
			"error_message":    finish.ErrorMessage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to finish sync log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSyncLogNotFound
	}

	return nil
}

// FindRecent lists the newest audit rows, optionally filtered by device.
func (repo *syncLogRepository) FindRecent(ctx context.Context, deviceID *uuid.UUID, limit int) ([]*entity.SyncLog, error) {
	var logModels []*model.SyncLogModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if deviceID != nil {
		query = query.Where("device_id = ?", *deviceID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent sync logs")
	}

	logs := make([]*entity.SyncLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toSyncLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toSyncLogDomain converts a GORM SyncLogModel to a domain SyncLog entity.
func toSyncLogDomain(data *model.SyncLogModel) *entity.SyncLog {
	if data == nil {
		return nil
	}

	return &entity.SyncLog{
		ID:              data.ID,
		DeviceID:        data.DeviceID,
		Kind:            data.Kind,
		Status:          entity.SyncStatus(data.Status),
		RecordsSynced:   data.RecordsSynced,
		RecordsSkipped:  data.RecordsSkipped,
		DurationSeconds: data.DurationSeconds,
		ErrorMessage:    data.ErrorMessage,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromSyncLogDomain converts a domain SyncLog entity to a GORM SyncLogModel.
func fromSyncLogDomain(data *entity.SyncLog) *model.SyncLogModel {
	if data == nil {
		return nil
	}

	return &model.SyncLogModel{
		ID:              data.ID,
		DeviceID:        data.DeviceID,
		Kind:            data.Kind,
		Status:          string(data.Status),
		RecordsSynced:   data.RecordsSynced,
		RecordsSkipped:  data.RecordsSkipped,
		DurationSeconds: data.DurationSeconds,
		ErrorMessage:    data.ErrorMessage,
	}
}
