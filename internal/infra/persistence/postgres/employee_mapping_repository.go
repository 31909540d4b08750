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

// employeeMappingRepository implements the repository.EmployeeMappingRepository interface.
type employeeMappingRepository struct {
	db *gorm.DB
}

// NewEmployeeMappingRepository is the constructor for employeeMappingRepository.
func NewEmployeeMappingRepository(db *gorm.DB) repository.EmployeeMappingRepository {
	return &employeeMappingRepository{
		db: db,
	}
}

// FindMappingsByDevice bulk-reads every mapping for one device where the
// device-local user id is present. One query per sync cycle.
func (repo *employeeMappingRepository) FindMappingsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.EmployeeDeviceMapping, error) {
	var mappingModels []*model.EmployeeDeviceMappingModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND device_user_id IS NOT NULL", deviceID).
		Find(&mappingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find employee mappings by device")
	}

	mappings := make([]*entity.EmployeeDeviceMapping, 0, len(mappingModels))
	for _, mappingM := range mappingModels {
		mappings = append(mappings, toMappingDomain(mappingM))
	}

	return mappings, nil
}

// toMappingDomain converts a GORM EmployeeDeviceMappingModel to a domain entity.
func toMappingDomain(data *model.EmployeeDeviceMappingModel) *entity.EmployeeDeviceMapping {
	if data == nil {
		return nil
	}

	mapping := &entity.EmployeeDeviceMapping{
		EmployeeID: data.EmployeeID,
		DeviceID:   data.DeviceID,
		CreatedAt:  data.CreatedAt,
	}
	if data.DeviceUserID != nil {
		mapping.DeviceUserID = *data.DeviceUserID
	}

	return mapping
}
