package repository

import (
	"context"

	"punchsync/internal/domain/entity"

	"github.com/google/uuid"
)

// EmployeeMappingRepository reads employee-to-device-user-id associations
// owned by the external employee registry.
type EmployeeMappingRepository interface {
	// FindMappingsByDevice bulk-reads every (employee, device-local id)
	// pair for one device where the device-local id is non-null. One call
	// per sync cycle keeps identity resolution O(employees), not O(records).
	FindMappingsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.EmployeeDeviceMapping, error)
}
