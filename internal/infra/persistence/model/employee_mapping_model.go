package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeDeviceMappingModel is the GORM-specific struct for the
// 'employee_device_mappings' table, owned by the employee registry and
// read-only for the sync pipeline.
type EmployeeDeviceMappingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceUserID *string   `gorm:"type:varchar(24)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeDeviceMappingModel) TableName() string {
	return "employee_device_mappings"
}
