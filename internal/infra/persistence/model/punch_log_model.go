package model

import (
	"time"

	"github.com/google/uuid"
)

// PunchLogModel is the GORM-specific struct for the 'punch_logs' table.
// The composite unique index on (employee_id, device_id, punched_at) is
// the dedup key for re-synced device windows; inserts use ON CONFLICT DO
// NOTHING against it.
type PunchLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_punch_dedup;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_punch_dedup;index"`
	PunchedAt    time.Time `gorm:"type:timestamptz;not null;uniqueIndex:idx_punch_dedup"`
	PunchType    string    `gorm:"type:varchar(10);not null"`
	VerifyMethod string    `gorm:"type:varchar(30);not null"`
	RawPayload   string    `gorm:"type:text"`
	Processed    bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PunchLogModel) TableName() string {
	return "punch_logs"
}
