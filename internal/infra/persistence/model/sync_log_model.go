package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncLogModel is the GORM-specific struct for the 'sync_logs' table.
// Rows follow an append-then-update-once lifecycle and are never deleted.
type SyncLogModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind            string    `gorm:"type:varchar(30);not null"`
	Status          string    `gorm:"type:varchar(20);not null"`
	RecordsSynced   int       `gorm:"not null;default:0"`
	RecordsSkipped  int       `gorm:"not null;default:0"`
	DurationSeconds float64   `gorm:"not null;default:0"`
	ErrorMessage    string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SyncLogModel) TableName() string {
	return "sync_logs"
}
