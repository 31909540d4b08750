// Package model holds the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents a biometric attendance terminal in the registry.
type DeviceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Address         string    `gorm:"type:varchar(255);not null"`
	Port            int       `gorm:"not null;default:4370"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	LastConnectedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
