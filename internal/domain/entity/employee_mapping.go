package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeDeviceMapping associates an employee with the identifier a
// specific terminal uses for them. An employee may be enrolled on several
// terminals under different device-local ids; the mapping is per device.
type EmployeeDeviceMapping struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	DeviceID     uuid.UUID `json:"device_id"`
	DeviceUserID string    `json:"device_user_id"` // The terminal's own id for the enrolled person.
	CreatedAt    time.Time `json:"created_at"`
}
