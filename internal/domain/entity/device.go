// Package entity contains the core business objects of the project.
package entity

import (
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultDevicePort is the TCP port biometric terminals listen on by default.
const DefaultDevicePort = 4370

// Device represents a physical biometric attendance terminal reachable over TCP.
type Device struct {
	ID              uuid.UUID  `json:"id"`                // The unique identifier for the terminal.
	Name            string     `json:"name"`              // Human-readable display name.
	Address         string     `json:"address"`           // Network address (IP or hostname).
	Port            int        `json:"port"`              // TCP port, usually 4370.
	IsActive        bool       `json:"is_active"`         // Inactive devices are skipped by fleet syncs.
	LastConnectedAt *time.Time `json:"last_connected_at"` // Timestamp of the last successful session.
	CreatedAt       time.Time  `json:"created_at"`        // Timestamp of when this device was registered.
	UpdatedAt       time.Time  `json:"updated_at"`        // Timestamp of the last modification.
}

// Endpoint returns the host:port pair the session dials.
func (d *Device) Endpoint() string {
	port := d.Port
	if port == 0 {
		port = DefaultDevicePort
	}

	return net.JoinHostPort(d.Address, strconv.Itoa(port))
}
