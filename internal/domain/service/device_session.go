// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"
	"time"

	"punchsync/internal/domain/entity"

	"github.com/pkg/errors"
)

// Session-level errors. ConnectionError wrapping is done by the concrete
// session; these sentinels mark contract violations and expected failures.
var (
	// ErrNotConnected is returned when a data operation is attempted before Connect.
	ErrNotConnected = errors.New("device session is not connected")
	// ErrAlreadyConnected is returned when Connect is called on a live session.
	ErrAlreadyConnected = errors.New("device session is already connected")
	// ErrRealtimeActive is returned when a bulk operation is attempted while
	// the realtime event stream is enabled.
	ErrRealtimeActive = errors.New("realtime event stream is active")
)

// ConnectionError reports a failed dial, handshake or request round-trip.
// It is fatal to the current device cycle only.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return "device connection failed (" + e.Endpoint + "): " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// DeviceInfo is the terminal's self-reported identity and capacity.
type DeviceInfo struct {
	SerialNumber    string
	FirmwareVersion string
	Platform        string
	DeviceName      string
	UserCount       int
	RecordCount     int
	RecordCapacity  int
}

// DeviceUser is an identity enrolled in the terminal's internal memory.
// It is fetched per session and never persisted.
type DeviceUser struct {
	UID       uint16 // Internal slot index on the terminal.
	UserID    string // The terminal's external id, matched against EmployeeDeviceMapping.
	Name      string
	Privilege int
	CardNo    uint32
}

// AttendanceRecord is one punch event exactly as the terminal reported it.
// Timestamp is the terminal's local wall clock with no timezone metadata.
type AttendanceRecord struct {
	UserID     string    // Device-local user id.
	RecordID   uint32    // Device-local record serial.
	Timestamp  time.Time // Local wall clock, zone-less by protocol contract.
	StateCode  int       // Raw direction code, see entity.PunchTypeFromCode.
	VerifyCode int       // Raw verification code, see entity.VerifyMethodFromCode.
}

// RealtimeHandler receives punch events pushed by the terminal while the
// realtime stream is enabled.
type RealtimeHandler func(record AttendanceRecord)

// DeviceSession owns one protocol connection to a single terminal.
//
// The session is a small state machine: Idle -> Connected -> Idle after
// Disconnect, or Idle -> Failed on a connect error. Data operations require
// the Connected state and fail with ErrNotConnected otherwise. A session is
// exclusive to one sync cycle and is never shared across goroutines.
type DeviceSession interface {
	// Connect performs the protocol handshake. Calling it on a connected
	// session returns ErrAlreadyConnected.
	Connect(ctx context.Context) error

	// Disconnect releases the session. Errors from an already-broken
	// connection are swallowed so cleanup never masks a primary error.
	Disconnect(ctx context.Context)

	// GetDeviceInfo reads the terminal's serial, firmware and counters.
	GetDeviceInfo(ctx context.Context) (*DeviceInfo, error)

	// GetUsers returns every identity enrolled on the terminal.
	GetUsers(ctx context.Context) ([]DeviceUser, error)

	// GetAttendanceLogs dumps the terminal's entire punch buffer. The
	// device has no server-side cursor, so this may return thousands of
	// records; callers batch downstream processing.
	GetAttendanceLogs(ctx context.Context) ([]AttendanceRecord, error)

	// ClearAttendanceLogs irreversibly erases the terminal's punch buffer.
	// Callers must persist fetched records before invoking it.
	ClearAttendanceLogs(ctx context.Context) error

	// EnableRealtime subscribes to live punch events until DisableRealtime
	// or Disconnect. Not used by batch sync; kept for live monitoring.
	EnableRealtime(ctx context.Context, handler RealtimeHandler) error

	// DisableRealtime stops the realtime stream, if active.
	DisableRealtime()
}

// SessionFactory creates one exclusive DeviceSession per sync cycle.
type SessionFactory interface {
	NewSession(device *entity.Device) DeviceSession
}
