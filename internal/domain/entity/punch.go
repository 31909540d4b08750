package entity

import (
	"time"

	"github.com/google/uuid"
)

// PunchType is the canonical direction of a punch event.
type PunchType string

const (
	PunchTypeIn    PunchType = "IN"
	PunchTypeOut   PunchType = "OUT"
	PunchTypeBreak PunchType = "BREAK"
)

// VerifyMethodUnknown is reported for verification codes the terminal
// firmware emits but this mapping does not know about.
const VerifyMethodUnknown = "unknown"

// verifyMethods maps the terminal's raw verification codes to canonical names.
var verifyMethods = map[int]string{
	0:  "password",
	1:  "fingerprint",
	2:  "card",
	3:  "password+fingerprint",
	4:  "password+card",
	5:  "fingerprint+card",
	15: "face",
	16: "palm",
}

// PunchTypeFromCode maps the terminal's raw direction code to a PunchType.
// Codes outside the documented set default to IN; some firmwares never
// populate the direction field and downstream alternating-sequence
// inference is a known, unimplemented gap.
func PunchTypeFromCode(code int) PunchType {
	switch code {
	case 0:
		return PunchTypeIn
	case 1:
		return PunchTypeOut
	case 2:
		return PunchTypeBreak
	default:
		return PunchTypeIn
	}
}

// VerifyMethodFromCode maps the terminal's raw verification code to a
// canonical method name. Unknown codes map to "unknown", never an error.
func VerifyMethodFromCode(code int) string {
	if method, ok := verifyMethods[code]; ok {
		return method
	}

	return VerifyMethodUnknown
}

// PunchTimeInOffset rebuilds the terminal's wall-clock reading in a fixed
// offset zone. The terminal reports local time with no timezone marker;
// the stored timestamp must read identically in wall-clock terms, so the
// components are reassembled directly instead of being converted through
// UTC (which would silently shift the clock time).
func PunchTimeInOffset(deviceTime time.Time, offset time.Duration) time.Time {
	zone := time.FixedZone("", int(offset/time.Second))

	return time.Date(
		deviceTime.Year(), deviceTime.Month(), deviceTime.Day(),
		deviceTime.Hour(), deviceTime.Minute(), deviceTime.Second(),
		0, zone,
	)
}

// PunchLog is the durable record of one punch event, resolved to an
// employee. The triple (EmployeeID, DeviceID, PunchedAt) is unique and is
// the sole deduplication key: re-syncing an already-ingested device window
// must not create duplicate rows.
type PunchLog struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	DeviceID     uuid.UUID `json:"device_id"`     // Provenance: which terminal reported the punch.
	PunchedAt    time.Time `json:"punched_at"`    // Fixed-offset wall clock, see PunchTimeInOffset.
	PunchType    PunchType `json:"punch_type"`    // IN / OUT / BREAK.
	VerifyMethod string    `json:"verify_method"` // fingerprint, face, card, ...
	RawPayload   string    `json:"raw_payload"`   // Opaque device record, kept for forensic replay.
	Processed    bool      `json:"processed"`     // Flipped later by payroll processing, never by sync.
	CreatedAt    time.Time `json:"created_at"`
}
