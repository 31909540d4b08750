package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPunchTypeFromCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want PunchType
	}{
		{name: "check-in", code: 0, want: PunchTypeIn},
		{name: "check-out", code: 1, want: PunchTypeOut},
		{name: "break", code: 2, want: PunchTypeBreak},
		{name: "overtime-in defaults to IN", code: 4, want: PunchTypeIn},
		{name: "unknown firmware code defaults to IN", code: 99, want: PunchTypeIn},
		{name: "negative code defaults to IN", code: -1, want: PunchTypeIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PunchTypeFromCode(tt.code))
		})
	}
}

func TestVerifyMethodFromCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "password", code: 0, want: "password"},
		{name: "fingerprint", code: 1, want: "fingerprint"},
		{name: "card", code: 2, want: "card"},
		{name: "password+fingerprint", code: 3, want: "password+fingerprint"},
		{name: "face", code: 15, want: "face"},
		{name: "palm", code: 16, want: "palm"},
		{name: "undocumented code", code: 7, want: VerifyMethodUnknown},
		{name: "out of range code", code: 99, want: VerifyMethodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyMethodFromCode(tt.code))
		})
	}
}

func TestPunchTimeInOffset_KeepsWallClock(t *testing.T) {
	// The terminal reports 2025-01-15 09:30:00 with no zone. The stored
	// timestamp must still read 09:30 in the configured zone.
	deviceTime := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

	got := PunchTimeInOffset(deviceTime, 5*time.Hour+30*time.Minute)

	assert.Equal(t, "2025-01-15T09:30:00+05:30", got.Format(time.RFC3339))
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, offset := got.Zone()
	assert.Equal(t, int((5*time.Hour+30*time.Minute)/time.Second), offset)
}

func TestPunchTimeInOffset_NegativeOffset(t *testing.T) {
	deviceTime := time.Date(2025, 6, 1, 23, 59, 58, 0, time.UTC)

	got := PunchTimeInOffset(deviceTime, -3*time.Hour)

	assert.Equal(t, "2025-06-01T23:59:58-03:00", got.Format(time.RFC3339))
}

func TestPunchTimeInOffset_DropsSubsecond(t *testing.T) {
	deviceTime := time.Date(2025, 1, 15, 9, 30, 0, 123456789, time.UTC)

	got := PunchTimeInOffset(deviceTime, 0)

	assert.Equal(t, 0, got.Nanosecond())
}

func TestDeviceEndpoint(t *testing.T) {
	device := &Device{Address: "192.168.1.201", Port: 4370}
	assert.Equal(t, "192.168.1.201:4370", device.Endpoint())

	v6 := &Device{Address: "fe80::1", Port: 4370}
	assert.Equal(t, "[fe80::1]:4370", v6.Endpoint())
}
