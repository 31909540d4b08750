package zk

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodePacket(t *testing.T) {
	original := packet{
		Command:   cmdConnect,
		SessionID: 0x1234,
		ReplyID:   7,
		Payload:   []byte{0x01, 0x02, 0x03},
	}

	frame := encodePacket(original)

	// TCP header: magic then little-endian body length.
	require.GreaterOrEqual(t, len(frame), tcpHeaderSize+8)
	assert.Equal(t, tcpMagic[:], frame[0:4])
	assert.Equal(t, uint32(len(frame)-tcpHeaderSize), binary.LittleEndian.Uint32(frame[4:8]))

	decoded, err := decodeBody(frame[tcpHeaderSize:])
	require.NoError(t, err)
	assert.Equal(t, original.Command, decoded.Command)
	assert.Equal(t, original.SessionID, decoded.SessionID)
	assert.Equal(t, original.ReplyID, decoded.ReplyID)
	assert.Equal(t, original.Payload, decoded.Payload)
}

func TestDecodeBody_ChecksumMismatch(t *testing.T) {
	frame := encodePacket(packet{Command: cmdAckOK, SessionID: 1, ReplyID: 1})
	body := frame[tcpHeaderSize:]
	body[len(body)-1] ^= 0xff

	_, err := decodeBody(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestDecodeBody_ShortBody(t *testing.T) {
	_, err := decodeBody([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}

func TestChecksum_OddLength(t *testing.T) {
	// The trailing odd byte is summed on its own; a packet built around an
	// odd-length payload must still verify.
	frame := encodePacket(packet{Command: cmdData, SessionID: 9, ReplyID: 2, Payload: []byte{0xab}})

	_, err := decodeBody(frame[tcpHeaderSize:])
	require.NoError(t, err)
}

func TestPackedTimeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
	}{
		{name: "ordinary timestamp", time: time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)},
		{name: "epoch anchor", time: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "end of day", time: time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC)},
		{name: "leap day", time: time.Date(2024, 2, 29, 12, 0, 1, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decodePackedTime(encodePackedTime(tt.time)).Equal(tt.time))
		})
	}
}

func TestParseAttendanceEntry(t *testing.T) {
	raw := make([]byte, attendanceEntrySize)
	binary.LittleEndian.PutUint16(raw[0:2], 305)
	copy(raw[2:26], "101")
	raw[26] = 1 // fingerprint
	binary.LittleEndian.PutUint32(raw[27:31], encodePackedTime(time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)))
	raw[31] = 0 // check-in

	record, err := parseAttendanceEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(305), record.RecordID)
	assert.Equal(t, "101", record.UserID)
	assert.Equal(t, 1, record.VerifyCode)
	assert.Equal(t, 0, record.StateCode)
	assert.Equal(t, time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC), record.Timestamp)
}

func TestParseAttendanceEntry_WrongSize(t *testing.T) {
	_, err := parseAttendanceEntry(make([]byte, attendanceEntrySize-1))
	require.Error(t, err)
}

func TestParseAttendanceData_DropsPadding(t *testing.T) {
	entry := make([]byte, attendanceEntrySize)
	binary.LittleEndian.PutUint16(entry[0:2], 1)
	copy(entry[2:26], "42")
	binary.LittleEndian.PutUint32(entry[27:31], encodePackedTime(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)))

	// Real entry, then a zeroed flash-page pad entry, then a trailing
	// partial entry: only the real one survives.
	data := append(append(append([]byte{}, entry...), make([]byte, attendanceEntrySize)...), 0x01, 0x02)

	records := parseAttendanceData(data)
	require.Len(t, records, 1)
	assert.Equal(t, "42", records[0].UserID)
}

func TestParseUserEntry(t *testing.T) {
	raw := make([]byte, userEntrySize)
	binary.LittleEndian.PutUint16(raw[0:2], 12)
	raw[2] = 14 // admin privilege
	copy(raw[11:35], "Jordan Smith")
	binary.LittleEndian.PutUint32(raw[35:39], 9001234)
	copy(raw[48:72], "101")

	user, err := parseUserEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, uint16(12), user.UID)
	assert.Equal(t, 14, user.Privilege)
	assert.Equal(t, "Jordan Smith", user.Name)
	assert.Equal(t, uint32(9001234), user.CardNo)
	assert.Equal(t, "101", user.UserID)
}

func TestParseUserData_DropsEmptySlots(t *testing.T) {
	entry := make([]byte, userEntrySize)
	copy(entry[48:72], "7")

	data := append(append([]byte{}, entry...), make([]byte, userEntrySize)...)

	users := parseUserData(data)
	require.Len(t, users, 1)
	assert.Equal(t, "7", users[0].UserID)
}

func TestParseRealtimeEntry(t *testing.T) {
	raw := make([]byte, realtimeEntrySize)
	copy(raw[0:24], "101")
	raw[24] = 1 // check-out
	raw[25] = 15
	raw[26] = 25 // 2025
	raw[27] = 1
	raw[28] = 15
	raw[29] = 18
	raw[30] = 2
	raw[31] = 33

	record, err := parseRealtimeEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, "101", record.UserID)
	assert.Equal(t, 1, record.StateCode)
	assert.Equal(t, 15, record.VerifyCode)
	assert.Equal(t, time.Date(2025, 1, 15, 18, 2, 33, 0, time.UTC), record.Timestamp)
}

func TestParseRealtimeEntry_Short(t *testing.T) {
	_, err := parseRealtimeEntry(make([]byte, realtimeEntrySize-1))
	require.Error(t, err)
}
