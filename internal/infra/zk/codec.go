// Package zk implements the vendor binary TCP protocol spoken by the
// biometric terminals and adapts its loosely-shaped responses into the
// typed session contract the rest of the system consumes.
package zk

import (
	"bytes"
	"encoding/binary"
	"time"

	"punchsync/internal/domain/service"

	"github.com/pkg/errors"
)

// Protocol command codes.
const (
	cmdConnect      uint16 = 1000
	cmdExit         uint16 = 1001
	cmdEnableDevice uint16 = 1002
	cmdAttLogRead   uint16 = 13
	cmdClearAttLog  uint16 = 15
	cmdUserRead     uint16 = 9
	cmdOptionsRead  uint16 = 11
	cmdFreeSizes    uint16 = 50
	cmdRegEvent     uint16 = 500

	cmdPrepareData uint16 = 1500
	cmdData        uint16 = 1501
	cmdFreeData    uint16 = 1502

	cmdAckOK      uint16 = 2000
	cmdAckError   uint16 = 2001
	cmdAckData    uint16 = 2002
	cmdAckUnauth  uint16 = 2005
	eventAttLog   uint32 = 1
	replyIDStart  uint16 = 0
	tcpHeaderSize        = 8
)

// tcpMagic prefixes every packet on the TCP transport.
var tcpMagic = [4]byte{0x50, 0x50, 0x82, 0x7d}

const (
	attendanceEntrySize = 40
	userEntrySize       = 72
	realtimeEntrySize   = 32
)

// packet is one decoded protocol frame.
type packet struct {
	Command   uint16
	SessionID uint16
	ReplyID   uint16
	Payload   []byte
}

// checksum is the ones'-complement sum of the packet body (command,
// session, reply and payload) taken as little-endian 16-bit words, with a
// trailing odd byte summed on its own.
func checksum(body []byte) uint16 {
	var sum uint32
	for len(body) > 1 {
		sum += uint32(binary.LittleEndian.Uint16(body))
		body = body[2:]
	}
	if len(body) == 1 {
		sum += uint32(body[0])
	}
	for sum > 0xffff {
		sum = (sum >> 16) + (sum & 0xffff)
	}

	return uint16(^sum) & 0xffff
}

// encodePacket serializes a frame: magic, body length, then the body with
// its checksum field filled in.
func encodePacket(p packet) []byte {
	body := make([]byte, 8+len(p.Payload))
	binary.LittleEndian.PutUint16(body[0:2], p.Command)
	binary.LittleEndian.PutUint16(body[4:6], p.SessionID)
	binary.LittleEndian.PutUint16(body[6:8], p.ReplyID)
	copy(body[8:], p.Payload)
	binary.LittleEndian.PutUint16(body[2:4], checksum(body))

	frame := make([]byte, tcpHeaderSize+len(body))
	copy(frame[0:4], tcpMagic[:])
	binary.LittleEndian.PutUint32(frame[4:8], uint32(len(body)))
	copy(frame[tcpHeaderSize:], body)

	return frame
}

// decodeBody parses a frame body (the bytes after the TCP header) and
// verifies its checksum.
func decodeBody(body []byte) (packet, error) {
	if len(body) < 8 {
		return packet{}, errors.Errorf("short packet body: %d bytes", len(body))
	}

	p := packet{
		Command:   binary.LittleEndian.Uint16(body[0:2]),
		SessionID: binary.LittleEndian.Uint16(body[4:6]),
		ReplyID:   binary.LittleEndian.Uint16(body[6:8]),
		Payload:   body[8:],
	}

	got := binary.LittleEndian.Uint16(body[2:4])
	verify := make([]byte, len(body))
	copy(verify, body)
	binary.LittleEndian.PutUint16(verify[2:4], 0)
	if want := checksum(verify); got != want {
		return packet{}, errors.Errorf("checksum mismatch: got 0x%04x want 0x%04x", got, want)
	}

	return p, nil
}

// decodePackedTime expands the terminal's packed 4-byte timestamp into its
// wall-clock components. The encoding counts seconds within a synthetic
// calendar of 31-day months anchored at year 2000; it carries no timezone.
func decodePackedTime(packed uint32) time.Time {
	t := packed
	second := int(t % 60)
	t /= 60
	minute := int(t % 60)
	t /= 60
	hour := int(t % 24)
	t /= 24
	day := int(t%31) + 1
	t /= 31
	month := int(t%12) + 1
	t /= 12
	year := int(t) + 2000

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

// encodePackedTime is the inverse of decodePackedTime.
func encodePackedTime(t time.Time) uint32 {
	packed := uint32(t.Year() - 2000)
	packed = packed*12 + uint32(t.Month()-1)
	packed = packed*31 + uint32(t.Day()-1)
	packed = packed*24 + uint32(t.Hour())
	packed = packed*60 + uint32(t.Minute())
	packed = packed*60 + uint32(t.Second())

	return packed
}

// cstring trims a NUL-padded fixed-width field.
func cstring(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	return string(bytes.TrimSpace(raw))
}

// parseAttendanceEntry adapts one 40-byte buffered punch entry:
//
//	0:2   record serial (uint16)
//	2:26  device-local user id, NUL padded
//	26    verification code
//	27:31 packed timestamp
//	31    direction/state code
//	32:40 reserved
func parseAttendanceEntry(raw []byte) (service.AttendanceRecord, error) {
	if len(raw) != attendanceEntrySize {
		return service.AttendanceRecord{}, errors.Errorf("attendance entry must be %d bytes, got %d", attendanceEntrySize, len(raw))
	}

	return service.AttendanceRecord{
		RecordID:   uint32(binary.LittleEndian.Uint16(raw[0:2])),
		UserID:     cstring(raw[2:26]),
		VerifyCode: int(raw[26]),
		Timestamp:  decodePackedTime(binary.LittleEndian.Uint32(raw[27:31])),
		StateCode:  int(raw[31]),
	}, nil
}

// parseAttendanceData splits a bulk attendance dump into records. Entries
// that do not carry a user id are dropped; the terminal pads the tail of
// its flash pages with zeroed entries.
func parseAttendanceData(data []byte) []service.AttendanceRecord {
	records := make([]service.AttendanceRecord, 0, len(data)/attendanceEntrySize)
	for len(data) >= attendanceEntrySize {
		record, err := parseAttendanceEntry(data[:attendanceEntrySize])
		data = data[attendanceEntrySize:]
		if err != nil || record.UserID == "" {
			continue
		}
		records = append(records, record)
	}

	return records
}

// parseUserEntry adapts one 72-byte enrolled-user entry:
//
//	0:2   uid (internal slot)
//	2     privilege
//	3:11  password, NUL padded
//	11:35 display name, NUL padded
//	35:39 card number (uint32)
//	39:48 reserved
//	48:72 device-local user id, NUL padded
func parseUserEntry(raw []byte) (service.DeviceUser, error) {
	if len(raw) != userEntrySize {
		return service.DeviceUser{}, errors.Errorf("user entry must be %d bytes, got %d", userEntrySize, len(raw))
	}

	return service.DeviceUser{
		UID:       binary.LittleEndian.Uint16(raw[0:2]),
		Privilege: int(raw[2]),
		Name:      cstring(raw[11:35]),
		CardNo:    binary.LittleEndian.Uint32(raw[35:39]),
		UserID:    cstring(raw[48:72]),
	}, nil
}

// parseUserData splits a bulk user dump into enrolled users.
func parseUserData(data []byte) []service.DeviceUser {
	users := make([]service.DeviceUser, 0, len(data)/userEntrySize)
	for len(data) >= userEntrySize {
		user, err := parseUserEntry(data[:userEntrySize])
		data = data[userEntrySize:]
		if err != nil || user.UserID == "" {
			continue
		}
		users = append(users, user)
	}

	return users
}

// parseRealtimeEntry adapts one pushed punch event:
//
//	0:24  device-local user id, NUL padded
//	24    direction/state code
//	25    verification code
//	26:32 datetime as YY MM DD hh mm ss (year offset 2000)
func parseRealtimeEntry(raw []byte) (service.AttendanceRecord, error) {
	if len(raw) < realtimeEntrySize {
		return service.AttendanceRecord{}, errors.Errorf("realtime entry must be %d bytes, got %d", realtimeEntrySize, len(raw))
	}

	ts := time.Date(
		2000+int(raw[26]), time.Month(raw[27]), int(raw[28]),
		int(raw[29]), int(raw[30]), int(raw[31]), 0, time.UTC,
	)

	return service.AttendanceRecord{
		UserID:     cstring(raw[0:24]),
		StateCode:  int(raw[24]),
		VerifyCode: int(raw[25]),
		Timestamp:  ts,
	}, nil
}
