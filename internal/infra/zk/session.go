package zk

import (
	"context"
	"encoding/binary"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"punchsync/config"
	"punchsync/internal/domain/entity"
	"punchsync/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultTimeout bounds the dial and each request round-trip. Sized
// generously: large log dumps make the terminal slow to answer.
const DefaultTimeout = 15 * time.Second

const realtimePollInterval = time.Second

type sessionState int

const (
	stateIdle sessionState = iota
	stateConnected
	stateFailed
)

// Session is one protocol connection to a single terminal. It implements
// service.DeviceSession and is exclusive to one sync cycle.
type Session struct {
	endpoint string
	timeout  time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	state     sessionState
	conn      net.Conn
	sessionID uint16
	replyID   uint16

	realtimeOn   bool
	realtimeStop chan struct{}
	realtimeDone sync.WaitGroup
}

// FactoryParams holds the dependencies for the session factory.
type FactoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type sessionFactory struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewFactory builds the factory that creates one session per sync cycle.
func NewFactory(params FactoryParams) service.SessionFactory {
	timeout := DefaultTimeout
	if params.Config.Sync.ConnectTimeout > 0 {
		timeout = params.Config.Sync.ConnectTimeout
	}

	return &sessionFactory{
		timeout: timeout,
		logger:  params.Logger,
	}
}

func (f *sessionFactory) NewSession(device *entity.Device) service.DeviceSession {
	return NewSession(device.Endpoint(), f.timeout, f.logger.With(
		slog.String("device", device.Name),
		slog.String("endpoint", device.Endpoint()),
	))
}

// NewSession creates an idle session for the given endpoint.
func NewSession(endpoint string, timeout time.Duration, logger *slog.Logger) *Session {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Session{
		endpoint: endpoint,
		timeout:  timeout,
		logger:   logger,
	}
}

// Connect dials the terminal and performs the protocol handshake.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateConnected {
		return service.ErrAlreadyConnected
	}

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.endpoint)
	if err != nil {
		s.state = stateFailed

		return &service.ConnectionError{Endpoint: s.endpoint, Err: errors.Wrap(err, "dial")}
	}

	s.conn = conn
	s.sessionID = 0
	s.replyID = replyIDStart

	reply, err := s.roundTrip(ctx, cmdConnect, nil)
	if err != nil {
		s.teardown()
		s.state = stateFailed

		return &service.ConnectionError{Endpoint: s.endpoint, Err: errors.Wrap(err, "handshake")}
	}
	if reply.Command != cmdAckOK {
		s.teardown()
		s.state = stateFailed

		return &service.ConnectionError{Endpoint: s.endpoint, Err: errors.Errorf("handshake rejected with command %d", reply.Command)}
	}

	s.sessionID = reply.SessionID
	s.state = stateConnected

	return nil
}

// Disconnect releases the session. Teardown errors are logged, never
// propagated: cleanup must not mask the primary error of a sync cycle.
func (s *Session) Disconnect(ctx context.Context) {
	s.stopRealtime()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateConnected {
		return
	}

	if _, err := s.roundTrip(ctx, cmdExit, nil); err != nil {
		s.logger.WarnContext(ctx, "Device session exit failed", slog.Any("error", err))
	}
	s.teardown()
	s.state = stateIdle
}

// GetDeviceInfo reads the terminal's identity options and counters.
func (s *Session) GetDeviceInfo(ctx context.Context) (*service.DeviceInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireConnected(); err != nil {
		return nil, err
	}

	info := &service.DeviceInfo{}
	options := []struct {
		name string
		dst  *string
	}{
		{"~SerialNumber", &info.SerialNumber},
		{"FirmVer", &info.FirmwareVersion},
		{"~Platform", &info.Platform},
		{"~DeviceName", &info.DeviceName},
	}
	for _, opt := range options {
		value, err := s.readOption(ctx, opt.name)
		if err != nil {
			return nil, errors.Wrapf(err, "read option %s", opt.name)
		}
		*opt.dst = value
	}

	reply, err := s.roundTrip(ctx, cmdFreeSizes, nil)
	if err != nil {
		return nil, errors.Wrap(err, "read free sizes")
	}
	fillFreeSizes(info, reply.Payload)

	return info, nil
}

// GetUsers dumps every identity enrolled on the terminal.
func (s *Session) GetUsers(ctx context.Context) ([]service.DeviceUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireConnected(); err != nil {
		return nil, err
	}

	data, err := s.readBulk(ctx, cmdUserRead)
	if err != nil {
		return nil, errors.Wrap(err, "read users")
	}

	return parseUserData(data), nil
}

// GetAttendanceLogs dumps the terminal's entire punch buffer. The device
// has no cursor; the dump is all-or-nothing and may hold thousands of
// records.
func (s *Session) GetAttendanceLogs(ctx context.Context) ([]service.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireConnected(); err != nil {
		return nil, err
	}

	data, err := s.readBulk(ctx, cmdAttLogRead)
	if err != nil {
		return nil, errors.Wrap(err, "read attendance logs")
	}

	return parseAttendanceData(data), nil
}

// ClearAttendanceLogs irreversibly erases the terminal's punch buffer.
func (s *Session) ClearAttendanceLogs(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireConnected(); err != nil {
		return err
	}

	reply, err := s.roundTrip(ctx, cmdClearAttLog, nil)
	if err != nil {
		return errors.Wrap(err, "clear attendance logs")
	}
	if reply.Command != cmdAckOK {
		return errors.Errorf("clear attendance logs rejected with command %d", reply.Command)
	}

	return nil
}

// EnableRealtime registers for pushed punch events and starts the read
// loop. Bulk operations are refused while the stream is active because the
// loop owns the connection's read side.
func (s *Session) EnableRealtime(ctx context.Context, handler service.RealtimeHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireConnected(); err != nil {
		return err
	}
	if s.realtimeOn {
		return service.ErrRealtimeActive
	}

	payload := make([]byte, 4)
	binary.LittleEndian.PutUint32(payload, eventAttLog)
	reply, err := s.roundTrip(ctx, cmdRegEvent, payload)
	if err != nil {
		return errors.Wrap(err, "register realtime events")
	}
	if reply.Command != cmdAckOK {
		return errors.Errorf("realtime registration rejected with command %d", reply.Command)
	}

	s.realtimeOn = true
	s.realtimeStop = make(chan struct{})
	s.realtimeDone.Add(1)
	go s.realtimeLoop(s.conn, s.realtimeStop, handler)

	return nil
}

// DisableRealtime stops the realtime stream, if active.
func (s *Session) DisableRealtime() {
	s.stopRealtime()
}

func (s *Session) stopRealtime() {
	s.mu.Lock()
	if !s.realtimeOn {
		s.mu.Unlock()

		return
	}
	s.realtimeOn = false
	close(s.realtimeStop)
	s.mu.Unlock()

	s.realtimeDone.Wait()
}

func (s *Session) realtimeLoop(conn net.Conn, stop <-chan struct{}, handler service.RealtimeHandler) {
	defer s.realtimeDone.Done()

	for {
		select {
		case <-stop:
			return
		default:
		}

		// Short deadline so the stop channel is polled between reads.
		if err := conn.SetReadDeadline(time.Now().Add(realtimePollInterval)); err != nil {
			return
		}
		reply, err := readFrame(conn)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			s.logger.Warn("Realtime stream closed", slog.Any("error", err))

			return
		}
		if reply.Command != cmdRegEvent {
			continue
		}

		record, err := parseRealtimeEntry(reply.Payload)
		if err != nil {
			s.logger.Warn("Dropping malformed realtime event", slog.Any("error", err))

			continue
		}
		handler(record)
	}
}

// requireConnected enforces the session state machine for data operations.
func (s *Session) requireConnected() error {
	if s.state != stateConnected {
		return service.ErrNotConnected
	}
	if s.realtimeOn {
		return service.ErrRealtimeActive
	}

	return nil
}

// roundTrip writes one request frame and reads its reply.
func (s *Session) roundTrip(ctx context.Context, command uint16, payload []byte) (packet, error) {
	deadline := time.Now().Add(s.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := s.conn.SetDeadline(deadline); err != nil {
		return packet{}, errors.Wrap(err, "set deadline")
	}

	s.replyID++
	frame := encodePacket(packet{
		Command:   command,
		SessionID: s.sessionID,
		ReplyID:   s.replyID,
		Payload:   payload,
	})
	if _, err := s.conn.Write(frame); err != nil {
		return packet{}, errors.Wrap(err, "write frame")
	}

	return readFrame(s.conn)
}

// readBulk runs the free-data exchange used for user and attendance dumps:
// small datasets arrive inline in an ACK_DATA reply, large ones are
// announced with PREPARE_DATA and streamed in DATA frames, terminated by
// an ACK and released with FREE_DATA.
func (s *Session) readBulk(ctx context.Context, command uint16) ([]byte, error) {
	reply, err := s.roundTrip(ctx, command, nil)
	if err != nil {
		return nil, err
	}

	switch reply.Command {
	case cmdAckData:
		return reply.Payload, nil
	case cmdAckOK:
		// Empty dataset.
		return nil, nil
	case cmdPrepareData:
		// Announced below.
	default:
		return nil, errors.Errorf("bulk read rejected with command %d", reply.Command)
	}

	if len(reply.Payload) < 4 {
		return nil, errors.New("prepare-data reply missing size")
	}
	size := binary.LittleEndian.Uint32(reply.Payload[0:4])

	data := make([]byte, 0, size)
	for uint32(len(data)) < size {
		chunk, err := readFrame(s.conn)
		if err != nil {
			return nil, errors.Wrap(err, "read data frame")
		}
		switch chunk.Command {
		case cmdData:
			data = append(data, chunk.Payload...)
		case cmdAckOK:
			// Terminal finished early; take what arrived.
			return data, nil
		default:
			return nil, errors.Errorf("unexpected command %d during bulk read", chunk.Command)
		}
	}

	// Trailing ACK after the last data frame, then release the buffer.
	if tail, err := readFrame(s.conn); err == nil && tail.Command != cmdAckOK {
		s.logger.Debug("Unexpected bulk read trailer", slog.Int("command", int(tail.Command)))
	}
	if _, err := s.roundTrip(ctx, cmdFreeData, nil); err != nil {
		s.logger.Warn("Failed to release device data buffer", slog.Any("error", err))
	}

	return data, nil
}

// readOption queries a single named option; the reply is "name=value".
func (s *Session) readOption(ctx context.Context, name string) (string, error) {
	reply, err := s.roundTrip(ctx, cmdOptionsRead, append([]byte(name), 0))
	if err != nil {
		return "", err
	}
	if reply.Command != cmdAckOK && reply.Command != cmdAckData {
		return "", errors.Errorf("option read rejected with command %d", reply.Command)
	}

	value := cstring(reply.Payload)
	if _, after, found := strings.Cut(value, "="); found {
		return after, nil
	}

	return value, nil
}

func (s *Session) teardown() {
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			s.logger.Debug("Device connection close failed", slog.Any("error", err))
		}
		s.conn = nil
	}
}

// readFrame reads one complete frame from the wire.
func readFrame(conn net.Conn) (packet, error) {
	header := make([]byte, tcpHeaderSize)
	if _, err := io.ReadFull(conn, header); err != nil {
		return packet{}, errors.Wrap(err, "read frame header")
	}
	if header[0] != tcpMagic[0] || header[1] != tcpMagic[1] || header[2] != tcpMagic[2] || header[3] != tcpMagic[3] {
		return packet{}, errors.New("bad frame magic")
	}

	length := binary.LittleEndian.Uint32(header[4:8])
	if length < 8 || length > 1<<20 {
		return packet{}, errors.Errorf("implausible frame length %d", length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(conn, body); err != nil {
		return packet{}, errors.Wrap(err, "read frame body")
	}

	return decodeBody(body)
}

// fillFreeSizes decodes the counter block returned by the free-sizes
// command: an array of little-endian int32s where index 4 is the enrolled
// user count, 8 the buffered record count and 16 the record capacity.
func fillFreeSizes(info *service.DeviceInfo, payload []byte) {
	at := func(index int) int {
		offset := index * 4
		if offset+4 > len(payload) {
			return 0
		}

		return int(int32(binary.LittleEndian.Uint32(payload[offset : offset+4])))
	}

	info.UserCount = at(4)
	info.RecordCount = at(8)
	info.RecordCapacity = at(16)
}
