package gt06

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/intelcon-group/gt06-client/internal/correlator"
	"github.com/intelcon-group/gt06-client/internal/frame"
	"github.com/intelcon-group/gt06-client/internal/reframer"
	"github.com/intelcon-group/gt06-client/internal/serial"
)

// Session is a single-connection GT06 client. Construct with
// NewSession; a zero-value Session is not usable.
type Session struct {
	transport Transport
	opts      Options

	serials    *serial.Allocator
	correlator *correlator.Correlator
	stateMu    sync.Mutex
	state      State
	writeMu    sync.Mutex
	conn       net.Conn
	readerDone chan struct{}
	heartbeat  Timer
	powerTimer Timer
	status     atomic.Pointer[DeviceStatus]
	callback   atomic.Pointer[CommandCallback]
}

// NewSession constructs a Session that will dial through transport.
// opts configures timeouts, retries, and the library's injectable
// collaborators; see DefaultOptions.
func NewSession(transport Transport, opts ...Option) (*Session, error) {
	resolved, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &Session{
		transport:  transport,
		opts:       resolved,
		serials:    serial.NewAllocator(),
		correlator: correlator.New(),
		state:      Idle,
	}
	s.status.Store(&DeviceStatus{})
	return s, nil
}

// State reports the session's current lifecycle state.
func (s *Session) State() State {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.stateMu.Lock()
	s.state = st
	s.stateMu.Unlock()
}

// Connect dials the transport, retrying up to opts.RetryCount
// additional times on failure. On exhaustion it transitions to
// RestartPending and arms a one-shot power-restart timer; a later
// successful Connect call cancels that timer.
func (s *Session) Connect(ctx context.Context) error {
	switch s.State() {
	case Connected, LoggedIn:
		return ErrAlreadyConnected
	}

	s.setState(Connecting)
	attempts := s.opts.RetryCount + 1
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			s.opts.Metrics.Reconnect()
		}
		conn, err := s.transport.Dial(ctx)
		if err == nil {
			s.onConnected(conn)
			return nil
		}
		lastErr = err
		s.opts.Logger.Warnf("connect attempt %d/%d failed: %v", i+1, attempts, err)
	}

	s.armPowerRestart()
	return fmt.Errorf("%w: %v", ErrConnectFailed, lastErr)
}

func (s *Session) onConnected(conn net.Conn) {
	if s.powerTimer != nil {
		s.powerTimer.Stop()
		s.powerTimer = nil
	}
	if s.heartbeat != nil {
		s.heartbeat.Stop()
		s.heartbeat = nil
	}
	s.conn = conn
	s.readerDone = make(chan struct{})
	s.setState(Connected)
	go s.readLoop(conn, s.readerDone)
}

func (s *Session) armPowerRestart() {
	s.setState(RestartPending)
	delay := s.opts.PowerRestartDelay
	s.powerTimer = s.opts.Clock.AfterFunc(delay, func() {
		s.opts.Logger.Errorf("connect retries exhausted, invoking power restart")
		s.opts.Metrics.PowerRestart()
		if err := s.opts.PowerRestarter.Restart(context.Background()); err != nil {
			s.opts.Logger.Errorf("power restart failed: %v", err)
		}
	})
}

// Close stops the heart-beat and power-restart timers, closes the
// connection, and transitions to Closed. Safe to call more than once.
func (s *Session) Close() error {
	if s.heartbeat != nil {
		s.heartbeat.Stop()
	}
	if s.powerTimer != nil {
		s.powerTimer.Stop()
	}
	s.correlator.CancelAll()
	var err error
	if s.conn != nil {
		err = s.conn.Close()
	}
	s.setState(Closed)
	return err
}

// readLoop owns conn for reading: it re-frames the byte stream,
// decodes each candidate frame, and either delivers it to the
// correlator or dispatches a server command callback. It exits (and
// transitions the session out of Connected/LoggedIn) when the
// connection is no longer readable.
func (s *Session) readLoop(conn net.Conn, done chan struct{}) {
	defer close(done)
	defer s.onDisconnected()

	rf := reframer.New()
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			for _, candidate := range rf.Feed(buf[:n]) {
				s.handleFrame(candidate)
			}
		}
		if err != nil {
			s.opts.Logger.Warnf("connection read error: %v", err)
			return
		}
	}
}

func (s *Session) onDisconnected() {
	s.correlator.CancelAll()
	if st := s.State(); st == Connected || st == LoggedIn {
		s.setState(Closed)
	}
}

func (s *Session) handleFrame(raw []byte) {
	f, err := frame.Decode(raw)
	if err != nil {
		s.opts.Logger.Warnf("dropping malformed frame: %v", newDecodeError(err))
		return
	}
	s.opts.Metrics.FrameReceived(f.Protocol)

	if f.Protocol == protoServerCommand {
		s.dispatchCommand(f.Payload)
		return
	}

	if !s.correlator.Deliver(correlator.Ack{Protocol: f.Protocol, Serial: f.Serial, Payload: f.Payload}) {
		s.opts.Logger.Debugf("no pending request for protocol 0x%02X serial %d", f.Protocol, f.Serial)
	}
}

func (s *Session) dispatchCommand(payload []byte) {
	cmd, err := parseServerCommand(payload)
	if err != nil {
		s.opts.Logger.Warnf("malformed server command: %v", err)
		return
	}
	cb := s.callback.Load()
	if cb == nil {
		s.opts.Logger.Warnf("%v", ErrCallbackMissing)
		return
	}
	go (*cb)(cmd)
}

// send writes a complete frame for protocol/payload, returning the
// serial it was sent under. It resets the heart-beat timer, since any
// outbound traffic defers the next automatic heart-beat.
func (s *Session) send(protocol byte, payload []byte) (uint16, error) {
	if s.conn == nil {
		return 0, ErrNotConnected
	}
	sn := s.serials.Next()
	raw, err := frame.Encode(protocol, sn, payload)
	if err != nil {
		return 0, fmt.Errorf("gt06: encoding protocol 0x%02X: %w", protocol, err)
	}

	s.writeMu.Lock()
	_, err = s.conn.Write(raw)
	s.writeMu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	s.opts.Metrics.FrameSent(protocol)
	if s.heartbeat != nil {
		s.heartbeat.Reset(s.opts.HeartbeatPeriod)
	}
	return sn, nil
}

// sendAndWait sends protocol/payload and blocks for a matching ack
// (ackProtocol, the serial just used) up to opts.Timeout.
func (s *Session) sendAndWait(protocol, ackProtocol byte, payload []byte) ([]byte, error) {
	sn, err := s.send(protocol, payload)
	if err != nil {
		return nil, err
	}
	ack, err := s.correlator.Await(correlator.Key{Protocol: ackProtocol, Serial: sn}, s.opts.Timeout)
	if err != nil {
		if err == correlator.ErrConnectionLost {
			return nil, ErrNotConnected
		}
		s.opts.Metrics.AckTimeout(ackProtocol)
		return nil, fmt.Errorf("%w: %v", ErrAckTimeout, err)
	}
	return ack.Payload, nil
}

func (s *Session) armHeartbeat() {
	if s.heartbeat != nil {
		s.heartbeat.Stop()
	}
	s.heartbeat = s.opts.Clock.AfterFunc(s.opts.HeartbeatPeriod, s.onHeartbeatFired)
}

func (s *Session) onHeartbeatFired() {
	if s.State() != LoggedIn {
		return
	}
	if err := s.ReportDeviceStatus(); err != nil {
		s.opts.Logger.Warnf("heartbeat failed: %v", err)
	}
	s.heartbeat.Reset(s.opts.HeartbeatPeriod)
}
