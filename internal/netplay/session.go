package netplay

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

// Role identifies which side of a netplay pairing this session plays.
type Role int

const (
	RoleHost Role = iota
	RoleClient
)

// State is the session's connection lifecycle.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "Connecting"
	case StatePlaying:
		return "Playing"
	default:
		return "Disconnected"
	}
}

// DefaultHandshakeTimeout is the default wait for a netplay handshake
// to complete (spec.md §5: "configurable timeout, default 5 s").
const DefaultHandshakeTimeout = 5 * time.Second

// ErrVersionMismatch and ErrRomMismatch are returned when a peer's
// Hello fails the compatibility checks a host performs before
// accepting a connection.
var (
	ErrVersionMismatch = errors.New("netplay: protocol version mismatch")
	ErrRomMismatch     = errors.New("netplay: ROM hash mismatch")
)

// pingWindowSize bounds the sliding latency-estimate window.
const pingWindowSize = 16

// Session is one side of a two-player link-cable netplay pairing. It
// implements the same two-operation interface
// (Send()/Receive(byte)) the local serial.Device variants do, so it
// can be attached directly to a serial.Serial port.
type Session struct {
	Role Role
	State State

	c         *conn
	sessionID uint64
	playerID  uint8
	romHash   [16]byte

	pingHistory []time.Duration
	lastPingAt  time.Time

	incomingSB uint8
	haveIncoming bool

	onDisconnect func(reason string)
}

// NewHost starts a host session: listens on addr, accepts one
// connection, and waits for a client Hello, rejecting it (and closing
// the connection) on a version or ROM hash mismatch.
func NewHost(addr string, romHash [16]byte, timeout time.Duration) (*Session, error) {
	if timeout <= 0 {
		timeout = DefaultHandshakeTimeout
	}
	c, err := listenAndAccept(addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("netplay: host accept failed: %w", err)
	}

	s := &Session{Role: RoleHost, State: StateConnecting, c: c, romHash: romHash}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msg, ok := c.TryRead(); ok {
			if msg.Type != MsgHello {
				continue
			}
			if msg.Version != ProtocolVersion {
				c.Write(Disconnect())
				c.Close()
				return nil, ErrVersionMismatch
			}
			if !bytes.Equal(msg.RomHash[:], romHash[:]) {
				c.Write(Disconnect())
				c.Close()
				return nil, ErrRomMismatch
			}
			s.sessionID = newSessionID(romHash)
			s.playerID = 1
			if err := c.Write(HelloAck(s.sessionID, 2)); err != nil {
				c.Close()
				return nil, fmt.Errorf("netplay: handshake ack failed: %w", err)
			}
			s.State = StatePlaying
			return s, nil
		}
		time.Sleep(time.Millisecond)
	}
	c.Close()
	return nil, fmt.Errorf("netplay: host handshake timed out waiting for Hello")
}

// NewClient connects to a host at addr and performs the client side
// of the handshake.
func NewClient(addr string, romHash [16]byte, timeout time.Duration) (*Session, error) {
	if timeout <= 0 {
		timeout = DefaultHandshakeTimeout
	}
	c, err := dial(addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("netplay: client dial failed: %w", err)
	}

	s := &Session{Role: RoleClient, State: StateConnecting, c: c, romHash: romHash}
	if err := c.Write(Hello(romHash)); err != nil {
		c.Close()
		return nil, fmt.Errorf("netplay: hello send failed: %w", err)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msg, ok := c.TryRead(); ok {
			switch msg.Type {
			case MsgHelloAck:
				s.sessionID = msg.SessionID
				s.playerID = msg.PlayerID
				s.State = StatePlaying
				return s, nil
			case MsgDisconnect:
				c.Close()
				return nil, fmt.Errorf("netplay: host rejected handshake")
			}
		}
		time.Sleep(time.Millisecond)
	}
	c.Close()
	return nil, fmt.Errorf("netplay: client handshake timed out waiting for HelloAck")
}

// OnDisconnect registers a callback invoked the moment Poll observes
// a transport error or peer Disconnect.
func (s *Session) OnDisconnect(cb func(reason string)) {
	s.onDisconnect = cb
}

// Poll drains every message buffered since the last call. It must be
// called once per frame from the emulation thread (spec.md §5); it
// never blocks.
func (s *Session) Poll() {
	if s.State == StateDisconnected {
		return
	}
	if err := s.c.Err(); err != nil {
		s.disconnect(err.Error())
		return
	}

	for {
		msg, ok := s.c.TryRead()
		if !ok {
			return
		}
		switch msg.Type {
		case MsgSerialByte, MsgSyncByte:
			s.incomingSB = msg.Byte
			s.haveIncoming = true
		case MsgSyncRequest:
			s.c.Write(SyncByte(s.incomingSB))
		case MsgPing:
			s.c.Write(Pong(msg.Timestamp))
		case MsgPong:
			s.recordLatency(msg.Timestamp)
		case MsgDisconnect:
			s.disconnect("peer disconnected")
			return
		}
	}
}

func (s *Session) disconnect(reason string) {
	s.State = StateDisconnected
	s.c.Close()
	if s.onDisconnect != nil {
		s.onDisconnect(reason)
	}
}

// Ping sends a latency probe; call periodically (e.g. once per
// second) from the emulation thread.
func (s *Session) Ping() {
	if s.State != StatePlaying {
		return
	}
	s.lastPingAt = time.Now()
	s.c.Write(Ping(uint64(s.lastPingAt.UnixNano())))
}

func (s *Session) recordLatency(sentAtNanos uint64) {
	sentAt := time.Unix(0, int64(sentAtNanos))
	rtt := time.Since(sentAt)
	s.pingHistory = append(s.pingHistory, rtt)
	if len(s.pingHistory) > pingWindowSize {
		s.pingHistory = s.pingHistory[1:]
	}
}

// LatencyMs returns the mean round-trip time over the sliding ping
// window, in milliseconds, or 0 if no pongs have been recorded yet.
func (s *Session) LatencyMs() uint32 {
	if len(s.pingHistory) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.pingHistory {
		total += d
	}
	return uint32((total / time.Duration(len(s.pingHistory))).Milliseconds())
}

// Disconnect closes the session gracefully, notifying the peer first.
func (s *Session) Disconnect() {
	if s.State == StateDisconnected {
		return
	}
	s.c.Write(Disconnect())
	s.disconnect("local disconnect")
}

// Send implements serial.Device: it returns the most recent byte
// received from the peer (or 0xFF before any has arrived or once
// disconnected, matching spec.md §4.8's disconnected-peer behavior).
func (s *Session) Send() uint8 {
	if s.State != StatePlaying || !s.haveIncoming {
		return 0xFF
	}
	return s.incomingSB
}

// Receive implements serial.Device: it forwards the locally shifted
// byte to the peer as a SerialByte message.
func (s *Session) Receive(b uint8) {
	if s.State != StatePlaying {
		return
	}
	s.c.Write(SerialByte(b))
}

// newSessionID derives a session identifier from the ROM hash and the
// current time; collisions are harmless since the id only scopes one
// live pairing.
func newSessionID(romHash [16]byte) uint64 {
	var id uint64
	for i := 0; i < 8; i++ {
		id = id<<8 | uint64(romHash[i])
	}
	return id ^ uint64(time.Now().UnixNano())
}
