package netplay

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// conn wraps a net.Conn with the length-prefixed framing netplay uses
// (a 4-byte little-endian length followed by an Encode-d message) and
// a background reader goroutine so Poll never blocks the emulation
// thread (spec.md §5's one concurrency exception).
type conn struct {
	nc net.Conn

	writeMu sync.Mutex

	inbox  chan Message
	errc   chan error
	closed chan struct{}
	once   sync.Once
}

func newConn(nc net.Conn) *conn {
	c := &conn{
		nc:     nc,
		inbox:  make(chan Message, 64),
		errc:   make(chan error, 1),
		closed: make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *conn) readLoop() {
	for {
		var lenBuf [4]byte
		if _, err := io.ReadFull(c.nc, lenBuf[:]); err != nil {
			c.fail(err)
			return
		}
		frameLen := binary.LittleEndian.Uint32(lenBuf[:])
		if frameLen > MaxMessageSize {
			c.fail(fmt.Errorf("netplay: frame of %d bytes exceeds %d byte limit", frameLen, MaxMessageSize))
			return
		}
		payload := make([]byte, frameLen)
		if _, err := io.ReadFull(c.nc, payload); err != nil {
			c.fail(err)
			return
		}
		msg, err := Decode(payload)
		if err != nil {
			c.fail(err)
			return
		}
		select {
		case c.inbox <- msg:
		case <-c.closed:
			return
		}
	}
}

func (c *conn) fail(err error) {
	select {
	case c.errc <- err:
	default:
	}
	c.Close()
}

// Write sends one message, length-prefixed, synchronously.
func (c *conn) Write(m Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	payload := Encode(m)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := c.nc.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := c.nc.Write(payload)
	return err
}

// TryRead returns the next decoded message without blocking, or
// (Message{}, false) if none is buffered yet.
func (c *conn) TryRead() (Message, bool) {
	select {
	case m := <-c.inbox:
		return m, true
	default:
		return Message{}, false
	}
}

// Err returns a transport error observed by the read loop, if any.
func (c *conn) Err() error {
	select {
	case err := <-c.errc:
		return err
	default:
		return nil
	}
}

func (c *conn) Close() {
	c.once.Do(func() {
		close(c.closed)
		c.nc.Close()
	})
}

func dial(addr string, timeout time.Duration) (*conn, error) {
	nc, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	return newConn(nc), nil
}

func listenAndAccept(addr string, timeout time.Duration) (*conn, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer ln.Close()

	if tl, ok := ln.(*net.TCPListener); ok {
		tl.SetDeadline(time.Now().Add(timeout))
	}
	nc, err := ln.Accept()
	if err != nil {
		return nil, err
	}
	return newConn(nc), nil
}
