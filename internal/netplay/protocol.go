// Package netplay implements the link-cable peer protocol: a
// length-prefixed framed message set carried over TCP that lets two
// emulator instances exchange serial bytes as if a physical link
// cable connected them, plus latency tracking and a ROM-identity
// handshake. Grounded on
// original_source/src/netplay/protocol.rs and session.rs.
package netplay

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ProtocolVersion is bumped whenever the wire format changes in an
// incompatible way; a Hello with a mismatched version is rejected.
const ProtocolVersion uint16 = 1

// Magic is the 4-byte frame header identifying a netplay message.
var Magic = [4]byte{'B', 'O', 'Y', 'N'}

// MaxMessageSize bounds a single frame; oversized frames close the
// connection (spec.md §4.8 failure semantics).
const MaxMessageSize = 65536

// MessageType identifies the payload that follows the frame header.
type MessageType uint8

const (
	MsgHello        MessageType = 0x01
	MsgHelloAck     MessageType = 0x02
	MsgSerialByte   MessageType = 0x07
	MsgSyncByte     MessageType = 0x08
	MsgSyncRequest  MessageType = 0x09
	MsgPing         MessageType = 0x0B
	MsgPong         MessageType = 0x0C
	MsgDisconnect   MessageType = 0x0D
)

// ErrInvalidFrame is returned for frames with a bad magic header,
// unknown message type, or truncated payload.
var ErrInvalidFrame = errors.New("netplay: invalid frame")

// Message is the parsed form of any netplay wire message. Exactly the
// fields relevant to Type are meaningful; the rest are zero.
type Message struct {
	Type      MessageType
	Version   uint16
	RomHash   [16]byte
	SessionID uint64
	PlayerID  uint8
	Byte      uint8
	Timestamp uint64
}

// Hello builds a client handshake message.
func Hello(romHash [16]byte) Message {
	return Message{Type: MsgHello, Version: ProtocolVersion, RomHash: romHash}
}

// HelloAck builds a host handshake acknowledgment.
func HelloAck(sessionID uint64, playerID uint8) Message {
	return Message{Type: MsgHelloAck, SessionID: sessionID, PlayerID: playerID}
}

// SerialByte builds a link-cable byte-transfer message.
func SerialByte(b uint8) Message { return Message{Type: MsgSerialByte, Byte: b} }

// SyncByte builds a slave-SB-value response message.
func SyncByte(b uint8) Message { return Message{Type: MsgSyncByte, Byte: b} }

// SyncRequest builds a master's request for the slave's current SB value.
func SyncRequestMsg() Message { return Message{Type: MsgSyncRequest} }

// Ping builds a latency probe carrying a sender timestamp.
func Ping(ts uint64) Message { return Message{Type: MsgPing, Timestamp: ts} }

// Pong builds a latency probe reply echoing the original timestamp.
func Pong(ts uint64) Message { return Message{Type: MsgPong, Timestamp: ts} }

// Disconnect builds a graceful-close notification.
func Disconnect() Message { return Message{Type: MsgDisconnect} }

// Encode serializes m into the wire frame: magic, type byte, payload.
// The caller is responsible for length-prefixing the result before
// writing it to a stream (see Conn.WriteMessage).
func Encode(m Message) []byte {
	var buf bytes.Buffer
	buf.Write(Magic[:])
	buf.WriteByte(byte(m.Type))

	switch m.Type {
	case MsgHello:
		binary.Write(&buf, binary.LittleEndian, m.Version)
		buf.Write(m.RomHash[:])
	case MsgHelloAck:
		binary.Write(&buf, binary.LittleEndian, m.SessionID)
		buf.WriteByte(m.PlayerID)
	case MsgSerialByte, MsgSyncByte:
		buf.WriteByte(m.Byte)
	case MsgSyncRequest, MsgDisconnect:
		// no payload
	case MsgPing, MsgPong:
		binary.Write(&buf, binary.LittleEndian, m.Timestamp)
	}
	return buf.Bytes()
}

// Decode parses a wire frame produced by Encode.
func Decode(data []byte) (Message, error) {
	if len(data) < 5 {
		return Message{}, ErrInvalidFrame
	}
	if !bytes.Equal(data[0:4], Magic[:]) {
		return Message{}, ErrInvalidFrame
	}
	msgType := MessageType(data[4])
	body := data[5:]

	switch msgType {
	case MsgHello:
		if len(body) < 18 {
			return Message{}, ErrInvalidFrame
		}
		m := Message{Type: msgType, Version: binary.LittleEndian.Uint16(body[0:2])}
		copy(m.RomHash[:], body[2:18])
		return m, nil
	case MsgHelloAck:
		if len(body) < 9 {
			return Message{}, ErrInvalidFrame
		}
		return Message{
			Type:      msgType,
			SessionID: binary.LittleEndian.Uint64(body[0:8]),
			PlayerID:  body[8],
		}, nil
	case MsgSerialByte, MsgSyncByte:
		if len(body) < 1 {
			return Message{}, ErrInvalidFrame
		}
		return Message{Type: msgType, Byte: body[0]}, nil
	case MsgSyncRequest, MsgDisconnect:
		return Message{Type: msgType}, nil
	case MsgPing, MsgPong:
		if len(body) < 8 {
			return Message{}, ErrInvalidFrame
		}
		return Message{Type: msgType, Timestamp: binary.LittleEndian.Uint64(body[0:8])}, nil
	default:
		return Message{}, fmt.Errorf("netplay: %w: unknown message type 0x%02x", ErrInvalidFrame, msgType)
	}
}
