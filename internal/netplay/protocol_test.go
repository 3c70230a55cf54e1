package netplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeHelloRoundTrip(t *testing.T) {
	var hash [16]byte
	copy(hash[:], "0123456789abcdef")
	m := Hello(hash)

	decoded, err := Decode(Encode(m))
	assert.NoError(t, err)
	assert.Equal(t, MsgHello, decoded.Type)
	assert.Equal(t, ProtocolVersion, decoded.Version)
	assert.Equal(t, hash, decoded.RomHash)
}

func TestEncodeDecodeHelloAckRoundTrip(t *testing.T) {
	m := HelloAck(0xDEADBEEFCAFE, 2)
	decoded, err := Decode(Encode(m))
	assert.NoError(t, err)
	assert.Equal(t, uint64(0xDEADBEEFCAFE), decoded.SessionID)
	assert.Equal(t, uint8(2), decoded.PlayerID)
}

func TestEncodeDecodeSerialByteRoundTrip(t *testing.T) {
	decoded, err := Decode(Encode(SerialByte(0x42)))
	assert.NoError(t, err)
	assert.Equal(t, MsgSerialByte, decoded.Type)
	assert.Equal(t, uint8(0x42), decoded.Byte)
}

func TestEncodeDecodePingPongRoundTrip(t *testing.T) {
	decoded, err := Decode(Encode(Ping(123456789)))
	assert.NoError(t, err)
	assert.Equal(t, uint64(123456789), decoded.Timestamp)

	decoded, err = Decode(Encode(Pong(987654321)))
	assert.NoError(t, err)
	assert.Equal(t, MsgPong, decoded.Type)
	assert.Equal(t, uint64(987654321), decoded.Timestamp)
}

func TestEncodeDecodeNoPayloadMessages(t *testing.T) {
	decoded, err := Decode(Encode(Disconnect()))
	assert.NoError(t, err)
	assert.Equal(t, MsgDisconnect, decoded.Type)

	decoded, err = Decode(Encode(SyncRequestMsg()))
	assert.NoError(t, err)
	assert.Equal(t, MsgSyncRequest, decoded.Type)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	frame := Encode(Disconnect())
	frame[0] = 'X'
	_, err := Decode(frame)
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestDecodeRejectsTruncatedFrame(t *testing.T) {
	_, err := Decode([]byte{'B', 'O', 'Y'})
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	frame := Encode(Ping(1))
	_, err := Decode(frame[:len(frame)-4])
	assert.ErrorIs(t, err, ErrInvalidFrame)
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	frame := Encode(Disconnect())
	frame[4] = 0xFE
	_, err := Decode(frame)
	assert.ErrorIs(t, err, ErrInvalidFrame)
}
