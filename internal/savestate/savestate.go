// Package savestate implements the BESS ("Best Effort Save State")
// container: a little-endian, tagged-block format holding a snapshot
// of CPU registers, I/O registers, and every RAM region needed to
// resume emulation exactly where it left off. Grounded on spec.md §6
// and original_source/src/state.rs's block ordering (NAME, INFO, CORE,
// trailing buffers, footer). The BOSC compression envelope
// original_source wraps this in is explicitly out of scope.
package savestate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// EmulatorName identifies this implementation in the NAME block.
const EmulatorName = "gameboy-emulator v1"

// ExecutionMode mirrors the CPU's run state at the moment of capture.
type ExecutionMode uint8

const (
	ExecutionRunning ExecutionMode = 0
	ExecutionHalted  ExecutionMode = 1
	ExecutionStopped ExecutionMode = 2
)

// BESSMagic is the 4-byte footer magic identifying a well-formed file.
var BESSMagic = [4]byte{'B', 'E', 'S', 'S'}

// ErrBadMagic is returned when a save-state file's footer magic does
// not match BESSMagic.
var ErrBadMagic = errors.New("savestate: bad BESS magic")

// ErrTruncated is returned when a save-state file is shorter than its
// declared block structure requires.
var ErrTruncated = errors.New("savestate: truncated block")

// CoreState is everything a BESS file captures: CPU registers,
// interrupt state, the I/O register page, and the RAM regions needed
// to resume emulation.
type CoreState struct {
	Title    [16]byte
	Checksum [2]byte

	PC, AF, BC, DE, HL, SP uint16
	IME, IE                uint8
	Mode                   ExecutionMode

	IORegisters [128]byte

	WRAM          []byte
	VRAM          []byte
	MBCRAM        []byte
	OAM           []byte
	HRAM          []byte
	BGPalette     []byte
	ObjectPalette []byte
}

type blockBuffer struct {
	size, offset uint32
}

func writeBlock(buf *bytes.Buffer, tag string, payload []byte) {
	buf.WriteString(tag)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	buf.Write(lenBuf[:])
	buf.Write(payload)
}

func readBlockHeader(data []byte) (tag string, length uint32, rest []byte, err error) {
	if len(data) < 8 {
		return "", 0, nil, ErrTruncated
	}
	tag = string(data[0:4])
	length = binary.LittleEndian.Uint32(data[4:8])
	if uint32(len(data)-8) < length {
		return "", 0, nil, ErrTruncated
	}
	return tag, length, data[8:], nil
}

// Save serializes state into a BESS file: NAME, INFO, CORE, the
// trailing RAM buffers CORE's offset table points at, then the
// footer.
func Save(state CoreState) []byte {
	var buf bytes.Buffer

	writeBlock(&buf, "NAME", []byte(EmulatorName))
	writeBlock(&buf, "INFO", append(append([]byte{}, state.Title[:]...), state.Checksum[:]...))

	// Trailing buffers are appended after CORE; compute their offsets
	// relative to the start of the trailing-buffer region up front.
	regions := [][]byte{state.WRAM, state.VRAM, state.MBCRAM, state.OAM, state.HRAM, state.BGPalette, state.ObjectPalette}
	var bufs [7]blockBuffer
	var cursor uint32
	for i, r := range regions {
		bufs[i] = blockBuffer{size: uint32(len(r)), offset: cursor}
		cursor += uint32(len(r))
	}

	var core bytes.Buffer
	binary.Write(&core, binary.LittleEndian, uint16(1)) // major
	binary.Write(&core, binary.LittleEndian, uint16(0)) // minor
	binary.Write(&core, binary.LittleEndian, uint32(0)) // model, unused
	binary.Write(&core, binary.LittleEndian, state.PC)
	binary.Write(&core, binary.LittleEndian, state.AF)
	binary.Write(&core, binary.LittleEndian, state.BC)
	binary.Write(&core, binary.LittleEndian, state.DE)
	binary.Write(&core, binary.LittleEndian, state.HL)
	binary.Write(&core, binary.LittleEndian, state.SP)
	core.WriteByte(state.IME)
	core.WriteByte(state.IE)
	core.WriteByte(byte(state.Mode))
	core.WriteByte(0) // padding
	core.Write(state.IORegisters[:])
	for _, b := range bufs {
		binary.Write(&core, binary.LittleEndian, b.size)
		binary.Write(&core, binary.LittleEndian, b.offset)
	}
	writeBlock(&buf, "CORE", core.Bytes())

	for _, r := range regions {
		buf.Write(r)
	}

	startOfBESS := uint32(0) // NAME always begins the file
	var footer [8]byte
	binary.LittleEndian.PutUint32(footer[0:4], startOfBESS)
	copy(footer[4:8], BESSMagic[:])
	buf.Write(footer[:])

	return buf.Bytes()
}

// Load parses a BESS file produced by Save.
func Load(data []byte) (CoreState, error) {
	if len(data) < 8 || !bytes.Equal(data[len(data)-4:], BESSMagic[:]) {
		return CoreState{}, ErrBadMagic
	}
	body := data[:len(data)-8]

	tag, length, rest, err := readBlockHeader(body)
	if err != nil || tag != "NAME" {
		return CoreState{}, fmt.Errorf("savestate: expected NAME block: %w", err)
	}
	rest = rest[length:]

	tag, length, rest, err = readBlockHeader(rest)
	if err != nil || tag != "INFO" || length < 18 {
		return CoreState{}, fmt.Errorf("savestate: expected INFO block: %w", err)
	}
	var state CoreState
	copy(state.Title[:], rest[0:16])
	copy(state.Checksum[:], rest[16:18])
	rest = rest[length:]

	tag, length, rest, err = readBlockHeader(rest)
	if err != nil || tag != "CORE" {
		return CoreState{}, fmt.Errorf("savestate: expected CORE block: %w", err)
	}
	corePayload := rest[:length]
	trailing := rest[length:]

	cur := bytes.NewReader(corePayload)
	var major, minor uint16
	var model uint32
	binary.Read(cur, binary.LittleEndian, &major)
	binary.Read(cur, binary.LittleEndian, &minor)
	binary.Read(cur, binary.LittleEndian, &model)
	binary.Read(cur, binary.LittleEndian, &state.PC)
	binary.Read(cur, binary.LittleEndian, &state.AF)
	binary.Read(cur, binary.LittleEndian, &state.BC)
	binary.Read(cur, binary.LittleEndian, &state.DE)
	binary.Read(cur, binary.LittleEndian, &state.HL)
	binary.Read(cur, binary.LittleEndian, &state.SP)
	readByte(cur, &state.IME)
	readByte(cur, &state.IE)
	var mode uint8
	readByte(cur, &mode)
	state.Mode = ExecutionMode(mode)
	var padding uint8
	readByte(cur, &padding)
	io.ReadFull(cur, state.IORegisters[:])

	var bufs [7]blockBuffer
	for i := range bufs {
		binary.Read(cur, binary.LittleEndian, &bufs[i].size)
		binary.Read(cur, binary.LittleEndian, &bufs[i].offset)
	}

	slice := func(b blockBuffer) []byte {
		if b.size == 0 {
			return nil
		}
		end := b.offset + b.size
		if int(end) > len(trailing) {
			return nil
		}
		out := make([]byte, b.size)
		copy(out, trailing[b.offset:end])
		return out
	}
	state.WRAM = slice(bufs[0])
	state.VRAM = slice(bufs[1])
	state.MBCRAM = slice(bufs[2])
	state.OAM = slice(bufs[3])
	state.HRAM = slice(bufs[4])
	state.BGPalette = slice(bufs[5])
	state.ObjectPalette = slice(bufs[6])

	return state, nil
}

func readByte(r *bytes.Reader, out *uint8) {
	b, err := r.ReadByte()
	if err == nil {
		*out = b
	}
}
