// Package serial implements the Game Boy's serial (link cable) port:
// the SB/SC shift register and the closed set of peer devices a cable
// can be attached to (nothing, a local stdout sink, an in-memory
// buffer used by test ROMs, a Game Boy Printer stub, or a netplay
// peer).
package serial

// Serial register addresses in I/O memory space.
const (
	SBRegister = 0xFF01 // Serial transfer data
	SCRegister = 0xFF02 // Serial transfer control
)

// SC register bit masks.
const (
	SCTransferStart  = 0x80 // Bit 7: transfer start/active
	SCClockSpeed     = 0x02 // Bit 1: CGB fast clock select
	SCClockSource    = 0x01 // Bit 0: 1 = internal clock, 0 = external
	SCUnusedBitsMask = 0x7C // Bits 6-2 unused, always read 1 (except CGB speed bit)
)

// Cycle counts for one bit of shift at the internal clock, DMG speed
// and CGB double-speed fast mode (spec.md §4.8: 2^13 and 2^8 T-cycles).
const (
	NormalBitCycles = 8192
	FastBitCycles   = 256
)

// Device is the closed set of peer variants a serial port can be
// attached to (spec.md §9's "closed set of variants"). Each device is
// driven through three operations: Send (what byte it offers when the
// local shift completes and it is read from), Receive (what it does
// with the byte the local device shifted out), and an optional Tick
// for devices that themselves drive the shift clock (external-clock
// transfers; the netplay peer is the only built-in example).
type Device interface {
	Send() uint8
	Receive(byte uint8)
}

// NoneDevice is the disconnected state: nothing is attached, so a
// transfer on the external clock never completes and reads return
// 0xFF (spec.md §4.8's "serial reads returning 0xFF" disconnect
// semantics).
type NoneDevice struct{}

func (NoneDevice) Send() uint8      { return 0xFF }
func (NoneDevice) Receive(uint8)    {}

// StdoutDevice prints every received byte to standard output as a
// character, used by frontends that want to watch test-ROM output
// live. Grounded on original_source/src/devices/stdout.rs.
type StdoutDevice struct {
	writer func(b byte)
}

// NewStdoutDevice creates a device that forwards received bytes to
// writer (typically wrapping os.Stdout.Write at the cmd/ boundary).
func NewStdoutDevice(writer func(b byte)) *StdoutDevice {
	return &StdoutDevice{writer: writer}
}

func (d *StdoutDevice) Send() uint8 { return 0xFF }
func (d *StdoutDevice) Receive(b uint8) {
	if d.writer != nil {
		d.writer(b)
	}
}

// BufferDevice accumulates every received byte, the device seed
// scenario 1 (Blargg cpu_instrs) needs to capture serial test-ROM
// output for a "Passed all tests" substring check. Grounded on
// original_source/src/devices/buffer.rs.
type BufferDevice struct {
	buf []byte
}

// NewBufferDevice creates an empty capture buffer.
func NewBufferDevice() *BufferDevice {
	return &BufferDevice{}
}

func (d *BufferDevice) Send() uint8 { return 0xFF }
func (d *BufferDevice) Receive(b uint8) {
	d.buf = append(d.buf, b)
}

// String returns everything received so far as text.
func (d *BufferDevice) String() string {
	return string(d.buf)
}

// Bytes returns the raw bytes received so far.
func (d *BufferDevice) Bytes() []byte {
	return d.buf
}

// printerState walks the Game Boy Printer's command protocol state
// machine. Grounded on original_source/src/devices/printer.rs.
type printerState uint8

const (
	printerMagic1 printerState = iota
	printerMagic2
	printerIdentification
	printerCompression
	printerLengthLow
	printerLengthHigh
	printerData
	printerChecksumLow
	printerChecksumHigh
	printerKeepAlive
	printerStatus
)

const (
	printerCmdInit   = 0x01
	printerCmdStart  = 0x02
	printerCmdData   = 0x04
	printerCmdStatus = 0x0F
)

// PrinterDevice is a minimal Game Boy Printer protocol stub: it
// recognizes the magic-byte/command/length/data/checksum handshake
// closely enough to ack every command, and accumulates printed image
// rows so a frontend can render them, without implementing tile
// decompression.
type PrinterDevice struct {
	state         printerState
	command       uint8
	compression   bool
	dataLen       uint16
	lengthLeft    uint16
	checksum      uint16
	status        uint8
	byteOut       uint8
	data          [0x280]byte
	printedImages [][]byte
}

// NewPrinterDevice creates a printer in its post-reset idle state.
func NewPrinterDevice() *PrinterDevice {
	return &PrinterDevice{}
}

func (p *PrinterDevice) Send() uint8 { return p.byteOut }

func (p *PrinterDevice) Receive(b uint8) {
	p.byteOut = 0x00
	switch p.state {
	case printerMagic1:
		if b != 0x88 {
			return
		}
		p.command = 0
		p.dataLen = 0
	case printerMagic2:
		if b != 0x33 {
			if b != 0x88 {
				p.state = printerMagic1
			}
			return
		}
	case printerIdentification:
		p.command = b
	case printerCompression:
		p.compression = b&0x01 == 0x01
	case printerLengthLow:
		p.lengthLeft = uint16(b)
	case printerLengthHigh:
		p.lengthLeft |= uint16(b) << 8
	case printerData:
		if int(p.dataLen) < len(p.data) {
			p.data[p.dataLen] = b
		}
		p.dataLen++
		if p.lengthLeft > 0 {
			p.lengthLeft--
		}
	case printerChecksumLow:
		p.checksum = uint16(b)
	case printerChecksumHigh:
		p.checksum |= uint16(b) << 8
		p.byteOut = 0x81
	case printerKeepAlive:
		p.runCommand()
	case printerStatus:
		p.state = printerMagic1
		return
	}

	if p.state != printerData {
		p.state++
	}
	if p.state == printerData && p.lengthLeft == 0 {
		p.state++
	}
}

func (p *PrinterDevice) runCommand() {
	switch p.command {
	case printerCmdInit:
		p.status = 0x00
		p.byteOut = p.status
	case printerCmdStart:
		p.byteOut = p.status
		p.status = 0x06
	case printerCmdData:
		if p.dataLen == 0x280 {
			row := make([]byte, len(p.data))
			copy(row, p.data[:])
			p.printedImages = append(p.printedImages, row)
		}
		p.status = 0x08
		p.byteOut = p.status
	case printerCmdStatus:
		p.byteOut = p.status
		if p.status == 0x06 {
			p.status = 0x00
		}
	}
}

// Images returns every completed 0x280-byte image buffer printed so
// far, in print order.
func (p *PrinterDevice) Images() [][]byte {
	return p.printedImages
}

// Serial is the Game Boy link-cable port: an 8-bit shift register
// (SB), its control register (SC), and a shift counter/accumulator
// that steps one bit every NormalBitCycles/FastBitCycles T-cycles
// while a transfer is active and the internal clock drives it.
type Serial struct {
	sb uint8
	sc uint8

	bitsShifted    uint8
	cycleAcc       uint32
	doubleSpeed    bool
	transferActive bool

	device       Device
	interruptSet bool
}

// New creates a serial port attached to NoneDevice (cable unplugged).
func New() *Serial {
	return &Serial{device: NoneDevice{}}
}

// AttachDevice attaches a peer device; nil is equivalent to NoneDevice.
func (s *Serial) AttachDevice(d Device) {
	if d == nil {
		d = NoneDevice{}
	}
	s.device = d
}

// SetDoubleSpeed toggles the CGB fast-clock bit cycle count.
func (s *Serial) SetDoubleSpeed(enabled bool) {
	s.doubleSpeed = enabled
}

// IsSerialRegister reports whether addr is SB or SC.
func IsSerialRegister(addr uint16) bool {
	return addr == SBRegister || addr == SCRegister
}

func (s *Serial) IsSerialRegister(addr uint16) bool {
	return IsSerialRegister(addr)
}

// ReadRegister reads SB or SC.
func (s *Serial) ReadRegister(addr uint16) uint8 {
	switch addr {
	case SBRegister:
		return s.sb
	case SCRegister:
		sc := s.sc | SCUnusedBitsMask
		if !s.doubleSpeedBitSet() {
			sc &^= SCClockSpeed
		}
		return sc
	default:
		return 0xFF
	}
}

func (s *Serial) doubleSpeedBitSet() bool {
	return s.sc&SCClockSpeed != 0
}

// WriteRegister writes SB or SC. Writing SC with bit 7 set and bit 0
// set (internal clock) starts a transfer from bit 7 of SB.
func (s *Serial) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case SBRegister:
		s.sb = value
	case SCRegister:
		s.sc = value & (SCTransferStart | SCClockSpeed | SCClockSource)
		if s.sc&SCTransferStart != 0 && s.sc&SCClockSource != 0 {
			s.transferActive = true
			s.bitsShifted = 0
			s.cycleAcc = 0
		}
	}
}

// HasSerialInterrupt reports whether a transfer has completed since
// the last ClearSerialInterrupt.
func (s *Serial) HasSerialInterrupt() bool {
	return s.interruptSet
}

// ClearSerialInterrupt acknowledges the pending serial interrupt.
func (s *Serial) ClearSerialInterrupt() {
	s.interruptSet = false
}

// Update advances the shift clock by cycles T-cycles. Only
// internal-clock transfers progress here; an external-clock transfer
// only completes when the attached peer itself shifts a byte in
// (spec.md §4.8).
func (s *Serial) Update(cycles uint8) {
	if !s.transferActive || s.sc&SCClockSource == 0 {
		return
	}

	bitCycles := uint32(NormalBitCycles)
	if s.doubleSpeed && s.sc&SCClockSpeed != 0 {
		bitCycles = FastBitCycles
	}

	s.cycleAcc += uint32(cycles)
	for s.cycleAcc >= bitCycles && s.transferActive {
		s.cycleAcc -= bitCycles
		s.bitsShifted++
		if s.bitsShifted >= 8 {
			s.completeTransfer()
		}
	}
}

// completeTransfer exchanges one byte with the attached device: the
// peer receives what was shifted out, and SB ends up holding whatever
// the peer sends back.
func (s *Serial) completeTransfer() {
	sent := s.sb
	s.sb = s.device.Send()
	s.device.Receive(sent)

	s.transferActive = false
	s.sc &^= SCTransferStart
	s.interruptSet = true
}

// Reset returns the port to its post-power-on idle state, keeping the
// attached device.
func (s *Serial) Reset() {
	device := s.device
	*s = Serial{device: device}
}
