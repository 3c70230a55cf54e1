package cartridge

import (
	"fmt"
)

// MBC (Memory Bank Controller) interface
// This defines what every MBC type must be able to do
type MBC interface {
	// ReadByte reads a byte from the cartridge at the given address
	// Address range: 0x0000-0x7FFF (ROM) and 0xA000-0xBFFF (external RAM)
	ReadByte(address uint16) uint8
	
	// WriteByte writes a byte to the cartridge (usually for bank switching)
	// Writing to ROM addresses usually changes which bank is selected
	WriteByte(address uint16, value uint8)
	
	// GetCurrentROMBank returns which ROM bank is currently selected
	// This is useful for debugging and save states
	GetCurrentROMBank() int
	
	// GetCurrentRAMBank returns which RAM bank is currently selected
	GetCurrentRAMBank() int
	
	// HasRAM returns true if this cartridge has external RAM
	HasRAM() bool
	
	// IsRAMEnabled returns true if external RAM is currently enabled
	IsRAMEnabled() bool
}

// MBC0 represents cartridges with no memory bank controller (ROM ONLY)
// These are simple cartridges that just contain ROM data with no banking
type MBC0 struct {
	romData []byte // The ROM data (exactly 32KB for MBC0)
}

// NewMBC0 creates a new MBC0 controller for ROM-only cartridges
func NewMBC0(romData []byte) *MBC0 {
	return &MBC0{
		romData: romData,
	}
}

// ReadByte reads from ROM (no banking, just direct access)
func (mbc *MBC0) ReadByte(address uint16) uint8 {
	// ROM area: 0x0000-0x7FFF (0-32767)
	if address <= 0x7FFF {
		// Make sure we don't read past the end of ROM
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF // Return 0xFF for out-of-bounds reads
	}
	
	// External RAM area: 0xA000-0xBFFF
	// MBC0 cartridges don't have external RAM, so return 0xFF
	if address >= 0xA000 && address <= 0xBFFF {
		return 0xFF
	}
	
	// Invalid address
	return 0xFF
}

// WriteByte handles writes (MBC0 doesn't support any writes)
func (mbc *MBC0) WriteByte(address uint16, value uint8) {
	// MBC0 doesn't support any writes - ROM is read-only
	// Just ignore the write (this is what real hardware does)
}

// GetCurrentROMBank always returns 0 for MBC0 (no banking)
func (mbc *MBC0) GetCurrentROMBank() int {
	return 0
}

// GetCurrentRAMBank always returns 0 for MBC0 (no RAM banking)
func (mbc *MBC0) GetCurrentRAMBank() int {
	return 0
}

// HasRAM returns false for MBC0 (no external RAM)
func (mbc *MBC0) HasRAM() bool {
	return false
}

// IsRAMEnabled returns false for MBC0 (no RAM to enable)
func (mbc *MBC0) IsRAMEnabled() bool {
	return false
}

// MBC1Controller represents cartridges with MBC1 memory bank controller
// This is the most common type, supporting up to 2MB ROM and 32KB RAM
type MBC1Controller struct {
	romData      []byte // The complete ROM data
	ramData      []byte // External RAM data (if any)

	// Raw hardware registers, exactly as real MBC1 silicon holds them
	bank1       int  // 5-bit register written at 0x2000-0x3FFF (low ROM bank bits)
	bank2       int  // 2-bit register written at 0x4000-0x5FFF (high ROM bits / RAM bank)
	bankingMode int  // Mode register at 0x6000-0x7FFF: 0 = simple, 1 = advanced
	ramEnabled  bool // Whether external RAM is enabled

	// Derived/cached selections, recomputed whenever a register above
	// changes. Kept around because GetCurrentROMBank/GetCurrentRAMBank
	// are part of the MBC interface.
	romBank int // Effective bank mapped at 0x4000-0x7FFF
	ramBank int // Effective RAM bank (0 outside advanced mode)

	// Configuration
	romBankCount int // Total number of ROM banks
	ramBankCount int // Total number of RAM banks
}

// NewMBC1 creates a new MBC1 controller
func NewMBC1(romData []byte, ramSize int) *MBC1Controller {
	// Calculate number of banks
	romBankCount := len(romData) / (16 * 1024) // 16KB per ROM bank
	ramBankCount := ramSize / (8 * 1024)       // 8KB per RAM bank

	// Create RAM data if needed
	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}

	mbc := &MBC1Controller{
		romData:      romData,
		ramData:      ramData,
		bank1:        1,
		ramEnabled:   false,
		romBankCount: romBankCount,
		ramBankCount: ramBankCount,
	}
	mbc.recomputeBanks()
	return mbc
}

// recomputeBanks derives the effective ROM/RAM bank selections from the
// bank1/bank2/mode registers. The 0x4000-0x7FFF window always combines
// both registers; only the advanced mode (bankingMode==1) lets bank2
// additionally steer the 0x0000-0x3FFF window and the RAM bank.
func (mbc *MBC1Controller) recomputeBanks() {
	rom := (mbc.bank2 << 5) | mbc.bank1
	if mbc.romBankCount > 0 {
		rom = rom % mbc.romBankCount
	}
	if rom == 0 {
		// Bank 0 is never selectable at 0x4000-0x7FFF; hardware forces
		// bank 1 instead.
		rom = 1
	}
	mbc.romBank = rom

	if mbc.bankingMode == 1 {
		ramBank := mbc.bank2
		if mbc.ramBankCount > 0 {
			ramBank = ramBank % mbc.ramBankCount
		}
		mbc.ramBank = ramBank
	} else {
		mbc.ramBank = 0
	}
}

// zeroBank returns the bank mapped at 0x0000-0x3FFF: fixed bank 0 in
// simple mode, bank2<<5 in advanced mode (the "MBC1 advanced banking
// mode" ROMs over 1 MiB require to reach their upper banks at all).
func (mbc *MBC1Controller) zeroBank() int {
	if mbc.bankingMode == 0 {
		return 0
	}
	bank := mbc.bank2 << 5
	if mbc.romBankCount > 0 {
		bank = bank % mbc.romBankCount
	}
	return bank
}

// ReadByte reads from ROM or RAM with banking
func (mbc *MBC1Controller) ReadByte(address uint16) uint8 {
	// Bank 0 area: 0x0000-0x3FFF
	if address <= 0x3FFF {
		romAddress := mbc.zeroBank()*16*1024 + int(address)
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}

	// Switchable ROM bank area: 0x4000-0x7FFF
	if address >= 0x4000 && address <= 0x7FFF {
		// Calculate the actual ROM address
		bankOffset := mbc.romBank * 16 * 1024  // Each bank is 16KB
		localAddress := int(address - 0x4000)  // Address within the bank
		romAddress := bankOffset + localAddress

		// Check bounds
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}

	// External RAM area: 0xA000-0xBFFF
	if address >= 0xA000 && address <= 0xBFFF {
		// Check if RAM is enabled and available
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return 0xFF
		}

		// Calculate RAM address with banking
		bankOffset := mbc.ramBank * 8 * 1024   // Each RAM bank is 8KB
		localAddress := int(address - 0xA000)  // Address within the bank
		ramAddress := bankOffset + localAddress

		// Check bounds
		if ramAddress < len(mbc.ramData) {
			return mbc.ramData[ramAddress]
		}
		return 0xFF
	}

	return 0xFF
}

// WriteByte handles banking and RAM writes
func (mbc *MBC1Controller) WriteByte(address uint16, value uint8) {
	// RAM Enable: 0x0000-0x1FFF
	if address <= 0x1FFF {
		// Enable RAM if lower 4 bits are 0x0A, disable otherwise
		mbc.ramEnabled = (value & 0x0F) == 0x0A
		return
	}

	// ROM Bank Select: 0x2000-0x3FFF
	if address >= 0x2000 && address <= 0x3FFF {
		mbc.bank1 = int(value & 0x1F)
		mbc.recomputeBanks()
		return
	}

	// RAM Bank Select / Upper ROM Bank: 0x4000-0x5FFF
	if address >= 0x4000 && address <= 0x5FFF {
		mbc.bank2 = int(value & 0x03)
		mbc.recomputeBanks()
		return
	}

	// Banking Mode Select: 0x6000-0x7FFF
	if address >= 0x6000 && address <= 0x7FFF {
		mbc.bankingMode = int(value & 0x01)
		mbc.recomputeBanks()
		return
	}

	// External RAM Write: 0xA000-0xBFFF
	if address >= 0xA000 && address <= 0xBFFF {
		// Check if RAM is enabled and available
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return // Ignore writes to disabled RAM
		}

		// Calculate RAM address with banking
		bankOffset := mbc.ramBank * 8 * 1024   // Each RAM bank is 8KB
		localAddress := int(address - 0xA000)  // Address within the bank
		ramAddress := bankOffset + localAddress

		// Check bounds and write
		if ramAddress < len(mbc.ramData) {
			mbc.ramData[ramAddress] = value
		}
		return
	}
}

// GetCurrentROMBank returns the currently selected ROM bank
func (mbc *MBC1Controller) GetCurrentROMBank() int {
	return mbc.romBank
}

// GetCurrentRAMBank returns the currently selected RAM bank
func (mbc *MBC1Controller) GetCurrentRAMBank() int {
	return mbc.ramBank
}

// HasRAM returns true if this cartridge has external RAM
func (mbc *MBC1Controller) HasRAM() bool {
	return len(mbc.ramData) > 0
}

// IsRAMEnabled returns true if external RAM is currently enabled
func (mbc *MBC1Controller) IsRAMEnabled() bool {
	return mbc.ramEnabled
}

// MBC2Controller implements Memory Bank Controller 2. Unlike MBC1, RAM is
// built into the cartridge itself: 512 x 4-bit nibbles, addressed through
// the normal external RAM window but only the low nibble of each byte is
// meaningful (the upper nibble always reads back as 1s on real hardware).
type MBC2Controller struct {
	romData []byte
	ramData [512]uint8 // 4-bit cells, stored one per byte for simplicity

	romBank      int
	ramEnabled   bool
	romBankCount int
}

// NewMBC2 creates a new MBC2 controller. MBC2 cartridges never carry
// external RAM beyond their built-in 512x4-bit array, so ramSize is unused.
func NewMBC2(romData []byte) *MBC2Controller {
	romBankCount := len(romData) / (16 * 1024)
	if romBankCount == 0 {
		romBankCount = 1
	}
	return &MBC2Controller{
		romData:      romData,
		romBank:      1,
		romBankCount: romBankCount,
	}
}

func (mbc *MBC2Controller) ReadByte(address uint16) uint8 {
	if address <= 0x3FFF {
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF
	}
	if address >= 0x4000 && address <= 0x7FFF {
		romAddress := mbc.romBank*16*1024 + int(address-0x4000)
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}
	if address >= 0xA000 && address <= 0xBFFF {
		if !mbc.ramEnabled {
			return 0xFF
		}
		// Only the low 9 bits of the address are wired; 0xA000-0xA1FF
		// mirrors across the rest of the A000-BFFF window.
		return 0xF0 | (mbc.ramData[address&0x1FF] & 0x0F)
	}
	return 0xFF
}

func (mbc *MBC2Controller) WriteByte(address uint16, value uint8) {
	if address <= 0x3FFF {
		// The least significant bit of the upper address byte selects
		// RAM-enable vs ROM-bank-select behavior for this write.
		if address&0x0100 == 0 {
			mbc.ramEnabled = (value & 0x0F) == 0x0A
			return
		}
		bank := int(value & 0x0F)
		if bank == 0 {
			bank = 1
		}
		if mbc.romBankCount > 0 {
			bank = bank % mbc.romBankCount
			if bank == 0 {
				bank = 1
			}
		}
		mbc.romBank = bank
		return
	}
	if address >= 0xA000 && address <= 0xBFFF {
		if !mbc.ramEnabled {
			return
		}
		mbc.ramData[address&0x1FF] = value & 0x0F
	}
}

func (mbc *MBC2Controller) GetCurrentROMBank() int { return mbc.romBank }
func (mbc *MBC2Controller) GetCurrentRAMBank() int { return 0 }
func (mbc *MBC2Controller) HasRAM() bool           { return true }
func (mbc *MBC2Controller) IsRAMEnabled() bool     { return mbc.ramEnabled }

// CyclesPerSecond is the DMG/CGB normal-speed T-cycle rate, used to
// convert accumulated ticks into RTC seconds.
const CyclesPerSecond = 4194304

// RTCTicker is implemented by MBCs that carry a real-time clock
// (currently MBC3). The emulator calls TickRTC once per Step with the
// same T-cycle count fed to the other peripherals, so the clock
// advances with emulated time rather than wall-clock time.
type RTCTicker interface {
	TickRTC(cycles uint64)
}

// MBC3Controller implements Memory Bank Controller 3: 7-bit ROM bank
// select (up to 2MB), up to 32KB RAM banked 0-3, and an optional real-time
// clock latched through RAM-bank-select values 0x08-0x0C. Per
// SPEC_FULL.md §12, the RTC advances only from T-cycles ticked into it
// (TickRTC), never from the host's wall clock, so it stays
// deterministic and save-state round-trippable.
type MBC3Controller struct {
	romData []byte
	ramData []byte

	romBank    int
	ramBank    int // 0-3 selects a RAM bank; 0x08-0x0C selects an RTC register
	ramEnabled bool

	romBankCount int
	ramBankCount int
	hasRTC       bool

	rtcCycleAccum uint64 // T-cycles accumulated since the last whole second
	rtcSeconds    int64  // Total elapsed seconds since power-on
	rtcHalted     bool
	latched       bool
	latchedDHM    [5]uint8 // seconds, minutes, hours, day-low, day-high(halt/carry)
}

// NewMBC3 creates a new MBC3 controller. hasRTC should be true for the
// MBC3_TIMER_* cartridge types.
func NewMBC3(romData []byte, ramSize int, hasRTC bool) *MBC3Controller {
	romBankCount := len(romData) / (16 * 1024)
	ramBankCount := ramSize / (8 * 1024)
	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}
	return &MBC3Controller{
		romData:      romData,
		ramData:      ramData,
		romBank:      1,
		romBankCount: romBankCount,
		ramBankCount: ramBankCount,
		hasRTC:       hasRTC,
	}
}

// TickRTC advances the real-time clock by cycles T-cycles. A no-op
// while halted (DH bit 6 set), matching real MBC3 hardware.
func (mbc *MBC3Controller) TickRTC(cycles uint64) {
	if !mbc.hasRTC || mbc.rtcHalted {
		return
	}
	mbc.rtcCycleAccum += cycles
	for mbc.rtcCycleAccum >= CyclesPerSecond {
		mbc.rtcCycleAccum -= CyclesPerSecond
		mbc.rtcSeconds++
	}
}

func (mbc *MBC3Controller) ReadByte(address uint16) uint8 {
	if address <= 0x3FFF {
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF
	}
	if address >= 0x4000 && address <= 0x7FFF {
		romAddress := mbc.romBank*16*1024 + int(address-0x4000)
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}
	if address >= 0xA000 && address <= 0xBFFF {
		if !mbc.ramEnabled {
			return 0xFF
		}
		if mbc.hasRTC && mbc.ramBank >= 0x08 && mbc.ramBank <= 0x0C {
			return mbc.readRTCRegister(mbc.ramBank)
		}
		bankOffset := mbc.ramBank * 8 * 1024
		localAddress := int(address - 0xA000)
		ramAddress := bankOffset + localAddress
		if ramAddress >= 0 && ramAddress < len(mbc.ramData) {
			return mbc.ramData[ramAddress]
		}
		return 0xFF
	}
	return 0xFF
}

func (mbc *MBC3Controller) WriteByte(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		mbc.ramEnabled = (value & 0x0F) == 0x0A

	case address >= 0x2000 && address <= 0x3FFF:
		bank := int(value & 0x7F)
		if bank == 0 {
			bank = 1
		}
		if mbc.romBankCount > 0 {
			bank = bank % mbc.romBankCount
			if bank == 0 {
				bank = 1
			}
		}
		mbc.romBank = bank

	case address >= 0x4000 && address <= 0x5FFF:
		mbc.ramBank = int(value)

	case address >= 0x6000 && address <= 0x7FFF:
		if mbc.hasRTC {
			mbc.latchRTC(value)
		}

	case address >= 0xA000 && address <= 0xBFFF:
		if !mbc.ramEnabled {
			return
		}
		if mbc.hasRTC && mbc.ramBank >= 0x08 && mbc.ramBank <= 0x0C {
			mbc.writeRTCRegister(mbc.ramBank, value)
			return
		}
		bankOffset := mbc.ramBank * 8 * 1024
		localAddress := int(address - 0xA000)
		ramAddress := bankOffset + localAddress
		if ramAddress >= 0 && ramAddress < len(mbc.ramData) {
			mbc.ramData[ramAddress] = value
		}
	}
}

// latchRTC snapshots the current RTC state on a 0x00->0x01 write sequence,
// matching the real hardware's edge-triggered latch behavior. A lone 0x01
// write (without a preceding 0x00) is treated the same way here since this
// model has no intermediate unlatched-read state to protect.
func (mbc *MBC3Controller) latchRTC(value uint8) {
	if value != 0x01 {
		return
	}
	elapsed := mbc.rtcSeconds
	days := elapsed / 86400
	rem := elapsed % 86400
	mbc.latchedDHM[0] = uint8(rem % 60)
	mbc.latchedDHM[1] = uint8((rem / 60) % 60)
	mbc.latchedDHM[2] = uint8(rem / 3600)
	mbc.latchedDHM[3] = uint8(days & 0xFF)
	dayHigh := uint8((days >> 8) & 0x01)
	if mbc.rtcHalted {
		dayHigh |= 0x40
	}
	if days > 0x1FF {
		dayHigh |= 0x80 // day counter carry
	}
	mbc.latchedDHM[4] = dayHigh
	mbc.latched = true
}

func (mbc *MBC3Controller) readRTCRegister(reg int) uint8 {
	idx := reg - 0x08
	if idx < 0 || idx > 4 {
		return 0xFF
	}
	return mbc.latchedDHM[idx]
}

// writeRTCRegister lets software set the clock directly (used by some
// games on first boot, and by save-state restores). DH (register 0x0C)
// is the only one that changes emulator behavior (halt gates TickRTC);
// the others just overwrite the corresponding field of the next latch.
func (mbc *MBC3Controller) writeRTCRegister(reg int, value uint8) {
	switch reg {
	case 0x08: // Seconds
		mbc.rtcSeconds = (mbc.rtcSeconds/86400)*86400 + (mbc.rtcSeconds/3600%24)*3600 + (mbc.rtcSeconds/60%60)*60 + int64(value%60)
	case 0x09: // Minutes
		mbc.rtcSeconds = (mbc.rtcSeconds/3600)*3600 + (mbc.rtcSeconds%3600)%60 + int64(value%60)*60
	case 0x0A: // Hours
		mbc.rtcSeconds = (mbc.rtcSeconds/86400)*86400 + (mbc.rtcSeconds % 3600) + int64(value%24)*3600
	case 0x0B: // Day counter low byte
		days := mbc.rtcSeconds / 86400
		days = (days &^ 0xFF) | int64(value)
		mbc.rtcSeconds = days*86400 + mbc.rtcSeconds%86400
	case 0x0C: // Day counter high bit / halt / carry
		mbc.rtcHalted = value&0x40 != 0
		days := mbc.rtcSeconds / 86400
		if value&0x01 != 0 {
			days |= 0x100
		} else {
			days &^= 0x100
		}
		mbc.rtcSeconds = days*86400 + mbc.rtcSeconds%86400
	}
}

func (mbc *MBC3Controller) GetCurrentROMBank() int { return mbc.romBank }
func (mbc *MBC3Controller) GetCurrentRAMBank() int { return mbc.ramBank }
func (mbc *MBC3Controller) HasRAM() bool           { return len(mbc.ramData) > 0 }
func (mbc *MBC3Controller) IsRAMEnabled() bool     { return mbc.ramEnabled }

// MBC5Controller implements Memory Bank Controller 5: full 9-bit ROM bank
// select (up to 8MB / 512 banks, the only MBC whose bank register can
// address bank 0 in the switchable window), and up to 128KB RAM across 16
// banks. This is the standard controller for CGB-era titles.
type MBC5Controller struct {
	romData []byte
	ramData []byte

	romBank    int // 0-511, 9 bits split across two registers
	ramBank    int // 0-15
	ramEnabled bool

	romBankCount int
	ramBankCount int
}

func NewMBC5(romData []byte, ramSize int) *MBC5Controller {
	romBankCount := len(romData) / (16 * 1024)
	ramBankCount := ramSize / (8 * 1024)
	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}
	return &MBC5Controller{
		romData:      romData,
		ramData:      ramData,
		romBank:      1,
		romBankCount: romBankCount,
		ramBankCount: ramBankCount,
	}
}

func (mbc *MBC5Controller) ReadByte(address uint16) uint8 {
	if address <= 0x3FFF {
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF
	}
	if address >= 0x4000 && address <= 0x7FFF {
		romAddress := mbc.romBank*16*1024 + int(address-0x4000)
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}
	if address >= 0xA000 && address <= 0xBFFF {
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return 0xFF
		}
		ramAddress := mbc.ramBank*8*1024 + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			return mbc.ramData[ramAddress]
		}
		return 0xFF
	}
	return 0xFF
}

func (mbc *MBC5Controller) WriteByte(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		mbc.ramEnabled = (value & 0x0F) == 0x0A

	case address >= 0x2000 && address <= 0x2FFF:
		mbc.romBank = (mbc.romBank &^ 0xFF) | int(value)
		mbc.clampROMBank()

	case address >= 0x3000 && address <= 0x3FFF:
		mbc.romBank = (mbc.romBank &^ 0x100) | (int(value&0x01) << 8)
		mbc.clampROMBank()

	case address >= 0x4000 && address <= 0x5FFF:
		mbc.ramBank = int(value & 0x0F)
		if mbc.ramBankCount > 0 {
			mbc.ramBank = mbc.ramBank % mbc.ramBankCount
		}

	case address >= 0xA000 && address <= 0xBFFF:
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return
		}
		ramAddress := mbc.ramBank*8*1024 + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			mbc.ramData[ramAddress] = value
		}
	}
}

// clampROMBank wraps an out-of-range bank into the cartridge's actual bank
// count. Unlike MBC1/MBC3, MBC5 does not remap bank 0 to bank 1 - it is a
// valid, distinct selection in the switchable window.
func (mbc *MBC5Controller) clampROMBank() {
	if mbc.romBankCount > 0 && mbc.romBank >= mbc.romBankCount {
		mbc.romBank = mbc.romBank % mbc.romBankCount
	}
}

func (mbc *MBC5Controller) GetCurrentROMBank() int { return mbc.romBank }
func (mbc *MBC5Controller) GetCurrentRAMBank() int { return mbc.ramBank }
func (mbc *MBC5Controller) HasRAM() bool           { return len(mbc.ramData) > 0 }
func (mbc *MBC5Controller) IsRAMEnabled() bool     { return mbc.ramEnabled }

// CreateMBC creates the appropriate MBC for a cartridge
// This is a factory function that returns the right MBC type based on the cartridge
func CreateMBC(cartridge *Cartridge) (MBC, error) {
	switch cartridge.CartridgeType {
	case ROM_ONLY:
		return NewMBC0(cartridge.ROMData), nil
		
	case MBC1, MBC1_RAM, MBC1_RAM_BATTERY:
		return NewMBC1(cartridge.ROMData, cartridge.RAMSize), nil

	case MBC2, MBC2_BATTERY:
		return NewMBC2(cartridge.ROMData), nil

	case MBC3, MBC3_RAM, MBC3_RAM_BATTERY:
		return NewMBC3(cartridge.ROMData, cartridge.RAMSize, false), nil

	case MBC3_TIMER_BATTERY, MBC3_TIMER_RAM_BATTERY:
		return NewMBC3(cartridge.ROMData, cartridge.RAMSize, true), nil

	case MBC5, MBC5_RAM, MBC5_RAM_BATTERY, MBC5_RUMBLE, MBC5_RUMBLE_RAM, MBC5_RUMBLE_RAM_BATTERY:
		return NewMBC5(cartridge.ROMData, cartridge.RAMSize), nil

	default:
		return nil, fmt.Errorf("unsupported cartridge type: %s", cartridge.GetCartridgeTypeName())
	}
}