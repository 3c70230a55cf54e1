package cheat

import (
	"fmt"

	"gameboy-emulator/internal/cartridge"
)

// Database holds every cheat code registered for the current ROM,
// keyed by the address each patches.
type Database struct {
	genie map[uint16]GameGenieCode
	shark map[uint16]GameSharkCode
}

// NewDatabase creates an empty cheat database.
func NewDatabase() *Database {
	return &Database{
		genie: make(map[uint16]GameGenieCode),
		shark: make(map[uint16]GameSharkCode),
	}
}

// AddGameGenie parses and registers a Game Genie code.
func (d *Database) AddGameGenie(code string) (GameGenieCode, error) {
	c, err := ParseGameGenie(code)
	if err != nil {
		return GameGenieCode{}, err
	}
	d.genie[c.Addr] = c
	return c, nil
}

// AddGameShark parses and registers a GameShark code.
func (d *Database) AddGameShark(code string, ramBankMask uint8) (GameSharkCode, error) {
	c, err := ParseGameShark(code, ramBankMask)
	if err != nil {
		return GameSharkCode{}, err
	}
	d.shark[c.Addr] = c
	return c, nil
}

// RemoveGameGenie unregisters a previously added Game Genie code by
// the address it patches.
func (d *Database) RemoveGameGenie(addr uint16) {
	delete(d.genie, addr)
}

// RemoveGameShark unregisters a previously added GameShark code.
func (d *Database) RemoveGameShark(addr uint16) {
	delete(d.shark, addr)
}

// Reset clears every registered code.
func (d *Database) Reset() {
	d.genie = make(map[uint16]GameGenieCode)
	d.shark = make(map[uint16]GameSharkCode)
}

// RAMWriter is the subset of the memory bus GameShark patches are
// applied through.
type RAMWriter interface {
	WriteByte(addr uint16, value uint8)
}

// ApplyGameSharkPatches writes every registered GameShark code's new
// data to its target address. Called once per V-Blank (spec.md §4.3:
// "GameShark patches are written to RAM during VBlank").
func (d *Database) ApplyGameSharkPatches(mem RAMWriter) {
	for _, c := range d.shark {
		mem.WriteByte(c.Addr, c.PatchData(0))
	}
}

// PatchedMBC decorates a cartridge.MBC, applying registered Game
// Genie patches to ROM reads as they cross the MBC read boundary
// (spec.md §4.3). All other operations pass through unchanged.
type PatchedMBC struct {
	cartridge.MBC
	db *Database
}

// NewPatchedMBC wraps mbc so ROM reads are checked against db.
func NewPatchedMBC(mbc cartridge.MBC, db *Database) *PatchedMBC {
	return &PatchedMBC{MBC: mbc, db: db}
}

// ReadByte reads through the wrapped MBC, then substitutes a Game
// Genie patch's NewData when a code is registered for addr and
// IsValid accepts the fetched byte.
func (p *PatchedMBC) ReadByte(addr uint16) uint8 {
	value := p.MBC.ReadByte(addr)
	if addr > 0x7FFF {
		return value
	}
	if code, ok := p.db.genie[addr]; ok && code.IsValid(value) {
		return code.PatchData(value)
	}
	return value
}

// TickRTC forwards to the wrapped MBC's real-time clock when it has
// one (MBC3), so cheat-patched cartridges still advance their RTC.
func (p *PatchedMBC) TickRTC(cycles uint64) {
	if ticker, ok := p.MBC.(cartridge.RTCTicker); ok {
		ticker.TickRTC(cycles)
	}
}

var _ cartridge.MBC = (*PatchedMBC)(nil)
var _ cartridge.RTCTicker = (*PatchedMBC)(nil)

// Description returns a human-readable summary of a Game Genie code,
// matching the teacher pack's descriptive helpers elsewhere.
func (c GameGenieCode) Description() string {
	return fmt.Sprintf("Code: %s, Address: 0x%04x, New Data: 0x%02x, Old Data: 0x%02x",
		c.Code, c.Addr, c.NewData, c.OldData)
}

// Description returns a human-readable summary of a GameShark code.
func (c GameSharkCode) Description() string {
	return fmt.Sprintf("Code: %s, RAM Bank: 0x%02x, New Data: 0x%02x, Address: 0x%04x",
		c.Code, c.RAMBank, c.NewData, c.Addr)
}
