package cpu

import "gameboy-emulator/internal/memory"

// === RST (Restart) Instructions ===
// RST pushes the current PC onto the stack and jumps to one of eight
// fixed low-memory vectors. It behaves like a CALL to a hard-coded
// address, commonly used for interrupt-style service routines that
// game code invokes directly to save ROM space.
// Flags affected: None
// Cycles: 16

func (cpu *CPU) rst(mmu memory.MemoryInterface, vector uint16) uint8 {
	cpu.SP--
	mmu.WriteByte(cpu.SP, uint8(cpu.PC>>8))
	cpu.SP--
	mmu.WriteByte(cpu.SP, uint8(cpu.PC&0xFF))

	cpu.PC = vector
	return 16
}

// RST_00H restarts at 0x0000 (opcode 0xC7)
func (cpu *CPU) RST_00H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0000)
}

// RST_08H restarts at 0x0008 (opcode 0xCF)
func (cpu *CPU) RST_08H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0008)
}

// RST_10H restarts at 0x0010 (opcode 0xD7)
func (cpu *CPU) RST_10H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0010)
}

// RST_18H restarts at 0x0018 (opcode 0xDF)
func (cpu *CPU) RST_18H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0018)
}

// RST_20H restarts at 0x0020 (opcode 0xE7)
func (cpu *CPU) RST_20H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0020)
}

// RST_28H restarts at 0x0028 (opcode 0xEF)
func (cpu *CPU) RST_28H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0028)
}

// RST_30H restarts at 0x0030 (opcode 0xF7)
func (cpu *CPU) RST_30H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0030)
}

// RST_38H restarts at 0x0038 (opcode 0xFF)
func (cpu *CPU) RST_38H(mmu memory.MemoryInterface) uint8 {
	return cpu.rst(mmu, 0x0038)
}

// === Wrapper Functions for Opcode Dispatch ===

func wrapRST_00H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_00H(mmu), nil
}

func wrapRST_08H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_08H(mmu), nil
}

func wrapRST_10H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_10H(mmu), nil
}

func wrapRST_18H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_18H(mmu), nil
}

func wrapRST_20H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_20H(mmu), nil
}

func wrapRST_28H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_28H(mmu), nil
}

func wrapRST_30H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_30H(mmu), nil
}

func wrapRST_38H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.RST_38H(mmu), nil
}
