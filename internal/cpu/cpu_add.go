package cpu

import "gameboy-emulator/internal/memory"

// === ADD Instructions ===
// ADD adds a source operand to register A. It is the carry-free half of
// the ALU addition path; ADC (see cpu_adc.go) is the same circuit with
// the carry flag folded in.
// Flags affected: Z N H C
// Z: Set if result is zero
// N: Always reset (addition)
// H: Set on carry from bit 3 to bit 4
// C: Set on carry out of bit 7

func (cpu *CPU) add(a, operand uint8) uint8 {
	result16 := uint16(a) + uint16(operand)
	halfCarry := (a&0x0F)+(operand&0x0F) > 0x0F

	result := uint8(result16)

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, result16 > 0xFF)

	return result
}

// ADD_A_A adds A to itself (opcode 0x87)
// Effectively doubles A, so the carry flag doubles as a bit-7 test
func (cpu *CPU) ADD_A_A() uint8 {
	cpu.A = cpu.add(cpu.A, cpu.A)
	return 4
}

// ADD_A_B adds B to A (opcode 0x80)
func (cpu *CPU) ADD_A_B() uint8 {
	cpu.A = cpu.add(cpu.A, cpu.B)
	return 4
}

// ADD_A_C adds C to A (opcode 0x81)
func (cpu *CPU) ADD_A_C() uint8 {
	cpu.A = cpu.add(cpu.A, cpu.C)
	return 4
}

// ADD_A_D adds D to A (opcode 0x82)
func (cpu *CPU) ADD_A_D() uint8 {
	cpu.A = cpu.add(cpu.A, cpu.D)
	return 4
}

// ADD_A_E adds E to A (opcode 0x83)
func (cpu *CPU) ADD_A_E() uint8 {
	cpu.A = cpu.add(cpu.A, cpu.E)
	return 4
}

// ADD_A_H adds H to A (opcode 0x84)
func (cpu *CPU) ADD_A_H() uint8 {
	cpu.A = cpu.add(cpu.A, cpu.H)
	return 4
}

// ADD_A_L adds L to A (opcode 0x85)
func (cpu *CPU) ADD_A_L() uint8 {
	cpu.A = cpu.add(cpu.A, cpu.L)
	return 4
}

// ADD_A_HL adds the byte at (HL) to A (opcode 0x86)
func (cpu *CPU) ADD_A_HL(mmu memory.MemoryInterface) uint8 {
	value := mmu.ReadByte(cpu.GetHL())
	cpu.A = cpu.add(cpu.A, value)
	return 8
}

// ADD_A_n adds an immediate byte to A (opcode 0xC6)
func (cpu *CPU) ADD_A_n(value uint8) uint8 {
	cpu.A = cpu.add(cpu.A, value)
	return 8
}

// === Wrapper Functions for Opcode Dispatch ===

// wrapADD_A_HL wraps the ADD A,(HL) instruction (0x86)
// The register-operand ADD wrappers live in opcodes_arithmetic.go
func wrapADD_A_HL(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADD_A_HL(mmu)
	return cycles, nil
}
