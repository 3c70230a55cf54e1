package cpu

import "gameboy-emulator/internal/memory"

// === OR Operations ===
// OR operations perform bitwise OR between register A and another operand
// Result is stored in register A
// All OR operations affect flags: Z N H C
// Z: Set if result is zero
// N: Always reset (logical operation)
// H: Always reset (Game Boy specification for OR operations)
// C: Always reset (no carry in logical OR)

// OR_A_A - Bitwise OR register A with itself (0xB7)
// Since A | A = A, this operation effectively tests if A is zero
// Common use: Quick zero test that also clears N, H, and C
// Flags affected: Z N H C
// Z: Set if A is zero
// N: Always reset (logical operation)
// H: Always reset (Game Boy OR specification)
// C: Always reset (no carry in OR)
// Cycles: 4
func (cpu *CPU) OR_A_A() uint8 {
	// A | A = A, so result is always A
	result := cpu.A | cpu.A
	cpu.A = result

	// Update flags according to Game Boy OR specification
	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 4 // Takes 4 CPU cycles
}

// OR_A_B - Bitwise OR register A with register B (0xB0)
// Performs bitwise OR between A and B, stores result in A
// Common use: Combining bit masks held in B
// Flags affected: Z N H C
// Z: Set if result is zero
// N: Always reset (logical operation)
// H: Always reset (Game Boy OR specification)
// C: Always reset (no carry in OR)
// Cycles: 4
func (cpu *CPU) OR_A_B() uint8 {
	result := cpu.A | cpu.B
	cpu.A = result

	// Update flags according to Game Boy OR specification
	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 4 // Takes 4 CPU cycles
}

// OR_A_C - Bitwise OR register A with register C (0xB1)
// Performs bitwise OR between A and C, stores result in A
// Flags affected: Z N H C (Z set if result zero, others reset)
// Cycles: 4
func (cpu *CPU) OR_A_C() uint8 {
	result := cpu.A | cpu.C
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 4 // Takes 4 CPU cycles
}

// OR_A_D - Bitwise OR register A with register D (0xB2)
// Performs bitwise OR between A and D, stores result in A
// Flags affected: Z N H C (Z set if result zero, others reset)
// Cycles: 4
func (cpu *CPU) OR_A_D() uint8 {
	result := cpu.A | cpu.D
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 4 // Takes 4 CPU cycles
}

// OR_A_E - Bitwise OR register A with register E (0xB3)
// Performs bitwise OR between A and E, stores result in A
// Flags affected: Z N H C (Z set if result zero, others reset)
// Cycles: 4
func (cpu *CPU) OR_A_E() uint8 {
	result := cpu.A | cpu.E
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 4 // Takes 4 CPU cycles
}

// OR_A_H - Bitwise OR register A with register H (0xB4)
// Performs bitwise OR between A and H, stores result in A
// Flags affected: Z N H C (Z set if result zero, others reset)
// Cycles: 4
func (cpu *CPU) OR_A_H() uint8 {
	result := cpu.A | cpu.H
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 4 // Takes 4 CPU cycles
}

// OR_A_L - Bitwise OR register A with register L (0xB5)
// Performs bitwise OR between A and L, stores result in A
// Flags affected: Z N H C (Z set if result zero, others reset)
// Cycles: 4
func (cpu *CPU) OR_A_L() uint8 {
	result := cpu.A | cpu.L
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 4 // Takes 4 CPU cycles
}

// OR_A_HL - Bitwise OR register A with memory value at address HL (0xB6)
// Performs bitwise OR between A and the byte at (HL), stores result in A
// Flags affected: Z N H C (Z set if result zero, others reset)
// Cycles: 8 (extra cycles for memory access)
func (cpu *CPU) OR_A_HL(mmu memory.MemoryInterface) uint8 {
	value := mmu.ReadByte(cpu.GetHL())
	result := cpu.A | value
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory read)
}

// OR_A_n - Bitwise OR register A with immediate 8-bit value (0xF6)
// Performs bitwise OR between A and an immediate byte, stores result in A
// Common use: Setting specific bits with a constant mask
// Flags affected: Z N H C (Z set if result zero, others reset)
// Cycles: 8 (extra cycles for immediate fetch)
func (cpu *CPU) OR_A_n(value uint8) uint8 {
	result := cpu.A | value
	cpu.A = result

	cpu.SetFlag(FlagZ, result == 0) // Zero flag: set if result is zero
	cpu.SetFlag(FlagN, false)       // Subtract flag: always reset for logical operations
	cpu.SetFlag(FlagH, false)       // Half-carry flag: always reset for OR operations
	cpu.SetFlag(FlagC, false)       // Carry flag: always reset for OR operations

	return 8 // Takes 8 CPU cycles (4 opcode + 4 immediate fetch)
}
