package cpu

import "gameboy-emulator/internal/memory"

// === Register-Pair Memory Loads and Stores ===
// Single-byte transfers between A (or another register) and the memory
// cell addressed by a register pair. None of these touch flags; the
// extra 4 cycles over a register copy pay for the memory access.

// LD_A_BC - Load memory value at address BC into register A (0x0A)
// Like fetching whatever sits at the address written on the BC label
func (cpu *CPU) LD_A_BC(mmu memory.MemoryInterface) uint8 {
	cpu.A = mmu.ReadByte(cpu.GetBC())
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory read)
}

// LD_A_DE - Load memory value at address DE into register A (0x1A)
// Like fetching whatever sits at the address written on the DE label
func (cpu *CPU) LD_A_DE(mmu memory.MemoryInterface) uint8 {
	cpu.A = mmu.ReadByte(cpu.GetDE())
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory read)
}

// LD_A_HL - Load memory value at address HL into register A (0x7E)
// The most common memory read: HL is the Game Boy's workhorse pointer
func (cpu *CPU) LD_A_HL(mmu memory.MemoryInterface) uint8 {
	cpu.A = mmu.ReadByte(cpu.GetHL())
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory read)
}

// LD_BC_A - Store register A at memory address BC (0x02)
// Like dropping a copy of drawer A at the address written on the BC label
func (cpu *CPU) LD_BC_A(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetBC(), cpu.A)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_DE_A - Store register A at memory address DE (0x12)
// Like dropping a copy of drawer A at the address written on the DE label
func (cpu *CPU) LD_DE_A(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetDE(), cpu.A)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_HL_A - Store register A at memory address HL (0x77)
func (cpu *CPU) LD_HL_A(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetHL(), cpu.A)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_HL_B - Store register B at memory address HL (0x70)
func (cpu *CPU) LD_HL_B(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetHL(), cpu.B)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_HL_C - Store register C at memory address HL (0x71)
func (cpu *CPU) LD_HL_C(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetHL(), cpu.C)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_HL_D - Store register D at memory address HL (0x72)
func (cpu *CPU) LD_HL_D(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetHL(), cpu.D)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_HL_E - Store register E at memory address HL (0x73)
func (cpu *CPU) LD_HL_E(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetHL(), cpu.E)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_HL_H - Store register H at memory address HL (0x74)
// H supplies both half the address and the value being stored
func (cpu *CPU) LD_HL_H(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetHL(), cpu.H)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// LD_HL_L - Store register L at memory address HL (0x75)
// L supplies both half the address and the value being stored
func (cpu *CPU) LD_HL_L(mmu memory.MemoryInterface) uint8 {
	mmu.WriteByte(cpu.GetHL(), cpu.L)
	return 8 // Takes 8 CPU cycles (4 opcode + 4 memory write)
}

// === Wrapper Functions for Opcode Dispatch ===
// The LD (HL),A / LD A,(rr) wrappers live in opcodes_load.go alongside
// the rest of the load family; only the (HL),r stores are wrapped here.

// wrapLD_HL_B wraps the LD (HL),B instruction (0x70)
func wrapLD_HL_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.LD_HL_B(mmu)
	return cycles, nil
}

// wrapLD_HL_C wraps the LD (HL),C instruction (0x71)
func wrapLD_HL_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.LD_HL_C(mmu)
	return cycles, nil
}

// wrapLD_HL_D wraps the LD (HL),D instruction (0x72)
func wrapLD_HL_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.LD_HL_D(mmu)
	return cycles, nil
}

// wrapLD_HL_E wraps the LD (HL),E instruction (0x73)
func wrapLD_HL_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.LD_HL_E(mmu)
	return cycles, nil
}

// wrapLD_HL_H wraps the LD (HL),H instruction (0x74)
func wrapLD_HL_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.LD_HL_H(mmu)
	return cycles, nil
}

// wrapLD_HL_L wraps the LD (HL),L instruction (0x75)
func wrapLD_HL_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.LD_HL_L(mmu)
	return cycles, nil
}
