package cpu

import (
	"fmt"

	"gameboy-emulator/internal/memory"
)

// === ADC (Add with Carry) Instructions ===
// ADC adds a source operand and the current carry flag to A. It
// mirrors SUB/SBC's structure (see cpu_sbc.go) but runs the addition
// side of the ALU: the carry-in is folded into both the half-carry
// and carry checks before the result is computed.
// Flags affected: Z N H C (N always cleared)

func (cpu *CPU) adc(a, operand uint8) uint8 {
	carryIn := uint8(0)
	if cpu.GetFlag(FlagC) {
		carryIn = 1
	}

	result16 := uint16(a) + uint16(operand) + uint16(carryIn)
	halfCarry := (a&0x0F)+(operand&0x0F)+carryIn > 0x0F

	result := uint8(result16)

	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, result16 > 0xFF)

	return result
}

// ADC_A_A adds A and the carry flag to A (opcode 0x8F)
func (cpu *CPU) ADC_A_A() uint8 {
	cpu.A = cpu.adc(cpu.A, cpu.A)
	return 4
}

// ADC_A_B adds B and the carry flag to A (opcode 0x88)
func (cpu *CPU) ADC_A_B() uint8 {
	cpu.A = cpu.adc(cpu.A, cpu.B)
	return 4
}

// ADC_A_C adds C and the carry flag to A (opcode 0x89)
func (cpu *CPU) ADC_A_C() uint8 {
	cpu.A = cpu.adc(cpu.A, cpu.C)
	return 4
}

// ADC_A_D adds D and the carry flag to A (opcode 0x8A)
func (cpu *CPU) ADC_A_D() uint8 {
	cpu.A = cpu.adc(cpu.A, cpu.D)
	return 4
}

// ADC_A_E adds E and the carry flag to A (opcode 0x8B)
func (cpu *CPU) ADC_A_E() uint8 {
	cpu.A = cpu.adc(cpu.A, cpu.E)
	return 4
}

// ADC_A_H adds H and the carry flag to A (opcode 0x8C)
func (cpu *CPU) ADC_A_H() uint8 {
	cpu.A = cpu.adc(cpu.A, cpu.H)
	return 4
}

// ADC_A_L adds L and the carry flag to A (opcode 0x8D)
func (cpu *CPU) ADC_A_L() uint8 {
	cpu.A = cpu.adc(cpu.A, cpu.L)
	return 4
}

// ADC_A_HL adds the byte at (HL) and the carry flag to A (opcode 0x8E)
func (cpu *CPU) ADC_A_HL(mmu memory.MemoryInterface) uint8 {
	value := mmu.ReadByte(cpu.GetHL())
	cpu.A = cpu.adc(cpu.A, value)
	return 8
}

// ADC_A_n adds an immediate byte and the carry flag to A (opcode 0xCE)
func (cpu *CPU) ADC_A_n(value uint8) uint8 {
	cpu.A = cpu.adc(cpu.A, value)
	return 8
}

// === Wrapper Functions for Opcode Dispatch ===

func wrapADC_A_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_A(), nil
}

func wrapADC_A_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_B(), nil
}

func wrapADC_A_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_C(), nil
}

func wrapADC_A_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_D(), nil
}

func wrapADC_A_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_E(), nil
}

func wrapADC_A_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_H(), nil
}

func wrapADC_A_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_L(), nil
}

func wrapADC_A_HL(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.ADC_A_HL(mmu), nil
}

func wrapADC_A_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("ADC A,n requires 1 parameter")
	}
	return cpu.ADC_A_n(params[0]), nil
}
