package cpu

// === L Register Load Instructions ===
// Register-to-register copies in and out of L, plus the immediate load.
// None of these touch flags.

// LD_A_L - Copy register L to register A (0x7D)
// Like photocopying what's in drawer L and putting copy in drawer A
func (cpu *CPU) LD_A_L() uint8 {
	cpu.A = cpu.L // Copy L's value to A
	return 4      // Takes 4 CPU cycles
}

// LD_B_L - Copy register L to register B (0x45)
// Like photocopying what's in drawer L and putting copy in drawer B
func (cpu *CPU) LD_B_L() uint8 {
	cpu.B = cpu.L // Copy L's value to B
	return 4      // Takes 4 CPU cycles
}

// LD_C_L - Copy register L to register C (0x4D)
// Like photocopying what's in drawer L and putting copy in drawer C
func (cpu *CPU) LD_C_L() uint8 {
	cpu.C = cpu.L // Copy L's value to C
	return 4      // Takes 4 CPU cycles
}

// LD_L_A - Copy register A to register L (0x6F)
// Like photocopying what's in drawer A and putting copy in drawer L
func (cpu *CPU) LD_L_A() uint8 {
	cpu.L = cpu.A // Copy A's value to L
	return 4      // Takes 4 CPU cycles
}

// LD_L_B - Copy register B to register L (0x68)
// Like photocopying what's in drawer B and putting copy in drawer L
func (cpu *CPU) LD_L_B() uint8 {
	cpu.L = cpu.B // Copy B's value to L
	return 4      // Takes 4 CPU cycles
}

// LD_L_C - Copy register C to register L (0x69)
// Like photocopying what's in drawer C and putting copy in drawer L
func (cpu *CPU) LD_L_C() uint8 {
	cpu.L = cpu.C // Copy C's value to L
	return 4      // Takes 4 CPU cycles
}

// LD_L_D - Copy register D to register L (0x6A)
// Like photocopying what's in drawer D and putting copy in drawer L
func (cpu *CPU) LD_L_D() uint8 {
	cpu.L = cpu.D // Copy D's value to L
	return 4      // Takes 4 CPU cycles
}

// LD_L_E - Copy register E to register L (0x6B)
// Like photocopying what's in drawer E and putting copy in drawer L
func (cpu *CPU) LD_L_E() uint8 {
	cpu.L = cpu.E // Copy E's value to L
	return 4      // Takes 4 CPU cycles
}

// LD_L_H - Copy register H to register L (0x6C)
// Like photocopying what's in drawer H and putting copy in drawer L
func (cpu *CPU) LD_L_H() uint8 {
	cpu.L = cpu.H // Copy H's value to L
	return 4      // Takes 4 CPU cycles
}

// LD_L_n - Load immediate 8-bit value into register L (0x2E)
// Like writing a number on a sticky note and putting it in drawer L
func (cpu *CPU) LD_L_n(value uint8) uint8 {
	cpu.L = value
	return 8 // Takes 8 CPU cycles (fetch opcode + fetch immediate value)
}
