package cpu

import (
	"gameboy-emulator/internal/memory"
)

// Control and Interrupt Instructions for Game Boy CPU
// These instructions control CPU execution state and interrupt handling

// ================================
// CPU Control Instructions
// ================================

// HALT - Halt CPU until interrupt (0x76)
// Stops CPU execution until an interrupt occurs
// Used for power saving and waiting for events
// Flags affected: None
// Cycles: 4
// Note: In real Game Boy, behavior depends on interrupt enable state
func (cpu *CPU) HALT(mmu memory.MemoryInterface) uint8 {
	cpu.Halted = true
	return 4 // 4 cycles
}

// speedSwitcher is implemented by the MMU; STOP consults it to carry out
// a CGB double-speed switch armed via KEY1 bit 0.
type speedSwitcher interface {
	PerformSpeedSwitch() bool
}

// STOP - Stop CPU and LCD until button press (0x10)
// Stops CPU and LCD completely until a button is pressed
// Most aggressive power saving mode
// Flags affected: None
// Cycles: 4
// Note: In real Game Boy, next byte is consumed (should be 0x00)
// On CGB, a STOP executed with KEY1 bit 0 armed performs the
// double-speed switch rather than an indefinite stop: real hardware
// resumes on its own a short, fixed delay later, so games that flip
// speed never need a button press to continue.
func (cpu *CPU) STOP(mmu memory.MemoryInterface) uint8 {
	if switcher, ok := mmu.(speedSwitcher); ok && switcher.PerformSpeedSwitch() {
		return 4
	}
	cpu.Stopped = true
	cpu.Halted = true // STOP also halts the CPU
	return 4 // 4 cycles
}

// ================================
// Interrupt Control Instructions
// ================================

// Interrupt Master Enable (IME) flag, Interrupt Enable register (IE) at
// 0xFFFF, and Interrupt Flag register (IF) at 0xFF0F are held by
// InterruptController; the 5 interrupt types are V-Blank, LCD STAT,
// Timer, Serial, and Joypad.

// DI - Disable Interrupts (0xF3)
// Disables interrupt handling by clearing the Interrupt Master Enable flag
// Prevents CPU from responding to interrupt requests
// Flags affected: None
// Cycles: 4
// Example usage: Critical sections where interrupts must not occur
func (cpu *CPU) DI(mmu memory.MemoryInterface) uint8 {
	cpu.InterruptsEnabled = false
	cpu.EIDelay = 0 // cancels any EI still waiting to take effect
	return 4 // 4 cycles
}

// EI - Enable Interrupts (0xFB)
// Schedules the Interrupt Master Enable flag to be set, not sets it
// directly: real hardware doesn't honor interrupts again until after the
// instruction that follows EI has executed. TickEIDelay, called once per
// CPU step ahead of interrupt sampling, counts this down and flips
// InterruptsEnabled when it reaches zero.
// Flags affected: None
// Cycles: 4
func (cpu *CPU) EI(mmu memory.MemoryInterface) uint8 {
	cpu.EIDelay = 2
	return 4 // 4 cycles
}

// TickEIDelay advances a pending EI's enable countdown by one CPU step.
// Call once per step, before interrupts are sampled for that step, so
// the instruction immediately following EI still runs with the old IME.
func (cpu *CPU) TickEIDelay() {
	if cpu.EIDelay == 0 {
		return
	}
	cpu.EIDelay--
	if cpu.EIDelay == 0 {
		cpu.InterruptsEnabled = true
	}
}

// ================================
// CPU State Query Functions
// ================================

// IsHalted returns true if CPU is in halt state
func (cpu *CPU) IsHalted() bool {
	return cpu.Halted
}

// IsStopped returns true if CPU is in stop state
func (cpu *CPU) IsStopped() bool {
	return cpu.Stopped
}

// AreInterruptsEnabled returns true if interrupts are enabled
func (cpu *CPU) AreInterruptsEnabled() bool {
	return cpu.InterruptsEnabled
}

// Resume - Resume CPU from halt/stop state
// Used by interrupt handling or external events
func (cpu *CPU) Resume() {
	cpu.Halted = false
	cpu.Stopped = false
}

// Implementation Notes:
//
// HALT Instruction:
// - Sets the Halted flag; the HALT bug (IME=0 with IF&IE!=0 waking the
//   CPU without vectoring) and wake-on-interrupt are handled by the
//   emulator's per-step loop, which also has IE/IF (InterruptController)
//   and vector dispatch (0x40, 0x48, 0x50, 0x58, 0x60).
//
// STOP Instruction:
// - Requires next byte to be 0x00 (handled by instruction fetch)
// - Stops CPU clock and LCD controller
// - Only joypad interrupts can wake from STOP
// - Our implementation sets both Stopped and Halted flags
//
// DI/EI Instructions:
// - DI: immediate effect, and cancels a still-pending EI
// - EI: delayed effect via EIDelay/TickEIDelay - IME flips on only after
//   the instruction following EI has run
// ================================
// Wrapper Functions for Opcode Dispatch
// ================================

// wrapHALT wraps the HALT instruction (0x76)
func wrapHALT(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.HALT(mmu), nil
}

// wrapSTOP wraps the STOP instruction (0x10)
func wrapSTOP(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.STOP(mmu), nil
}

// wrapDI wraps the DI instruction (0xF3)
func wrapDI(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.DI(mmu), nil
}

// wrapEI wraps the EI instruction (0xFB)
func wrapEI(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	return cpu.EI(mmu), nil
}
