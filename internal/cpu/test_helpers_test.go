package cpu

import "gameboy-emulator/internal/memory"

// createTestMMU creates a fresh MMU instance for use in CPU tests.
func createTestMMU() *memory.MMU {
	return memory.NewMMU()
}
