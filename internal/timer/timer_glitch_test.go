package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTIMAOverflowIsDelayed verifies the 4-cycle gap between TIMA
// wrapping to 0x00 and the TMA reload/interrupt actually firing.
func TestTIMAOverflowIsDelayed(t *testing.T) {
	tm := NewTimer()
	tm.TAC = TAC_ENABLE_BIT | TAC_262144_HZ // 16 cycles/increment
	tm.TMA = 0x7A
	tm.TIMA = 0xFF

	tm.Update(16) // TIMA wraps to 0x00, reload armed but not yet applied
	assert.Equal(t, uint8(0x00), tm.TIMA)
	assert.False(t, tm.HasTimerInterrupt())
	assert.True(t, tm.IsOverflowPending())

	tm.Update(4) // delay elapses
	assert.Equal(t, tm.TMA, tm.TIMA)
	assert.True(t, tm.HasTimerInterrupt())
	assert.False(t, tm.IsOverflowPending())
}

// TestTIMAWriteCancelsOverflow verifies a TIMA write during the delay
// window cancels the pending TMA reload.
func TestTIMAWriteCancelsOverflow(t *testing.T) {
	tm := NewTimer()
	tm.TAC = TAC_ENABLE_BIT | TAC_262144_HZ
	tm.TMA = 0x7A
	tm.TIMA = 0xFF

	tm.Update(16)
	assert.True(t, tm.IsOverflowPending())

	tm.WriteTIMA(0x55)
	assert.False(t, tm.IsOverflowPending())

	tm.Update(4)
	assert.Equal(t, uint8(0x55), tm.TIMA)
	assert.False(t, tm.HasTimerInterrupt())
}

// TestDIVWriteGlitchesTIMA verifies that resetting DIV while the
// TAC-selected bit is set produces a spurious extra TIMA increment.
func TestDIVWriteGlitchesTIMA(t *testing.T) {
	tm := NewTimer()
	tm.TAC = TAC_ENABLE_BIT | TAC_4096_HZ // selected bit is divCounter bit 9
	tm.TIMA = 0x10
	tm.divCounter = 1 << 9 // selected bit currently set

	tm.WriteDIV(0xFF)

	assert.Equal(t, uint8(0x11), tm.TIMA, "falling edge on the selected bit should glitch TIMA up by one")
	assert.Equal(t, uint16(0), tm.divCounter)
}

// TestDIVWriteNoGlitchWhenBitAlreadyClear verifies no spurious
// increment happens when the selected bit was already 0.
func TestDIVWriteNoGlitchWhenBitAlreadyClear(t *testing.T) {
	tm := NewTimer()
	tm.TAC = TAC_ENABLE_BIT | TAC_4096_HZ
	tm.TIMA = 0x10
	tm.divCounter = 0

	tm.WriteDIV(0xFF)

	assert.Equal(t, uint8(0x10), tm.TIMA)
}

// TestTACWriteGlitchesOnDisable verifies disabling the timer while the
// selected bit is set also glitches TIMA (the AND gate's output falls).
func TestTACWriteGlitchesOnDisable(t *testing.T) {
	tm := NewTimer()
	tm.TAC = TAC_ENABLE_BIT | TAC_4096_HZ
	tm.TIMA = 0x20
	tm.divCounter = 1 << 9

	tm.WriteTAC(0x00) // disable timer

	assert.Equal(t, uint8(0x21), tm.TIMA)
	assert.False(t, tm.isTimerEnabled())
}
