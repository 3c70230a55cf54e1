// Package ppu implements the Game Boy Picture Processing Unit (PPU)
// for graphics rendering, including background, window, and sprite systems.
//
// The Game Boy PPU renders a 160x144 pixel display with 4-color grayscale
// graphics using a tile-based system with sprites and scrolling backgrounds.
package ppu

// Game Boy display constants
const (
	// Display dimensions
	ScreenWidth  = 160 // Visible pixels per scanline
	ScreenHeight = 144 // Visible scanlines per frame
	
	// Timing constants (cycles per operation)
	TotalScanlines    = 154 // Total scanlines including V-Blank (144 visible + 10 V-Blank)
	CyclesPerScanline = 456 // CPU cycles per scanline (456 T-cycles)
	CyclesPerFrame    = TotalScanlines * CyclesPerScanline // 70224 cycles per frame
	
	// PPU mode durations (in T-cycles)
	OAMScanCycles  = 80  // Mode 2: OAM scan duration (20 M-cycles × 4)
	DrawingCycles  = 172 // Mode 3: Drawing duration (43 M-cycles × 4, minimum)
	HBlankCycles   = 204 // Mode 0: H-Blank duration (51 M-cycles × 4, minimum)
	VBlankDuration = 4560 // Mode 1: V-Blank duration (10 scanlines × 456 T-cycles)
	
	// Color values (4-shade grayscale)
	ColorWhite     = 0 // Lightest shade
	ColorLightGray = 1 // Light gray
	ColorDarkGray  = 2 // Dark gray  
	ColorBlack     = 3 // Darkest shade
)

// PPUMode represents the current state of the PPU rendering pipeline
type PPUMode uint8

const (
	ModeHBlank  PPUMode = 0 // H-Blank: CPU can access VRAM/OAM
	ModeVBlank  PPUMode = 1 // V-Blank: Frame complete, CPU can access all video memory
	ModeOAMScan PPUMode = 2 // OAM Scan: PPU reading sprite data, CPU cannot access OAM
	ModeDrawing PPUMode = 3 // Drawing: PPU rendering pixels, CPU cannot access VRAM/OAM
)

// String returns human-readable PPU mode name
func (mode PPUMode) String() string {
	switch mode {
	case ModeHBlank:
		return "H-Blank"
	case ModeVBlank:
		return "V-Blank"  
	case ModeOAMScan:
		return "OAM Scan"
	case ModeDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// PPU represents the Game Boy Picture Processing Unit
// Handles all graphics rendering including background, window, and sprites
type PPU struct {
	// Display framebuffer - stores final pixel colors for each screen position
	// [row][column] format, values 0-3 representing 4-color grayscale
	Framebuffer [ScreenHeight][ScreenWidth]uint8
	
	// LCD Control Registers (memory-mapped I/O at 0xFF40-0xFF4B)
	LCDC uint8 // 0xFF40 - LCD Control register
	STAT uint8 // 0xFF41 - LCD Status register
	SCY  uint8 // 0xFF42 - Background scroll Y
	SCX  uint8 // 0xFF43 - Background scroll X
	LY   uint8 // 0xFF44 - Current scanline (0-153)
	LYC  uint8 // 0xFF45 - LY Compare register
	WY   uint8 // 0xFF4A - Window Y position
	WX   uint8 // 0xFF4B - Window X position
	
	// Palette Registers (color mapping)
	BGP  uint8 // 0xFF47 - Background palette data
	OBP0 uint8 // 0xFF48 - Object palette 0 data
	OBP1 uint8 // 0xFF49 - Object palette 1 data
	
	// Internal PPU state
	Mode         PPUMode // Current PPU mode (0-3)
	Cycles       uint16  // Cycle counter for current scanline
	FrameReady   bool    // True when a complete frame has been rendered
	LCDEnabled   bool    // LCD on/off state from LCDC bit 7

	// VRAM access interface (will be connected to MMU)
	vramInterface VRAMInterface

	// Scanline renderers, constructed once a VRAM interface is attached
	backgroundRenderer *BackgroundRenderer
	windowRenderer     *WindowRenderer
	spriteRenderer     *SpriteRenderer

	// CGB mode state. DMG games never touch these.
	cgbMode bool
	vramBank uint8 // VBK: 0 or 1, mirrors the MMU's own copy for attribute/tile-bank reads

	// CGB BG/OBJ palette RAM (0xFF68-0xFF6B), 8 palettes x 4 colors x 2 bytes (RGB555)
	bgPaletteRAM    [64]uint8
	objPaletteRAM   [64]uint8
	bgPaletteIndex  uint8 // BCPS
	objPaletteIndex uint8 // OCPS

	// FramebufferRGB holds CGB-accurate RGB888 output, populated alongside
	// Framebuffer whenever CGBMode is enabled. DMG rendering never touches it.
	FramebufferRGB [ScreenHeight][ScreenWidth][3]uint8

	// Fallback VRAM/OAM storage used only when the PPU itself stands in as
	// its own VRAMInterface (e.g. package-level tests that never attach a
	// separate shared VRAM store). Production wiring routes VRAM/OAM through
	// a dedicated *VRAM instance instead and never touches this storage.
	selfVRAM      [0x2000]uint8
	selfVRAMBank1 [0x2000]uint8
	selfOAM       [0xA0]uint8
}

// VRAMInterface defines the interface for accessing video memory
// This allows the PPU to read tile data and tile maps from VRAM
type VRAMInterface interface {
	ReadVRAM(address uint16) uint8   // Read byte from VRAM (0x8000-0x9FFF)
	WriteVRAM(address uint16, value uint8) // Write byte to VRAM
	ReadOAM(address uint16) uint8    // Read byte from OAM (0xFE00-0xFE9F)
	WriteOAM(address uint16, value uint8)  // Write byte to OAM
}

// NewPPU creates a new PPU instance with default Game Boy state
func NewPPU() *PPU {
	ppu := &PPU{
		// Initialize display to white (color 0)
		Framebuffer: [ScreenHeight][ScreenWidth]uint8{},
		
		// Initialize LCD registers to Game Boy power-on state
		LCDC: 0x91, // LCD enabled, background enabled, default tile maps
		STAT: 0x00, // Mode 0 (H-Blank), no interrupts enabled
		SCY:  0x00, // No initial scroll
		SCX:  0x00,
		LY:   0x00, // Start at scanline 0
		LYC:  0x00,
		WY:   0x00, // Window at top-left
		WX:   0x00,
		
		// Initialize palettes to identity mapping (0→0, 1→1, 2→2, 3→3)
		BGP:  0xE4, // 11100100 - standard Game Boy palette
		OBP0: 0xE4,
		OBP1: 0xE4,
		
		// Initialize PPU state
		Mode:       ModeOAMScan, // Start in OAM scan mode
		Cycles:     0,
		FrameReady: false,
		LCDEnabled: true, // LCD starts enabled (LCDC bit 7)
	}
	
	// Set STAT register mode bits to match initial mode
	ppu.updateSTATMode()
	
	return ppu
}

// SetVRAMInterface connects the PPU to a VRAM access interface (typically the
// shared *VRAM store wired through the MMU) and (re)builds the scanline
// renderers against it.
func (ppu *PPU) SetVRAMInterface(vramInterface VRAMInterface) {
	ppu.vramInterface = vramInterface
	ppu.backgroundRenderer = NewBackgroundRenderer(ppu, vramInterface)
	ppu.windowRenderer = NewWindowRenderer(ppu, vramInterface)
	ppu.spriteRenderer = NewSpriteRenderer(ppu, vramInterface)
}

// GetBackgroundRenderer returns the PPU's background scanline renderer, or
// nil if SetVRAMInterface has not been called yet.
func (ppu *PPU) GetBackgroundRenderer() *BackgroundRenderer {
	return ppu.backgroundRenderer
}

// GetWindowRenderer returns the PPU's window scanline renderer, or nil if
// SetVRAMInterface has not been called yet.
func (ppu *PPU) GetWindowRenderer() *WindowRenderer {
	return ppu.windowRenderer
}

// GetSpriteRenderer returns the PPU's sprite scanline renderer, or nil if
// SetVRAMInterface has not been called yet.
func (ppu *PPU) GetSpriteRenderer() *SpriteRenderer {
	return ppu.spriteRenderer
}

// GetSpritesEnabled is an alias of IsSpriteEnabled kept for callers that
// phrase the LCDC bit 1 check as a sprite-renderer-facing query.
func (ppu *PPU) GetSpritesEnabled() bool {
	return ppu.IsSpriteEnabled()
}

// SetCGBMode enables or disables CGB-specific palette and attribute-aware
// rendering. DMG cartridges never call this, leaving the PPU in its
// original grayscale-only behavior.
func (ppu *PPU) SetCGBMode(enabled bool) {
	ppu.cgbMode = enabled
}

// IsCGBMode reports whether CGB palette/attribute rendering is active.
func (ppu *PPU) IsCGBMode() bool {
	return ppu.cgbMode
}

// SetVRAMBank mirrors the MMU's VBK latch so CGB-aware rendering code can
// tell which VRAM bank tile data/attributes should be read from. This does
// not affect DMG rendering, which never reads bank 1.
func (ppu *PPU) SetVRAMBank(bank uint8) {
	ppu.vramBank = bank & 1
}

// GetVRAMBank returns the PPU's mirrored VBK bank selection (0 or 1).
func (ppu *PPU) GetVRAMBank() uint8 {
	return ppu.vramBank
}

// IsVRAMAccessible reports whether the CPU may access VRAM through the
// bus right now. The PPU holds the video bus for itself while Drawing;
// CPU reads see 0xFF and writes are dropped during that window.
func (ppu *PPU) IsVRAMAccessible() bool {
	return ppu.Mode != ModeDrawing
}

// IsOAMAccessible reports whether the CPU may access OAM through the
// bus right now. OAM is held by the PPU during both the sprite scan and
// the drawing phase of each scanline.
func (ppu *PPU) IsOAMAccessible() bool {
	return ppu.Mode != ModeDrawing && ppu.Mode != ModeOAMScan
}

// ReadVRAM implements VRAMInterface directly on the PPU using its own
// fallback storage. Production wiring never reaches this: the MMU and
// real hardware route VRAM access through a shared *VRAM instance. This
// exists so package-level tests (and any other caller) can use a bare
// *PPU as a self-contained VRAMInterface without a separate VRAM store.
func (ppu *PPU) ReadVRAM(address uint16) uint8 {
	offset := address - 0x8000
	if offset >= 0x2000 {
		return 0xFF
	}
	if ppu.cgbMode && ppu.vramBank == 1 {
		return ppu.selfVRAMBank1[offset]
	}
	return ppu.selfVRAM[offset]
}

// WriteVRAM implements VRAMInterface directly on the PPU (see ReadVRAM).
func (ppu *PPU) WriteVRAM(address uint16, value uint8) {
	offset := address - 0x8000
	if offset >= 0x2000 {
		return
	}
	if ppu.cgbMode && ppu.vramBank == 1 {
		ppu.selfVRAMBank1[offset] = value
		return
	}
	ppu.selfVRAM[offset] = value
}

// ReadOAM implements VRAMInterface directly on the PPU (see ReadVRAM).
func (ppu *PPU) ReadOAM(address uint16) uint8 {
	offset := address - 0xFE00
	if offset >= 0xA0 {
		return 0xFF
	}
	return ppu.selfOAM[offset]
}

// WriteOAM implements VRAMInterface directly on the PPU (see ReadVRAM).
func (ppu *PPU) WriteOAM(address uint16, value uint8) {
	offset := address - 0xFE00
	if offset >= 0xA0 {
		return
	}
	ppu.selfOAM[offset] = value
}

// ReadVRAMBank reads a byte from a specific VRAM bank regardless of the
// currently latched bank, used by CGB-aware renderers to fetch the bank-1
// attribute byte for a tile while rendering from bank 0 tile data (or vice
// versa). Falls back to bank 0 semantics when the attached interface has
// no bank-aware accessor (DMG VRAM / self storage without CGB mode).
func (ppu *PPU) ReadVRAMBank(bank uint8, address uint16) uint8 {
	type bankedVRAM interface {
		ReadVRAMBank(bank uint8, address uint16) uint8
	}
	// When the PPU is wired up as its own VRAMInterface (self-contained
	// fallback storage), it satisfies bankedVRAM itself; asserting through
	// ppu.vramInterface in that case would call back into this exact
	// method and recurse forever, so fall through to direct self-storage
	// access instead of the generic interface dispatch below.
	if ppu.vramInterface != VRAMInterface(ppu) {
		if bv, ok := ppu.vramInterface.(bankedVRAM); ok {
			return bv.ReadVRAMBank(bank, address)
		}
	}
	if bank == 1 {
		offset := address - 0x8000
		if offset < 0x2000 {
			return ppu.selfVRAMBank1[offset]
		}
		return 0xFF
	}
	return ppu.vramInterface.ReadVRAM(address)
}

// IsPPURegister reports whether addr falls within the PPU's memory-mapped
// register range, so the MMU can route it through ReadRegister/WriteRegister
// instead of falling into a generic memory cell.
func IsPPURegister(addr uint16) bool {
	switch addr {
	case 0xFF40, 0xFF41, 0xFF42, 0xFF43, 0xFF44, 0xFF45,
		0xFF47, 0xFF48, 0xFF49, 0xFF4A, 0xFF4B,
		0xFF68, 0xFF69, 0xFF6A, 0xFF6B:
		return true
	}
	return false
}

// IsPPURegister is the method form of the package-level function above,
// matching the IsTimerRegister/IsSerialRegister/IsHDMARegister shape the
// MMU dispatches other peripherals' registers through.
func (ppu *PPU) IsPPURegister(addr uint16) bool {
	return IsPPURegister(addr)
}

// ReadRegister reads one of the PPU's memory-mapped registers (LCDC, STAT,
// scroll/position, DMG palettes, and - in CGB mode - the BCPS/BCPD/OCPS/OCPD
// palette RAM ports). Returns 0xFF for an address outside that set.
func (ppu *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case 0xFF40:
		return ppu.GetLCDC()
	case 0xFF41:
		return ppu.GetSTAT()
	case 0xFF42:
		return ppu.GetSCY()
	case 0xFF43:
		return ppu.GetSCX()
	case 0xFF44:
		return ppu.GetLY()
	case 0xFF45:
		return ppu.GetLYC()
	case 0xFF47:
		return ppu.GetBGP()
	case 0xFF48:
		return ppu.GetOBP0()
	case 0xFF49:
		return ppu.GetOBP1()
	case 0xFF4A:
		return ppu.GetWY()
	case 0xFF4B:
		return ppu.GetWX()
	case 0xFF68:
		return ppu.bgPaletteIndex
	case 0xFF69:
		return ppu.readCGBPaletteData(ppu.bgPaletteRAM[:], ppu.bgPaletteIndex)
	case 0xFF6A:
		return ppu.objPaletteIndex
	case 0xFF6B:
		return ppu.readCGBPaletteData(ppu.objPaletteRAM[:], ppu.objPaletteIndex)
	}
	return 0xFF
}

// WriteRegister writes one of the PPU's memory-mapped registers. See
// ReadRegister for the address set.
func (ppu *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case 0xFF40:
		ppu.SetLCDC(value)
	case 0xFF41:
		ppu.SetSTAT(value)
	case 0xFF42:
		ppu.SetSCY(value)
	case 0xFF43:
		ppu.SetSCX(value)
	case 0xFF44:
		// LY is read-only; writes are ignored on real hardware.
	case 0xFF45:
		ppu.SetLYC(value)
	case 0xFF47:
		ppu.SetBGP(value)
	case 0xFF48:
		ppu.SetOBP0(value)
	case 0xFF49:
		ppu.SetOBP1(value)
	case 0xFF4A:
		ppu.SetWY(value)
	case 0xFF4B:
		ppu.SetWX(value)
	case 0xFF68:
		ppu.bgPaletteIndex = value
	case 0xFF69:
		ppu.writeCGBPaletteData(ppu.bgPaletteRAM[:], value)
	case 0xFF6A:
		ppu.objPaletteIndex = value
	case 0xFF6B:
		ppu.writeCGBPaletteData(ppu.objPaletteRAM[:], value)
	}
}

// readCGBPaletteData reads the palette RAM byte selected by an auto-
// incrementing BCPS/OCPS-style index register (bits 0-5 select the byte,
// bit 7 requests auto-increment on write).
func (ppu *PPU) readCGBPaletteData(ram []uint8, index uint8) uint8 {
	return ram[index&0x3F]
}

// writeCGBPaletteData writes the palette RAM byte selected by idxReg's low
// 6 bits and auto-increments idxReg when its bit 7 is set. idxReg is passed
// by value from the switch above, so the increment is applied to the PPU's
// actual BCPS/OCPS field directly here.
func (ppu *PPU) writeCGBPaletteData(ram []uint8, value uint8) {
	// Determine which index register backs this ram slice.
	if &ram[0] == &ppu.bgPaletteRAM[0] {
		ram[ppu.bgPaletteIndex&0x3F] = value
		if ppu.bgPaletteIndex&0x80 != 0 {
			ppu.bgPaletteIndex = 0x80 | ((ppu.bgPaletteIndex + 1) & 0x3F)
		}
		return
	}
	ram[ppu.objPaletteIndex&0x3F] = value
	if ppu.objPaletteIndex&0x80 != 0 {
		ppu.objPaletteIndex = 0x80 | ((ppu.objPaletteIndex + 1) & 0x3F)
	}
}

// BGPaletteColor decodes CGB BG palette `paletteNum` (0-7) color `colorIdx`
// (0-3) from bgPaletteRAM into 8-bit-per-channel RGB.
func (ppu *PPU) BGPaletteColor(paletteNum, colorIdx uint8) (r, g, b uint8) {
	return decodeCGBColor(ppu.bgPaletteRAM[:], paletteNum, colorIdx)
}

// OBJPaletteColor decodes CGB OBJ palette `paletteNum` (0-7) color
// `colorIdx` (0-3) from objPaletteRAM into 8-bit-per-channel RGB.
func (ppu *PPU) OBJPaletteColor(paletteNum, colorIdx uint8) (r, g, b uint8) {
	return decodeCGBColor(ppu.objPaletteRAM[:], paletteNum, colorIdx)
}

// decodeCGBColor unpacks a little-endian RGB555 color (5 bits per channel)
// into 8-bit-per-channel RGB using the common x*255/31 scaling.
func decodeCGBColor(ram []uint8, paletteNum, colorIdx uint8) (r, g, b uint8) {
	base := (int(paletteNum&0x7) * 4 + int(colorIdx&0x3)) * 2
	lo := ram[base]
	hi := ram[base+1]
	word := uint16(lo) | uint16(hi)<<8
	r5 := uint8(word & 0x1F)
	g5 := uint8((word >> 5) & 0x1F)
	b5 := uint8((word >> 10) & 0x1F)
	scale := func(c uint8) uint8 { return uint8((uint16(c)*255 + 15) / 31) }
	return scale(r5), scale(g5), scale(b5)
}

// Reset resets the PPU to initial Game Boy state
func (ppu *PPU) Reset() {
	// Clear framebuffer to white
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			ppu.Framebuffer[y][x] = ColorWhite
		}
	}
	
	// Reset registers to power-on state
	ppu.LCDC = 0x91
	ppu.STAT = 0x00
	ppu.SCY = 0x00
	ppu.SCX = 0x00
	ppu.LY = 0x00
	ppu.LYC = 0x00
	ppu.WY = 0x00
	ppu.WX = 0x00
	ppu.BGP = 0xE4
	ppu.OBP0 = 0xE4
	ppu.OBP1 = 0xE4
	
	// Reset internal state
	ppu.Mode = ModeOAMScan
	ppu.Cycles = 0
	ppu.FrameReady = false
	ppu.LCDEnabled = true
}

// IsFrameReady returns true if a complete frame has been rendered
// The caller should reset this flag after processing the frame
func (ppu *PPU) IsFrameReady() bool {
	return ppu.FrameReady
}

// ClearFrameReady resets the frame ready flag after the frame has been processed
func (ppu *PPU) ClearFrameReady() {
	ppu.FrameReady = false
}

// GetCurrentMode returns the current PPU mode for STAT register access
func (ppu *PPU) GetCurrentMode() PPUMode {
	return ppu.Mode
}

// GetCurrentScanline returns the current scanline (LY register value)
func (ppu *PPU) GetCurrentScanline() uint8 {
	return ppu.LY
}

// IsLCDEnabled returns true if the LCD is currently enabled (LCDC bit 7)
func (ppu *PPU) IsLCDEnabled() bool {
	return ppu.LCDEnabled
}

// Update advances the PPU state by the specified number of CPU cycles
// This should be called once per CPU instruction execution
// Returns true if any interrupts should be triggered
func (ppu *PPU) Update(cycles uint8) bool {
	// If LCD is disabled, don't update PPU timing
	if !ppu.LCDEnabled {
		return false
	}
	
	ppu.Cycles += uint16(cycles)
	interruptRequested := false
	
	// Handle PPU mode transitions based on current scanline and cycle count
	if ppu.LY < ScreenHeight {
		// Visible scanlines (0-143): OAM Scan → Drawing → H-Blank
		switch ppu.Mode {
		case ModeOAMScan:
			if ppu.Cycles >= OAMScanCycles {
				ppu.setMode(ModeDrawing)
				// Check for STAT interrupt on mode change
				if ppu.ShouldTriggerSTATInterrupt() {
					interruptRequested = true
				}
			}
			
		case ModeDrawing:
			if ppu.Cycles >= OAMScanCycles+DrawingCycles {
				ppu.setMode(ModeHBlank)
				ppu.renderScanline(ppu.LY)
				// Check for STAT interrupt on mode change
				if ppu.ShouldTriggerSTATInterrupt() {
					interruptRequested = true
				}
			}
			
		case ModeHBlank:
			if ppu.Cycles >= CyclesPerScanline {
				ppu.nextScanline()
				// Check for LYC=LY interrupt
				if ppu.updateLYCFlag() {
					interruptRequested = true
				}
				
				if ppu.LY == ScreenHeight {
					// Entering V-Blank
					ppu.setMode(ModeVBlank)
					ppu.FrameReady = true
					interruptRequested = true // V-Blank interrupt (always triggered)
					// Also check for STAT V-Blank interrupt
					if ppu.ShouldTriggerSTATInterrupt() {
						interruptRequested = true
					}
				} else {
					// Next visible scanline
					ppu.setMode(ModeOAMScan)
					// Check for STAT interrupt on mode change
					if ppu.ShouldTriggerSTATInterrupt() {
						interruptRequested = true
					}
				}
			}
		}
	} else {
		// V-Blank scanlines (144-153): V-Blank mode only
		if ppu.Cycles >= CyclesPerScanline {
			ppu.nextScanline()
			// Check for LYC=LY interrupt during V-Blank
			if ppu.updateLYCFlag() {
				interruptRequested = true
			}
			
			if ppu.LY == TotalScanlines {
				// Frame complete, restart at scanline 0
				ppu.LY = 0
				ppu.setMode(ModeOAMScan)
				// Check for STAT interrupt on mode change
				if ppu.ShouldTriggerSTATInterrupt() {
					interruptRequested = true
				}
			}
		}
	}
	
	return interruptRequested
}

// renderScanline draws one visible scanline (background, then window, then
// sprites) into Framebuffer, and into FramebufferRGB when CGB mode is on.
// Called once per scanline on the Drawing -> H-Blank transition, matching
// when real hardware has finished compositing the line.
func (ppu *PPU) renderScanline(scanline uint8) {
	if ppu.vramInterface == nil || scanline >= ScreenHeight {
		return
	}
	if ppu.IsBackgroundEnabled() && ppu.backgroundRenderer != nil {
		ppu.backgroundRenderer.RenderBackgroundScanline(scanline)
	}
	if ppu.IsWindowEnabled() && ppu.windowRenderer != nil {
		ppu.windowRenderer.RenderWindowScanline(scanline)
	}
	if ppu.IsSpriteEnabled() && ppu.spriteRenderer != nil {
		ppu.spriteRenderer.ScanOAM()
		ppu.spriteRenderer.RenderSpriteScanline(scanline)
	}
}

// setMode changes the current PPU mode and updates STAT register
func (ppu *PPU) setMode(newMode PPUMode) {
	ppu.Mode = newMode
	ppu.updateSTATMode()
}

// nextScanline advances to the next scanline and resets cycle counter
func (ppu *PPU) nextScanline() {
	ppu.Cycles = 0
	ppu.LY++
	
	// Check LYC=LY interrupt condition
	ppu.updateLYCFlag()
}

// GetPixel returns the color value (0-3) at the specified screen coordinates
// Returns ColorWhite if coordinates are out of bounds
func (ppu *PPU) GetPixel(x, y int) uint8 {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return ColorWhite
	}
	return ppu.Framebuffer[y][x]
}

// SetPixel sets the color value (0-3) at the specified screen coordinates
// Does nothing if coordinates are out of bounds
func (ppu *PPU) SetPixel(x, y int, color uint8) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	if color > ColorBlack {
		color = ColorBlack // Clamp to valid color range
	}
	ppu.Framebuffer[y][x] = color
}