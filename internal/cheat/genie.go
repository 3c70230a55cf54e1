// Package cheat implements Game Genie and GameShark cheat code parsing
// and application. Cheats apply at the cartridge MBC read boundary
// (Game Genie, on ROM reads) and during V-Blank (GameShark, as RAM
// writes), per spec.md §4.3/§6. Grounded on
// original_source/src/cheats/genie.rs and shark.rs.
package cheat

import (
	"fmt"
	"strconv"
	"strings"
)

// GameGenieCode is one parsed 9-character (AAA-BBB-CCC) or condensed
// 6-character (AAA-BBB) Game Genie code.
type GameGenieCode struct {
	Code      string
	Addr      uint16
	NewData   uint8
	OldData   uint8
	Additive  bool
	Condensed bool
}

// ParseGameGenie parses a code in AAA-BBB-CCC or condensed AAA-BBB
// form (hyphens optional, case-insensitive).
func ParseGameGenie(code string) (GameGenieCode, error) {
	additive := strings.Contains(code, "+")
	stripped := strings.ToUpper(strings.NewReplacer("-", "", "+", "").Replace(code))
	var condensed bool
	switch len(stripped) {
	case 9:
		condensed = false
	case 6:
		condensed = true
	default:
		return GameGenieCode{}, fmt.Errorf("cheat: invalid Game Genie code length: %d digits", len(stripped))
	}

	newData, err := hexByte(stripped[0:2])
	if err != nil {
		return GameGenieCode{}, fmt.Errorf("cheat: invalid new data: %w", err)
	}

	var oldData uint8
	if !condensed {
		oldNibbles := string(stripped[6]) + string(stripped[8])
		raw, err := hexByte(oldNibbles)
		if err != nil {
			return GameGenieCode{}, fmt.Errorf("cheat: invalid old data: %w", err)
		}
		oldData = rotateRight(raw, 2) ^ 0xBA
	}

	addrDigits := string(stripped[5]) + string(stripped[2]) + string(stripped[3]) + string(stripped[4])
	addrRaw, err := strconv.ParseUint(addrDigits, 16, 16)
	if err != nil {
		return GameGenieCode{}, fmt.Errorf("cheat: invalid address: %w", err)
	}
	addr := uint16(addrRaw) ^ 0xF000
	if addr > 0x7FFF {
		return GameGenieCode{}, fmt.Errorf("cheat: invalid cheat address: 0x%04x", addr)
	}

	return GameGenieCode{
		Code:      formatGenie(stripped, condensed),
		Addr:      addr,
		NewData:   newData,
		OldData:   oldData,
		Additive:  additive,
		Condensed: condensed,
	}, nil
}

func hexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	return uint8(v), err
}

func rotateRight(v uint8, n uint) uint8 {
	n &= 7
	return v>>n | v<<(8-n)
}

func formatGenie(digits string, condensed bool) string {
	if condensed {
		return digits[0:3] + "-" + digits[3:6]
	}
	return digits[0:3] + "-" + digits[3:6] + "-" + digits[6:9]
}

// IsValid reports whether value (the byte actually read from ROM) is
// one this code should patch: always true for a condensed code,
// otherwise only when it matches OldData.
func (c GameGenieCode) IsValid(value uint8) bool {
	return c.Condensed || c.OldData == value
}

// PatchData returns the patched byte for a ROM read that IsValid
// already confirmed should be patched.
func (c GameGenieCode) PatchData(value uint8) uint8 {
	if c.Additive {
		sum := uint16(value) + uint16(c.NewData)
		if sum > 0xFF {
			return 0xFF
		}
		return uint8(sum)
	}
	return c.NewData
}
