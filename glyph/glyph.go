// Package glyph holds the fixed 8×8 bitmap tables used for text and icons.
//
// Every entry is Size consecutive bytes, one per column, each byte a vertical
// strip with bit 0 at the top.
package glyph

// Size is the width and height of a glyph cell in pixels.
const Size = 8

// Table slots: slot 0 is blank, followed by the digits, the upper case and
// the lower case letters.
const (
	slotDigit = 1
	slotUpper = 11
	slotLower = 37
	slots     = 63
)

// Index returns the byte offset of the glyph for c in Font.
//
// Characters without a glyph resolve to slot 0, which is blank.
func Index(c rune) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c-'A'+slotUpper) * Size
	case c >= '0' && c <= '9':
		return int(c-'0'+slotDigit) * Size
	case c >= 'a' && c <= 'z':
		return int(c-'a'+slotLower) * Size
	default:
		return 0
	}
}

// Supported reports if c has its own glyph.
func Supported(c rune) bool {
	return Index(c) != 0
}

// Lookup returns the strips of the entry at byte offset index in table.
func Lookup(table []byte, index int) ([]byte, bool) {
	if index < 0 || index+Size > len(table) {
		return nil, false
	}
	return table[index : index+Size], true
}

// Icon returns the strips for icon id.
func Icon(id int) ([]byte, bool) {
	if id < 0 {
		return nil, false
	}
	return Lookup(Icons, id*Size)
}

// columns converts row-major 8×8 bitmaps (bit 0 is the leftmost pixel) into
// column strips.
func columns(rows [][Size]byte) []byte {
	out := make([]byte, len(rows)*Size)
	for n, glyph := range rows {
		for y, row := range glyph {
			for x := 0; x < Size; x++ {
				if row&(1<<uint(x)) != 0 {
					out[n*Size+x] |= 1 << uint(y)
				}
			}
		}
	}
	return out
}
