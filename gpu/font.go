package gpu

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

const (
	// GlyphWidth and GlyphHeight are the dimensions of one glyph bitmap.
	GlyphWidth  = 8
	GlyphHeight = 16

	firstGlyph    = 0x20 // first code in the font table
	lastPrintable = 0x7E // last code with its own glyph
	placeholder   = 0x7F // solid block, drawn for everything else

	glyphCount = placeholder - firstGlyph + 1
)

//go:embed font_data.hex
var fontHex string

// font holds one byte per glyph scanline, MSB leftmost.
var font [glyphCount][GlyphHeight]byte

func init() {
	var n int
	for _, line := range strings.Split(fontHex, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				panic(fmt.Sprintf("font_data.hex: %v", err))
			}
			if n == len(font)*GlyphHeight {
				panic("font_data.hex: too many bytes")
			}
			font[n/GlyphHeight][n%GlyphHeight] = byte(b)
			n++
		}
	}
	if n != len(font)*GlyphHeight {
		panic(fmt.Sprintf("font_data.hex: %d bytes, want %d", n, len(font)*GlyphHeight))
	}
}

// Glyph returns the bitmap for code. Codes outside the printable range
// (0x20-0x7E) return the placeholder block so that every character a host
// writes still renders as something visible.
func Glyph(code byte) *[GlyphHeight]byte {
	if code < firstGlyph || code > lastPrintable {
		code = placeholder
	}
	return &font[code-firstGlyph]
}
