package gpu

import "sync/atomic"

// palette is the 8-entry color table. Each entry packs an RGB444 triple into
// one atomic word (bits 11-8 red, 7-4 green, 3-0 blue) so a host write and a
// render read never tear an entry.
type palette struct {
	entries [8]atomic.Uint32
}

// The color index is a 3-bit RGB triple: bit 2 red, bit 1 green, bit 0 blue.
var defaultPalette = [8]uint32{
	0x000, // black
	0x00F, // blue
	0x0F0, // green
	0x0FF, // cyan
	0xF00, // red
	0xF0F, // magenta
	0xFF0, // yellow
	0xFFF, // white
}

func (p *palette) reset() {
	for i, v := range defaultPalette {
		p.entries[i].Store(v)
	}
}

// rgb expands entry i to 8 bits per channel by nibble replication
// (0xF becomes 0xFF, 0xA becomes 0xAA).
func (p *palette) rgb(i int) (r, g, b uint8) {
	v := p.entries[i&7].Load()
	r = uint8(v >> 8 & 0xF)
	g = uint8(v >> 4 & 0xF)
	b = uint8(v & 0xF)
	return r<<4 | r, g<<4 | g, b<<4 | b
}

func (p *palette) set(i int, r, g, b uint8) {
	v := uint32(r&0xF)<<8 | uint32(g&0xF)<<4 | uint32(b&0xF)
	p.entries[i&7].Store(v)
}
