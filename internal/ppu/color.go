package ppu

// Color is a single resolved framebuffer pixel, 8 bits per channel
// regardless of source depth (DMG grayscale is widened, CGB RGB555 is
// scaled up).
type Color struct {
	R, G, B uint8
}

// dmgPalette is the fixed 4-shade grayscale ramp DMG color-ids map to.
var dmgPalette = [4]Color{
	{0xFF, 0xFF, 0xFF},
	{0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55},
	{0x00, 0x00, 0x00},
}

// paletteIndex extracts the 2-bit shade for a color-id from a
// BGP/OBP-style palette byte (2 bits per color-id, id 0 in bits[1:0]).
func paletteIndex(palette uint8, colorID uint8) uint8 {
	return (palette >> (colorID * 2)) & 0x03
}

// rgb555ToColor scales a 5-bit RGB555 channel to 8 bits.
func rgb555ToColor(r, g, b uint8) Color {
	scale := func(c uint8) uint8 { return (c << 3) | (c >> 2) }
	return Color{scale(r), scale(g), scale(b)}
}
