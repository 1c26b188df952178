package ppu

import "gbcore/internal/bits"

// tileRowBytes reads one 8-pixel row of a tile from the given VRAM
// bank as two bit-planes, resolving the signed/unsigned tile
// addressing mode from LCDC bit 4.
func (p *PPU) tileRowBytes(bank uint8, tileIndex uint8, row uint8) (lo, hi uint8) {
	var base uint16
	if bits.Test(p.lcdc, 4) {
		base = uint16(tileIndex) * 16
	} else {
		base = uint16(0x1000 + int16(int8(tileIndex))*16)
	}
	addr := base + uint16(row)*2
	lo = p.vram.ReadBank(bank, addr)
	hi = p.vram.ReadBank(bank, addr+1)
	return
}

// spriteTileRowBytes reads one 8-pixel row of a sprite tile. Sprites
// always use unsigned 0x8000-relative addressing regardless of LCDC
// bit 4, unlike background/window tiles.
func (p *PPU) spriteTileRowBytes(bank uint8, tileIndex uint8, row uint8) (lo, hi uint8) {
	base := uint16(tileIndex) * 16
	addr := base + uint16(row)*2
	lo = p.vram.ReadBank(bank, addr)
	hi = p.vram.ReadBank(bank, addr+1)
	return
}

func colorIDAt(lo, hi uint8, bit uint8) uint8 {
	l := bits.Val(lo, bit)
	h := bits.Val(hi, bit)
	return h<<1 | l
}

// bgAttrs decodes a CGB background/window-map attribute byte, read
// from VRAM bank 1 at the same map index as the tile number.
type bgAttrs struct {
	palette  uint8
	bank     uint8
	xFlip    bool
	yFlip    bool
	priority bool
}

func (p *PPU) readBGAttrs(mapAddr uint16) bgAttrs {
	if !p.cgb {
		return bgAttrs{}
	}
	v := p.vram.ReadBank(1, mapAddr)
	return bgAttrs{
		palette:  v & 0x07,
		bank:     bits.Val(v, 3),
		xFlip:    bits.Test(v, 5),
		yFlip:    bits.Test(v, 6),
		priority: bits.Test(v, 7),
	}
}

func (p *PPU) bgColor(colorID uint8, attrs bgAttrs) Color {
	if p.cgb {
		r, g, b := p.bgCRAM.Color(attrs.palette, colorID)
		return rgb555ToColor(r, g, b)
	}
	return dmgPalette[paletteIndex(p.bgp, colorID)]
}

func (p *PPU) objColor(colorID uint8, palette uint8, legacyOBP uint8) Color {
	if p.cgb {
		r, g, b := p.objCRAM.Color(palette, colorID)
		return rgb555ToColor(r, g, b)
	}
	return dmgPalette[paletteIndex(legacyOBP, colorID)]
}

// renderScanline composes background, window and sprites for the
// current LY into the framebuffer in one pass (no sub-scanline pixel
// FIFO, per the simplified renderer).
func (p *PPU) renderScanline() {
	ly := p.ly
	if ly >= visibleLines {
		return
	}

	var colorIDs [screenWidth]uint8
	var bgPriority [screenWidth]bool
	var line [screenWidth]Color

	if bits.Test(p.lcdc, 0) || p.cgb {
		p.renderBackground(ly, &colorIDs, &bgPriority, &line)
	}
	if bits.Test(p.lcdc, 5) && p.wy <= ly && p.wx < 167 {
		p.renderWindow(ly, &colorIDs, &bgPriority, &line)
	}
	if bits.Test(p.lcdc, 1) {
		p.renderSprites(ly, &colorIDs, &bgPriority, &line)
	}

	row := int(ly) * screenWidth
	copy(p.framebuffer[row:row+screenWidth], line[:])
}

// renderBackground fills colorIDs/bgPriority/line from the background
// tile map per spec.md §4.9 part 1.
func (p *PPU) renderBackground(ly uint8, colorIDs *[screenWidth]uint8, bgPriority *[screenWidth]bool, line *[screenWidth]Color) {
	mapBase := uint16(0x1800)
	if bits.Test(p.lcdc, 3) {
		mapBase = 0x1C00
	}
	srcY := uint16(p.scy) + uint16(ly)
	srcY &= 0xFF
	tileRow := uint8(srcY / 8)
	pixelRow := uint8(srcY % 8)

	for x := 0; x < screenWidth; x++ {
		srcX := (uint16(p.scx) + uint16(x)) & 0xFF
		tileCol := uint8(srcX / 8)
		pixelCol := uint8(srcX % 8)

		mapAddr := mapBase + uint16(tileRow)*32 + uint16(tileCol)
		tileIdx := p.vram.ReadBank(0, mapAddr)
		attrs := p.readBGAttrs(mapAddr)

		row := pixelRow
		if attrs.yFlip {
			row = 7 - row
		}
		lo, hi := p.tileRowBytes(attrs.bank, tileIdx, row)

		col := pixelCol
		if !attrs.xFlip {
			col = 7 - col // bit 7 is the leftmost pixel
		}
		colorID := colorIDAt(lo, hi, col)

		colorIDs[x] = colorID
		bgPriority[x] = attrs.priority
		line[x] = p.bgColor(colorID, attrs)
	}
}

// renderWindow overlays the window layer per spec.md §4.9 part 3. The
// window's own line counter only advances on scanlines where the
// window is actually drawn.
func (p *PPU) renderWindow(ly uint8, colorIDs *[screenWidth]uint8, bgPriority *[screenWidth]bool, line *[screenWidth]Color) {
	mapBase := uint16(0x1800)
	if bits.Test(p.lcdc, 6) {
		mapBase = 0x1C00
	}

	drawn := false
	tileRow := uint8(p.windowLine / 8)
	pixelRow := uint8(p.windowLine % 8)

	startX := int(p.wx) - 7
	for x := 0; x < screenWidth; x++ {
		if x < startX {
			continue
		}
		winX := uint16(x - startX)
		tileCol := uint8(winX / 8)
		pixelCol := uint8(winX % 8)

		mapAddr := mapBase + uint16(tileRow)*32 + uint16(tileCol)
		tileIdx := p.vram.ReadBank(0, mapAddr)
		attrs := p.readBGAttrs(mapAddr)

		row := pixelRow
		if attrs.yFlip {
			row = 7 - row
		}
		lo, hi := p.tileRowBytes(attrs.bank, tileIdx, row)

		col := pixelCol
		if !attrs.xFlip {
			col = 7 - col
		}
		colorID := colorIDAt(lo, hi, col)

		colorIDs[x] = colorID
		bgPriority[x] = attrs.priority
		line[x] = p.bgColor(colorID, attrs)
		drawn = true
	}

	if drawn {
		p.windowLine++
	}
}

// spriteEntry is one decoded OAM entry.
type spriteEntry struct {
	y, x, tile, attrs uint8
}

// renderSprites composes the sprite layer per spec.md §4.9 part 2.
func (p *PPU) renderSprites(ly uint8, colorIDs *[screenWidth]uint8, bgPriority *[screenWidth]bool, line *[screenWidth]Color) {
	height := uint8(8)
	if bits.Test(p.lcdc, 2) {
		height = 16
	}

	for i := 0; i < 40; i++ {
		off := i * 4
		s := spriteEntry{
			y:     p.oam[off],
			x:     p.oam[off+1],
			tile:  p.oam[off+2],
			attrs: p.oam[off+3],
		}
		if s.x == 0 || s.x >= 168 || s.y == 0 || s.y >= 160 {
			continue
		}
		spriteTop := int(s.y) - 16
		if int(ly) < spriteTop || int(ly) >= spriteTop+int(height) {
			continue
		}

		row := uint8(int(ly) - spriteTop)
		yFlip := bits.Test(s.attrs, 6)
		if yFlip {
			row = height - 1 - row
		}

		tile := s.tile
		if height == 16 {
			tile &^= 0x01
			if row >= 8 {
				tile |= 0x01
				row -= 8
			}
		}

		bank := uint8(0)
		palette := s.attrs & 0x07
		if p.cgb {
			bank = bits.Val(s.attrs, 3)
		}
		lo, hi := p.spriteTileRowBytes(bank, tile, row)

		xFlip := bits.Test(s.attrs, 5)
		legacyPalette := p.obp0
		if bits.Test(s.attrs, 4) {
			legacyPalette = p.obp1
		}
		bgOverSprite := bits.Test(s.attrs, 7)

		spriteLeft := int(s.x) - 8
		for col := uint8(0); col < 8; col++ {
			screenX := spriteLeft + int(col)
			if screenX < 0 || screenX >= screenWidth {
				continue
			}
			bit := col
			if !xFlip {
				bit = 7 - col
			}
			colorID := colorIDAt(lo, hi, bit)
			if colorID == 0 {
				continue // transparent
			}
			if bgOverSprite && (colorIDs[screenX] != 0 || bgPriority[screenX]) {
				continue
			}
			line[screenX] = p.objColor(colorID, palette, legacyPalette)
		}
	}
}
