package ppu

import "gbcore/internal/bits"

// Mode is one of the four PPU states, ordinal-matched to STAT[1:0].
type Mode uint8

const (
	HBlank Mode = iota
	VBlank
	OamScan
	Draw
)

// ReadLCDC returns the LCD control register.
func (p *PPU) ReadLCDC() uint8 { return p.lcdc }

// WriteLCDC sets the LCD control register. Clearing bit 7 (display
// enable) resets the dot counter and LY, matching the teacher's
// lcd-disable behavior.
func (p *PPU) WriteLCDC(v uint8) {
	wasEnabled := bits.Test(p.lcdc, 7)
	p.lcdc = v
	if wasEnabled && !bits.Test(v, 7) {
		p.dot = 0
		p.ly = 0
		p.mode = HBlank
		p.windowLine = 0
	}
}

// ReadSTAT returns the STAT register; bit 7 always reads 1.
func (p *PPU) ReadSTAT() uint8 {
	v := p.stat&0x78 | uint8(p.mode)
	if p.ly == p.lyc {
		v |= 0x04
	}
	return v | 0x80
}

// WriteSTAT sets the writable interrupt-select bits (6:3); the mode
// and LYC-coincidence bits are PPU-owned and ignore writes.
func (p *PPU) WriteSTAT(v uint8) {
	p.stat = v & 0x78
}

func (p *PPU) ReadSCY() uint8    { return p.scy }
func (p *PPU) WriteSCY(v uint8)  { p.scy = v }
func (p *PPU) ReadSCX() uint8    { return p.scx }
func (p *PPU) WriteSCX(v uint8)  { p.scx = v }
func (p *PPU) ReadLY() uint8     { return p.ly }
func (p *PPU) ReadLYC() uint8    { return p.lyc }
func (p *PPU) WriteLYC(v uint8)  { p.lyc = v }
func (p *PPU) ReadWY() uint8     { return p.wy }
func (p *PPU) WriteWY(v uint8)   { p.wy = v }
func (p *PPU) ReadWX() uint8     { return p.wx }
func (p *PPU) WriteWX(v uint8)   { p.wx = v }
func (p *PPU) ReadBGP() uint8    { return p.bgp }
func (p *PPU) WriteBGP(v uint8)  { p.bgp = v }
func (p *PPU) ReadOBP0() uint8   { return p.obp0 }
func (p *PPU) WriteOBP0(v uint8) { p.obp0 = v }
func (p *PPU) ReadOBP1() uint8   { return p.obp1 }
func (p *PPU) WriteOBP1(v uint8) { p.obp1 = v }

// ReadVBK returns the VRAM bank select register; unused bits read 1.
func (p *PPU) ReadVBK() uint8 {
	return p.vram.Bank() | 0xFE
}

// WriteVBK selects the active VRAM bank (CGB only; harmless on DMG).
func (p *PPU) WriteVBK(v uint8) {
	p.vram.SelectBank(v)
}

// CurrentMode reports the PPU's current mode.
func (p *PPU) CurrentMode() Mode { return p.mode }

// RenderPending reports whether a frame has completed rendering since
// the last call to ConsumeRenderPending.
func (p *PPU) RenderPending() bool { return p.renderPending }

// ConsumeRenderPending clears the render-pending flag and returns its
// prior value.
func (p *PPU) ConsumeRenderPending() bool {
	v := p.renderPending
	p.renderPending = false
	return v
}

// Framebuffer returns the most recently completed frame, 160x144
// pixels in row-major order.
func (p *PPU) Framebuffer() []Color { return p.framebuffer[:] }

// Frame returns the count of frames completed so far.
func (p *PPU) Frame() uint64 { return p.frame }
