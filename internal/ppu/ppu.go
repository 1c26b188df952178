// Package ppu implements the PPU state machine and scanline renderer:
// dot-based timing, STAT/LY/LYC semantics, and background/window/
// sprite composition. Grounded on the teacher's internal/ppu package,
// restated against spec.md's simplified non-FIFO, whole-scanline
// renderer (the teacher's dot-accurate pixel FIFO is out of scope).
package ppu

import (
	"gbcore/internal/bits"
	"gbcore/internal/interrupts"
	"gbcore/internal/memory/banked"
)

const (
	dotsPerLine   = 456
	oamScanDots   = 80
	drawDots      = 172
	linesPerFrame = 154
	visibleLines  = 144
	screenWidth   = 160

	// ScreenWidth and ScreenHeight are the logical framebuffer
	// dimensions, exported for callers formatting Framebuffer().
	ScreenWidth  = screenWidth
	ScreenHeight = visibleLines
)

// PPU owns video RAM, OAM, CGB palette RAM, and the renderer state.
type PPU struct {
	irq *interrupts.Controller
	cgb bool

	vram    *banked.VRAM
	oam     [160]uint8
	bgCRAM  *banked.CRAM
	objCRAM *banked.CRAM

	lcdc, stat      uint8
	scy, scx        uint8
	ly, lyc         uint8
	wy, wx          uint8
	bgp, obp0, obp1 uint8
	windowLine      uint8

	dot   uint16
	mode  Mode
	frame uint64

	renderPending bool
	framebuffer   [screenWidth * visibleLines]Color

	hdma *HDMA
}

// New returns a PPU wired to the given VRAM bank pair, CGB palette
// RAM, and interrupt controller.
func New(vram *banked.VRAM, bgCRAM, objCRAM *banked.CRAM, irq *interrupts.Controller, cgb bool) *PPU {
	p := &PPU{
		vram:    vram,
		bgCRAM:  bgCRAM,
		objCRAM: objCRAM,
		irq:     irq,
		cgb:     cgb,
		mode:    OamScan,
	}
	return p
}

// AttachHDMA wires the VRAM-DMA engine so the PPU can signal HBlank
// entry to it. Set once during system construction.
func (p *PPU) AttachHDMA(h *HDMA) { p.hdma = h }

// ReadOAM reads a CPU-visible OAM byte (addr is OAM-relative, 0-159).
func (p *PPU) ReadOAM(addr uint16) uint8 { return p.oam[addr] }

// WriteOAM writes a CPU-visible OAM byte.
func (p *PPU) WriteOAM(addr uint16, v uint8) { p.oam[addr] = v }

// BGCRAM and ObjCRAM expose the palette RAM banks for BCPS/BCPD and
// OCPS/OCPD routing.
func (p *PPU) BGCRAM() *banked.CRAM  { return p.bgCRAM }
func (p *PPU) ObjCRAM() *banked.CRAM { return p.objCRAM }

// VRAM exposes the underlying banked VRAM for the memory map and the
// VRAM-DMA engine.
func (p *PPU) VRAM() *banked.VRAM { return p.vram }

// Tick advances the PPU by four dots (one M-cycle at single speed).
// Does nothing while the display is disabled (LCDC bit 7 clear).
func (p *PPU) Tick() {
	if !bits.Test(p.lcdc, 7) {
		return
	}
	for i := 0; i < 4; i++ {
		p.tickDot()
	}
}

func (p *PPU) tickDot() {
	p.dot++
	if p.dot >= dotsPerLine {
		p.dot = 0
		p.advanceLine()
	}

	switch {
	case p.ly >= visibleLines:
		p.enterMode(VBlank)
	case p.dot == 0:
		p.enterMode(OamScan)
	case p.dot == oamScanDots:
		p.enterMode(Draw)
	case p.dot == oamScanDots+drawDots:
		p.enterMode(HBlank)
	}
}

func (p *PPU) advanceLine() {
	p.ly++
	if p.ly >= linesPerFrame {
		p.ly = 0
		p.frame++
		p.windowLine = 0
	}
	p.checkLYC()
}

func (p *PPU) checkLYC() {
	if p.ly == p.lyc && bits.Test(p.stat, 6) {
		p.irq.Request(interrupts.STAT)
	}
}

func (p *PPU) enterMode(m Mode) {
	if p.mode == m {
		return
	}
	p.mode = m

	switch m {
	case HBlank:
		if bits.Test(p.stat, 3) {
			p.irq.Request(interrupts.STAT)
		}
		if p.hdma != nil {
			p.hdma.OnHBlankEntry()
		}
	case VBlank:
		if bits.Test(p.stat, 4) {
			p.irq.Request(interrupts.STAT)
		}
		p.irq.Request(interrupts.VBlank)
		p.renderPending = true
	case OamScan:
		if bits.Test(p.stat, 5) {
			p.irq.Request(interrupts.STAT)
		}
	case Draw:
		p.renderScanline()
	}
}
