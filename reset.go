package gbcore

// reset applies the documented post-boot-ROM state from spec.md §8
// scenario 1: CPU registers via cpu.CPU.Reset, plus IF and LCDC, which
// the CPU does not own. PPU/VRAM/WRAM/CRAM already start at their
// power-on zero values from New (LY=0 falls out of that for free).
func (s *System) reset(cgb bool) {
	s.cpu.Reset(cgb)
	s.irq.WriteIF(0xE1)
	s.ppu.WriteLCDC(0x91)
}
