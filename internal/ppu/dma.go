package ppu

// Bus is the subset of the memory map the DMA engines need: a plain
// byte-addressed read, used to pull source bytes from anywhere in the
// 64KB space. Grounded on the teacher's mmu.IOBus, narrowed to a
// single method since neither DMA engine ever writes through it.
type Bus interface {
	Read(addr uint16) uint8
}

// OAMDMA copies 160 bytes into OAM, one byte per M-cycle, per
// spec.md §4.10. Grounded on the teacher's ppu.DMA but without its
// 4-M-cycle startup delay, which spec.md does not call for.
type OAMDMA struct {
	bus    Bus
	ppu    *PPU
	active bool
	pos    uint16
	source uint16
}

// NewOAMDMA returns an OAM DMA engine reading through bus and writing
// into ppu's OAM.
func NewOAMDMA(bus Bus, ppu *PPU) *OAMDMA {
	return &OAMDMA{bus: bus, ppu: ppu}
}

// Trigger starts (or restarts) a transfer from source = value*0x100.
func (d *OAMDMA) Trigger(value uint8) {
	d.source = uint16(value) << 8
	d.pos = 0
	d.active = true
}

// Active reports whether a transfer is in progress.
func (d *OAMDMA) Active() bool { return d.active }

// Tick copies one byte, called once per M-cycle regardless of speed.
func (d *OAMDMA) Tick() {
	if !d.active {
		return
	}
	d.ppu.WriteOAM(d.pos, d.bus.Read(d.source+d.pos))
	d.pos++
	if d.pos >= 160 {
		d.active = false
	}
}
