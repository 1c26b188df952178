// Package banked holds the multi-bank indexed memory regions of the
// address space: VRAM, WRAM and CGB palette RAM. Each is modeled as a
// 2-D array indexed by an integer bank selector, per spec.md's
// redesign note against cyclic bank/array references; grounded on the
// teacher's internal/mmu/wram.go and internal/ppu VRAM bank handling.
package banked

// VRAM is the 0x8000-0x9FFF video RAM region: one bank on DMG, two on
// CGB. The PPU renderer addresses both banks directly for CGB tile
// attributes; CPU and HDMA accesses go through Read/Write using the
// currently selected bank.
type VRAM struct {
	banks [2][0x2000]uint8
	bank  uint8
}

// NewVRAM returns an empty VRAM with bank 0 selected.
func NewVRAM() *VRAM {
	return &VRAM{}
}

// Bank returns the currently selected VRAM bank (0 or 1).
func (v *VRAM) Bank() uint8 { return v.bank }

// SelectBank sets the active VRAM bank. Only bit 0 is meaningful; on
// DMG hardware the caller should never invoke this with a nonzero
// value, but the storage itself does not enforce that.
func (v *VRAM) SelectBank(bank uint8) {
	v.bank = bank & 0x01
}

// Read reads from the currently selected bank at a VRAM-relative
// address (addr - 0x8000).
func (v *VRAM) Read(addr uint16) uint8 {
	return v.banks[v.bank][addr]
}

// Write writes to the currently selected bank.
func (v *VRAM) Write(addr uint16, val uint8) {
	v.banks[v.bank][addr] = val
}

// ReadBank reads from an explicit bank, bypassing the selector. Used
// by the PPU renderer, which addresses both banks directly.
func (v *VRAM) ReadBank(bank uint8, addr uint16) uint8 {
	return v.banks[bank&0x01][addr]
}

// WriteBank writes to an explicit bank, bypassing the selector.
func (v *VRAM) WriteBank(bank uint8, addr uint16, val uint8) {
	v.banks[bank&0x01][addr] = val
}
