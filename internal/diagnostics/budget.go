// Package diagnostics supplies the debug kill-conditions and the
// inspection tooling an emulator author reaches for when a test ROM
// locks up: NOP/tick budgets that raise a DebugBudgetExceeded fault,
// a PNG framebuffer dump, a cadence timing plot, and serial-log
// clipboard export. None of this is on the hot path; it exists for
// the host to opt into.
package diagnostics

import "gbcore/internal/fault"

// Budget tracks the two kill-conditions spec.md §5/§7 names: a ceiling
// on ticks and a ceiling on executed NOPs, either of which usually
// means a test ROM has locked up waiting for something this core
// doesn't implement. A zero ceiling disables that particular check.
type Budget struct {
	TickLimit int
	NOPLimit  int

	ticks int
}

// NewBudget returns a Budget with the given limits. Pass 0 for either
// to leave that axis unchecked.
func NewBudget(tickLimit, nopLimit int) *Budget {
	return &Budget{TickLimit: tickLimit, NOPLimit: nopLimit}
}

// CheckTick increments the tick counter and returns a
// DebugBudgetExceeded fault once the count exceeds TickLimit.
func (b *Budget) CheckTick() error {
	if b == nil || b.TickLimit == 0 {
		return nil
	}
	b.ticks++
	if b.ticks > b.TickLimit {
		return fault.New(fault.DebugBudgetExceeded, "exceeded tick budget of %d", b.TickLimit)
	}
	return nil
}

// CheckNOPs compares an externally-tracked NOP count (CPU.NOPCount)
// against NOPLimit and returns a DebugBudgetExceeded fault once it
// exceeds the limit. The caller supplies the count rather than this type owning
// it, since the CPU is the only thing that can count its own NOPs.
func (b *Budget) CheckNOPs(count int) error {
	if b == nil || b.NOPLimit == 0 {
		return nil
	}
	if count > b.NOPLimit {
		return fault.New(fault.DebugBudgetExceeded, "exceeded NOP budget of %d", b.NOPLimit)
	}
	return nil
}

// Ticks reports how many ticks have been counted so far.
func (b *Budget) Ticks() int {
	if b == nil {
		return 0
	}
	return b.ticks
}
