// Package fault defines the closed set of fatal failure kinds the core
// can raise, shared by every subsystem so a cartridge, decoder, or
// debug guard can all report through the same typed error without
// importing the root package.
package fault

import "fmt"

// Kind classifies a fatal failure. Every failure is fatal: the system
// records a Fault, sets HardLocked, and every subsequent Tick call
// returns the same Fault without touching state again.
type Kind uint8

const (
	// InvalidAddress is raised by a cartridge MBC read or write to an
	// address outside its declared regions.
	InvalidAddress Kind = iota
	// UndecodedOpcode is raised by the CPU decoder for block-3 opcodes
	// (0xC0-0xFF) and the 0xCB prefix, which this core does not decode.
	UndecodedOpcode
	// BadHeader is raised when a ROM is shorter than 0x150 bytes, or
	// its header claims a size the supplied bytes cannot back.
	BadHeader
	// DebugBudgetExceeded is raised by the diagnostics package's
	// tick-count / NOP-count guards.
	DebugBudgetExceeded
	// UnsupportedMBC is raised for a cartridge type this core does not
	// implement an MBC for (only MBC5 and bare ROM are supported).
	UnsupportedMBC
)

func (k Kind) String() string {
	switch k {
	case InvalidAddress:
		return "InvalidAddress"
	case UndecodedOpcode:
		return "UndecodedOpcode"
	case BadHeader:
		return "BadHeader"
	case DebugBudgetExceeded:
		return "DebugBudgetExceeded"
	case UnsupportedMBC:
		return "UnsupportedMBC"
	default:
		return "Unknown"
	}
}

// Fault is a typed, fatal failure. It satisfies the error interface so
// it can be returned directly from Tick and compared by Kind.
type Fault struct {
	Kind   Kind
	Detail string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// New constructs a Fault of the given kind with a formatted detail.
func New(k Kind, format string, args ...interface{}) *Fault {
	return &Fault{Kind: k, Detail: fmt.Sprintf(format, args...)}
}
