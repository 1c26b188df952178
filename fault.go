package gbcore

import "gbcore/internal/fault"

// Fault is the typed, fatal failure type System.Tick returns. Re-
// exported from internal/fault so callers of this package never need
// to import an internal path directly.
type Fault = fault.Fault

// Kind classifies a Fault; see the internal/fault constants of the
// same names for what raises each one.
type Kind = fault.Kind

const (
	InvalidAddress      = fault.InvalidAddress
	UndecodedOpcode     = fault.UndecodedOpcode
	BadHeader           = fault.BadHeader
	DebugBudgetExceeded = fault.DebugBudgetExceeded
	UnsupportedMBC      = fault.UnsupportedMBC
)
