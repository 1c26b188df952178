package gbcore

import "gbcore/internal/logging"

// Model selects which console variant a System boots as, changing
// reset register state and whether CGB-only features (double speed,
// second VRAM/WRAM banks, CRAM) are reachable.
type Model uint8

const (
	ModelDMG Model = iota
	ModelCGB
)

// Options holds every knob gbcore.New accepts, assembled by Option
// functions. Mirrors the teacher's GameBoyOpt functional-options
// pattern (NewGameBoy(rom, opts ...GameBoyOpt)).
type Options struct {
	Model  Model
	Logger logging.Logger

	// TickBudget and NOPBudget are debug kill-conditions; 0 disables
	// the corresponding check. See internal/diagnostics.Budget.
	TickBudget int
	NOPBudget  int

	// SpectateAddr, when non-empty, is the address a
	// internal/spectate.Server should listen on. gbcore itself never
	// binds a socket; this is advisory state a host reads back via
	// System.Options to decide whether to stand one up.
	SpectateAddr string
}

// Option configures a System at construction time.
type Option func(*Options)

// WithModel selects DMG or CGB semantics. Defaults to ModelDMG.
func WithModel(m Model) Option {
	return func(o *Options) { o.Model = m }
}

// WithLogger installs a logger. System.New logs the loaded cartridge
// through it (Infof), and the serial hook New installs logs each
// published serial byte (Debugf); the subsystems themselves do not
// log. Defaults to
// logging.NewNullLogger(), matching the teacher's silent-by-default
// NewNullLogger.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithDebugBudget arms the tick-count and NOP-count kill-conditions
// from spec.md §5/§7. Either limit may be 0 to leave it unchecked.
func WithDebugBudget(tickBudget, nopBudget int) Option {
	return func(o *Options) {
		o.TickBudget = tickBudget
		o.NOPBudget = nopBudget
	}
}

// WithSpectator records the address a spectate.Server should bind to.
// gbcore does not start the server itself (it has no business owning
// a listener); a host reads this back to decide whether to wire one
// up against the System's frame/serial output.
func WithSpectator(addr string) Option {
	return func(o *Options) { o.SpectateAddr = addr }
}

func defaultOptions() Options {
	return Options{
		Model:  ModelDMG,
		Logger: logging.NewNullLogger(),
	}
}
