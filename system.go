// Package gbcore implements a cycle-accurate Game Boy / Game Boy Color
// core: cartridge + MBC5, the memory map, banked VRAM/WRAM/CRAM, the
// CPU decoder/interpreter, the interrupt controller, the PPU state
// machine and scanline renderer, OAM/VRAM DMA, the DIV/TIMA timers,
// double-speed control, and the top-level tick loop that sequences
// all of it. Grounded on the teacher's GameBoy/NewGameBoy shape: one
// aggregate struct, functional options, and a single Tick-equivalent
// entry point the host drives.
package gbcore

import (
	"gbcore/internal/cartridge"
	"gbcore/internal/cartridge/loader"
	"gbcore/internal/cpu"
	"gbcore/internal/diagnostics"
	"gbcore/internal/interrupts"
	"gbcore/internal/joypad"
	"gbcore/internal/memory"
	"gbcore/internal/memory/banked"
	"gbcore/internal/ppu"
	"gbcore/internal/speed"
	"gbcore/internal/timer"
)

// System is the top-level aggregate named in spec.md §3: every
// subsystem plus the bookkeeping the tick loop needs (the CPU-delay
// counter, the hard-lock flag, the last fault). No subsystem here
// retains a reference across ticks beyond what System itself owns.
type System struct {
	Options Options

	cart            *cartridge.Cartridge
	irq             *interrupts.Controller
	timer           *timer.Controller
	speed           *speed.Controller
	pad             *joypad.State
	vram            *banked.VRAM
	wram            *banked.WRAM
	bgCRAM, objCRAM *banked.CRAM
	ppu             *ppu.PPU
	oamDMA          *ppu.OAMDMA
	hdma            *ppu.HDMA
	mem             *memory.Map
	cpu             *cpu.CPU

	budget *diagnostics.Budget

	cpuDelay int // remaining M-cycles owed to the instruction in flight

	// HardLocked and LastFault implement spec.md §7's all-errors-are-
	// fatal policy: once set, every subsequent Tick is a no-op that
	// returns LastFault again.
	HardLocked bool
	LastFault  *Fault

	serialLog []byte
}

// New parses rom (optionally a .7z archive, see
// internal/cartridge/loader), constructs every subsystem wired the
// way the teacher's NewGameBoy does, and resets the System to the
// documented post-boot-ROM state (spec.md §8 scenario 1).
func New(rom []byte, opts ...Option) (*System, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	image, err := loader.Load(rom)
	if err != nil {
		return nil, err
	}
	cart, err := cartridge.New(image)
	if err != nil {
		return nil, err
	}

	cgb := options.Model == ModelCGB

	s := &System{
		Options: options,
		cart:    cart,
		irq:     interrupts.NewController(),
	}
	s.timer = timer.NewController(s.irq)
	s.speed = speed.NewController()
	s.pad = joypad.New(s.irq)
	s.vram = banked.NewVRAM()
	s.wram = banked.NewWRAM()
	s.bgCRAM = banked.NewCRAM()
	s.objCRAM = banked.NewCRAM()
	s.ppu = ppu.New(s.vram, s.bgCRAM, s.objCRAM, s.irq, cgb)

	// memory.Map must exist before the DMA engines (they read through
	// it as a ppu.Bus), and the DMA engines must exist before AttachDMA
	// - the same two-phase construction the teacher's MMU/DMA wiring
	// needs, just made explicit here instead of happening in one
	// constructor.
	s.mem = memory.New(cart, s.wram, s.ppu, s.irq, s.timer, s.pad, s.speed)
	s.oamDMA = ppu.NewOAMDMA(s.mem, s.ppu)
	s.hdma = ppu.NewHDMA(s.mem, s.vram)
	s.ppu.AttachHDMA(s.hdma)
	s.mem.AttachDMA(s.oamDMA, s.hdma)

	s.cpu = cpu.New(s.mem, s.irq)
	s.cpu.SetStopHook(s.speed.TriggerSTOP)

	s.mem.SetSerialHook(func(b byte) {
		s.serialLog = append(s.serialLog, b)
		options.Logger.Debugf("serial: %#02x", b)
	})

	if options.TickBudget != 0 || options.NOPBudget != 0 {
		s.budget = diagnostics.NewBudget(options.TickBudget, options.NOPBudget)
	}

	s.reset(cgb)
	options.Logger.Infof("loaded %s (%s, %d banks)", cart.Header.Title, cart.Header.CartridgeType, cart.Header.ROMSize/0x4000)
	return s, nil
}

// Framebuffer returns the most recently completed frame. Valid to
// call any time; it holds the previous frame's pixels until the next
// one finishes.
func (s *System) Framebuffer() []ppu.Color { return s.ppu.Framebuffer() }

// RenderPending reports whether a frame has completed since the last
// call to ConsumeRenderPending, the "render_pending" flag from
// spec.md §3.
func (s *System) RenderPending() bool { return s.ppu.RenderPending() }

// ConsumeRenderPending clears and returns the render-pending flag.
func (s *System) ConsumeRenderPending() bool { return s.ppu.ConsumeRenderPending() }

// SerialLog returns every byte published over SC=0x81 so far.
func (s *System) SerialLog() []byte { return s.serialLog }

// Press and Release forward a single button edge to the joypad for
// hosts that want to drive input outside of Tick's per-cycle vector.
func (s *System) Press(b joypad.Button)   { s.pad.Press(b) }
func (s *System) Release(b joypad.Button) { s.pad.Release(b) }
