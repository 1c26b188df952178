package gbcore

import "gbcore/internal/joypad"

// Tick advances the system by exactly one M-cycle, the atomic
// scheduling unit from spec.md §5, in the fixed deterministic order
// §4.13 and §5 both specify: speed controller, then (if not
// STOP-frozen and the instruction delay has elapsed) interrupt service
// or instruction execution, then the PPU (on full M-cycles only) and
// OAM DMA, then VRAM DMA on full M-cycles only, then the timers, then
// the joypad sample. inputs
// is the per-M-cycle input vector from spec.md §6's external
// interface; pass joypad.Inputs{} on cycles with no new button edges.
//
// Once a subsystem raises a Fault, Tick sets HardLocked and every
// subsequent call is a no-op that returns the same Fault again,
// matching spec.md §7's "all errors are fatal" policy.
func (s *System) Tick(inputs joypad.Inputs) error {
	if s.HardLocked {
		return s.LastFault
	}

	if err := s.budget.CheckTick(); err != nil {
		return s.lock(err)
	}

	s.speed.Advance()

	if !s.speed.Frozen() {
		if s.cpuDelay == 0 {
			cycles, err := s.stepCPU()
			if err != nil {
				return s.lock(err)
			}
			s.cpuDelay = cycles - 1
		} else {
			s.cpuDelay--
		}
	}

	if s.speed.FullCycle() {
		s.ppu.Tick()
	}
	s.oamDMA.Tick()

	if s.speed.FullCycle() {
		s.hdma.Tick()
	}

	s.timer.Tick(s.speed.Frozen())
	s.pad.Apply(inputs)

	if err := s.budget.CheckNOPs(s.cpu.NOPCount); err != nil {
		return s.lock(err)
	}

	return nil
}

// stepCPU services the highest-priority pending-and-enabled interrupt
// if IME allows it, otherwise decodes and executes the next
// instruction. Either way it returns the M-cycle cost to charge
// against cpuDelay.
func (s *System) stepCPU() (int, error) {
	if cycles, serviced := s.cpu.ServiceInterrupt(); serviced {
		return cycles, nil
	}
	return s.cpu.Step()
}

// lock records err as the terminal fault and arms HardLocked.
func (s *System) lock(err error) error {
	s.HardLocked = true
	if f, ok := err.(*Fault); ok {
		s.LastFault = f
	}
	return err
}
