// Package joypad emulates the P1 joypad register and button state,
// grounded directly on the teacher's joypad.State.
package joypad

import (
	"gbcore/internal/bits"
	"gbcore/internal/interrupts"
)

// Button identifies a physical button. The low nibble is the action
// group (A/B/Select/Start), the high nibble is the direction group.
type Button = uint8

const (
	ButtonA      Button = 0x01
	ButtonB      Button = 0x02
	ButtonSelect Button = 0x04
	ButtonStart  Button = 0x08
	ButtonRight  Button = 0x10
	ButtonLeft   Button = 0x20
	ButtonUp     Button = 0x40
	ButtonDown   Button = 0x80
)

// Inputs is the per-M-cycle input vector the host supplies to the
// core: buttons newly pressed or released since the last sample.
type Inputs struct {
	Pressed, Released []Button
}

// State holds the P1 register and the live button state.
type State struct {
	register uint8 // P1 select bits, as last written by the CPU
	pressed  Button

	irq *interrupts.Controller
}

// New returns a joypad with no buttons held and both select lines
// released, so P1 reads back as 0xFF.
func New(irq *interrupts.Controller) *State {
	return &State{register: 0x30, irq: irq}
}

// Read returns the P1 register: bits 5/4 are the select lines as
// written, bits 3:0 reflect whichever button group is selected
// (active-low), and unselected/unused bits read 1.
func (s *State) Read() uint8 {
	if !bits.Test(s.register, 4) {
		// direction keys selected: Right/Left/Up/Down live in the high nibble
		return s.register | 0xC0 | (^(s.pressed >> 4) & 0x0F)
	}
	if !bits.Test(s.register, 5) {
		// action keys selected: A/B/Select/Start live in the low nibble
		return s.register | 0xC0 | (^s.pressed & 0x0F)
	}
	return s.register | 0xCF
}

// Write updates the select lines (bits 5:4); the rest of P1 is read-only.
func (s *State) Write(v uint8) {
	s.register = (s.register & 0xCF) | (v & 0x30)
}

// Press marks a button held, requesting a joypad interrupt if the
// button's group is currently selected and it was not already held.
func (s *State) Press(b Button) {
	wasHeld := s.pressed&b != 0
	s.pressed |= b

	selected := (b <= ButtonStart && !bits.Test(s.register, 5)) ||
		(b > ButtonStart && !bits.Test(s.register, 4))

	if !wasHeld && selected {
		s.irq.Request(interrupts.Joypad)
	}
}

// Release marks a button no longer held.
func (s *State) Release(b Button) {
	s.pressed &^= b
}

// Apply processes a batch of input changes for the current M-cycle.
func (s *State) Apply(in Inputs) {
	for _, b := range in.Pressed {
		s.Press(b)
	}
	for _, b := range in.Released {
		s.Release(b)
	}
}
