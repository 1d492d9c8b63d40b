// Package invaders implements the Space Invaders arcade cabinet's memory
// map, I/O ports, interrupt scheduler, and video decoder as a concrete Bus
// for the 8080 interpreter.
package invaders

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user-none/invaders8080/cpu8080"
)

const (
	romSize     = 0x2000
	ramSize     = 0x2000
	RomBankSize = 0x0800
)

// Logger is the minimal logging surface System needs; *log.Logger and
// nil both satisfy it (a nil Logger silently drops every message).
type Logger interface {
	Printf(format string, args ...any)
}

// System is the concrete Bus implementation for the cabinet: ROM, RAM,
// input latches, the bit shifter, the dual interrupt scheduler, and the
// video decoder all live here.
type System struct {
	CPU *cpu8080.CPU

	rom [romSize]uint8
	ram [ramSize]uint8

	inputs Inputs
	shift  shiftRegister
	sched  interruptScheduler

	colorMask   []color.RGBA
	framebuffer *image.RGBA

	logger Logger
}

// NewSystem constructs a System with its CPU wired in and color mask
// precomputed, but no ROMs loaded yet.
func NewSystem() *System {
	s := &System{
		colorMask:   buildColorMask(),
		framebuffer: image.NewRGBA(image.Rect(0, 0, displayWidth, displayHeight)),
	}
	s.CPU = cpu8080.New(s)
	s.Reset()
	return s
}

// SetLogger installs the sink for unmapped-memory and unhandled-port warnings.
// A nil Logger silently drops them.
func (s *System) SetLogger(l Logger) { s.logger = l }

func (s *System) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Inputs returns the mutable input latches for the frontend to update from
// a keyboard or gamepad snapshot each frame.
func (s *System) Inputs() *Inputs { return &s.inputs }

// Framebuffer returns the RGBA raster last produced by a vblank render, in
// hardware (unrotated) orientation.
func (s *System) Framebuffer() *image.RGBA { return s.framebuffer }

// Reset clears the CPU, interrupt scheduler, shift register, and RAM, as
// at cabinet power-on. ROM contents and the framebuffer are untouched.
func (s *System) Reset() {
	s.CPU.Reset()
	s.sched = newInterruptScheduler()
	s.shift = shiftRegister{}
	for i := range s.ram {
		s.ram[i] = 0
	}
}

// LoadROMs reads the four ROM banks via the supplied readers, validating
// each is exactly RomBankSize bytes. bank order is h, g, f, e, loaded at
// 0x0000, 0x0800, 0x1000, 0x1800 respectively.
func (s *System) LoadROMs(readers [4]func() ([]byte, error)) error {
	names := [4]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}
	for i, read := range readers {
		data, err := read()
		if err != nil {
			return fmt.Errorf("reading %s: %w", names[i], err)
		}
		if len(data) != RomBankSize {
			return fmt.Errorf("%s: got %d bytes, want %d", names[i], len(data), RomBankSize)
		}
		copy(s.rom[i*RomBankSize:(i+1)*RomBankSize], data)
	}
	return nil
}

// ExecuteFrame runs two half-frame slices back-to-back, reaching mid-screen
// and then the next vblank, matching the original's execute-frame shape of
// calling run(interval) twice whenever the previous interrupt was vblank.
func (s *System) ExecuteFrame() {
	if s.sched.lastWasVblank {
		s.CPU.Run(interruptCycleInterval)
	}
	s.CPU.Run(interruptCycleInterval)
}

// AddCycles implements cpu8080.Bus: it drives the interrupt scheduler and,
// on vblank, renders the frame.
func (s *System) AddCycles(n int) {
	fired, vector := s.sched.tick(n)
	if !fired {
		return
	}

	s.CPU.RequestInterrupt(vector)
	if s.sched.lastWasVblank {
		renderDisplay(s.ram[:], s.colorMask, s.framebuffer)
	}
}

func (s *System) ReadMemory(addr uint16) uint8     { return s.readMemory(addr) }
func (s *System) WriteMemory(addr uint16, v uint8) { s.writeMemory(addr, v) }
func (s *System) ReadIO(port uint16) uint8         { return s.readIO(port) }
func (s *System) WriteIO(port uint16, v uint8)     { s.writeIO(port, v) }
