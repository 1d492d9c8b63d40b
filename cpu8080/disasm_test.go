package cpu8080

import (
	"strings"
	"testing"
)

func TestDisassembleImmediateOperand(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x100] = 0x06 // MVI B, #
	bus.mem[0x101] = 0x42

	got := c.Disassemble(0x100)
	if !strings.Contains(got, "42h") {
		t.Errorf("Disassemble = %q, want operand 42h", got)
	}
	if !strings.HasPrefix(got, "0100:") {
		t.Errorf("Disassemble = %q, want address prefix 0100:", got)
	}
}

func TestDisassembleWordOperand(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x100] = 0xC3 // JMP
	bus.mem[0x101] = 0x34
	bus.mem[0x102] = 0x12

	got := c.Disassemble(0x100)
	if !strings.Contains(got, "1234h") {
		t.Errorf("Disassemble = %q, want operand 1234h", got)
	}
}

func TestStateStringIncludesFlags(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(flagZ, true)
	got := c.StateString()
	if !strings.Contains(got, "Z") {
		t.Errorf("StateString = %q, want uppercase Z for set Zero flag", got)
	}
}
