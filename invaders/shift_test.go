package invaders

import "testing"

func TestShiftRegisterMicroScenario(t *testing.T) {
	var s shiftRegister
	s.writeData(0x04)
	s.writeData(0xAB)
	s.writeAmount(2)

	got := s.read()
	const expected = uint8((0xAB04 >> 6) & 0xFF)
	if got != expected {
		t.Errorf("read() = 0x%02X, want 0x%02X", got, expected)
	}
}

func TestShiftRegisterOffsetMasksToThreeBits(t *testing.T) {
	var s shiftRegister
	s.writeAmount(0xFF)
	if s.offset != 0x07 {
		t.Errorf("offset = %d, want 7", s.offset)
	}
}
