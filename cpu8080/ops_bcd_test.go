package cpu8080

import "testing"

func TestDaaDualNibbleAdjust(t *testing.T) {
	c, _ := newTestCPU()
	c.reg.A = 0x9B
	c.setFlag(flagC, false)
	c.setFlag(flagAC, false)

	c.reg.A = c.opDaa(c.reg.A)

	if c.reg.A != 0x01 {
		t.Errorf("A = 0x%02X, want 0x01", c.reg.A)
	}
	if !c.flag(flagC) {
		t.Error("expected Carry set")
	}
	if !c.flag(flagAC) {
		t.Error("expected Auxiliary Carry set")
	}
}

func TestDaaLeavesUnderNineUntouched(t *testing.T) {
	c, _ := newTestCPU()
	c.reg.A = 0x44
	c.setFlag(flagC, false)
	c.setFlag(flagAC, false)

	c.reg.A = c.opDaa(c.reg.A)

	if c.reg.A != 0x44 {
		t.Errorf("A = 0x%02X, want 0x44", c.reg.A)
	}
	if c.flag(flagC) {
		t.Error("expected Carry clear")
	}
}
