package cpu8080

import "testing"

func TestAddHalfCarry(t *testing.T) {
	cases := []struct {
		lhs, rhs   uint8
		wantRes    uint8
		wantAC, wantC bool
	}{
		{0x0F, 0x01, 0x10, true, false},
		{0xFF, 0x01, 0x00, true, true},
		{0x10, 0x10, 0x20, false, false},
		{0x80, 0x80, 0x00, false, true},
	}

	c, _ := newTestCPU()
	for _, tc := range cases {
		got := c.opAdd(tc.lhs, tc.rhs)
		if got != tc.wantRes {
			t.Errorf("opAdd(0x%02X,0x%02X) = 0x%02X, want 0x%02X", tc.lhs, tc.rhs, got, tc.wantRes)
		}
		if c.flag(flagAC) != tc.wantAC {
			t.Errorf("opAdd(0x%02X,0x%02X) AC = %v, want %v", tc.lhs, tc.rhs, c.flag(flagAC), tc.wantAC)
		}
		if c.flag(flagC) != tc.wantC {
			t.Errorf("opAdd(0x%02X,0x%02X) C = %v, want %v", tc.lhs, tc.rhs, c.flag(flagC), tc.wantC)
		}
	}
}

func TestSubBorrow(t *testing.T) {
	c, _ := newTestCPU()
	got := c.opSub(0x00, 0x01)
	if got != 0xFF {
		t.Errorf("opSub(0,1) = 0x%02X, want 0xFF", got)
	}
	if !c.flag(flagC) {
		t.Error("expected borrow (Carry set)")
	}
}

func TestDadCarryFromBit16(t *testing.T) {
	c, _ := newTestCPU()
	got := c.opDad(0xFFFF, 0x0001)
	if got != 0x0000 {
		t.Errorf("opDad overflow = 0x%04X, want 0x0000", got)
	}
	if !c.flag(flagC) {
		t.Error("expected Carry set on 17-bit overflow")
	}
}

func TestInrDcrDoNotTouchCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(flagC, true)
	c.opInr(0xFF)
	if !c.flag(flagC) {
		t.Error("INR must not clear Carry")
	}
	c.opDcr(0x00)
	if !c.flag(flagC) {
		t.Error("DCR must not clear Carry")
	}
}
