package invaders

// Inputs holds the three 8-bit latches the cabinet wires to the CPU's IN
// instruction. Fields are stored as plain bytes with named bit accessors
// rather than a bitfield union, since Go has no portable overlapping-memory
// view; the bit positions below are load-bearing hardware wiring, not an
// implementation choice.
type Inputs struct {
	inp0 uint8
	inp1 uint8
	inp2 uint8
}

// INP0 bits.
const (
	inp0Dip4  = 1 << 0
	inp0Fire  = 1 << 4
	inp0Left  = 1 << 5
	inp0Right = 1 << 6
)

// INP1 bits.
const (
	inp1Credit  = 1 << 0
	inp1Start2P = 1 << 1
	inp1Start1P = 1 << 2
	inp1Fire1P  = 1 << 4
	inp1Left1P  = 1 << 5
	inp1Right1P = 1 << 6
)

// INP2 bits.
const (
	inp2Dip3   = 1 << 0
	inp2Dip5   = 1 << 1
	inp2Tilt   = 1 << 2
	inp2Dip6   = 1 << 3
	inp2Fire2P = 1 << 4
	inp2Left2P = 1 << 5
	inp2Right2P = 1 << 6
)

func setBit(b *uint8, mask uint8, v bool) {
	if v {
		*b |= mask
	} else {
		*b &^= mask
	}
}

// SetDip4 sets the cabinet's bonus-life DIP switch bit, wired into INP0.
func (in *Inputs) SetDip4(v bool) { setBit(&in.inp0, inp0Dip4, v) }

// SetFire sets the coin-cabinet-wired fire bit shared across both players
// (INP0), in addition to the per-player bits on INP1/INP2.
func (in *Inputs) SetFire(v bool) { setBit(&in.inp0, inp0Fire, v) }

// SetLeft sets the coin-cabinet-wired left bit (INP0).
func (in *Inputs) SetLeft(v bool) { setBit(&in.inp0, inp0Left, v) }

// SetRight sets the coin-cabinet-wired right bit (INP0).
func (in *Inputs) SetRight(v bool) { setBit(&in.inp0, inp0Right, v) }

// SetCredit sets the coin-slot bit (INP1).
func (in *Inputs) SetCredit(v bool) { setBit(&in.inp1, inp1Credit, v) }

// SetStart2P sets the 2-player start button (INP1).
func (in *Inputs) SetStart2P(v bool) { setBit(&in.inp1, inp1Start2P, v) }

// SetStart1P sets the 1-player start button (INP1).
func (in *Inputs) SetStart1P(v bool) { setBit(&in.inp1, inp1Start1P, v) }

// SetFire1P sets player 1's fire button (INP1).
func (in *Inputs) SetFire1P(v bool) { setBit(&in.inp1, inp1Fire1P, v) }

// SetLeft1P sets player 1's left button (INP1).
func (in *Inputs) SetLeft1P(v bool) { setBit(&in.inp1, inp1Left1P, v) }

// SetRight1P sets player 1's right button (INP1).
func (in *Inputs) SetRight1P(v bool) { setBit(&in.inp1, inp1Right1P, v) }

// SetDip3 sets a ships-per-game DIP switch bit (INP2).
func (in *Inputs) SetDip3(v bool) { setBit(&in.inp2, inp2Dip3, v) }

// SetDip5 sets a ships-per-game DIP switch bit (INP2).
func (in *Inputs) SetDip5(v bool) { setBit(&in.inp2, inp2Dip5, v) }

// SetTilt sets the cabinet tilt-switch bit (INP2).
func (in *Inputs) SetTilt(v bool) { setBit(&in.inp2, inp2Tilt, v) }

// SetDip6 sets the coin-info display DIP switch bit (INP2).
func (in *Inputs) SetDip6(v bool) { setBit(&in.inp2, inp2Dip6, v) }

// SetFire2P sets player 2's fire button (INP2).
func (in *Inputs) SetFire2P(v bool) { setBit(&in.inp2, inp2Fire2P, v) }

// SetLeft2P sets player 2's left button (INP2).
func (in *Inputs) SetLeft2P(v bool) { setBit(&in.inp2, inp2Left2P, v) }

// SetRight2P sets player 2's right button (INP2).
func (in *Inputs) SetRight2P(v bool) { setBit(&in.inp2, inp2Right2P, v) }

// Reset clears every input bit, as at cabinet power-on.
func (in *Inputs) Reset() { *in = Inputs{} }
