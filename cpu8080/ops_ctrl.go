package cpu8080

// opXthl implements XTHL: exchange HL with the word at the top of stack.
func (c *CPU) opXthl() {
	hl := c.reg.HL()
	c.reg.SetHL(c.readMemoryWord(c.reg.SP))
	c.writeMemoryWord(c.reg.SP, hl)
}

// popPSW implements POP PSW: pop A:F, then enforce the constant-bit mask
// on F (bits 1, 3, 5 fixed; everything else comes from the popped byte).
func (c *CPU) popPSW() {
	c.reg.SetPSW(c.popWord())
	c.fixupFlags()
}
