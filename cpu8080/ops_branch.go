package cpu8080

func (c *CPU) opJmp(target uint16) {
	c.reg.PC = target
}

func (c *CPU) opCall(target uint16) {
	c.pushWord(c.reg.PC)
	c.opJmp(target)
}

func (c *CPU) opRet() {
	c.reg.PC = c.popWord()
}
