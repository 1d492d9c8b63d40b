package cpu8080

// reg8 reads one of the eight 3-bit-encoded operand slots used throughout
// the 8080 instruction set: B C D E H L M A, where M is the memory byte
// addressed by HL.
func (c *CPU) reg8(i uint8) uint8 {
	switch i & 0x07 {
	case 0:
		return c.reg.B
	case 1:
		return c.reg.C
	case 2:
		return c.reg.D
	case 3:
		return c.reg.E
	case 4:
		return c.reg.H
	case 5:
		return c.reg.L
	case 6:
		return c.readMemory(c.reg.HL())
	default: // 7
		return c.reg.A
	}
}

// setReg8 writes one of the eight 3-bit-encoded operand slots; index 6
// writes the memory byte addressed by HL.
func (c *CPU) setReg8(i uint8, v uint8) {
	switch i & 0x07 {
	case 0:
		c.reg.B = v
	case 1:
		c.reg.C = v
	case 2:
		c.reg.D = v
	case 3:
		c.reg.E = v
	case 4:
		c.reg.H = v
	case 5:
		c.reg.L = v
	case 6:
		c.writeMemory(c.reg.HL(), v)
	default: // 7
		c.reg.A = v
	}
}

// dispatch decodes and executes one opcode (already fetched into the
// instruction's first byte) and charges the reference cycle count for the
// opcode and, where relevant, the taken/not-taken branch variant.
func (c *CPU) dispatch(opcode uint8) {
	switch {
	// MOV r, r' -- 0x40-0x7F except 0x76 (HLT).
	case opcode == 0x76:
		c.charge(7)
		c.halt()

	case opcode&0xC0 == 0x40:
		dst, src := (opcode>>3)&0x07, opcode&0x07
		if dst == 6 || src == 6 {
			c.charge(7)
		} else {
			c.charge(5)
		}
		c.setReg8(dst, c.reg8(src))

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r -- 0x80-0xBF.
	case opcode&0xC0 == 0x80:
		src := opcode & 0x07
		if src == 6 {
			c.charge(7)
		} else {
			c.charge(4)
		}
		rhs := c.reg8(src)
		switch (opcode >> 3) & 0x07 {
		case 0:
			c.reg.A = c.opAdd(c.reg.A, rhs)
		case 1:
			c.reg.A = c.opAdc(c.reg.A, rhs)
		case 2:
			c.reg.A = c.opSub(c.reg.A, rhs)
		case 3:
			c.reg.A = c.opSbb(c.reg.A, rhs)
		case 4:
			c.reg.A = c.opAnd(c.reg.A, rhs)
		case 5:
			c.reg.A = c.opXor(c.reg.A, rhs)
		case 6:
			c.reg.A = c.opOr(c.reg.A, rhs)
		case 7:
			c.opSub(c.reg.A, rhs) // CMP discards the result, keeps the flags
		}

	// INR r -- 0x04,0x0C,...,0x3C.
	case opcode&0xC7 == 0x04:
		reg := (opcode >> 3) & 0x07
		if reg == 6 {
			c.charge(10)
		} else {
			c.charge(5)
		}
		c.setReg8(reg, c.opInr(c.reg8(reg)))

	// DCR r -- 0x05,0x0D,...,0x3D.
	case opcode&0xC7 == 0x05:
		reg := (opcode >> 3) & 0x07
		if reg == 6 {
			c.charge(10)
		} else {
			c.charge(5)
		}
		c.setReg8(reg, c.opDcr(c.reg8(reg)))

	// MVI r, d8 -- 0x06,0x0E,...,0x3E.
	case opcode&0xC7 == 0x06:
		reg := (opcode >> 3) & 0x07
		v := c.fetchByte()
		if reg == 6 {
			c.charge(10)
		} else {
			c.charge(7)
		}
		c.setReg8(reg, v)

	default:
		c.dispatchOther(opcode)
	}
}

// dispatchOther handles every opcode not covered by the systematic
// register-field decode above: immediates, stack/control flow, rotates,
// and the single-byte special-purpose instructions.
func (c *CPU) dispatchOther(opcode uint8) {
	switch opcode {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		c.charge(4) // NOP and its unused-encoding aliases

	case 0x01:
		c.charge(10)
		c.reg.SetBC(c.fetchWord())
	case 0x11:
		c.charge(10)
		c.reg.SetDE(c.fetchWord())
	case 0x21:
		c.charge(10)
		c.reg.SetHL(c.fetchWord())
	case 0x31:
		c.charge(10)
		c.reg.SP = c.fetchWord()

	case 0x0A:
		c.charge(7)
		c.reg.A = c.readMemory(c.reg.BC())
	case 0x1A:
		c.charge(7)
		c.reg.A = c.readMemory(c.reg.DE())
	case 0x02:
		c.charge(7)
		c.writeMemory(c.reg.BC(), c.reg.A)
	case 0x12:
		c.charge(7)
		c.writeMemory(c.reg.DE(), c.reg.A)

	case 0x3A:
		c.charge(13)
		c.reg.A = c.readMemory(c.fetchWord())
	case 0x32:
		c.charge(13)
		c.writeMemory(c.fetchWord(), c.reg.A)
	case 0x2A:
		c.charge(16)
		c.reg.SetHL(c.readMemoryWord(c.fetchWord()))
	case 0x22:
		c.charge(16)
		c.writeMemoryWord(c.fetchWord(), c.reg.HL())

	case 0x03:
		c.charge(5)
		c.reg.SetBC(c.reg.BC() + 1)
	case 0x13:
		c.charge(5)
		c.reg.SetDE(c.reg.DE() + 1)
	case 0x23:
		c.charge(5)
		c.reg.SetHL(c.reg.HL() + 1)
	case 0x33:
		c.charge(5)
		c.reg.SP++
	case 0x0B:
		c.charge(5)
		c.reg.SetBC(c.reg.BC() - 1)
	case 0x1B:
		c.charge(5)
		c.reg.SetDE(c.reg.DE() - 1)
	case 0x2B:
		c.charge(5)
		c.reg.SetHL(c.reg.HL() - 1)
	case 0x3B:
		c.charge(5)
		c.reg.SP--

	case 0x09:
		c.charge(10)
		c.reg.SetHL(c.opDad(c.reg.HL(), c.reg.BC()))
	case 0x19:
		c.charge(10)
		c.reg.SetHL(c.opDad(c.reg.HL(), c.reg.DE()))
	case 0x29:
		c.charge(10)
		c.reg.SetHL(c.opDad(c.reg.HL(), c.reg.HL()))
	case 0x39:
		c.charge(10)
		c.reg.SetHL(c.opDad(c.reg.HL(), c.reg.SP))

	case 0x07:
		c.charge(4)
		c.reg.A = c.opRlc(c.reg.A)
	case 0x0F:
		c.charge(4)
		c.reg.A = c.opRrc(c.reg.A)
	case 0x17:
		c.charge(4)
		c.reg.A = c.opRal(c.reg.A)
	case 0x1F:
		c.charge(4)
		c.reg.A = c.opRar(c.reg.A)
	case 0x27:
		c.charge(4)
		c.reg.A = c.opDaa(c.reg.A)
	case 0x2F:
		c.charge(4)
		c.reg.A = ^c.reg.A
	case 0x37:
		c.charge(4)
		c.setFlag(flagC, true)
	case 0x3F:
		c.charge(4)
		c.setFlag(flagC, !c.flag(flagC))

	case 0xC3, 0xCB:
		c.charge(10)
		c.opJmp(c.fetchWord())
	case 0xC2:
		c.jumpIf(!c.flag(flagZ))
	case 0xD2:
		c.jumpIf(!c.flag(flagC))
	case 0xE2:
		c.jumpIf(!c.flag(flagP))
	case 0xF2:
		c.jumpIf(!c.flag(flagS))
	case 0xCA:
		c.jumpIf(c.flag(flagZ))
	case 0xDA:
		c.jumpIf(c.flag(flagC))
	case 0xEA:
		c.jumpIf(c.flag(flagP))
	case 0xFA:
		c.jumpIf(c.flag(flagS))

	case 0xCD, 0xDD, 0xED, 0xFD:
		c.charge(17)
		c.opCall(c.fetchWord())
	case 0xC4:
		c.callIf(!c.flag(flagZ))
	case 0xD4:
		c.callIf(!c.flag(flagC))
	case 0xE4:
		c.callIf(!c.flag(flagP))
	case 0xF4:
		c.callIf(!c.flag(flagS))
	case 0xCC:
		c.callIf(c.flag(flagZ))
	case 0xDC:
		c.callIf(c.flag(flagC))
	case 0xEC:
		c.callIf(c.flag(flagP))
	case 0xFC:
		c.callIf(c.flag(flagS))

	case 0xC9, 0xD9:
		c.charge(10)
		c.opRet()
	case 0xC0:
		c.retIf(!c.flag(flagZ))
	case 0xD0:
		c.retIf(!c.flag(flagC))
	case 0xE0:
		c.retIf(!c.flag(flagP))
	case 0xF0:
		c.retIf(!c.flag(flagS))
	case 0xC8:
		c.retIf(c.flag(flagZ))
	case 0xD8:
		c.retIf(c.flag(flagC))
	case 0xE8:
		c.retIf(c.flag(flagP))
	case 0xF8:
		c.retIf(c.flag(flagS))

	case 0xC7:
		c.charge(11)
		c.opCall(0x0000)
	case 0xCF:
		c.charge(11)
		c.opCall(0x0008)
	case 0xD7:
		c.charge(11)
		c.opCall(0x0010)
	case 0xDF:
		c.charge(11)
		c.opCall(0x0018)
	case 0xE7:
		c.charge(11)
		c.opCall(0x0020)
	case 0xEF:
		c.charge(11)
		c.opCall(0x0028)
	case 0xF7:
		c.charge(11)
		c.opCall(0x0030)
	case 0xFF:
		c.charge(11)
		c.opCall(0x0038)

	case 0xF5:
		c.charge(11)
		c.pushWord(c.reg.PSW())
	case 0xC5:
		c.charge(11)
		c.pushWord(c.reg.BC())
	case 0xD5:
		c.charge(11)
		c.pushWord(c.reg.DE())
	case 0xE5:
		c.charge(11)
		c.pushWord(c.reg.HL())
	case 0xC1:
		c.charge(10)
		c.reg.SetBC(c.popWord())
	case 0xD1:
		c.charge(10)
		c.reg.SetDE(c.popWord())
	case 0xE1:
		c.charge(10)
		c.reg.SetHL(c.popWord())
	case 0xF1:
		c.charge(10)
		c.popPSW()

	case 0xEB:
		c.charge(5)
		de, hl := c.reg.DE(), c.reg.HL()
		c.reg.SetDE(hl)
		c.reg.SetHL(de)
	case 0xE3:
		c.charge(18)
		c.opXthl()
	case 0xE9:
		c.charge(5)
		c.reg.PC = c.reg.HL()
	case 0xF9:
		c.charge(5)
		c.reg.SP = c.reg.HL()

	case 0xF3:
		c.charge(4)
		c.interruptEnable = false
	case 0xFB:
		c.charge(4)
		c.interruptEnable = true

	case 0xDB:
		c.charge(10)
		c.reg.A = c.readIO(c.fetchByte())
	case 0xD3:
		c.charge(10)
		c.writeIO(c.fetchByte(), c.reg.A)

	case 0xC6:
		c.charge(7)
		c.reg.A = c.opAdd(c.reg.A, c.fetchByte())
	case 0xCE:
		c.charge(7)
		c.reg.A = c.opAdc(c.reg.A, c.fetchByte())
	case 0xD6:
		c.charge(7)
		c.reg.A = c.opSub(c.reg.A, c.fetchByte())
	case 0xDE:
		c.charge(7)
		c.reg.A = c.opSbb(c.reg.A, c.fetchByte())
	case 0xE6:
		c.charge(7)
		c.reg.A = c.opAnd(c.reg.A, c.fetchByte())
	case 0xEE:
		c.charge(7)
		c.reg.A = c.opXor(c.reg.A, c.fetchByte())
	case 0xF6:
		c.charge(7)
		c.reg.A = c.opOr(c.reg.A, c.fetchByte())
	case 0xFE:
		c.charge(7)
		c.opSub(c.reg.A, c.fetchByte()) // CPI discards the result, keeps the flags
	}
}

// jumpIf reads the jump target unconditionally (the operand bytes are
// always consumed), charges the fixed 10-cycle JMP cost, and transfers
// control only if cond holds.
func (c *CPU) jumpIf(cond bool) {
	target := c.fetchWord()
	c.charge(10)
	if cond {
		c.opJmp(target)
	}
}

// callIf reads the call target unconditionally, then charges 17 cycles and
// calls if taken, or 11 cycles if not.
func (c *CPU) callIf(cond bool) {
	target := c.fetchWord()
	if cond {
		c.charge(17)
		c.opCall(target)
	} else {
		c.charge(11)
	}
}

// retIf charges 11 cycles and returns if taken, or 5 cycles if not.
func (c *CPU) retIf(cond bool) {
	if cond {
		c.charge(11)
		c.opRet()
	} else {
		c.charge(5)
	}
}
