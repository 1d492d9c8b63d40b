package cpu8080

import "fmt"

// instructionTemplates maps each opcode to a textual template: '$' and a
// doubled '#' both consume a 16-bit operand (little-endian, formatted with a
// trailing "h"), a single '#' consumes an 8-bit operand, and every other
// character is copied through literally.
var instructionTemplates = [256]string{
	"nop", "lxi b, ##", "stax b", "inx b", "inr b", "dcr b", "mvi b, #", "rlc", "nop",
	"dad b", "ldax b", "dcx b", "inr c", "dcr c", "mvi c, #", "rrc", "nop", "lxi d, ##",
	"stax d", "inx d", "inr d", "dcr d", "mvi d, #", "ral", "nop", "dad d", "ldax d",
	"dcx d", "inr e", "dcr e", "mvi e, #", "rar", "nop", "lxi h, ##", "shld $", "inx h",
	"inr h", "dcr h", "mvi h, #", "daa", "nop", "dad h", "lhld $", "dcx h", "inr l",
	"dcr l", "mvi l, #", "cma", "nop", "lxi sp, ##", "sta $", "inx sp", "inr m", "dcr m",
	"mvi m, #", "stc", "nop", "dad sp", "lda $", "dcx sp", "inr a", "dcr a", "mvi a, #",
	"cmc", "mov b, b", "mov b, c", "mov b, d", "mov b, e", "mov b, h", "mov b, l", "mov b, m", "mov b, a",
	"mov c, b", "mov c, c", "mov c, d", "mov c, e", "mov c, h", "mov c, l", "mov c, m", "mov c, a", "mov d, b",
	"mov d, c", "mov d, d", "mov d, e", "mov d, h", "mov d, l", "mov d, m", "mov d, a", "mov e, b", "mov e, c",
	"mov e, d", "mov e, e", "mov e, h", "mov e, l", "mov e, m", "mov e, a", "mov h, b", "mov h, c", "mov h, d",
	"mov h, e", "mov h, h", "mov h, l", "mov h, m", "mov h, a", "mov l, b", "mov l, c", "mov l, d", "mov l, e",
	"mov l, h", "mov l, l", "mov l, m", "mov l, a", "mov m, b", "mov m, c", "mov m, d", "mov m, e", "mov m, h",
	"mov m, l", "hlt", "mov m, a", "mov a, b", "mov a, c", "mov a, d", "mov a, e", "mov a, h", "mov a, l",
	"mov a, m", "mov a, a", "add b", "add c", "add d", "add e", "add h", "add l", "add m",
	"add a", "adc b", "adc c", "adc d", "adc e", "adc h", "adc l", "adc m", "adc a",
	"sub b", "sub c", "sub d", "sub e", "sub h", "sub l", "sub m", "sub a", "sbc b",
	"sbc c", "sbc d", "sbc e", "sbc h", "sbc l", "sbc m", "sbc a", "ana b", "ana c",
	"ana d", "ana e", "ana h", "ana l", "ana m", "ana a", "xra b", "xra c", "xra d",
	"xra e", "xra h", "xra l", "xra m", "xra a", "ora b", "ora c", "ora d", "ora e",
	"ora h", "ora l", "ora m", "ora a", "cmp b", "cmp c", "cmp d", "cmp e", "cmp h",
	"cmp l", "cmp m", "cmp a", "rnz", "pop b", "jnz $", "jmp $", "cnz $", "push b",
	"adi #", "rst 0", "rz", "ret", "jz $", "jmp $", "cz $", "call $", "aci #",
	"rst 1", "rnc", "pop d", "jnc $", "out #", "cnc $", "push d", "sui #", "rst 2",
	"rc", "ret", "jc $", "in #", "cc $", "call $", "sbi #", "rst 3", "rpo",
	"pop h", "jpo $", "xthl", "cpo $", "push h", "ani #", "rst 4", "rpe", "pchl",
	"jo $", "xchg", "cpe $", "call $", "xri #", "rst 5", "rp", "pop psw", "jp $",
	"di", "cp $", "push psw", "ori #", "rst 6", "rm", "sphl", "jm $", "ei",
	"cm $", "call $", "cpi #", "rst 7",
}

// Disassemble decodes the instruction at addr without mutating CPU state and
// returns it formatted as "AAAA: XX YY ZZ          mnemonic operand".
func (c *CPU) Disassemble(addr uint16) string {
	cur := addr
	opcode := c.bus.ReadMemory(cur)
	cur++
	tmpl := instructionTemplates[opcode]

	hex := fmt.Sprintf("%02X", opcode)
	var mnemonic string

	for i := 0; i < len(tmpl); {
		switch {
		case tmpl[i] == '$' || (tmpl[i] == '#' && i+1 < len(tmpl) && tmpl[i+1] == '#'):
			lo := c.bus.ReadMemory(cur)
			cur++
			hi := c.bus.ReadMemory(cur)
			cur++
			value := uint16(lo) | uint16(hi)<<8
			hex += fmt.Sprintf(" %02X %02X", lo, hi)
			mnemonic += fmt.Sprintf("%04xh", value)
			i += 2

		case tmpl[i] == '#':
			v := c.bus.ReadMemory(cur)
			cur++
			hex += fmt.Sprintf(" %02X", v)
			mnemonic += fmt.Sprintf("%02xh", v)
			i++

		default:
			mnemonic += string(tmpl[i])
			i++
		}
	}

	return fmt.Sprintf("%04X: %-16s %s", addr, hex, mnemonic)
}

// StateString formats the full register file, flag letters (uppercase when
// set), and the disassembly of the instruction about to execute — the line
// printed once per instruction when Trace is enabled.
func (c *CPU) StateString() string {
	flagChar := func(mask uint8, ch byte) byte {
		if c.flag(mask) {
			return ch - ('a' - 'A')
		}
		return ch
	}

	return fmt.Sprintf("A: %02X F: %02X_%c%c%c%c%c B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X %s",
		c.reg.A, c.reg.F,
		flagChar(flagS, 's'), flagChar(flagZ, 'z'), flagChar(flagAC, 'h'), flagChar(flagP, 'p'), flagChar(flagC, 'c'),
		c.reg.B, c.reg.C, c.reg.D, c.reg.E, c.reg.H, c.reg.L, c.reg.SP,
		c.Disassemble(c.reg.PC))
}
