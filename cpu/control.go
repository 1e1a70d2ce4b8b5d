package cpu

// execJMP implements JMP Absolute and JMP Indirect (including the
// documented page-wrap bug in the indirect pointer fetch).
func (c *CPU) execJMP(mode AddressingMode) {
	if mode == Indirect {
		c.PC = c.addrIndirect()
		return
	}
	c.PC = c.addrAbsolute()
}

// execJSR pushes the address of the last byte of the JSR instruction
// (PC_of_JSR+2, i.e. the current PC after the two operand bytes, minus one)
// then jumps to the target address.
func (c *CPU) execJSR() {
	target := c.addrAbsolute()
	c.push16(c.PC - 1)
	c.PC = target
}

// execRTS pulls the return address pushed by JSR and resumes one byte past
// it (the byte after the JSR instruction).
func (c *CPU) execRTS() {
	c.PC = c.pull16() + 1
}

// branch resolves the Relative operand and, if taken, moves PC there,
// returning the branch-taken and page-cross cycle penalties. The page
// comparison is against PC as it stands right after the one-byte operand
// (the "instruction after the branch"), not an arithmetic overflow check.
func (c *CPU) branch(taken bool) uint8 {
	offset := c.operandRelative()
	if !taken {
		return 0
	}
	next := c.PC
	target := uint16(int32(next) + int32(offset))
	c.PC = target
	if pageCrossed(next, target) {
		return 2
	}
	return 1
}

// execBRK implements the software-interrupt opcode: pushes PC+2 (skipping
// the padding byte that follows BRK's opcode), then P with the B flag set,
// disables further interrupts, and loads PC from the BRK/IRQ vector at
// $FFFE/$FFFF. No external IRQ/NMI line is modeled — the vector bytes are
// ordinary memory the host is free to pre-load.
func (c *CPU) execBRK() {
	c.push16(c.PC + 1)
	c.push(c.P | FlagB)
	c.SetInterruptDisable(true)
	c.PC = ReadWord(c.mem, 0xFFFE)
}

// execRTI pulls the status byte, clearing B in the live register (B is a
// push-time artifact, not a stored register bit), and then the return
// address directly — unlike RTS, with no +1.
func (c *CPU) execRTI() {
	c.P = c.pull() &^ FlagB
	c.PC = c.pull16()
}
