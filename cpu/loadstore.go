package cpu

// readOperand resolves mode to its 8-bit operand value, advancing PC past
// it, and reports whether resolving an indexed-absolute/indirect-Y address
// crossed a page (for the caller's read-penalty decision).
func (c *CPU) readOperand(mode AddressingMode) (value uint8, crossed bool) {
	switch mode {
	case Immediate:
		return c.operandImmediate(), false
	case ZeroPage:
		return c.mem.ReadByte(c.addrZeroPage()), false
	case ZeroPageX:
		return c.mem.ReadByte(c.addrZeroPageIndexed(c.X)), false
	case ZeroPageY:
		return c.mem.ReadByte(c.addrZeroPageIndexed(c.Y)), false
	case Absolute:
		return c.mem.ReadByte(c.addrAbsolute()), false
	case AbsoluteX:
		addr, cr := c.addrAbsoluteIndexed(c.X)
		return c.mem.ReadByte(addr), cr
	case AbsoluteY:
		addr, cr := c.addrAbsoluteIndexed(c.Y)
		return c.mem.ReadByte(addr), cr
	case IndirectX:
		return c.mem.ReadByte(c.addrIndirectX()), false
	case IndirectY:
		addr, cr := c.addrIndirectY()
		return c.mem.ReadByte(addr), cr
	}
	panic("cpu: unsupported addressing mode for operand read")
}

// writeAddr resolves mode to the effective address an instruction writes
// to. Unlike readOperand this never reports a page cross: stores always pay
// the worst-case cycle cost regardless (opcodeTable bakes that in).
func (c *CPU) writeAddr(mode AddressingMode) uint16 {
	switch mode {
	case ZeroPage:
		return c.addrZeroPage()
	case ZeroPageX:
		return c.addrZeroPageIndexed(c.X)
	case ZeroPageY:
		return c.addrZeroPageIndexed(c.Y)
	case Absolute:
		return c.addrAbsolute()
	case AbsoluteX:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		return addr
	case AbsoluteY:
		addr, _ := c.addrAbsoluteIndexed(c.Y)
		return addr
	case IndirectX:
		return c.addrIndirectX()
	case IndirectY:
		addr, _ := c.addrIndirectY()
		return addr
	}
	panic("cpu: unsupported addressing mode for write address")
}

// execLoad implements LDA/LDX/LDY: load reg from the operand and set Z/N.
func (c *CPU) execLoad(reg *uint8, mode AddressingMode) uint8 {
	v, crossed := c.readOperand(mode)
	*reg = v
	c.updateZN(*reg)
	if crossed {
		return 1
	}
	return 0
}

// execStore implements STA/STX/STY: write reg to the resolved address. No
// flags change and no page-cross penalty applies.
func (c *CPU) execStore(reg uint8, mode AddressingMode) uint8 {
	c.mem.WriteByte(c.writeAddr(mode), reg)
	return 0
}
