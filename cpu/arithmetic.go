package cpu

// execADC implements ADC: binary-mode add-with-carry. Decimal mode is a
// documented non-goal — FlagD can be set and read, but the sum below is
// always computed as pure binary addition.
func (c *CPU) execADC(mode AddressingMode) uint8 {
	v, crossed := c.readOperand(mode)
	c.adcCore(v)
	if crossed {
		return 1
	}
	return 0
}

// execSBC implements SBC as an add-with-carry against the operand's ones'
// complement: A - m - (1-C) == A + ^m + C. This reproduces the documented
// carry (no-borrow) and overflow semantics exactly, since XOR distributes
// over complement (^m ^ r == ^(m ^ r)).
func (c *CPU) execSBC(mode AddressingMode) uint8 {
	v, crossed := c.readOperand(mode)
	c.adcCore(^v)
	if crossed {
		return 1
	}
	return 0
}

// adcCore performs the shared ADC/SBC arithmetic: sum A, value, and carry-in;
// set C from unsigned overflow out of bit 7; set V from the signed-overflow
// table (A and the operand share a sign bit that the result does not); store
// the result in A and update Z/N.
func (c *CPU) adcCore(value uint8) {
	carryIn := uint16(0)
	if c.GetCarry() {
		carryIn = 1
	}
	a := c.A
	sum := uint16(a) + uint16(value) + carryIn
	result := uint8(sum)

	c.SetCarry(sum > 0xFF)
	c.SetOverflow((a^result)&(value^result)&0x80 != 0)

	c.A = result
	c.updateZN(c.A)
}
