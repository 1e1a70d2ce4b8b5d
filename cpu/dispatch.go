package cpu

// dispatch invokes the handler for op/mode and returns any cycle penalty
// beyond the opcode's base cost (a page-cross or taken-branch penalty).
// Every Op enumerated by decode.go must have a case here; reaching the
// default indicates opcodeTable maps an opcode to an Op this switch doesn't
// know how to execute, which is an implementation bug rather than a runtime
// condition a caller can hit through documented opcodes.
func (c *CPU) dispatch(op Op, mode AddressingMode) uint8 {
	switch op {
	case OpLDA:
		return c.execLoad(&c.A, mode)
	case OpLDX:
		return c.execLoad(&c.X, mode)
	case OpLDY:
		return c.execLoad(&c.Y, mode)
	case OpSTA:
		return c.execStore(c.A, mode)
	case OpSTX:
		return c.execStore(c.X, mode)
	case OpSTY:
		return c.execStore(c.Y, mode)

	case OpTAX:
		c.X = c.A
		c.updateZN(c.X)
	case OpTAY:
		c.Y = c.A
		c.updateZN(c.Y)
	case OpTXA:
		c.A = c.X
		c.updateZN(c.A)
	case OpTYA:
		c.A = c.Y
		c.updateZN(c.A)
	case OpTSX:
		c.X = c.SP
		c.updateZN(c.X)
	case OpTXS:
		c.SP = c.X // OpTXS alone among transfers does not touch N/Z

	case OpPHA:
		c.push(c.A)
	case OpPHP:
		c.push(c.P | FlagB)
	case OpPLA:
		c.A = c.pull()
		c.updateZN(c.A)
	case OpPLP:
		c.P = c.pull()

	case OpAND:
		return c.execLogical(mode, func(a, m uint8) uint8 { return a & m })
	case OpEOR:
		return c.execLogical(mode, func(a, m uint8) uint8 { return a ^ m })
	case OpORA:
		return c.execLogical(mode, func(a, m uint8) uint8 { return a | m })
	case OpBIT:
		c.execBIT(mode)

	case OpADC:
		return c.execADC(mode)
	case OpSBC:
		return c.execSBC(mode)

	case OpCMP:
		return c.execCompare(c.A, mode)
	case OpCPX:
		return c.execCompare(c.X, mode)
	case OpCPY:
		return c.execCompare(c.Y, mode)

	case OpINC:
		return c.execRMW(mode, func(v uint8) uint8 { return v + 1 })
	case OpDEC:
		return c.execRMW(mode, func(v uint8) uint8 { return v - 1 })
	case OpINX:
		c.X++
		c.updateZN(c.X)
	case OpINY:
		c.Y++
		c.updateZN(c.Y)
	case OpDEX:
		c.X--
		c.updateZN(c.X)
	case OpDEY:
		c.Y--
		c.updateZN(c.Y)

	case OpASL:
		return c.execShift(mode, c.asl)
	case OpLSR:
		return c.execShift(mode, c.lsr)
	case OpROL:
		return c.execShift(mode, c.rol)
	case OpROR:
		return c.execShift(mode, c.ror)

	case OpJMP:
		c.execJMP(mode)
	case OpJSR:
		c.execJSR()
	case OpRTS:
		c.execRTS()

	case OpBCC:
		return c.branch(!c.GetCarry())
	case OpBCS:
		return c.branch(c.GetCarry())
	case OpBEQ:
		return c.branch(c.GetZero())
	case OpBNE:
		return c.branch(!c.GetZero())
	case OpBMI:
		return c.branch(c.GetNegative())
	case OpBPL:
		return c.branch(!c.GetNegative())
	case OpBVC:
		return c.branch(!c.GetOverflow())
	case OpBVS:
		return c.branch(c.GetOverflow())

	case OpCLC:
		c.SetCarry(false)
	case OpCLD:
		c.SetDecimal(false)
	case OpCLI:
		c.SetInterruptDisable(false)
	case OpCLV:
		c.SetOverflow(false)
	case OpSEC:
		c.SetCarry(true)
	case OpSED:
		c.SetDecimal(true)
	case OpSEI:
		c.SetInterruptDisable(true)

	case OpBRK:
		c.execBRK()
	case OpNOP:
		// no operation
	case OpRTI:
		c.execRTI()

	default:
		panic("cpu: opcodeTable maps an opcode to an unhandled Op: " + op.String())
	}
	return 0
}
