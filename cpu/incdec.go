package cpu

// execRMW implements the memory read-modify-write shape shared by INC/DEC:
// read the byte at the resolved address, apply f, write it back, and update
// Z/N from the new value. Never pays a page-cross penalty (opcodeTable
// already prices AbsoluteX at the worst case).
func (c *CPU) execRMW(mode AddressingMode, f func(uint8) uint8) uint8 {
	addr := c.writeAddr(mode)
	result := f(c.mem.ReadByte(addr))
	c.mem.WriteByte(addr, result)
	c.updateZN(result)
	return 0
}
