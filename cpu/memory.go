package cpu

// Memory is the bus the CPU reads and writes through. Implementations own the
// backing storage; the CPU never aliases or retains addresses past a Step.
type Memory interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, v uint8)
}

// ReadWord reads a little-endian 16-bit value. The high byte is read from
// addr+1, which wraps mod 2^16 (relevant at addr == 0xFFFF).
func ReadWord(m Memory, addr uint16) uint16 {
	lo := uint16(m.ReadByte(addr))
	hi := uint16(m.ReadByte(addr + 1))
	return hi<<8 | lo
}

// WriteWord writes a little-endian 16-bit value across two bytes.
func WriteWord(m Memory, addr uint16, v uint16) {
	m.WriteByte(addr, uint8(v))
	m.WriteByte(addr+1, uint8(v>>8))
}

// FlatMemory is the core's reference Memory: a bare 64 KiB array with no
// banking, no side effects, and no invalid addresses.
type FlatMemory [65536]uint8

func (m *FlatMemory) ReadByte(addr uint16) uint8     { return m[addr] }
func (m *FlatMemory) WriteByte(addr uint16, v uint8) { m[addr] = v }

// Load copies program bytes into memory starting at addr.
func (m *FlatMemory) Load(addr uint16, program []uint8) {
	for i, b := range program {
		m[addr+uint16(i)] = b
	}
}

// fetch reads the byte at PC and advances PC by one.
func (c *CPU) fetch() uint8 {
	b := c.mem.ReadByte(c.PC)
	c.PC++
	return b
}

// fetchWord reads a little-endian word at PC and advances PC by two.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return hi<<8 | lo
}

// pageCrossed reports whether base and base+offset differ in their high byte.
func pageCrossed(base, final uint16) bool {
	return base&0xFF00 != final&0xFF00
}

// operandImmediate returns the byte at PC and advances past it.
func (c *CPU) operandImmediate() uint8 {
	return c.fetch()
}

// addrZeroPage resolves the ZeroPage effective address.
func (c *CPU) addrZeroPage() uint16 {
	return uint16(c.fetch())
}

// addrZeroPageIndexed resolves ZeroPage,X / ZeroPage,Y; the add wraps within
// the zero page.
func (c *CPU) addrZeroPageIndexed(index uint8) uint16 {
	return uint16(c.fetch() + index)
}

// addrAbsolute resolves the Absolute effective address.
func (c *CPU) addrAbsolute() uint16 {
	return c.fetchWord()
}

// addrAbsoluteIndexed resolves Absolute,X / Absolute,Y and reports a page
// cross between the unindexed base and the final address.
func (c *CPU) addrAbsoluteIndexed(index uint8) (addr uint16, crossed bool) {
	base := c.fetchWord()
	final := base + uint16(index)
	return final, pageCrossed(base, final)
}

// addrIndirectX resolves (zp,X): the zero-page base is added to X (wrapping)
// before the pointer is read, both bytes from the zero page.
func (c *CPU) addrIndirectX() uint16 {
	zp := c.fetch() + c.X
	lo := uint16(c.mem.ReadByte(uint16(zp)))
	hi := uint16(c.mem.ReadByte(uint16(zp + 1)))
	return hi<<8 | lo
}

// addrIndirectY resolves (zp),Y: the pointer is read from the zero page
// first, then Y is added to it. Reports whether that add crosses a page.
func (c *CPU) addrIndirectY() (addr uint16, crossed bool) {
	zp := c.fetch()
	lo := uint16(c.mem.ReadByte(uint16(zp)))
	hi := uint16(c.mem.ReadByte(uint16(zp + 1)))
	base := hi<<8 | lo
	final := base + uint16(c.Y)
	return final, pageCrossed(base, final)
}

// addrIndirect resolves JMP's (abs) operand, including the page-wrap bug: if
// the pointer's low byte is 0xFF, the high byte is fetched from the start of
// the same page rather than the next one.
func (c *CPU) addrIndirect() uint16 {
	ptr := c.fetchWord()
	lo := uint16(c.mem.ReadByte(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(c.mem.ReadByte(hiAddr))
	return hi<<8 | lo
}

// operandRelative returns the signed displacement for a branch, having
// already advanced PC past the one-byte operand.
func (c *CPU) operandRelative() int8 {
	return int8(c.fetch())
}
