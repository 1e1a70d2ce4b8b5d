package cpu

// CPUAndMemory pairs a CPU with the FlatMemory backing it, letting tests
// poke bytes directly (cpu.Memory[addr] = ...) instead of going through the
// Memory interface.
type CPUAndMemory struct {
	*CPU
	Memory *FlatMemory
}

func NewCPUAndMemory() *CPUAndMemory {
	mem := &FlatMemory{}
	return &CPUAndMemory{CPU: NewCPU(mem), Memory: mem}
}

// Step shadows CPU.Step for tests that assert on a per-instruction cycle
// count rather than the error return.
func (c *CPUAndMemory) Step() uint8 {
	before := c.Cycles
	c.CPU.Step()
	return uint8(c.Cycles - before)
}

// execute decodes and dispatches opcode directly, without fetching it from
// PC first — PC is expected to already sit at the operand (the position it
// would be in after a real fetch consumed the opcode byte). Returns the
// instruction's total cycle cost.
func (c *CPUAndMemory) execute(opcode uint8) uint8 {
	op, mode := Decode(opcode)
	info := opcodeTable[opcode]
	cycles := info.cycle + c.dispatch(op, mode)
	c.Cycles += uint64(cycles)
	return cycles
}
