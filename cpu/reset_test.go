package cpu

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestResetZeroesEverything(t *testing.T) {
	c := NewCPUAndMemory()

	c.A, c.X, c.Y = 0x11, 0x22, 0x33
	c.SP = 0x80
	c.PC = 0xABCD
	c.P = FlagC | FlagZ | FlagN | FlagV
	c.Cycles = 123456

	c.Reset()

	assert.Equal(t, uint8(0), c.A)
	assert.Equal(t, uint8(0), c.X)
	assert.Equal(t, uint8(0), c.Y)
	assert.Equal(t, uint8(0), c.SP)
	assert.Equal(t, uint16(0), c.PC)
	assert.Equal(t, uint8(0), c.P)
	assert.Equal(t, uint64(0), c.Cycles)
}

func TestResetLeavesMemoryAlone(t *testing.T) {
	c := NewCPUAndMemory()
	c.Memory[0x0200] = 0x42

	c.Reset()

	assert.Equal(t, uint8(0x42), c.Memory[0x0200], "Reset is a CPU operation, not a memory clear")
}
