package cpu

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

// TestINC covers every addressing mode INC supports, exercising the
// wrap-on-overflow and sign-flip edges of the Z/N flag update.
func TestINC(t *testing.T) {
	modes := []struct {
		name   string
		opcode uint8
		place  func(*CPUAndMemory, uint8) uint16 // writes the operand, returns its address
		cycles uint8
	}{
		{
			name:   "zero page",
			opcode: INC_ZP,
			place: func(c *CPUAndMemory, v uint8) uint16 {
				c.Memory[1] = 0x42
				c.Memory[0x42] = v
				return 0x42
			},
			cycles: 5,
		},
		{
			name:   "zero page,X",
			opcode: INC_ZPX,
			place: func(c *CPUAndMemory, v uint8) uint16 {
				c.Memory[1] = 0x42
				c.X = 0x01
				c.Memory[0x43] = v
				return 0x43
			},
			cycles: 6,
		},
		{
			name:   "absolute",
			opcode: INC_ABS,
			place: func(c *CPUAndMemory, v uint8) uint16 {
				c.Memory[1] = 0x80
				c.Memory[2] = 0x12
				c.Memory[0x1280] = v
				return 0x1280
			},
			cycles: 6,
		},
		{
			name:   "absolute,X",
			opcode: INC_ABX,
			place: func(c *CPUAndMemory, v uint8) uint16 {
				c.Memory[1] = 0x80
				c.Memory[2] = 0x12
				c.X = 0x01
				c.Memory[0x1281] = v
				return 0x1281
			},
			cycles: 7,
		},
	}

	edges := []struct {
		before, after uint8
		z, n          bool
	}{
		{0x00, 0x01, false, false},
		{0x7F, 0x80, false, true}, // sign flip
		{0xFE, 0xFF, false, true},
		{0xFF, 0x00, true, false}, // wraps to zero
		{0x44, 0x45, false, false},
	}

	for _, mode := range modes {
		for _, edge := range edges {
			t.Run(fmt.Sprintf("%s/%#02x->%#02x", mode.name, edge.before, edge.after), func(t *testing.T) {
				c := NewCPUAndMemory()
				c.PC = 1
				c.Memory[0] = mode.opcode

				addr := mode.place(c, edge.before)
				cycles := c.execute(mode.opcode)

				assert.Equal(t, mode.cycles, cycles, "cycle count")
				assert.Equal(t, edge.after, c.Memory[addr], "incremented value")
				assert.Equal(t, edge.z, c.GetZero(), "Z flag")
				assert.Equal(t, edge.n, c.GetNegative(), "N flag")
			})
		}
	}
}
