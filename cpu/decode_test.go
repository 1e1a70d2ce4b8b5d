package cpu

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// TestDecodeRoundTrip checks invariant #2 from the spec's testable
// properties: every opcode byte that decodes to something other than
// OpInvalid must re-encode to the same byte.
func TestDecodeRoundTrip(t *testing.T) {
	documented := 0
	for opcode := 0; opcode < 256; opcode++ {
		op, mode := Decode(uint8(opcode))
		if op == OpInvalid {
			continue
		}
		documented++

		encoded, ok := Encode(op, mode)
		assert.Truef(t, ok, "opcode $%02X: Encode(%s, %d) found no match", opcode, op, mode)
		assert.Equalf(t, uint8(opcode), encoded,
			"opcode $%02X: round-trip produced $%02X instead", opcode, encoded)
	}

	// The documented MOS 6502 instruction set is exactly 151 opcodes.
	assert.Equal(t, 151, documented)
}

func TestDecodeUnmappedBytesAreInvalid(t *testing.T) {
	// A sample of undocumented opcodes on the real 6502.
	for _, opcode := range []uint8{0x02, 0x03, 0x04, 0x0B, 0x12, 0x1A, 0xFF} {
		op, mode := Decode(opcode)
		assert.Equal(t, OpInvalid, op, "opcode $%02X should be invalid", opcode)
		assert.Equal(t, Implied, mode)
	}
}

func TestEncodeReportsMissingModes(t *testing.T) {
	// LDA has no Implied form.
	_, ok := Encode(OpLDA, Implied)
	assert.False(t, ok)

	// STA has no Immediate form (you can't store into an immediate).
	_, ok = Encode(OpSTA, Immediate)
	assert.False(t, ok)
}

func TestParseOpIsInverseOfString(t *testing.T) {
	for op := OpLDA; op <= OpRTI; op++ {
		name := op.String()
		parsed, ok := ParseOp(name)
		assert.True(t, ok, "ParseOp could not find mnemonic %q", name)
		assert.Equal(t, op, parsed)
	}
}

func TestCyclesMatchesOpcodeTable(t *testing.T) {
	assert.Equal(t, uint8(2), Cycles(LDA_IMM))
	assert.Equal(t, uint8(7), Cycles(INC_ABX))
	assert.Equal(t, uint8(0), Cycles(0x02), "unmapped opcodes cost 0 base cycles")
}
