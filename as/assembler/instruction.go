package assembler

import "github.com/danylo-cherniavskyi/6502-emulator/cpu"

// AddressMode is the assembler's name for cpu.AddressingMode, kept as an
// alias so instruction selection and the CPU's decode table can never
// disagree about what a mode means.
type AddressMode = cpu.AddressingMode

const (
	Implicit    = cpu.Implied
	Accumulator = cpu.Accumulator
	Immediate   = cpu.Immediate
	ZeroPage    = cpu.ZeroPage
	ZeroPageX   = cpu.ZeroPageX
	ZeroPageY   = cpu.ZeroPageY
	Absolute    = cpu.Absolute
	AbsoluteX   = cpu.AbsoluteX
	AbsoluteY   = cpu.AbsoluteY
	Indirect    = cpu.Indirect
	IndirectX   = cpu.IndirectX
	IndirectY   = cpu.IndirectY
	Relative    = cpu.Relative
)

// Instruction is one (mnemonic, addressing mode) encoding.
type Instruction struct {
	Opcode      byte
	Size        int
	Cycles      int
	AddressMode AddressMode
}

// InstructionEntry collects every addressing mode a mnemonic supports.
type InstructionEntry struct {
	Modes map[AddressMode]Instruction
}

// mnemonics lists every instruction the assembler accepts. Order doesn't
// matter; it only drives the one-time build of instructionSet.
var mnemonics = []string{
	"ADC", "AND", "ASL", "BIT",
	"BPL", "BMI", "BVC", "BVS", "BCC", "BCS", "BNE", "BEQ",
	"BRK", "CMP", "CPX", "CPY", "DEC", "EOR",
	"CLC", "SEC", "CLI", "SEI", "CLV", "CLD", "SED",
	"INC", "JMP", "JSR", "LDA", "LDX", "LDY", "LSR", "NOP", "ORA",
	"PHA", "PHP", "PLA", "PLP", "ROL", "ROR", "RTI", "RTS", "SBC",
	"STA", "STX", "STY", "TAX", "TXA", "TAY", "TYA", "TSX", "TXS",
	"DEX", "DEY", "INX", "INY",
}

var allModes = []AddressMode{
	cpu.Implied, cpu.Accumulator, cpu.Immediate,
	cpu.ZeroPage, cpu.ZeroPageX, cpu.ZeroPageY,
	cpu.Absolute, cpu.AbsoluteX, cpu.AbsoluteY,
	cpu.Indirect, cpu.IndirectX, cpu.IndirectY,
	cpu.Relative,
}

// instructionSet is derived from cpu.Encode rather than a hand-copied
// literal table, so the assembler can never emit a byte the CPU's own
// decode table would read back differently.
var instructionSet = buildInstructionSet()

func buildInstructionSet() map[string]InstructionEntry {
	set := make(map[string]InstructionEntry, len(mnemonics))
	for _, name := range mnemonics {
		op, ok := cpu.ParseOp(name)
		if !ok {
			continue
		}
		modes := make(map[AddressMode]Instruction)
		for _, mode := range allModes {
			opcode, ok := cpu.Encode(op, mode)
			if !ok {
				continue
			}
			modes[mode] = Instruction{
				Opcode:      opcode,
				Size:        1 + mode.OperandLen(),
				Cycles:      int(cpu.Cycles(opcode)),
				AddressMode: mode,
			}
		}
		set[name] = InstructionEntry{Modes: modes}
	}
	return set
}
