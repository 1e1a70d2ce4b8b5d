package assembler

import "fmt"

// Symbol is a label or .org-relative address bound during pass one.
type Symbol struct {
	Name  string
	Value uint16
}

// Assembler runs a two-pass assemble: pass one walks the source to
// learn every label's address, pass two emits bytes now that forward
// references can be resolved.
type Assembler struct {
	symbols     map[string]*Symbol
	currentPass int
	pc          uint16
	output      []byte
}

func NewAssembler() *Assembler {
	return &Assembler{symbols: make(map[string]*Symbol)}
}

// Assemble runs both passes over source and leaves the result in
// GetOutput. An error aborts immediately; output from a failed call
// should be discarded.
func (a *Assembler) Assemble(source string) error {
	if err := a.collectSymbols(source); err != nil {
		return err
	}
	return a.emit(source)
}

// collectSymbols is pass one: record each label's PC and advance the PC
// past every instruction/directive without emitting any bytes.
func (a *Assembler) collectSymbols(source string) error {
	a.currentPass = 1
	a.pc = 0
	a.symbols = make(map[string]*Symbol)

	parser := NewParser(NewScanner(source), a)
	for {
		line, err := parser.ParseLine()
		if err != nil {
			return err
		}
		if line == nil {
			return nil
		}

		if line.Label != "" {
			a.symbols[line.Label] = &Symbol{Name: line.Label, Value: a.pc}
		}
		if line.Directive != "" {
			if handler, ok := directiveHandlers[line.Directive]; ok {
				if err := handler(a, line.Operand); err != nil {
					return err
				}
			}
		}
		if line.Instruction != "" {
			if inst, ok := instructionSet[line.Instruction]; ok {
				if mode, ok := inst.Modes[line.AddressMode]; ok {
					a.pc += uint16(mode.Size)
				}
			}
		}
	}
}

// emit is pass two: walk the source again, now with a complete symbol
// table, and produce the final byte stream.
func (a *Assembler) emit(source string) error {
	a.currentPass = 2
	a.pc = 0
	a.output = a.output[:0]

	parser := NewParser(NewScanner(source), a)
	for {
		line, err := parser.ParseLine()
		if err != nil {
			return err
		}
		if line == nil {
			return nil
		}
		if err := a.generateCode(line); err != nil {
			return err
		}
	}
}

func (a *Assembler) generateCode(line *Line) error {
	if line.Directive != "" {
		if handler, ok := directiveHandlers[line.Directive]; ok {
			return handler(a, line.Operand)
		}
		return nil
	}

	if line.Instruction == "" {
		return nil
	}

	inst, ok := instructionSet[line.Instruction]
	if !ok {
		return fmt.Errorf("unknown instruction: %s", line.Instruction)
	}

	if line.SymbolName != "" {
		a.resolveSymbolReference(line, inst)
	}

	mode, ok := inst.Modes[line.AddressMode]
	if !ok {
		return fmt.Errorf("invalid addressing mode for instruction %s", line.Instruction)
	}

	a.output = append(a.output, mode.Opcode)

	if mode.AddressMode == Relative {
		offset, err := a.branchOffset(line.Value)
		if err != nil {
			return err
		}
		a.output = append(a.output, offset)
	} else {
		switch mode.Size {
		case 2:
			a.output = append(a.output, uint8(line.Value))
		case 3:
			a.output = append(a.output, uint8(line.Value), uint8(line.Value>>8))
		}
	}

	a.pc += uint16(mode.Size)
	return nil
}

// resolveSymbolReference substitutes a label's final address now that
// pass two has the whole symbol table, and narrows absolute addressing
// down to zero page when the resolved value turns out to fit in it.
func (a *Assembler) resolveSymbolReference(line *Line, inst InstructionEntry) {
	symbol, ok := a.symbols[line.SymbolName]
	if !ok {
		return
	}
	line.Value = symbol.Value
	if line.Value >= 0x100 {
		return
	}

	var zp AddressMode
	switch line.AddressMode {
	case Absolute:
		zp = ZeroPage
	case AbsoluteX:
		zp = ZeroPageX
	case AbsoluteY:
		zp = ZeroPageY
	default:
		return
	}
	if _, ok := inst.Modes[zp]; ok {
		line.AddressMode = zp
	}
}

// branchOffset computes a relative branch's signed displacement from
// the instruction following the branch, and rejects out-of-range targets.
func (a *Assembler) branchOffset(target uint16) (uint8, error) {
	nextPC := a.pc + 2
	offset := int16(target) - int16(nextPC)
	if offset < -128 || offset > 127 {
		return 0, fmt.Errorf("branch target out of range (%d bytes)", offset)
	}
	return uint8(offset), nil
}

func (a *Assembler) GetOutput() []byte {
	return a.output
}
