package cpu

import "fmt"

// InvalidOpcodeError reports that Step encountered a byte with no mapping
// in the decode table. The CPU remains usable: PC has already advanced past
// the offending byte and cycles has been charged a NOP-equivalent cost.
type InvalidOpcodeError struct {
	Opcode uint8
	PC     uint16 // address the opcode was fetched from
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode $%02X at $%04X", e.Opcode, e.PC)
}
