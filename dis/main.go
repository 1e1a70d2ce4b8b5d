package main

import (
	"flag"
	"fmt"
	"github.com/danylo-cherniavskyi/6502-emulator/cpu"
	"github.com/danylo-cherniavskyi/6502-emulator/dis/disassembler"
	"os"
	"strconv"
	"strings"
)

func main() {
	// Command line flags
	inputFile := flag.String("i", "", "Input binary file")
	startAddr := flag.String("a", "", "Start address")
	flag.Parse()

	addrStr := *startAddr
	if strings.HasPrefix(addrStr, "$") {
		addrStr = "0x" + addrStr[1:]
	}
	startAddrInt, err := strconv.ParseUint(addrStr, 0, 16)
	if err != nil {
		fmt.Printf("Error parsing start address: %v\n", err)
		return
	}

	// Create and initialize CPU
	mem := &cpu.FlatMemory{}
	c := cpu.NewCPU(mem)
	n, err := LoadAndSetupBinary(c, mem, *inputFile, int(startAddrInt))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(disassembler.DisassembleMemory(mem, int(startAddrInt), n))
}

func LoadAndSetupBinary(c *cpu.CPU, mem *cpu.FlatMemory, filename string, startAddr int) (int, error) {
	// Read the binary file
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read binary file: %v", err)
	}

	// Check if the binary will fit in memory
	if startAddr+len(data) > 0x10000 {
		return 0, fmt.Errorf("binary file too large for available memory")
	}

	// Copy binary data into memory starting at the requested address
	mem.Load(uint16(startAddr), data)

	// Set up reset vector at 0xFFFC-0xFFFD to point to 0xF000
	mem.WriteByte(0xFFFC, 0x00) // Low byte
	mem.WriteByte(0xFFFD, 0xF0) // High byte

	// Set up IRQ vector at 0xFFFE-0xFFFF to point to 0xF5A4
	mem.WriteByte(0xFFFE, 0xA4) // Low byte
	mem.WriteByte(0xFFFF, 0xF5) // High byte

	// Set the Program Counter to the load address (not the reset vector)
	c.PC = uint16(startAddr)

	return len(data), nil
}
