package main

import (
	"bufio"
	"flag"
	"fmt"
	"github.com/danylo-cherniavskyi/6502-emulator/cpu"
	"github.com/danylo-cherniavskyi/6502-emulator/dis/disassembler"
	"os"
	"strconv"
	"strings"
)

func LoadAndSetupBinary(c *cpu.CPU, mem *Memory, filename string, startAddr int) (int, error) {
	// Read the binary file
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read binary file: %v", err)
	}

	// Check if the binary will fit in memory
	if int(startAddr)+len(data) > len(mem) {
		return 0, fmt.Errorf("binary file too large for available memory")
	}

	// Copy binary data into CPU memory starting at the requested address
	for i, b := range data {
		mem[uint16(startAddr)+uint16(i)] = b
	}

	// Set up reset vector at 0xFFFC-0xFFFD to point to the load address
	mem[0xFFFC] = uint8(startAddr)
	mem[0xFFFD] = uint8(startAddr >> 8)

	// Set the Program Counter to the reset vector location
	c.PC = uint16(startAddr)

	return len(data), nil
}

type Memory [65536]uint8

func (c *Memory) ReadByte(address uint16) uint8 {
	return c[address]
}
func (c *Memory) WriteByte(address uint16, value uint8) {
	c[address] = value
}

// mon is the plain line-oriented monitor: no TUI, just a stdin command loop
// over a running CPU. It exists alongside the bubbletea-based monitor for
// scripted/non-interactive sessions (piped commands, CI smoke tests).
func main() {
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

	memory := &Memory{}
	c := cpu.NewCPU(memory)
	if _, err := LoadAndSetupBinary(c, memory, *inputFile, int(startAddrInt)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	c.PC = uint16(startAddrInt)

	fmt.Println("mon: type 's' to step, 'r' to show registers, 'q' to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "s", "":
			loc := disassembler.DisassembleMemory(memory, int(c.PC), 1)
			if err := c.Step(); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(loc)
		case "r":
			fmt.Printf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%02X\n",
				c.A, c.X, c.Y, c.SP, c.PC, c.P)
		case "q":
			return
		default:
			fmt.Println("unknown command")
		}
	}
}
