package cpu

import (
	"fmt"
	"strings"
)

// Program is an assembled instruction listing.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int // Map of labels to instruction indexes.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

// At returns the instruction at ip.
func (prog *Program) At(ip int) (in Instruction, ok bool) {
	if ip < 0 || ip >= prog.Len() {
		return
	}
	return prog.Instructions[ip], true
}

// String returns the program listing.
func (prog *Program) String() string {
	var text strings.Builder
	for ip, in := range prog.Instructions {
		fmt.Fprintf(&text, "%04x  %4d  %v\n", ip, in.LineNo, in)
	}
	return text.String()
}
