package cpu

import (
	"fmt"
	"strings"
)

// Register names, in register file order.
var RegisterNames = []string{"A", "B", "C", "D", "X", "Y", "SP", "BP"}

// Register is a single named 16-bit CPU register.
type Register struct {
	Name  string
	Index int
	Value uint16
}

// RegisterSet is the register file of one CPU.
type RegisterSet struct {
	regs  []Register
	index map[string]*Register
}

// NewRegisterSet creates the standard register file, all registers zero.
func NewRegisterSet() (rs *RegisterSet) {
	rs = &RegisterSet{
		regs:  make([]Register, len(RegisterNames)),
		index: make(map[string]*Register, len(RegisterNames)),
	}

	for n, name := range RegisterNames {
		rs.regs[n] = Register{Name: name, Index: n}
		rs.index[name] = &rs.regs[n]
	}

	return
}

// Lookup finds a register by name, ignoring case.
func (rs *RegisterSet) Lookup(name string) (reg *Register, ok bool) {
	reg, ok = rs.index[strings.ToUpper(name)]
	return
}

// Register returns the register with the given name.
// An unknown name is a programming error and panics.
func (rs *RegisterSet) Register(name string) *Register {
	reg, ok := rs.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("cpu: unknown register %q", name))
	}
	return reg
}

// At returns the register at the register file index.
func (rs *RegisterSet) At(index int) *Register {
	return &rs.regs[index]
}

// Get the value of a named register.
func (rs *RegisterSet) Get(name string) uint16 {
	return rs.Register(name).Value
}

// Set the value of a named register.
func (rs *RegisterSet) Set(name string, value uint16) {
	rs.Register(name).Value = value
}

// SetInt sets a named register from a signed value, truncated to 16 bits.
func (rs *RegisterSet) SetInt(name string, value int) {
	rs.Register(name).Value = uint16(value)
}

// Clear zeros all registers.
func (rs *RegisterSet) Clear() {
	for n := range rs.regs {
		rs.regs[n].Value = 0
	}
}

func (rs *RegisterSet) String() string {
	var text strings.Builder
	for _, reg := range rs.regs {
		fmt.Fprintf(&text, "% 3s: %04X\n", reg.Name, reg.Value)
	}
	return text.String()
}
