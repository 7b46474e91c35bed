package cpu

import (
	"fmt"
	"strings"
)

// Op is an instruction operation.
type Op int

const (
	OP_NOP  = Op(0)
	OP_MOV  = Op(1)
	OP_ADD  = Op(2)
	OP_SUB  = Op(3)
	OP_AND  = Op(4)
	OP_OR   = Op(5)
	OP_XOR  = Op(6)
	OP_CMP  = Op(7)
	OP_JMP  = Op(8)
	OP_JZ   = Op(9)
	OP_JNZ  = Op(10)
	OP_PUSH = Op(11)
	OP_POP  = Op(12)
	OP_HWI  = Op(13)
	OP_BRK  = Op(14)
)

// opInfo describes the operand shape of an operation.
type opInfo struct {
	Name     string
	Args     int  // Number of operands.
	Writable bool // First operand is written.
}

var opTable = map[Op]opInfo{
	OP_NOP:  {"NOP", 0, false},
	OP_MOV:  {"MOV", 2, true},
	OP_ADD:  {"ADD", 2, true},
	OP_SUB:  {"SUB", 2, true},
	OP_AND:  {"AND", 2, true},
	OP_OR:   {"OR", 2, true},
	OP_XOR:  {"XOR", 2, true},
	OP_CMP:  {"CMP", 2, false},
	OP_JMP:  {"JMP", 1, false},
	OP_JZ:   {"JZ", 1, false},
	OP_JNZ:  {"JNZ", 1, false},
	OP_PUSH: {"PUSH", 1, false},
	OP_POP:  {"POP", 1, true},
	OP_HWI:  {"HWI", 1, false},
	OP_BRK:  {"BRK", 0, false},
}

var opByName = func() map[string]Op {
	table := make(map[string]Op, len(opTable))
	for op, info := range opTable {
		table[info.Name] = op
	}
	return table
}()

func (op Op) String() string {
	info, ok := opTable[op]
	if !ok {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return info.Name
}

// OperandKind is the addressing mode of an operand.
type OperandKind int

const (
	OPERAND_NONE    = OperandKind(0) // Unused operand.
	OPERAND_REG     = OperandKind(1) // Register.
	OPERAND_IMM     = OperandKind(2) // Immediate value.
	OPERAND_MEM_IMM = OperandKind(3) // Memory at an immediate address.
	OPERAND_MEM_REG = OperandKind(4) // Memory at the address in a register.
)

// Operand is a decoded instruction operand.
type Operand struct {
	Kind  OperandKind
	Reg   int    // Register index, for OPERAND_REG and OPERAND_MEM_REG.
	Value uint16 // Value, for OPERAND_IMM and OPERAND_MEM_IMM.
}

// Writable returns true if the operand can be a destination.
func (o Operand) Writable() bool {
	return o.Kind == OPERAND_REG || o.Kind == OPERAND_MEM_IMM || o.Kind == OPERAND_MEM_REG
}

func (o Operand) String() string {
	switch o.Kind {
	case OPERAND_REG:
		return RegisterNames[o.Reg]
	case OPERAND_IMM:
		return fmt.Sprintf("0x%04x", o.Value)
	case OPERAND_MEM_IMM:
		return fmt.Sprintf("[0x%04x]", o.Value)
	case OPERAND_MEM_REG:
		return "[" + RegisterNames[o.Reg] + "]"
	}
	return ""
}

// Reg returns a register operand.
func Reg(name string) Operand {
	for n, reg := range RegisterNames {
		if reg == strings.ToUpper(name) {
			return Operand{Kind: OPERAND_REG, Reg: n}
		}
	}
	panic(fmt.Sprintf("cpu: unknown register %q", name))
}

// Imm returns an immediate operand.
func Imm(value int) Operand {
	return Operand{Kind: OPERAND_IMM, Value: uint16(value)}
}

// Instruction is a single decoded instruction.
type Instruction struct {
	LineNo int
	Op     Op
	Dst    Operand
	Src    Operand
}

func (in Instruction) String() string {
	text := in.Op.String()
	if in.Dst.Kind != OPERAND_NONE {
		text += " " + in.Dst.String()
	}
	if in.Src.Kind != OPERAND_NONE {
		text += ", " + in.Src.String()
	}
	return text
}
