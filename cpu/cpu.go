package cpu

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// Cpu is the simulation context for a Cubot processor.
type Cpu struct {
	Registers *RegisterSet // Register file.
	Memory    *Memory      // Main memory.
	Status    Status       // Condition flags.
	Program   *Program     // Currently loaded program.

	Ip    int // Index of the next instruction in Program.
	Ticks int // Instructions executed since the last reset.

	hardware map[uint16]Hardware // Devices by bus address.
}

// NewCpu creates a new CPU with a memory of the given number of words.
func NewCpu(memoryWords int) (cpu *Cpu) {
	cpu = &Cpu{
		Registers: NewRegisterSet(),
		Memory:    NewMemory(memoryWords),
		Program:   &Program{},
		hardware:  make(map[uint16]Hardware),
	}

	cpu.Reset()

	return
}

// Attach maps a device onto a bus address, replacing any device already there.
func (cpu *Cpu) Attach(address uint16, hw Hardware) {
	cpu.hardware[address] = hw
}

// Detach unmaps the device at a bus address.
func (cpu *Cpu) Detach(address uint16) {
	delete(cpu.hardware, address)
}

// Device returns the device at a bus address.
func (cpu *Cpu) Device(address uint16) (hw Hardware, ok bool) {
	hw, ok = cpu.hardware[address]
	return
}

// Addresses returns the occupied bus addresses in ascending order.
func (cpu *Cpu) Addresses() []uint16 {
	return slices.Sorted(maps.Keys(cpu.hardware))
}

// Reset the CPU state for a new execution slice.
// - Clears the registers and flags.
// - Sets SP and BP to the empty stack.
// - Restarts at the first instruction.
// Memory is kept.
func (cpu *Cpu) Reset() {
	cpu.Registers.Clear()
	cpu.Registers.Set("SP", cpu.stackTop())
	cpu.Registers.Set("BP", cpu.stackTop())
	cpu.Status.Clear()
	cpu.Ip = 0
	cpu.Ticks = 0
}

// Interrupt raises a hardware interrupt on a bus address.
// An unmapped address sets the Error flag and is otherwise ignored.
func (cpu *Cpu) Interrupt(address uint16) {
	hw, ok := cpu.hardware[address]
	if !ok {
		logrus.Debugf("cpu: interrupt on unmapped address %#x", address)
		cpu.Status.Error = true
		return
	}

	hw.HandleInterrupt(cpu, cpu.Status)
}

// Run executes instructions until BRK, the end of the program, or limit
// instructions have been executed.
func (cpu *Cpu) Run(limit int) (executed int, err error) {
	for executed < limit && !cpu.Status.Break {
		err = cpu.Step()
		if errors.Is(err, ErrIpEmpty) {
			err = nil
			return
		}
		if err != nil {
			return
		}
		executed++
	}

	return
}

// Step executes the next instruction.
func (cpu *Cpu) Step() (err error) {
	in, ok := cpu.Program.At(cpu.Ip)
	if !ok {
		err = ErrIpEmpty
		return
	}

	err = cpu.Execute(in)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(in Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(in), err)
		}
	}()

	next_ip := cpu.Ip + 1

	switch in.Op {
	case OP_NOP:
	case OP_MOV:
		var val uint16
		val, err = cpu.read(in.Src)
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		err = cpu.write(in.Dst, val)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
	case OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR, OP_CMP:
		var a, b uint16
		a, err = cpu.read(in.Dst)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		b, err = cpu.read(in.Src)
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		result := cpu.doAlu(in.Op, a, b)
		if in.Op != OP_CMP {
			err = cpu.write(in.Dst, result)
			if err != nil {
				err = errors.Join(ErrOpcodeArg1, err)
				return
			}
		}
	case OP_JMP, OP_JZ, OP_JNZ:
		var target uint16
		target, err = cpu.read(in.Dst)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		switch {
		case in.Op == OP_JMP,
			in.Op == OP_JZ && cpu.Status.Zero,
			in.Op == OP_JNZ && !cpu.Status.Zero:
			next_ip = int(target)
		}
	case OP_PUSH:
		var val uint16
		val, err = cpu.read(in.Dst)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		err = cpu.Push(val)
		if err != nil {
			return
		}
	case OP_POP:
		var val uint16
		val, err = cpu.Pop()
		if err != nil {
			return
		}
		err = cpu.write(in.Dst, val)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
	case OP_HWI:
		var address uint16
		address, err = cpu.read(in.Dst)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		cpu.Interrupt(address)
	case OP_BRK:
		cpu.Status.Break = true
	default:
		err = ErrOpcodeOp
		return
	}

	cpu.Ip = next_ip

	return
}

// read gets the value of an operand.
func (cpu *Cpu) read(src Operand) (value uint16, err error) {
	switch src.Kind {
	case OPERAND_REG:
		value = cpu.Registers.At(src.Reg).Value
	case OPERAND_IMM:
		value = src.Value
	case OPERAND_MEM_IMM:
		value, err = cpu.Memory.Get(int(src.Value))
	case OPERAND_MEM_REG:
		value, err = cpu.Memory.Get(int(cpu.Registers.At(src.Reg).Value))
	default:
		err = ErrOpcodeValueMissing
	}
	return
}

// write sets the value of an operand.
func (cpu *Cpu) write(dst Operand, value uint16) (err error) {
	switch dst.Kind {
	case OPERAND_REG:
		cpu.Registers.At(dst.Reg).Value = value
	case OPERAND_MEM_IMM:
		err = cpu.Memory.Set(int(dst.Value), value)
	case OPERAND_MEM_REG:
		err = cpu.Memory.Set(int(cpu.Registers.At(dst.Reg).Value), value)
	default:
		err = ErrTargetInvalid
	}
	return
}

// doAlu performs the requested ALU action, updates the flags, and returns
// the output value.
func (cpu *Cpu) doAlu(op Op, a uint16, b uint16) (output uint16) {
	st := &cpu.Status

	switch op {
	case OP_ADD:
		sum := uint32(a) + uint32(b)
		output = uint16(sum)
		st.Carry = sum > 0xffff
		st.Overflow = (a^output)&(b^output)&0x8000 != 0
	case OP_SUB, OP_CMP:
		output = a - b
		st.Carry = b > a
		st.Overflow = (a^b)&(a^output)&0x8000 != 0
	case OP_AND:
		output = a & b
		st.Carry, st.Overflow = false, false
	case OP_OR:
		output = a | b
		st.Carry, st.Overflow = false, false
	case OP_XOR:
		output = a ^ b
		st.Carry, st.Overflow = false, false
	}

	st.Zero = output == 0
	st.Sign = output&0x8000 != 0

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return fmt.Sprintf("   ip: %04x\n flags: %v\n%v", cpu.Ip, cpu.Status, cpu.Registers)
}
