package cpu

const (
	STACK_LIMIT = 256 // Maximum stack depth, in words.
)

// The stack lives at the top of memory and grows down. SP addresses the
// last pushed word; an empty stack has SP at the memory size, truncated to
// 16 bits (so 0 for a full 64K word memory).

// stackTop is the SP value of an empty stack.
func (cpu *Cpu) stackTop() uint16 {
	return uint16(cpu.Memory.Size())
}

// StackDepth is the number of words on the stack.
func (cpu *Cpu) StackDepth() int {
	return int(cpu.stackTop() - cpu.Registers.Get("SP"))
}

// Push a word onto the stack.
func (cpu *Cpu) Push(value uint16) (err error) {
	if cpu.StackDepth() >= STACK_LIMIT {
		err = ErrStackFull
		return
	}

	sp := cpu.Registers.Register("SP")
	addr := sp.Value - 1

	err = cpu.Memory.Set(int(addr), value)
	if err != nil {
		return
	}

	sp.Value = addr
	return
}

// Pop a word from the stack.
func (cpu *Cpu) Pop() (value uint16, err error) {
	if cpu.StackDepth() == 0 {
		err = ErrStackEmpty
		return
	}

	sp := cpu.Registers.Register("SP")
	value, err = cpu.Memory.Get(int(sp.Value))
	if err != nil {
		return
	}

	sp.Value++
	return
}
