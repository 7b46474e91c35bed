package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0x10000)
	assert.Equal(0, cpu.StackDepth())
	assert.Equal(uint16(0), cpu.Registers.Get("SP"))

	assert.NoError(cpu.Push(0x1234))
	assert.Equal(1, cpu.StackDepth())
	assert.Equal(uint16(0xffff), cpu.Registers.Get("SP"))

	value, _ := cpu.Memory.Get(0xffff)
	assert.Equal(uint16(0x1234), value)
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)
	assert.NoError(cpu.Push(0x1234))
	assert.NoError(cpu.Push(0xabcd))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0xabcd), val)

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x1234), val)
	assert.Equal(uint16(64), cpu.Registers.Get("SP"))

	_, err = cpu.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(1024)
	for n := range STACK_LIMIT {
		assert.NoError(cpu.Push(uint16(n)))
	}
	assert.ErrorIs(cpu.Push(0), ErrStackFull)
	assert.Equal(STACK_LIMIT, cpu.StackDepth())
}
