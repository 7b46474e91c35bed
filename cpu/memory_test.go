package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.Equal(16, mem.Size())

	assert.NoError(mem.Set(0, 0xaaaa))
	assert.NoError(mem.Set(15, 0x1234))

	value, err := mem.Get(15)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), value)

	// Out of range accesses are rejected, never wrapped.
	err = mem.Set(16, 0xffff)
	assert.ErrorIs(err, ErrMemoryRange)
	assert.Equal(ErrAddress(16), err)

	value, err = mem.Get(16)
	assert.ErrorIs(err, ErrMemoryRange)
	assert.Equal(uint16(0), value)

	_, err = mem.Get(-1)
	assert.ErrorIs(err, ErrMemoryRange)

	value, _ = mem.Get(0)
	assert.Equal(uint16(0xaaaa), value)
}

func TestMemoryLoad(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)

	err := mem.Load(2, []uint16{1, 2, 3})
	assert.ErrorIs(err, ErrMemoryRange)

	words, err := mem.Words(0, 4)
	assert.NoError(err)
	assert.Equal([]uint16{0, 0, 1, 2}, words)

	_, err = mem.Words(2, 3)
	assert.ErrorIs(err, ErrMemoryRange)
}

func TestMemoryBytes(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(3)
	assert.NoError(mem.Load(0, []uint16{0x1234, 0xabcd, 0x0001}))

	data := mem.Bytes()
	assert.Equal([]byte{0x34, 0x12, 0xcd, 0xab, 0x01, 0x00}, data)

	other := NewMemory(3)
	other.SetBytes(data[:4])
	words, _ := other.Words(0, 3)
	assert.Equal([]uint16{0x1234, 0xabcd, 0}, words)

	mem.Clear()
	words, _ = mem.Words(0, 3)
	assert.Equal([]uint16{0, 0, 0}, words)
}
