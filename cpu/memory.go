package cpu

import (
	"encoding/binary"
)

// Memory is a flat array of 16-bit words.
//
// Accesses outside of the array are rejected: reads return zero and
// ErrMemoryRange, writes are dropped and return ErrMemoryRange. Addresses
// never wrap.
type Memory struct {
	words []uint16
}

// NewMemory creates a zeroed memory of the given number of words.
func NewMemory(size int) *Memory {
	return &Memory{words: make([]uint16, size)}
}

// Size in words.
func (mem *Memory) Size() int {
	return len(mem.words)
}

// Get reads a word.
func (mem *Memory) Get(addr int) (value uint16, err error) {
	if addr < 0 || addr >= len(mem.words) {
		err = ErrAddress(addr)
		return
	}

	value = mem.words[addr]
	return
}

// Set writes a word.
func (mem *Memory) Set(addr int, value uint16) (err error) {
	if addr < 0 || addr >= len(mem.words) {
		err = ErrAddress(addr)
		return
	}

	mem.words[addr] = value
	return
}

// Load writes consecutive words starting at addr. Words that would land
// outside of memory are dropped, and ErrMemoryRange is returned.
func (mem *Memory) Load(addr int, words []uint16) (err error) {
	for n, word := range words {
		err = mem.Set(addr+n, word)
		if err != nil {
			return
		}
	}
	return
}

// Words returns a copy of count words starting at addr.
func (mem *Memory) Words(addr int, count int) (words []uint16, err error) {
	words = make([]uint16, 0, count)
	for n := range count {
		var word uint16
		word, err = mem.Get(addr + n)
		if err != nil {
			return
		}
		words = append(words, word)
	}
	return
}

// Clear zeros the memory.
func (mem *Memory) Clear() {
	clear(mem.words)
}

// Bytes returns the memory contents as little-endian bytes.
func (mem *Memory) Bytes() (data []byte) {
	data = make([]byte, len(mem.words)*2)
	for n, word := range mem.words {
		binary.LittleEndian.PutUint16(data[n*2:], word)
	}
	return
}

// SetBytes replaces the memory contents from little-endian bytes.
// Data beyond the memory size is ignored; missing data is zero.
func (mem *Memory) SetBytes(data []byte) {
	mem.Clear()
	for n := range mem.words {
		if n*2+1 >= len(data) {
			break
		}
		mem.words[n] = binary.LittleEndian.Uint16(data[n*2:])
	}
}
