package intcode

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Memory is the flat, fixed length store of a program.
type Memory struct {
	Data []uint64
}

// NewMemory creates a memory holding a copy of values.
func NewMemory(values ...uint64) *Memory {
	return &Memory{Data: slices.Clone(values)}
}

// Len returns the number of cells in memory.
func (mem *Memory) Len() uint64 {
	return uint64(len(mem.Data))
}

// Read the value at an address.
func (mem *Memory) Read(addr uint64) (value uint64, err error) {
	if addr >= mem.Len() {
		err = &ErrOutOfBounds{Start: addr, End: addr}
		return
	}

	value = mem.Data[addr]
	return
}

// Write a value to an address. Memory never grows.
func (mem *Memory) Write(addr uint64, value uint64) (err error) {
	if addr >= mem.Len() {
		err = &ErrOutOfBounds{Start: addr, End: addr}
		return
	}

	mem.Data[addr] = value
	return
}

// ReadRange reads the inclusive range [start, end].
// The returned slice is a copy.
func (mem *Memory) ReadRange(start, end uint64) (values []uint64, err error) {
	if start > end || end >= mem.Len() {
		err = &ErrOutOfBounds{Start: start, End: end}
		return
	}

	values = slices.Clone(mem.Data[start : end+1])
	return
}

// Clone returns an independent copy of memory.
func (mem *Memory) Clone() *Memory {
	return NewMemory(mem.Data...)
}

// Values returns a snapshot of the memory contents.
func (mem *Memory) Values() []uint64 {
	return slices.Clone(mem.Data)
}

// All iterates over every address and value.
func (mem *Memory) All() iter.Seq2[uint64, uint64] {
	return func(yield func(addr uint64, value uint64) bool) {
		for n, value := range mem.Data {
			if !yield(uint64(n), value) {
				return
			}
		}
	}
}

// String returns memory in the program text format.
func (mem *Memory) String() string {
	words := make([]string, len(mem.Data))
	for n, value := range mem.Data {
		words[n] = strconv.FormatUint(value, 10)
	}

	return strings.Join(words, ",")
}
