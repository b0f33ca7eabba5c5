// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package rawmem provides RawMemory, the owner of a single contiguous block of
// element slots. The block is reserved storage only: RawMemory neither
// constructs nor destroys the values placed in its slots, which is left to the
// structure built on top of it.
package rawmem

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/Fantom-foundation/Carmen/vector/common"
)

// ErrAllocation is returned when a block of the requested capacity can not be obtained.
const ErrAllocation = common.ConstError("allocation failed")

var _ common.Releaser = (*RawMemory[int])(nil)

// maxAllocBytes bounds the size of a single block, mirroring the address
// space limit of the Go heap on 64-bit platforms.
const maxAllocBytes = uint64(min(math.MaxInt, 1<<47))

// RawMemory owns a block of Capacity() slots of type T. Slots are addressable
// but are not presumed to hold live values.
//
// RawMemory must not be copied after first use: ownership of a block is
// singular. Use Take, MoveFrom or Swap to transfer it.
type RawMemory[T any] struct {
	_      noCopy
	buffer []T // len(buffer) is the capacity, nil if the capacity is zero
}

// Allocate reserves a block of the given capacity. A capacity of zero
// reserves nothing. Requests for a negative capacity or for more than
// MaxCapacity slots fail with an error wrapping ErrAllocation. Running out of
// heap below that limit is fatal, as for any other Go allocation.
func Allocate[T any](capacity int) (RawMemory[T], error) {
	buffer, err := allocate[T](capacity)
	if err != nil {
		return RawMemory[T]{}, err
	}
	return RawMemory[T]{buffer: buffer}, nil
}

// MaxCapacity is the largest number of slots of T a single block may hold.
func MaxCapacity[T any]() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return int(maxAllocBytes / size)
}

func allocate[T any](capacity int) ([]T, error) {
	if capacity < 0 || capacity > MaxCapacity[T]() {
		var zero T
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrAllocation, capacity, unsafe.Sizeof(zero))
	}
	if capacity == 0 {
		return nil, nil
	}
	return make([]T, capacity), nil
}

// Capacity is the number of slots in the owned block.
func (m *RawMemory[T]) Capacity() int {
	return len(m.buffer)
}

// Slot returns the address of slot i. It panics if i is not in [0, Capacity()).
func (m *RawMemory[T]) Slot(i int) *T {
	if i < 0 || i >= len(m.buffer) {
		panic(fmt.Sprintf("slot %d out of range, capacity %d", i, len(m.buffer)))
	}
	return &m.buffer[i]
}

// Range returns the slots [from, to) as a slice aliasing the block.
// It panics unless 0 <= from <= to <= Capacity().
func (m *RawMemory[T]) Range(from, to int) []T {
	if from < 0 || from > to || to > len(m.buffer) {
		panic(fmt.Sprintf("slot range [%d, %d) out of range, capacity %d", from, to, len(m.buffer)))
	}
	return m.buffer[from:to:to]
}

// Swap exchanges the blocks owned by m and other.
func (m *RawMemory[T]) Swap(other *RawMemory[T]) {
	m.buffer, other.buffer = other.buffer, m.buffer
}

// Take transfers the block owned by m to the result, leaving m empty.
func (m *RawMemory[T]) Take() RawMemory[T] {
	buffer := m.buffer
	m.buffer = nil
	return RawMemory[T]{buffer: buffer}
}

// MoveFrom releases the block owned by m and takes over the block of src,
// leaving src empty. Moving from itself is a no-op.
func (m *RawMemory[T]) MoveFrom(src *RawMemory[T]) {
	if m == src {
		return
	}
	m.Release()
	m.buffer = src.buffer
	src.buffer = nil
}

// Release returns the owned block, leaving m empty. Values still placed in
// the slots are dropped without being destroyed.
func (m *RawMemory[T]) Release() {
	m.buffer = nil
}

// GetMemoryFootprint reports the size of the handle and the owned block.
func (m *RawMemory[T]) GetMemoryFootprint() *common.MemoryFootprint {
	var zero T
	mf := common.NewMemoryFootprint(unsafe.Sizeof(RawMemory[T]{}))
	mf.AddChild("block", common.NewMemoryFootprint(uintptr(len(m.buffer))*unsafe.Sizeof(zero)))
	return mf
}

// noCopy may be embedded into structs which must not be copied after the
// first use; it is recognized by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
