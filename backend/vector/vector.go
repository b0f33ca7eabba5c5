// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package vector provides Vector, a contiguous growable sequence with explicit
// control over element lifetime.
//
// A Vector owns exactly one rawmem.RawMemory block. Slots [0, Size()) hold
// live elements in order; slots [Size(), Capacity()) are raw and hold the zero
// value of the element type. Elements are brought to life and destroyed only
// through the Traits the Vector was created with.
//
// Operations relocating live elements into a new block (Reserve, growing
// PushBack/EmplaceBack and Insert/Emplace) either succeed or leave the vector
// unchanged whenever elements are relocated by copying. Elements are moved
// instead of copied if their traits guarantee that moves never fail, or if
// they can not be copied at all.
//
// Insert and Emplace without growth as well as Erase shift elements through
// assignments. If an assignment fails, the vector stays structurally valid but
// its elements may be partially shifted.
//
// Indexes and positions out of range are caller errors and cause a panic.
// A Vector is not safe for concurrent use.
package vector

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/Fantom-foundation/Carmen/vector/backend/rawmem"
	"github.com/Fantom-foundation/Carmen/vector/common"
)

// ErrNotCopyable is returned by copying operations on vectors of elements
// that can only be moved.
const ErrNotCopyable = common.ConstError("elements are not copyable")

var _ common.Releaser = (*Vector[int])(nil)
var _ common.MemoryFootprintProvider = (*Vector[int])(nil)

// Vector is a contiguous growable sequence of elements of type T. Vectors
// are created by New, WithSize, Clone or Take. A Vector must not be copied;
// use Clone, Take or Swap instead.
type Vector[T any] struct {
	data       rawmem.RawMemory[T]
	size       int
	traits     Traits[T]
	generation uint64
	stats      Stats
}

// Stats summarizes the relocation work performed by a vector.
type Stats struct {
	Reallocations int // number of times live elements were moved to a new block
	Relocations   int // number of elements moved or copied into new blocks
}

// New creates an empty vector without any reserved capacity.
// If traits is nil, Plain traits are used.
func New[T any](traits Traits[T]) *Vector[T] {
	if traits == nil {
		traits = Plain[T]()
	}
	return &Vector[T]{traits: traits}
}

// WithSize creates a vector of n value-constructed elements. If the
// construction of any element fails, the elements constructed so far are
// destroyed and the error is returned.
func WithSize[T any](traits Traits[T], n int) (*Vector[T], error) {
	res := New(traits)
	data, err := rawmem.Allocate[T](n)
	if err != nil {
		return nil, err
	}
	if err := res.constructN(data.Range(0, n)); err != nil {
		data.Release()
		return nil, err
	}
	res.data.Swap(&data)
	res.size = n
	return res, nil
}

// Clone creates a deep copy of the vector, reserving exactly Size() slots.
// If the copy of any element fails, the elements copied so far are destroyed
// and the error is returned.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.traits.Copyable() {
		return nil, ErrNotCopyable
	}
	res := New(v.traits)
	data, err := rawmem.Allocate[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := res.copyN(data.Range(0, v.size), v.Data()); err != nil {
		data.Release()
		return nil, err
	}
	res.data.Swap(&data)
	res.size = v.size
	return res, nil
}

// Take transfers the content of v to a new vector in constant time.
// v is left empty, without reserved capacity, but remains usable.
func (v *Vector[T]) Take() *Vector[T] {
	res := New(v.traits)
	res.data.Swap(&v.data)
	res.size = v.size
	v.size = 0
	v.generation++
	return res
}

// Size is the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity is the number of reserved slots.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Stats returns the relocation statistics accumulated so far.
func (v *Vector[T]) Stats() Stats {
	return v.stats
}

// At returns the address of the element at index i. The address remains
// valid until the next reallocation. It panics if i is not in [0, Size()).
func (v *Vector[T]) At(i int) *T {
	v.checkIndex(i)
	return v.data.Slot(i)
}

// Get returns the element at index i. It panics if i is not in [0, Size()).
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set copy-assigns value to the element at index i.
// It panics if i is not in [0, Size()).
func (v *Vector[T]) Set(i int, value T) error {
	return v.traits.CopyAssign(v.At(i), &value)
}

// Front returns the address of the first element. It panics if the vector is empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns the address of the last element. It panics if the vector is empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Data returns the live elements as a slice aliasing the vector's storage.
// The slice is invalidated by any operation changing the size or capacity.
func (v *Vector[T]) Data() []T {
	return v.data.Range(0, v.size)
}

// Reserve makes sure that at least newCapacity slots are reserved. If the
// vector has to be reallocated and relocating the elements fails, the vector
// is left unchanged and the error is returned.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if newCapacity <= v.data.Capacity() {
		return nil
	}
	newData, err := rawmem.Allocate[T](newCapacity)
	if err != nil {
		return fmt.Errorf("failed to reserve %d elements: %w", newCapacity, err)
	}
	if err := v.relocate(newData.Range(0, v.size), v.Data()); err != nil {
		return err
	}
	v.replaceData(&newData)
	return nil
}

// Resize changes the number of elements to newSize. Excess elements are
// destroyed, missing elements are value-constructed at the end. If a
// construction fails, the vector keeps its previous size and elements.
func (v *Vector[T]) Resize(newSize int) error {
	if newSize < 0 {
		panic(fmt.Sprintf("negative size %d", newSize))
	}
	if newSize < v.size {
		v.destroy(v.data.Range(newSize, v.size))
		v.size = newSize
		return nil
	}
	if err := v.Reserve(newSize); err != nil {
		return err
	}
	if err := v.constructN(v.data.Range(v.size, newSize)); err != nil {
		return err
	}
	v.size = newSize
	return nil
}

// Clear destroys all elements, keeping the reserved capacity.
func (v *Vector[T]) Clear() {
	v.destroy(v.Data())
	v.size = 0
	v.generation++
}

// Release destroys all elements and returns the reserved block. The vector
// remains usable as an empty vector.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// PushBack appends a copy of value. Elements that are not copyable are moved
// into the vector instead.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.EmplaceBack(v.initFrom(&value))
	return err
}

// EmplaceBack appends an element constructed in place by init. If the vector
// is full, its capacity is doubled. The new element is constructed before any
// existing element is relocated; if either step fails, the vector is left
// unchanged. The address of the new element is returned.
func (v *Vector[T]) EmplaceBack(init func(slot *T) error) (*T, error) {
	if v.size < v.data.Capacity() {
		if err := v.construct(v.data.Slot(v.size), init); err != nil {
			return nil, err
		}
		v.size++
		return v.data.Slot(v.size - 1), nil
	}

	newData, err := rawmem.Allocate[T](v.grownCapacity())
	if err != nil {
		return nil, fmt.Errorf("failed to grow beyond %d elements: %w", v.size, err)
	}
	slot := newData.Slot(v.size)
	if err := v.construct(slot, init); err != nil {
		return nil, err
	}
	if err := v.relocate(newData.Range(0, v.size), v.Data()); err != nil {
		v.destroyAt(slot)
		return nil, err
	}
	v.replaceData(&newData)
	v.size++
	return slot, nil
}

// PopBack destroys the last element. It panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("pop from empty vector")
	}
	v.destroyAt(v.data.Slot(v.size - 1))
	v.size--
}

// Insert places a copy of value before position pos and returns the index of
// the inserted element. Elements that are not copyable are moved instead.
// See Emplace for the failure guarantees.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	return v.Emplace(pos, v.initFrom(&value))
}

// Emplace constructs a new element by init before position pos, shifting all
// elements at or after pos by one slot. It returns pos. It panics if pos is
// not in [0, Size()].
//
// If the vector has to grow, the new element is constructed in the new block
// first and existing elements are relocated around it; on failure the vector
// is left unchanged. Otherwise the element is constructed into a temporary
// and shifted in through assignments; a failing assignment leaves the vector
// valid but possibly with partially shifted elements.
func (v *Vector[T]) Emplace(pos int, init func(slot *T) error) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("position %d out of range [0, %d]", pos, v.size))
	}

	if v.size == v.data.Capacity() {
		return pos, v.emplaceWithGrowth(pos, init)
	}

	if pos == v.size {
		if err := v.construct(v.data.Slot(v.size), init); err != nil {
			return pos, err
		}
		v.size++
		return pos, nil
	}

	return pos, v.emplaceWithShift(pos, init)
}

func (v *Vector[T]) emplaceWithGrowth(pos int, init func(slot *T) error) error {
	newData, err := rawmem.Allocate[T](v.grownCapacity())
	if err != nil {
		return fmt.Errorf("failed to grow beyond %d elements: %w", v.size, err)
	}
	slot := newData.Slot(pos)
	if err := v.construct(slot, init); err != nil {
		return err
	}
	if err := v.relocate(newData.Range(0, pos), v.data.Range(0, pos)); err != nil {
		v.destroyAt(slot)
		return err
	}
	if err := v.relocate(newData.Range(pos+1, v.size+1), v.data.Range(pos, v.size)); err != nil {
		v.destroy(newData.Range(0, pos+1))
		return err
	}
	v.replaceData(&newData)
	v.size++
	return nil
}

func (v *Vector[T]) emplaceWithShift(pos int, init func(slot *T) error) error {
	var temporary T
	if err := v.construct(&temporary, init); err != nil {
		return err
	}
	defer v.destroyAt(&temporary)

	last := v.data.Slot(v.size)
	if err := v.relocateOne(last, v.data.Slot(v.size-1)); err != nil {
		var zero T
		*last = zero
		return err
	}
	v.generation++
	for i := v.size - 1; i > pos; i-- {
		if err := v.traits.MoveAssign(v.data.Slot(i), v.data.Slot(i-1)); err != nil {
			v.destroyAt(last)
			return err
		}
	}
	// From here on the new last slot holds a live element.
	v.size++
	return v.traits.MoveAssign(v.data.Slot(pos), &temporary)
}

// Erase removes the element at position pos, shifting all following elements
// one slot towards the front, and returns pos. It panics if pos is not in
// [0, Size()). If a shifting assignment fails, the vector keeps its size with
// elements partially shifted.
func (v *Vector[T]) Erase(pos int) (int, error) {
	v.checkIndex(pos)
	v.generation++
	for i := pos; i < v.size-1; i++ {
		if err := v.traits.MoveAssign(v.data.Slot(i), v.data.Slot(i+1)); err != nil {
			return pos, err
		}
	}
	v.PopBack()
	return pos, nil
}

// CopyFrom replaces the content of v by copies of the elements of src.
//
// If src holds more elements than v can hold, a complete copy of src is
// created in a new block first and installed; on failure v remains
// unchanged. Elements are always copied and later destroyed by the traits
// of v. Otherwise the
// storage of v is reused: overlapping elements are copy-assigned, excess
// elements destroyed and missing elements copy-constructed. A failure on this
// path leaves v valid, keeping its size, but with some elements replaced.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if !v.traits.Copyable() {
		return ErrNotCopyable
	}

	if src.size > v.data.Capacity() {
		newData, err := rawmem.Allocate[T](src.size)
		if err != nil {
			return fmt.Errorf("failed to copy %d elements: %w", src.size, err)
		}
		if err := v.copyN(newData.Range(0, src.size), src.Data()); err != nil {
			newData.Release()
			return err
		}
		v.replaceData(&newData)
		v.size = src.size
		return nil
	}

	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		if err := v.traits.CopyAssign(v.data.Slot(i), src.data.Slot(i)); err != nil {
			return err
		}
	}
	if src.size < v.size {
		v.destroy(v.data.Range(src.size, v.size))
	} else if err := v.copyN(v.data.Range(v.size, src.size), src.data.Range(v.size, src.size)); err != nil {
		return err
	}
	v.size = src.size
	v.generation++
	return nil
}

// MoveFrom exchanges the content of v and src in constant time: v takes over
// the elements of src and src is left owning the previous elements of v.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// Swap exchanges the contents of the two vectors in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.traits, other.traits = other.traits, v.traits
	v.generation++
	other.generation++
}

// GetMemoryFootprint reports the memory consumed by the vector and its block.
func (v *Vector[T]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(Vector[T]{}) - unsafe.Sizeof(rawmem.RawMemory[T]{}))
	mf.AddChild("storage", v.data.GetMemoryFootprint())
	mf.SetNote(fmt.Sprintf("(size: %d, capacity: %d)", v.size, v.data.Capacity()))
	return mf
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, v.size))
	}
}

func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	if v.size > math.MaxInt/2 {
		return math.MaxInt
	}
	return 2 * v.size
}

// replaceData destroys the live elements of the current block and installs
// the given block, which must already hold the relocated elements.
func (v *Vector[T]) replaceData(newData *rawmem.RawMemory[T]) {
	v.destroy(v.Data())
	v.data.Swap(newData)
	newData.Release()
	v.generation++
	v.stats.Reallocations++
}

// moveOnRelocation reports whether elements are relocated by moving them.
func (v *Vector[T]) moveOnRelocation() bool {
	return v.traits.NoFailMove() || !v.traits.Copyable()
}

func (v *Vector[T]) relocateOne(dst, src *T) error {
	if v.moveOnRelocation() {
		return v.traits.Move(dst, src)
	}
	return v.traits.Copy(dst, src)
}

// relocate constructs the elements of src into the raw slots of dst. On
// failure, all elements constructed in dst are destroyed again.
func (v *Vector[T]) relocate(dst, src []T) error {
	for i := range src {
		if err := v.relocateOne(&dst[i], &src[i]); err != nil {
			clear(dst[i : i+1])
			v.destroy(dst[:i])
			return err
		}
	}
	v.stats.Relocations += len(src)
	return nil
}

func (v *Vector[T]) copyN(dst, src []T) error {
	for i := range src {
		if err := v.traits.Copy(&dst[i], &src[i]); err != nil {
			clear(dst[i : i+1])
			v.destroy(dst[:i])
			return err
		}
	}
	return nil
}

func (v *Vector[T]) constructN(slots []T) error {
	for i := range slots {
		if err := v.traits.Construct(&slots[i]); err != nil {
			clear(slots[i : i+1])
			v.destroy(slots[:i])
			return err
		}
	}
	return nil
}

func (v *Vector[T]) construct(slot *T, init func(slot *T) error) error {
	if err := init(slot); err != nil {
		var zero T
		*slot = zero
		return err
	}
	return nil
}

// initFrom creates an initializer constructing an element from value,
// copying it if possible and moving it otherwise.
func (v *Vector[T]) initFrom(value *T) func(slot *T) error {
	if v.traits.Copyable() {
		return func(slot *T) error {
			return v.traits.Copy(slot, value)
		}
	}
	return func(slot *T) error {
		return v.traits.Move(slot, value)
	}
}

// destroy ends the lifetime of all elements in slots, leaving them raw.
func (v *Vector[T]) destroy(slots []T) {
	for i := range slots {
		v.traits.Destroy(&slots[i])
	}
	clear(slots)
}

func (v *Vector[T]) destroyAt(slot *T) {
	v.traits.Destroy(slot)
	var zero T
	*slot = zero
}
