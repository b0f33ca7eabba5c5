// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vector

import (
	"iter"

	"github.com/Fantom-foundation/Carmen/vector/common"
)

var _ common.Iterator[*int] = (*Iterator[int])(nil)

// Iterator is a forward cursor over the live elements of a vector. Any
// reallocation or shift of the vector's elements invalidates the iterator;
// using an invalidated iterator panics.
type Iterator[T any] struct {
	vector     *Vector[T]
	position   int
	generation uint64
}

// Iterator creates an iterator positioned at the first element.
func (v *Vector[T]) Iterator() *Iterator[T] {
	return v.IteratorAt(0)
}

// IteratorAt creates an iterator positioned at pos. It panics if pos is not
// in [0, Size()].
func (v *Vector[T]) IteratorAt(pos int) *Iterator[T] {
	if pos < 0 || pos > v.size {
		panic("iterator position out of range")
	}
	return &Iterator[T]{vector: v, position: pos, generation: v.generation}
}

// Valid reports whether the iterator still refers to the current storage of
// its vector.
func (it *Iterator[T]) Valid() bool {
	return it.generation == it.vector.generation
}

// Position is the index of the element returned by the next call to Next.
func (it *Iterator[T]) Position() int {
	return it.position
}

func (it *Iterator[T]) HasNext() bool {
	it.check()
	return it.position < it.vector.size
}

// Next returns the address of the current element and advances the iterator.
func (it *Iterator[T]) Next() *T {
	it.check()
	res := it.vector.At(it.position)
	it.position++
	return res
}

func (it *Iterator[T]) check() {
	if !it.Valid() {
		panic("use of invalidated vector iterator")
	}
}

// All iterates over the indexes and addresses of the live elements in order.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.Slot(i)) {
				return
			}
		}
	}
}

// Backward iterates over the indexes and addresses of the live elements in
// reverse order.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.Slot(i)) {
				return
			}
		}
	}
}

// Values iterates over copies of the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Slot(i)) {
				return
			}
		}
	}
}
