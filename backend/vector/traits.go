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

//go:generate mockgen -source traits.go -destination traits_mocks.go -package vector

// Traits describes how the elements of a Vector are brought to life, copied,
// moved and destroyed. Slots handed to Construct, Copy and Move are raw: they
// hold the zero value of T and no live element. Slots handed to CopyAssign and
// MoveAssign as destination hold a live element.
//
// A non-nil error reported by any of the operations is an element failure.
// A failing constructing operation must leave the destination raw.
type Traits[T any] interface {
	// Construct value-initializes an element in the given raw slot.
	Construct(slot *T) error
	// Copy constructs a duplicate of src in the raw slot dst. src is not modified.
	Copy(dst, src *T) error
	// Move constructs an element in the raw slot dst from the state of src,
	// leaving src in a moved-from but destroyable state.
	Move(dst, src *T) error
	// CopyAssign replaces the live element dst with a duplicate of src.
	CopyAssign(dst, src *T) error
	// MoveAssign replaces the live element dst with the state of src.
	MoveAssign(dst, src *T) error
	// Destroy ends the lifetime of the element in the given slot.
	Destroy(slot *T)
	// NoFailMove reports whether Move is guaranteed not to fail.
	NoFailMove() bool
	// Copyable reports whether Copy and CopyAssign are supported.
	Copyable() bool
}

// Plain returns the traits of ordinary Go values: elements are zero-value
// constructed, copied by assignment and zeroed when moved from or destroyed.
// None of the operations fail.
func Plain[T any]() Traits[T] {
	return plainTraits[T]{}
}

type plainTraits[T any] struct{}

func (plainTraits[T]) Construct(slot *T) error {
	var zero T
	*slot = zero
	return nil
}

func (plainTraits[T]) Copy(dst, src *T) error {
	*dst = *src
	return nil
}

func (plainTraits[T]) Move(dst, src *T) error {
	var zero T
	*dst = *src
	*src = zero
	return nil
}

func (p plainTraits[T]) CopyAssign(dst, src *T) error {
	return p.Copy(dst, src)
}

func (p plainTraits[T]) MoveAssign(dst, src *T) error {
	if dst == src {
		return nil
	}
	return p.Move(dst, src)
}

func (plainTraits[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

func (plainTraits[T]) NoFailMove() bool {
	return true
}

func (plainTraits[T]) Copyable() bool {
	return true
}

// Lifecycle collects optional element operations. Operations left nil behave
// as for Plain values. An unset CopyAssign copies src into a temporary,
// destroys dst and moves the temporary in, so a failing copy leaves dst
// untouched. An unset MoveAssign destroys dst and moves src into it. If
// moving into the destroyed dst fails, dst is value-constructed again.
type Lifecycle[T any] struct {
	Construct  func(slot *T) error
	Copy       func(dst, src *T) error
	Move       func(dst, src *T) error
	CopyAssign func(dst, src *T) error
	MoveAssign func(dst, src *T) error
	Destroy    func(slot *T)

	// MoveMayFail disables the move based relocation of copyable elements.
	MoveMayFail bool
	// NotCopyable marks elements that can only be moved.
	NotCopyable bool
}

// Traits converts the lifecycle into the traits consumed by a Vector.
func (l Lifecycle[T]) Traits() Traits[T] {
	return lifecycleTraits[T]{l}
}

type lifecycleTraits[T any] struct {
	l Lifecycle[T]
}

func (t lifecycleTraits[T]) Construct(slot *T) error {
	if t.l.Construct == nil {
		return plainTraits[T]{}.Construct(slot)
	}
	return t.l.Construct(slot)
}

func (t lifecycleTraits[T]) Copy(dst, src *T) error {
	if t.l.NotCopyable {
		return ErrNotCopyable
	}
	if t.l.Copy == nil {
		return plainTraits[T]{}.Copy(dst, src)
	}
	return t.l.Copy(dst, src)
}

func (t lifecycleTraits[T]) Move(dst, src *T) error {
	if t.l.Move == nil {
		return plainTraits[T]{}.Move(dst, src)
	}
	return t.l.Move(dst, src)
}

func (t lifecycleTraits[T]) CopyAssign(dst, src *T) error {
	if t.l.NotCopyable {
		return ErrNotCopyable
	}
	if t.l.CopyAssign != nil {
		return t.l.CopyAssign(dst, src)
	}
	if dst == src {
		return nil
	}
	var temporary T
	if err := t.Copy(&temporary, src); err != nil {
		return err
	}
	defer t.destroyRaw(&temporary)
	return t.replace(dst, &temporary)
}

func (t lifecycleTraits[T]) MoveAssign(dst, src *T) error {
	if dst == src {
		return nil
	}
	if t.l.MoveAssign != nil {
		return t.l.MoveAssign(dst, src)
	}
	return t.replace(dst, src)
}

// replace ends the lifetime of the live element dst and moves src into it.
func (t lifecycleTraits[T]) replace(dst, src *T) error {
	t.destroyRaw(dst)
	if err := t.Move(dst, src); err != nil {
		var zero T
		*dst = zero
		if t.Construct(dst) != nil {
			*dst = zero
		}
		return err
	}
	return nil
}

// destroyRaw destroys the element in slot and leaves the slot raw.
func (t lifecycleTraits[T]) destroyRaw(slot *T) {
	t.Destroy(slot)
	var zero T
	*slot = zero
}

func (t lifecycleTraits[T]) Destroy(slot *T) {
	if t.l.Destroy != nil {
		t.l.Destroy(slot)
	}
}

func (t lifecycleTraits[T]) NoFailMove() bool {
	return !t.l.MoveMayFail
}

func (t lifecycleTraits[T]) Copyable() bool {
	return !t.l.NotCopyable
}
