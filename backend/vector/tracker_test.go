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
	"github.com/Fantom-foundation/Carmen/vector/common"
	"github.com/Fantom-foundation/Carmen/vector/fuzzing"
)

const errInjected = common.ConstError("injected failure")

// element is a value whose lifetime is monitored by a tracker.
type element struct {
	value int
	live  bool
}

// tracker provides element traits recording every lifecycle event. It
// detects operations on dead elements and injects failures on request.
type tracker struct {
	t fuzzing.TestingT

	live                             int
	constructs, copies, moves        int
	copyAssigns, moveAssigns         int
	destroys                         int
	failConstructAt, failCopyAt      int // fail the n-th operation, counted from 1; 0 disables
	failMoveAssignAt, failCopyAssign int
}

func newTracker(t fuzzing.TestingT) *tracker {
	return &tracker{t: t}
}

// traits returns the traits of tracked elements; copyOnRelocation selects
// whether moves are declared as potentially failing.
func (k *tracker) traits(copyOnRelocation bool) Traits[element] {
	return k.lifecycle(copyOnRelocation).Traits()
}

func (k *tracker) lifecycle(copyOnRelocation bool) Lifecycle[element] {
	return Lifecycle[element]{
		Construct: func(slot *element) error {
			k.expectRaw(slot)
			k.constructs++
			if k.constructs == k.failConstructAt {
				return errInjected
			}
			*slot = element{live: true}
			k.live++
			return nil
		},
		Copy: func(dst, src *element) error {
			k.expectRaw(dst)
			k.expectLive(src)
			k.copies++
			if k.copies == k.failCopyAt {
				return errInjected
			}
			*dst = element{value: src.value, live: true}
			k.live++
			return nil
		},
		Move: func(dst, src *element) error {
			k.expectRaw(dst)
			k.expectLive(src)
			k.moves++
			*dst = element{value: src.value, live: true}
			src.value = 0
			k.live++
			return nil
		},
		CopyAssign: func(dst, src *element) error {
			k.expectLive(dst)
			k.expectLive(src)
			k.copyAssigns++
			if k.copyAssigns == k.failCopyAssign {
				return errInjected
			}
			dst.value = src.value
			return nil
		},
		MoveAssign: func(dst, src *element) error {
			k.expectLive(dst)
			k.expectLive(src)
			k.moveAssigns++
			if k.moveAssigns == k.failMoveAssignAt {
				return errInjected
			}
			dst.value = src.value
			src.value = 0
			return nil
		},
		Destroy: func(slot *element) {
			k.expectLive(slot)
			k.destroys++
			slot.live = false
			k.live--
		},
		MoveMayFail: copyOnRelocation,
	}
}

func (k *tracker) expectRaw(slot *element) {
	k.t.Helper()
	if *slot != (element{}) {
		k.t.Errorf("slot is not raw: %+v", *slot)
	}
}

func (k *tracker) expectLive(slot *element) {
	k.t.Helper()
	if !slot.live {
		k.t.Errorf("element is not alive: %+v", *slot)
	}
}

// checkNoLeaks verifies that exactly the elements of the given vectors are alive.
func (k *tracker) checkNoLeaks(vectors ...*Vector[element]) {
	k.t.Helper()
	want := 0
	for _, v := range vectors {
		want += v.Size()
		for i := v.Size(); i < v.Capacity(); i++ {
			if *v.data.Slot(i) != (element{}) {
				k.t.Errorf("slot %d beyond the size holds %+v", i, *v.data.Slot(i))
			}
		}
	}
	if k.live != want {
		k.t.Errorf("unexpected number of live elements, wanted %d, got %d", want, k.live)
	}
}

// valueOf creates an initializer constructing a tracked element in place.
func (k *tracker) valueOf(value int) func(*element) error {
	return func(slot *element) error {
		k.expectRaw(slot)
		*slot = element{value: value, live: true}
		k.live++
		return nil
	}
}

// failingInit creates an initializer that fails without constructing anything.
func failingInit(*element) error {
	return errInjected
}

func valuesOf(v *Vector[element]) []int {
	res := make([]int, 0, v.Size())
	for e := range v.Values() {
		res = append(res, e.value)
	}
	return res
}

// fillTracked creates a vector holding the given values, each placed in-place.
func fillTracked(t fuzzing.TestingT, k *tracker, copyOnRelocation bool, values ...int) *Vector[element] {
	t.Helper()
	v := New(k.traits(copyOnRelocation))
	if err := v.Reserve(len(values)); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}
	for _, value := range values {
		if _, err := v.EmplaceBack(k.valueOf(value)); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}
	return v
}

func fillInts(t fuzzing.TestingT, values ...int) *Vector[int] {
	t.Helper()
	v := New(Plain[int]())
	for _, value := range values {
		if err := v.PushBack(value); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}
	return v
}

func expectPanic(t fuzzing.TestingT, name string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	f()
}
