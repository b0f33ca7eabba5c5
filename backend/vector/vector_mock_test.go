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
	"errors"
	"testing"

	"github.com/Fantom-foundation/Carmen/vector/common"
	"go.uber.org/mock/gomock"
)

func copyInt(dst, src *int) error {
	*dst = *src
	return nil
}

func newFullMockedVector(t *testing.T, traits *MockTraits[int], values ...int) *Vector[int] {
	t.Helper()
	v := New[int](traits)
	if err := v.Reserve(len(values)); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}
	for _, value := range values {
		if _, err := v.EmplaceBack(func(slot *int) error {
			*slot = value
			return nil
		}); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}
	return v
}

func TestVector_ReserveCopiesAllElementsBeforeDestroyingOldOnes(t *testing.T) {
	ctrl := gomock.NewController(t)
	traits := NewMockTraits[int](ctrl)
	traits.EXPECT().NoFailMove().Return(false).AnyTimes()
	traits.EXPECT().Copyable().Return(true).AnyTimes()
	v := newFullMockedVector(t, traits, 1, 2)

	gomock.InOrder(
		traits.EXPECT().Copy(gomock.Any(), gomock.Any()).DoAndReturn(copyInt).Times(2),
		traits.EXPECT().Destroy(gomock.Any()).Times(2),
	)

	if err := v.Reserve(4); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}
	common.AssertArraysEqual(t, v.Data(), []int{1, 2})
}

func TestVector_ReserveMovesElementsWithNoFailMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	traits := NewMockTraits[int](ctrl)
	traits.EXPECT().NoFailMove().Return(true).AnyTimes()
	traits.EXPECT().Copyable().Return(true).AnyTimes()
	v := newFullMockedVector(t, traits, 1, 2, 3)

	gomock.InOrder(
		traits.EXPECT().Move(gomock.Any(), gomock.Any()).DoAndReturn(copyInt).Times(3),
		traits.EXPECT().Destroy(gomock.Any()).Times(3),
	)

	if err := v.Reserve(8); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}
	common.AssertArraysEqual(t, v.Data(), []int{1, 2, 3})
}

func TestVector_GrowingEmplaceBackConstructsNewElementBeforeRelocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	traits := NewMockTraits[int](ctrl)
	traits.EXPECT().NoFailMove().Return(false).AnyTimes()
	traits.EXPECT().Copyable().Return(true).AnyTimes()
	traits.EXPECT().Destroy(gomock.Any()).AnyTimes()
	v := newFullMockedVector(t, traits, 1, 2)

	events := []string{}
	traits.EXPECT().Copy(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(dst, src *int) error {
		events = append(events, "relocate")
		return copyInt(dst, src)
	})

	_, err := v.EmplaceBack(func(slot *int) error {
		events = append(events, "construct")
		*slot = 3
		return nil
	})
	if err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	common.AssertArraysEqual(t, events, []string{"construct", "relocate", "relocate"})
	common.AssertArraysEqual(t, v.Data(), []int{1, 2, 3})
}

func TestVector_FailingRelocationDestroysPartialStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	traits := NewMockTraits[int](ctrl)
	traits.EXPECT().NoFailMove().Return(false).AnyTimes()
	traits.EXPECT().Copyable().Return(true).AnyTimes()
	v := newFullMockedVector(t, traits, 1, 2, 3)

	gomock.InOrder(
		traits.EXPECT().Copy(gomock.Any(), gomock.Any()).DoAndReturn(copyInt),
		traits.EXPECT().Copy(gomock.Any(), gomock.Any()).Return(errInjected),
		// the first relocated element and the new element
		traits.EXPECT().Destroy(gomock.Any()).Times(2),
	)

	_, err := v.EmplaceBack(func(slot *int) error {
		*slot = 4
		return nil
	})
	if !errors.Is(err, errInjected) {
		t.Errorf("expected injected failure, got %v", err)
	}
	common.AssertArraysEqual(t, v.Data(), []int{1, 2, 3})
}

func TestVector_PushBackCopiesValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	traits := NewMockTraits[int](ctrl)
	traits.EXPECT().Copyable().Return(true).AnyTimes()
	v := New[int](traits)
	if err := v.Reserve(1); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}

	traits.EXPECT().Copy(gomock.Any(), gomock.Any()).DoAndReturn(copyInt)

	if err := v.PushBack(7); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	common.AssertArraysEqual(t, v.Data(), []int{7})
}

func TestVector_EraseShiftsByAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	traits := NewMockTraits[int](ctrl)
	v := newFullMockedVector(t, traits, 1, 2, 3)

	gomock.InOrder(
		traits.EXPECT().MoveAssign(v.At(0), v.At(1)).DoAndReturn(copyInt),
		traits.EXPECT().MoveAssign(v.At(1), v.At(2)).DoAndReturn(copyInt),
		traits.EXPECT().Destroy(v.At(2)),
	)

	if _, err := v.Erase(0); err != nil {
		t.Fatalf("failed to erase: %v", err)
	}
	common.AssertArraysEqual(t, v.Data(), []int{2, 3})
}
