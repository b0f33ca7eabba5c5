package common

import (
	"testing"
)

// AssertArraysEqual fails the test if the two arrays differ in length or content.
func AssertArraysEqual[V comparable](t testing.TB, first, second []V) {
	t.Helper()
	if len(first) != len(second) {
		t.Errorf("array sizes differ, %d != %d", len(first), len(second))
		return
	}
	for i := 0; i < len(first); i++ {
		if first[i] != second[i] {
			t.Errorf("assertValues failed at %d: %v != %v", i, first[i], second[i])
		}
	}
}

// CollectIterator drains the iterator into a slice.
func CollectIterator[K any](it Iterator[K]) []K {
	var res []K
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}
