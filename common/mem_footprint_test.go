// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func expectSubstr(t *testing.T, str, substring string) {
	t.Helper()
	if !strings.Contains(str, substring) {
		t.Errorf("expected %v to contain substring %v", str, substring)
	}
}

func TestMemoryFootprint_IsFormattable(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("left", NewMemoryFootprint(50*1024))
	fp.AddChild("right", NewMemoryFootprint(10*1024*1024+200*1024))

	print := fmt.Sprintf("%v", fp)
	expectSubstr(t, print, "10.2 MB .")
	expectSubstr(t, print, "50.0 KB ./left")
	expectSubstr(t, print, "10.2 MB ./right")
}

func TestMemoryFootprint_ContainsNote(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.SetNote("(size: 3)")

	if !strings.Contains(fp.String(), "(size: 3)") {
		t.Errorf("note not printed")
	}
}

func TestMemoryFootprint_Value(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("x", NewMemoryFootprint(8))

	if got, want := fp.Value(), uintptr(12); got != want {
		t.Errorf("value does not match: %d != %d", got, want)
	}
	if got, want := fp.Total(), uintptr(20); got != want {
		t.Errorf("total does not match: %d != %d", got, want)
	}
}

func TestMemoryFootprint_SharedChildIsCountedOnce(t *testing.T) {
	shared := NewMemoryFootprint(100)
	fp := NewMemoryFootprint(1)
	fp.AddChild("a", shared)
	fp.AddChild("b", shared)

	if got, want := fp.Total(), uintptr(101); got != want {
		t.Errorf("total does not match: %d != %d", got, want)
	}
}

func TestMemoryFootprint_RecursiveIsTerminated(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("x", fp)

	if got, want := fp.Total(), uintptr(12); got != want {
		t.Errorf("value does not match: %d != %d", got, want)
	}
	_ = fp.String()
}

func TestMemoryFootprint_NilChildIsIgnored(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("x", nil)

	if got := fp.GetChild("x"); got != nil {
		t.Errorf("nil child should not be registered")
	}
	if got, want := fp.Total(), uintptr(12); got != want {
		t.Errorf("value does not match: %d != %d", got, want)
	}
}

func TestMemoryFootprint_PrintsComponentsInOrderBeforeParent(t *testing.T) {
	fp := NewMemoryFootprint(4)
	fp.AddChild("b", NewMemoryFootprint(5))
	fp.AddChild("a", NewMemoryFootprint(6))

	print := fp.String()
	match, err := regexp.MatchString(`6.*a[\S\s]*5.*b[\S\s]*15.*\.`, print)
	if err != nil {
		t.Fatalf("failed to match regex: %v", err)
	}
	if !match {
		t.Errorf("entries not in order:\n%v", print)
	}
}

func TestMemoryFootprint_PrintIsAligned(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("a", NewMemoryFootprint(1))
	fp.AddChild("b", NewMemoryFootprint(10*1024))
	fp.AddChild("d", NewMemoryFootprint(1022))

	print := fp.String()
	expectSubstr(t, print, "   1.0  B ./a")
	expectSubstr(t, print, "  10.0 KB ./b")
	expectSubstr(t, print, "1022.0  B ./d")
}
