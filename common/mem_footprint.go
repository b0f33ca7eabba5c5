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
	"sort"
	"strings"
)

// MemoryFootprint describes the memory consumption of a data structure
// and, recursively, of the components it owns.
type MemoryFootprint struct {
	value    uintptr
	note     string
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a new MemoryFootprint instance for a structure
// consuming the given number of bytes, excluding its components.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{
		value:    value,
		children: make(map[string]*MemoryFootprint),
	}
}

// AddChild attaches the footprint of a component under the given name.
// Nil children are ignored.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if child == nil {
		return
	}
	mf.children[name] = child
}

// GetChild returns the footprint of the named component, nil if not present.
func (mf *MemoryFootprint) GetChild(name string) *MemoryFootprint {
	return mf.children[name]
}

// SetNote attaches a free-form note printed next to this footprint.
func (mf *MemoryFootprint) SetNote(note string) {
	mf.note = note
}

// Value provides the amount of bytes consumed by the structure (excluding its components)
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the amount of bytes consumed by the structure including all its components.
// Components reachable through more than one path are counted once.
func (mf *MemoryFootprint) Total() uintptr {
	includedObjects := make(map[*MemoryFootprint]bool)
	return includeObjectIntoTotal(mf, includedObjects)
}

func includeObjectIntoTotal(mf *MemoryFootprint, includedObjects map[*MemoryFootprint]bool) (total uintptr) {
	if _, exists := includedObjects[mf]; exists {
		return 0
	}
	includedObjects[mf] = true
	total = mf.value
	for _, child := range mf.children {
		total += includeObjectIntoTotal(child, includedObjects)
	}
	return total
}

// String renders the footprint as a tree summary, components first and
// sorted by name, followed by the root denoted as ".".
func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.toStringBuilder(&sb, ".", map[*MemoryFootprint]bool{})
	return sb.String()
}

func (mf *MemoryFootprint) toStringBuilder(sb *strings.Builder, path string, visited map[*MemoryFootprint]bool) {
	if visited[mf] {
		return
	}
	visited[mf] = true

	names := make([]string, 0, len(mf.children))
	for name := range mf.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mf.children[name].toStringBuilder(sb, path+"/"+name, visited)
	}

	sb.WriteString(memoryAmountToString(mf.Total()))
	sb.WriteRune(' ')
	sb.WriteString(path)
	if mf.note != "" {
		sb.WriteRune(' ')
		sb.WriteString(mf.note)
	}
	sb.WriteRune('\n')
}

func memoryAmountToString(bytes uintptr) string {
	const unit = 1024
	const prefixes = " KMGTPE"
	value, exp := float64(bytes), 0
	for value >= unit && exp+1 < len(prefixes) {
		value /= unit
		exp++
	}
	return fmt.Sprintf("%6.1f %cB", value, prefixes[exp])
}
