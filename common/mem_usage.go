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
	"runtime"
)

// MemoryUsage is a snapshot of the heap statistics relevant for tracking
// the memory retained by containers.
type MemoryUsage struct {
	HeapAlloc  uint64 // bytes of allocated heap objects
	TotalAlloc uint64 // cumulative bytes allocated
	NumGC      uint32
}

// GetMemoryUsage returns the current heap statistics. If runGc is set, a
// garbage collection is forced before reading them.
func GetMemoryUsage(runGc bool) MemoryUsage {
	if runGc {
		runtime.GC()
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryUsage{
		HeapAlloc:  m.HeapAlloc,
		TotalAlloc: m.TotalAlloc,
		NumGC:      m.NumGC,
	}
}

// MeasureRetainedHeap runs f between two forced collections and reports by
// how much the live heap grew. Memory released by f before it returns is
// not counted; a shrinking heap is reported as zero.
func MeasureRetainedHeap(f func() error) (uint64, error) {
	before := GetMemoryUsage(true)
	if err := f(); err != nil {
		return 0, err
	}
	after := GetMemoryUsage(true)
	if after.HeapAlloc < before.HeapAlloc {
		return 0, nil
	}
	return after.HeapAlloc - before.HeapAlloc, nil
}

func (m MemoryUsage) String() string {
	return fmt.Sprintf("heap=%s total=%s gc=%d",
		memoryAmountToString(uintptr(m.HeapAlloc)),
		memoryAmountToString(uintptr(m.TotalAlloc)),
		m.NumGC,
	)
}
