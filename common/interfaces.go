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

// MemoryFootprintProvider is implemented by structures able to report the
// amount of memory they consume.
type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// Iterator is an interface for standard iterator
type Iterator[K any] interface {

	//HasNext returns true if there is still at least one more item in the underlying collection.
	HasNext() bool

	//Next returns a next element in the input collection.
	Next() K
}
