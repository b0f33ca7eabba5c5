// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fuzzing runs randomized operation sequences against a data
// structure on top of Go's native fuzzing. A Campaign describes the seed
// sequences, how raw fuzzer input is decoded into operations and how the
// structure under test is set up and torn down.
package fuzzing

//go:generate mockgen -source fuzzing.go -destination fuzzing_mocks.go -package fuzzing

import (
	"testing"
)

// TestingT is the subset of testing.T used by operations and campaigns.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Failed() bool
}

// TestingF is the subset of testing.F used to drive a campaign.
type TestingF interface {
	Helper()
	Add(args ...any)
	Fuzz(ff any)
}

var _ TestingT = (*testing.T)(nil)
var _ TestingF = (*testing.F)(nil)

// Operation is a single step of a fuzzing campaign applied to a context C.
type Operation[C any] interface {
	// Apply executes the operation and checks its outcome.
	Apply(t TestingT, c *C)
	// Serialize encodes the operation such that Campaign.Deserialize restores it.
	Serialize() []byte
}

// OperationSequence is a list of operations executed in order.
type OperationSequence[C any] []Operation[C]

// Serialize concatenates the encodings of all operations.
func (s OperationSequence[C]) Serialize() []byte {
	var res []byte
	for _, op := range s {
		res = append(res, op.Serialize()...)
	}
	return res
}

// Campaign defines a fuzzing campaign over a context C.
type Campaign[C any] interface {
	// Init provides the seed sequences of the campaign.
	Init() []OperationSequence[C]
	// CreateContext sets up a fresh context for one fuzzing input.
	CreateContext(t TestingT) *C
	// Deserialize decodes raw fuzzer input into operations. Undecodable
	// trailing bytes are to be ignored.
	Deserialize(rawData []byte) []Operation[C]
	// Cleanup releases the context after all operations were applied.
	Cleanup(t TestingT, c *C)
}

// Fuzz registers the seed sequences of the campaign and runs the fuzzer.
// Every input is decoded into operations that are applied to a fresh
// context. Execution of an input stops at the first failing operation.
func Fuzz[C any](f TestingF, c Campaign[C]) {
	f.Helper()
	for _, seq := range c.Init() {
		f.Add(seq.Serialize())
	}
	f.Fuzz(func(t *testing.T, rawData []byte) {
		run(t, c, rawData)
	})
}

func run[C any](t TestingT, c Campaign[C], rawData []byte) {
	ops := c.Deserialize(rawData)
	ctx := c.CreateContext(t)
	for _, op := range ops {
		op.Apply(t, ctx)
		if t.Failed() {
			break
		}
	}
	c.Cleanup(t, ctx)
}
