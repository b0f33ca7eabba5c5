// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fuzzing

import (
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slices"
)

type testContext []byte

// recordOp appends its code to the context when applied.
type recordOp byte

func (op recordOp) Apply(_ TestingT, c *testContext) {
	*c = append(*c, byte(op))
}

func (op recordOp) Serialize() []byte {
	return []byte{byte(op)}
}

func deserializeRecordOps(raw []byte) []Operation[testContext] {
	ops := make([]Operation[testContext], 0, len(raw))
	for _, b := range raw {
		ops = append(ops, recordOp(b))
	}
	return ops
}

const terminalSymbol = 0xFF

func TestFuzz_SeedSequencesAreRegisteredAndExecuted(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaign := NewMockCampaign[testContext](ctrl)
	testingF := NewMockTestingF(ctrl)

	campaign.EXPECT().Init().Return([]OperationSequence[testContext]{
		{recordOp(1), recordOp(2)},
		{recordOp(3)},
	})
	context := testContext{}
	campaign.EXPECT().CreateContext(t).Times(2).Return(&context)
	campaign.EXPECT().Deserialize(gomock.Any()).Times(2).DoAndReturn(deserializeRecordOps)
	campaign.EXPECT().Cleanup(t, gomock.Any()).Times(2).Do(func(_ TestingT, c *testContext) {
		*c = append(*c, terminalSymbol)
	})

	seeds := [][]byte{}
	testingF.EXPECT().Helper().AnyTimes()
	testingF.EXPECT().Add(gomock.Any()).Times(2).Do(func(rawData []byte) {
		seeds = append(seeds, rawData)
	})
	testingF.EXPECT().Fuzz(gomock.Any()).Do(func(ff func(*testing.T, []byte)) {
		for _, seed := range seeds {
			ff(t, seed)
		}
	})

	Fuzz[testContext](testingF, campaign)

	want := testContext{1, 2, terminalSymbol, 3, terminalSymbol}
	if !slices.Equal(context, want) {
		t.Errorf("executed operations not valid:\n got: %v\n want: %v", context, want)
	}
}

func TestFuzz_ExecutionStopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaign := NewMockCampaign[testContext](ctrl)
	testingT := NewMockTestingT(ctrl)

	context := testContext{}
	campaign.EXPECT().CreateContext(testingT).Return(&context)
	campaign.EXPECT().Deserialize(gomock.Any()).DoAndReturn(deserializeRecordOps)
	campaign.EXPECT().Cleanup(testingT, &context).Do(func(_ TestingT, c *testContext) {
		*c = append(*c, terminalSymbol)
	})
	gomock.InOrder(
		testingT.EXPECT().Failed().Return(false),
		testingT.EXPECT().Failed().Return(true),
	)

	run[testContext](testingT, campaign, []byte{1, 2, 3, 4})

	want := testContext{1, 2, terminalSymbol}
	if !slices.Equal(context, want) {
		t.Errorf("executed operations not valid:\n got: %v\n want: %v", context, want)
	}
}

func TestOperationSequence_SerializeConcatenatesOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockOperation[testContext](ctrl)
	b := NewMockOperation[testContext](ctrl)
	a.EXPECT().Serialize().Return([]byte{1, 2})
	b.EXPECT().Serialize().Return([]byte{3})

	got := OperationSequence[testContext]{a, b, recordOp(4)}.Serialize()
	if want := []byte{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("unexpected serialization, got %v, want %v", got, want)
	}
}
