// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Fantom-foundation/Carmen/vector/backend/vector"
	"github.com/Fantom-foundation/Carmen/vector/common"
	"github.com/Fantom-foundation/Carmen/vector/common/interrupt"
	"github.com/urfave/cli/v2"
)

var Growth = cli.Command{
	Action: withDiagnostics(growth),
	Name:   "growth",
	Usage:  "appends elements to an empty vector and reports its capacity progression",
	Flags: []cli.Flag{
		&numElementsFlag,
		&reportIntervalFlag,
	},
}

type growthParams struct {
	numElements    int
	reportInterval int
}

type growthResult struct {
	capacities []int // the distinct capacities observed, in order
	stats      vector.Stats
	duration   time.Duration
	footprint  uintptr // as reported by the vector
	retained   uint64  // live heap growth while the vector was held
}

func growth(ctx context.Context, cliCtx *cli.Context) error {
	log := NewLog()
	params := growthParams{
		numElements:    positiveOr(cliCtx.Int(numElementsFlag.Name), numElementsFlag.Value),
		reportInterval: positiveOr(cliCtx.Int(reportIntervalFlag.Name), reportIntervalFlag.Value),
	}
	log.Printf("Appending %d elements ...", params.numElements)

	res, err := runGrowth(ctx, params, log)
	if err != nil {
		return err
	}

	log.Printf("Done in %v", res.duration)
	log.Printf("Capacities: %v", res.capacities)
	log.Printf("Reallocations: %d, relocated elements: %d (%.2f per element)",
		res.stats.Reallocations, res.stats.Relocations,
		float64(res.stats.Relocations)/float64(params.numElements))
	log.Printf("Reported footprint: %d bytes, retained heap: %d bytes", res.footprint, res.retained)
	return nil
}

func runGrowth(ctx context.Context, params growthParams, log *Log) (growthResult, error) {
	res := growthResult{}
	v := vector.New(vector.Plain[uint64]())
	defer v.Release()

	retained, err := common.MeasureRetainedHeap(func() error {
		progress := log.trackProgress("appended", v, params.reportInterval)
		start := time.Now()
		for i := 0; i < params.numElements; i++ {
			if i%params.reportInterval == 0 {
				if err := interrupt.Check(ctx); err != nil {
					return err
				}
			}
			if err := v.PushBack(uint64(i)); err != nil {
				return fmt.Errorf("failed to append element %d: %w", i, err)
			}
			if len(res.capacities) == 0 || res.capacities[len(res.capacities)-1] != v.Capacity() {
				res.capacities = append(res.capacities, v.Capacity())
			}
			progress.Step()
		}
		res.duration = time.Since(start)
		return nil
	})
	if err != nil {
		return res, err
	}
	res.retained = retained
	res.stats = v.Stats()
	res.footprint = v.GetMemoryFootprint().Total()

	for i, value := range v.All() {
		if *value != uint64(i) {
			return res, fmt.Errorf("element %d has unexpected value %d", i, *value)
		}
	}
	return res, nil
}
