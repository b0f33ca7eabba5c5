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
	"math/rand"
	"time"

	"github.com/Fantom-foundation/Carmen/vector/backend/vector"
	"github.com/Fantom-foundation/Carmen/vector/common/interrupt"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var Stress = cli.Command{
	Action: withDiagnostics(stress),
	Name:   "stress",
	Usage:  "applies random operations to a vector and verifies it against a plain slice",
	Flags: []cli.Flag{
		&numOperationsFlag,
		&reportIntervalFlag,
		&seedFlag,
		&copyRelocationFlag,
	},
}

var (
	numOperationsFlag = cli.IntFlag{
		Name:  "operations",
		Usage: "the number of random operations to be applied",
		Value: 1_000_000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "the seed for the random number generator, 0 for a random seed",
		Value: 0,
	}
	copyRelocationFlag = cli.BoolFlag{
		Name:  "copy-relocation",
		Usage: "declares element moves as failing, forcing relocation by copying",
	}
)

type stressParams struct {
	numOperations  int
	reportInterval int
	seed           int64
	copyRelocation bool
}

type stressResult struct {
	operations map[string]int
	finalSize  int
	stats      vector.Stats
}

func stress(ctx context.Context, cliCtx *cli.Context) error {
	log := NewLog()
	params := stressParams{
		numOperations:  positiveOr(cliCtx.Int(numOperationsFlag.Name), numOperationsFlag.Value),
		reportInterval: positiveOr(cliCtx.Int(reportIntervalFlag.Name), reportIntervalFlag.Value),
		seed:           seedOrNow(cliCtx.Int64(seedFlag.Name)),
		copyRelocation: cliCtx.Bool(copyRelocationFlag.Name),
	}
	log.Printf("Using seed: %d", params.seed)

	res, err := runStress(ctx, params, log)
	if err != nil {
		return err
	}

	names := maps.Keys(res.operations)
	slices.Sort(names)
	for _, name := range names {
		log.Printf("%-10s %d", name, res.operations[name])
	}
	log.Printf("Final size: %d, reallocations: %d, relocated elements: %d",
		res.finalSize, res.stats.Reallocations, res.stats.Relocations)
	return nil
}

// seedOrNow returns seed, or a time based seed if seed is 0. Negative seeds
// are valid seeds.
func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func runStress(ctx context.Context, params stressParams, log *Log) (stressResult, error) {
	res := stressResult{operations: map[string]int{}}
	rand := rand.New(rand.NewSource(params.seed))

	traits := vector.Lifecycle[string]{MoveMayFail: params.copyRelocation}.Traits()
	v := vector.New(traits)
	defer v.Release()
	shadow := []string{}

	progress := log.trackProgress("operations", v, params.reportInterval)
	for i := 0; i < params.numOperations; i++ {
		if i%params.reportInterval == 0 {
			if err := interrupt.Check(ctx); err != nil {
				return res, err
			}
		}
		value := fmt.Sprintf("%d", rand.Intn(1_000_000))
		var err error
		op := ""
		// Bias towards growth to keep the vector from staying trivially small.
		switch c := rand.Float32(); {
		case c < 0.35:
			op = "push"
			err = v.PushBack(value)
			shadow = append(shadow, value)
		case c < 0.50:
			op = "insert"
			pos := rand.Intn(len(shadow) + 1)
			_, err = v.Insert(pos, value)
			shadow = slices.Insert(shadow, pos, value)
		case c < 0.65 && len(shadow) > 0:
			op = "erase"
			pos := rand.Intn(len(shadow))
			_, err = v.Erase(pos)
			shadow = slices.Delete(shadow, pos, pos+1)
		case c < 0.80 && len(shadow) > 0:
			op = "pop"
			v.PopBack()
			shadow = shadow[:len(shadow)-1]
		case c < 0.90 && len(shadow) > 0:
			op = "set"
			pos := rand.Intn(len(shadow))
			err = v.Set(pos, value)
			shadow[pos] = value
		case c < 0.95:
			op = "resize"
			size := rand.Intn(2*len(shadow) + 1)
			err = v.Resize(size)
			if size < len(shadow) {
				shadow = shadow[:size]
			} else {
				shadow = append(shadow, make([]string, size-len(shadow))...)
			}
		default:
			op = "copy"
			var clone *vector.Vector[string]
			if clone, err = v.Clone(); err == nil {
				err = v.CopyFrom(clone)
				clone.Release()
			}
		}
		if err != nil {
			return res, fmt.Errorf("operation %d (%s) failed: %w", i, op, err)
		}
		res.operations[op]++
		progress.Step()
	}

	if got, want := v.Size(), len(shadow); got != want {
		return res, fmt.Errorf("size diverged from shadow: %d != %d", got, want)
	}
	if !slices.Equal(v.Data(), shadow) {
		return res, fmt.Errorf("content diverged from shadow")
	}
	res.finalSize = v.Size()
	res.stats = v.Stats()
	return res, nil
}
