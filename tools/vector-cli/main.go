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
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/Fantom-foundation/Carmen/vector/common/interrupt"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"
)

// Run using
//  go run ./tools/vector-cli <command> <flags>

var (
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	traceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
	numElementsFlag = cli.IntFlag{
		Name:  "elements",
		Usage: "the number of elements to be placed in the vector",
		Value: 1_000_000,
	}
	reportIntervalFlag = cli.IntFlag{
		Name:  "report-interval",
		Usage: "the number of operations between progress reports",
		Value: 100_000,
	}
)

func main() {
	app := &cli.App{
		Name:      "vector-cli",
		Usage:     "exercises the growable vector and reports its behaviour",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			&cpuProfileFlag,
			&traceFlag,
		},
		Commands: []*cli.Command{
			&Growth,
			&Stress,
			&Footprint,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// action is the body of a command. ctx is cancelled when the process is
// interrupted.
type action func(ctx context.Context, cliCtx *cli.Context) error

// withDiagnostics runs the action under the CPU profiler and tracer requested
// by the global flags and with an interrupt-aware context.
func withDiagnostics(run action) cli.ActionFunc {
	return func(cliCtx *cli.Context) (err error) {
		stopDiagnostics, err := startDiagnostics(cliCtx.String(cpuProfileFlag.Name), cliCtx.String(traceFlag.Name))
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, stopDiagnostics())
		}()

		ctx, stop := interrupt.Register(cliCtx.Context)
		defer stop()
		return run(ctx, cliCtx)
	}
}

// startDiagnostics starts CPU profiling and execution tracing into the named
// files; empty names disable the respective diagnosis. The returned function
// stops what was started and closes the files.
func startDiagnostics(cpuProfile, traceFile string) (func() error, error) {
	var stops []func() error
	stopAll := func() error {
		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i]())
		}
		return errors.Join(errs...)
	}

	if name := strings.TrimSpace(cpuProfile); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return nil, errors.Join(fmt.Errorf("failed to start CPU profile: %w", err), f.Close())
		}
		stops = append(stops, func() error {
			pprof.StopCPUProfile()
			return f.Close()
		})
	}

	if name := strings.TrimSpace(traceFile); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("failed to create trace file: %w", err), stopAll())
		}
		if err := trace.Start(f); err != nil {
			return nil, errors.Join(fmt.Errorf("failed to start trace: %w", err), f.Close(), stopAll())
		}
		stops = append(stops, func() error {
			trace.Stop()
			return f.Close()
		})
	}

	return stopAll, nil
}

func positiveOr[I constraints.Integer](value, fallback I) I {
	if value <= 0 {
		return fallback
	}
	return value
}
