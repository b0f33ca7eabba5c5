// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package interrupt lets long running loops stop cleanly between two
// operations when the process receives SIGINT or SIGTERM.
package interrupt

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fantom-foundation/Carmen/vector/common"
)

const ErrCanceled = common.ConstError("interrupted")

// Register derives a context that is cancelled with cause ErrCanceled once
// the process is interrupted. The returned stop function cancels the context
// and releases the signal handler; it must be called when the context is no
// longer needed.
func Register(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			log.Printf("received %v, stopping after the current operation", sig)
			cancel(ErrCanceled)
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(context.Canceled) }
}

// Check returns ErrCanceled if ctx is done and nil otherwise. It does not
// block.
func Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ErrCanceled
	default:
		return nil
	}
}
