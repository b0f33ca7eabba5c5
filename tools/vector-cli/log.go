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
	"fmt"
	"log"
	"time"

	"github.com/Fantom-foundation/Carmen/vector/backend/vector"
)

// Log prints messages prefixed by the time elapsed since the tool started.
type Log struct {
	start  time.Time
	logger *log.Logger
}

func NewLog() *Log {
	return &Log{start: time.Now(), logger: log.New(log.Writer(), "", 0)}
}

func (l *Log) Printf(format string, v ...any) {
	elapsed := time.Since(l.start).Truncate(time.Millisecond)
	l.logger.Printf("[%10v] %s", elapsed, fmt.Sprintf(format, v...))
}

// observedVector is the view of a vector progress reports are based on.
type observedVector interface {
	Size() int
	Capacity() int
	Stats() vector.Stats
}

// vectorProgress reports the state of a vector every interval operations,
// including the reallocations since the previous report.
type vectorProgress struct {
	log      *Log
	what     string
	vector   observedVector
	interval int

	operations int
	last       time.Time
	lastStats  vector.Stats
}

func (l *Log) trackProgress(what string, v observedVector, interval int) *vectorProgress {
	return &vectorProgress{
		log:       l,
		what:      what,
		vector:    v,
		interval:  max(interval, 1),
		last:      time.Now(),
		lastStats: v.Stats(),
	}
}

// Step records a single operation on the observed vector.
func (p *vectorProgress) Step() {
	p.operations++
	if p.operations%p.interval != 0 {
		return
	}
	now := time.Now()
	stats := p.vector.Stats()
	rate := float64(p.interval) / max(now.Sub(p.last).Seconds(), 1e-9)
	p.log.Printf("%d %s (%.0f/s), size %d, capacity %d, %d reallocations (+%d)",
		p.operations, p.what, rate,
		p.vector.Size(), p.vector.Capacity(),
		stats.Reallocations, stats.Reallocations-p.lastStats.Reallocations,
	)
	p.last = now
	p.lastStats = stats
}
