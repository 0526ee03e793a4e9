// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

// tt06.Time contains the timing state and step size for running a cell
type Time struct {

	// accumulated amount of time the cell has been running,
	// in simulation time, in msec.  Computed as Cycle * Dt so
	// it does not accumulate rounding error over long runs.
	Time float64

	// step counter: number of Step calls since the last Reset.
	Cycle int

	// time step per cycle, in msec -- must be <= MaxStableDt
	// for the explicit updates to stay stable.
	Dt float64 `def:"0.02"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = MaxStableDt
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time = float64(tm.Cycle) * tm.Dt
}

// CyclesFor returns the number of cycles needed to cover dur msec
func (tm *Time) CyclesFor(dur float64) int {
	return int(dur/tm.Dt + 0.5)
}
