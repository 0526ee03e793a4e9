// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim provides stimulus protocols for driving a single cell:
a train of rectangular current pulses at a fixed basic cycle length (BCL),
or a single pulse.
*/
package stim

import (
	"errors"
	"fmt"
	"math"

	"github.com/goki/ki/kit"
)

// Shape is the waveform of each stimulus pulse
type Shape int

//go:generate stringer -type=Shape

var KiT_Shape = kit.Enums.AddEnum(ShapeN, kit.NotBitFlag, nil)

func (ev Shape) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Shape) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The pulse shapes
const (
	// Monophasic pulses hold Amp for the whole duration
	Monophasic Shape = iota

	// Biphasic pulses hold Amp for the first half of the duration and -Amp for the second half
	Biphasic

	ShapeN
)

// Pulse is a train of current pulses.  Amplitudes are in pA/pF
// (negative is depolarizing, as the stimulus adds to the outward ionic current),
// times in msec.
type Pulse struct {
	Amp    float64 `def:"-52" desc:"pulse amplitude in pA/pF -- negative depolarizes"`
	Start  float64 `def:"0" desc:"onset of the first pulse, in msec"`
	Dur    float64 `def:"1" desc:"duration of each pulse, in msec"`
	Period float64 `def:"1000" desc:"basic cycle length (BCL) between pulse onsets, in msec -- 0 gives a single pulse"`
	N      int     `def:"0" desc:"number of pulses -- 0 is unlimited when Period > 0"`
	Shape  Shape   `desc:"waveform of each pulse"`
}

func (pl *Pulse) Defaults() {
	pl.Amp = -52
	pl.Start = 0
	pl.Dur = 1
	pl.Period = 1000
	pl.N = 0
	pl.Shape = Monophasic
}

// Validate returns an error if the protocol is not well formed
func (pl *Pulse) Validate() error {
	var errs []error
	if math.IsNaN(pl.Amp) || math.IsInf(pl.Amp, 0) {
		errs = append(errs, fmt.Errorf("stim.Pulse: Amp must be finite, is: %g", pl.Amp))
	}
	if pl.Start < 0 {
		errs = append(errs, fmt.Errorf("stim.Pulse: Start must be >= 0, is: %g", pl.Start))
	}
	if !(pl.Dur > 0) {
		errs = append(errs, fmt.Errorf("stim.Pulse: Dur must be > 0, is: %g", pl.Dur))
	}
	if pl.Period < 0 {
		errs = append(errs, fmt.Errorf("stim.Pulse: Period must be >= 0, is: %g", pl.Period))
	}
	if pl.Period > 0 && pl.Period < pl.Dur {
		errs = append(errs, fmt.Errorf("stim.Pulse: Period: %g must be >= Dur: %g", pl.Period, pl.Dur))
	}
	if pl.N < 0 {
		errs = append(errs, fmt.Errorf("stim.Pulse: N must be >= 0, is: %d", pl.N))
	}
	if pl.Shape < 0 || pl.Shape >= ShapeN {
		errs = append(errs, fmt.Errorf("stim.Pulse: invalid Shape: %v", pl.Shape))
	}
	return errors.Join(errs...)
}

// Beat returns the index of the pulse whose cycle contains time t,
// and the time since that pulse's onset.  Returns -1 before the first
// pulse and after the last one's cycle.
func (pl *Pulse) Beat(t float64) (int, float64) {
	if t < pl.Start {
		return -1, 0
	}
	el := t - pl.Start
	if pl.Period <= 0 {
		return 0, el
	}
	k := int(math.Floor(el / pl.Period))
	if pl.N > 0 && k >= pl.N {
		return -1, 0
	}
	return k, el - float64(k)*pl.Period
}

// Current returns the stimulus current at time t
func (pl *Pulse) Current(t float64) float64 {
	k, ph := pl.Beat(t)
	if k < 0 || ph >= pl.Dur {
		return 0
	}
	if pl.Shape == Biphasic && ph >= 0.5*pl.Dur {
		return -pl.Amp
	}
	return pl.Amp
}

// NBeats returns the number of pulses with an onset at or before time t
func (pl *Pulse) NBeats(t float64) int {
	if t < pl.Start {
		return 0
	}
	if pl.Period <= 0 {
		return 1
	}
	n := int(math.Floor((t-pl.Start)/pl.Period)) + 1
	if pl.N > 0 && n > pl.N {
		n = pl.N
	}
	return n
}

// Onset returns the onset time of pulse k
func (pl *Pulse) Onset(k int) float64 {
	return pl.Start + float64(k)*pl.Period
}
