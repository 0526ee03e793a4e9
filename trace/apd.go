// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"errors"
	"fmt"

	"github.com/emer/etable/v2/minmax"
	"gonum.org/v1/gonum/floats"
)

// AP are the measures of one action potential
type AP struct {
	Onset   float64    `desc:"start of the analysis window, normally the stimulus onset, in msec"`
	Vrest   float64    `desc:"membrane potential at Onset, in mV"`
	Vpeak   float64    `desc:"peak membrane potential, in mV"`
	Tpeak   float64    `desc:"time of the peak, in msec"`
	DVdtMax float64    `desc:"maximal upstroke velocity, in mV/msec"`
	Tup     float64    `desc:"time of the maximal upstroke velocity, from which durations are measured, in msec"`
	Range   minmax.F64 `desc:"range of the membrane potential over the window"`

	tms []float64
	vs  []float64
	pk  int
}

// Analyze measures the action potential in the window of the trace
// (tms, vs) starting at onset and ending before end (end <= onset
// means the end of the trace).
func Analyze(tms, vs []float64, onset, end float64) (*AP, error) {
	if len(tms) != len(vs) {
		return nil, fmt.Errorf("trace.Analyze: %d times but %d values", len(tms), len(vs))
	}
	st := 0
	for st < len(tms) && tms[st] < onset {
		st++
	}
	ed := len(tms)
	if end > onset {
		for ed > st && tms[ed-1] >= end {
			ed--
		}
	}
	if ed-st < 3 {
		return nil, errors.New("trace.Analyze: fewer than 3 samples in window")
	}
	ap := &AP{Onset: onset, tms: tms[st:ed], vs: vs[st:ed]}
	ap.Vrest = ap.vs[0]
	ap.Range.SetInfinity()
	for _, v := range ap.vs {
		ap.Range.FitValInRange(v)
	}
	ap.pk = floats.MaxIdx(ap.vs)
	ap.Vpeak = ap.vs[ap.pk]
	ap.Tpeak = ap.tms[ap.pk]
	if ap.pk == 0 {
		return nil, errors.New("trace.Analyze: no depolarization in window")
	}
	dv := make([]float64, ap.pk)
	for i := range dv {
		dv[i] = (ap.vs[i+1] - ap.vs[i]) / (ap.tms[i+1] - ap.tms[i])
	}
	ui := floats.MaxIdx(dv)
	ap.DVdtMax = dv[ui]
	ap.Tup = 0.5 * (ap.tms[ui] + ap.tms[ui+1])
	return ap, nil
}

// Amplitude returns the peak minus the resting potential
func (ap *AP) Amplitude() float64 {
	return ap.Vpeak - ap.Vrest
}

// RepolTime returns the time after the peak at which the membrane potential
// has repolarized by fraction frac (0..1) of the amplitude
func (ap *AP) RepolTime(frac float64) (float64, error) {
	if frac < 0 || frac > 1 {
		return 0, fmt.Errorf("trace.AP: repolarization fraction must be in [0,1], is: %g", frac)
	}
	thr := ap.Vpeak - frac*ap.Amplitude()
	tm, ok := CrossDown(ap.tms, ap.vs, ap.pk, thr)
	if !ok {
		return 0, fmt.Errorf("trace.AP: no repolarization to %g mV (%g%%) in window", thr, 100*frac)
	}
	return tm, nil
}

// APD returns the action potential duration at fraction frac of
// repolarization (0.9 for APD90), measured from the time of maximal
// upstroke velocity
func (ap *AP) APD(frac float64) (float64, error) {
	tm, err := ap.RepolTime(frac)
	if err != nil {
		return 0, err
	}
	return tm - ap.Tup, nil
}

// CrossDown returns the linearly interpolated time at which vs first falls
// below thr at or after index from
func CrossDown(tms, vs []float64, from int, thr float64) (float64, bool) {
	for i := max(from, 0) + 1; i < len(vs); i++ {
		if vs[i-1] >= thr && vs[i] < thr {
			return interp(tms[i-1], tms[i], vs[i-1], vs[i], thr), true
		}
	}
	return 0, false
}

// CrossUp returns the linearly interpolated time at which vs first rises
// above thr at or after index from
func CrossUp(tms, vs []float64, from int, thr float64) (float64, bool) {
	for i := max(from, 0) + 1; i < len(vs); i++ {
		if vs[i-1] <= thr && vs[i] > thr {
			return interp(tms[i-1], tms[i], vs[i-1], vs[i], thr), true
		}
	}
	return 0, false
}

func interp(t0, t1, v0, v1, thr float64) float64 {
	return t0 + (t1-t0)*(thr-v0)/(v1-v0)
}

// Beats analyzes each action potential of a paced trace, with one window
// per onset running up to the next onset.
func Beats(tms, vs []float64, onsets []float64) ([]*AP, error) {
	aps := make([]*AP, 0, len(onsets))
	var errs []error
	for i, on := range onsets {
		end := 0.0
		if i+1 < len(onsets) {
			end = onsets[i+1]
		}
		ap, err := Analyze(tms, vs, on, end)
		if err != nil {
			errs = append(errs, fmt.Errorf("beat %d: %w", i, err))
			continue
		}
		aps = append(aps, ap)
	}
	return aps, errors.Join(errs...)
}
