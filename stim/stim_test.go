// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"testing"
)

func TestPulseTrain(t *testing.T) {
	pl := Pulse{}
	pl.Defaults()
	pl.Start = 10
	pl.Period = 500
	pl.N = 3
	if err := pl.Validate(); err != nil {
		t.Fatal(err)
	}

	tms := []float64{0, 9.99, 10, 10.5, 10.99, 11, 509, 510, 510.5, 1010.2, 1011, 1510, 2010}
	cors := []float64{0, 0, -52, -52, -52, 0, 0, -52, -52, -52, 0, 0, 0}
	for i, tm := range tms {
		if c := pl.Current(tm); c != cors[i] {
			t.Errorf("Current err: idx: %v, t: %v, cur: %v, cor: %v\n", i, tm, c, cors[i])
		}
	}

	beats := []int{0, 0, 1, 1, 1, 1, 1, 2, 2, 3, 3, 3, 3}
	for i, tm := range tms {
		if n := pl.NBeats(tm); n != beats[i] {
			t.Errorf("NBeats err: idx: %v, t: %v, n: %v, cor: %v\n", i, tm, n, beats[i])
		}
	}
	if k, ph := pl.Beat(1012); k != 2 || ph != 2 {
		t.Errorf("Beat err: k: %v, phase: %v\n", k, ph)
	}
	if on := pl.Onset(2); on != 1010 {
		t.Errorf("Onset err: %v\n", on)
	}
}

func TestSinglePulse(t *testing.T) {
	pl := Pulse{Amp: -52, Dur: 1}
	if err := pl.Validate(); err != nil {
		t.Fatal(err)
	}
	dt := 0.02
	n := 0
	for i := 0; i < 100000; i++ {
		if pl.Current(float64(i)*dt) != 0 {
			n++
		}
	}
	if n != 50 {
		t.Errorf("single 1 msec pulse must cover 50 steps of 0.02 msec, covers: %v\n", n)
	}
}

func TestBiphasic(t *testing.T) {
	pl := Pulse{}
	pl.Defaults()
	pl.Shape = Biphasic
	pl.Dur = 2
	if c := pl.Current(0.5); c != -52 {
		t.Errorf("first phase err: %v\n", c)
	}
	if c := pl.Current(1.5); c != 52 {
		t.Errorf("second phase err: %v\n", c)
	}
	if c := pl.Current(2); c != 0 {
		t.Errorf("after pulse err: %v\n", c)
	}
}

func TestPulseValidate(t *testing.T) {
	pl := Pulse{Amp: -52, Dur: 0, Period: -1, N: -1, Shape: ShapeN}
	if err := pl.Validate(); err == nil {
		t.Errorf("Validate must reject bad pulse\n")
	}
	pl = Pulse{Amp: -52, Dur: 5, Period: 2}
	if err := pl.Validate(); err == nil {
		t.Errorf("Validate must reject Period < Dur\n")
	}
	var sh Shape
	if err := sh.FromString("Biphasic"); err != nil || sh != Biphasic {
		t.Errorf("Shape FromString err: %v, %v\n", err, sh)
	}
}
