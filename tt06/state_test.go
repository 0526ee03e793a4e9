// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import (
	"math"
	"testing"
)

func TestStateVars(t *testing.T) {
	nms := StateVarNames()
	if len(nms) != 19 {
		t.Fatalf("must have 19 state vars, have: %v", len(nms))
	}
	st := NewState(Epicardial)
	vals := st.Vals(nil)
	for i, nm := range nms {
		v, err := st.VarByName(nm)
		if err != nil {
			t.Error(err)
		}
		if v != vals[i] {
			t.Errorf("%s: VarByName: %v != Vals: %v\n", nm, v, vals[i])
		}
	}
	if v, _ := st.VarByName("CaSR"); v != 3.64 {
		t.Errorf("CaSR init err: %v\n", v)
	}
	if err := st.SetVarByName("Nai", 10); err != nil || st.Nai != 10 {
		t.Errorf("SetVarByName err: %v, Nai: %v\n", err, st.Nai)
	}
	if _, err := st.VarByName("Vm"); err == nil {
		t.Errorf("VarByName must reject an unknown variable\n")
	}
	if err := st.SetVarByName("Vm", 0); err == nil {
		t.Errorf("SetVarByName must reject an unknown variable\n")
	}

	other := State{}
	if err := other.SetVals(vals); err != nil {
		t.Fatal(err)
	}
	if other != InitState(Epicardial) {
		t.Errorf("SetVals round trip err\n")
	}
	if err := other.SetVals(vals[:3]); err == nil {
		t.Errorf("SetVals must reject a short slice\n")
	}
}

func TestInitState(t *testing.T) {
	for ct := Epicardial; ct < CellTypeN; ct++ {
		st := NewState(ct)
		if err := st.CheckDomain(); err != nil {
			t.Errorf("%v: initial state out of domain: %v\n", ct, err)
		}
	}
	if v := NewState(Endocardial).V; v != -86.2 {
		t.Errorf("endocardial V init: %v\n", v)
	}
	if NewState(Endocardial) == nil || *NewState(Endocardial) != *NewState(MidMyocardial) {
		t.Errorf("endocardial and M cells share initial conditions\n")
	}
}

func TestStateChecks(t *testing.T) {
	st := NewState(Endocardial)
	st.Ki = math.Inf(1)
	if err := st.Finite(); err == nil {
		t.Errorf("Finite must catch Inf\n")
	}
	st.Init(Endocardial)
	st.V = math.NaN()
	if err := st.CheckDomain(); err == nil {
		t.Errorf("CheckDomain must catch NaN\n")
	}
	st.Init(Endocardial)
	st.H = 1.01
	if err := st.CheckDomain(); err == nil {
		t.Errorf("CheckDomain must catch a gate > 1\n")
	}
	st.Init(Endocardial)
	st.RPrime = -0.1
	if err := st.CheckDomain(); err == nil {
		t.Errorf("CheckDomain must catch RPrime < 0\n")
	}
	st.Init(Endocardial)
	st.CaSS = 0
	if err := st.CheckDomain(); err == nil {
		t.Errorf("CheckDomain must catch a zero concentration\n")
	}
}
