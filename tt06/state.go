// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import (
	"fmt"
	"math"

	"github.com/emer/tentusscher/chans"
	"github.com/goki/kigen/ordmap"
)

// State holds the 19 state variables of one cell.
// All values are plain float64 so divergence can be detected
// with Finite, and domain errors with CheckDomain.
// Only Params.Step (and the Update* methods it calls) write to a State.
type State struct {

	// membrane potential, in mV
	V float64

	////////////////////////////
	// Gates -- all dimensionless, in [0,1]

	// activation gate of the rapid delayed rectifier I_Kr
	Xr1 float64

	// inactivation gate of the rapid delayed rectifier I_Kr
	Xr2 float64

	// activation gate of the slow delayed rectifier I_Ks
	Xs float64

	// activation gate of the fast sodium current I_Na
	M float64

	// fast inactivation gate of I_Na
	H float64

	// slow inactivation gate of I_Na
	J float64

	// activation gate of the L-type calcium current I_CaL
	D float64

	// slow voltage-dependent inactivation gate of I_CaL
	F float64

	// fast voltage-dependent inactivation gate of I_CaL
	F2 float64

	// subspace calcium-dependent inactivation gate of I_CaL
	FCass float64

	// inactivation gate of the transient outward current I_to
	S float64

	// activation gate of the transient outward current I_to
	R float64

	////////////////////////////
	// Concentrations -- all in mM, > 0

	// free cytoplasmic Ca++
	Cai float64

	// free sarcoplasmic reticulum Ca++
	CaSR float64

	// free subspace Ca++
	CaSS float64

	// intracellular Na+
	Nai float64

	// intracellular K+
	Ki float64

	// fraction of recovered (closed, not inactivated) ryanodine receptors, in [0,1]
	RPrime float64
}

// InitState returns the initial conditions for given cell type.
// Epicardial values are those of the Niederer et al. (2011) benchmark,
// endocardial and M cell values those of the ten Tusscher reference code.
func InitState(ct CellType) State {
	if ct == Epicardial {
		return State{
			V:      -85.23,
			Xr1:    0.00621,
			Xr2:    0.4712,
			Xs:     0.0095,
			M:      0.00172,
			H:      0.7444,
			J:      0.7045,
			D:      3.373e-5,
			F:      0.7888,
			F2:     0.9755,
			FCass:  0.9953,
			S:      0.999998,
			R:      2.42e-8,
			Cai:    0.000126,
			CaSR:   3.64,
			CaSS:   0.00036,
			Nai:    8.604,
			Ki:     136.89,
			RPrime: 0.9073,
		}
	}
	return State{
		V:      -86.2,
		Xr1:    0,
		Xr2:    1,
		Xs:     0,
		M:      0,
		H:      0.75,
		J:      0.75,
		D:      0,
		F:      1,
		F2:     1,
		FCass:  1,
		S:      1,
		R:      0,
		Cai:    0.00007,
		CaSR:   1.3,
		CaSS:   0.00007,
		Nai:    7.67,
		Ki:     138.3,
		RPrime: 1,
	}
}

// NewState returns a new State initialized for given cell type
func NewState(ct CellType) *State {
	st := &State{}
	st.Init(ct)
	return st
}

// Init sets the state to the initial conditions of given cell type
func (st *State) Init(ct CellType) {
	*st = InitState(ct)
}

// Conc returns the intracellular concentrations, for reversal potentials
func (st *State) Conc() chans.Conc {
	return chans.Conc{Na: st.Nai, K: st.Ki, Ca: st.Cai}
}

//////////////////////////////////////////////////////////////////////////////////////
//  Named variables

// StateVarFunc returns a pointer to one variable of the State
type StateVarFunc func(st *State) *float64

// StateVars is the ordered registry of State variable names,
// in the order used by Vals, SetVals and trace recording.
var StateVars = stateVars()

func stateVars() *ordmap.Map[string, StateVarFunc] {
	om := ordmap.New[string, StateVarFunc]()
	om.Add("V", func(st *State) *float64 { return &st.V })
	om.Add("Xr1", func(st *State) *float64 { return &st.Xr1 })
	om.Add("Xr2", func(st *State) *float64 { return &st.Xr2 })
	om.Add("Xs", func(st *State) *float64 { return &st.Xs })
	om.Add("M", func(st *State) *float64 { return &st.M })
	om.Add("H", func(st *State) *float64 { return &st.H })
	om.Add("J", func(st *State) *float64 { return &st.J })
	om.Add("D", func(st *State) *float64 { return &st.D })
	om.Add("F", func(st *State) *float64 { return &st.F })
	om.Add("F2", func(st *State) *float64 { return &st.F2 })
	om.Add("FCass", func(st *State) *float64 { return &st.FCass })
	om.Add("S", func(st *State) *float64 { return &st.S })
	om.Add("R", func(st *State) *float64 { return &st.R })
	om.Add("Cai", func(st *State) *float64 { return &st.Cai })
	om.Add("CaSR", func(st *State) *float64 { return &st.CaSR })
	om.Add("CaSS", func(st *State) *float64 { return &st.CaSS })
	om.Add("Nai", func(st *State) *float64 { return &st.Nai })
	om.Add("Ki", func(st *State) *float64 { return &st.Ki })
	om.Add("RPrime", func(st *State) *float64 { return &st.RPrime })
	return om
}

// gateVars are the names of the twelve gating variables
var gateVars = []string{"Xr1", "Xr2", "Xs", "M", "H", "J", "D", "F", "F2", "FCass", "S", "R"}

// concVars are the names of the concentration variables
var concVars = []string{"Cai", "CaSR", "CaSS", "Nai", "Ki"}

// StateVarNames returns the names of all State variables, in order
func StateVarNames() []string {
	nms := make([]string, StateVars.Len())
	for i, kv := range StateVars.Order {
		nms[i] = kv.Key
	}
	return nms
}

// StateVarIndex returns the index of named variable in StateVars
func StateVarIndex(name string) (int, error) {
	idx, ok := StateVars.Map[name]
	if !ok {
		return -1, fmt.Errorf("tt06.State VarByName: variable name: %v not valid", name)
	}
	return idx, nil
}

// VarByName returns the value of named variable
func (st *State) VarByName(name string) (float64, error) {
	idx, err := StateVarIndex(name)
	if err != nil {
		return math.NaN(), err
	}
	return *StateVars.Order[idx].Val(st), nil
}

// SetVarByName sets the value of named variable
func (st *State) SetVarByName(name string, val float64) error {
	idx, err := StateVarIndex(name)
	if err != nil {
		return err
	}
	*StateVars.Order[idx].Val(st) = val
	return nil
}

// Vals appends all variable values, in StateVars order, to vals
// (which can be nil or a reused slice with 0 length).
func (st *State) Vals(vals []float64) []float64 {
	for _, kv := range StateVars.Order {
		vals = append(vals, *kv.Val(st))
	}
	return vals
}

// SetVals sets all variables from vals, in StateVars order
func (st *State) SetVals(vals []float64) error {
	if len(vals) != StateVars.Len() {
		return fmt.Errorf("tt06.State SetVals: got %d values, need %d", len(vals), StateVars.Len())
	}
	for i, kv := range StateVars.Order {
		*kv.Val(st) = vals[i]
	}
	return nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  Checks

// Finite returns an error naming the first variable that is NaN or Inf,
// which is the signature of a time step too large for the explicit updates.
func (st *State) Finite() error {
	for _, kv := range StateVars.Order {
		v := *kv.Val(st)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("tt06.State: %s is not finite: %g", kv.Key, v)
		}
	}
	return nil
}

// CheckDomain returns an error naming the first variable outside of its
// valid domain: gates and RPrime in [0,1], concentrations > 0.
// These are not expected with dt <= MaxStableDt and indicate
// either a too-large step or a bug.
func (st *State) CheckDomain() error {
	if err := st.Finite(); err != nil {
		return err
	}
	for _, nm := range gateVars {
		v, _ := st.VarByName(nm)
		if v < 0 || v > 1 {
			return fmt.Errorf("tt06.State: gate %s out of [0,1]: %g", nm, v)
		}
	}
	if st.RPrime < 0 || st.RPrime > 1 {
		return fmt.Errorf("tt06.State: RPrime out of [0,1]: %g", st.RPrime)
	}
	for _, nm := range concVars {
		v, _ := st.VarByName(nm)
		if v <= 0 {
			return fmt.Errorf("tt06.State: concentration %s not positive: %g", nm, v)
		}
	}
	return nil
}
