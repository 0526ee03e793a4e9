// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the reversal potentials that drive the ionic currents
of a cardiac myocyte, computed from intra- and extracellular concentrations
with the Nernst relation (and a permeability-weighted Goldman form for the
mixed K / Na channel underlying I_Ks).
*/
package chans

import "math"

// Conc holds the concentrations of the three ionic species, in mM,
// on one side of the membrane.
type Conc struct {
	Na float64 `desc:"sodium (Na+) concentration"`
	K  float64 `desc:"potassium (K+) concentration"`
	Ca float64 `desc:"calcium (Ca++) concentration"`
}

// SetAll sets all the values
func (cc *Conc) SetAll(na, k, ca float64) {
	cc.Na, cc.K, cc.Ca = na, k, ca
}

// Erev are the reversal potentials, in mV, for each channel class
type Erev struct {
	Na float64 `desc:"sodium reversal potential -- drives I_Na and I_bNa"`
	K  float64 `desc:"potassium reversal potential -- drives I_K1, I_to, I_Kr and I_pK"`
	Ca float64 `desc:"calcium reversal potential -- drives I_bCa"`
	Ks float64 `desc:"reversal potential of the slow delayed rectifier I_Ks, which is also permeable to Na+"`
}

// SetAll sets all the values
func (ev *Erev) SetAll(na, k, ca, ks float64) {
	ev.Na, ev.K, ev.Ca, ev.Ks = na, k, ca, ks
}

// Nernst returns the reversal potential for an ion of valence z given
// the RT/F factor (mV) and the outside and inside concentrations.
func Nernst(rtonf, z, out, in float64) float64 {
	return (rtonf / z) * math.Log(out/in)
}

// ErevParams are the parameters for computing reversal potentials
type ErevParams struct {
	RTONF float64 `def:"26.713761" desc:"R*T/F in mV -- normally set from the physical constants of the model"`
	PKNa  float64 `def:"0.03" desc:"relative permeability of the I_Ks channel to Na+ over K+"`
}

func (ep *ErevParams) Defaults() {
	ep.RTONF = 26.713761
	ep.PKNa = 0.03
}

// ErevFmConc computes all reversal potentials from inside and outside concentrations
func (ep *ErevParams) ErevFmConc(in, out *Conc, ev *Erev) {
	ev.Na = Nernst(ep.RTONF, 1, out.Na, in.Na)
	ev.K = Nernst(ep.RTONF, 1, out.K, in.K)
	ev.Ca = Nernst(ep.RTONF, 2, out.Ca, in.Ca)
	ev.Ks = ep.RTONF * math.Log((out.K+ep.PKNa*out.Na)/(in.K+ep.PKNa*in.Na))
}
