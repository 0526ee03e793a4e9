// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import "math"

///////////////////////////////////////////////////////////////////////
//  gates.go contains the voltage (and subspace Ca) dependent
//  gating kinetics, as closed-form functions of V

// GateRates are the steady-state value and time constant (msec)
// of one gate at a given membrane potential
type GateRates struct {
	Inf float64
	Tau float64
}

// RushLarsen returns the value of a gate y after dt msec of exponential
// relaxation toward inf with time constant tau.  The result is a convex
// combination of y and inf, so it stays within [0,1] for any dt > 0.
func RushLarsen(y, inf, tau, dt float64) float64 {
	return inf - (inf-y)*math.Exp(-dt/tau)
}

// RushLarsen returns the gate value y after dt msec
func (gr GateRates) RushLarsen(y, dt float64) float64 {
	return RushLarsen(y, gr.Inf, gr.Tau, dt)
}

// Gates holds the rates of all twelve gates
type Gates struct {
	Xr1   GateRates
	Xr2   GateRates
	Xs    GateRates
	M     GateRates
	H     GateRates
	J     GateRates
	D     GateRates
	F     GateRates
	F2    GateRates
	FCass GateRates
	S     GateRates
	R     GateRates
}

// GatesFmV computes the rates of all gates at membrane potential v,
// with fCass driven by subspace calcium cass
func (pars *Params) GatesFmV(v, cass float64, gt *Gates) {
	gt.Xr1 = Xr1Rates(v)
	gt.Xr2 = Xr2Rates(v)
	gt.Xs = XsRates(v)
	gt.M = MRates(v)
	gt.H = HRates(v)
	gt.J = JRates(v)
	gt.D = DRates(v)
	gt.F = FRates(v)
	gt.F2 = F2Rates(v)
	gt.FCass = FCassRates(cass)
	gt.S = SRates(v, pars.Type)
	gt.R = RRates(v)
}

// Update advances all gates in st by dt with the Rush-Larsen scheme
func (gt *Gates) Update(st *State, dt float64) {
	st.Xr1 = gt.Xr1.RushLarsen(st.Xr1, dt)
	st.Xr2 = gt.Xr2.RushLarsen(st.Xr2, dt)
	st.Xs = gt.Xs.RushLarsen(st.Xs, dt)
	st.M = gt.M.RushLarsen(st.M, dt)
	st.H = gt.H.RushLarsen(st.H, dt)
	st.J = gt.J.RushLarsen(st.J, dt)
	st.D = gt.D.RushLarsen(st.D, dt)
	st.F = gt.F.RushLarsen(st.F, dt)
	st.F2 = gt.F2.RushLarsen(st.F2, dt)
	st.FCass = gt.FCass.RushLarsen(st.FCass, dt)
	st.S = gt.S.RushLarsen(st.S, dt)
	st.R = gt.R.RushLarsen(st.R, dt)
}

// UpdateGates computes the rates at the current V and CaSS of st
// and advances all gates by dt
func (pars *Params) UpdateGates(st *State, dt float64) {
	var gt Gates
	pars.GatesFmV(st.V, st.CaSS, &gt)
	gt.Update(st, dt)
}

//////////////////////////////////////////////////////////////////////////////////////
//  I_Na

// MRates returns the rates of the I_Na activation gate m.
// The time constant is the product of the opening and closing functions.
func MRates(v float64) GateRates {
	am := 1 / (1 + math.Exp((-60-v)/5))
	bm := 0.1/(1+math.Exp((v+35)/5)) + 0.1/(1+math.Exp((v-50)/200))
	inf := 1 / (1 + math.Exp((-56.86-v)/9.03))
	return GateRates{Inf: inf * inf, Tau: am * bm}
}

// hjInf is the shared steady state of the h and j gates
func hjInf(v float64) float64 {
	x := 1 / (1 + math.Exp((v+71.55)/7.43))
	return x * x
}

// HAlphaBeta returns the opening and closing rates (1/msec) of the I_Na fast
// inactivation gate h -- there is no recovery above -40 mV
func HAlphaBeta(v float64) (alpha, beta float64) {
	if v >= -40 {
		return 0, 0.77 / (0.13 * (1 + math.Exp(-(v+10.66)/11.1)))
	}
	alpha = 0.057 * math.Exp(-(v+80)/6.8)
	beta = 2.7*math.Exp(0.079*v) + 3.1e5*math.Exp(0.3485*v)
	return
}

// HRates returns the rates of the I_Na fast inactivation gate h
func HRates(v float64) GateRates {
	a, b := HAlphaBeta(v)
	return GateRates{Inf: hjInf(v), Tau: 1 / (a + b)}
}

// JAlphaBeta returns the opening and closing rates (1/msec) of the I_Na slow
// inactivation gate j -- there is no recovery above -40 mV
func JAlphaBeta(v float64) (alpha, beta float64) {
	if v >= -40 {
		return 0, 0.6 * math.Exp(0.057*v) / (1 + math.Exp(-0.1*(v+32)))
	}
	alpha = (-2.5428e4*math.Exp(0.2444*v) - 6.948e-6*math.Exp(-0.04391*v)) * (v + 37.78) / (1 + math.Exp(0.311*(v+79.23)))
	beta = 0.02424 * math.Exp(-0.01052*v) / (1 + math.Exp(-0.1378*(v+40.14)))
	return
}

// JRates returns the rates of the I_Na slow inactivation gate j
func JRates(v float64) GateRates {
	a, b := JAlphaBeta(v)
	return GateRates{Inf: hjInf(v), Tau: 1 / (a + b)}
}

//////////////////////////////////////////////////////////////////////////////////////
//  I_Kr, I_Ks

// Xr1Rates returns the rates of the I_Kr activation gate
func Xr1Rates(v float64) GateRates {
	a := 450 / (1 + math.Exp((-45-v)/10))
	b := 6 / (1 + math.Exp((v+30)/11.5))
	return GateRates{Inf: 1 / (1 + math.Exp((-26-v)/7)), Tau: a * b}
}

// Xr2Rates returns the rates of the I_Kr inactivation gate
func Xr2Rates(v float64) GateRates {
	a := 3 / (1 + math.Exp((-60-v)/20))
	b := 1.12 / (1 + math.Exp((v-60)/20))
	return GateRates{Inf: 1 / (1 + math.Exp((v+88)/24)), Tau: a * b}
}

// XsRates returns the rates of the I_Ks activation gate
func XsRates(v float64) GateRates {
	a := 1400 / math.Sqrt(1+math.Exp((5-v)/6))
	b := 1 / (1 + math.Exp((v-35)/15))
	return GateRates{Inf: 1 / (1 + math.Exp((-5-v)/14)), Tau: a*b + 80}
}

//////////////////////////////////////////////////////////////////////////////////////
//  I_CaL

// DRates returns the rates of the I_CaL activation gate
func DRates(v float64) GateRates {
	a := 1.4/(1+math.Exp((-35-v)/13)) + 0.25
	b := 1.4 / (1 + math.Exp((v+5)/5))
	c := 1 / (1 + math.Exp((50-v)/20))
	return GateRates{Inf: 1 / (1 + math.Exp((-8-v)/7.5)), Tau: a*b + c}
}

// FRates returns the rates of the slow voltage-dependent I_CaL inactivation gate
func FRates(v float64) GateRates {
	vp := v + 27
	a := 1102.5 * math.Exp(-vp*vp/225)
	b := 200 / (1 + math.Exp((13-v)/10))
	c := 180/(1+math.Exp((v+30)/10)) + 20
	return GateRates{Inf: 1 / (1 + math.Exp((v+20)/7)), Tau: a + b + c}
}

// F2Rates returns the rates of the fast voltage-dependent I_CaL inactivation
// gate, which never inactivates more than 67%
func F2Rates(v float64) GateRates {
	vp := v + 25
	a := 600 * math.Exp(-vp*vp/170)
	b := 31 / (1 + math.Exp((25-v)/10))
	c := 16 / (1 + math.Exp((v+30)/10))
	return GateRates{Inf: 0.67/(1+math.Exp((v+35)/7)) + 0.33, Tau: a + b + c}
}

// FCassRates returns the rates of the I_CaL inactivation gate driven by
// subspace calcium cass (mM) -- not voltage dependent
func FCassRates(cass float64) GateRates {
	x := cass / 0.05
	den := 1 + x*x
	return GateRates{Inf: 0.6/den + 0.4, Tau: 80/den + 2}
}

//////////////////////////////////////////////////////////////////////////////////////
//  I_to

// RRates returns the rates of the I_to activation gate
func RRates(v float64) GateRates {
	vp := v + 40
	return GateRates{Inf: 1 / (1 + math.Exp((20-v)/6)), Tau: 9.5*math.Exp(-vp*vp/1800) + 0.8}
}

// SRates returns the rates of the I_to inactivation gate, which recovers
// much more slowly in endocardial cells than in epicardial and M cells
func SRates(v float64, ct CellType) GateRates {
	if ct == Endocardial {
		vp := v + 67
		return GateRates{Inf: 1 / (1 + math.Exp((v+28)/5)), Tau: 1000*math.Exp(-vp*vp/1000) + 8}
	}
	vp := v + 45
	return GateRates{Inf: 1 / (1 + math.Exp((v+20)/5)), Tau: 85*math.Exp(-vp*vp/320) + 5/(1+math.Exp((v-20)/5)) + 3}
}
