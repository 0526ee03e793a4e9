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

///////////////////////////////////////////////////////////////////////
//  currents.go contains the current calculator: every current is
//  a pure function of the state, the reversal potentials and the params.
//  Valid inputs are V within roughly [-100, 60] mV and all
//  concentrations > 0 -- this is a precondition, not checked.

// Currents are the sixteen currents computed on one step.
// Transmembrane currents are in pA/pF (outward positive),
// intracellular Ca++ fluxes (Iup, Ileak, Ixfer, Irel) in mM/ms.
type Currents struct {
	INa   float64 `desc:"fast sodium current"`
	ICaL  float64 `desc:"L-type calcium current"`
	Ito   float64 `desc:"transient outward potassium current"`
	IKr   float64 `desc:"rapid delayed rectifier potassium current"`
	IKs   float64 `desc:"slow delayed rectifier potassium current"`
	IK1   float64 `desc:"inward rectifier potassium current"`
	INaCa float64 `desc:"Na+/Ca++ exchanger current"`
	INaK  float64 `desc:"Na+/K+ pump current"`
	IpCa  float64 `desc:"plateau calcium current"`
	IpK   float64 `desc:"plateau potassium current"`
	IbNa  float64 `desc:"background sodium current"`
	IbCa  float64 `desc:"background calcium current"`
	Iup   float64 `desc:"SERCA uptake from cytoplasm into SR"`
	Ileak float64 `desc:"SR leak into cytoplasm"`
	Ixfer float64 `desc:"transfer from subspace to cytoplasm"`
	Irel  float64 `desc:"SR release into subspace"`
	O     float64 `desc:"ryanodine receptor open probability that drove Irel"`
}

// Itot returns the total transmembrane ionic current, in pA/pF.
// The intracellular fluxes only move Ca++ between compartments and are excluded.
func (cur *Currents) Itot() float64 {
	return cur.INa + cur.ICaL + cur.Ito + cur.IKr + cur.IKs + cur.IK1 +
		cur.INaCa + cur.INaK + cur.IpCa + cur.IpK + cur.IbNa + cur.IbCa
}

// CurrentVarFunc returns a pointer to one variable of the Currents
type CurrentVarFunc func(cur *Currents) *float64

// CurrentVars is the ordered registry of Currents variable names
var CurrentVars = currentVars()

func currentVars() *ordmap.Map[string, CurrentVarFunc] {
	om := ordmap.New[string, CurrentVarFunc]()
	om.Add("INa", func(cur *Currents) *float64 { return &cur.INa })
	om.Add("ICaL", func(cur *Currents) *float64 { return &cur.ICaL })
	om.Add("Ito", func(cur *Currents) *float64 { return &cur.Ito })
	om.Add("IKr", func(cur *Currents) *float64 { return &cur.IKr })
	om.Add("IKs", func(cur *Currents) *float64 { return &cur.IKs })
	om.Add("IK1", func(cur *Currents) *float64 { return &cur.IK1 })
	om.Add("INaCa", func(cur *Currents) *float64 { return &cur.INaCa })
	om.Add("INaK", func(cur *Currents) *float64 { return &cur.INaK })
	om.Add("IpCa", func(cur *Currents) *float64 { return &cur.IpCa })
	om.Add("IpK", func(cur *Currents) *float64 { return &cur.IpK })
	om.Add("IbNa", func(cur *Currents) *float64 { return &cur.IbNa })
	om.Add("IbCa", func(cur *Currents) *float64 { return &cur.IbCa })
	om.Add("Iup", func(cur *Currents) *float64 { return &cur.Iup })
	om.Add("Ileak", func(cur *Currents) *float64 { return &cur.Ileak })
	om.Add("Ixfer", func(cur *Currents) *float64 { return &cur.Ixfer })
	om.Add("Irel", func(cur *Currents) *float64 { return &cur.Irel })
	om.Add("O", func(cur *Currents) *float64 { return &cur.O })
	return om
}

// CurrentVarNames returns the names of all Currents variables, in order
func CurrentVarNames() []string {
	nms := make([]string, CurrentVars.Len())
	for i, kv := range CurrentVars.Order {
		nms[i] = kv.Key
	}
	return nms
}

// VarByName returns the value of named current
func (cur *Currents) VarByName(name string) (float64, error) {
	idx, ok := CurrentVars.Map[name]
	if !ok {
		return math.NaN(), fmt.Errorf("tt06.Currents VarByName: variable name: %v not valid", name)
	}
	return *CurrentVars.Order[idx].Val(cur), nil
}

// ErevFmState computes the reversal potentials from the concentrations of st
func (pars *Params) ErevFmState(st *State, ev *chans.Erev) {
	in := st.Conc()
	out := pars.Ext.Conc()
	pars.Erev.ErevFmConc(&in, &out, ev)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Individual currents

// INa is the fast sodium current
func (pars *Params) INa(st *State, ev *chans.Erev) float64 {
	return pars.Gbar.Na * st.M * st.M * st.M * st.H * st.J * (st.V - ev.Na)
}

// ICaL is the L-type calcium current, with the Goldman-Hodgkin-Katz driving
// force of a divalent ion shifted by 15 mV.  At V = 15 mV the 0/0 form is
// replaced by its limit.
func (pars *Params) ICaL(st *State) float64 {
	pp := &pars.Phys
	g := pars.Gbar.CaL * st.D * st.F * st.F2 * st.FCass
	vs := st.V - 15
	if vs == 0 {
		return g * 2 * pp.F * (0.25*st.CaSS - pars.Ext.Cao)
	}
	x := 2 * vs * pp.FONRT
	return g * 4 * vs * pp.F * pp.FONRT * (0.25*st.CaSS*math.Exp(x) - pars.Ext.Cao) / math.Expm1(x)
}

// Ito is the transient outward potassium current
func (pars *Params) Ito(st *State, ev *chans.Erev) float64 {
	return pars.Gbar.To * st.R * st.S * (st.V - ev.K)
}

// IKr is the rapid delayed rectifier potassium current
func (pars *Params) IKr(st *State, ev *chans.Erev) float64 {
	return pars.Gbar.Kr * pars.Ext.SqrtKo * st.Xr1 * st.Xr2 * (st.V - ev.K)
}

// IKs is the slow delayed rectifier current, driven by the mixed K+ / Na+ reversal potential
func (pars *Params) IKs(st *State, ev *chans.Erev) float64 {
	return pars.Gbar.Ks * st.Xs * st.Xs * (st.V - ev.Ks)
}

// IK1 is the inward rectifier potassium current, which has no gate:
// rectification is an instantaneous function of V - EK
func (pars *Params) IK1(st *State, ev *chans.Erev) float64 {
	dv := st.V - ev.K
	ak := 0.1 / (1 + math.Exp(0.06*(dv-200)))
	bk := (3*math.Exp(0.0002*(dv+100)) + math.Exp(0.1*(dv-10))) / (1 + math.Exp(-0.5*dv))
	return pars.Gbar.K1 * ak / (ak + bk) * dv
}

// INaCa is the Na+/Ca++ exchanger current
func (pars *Params) INaCa(st *State) float64 {
	np := &pars.NaCa
	ep := &pars.Ext
	vf := st.V * pars.Phys.FONRT
	en := math.Exp(np.Gamma * vf)
	en1 := math.Exp((np.Gamma - 1) * vf)
	nai3 := st.Nai * st.Nai * st.Nai
	den := (np.KmNai*np.KmNai*np.KmNai + ep.Nao3) * (np.KmCa + ep.Cao) * (1 + np.Ksat*en1)
	return np.KNaCa * (en*nai3*ep.Cao - en1*ep.Nao3*st.Cai*np.Alpha) / den
}

// INaK is the Na+/K+ pump current
func (pars *Params) INaK(st *State) float64 {
	np := &pars.NaK
	ko := pars.Ext.Ko
	vf := st.V * pars.Phys.FONRT
	rec := 1 + 0.1245*math.Exp(-0.1*vf) + 0.0353*math.Exp(-vf)
	return np.PNaK * ko / (ko + np.KmK) * st.Nai / (st.Nai + np.KmNa) / rec
}

// IpCa is the plateau calcium current
func (pars *Params) IpCa(st *State) float64 {
	return pars.Gbar.PCa * st.Cai / (pars.Gbar.KPCa + st.Cai)
}

// IpK is the plateau potassium current
func (pars *Params) IpK(st *State, ev *chans.Erev) float64 {
	return pars.Gbar.PK / (1 + math.Exp((25-st.V)/5.98)) * (st.V - ev.K)
}

// IbNa is the background sodium current
func (pars *Params) IbNa(st *State, ev *chans.Erev) float64 {
	return pars.Gbar.BNa * (st.V - ev.Na)
}

// IbCa is the background calcium current
func (pars *Params) IbCa(st *State, ev *chans.Erev) float64 {
	return pars.Gbar.BCa * (st.V - ev.Ca)
}

// CurrentsFmState computes the twelve transmembrane currents of st
// given the reversal potentials ev.  The intracellular fluxes are
// computed separately by FluxesFmState.
func (pars *Params) CurrentsFmState(st *State, ev *chans.Erev, cur *Currents) {
	cur.INa = pars.INa(st, ev)
	cur.ICaL = pars.ICaL(st)
	cur.Ito = pars.Ito(st, ev)
	cur.IKr = pars.IKr(st, ev)
	cur.IKs = pars.IKs(st, ev)
	cur.IK1 = pars.IK1(st, ev)
	cur.INaCa = pars.INaCa(st)
	cur.INaK = pars.INaK(st)
	cur.IpCa = pars.IpCa(st)
	cur.IpK = pars.IpK(st, ev)
	cur.IbNa = pars.IbNa(st, ev)
	cur.IbCa = pars.IbCa(st, ev)
}
