// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import (
	"errors"
	"fmt"
	"math"

	"github.com/emer/tentusscher/chans"
)

///////////////////////////////////////////////////////////////////////
//  params.go contains the configuration of the model, per cell type

// PhysParams are the physical constants
type PhysParams struct {
	R     float64 `def:"8314.472" desc:"gas constant, in mJ / (K mol)"`
	T     float64 `def:"310" desc:"temperature, in K"`
	F     float64 `def:"96485.3415" desc:"Faraday constant, in C / mol"`
	RTONF float64 `inactive:"+" desc:"R*T/F, in mV -- computed in Update"`
	FONRT float64 `inactive:"+" desc:"F/(R*T), in 1/mV -- computed in Update"`
}

func (pp *PhysParams) Defaults() {
	pp.R = 8314.472
	pp.T = 310
	pp.F = 96485.3415
	pp.Update()
}

func (pp *PhysParams) Update() {
	pp.RTONF = pp.R * pp.T / pp.F
	pp.FONRT = pp.F / (pp.R * pp.T)
}

// CellParams are the capacitance and compartment volumes of the cell
type CellParams struct {
	Cm  float64 `def:"0.185" desc:"cell capacitance, in uF -- converts current densities (pA/pF) into ion fluxes"`
	Chi float64 `def:"1400" desc:"surface area to volume ratio, in 1/cm -- not used by the single cell, carried for tissue-level solvers that scale the membrane equation by Chi * Cm"`
	VC  float64 `def:"0.016404" desc:"cytoplasmic volume, in uL"`
	VSR float64 `def:"0.001094" desc:"sarcoplasmic reticulum volume, in uL"`
	VSS float64 `def:"0.00005468" desc:"subspace volume, in uL"`

	CmVcF    float64 `view:"-" desc:"Cm / (VC * F) -- current to cytoplasmic monovalent flux"`
	CmVcF2   float64 `view:"-" desc:"Cm / (2 * VC * F) -- current to cytoplasmic Ca flux"`
	CmVssF2  float64 `view:"-" desc:"Cm / (2 * VSS * F) -- current to subspace Ca flux"`
	VsrOnVc  float64 `view:"-" desc:"VSR / VC"`
	VsrOnVss float64 `view:"-" desc:"VSR / VSS"`
	VcOnVss  float64 `view:"-" desc:"VC / VSS"`
}

func (cp *CellParams) Defaults() {
	cp.Cm = 0.185
	cp.Chi = 1400
	cp.VC = 0.016404
	cp.VSR = 0.001094
	cp.VSS = 0.00005468
}

// Update computes the derived flux factors, given the Faraday constant
func (cp *CellParams) Update(f float64) {
	cp.CmVcF = cp.Cm / (cp.VC * f)
	cp.CmVcF2 = cp.Cm / (2 * cp.VC * f)
	cp.CmVssF2 = cp.Cm / (2 * cp.VSS * f)
	cp.VsrOnVc = cp.VSR / cp.VC
	cp.VsrOnVss = cp.VSR / cp.VSS
	cp.VcOnVss = cp.VC / cp.VSS
}

// ExtParams are the extracellular concentrations, which are held fixed
type ExtParams struct {
	Ko  float64 `def:"5.4" desc:"extracellular potassium (K+) concentration, in mM"`
	Nao float64 `def:"140" desc:"extracellular sodium (Na+) concentration, in mM"`
	Cao float64 `def:"2" desc:"extracellular calcium (Ca++) concentration, in mM"`

	SqrtKo float64 `view:"-" desc:"sqrt(Ko / 5.4) -- K+ dependence of I_Kr"`
	Nao3   float64 `view:"-" desc:"Nao^3"`
}

func (ep *ExtParams) Defaults() {
	ep.Ko = 5.4
	ep.Nao = 140
	ep.Cao = 2
}

func (ep *ExtParams) Update() {
	ep.SqrtKo = math.Sqrt(ep.Ko / 5.4)
	ep.Nao3 = ep.Nao * ep.Nao * ep.Nao
}

// Conc returns the extracellular concentrations
func (ep *ExtParams) Conc() chans.Conc {
	return chans.Conc{Na: ep.Nao, K: ep.Ko, Ca: ep.Cao}
}

// GbarParams are the maximal conductances of the currents.
// Gto and GKs depend on the CellType.
type GbarParams struct {
	Na   float64 `def:"14.838" desc:"maximal I_Na (fast sodium) conductance, in nS/pF"`
	K1   float64 `def:"5.405" desc:"maximal I_K1 (inward rectifier potassium) conductance, in nS/pF"`
	To   float64 `def:"0.294,0.073" desc:"maximal I_to (transient outward potassium) conductance, in nS/pF -- 0.294 for epicardial and M cells, 0.073 for endocardial"`
	Kr   float64 `def:"0.153" desc:"maximal I_Kr (rapid delayed rectifier potassium) conductance, in nS/pF"`
	Ks   float64 `def:"0.392,0.098" desc:"maximal I_Ks (slow delayed rectifier potassium) conductance, in nS/pF -- 0.392 for epicardial and endocardial, 0.098 for M cells"`
	PKNa float64 `def:"0.03" desc:"relative I_Ks permeability to Na+ over K+"`
	CaL  float64 `def:"3.98e-5" desc:"maximal I_CaL (L-type calcium) permeability, in cm / (ms uF)"`
	PK   float64 `def:"0.0146" desc:"maximal I_pK (plateau potassium) conductance, in nS/pF"`
	PCa  float64 `def:"0.1238" desc:"maximal I_pCa (plateau calcium) current, in pA/pF"`
	KPCa float64 `def:"0.0005" desc:"half-saturation constant of I_pCa for intracellular Ca++, in mM"`
	BNa  float64 `def:"0.00029" desc:"maximal I_bNa (background sodium) conductance, in nS/pF"`
	BCa  float64 `def:"0.000592" desc:"maximal I_bCa (background calcium) conductance, in nS/pF"`
}

func (gp *GbarParams) Defaults() {
	gp.Na = 14.838
	gp.K1 = 5.405
	gp.To = 0.294
	gp.Kr = 0.153
	gp.Ks = 0.392
	gp.PKNa = 0.03
	gp.CaL = 3.98e-5
	gp.PK = 0.0146
	gp.PCa = 0.1238
	gp.KPCa = 0.0005
	gp.BNa = 0.00029
	gp.BCa = 0.000592
}

// SetCellType sets the conductances that differ between cell types
func (gp *GbarParams) SetCellType(ct CellType) {
	switch ct {
	case Endocardial:
		gp.To = 0.073
		gp.Ks = 0.392
	case MidMyocardial:
		gp.To = 0.294
		gp.Ks = 0.098
	default:
		gp.To = 0.294
		gp.Ks = 0.392
	}
}

// NaCaParams are the parameters of the Na+/Ca++ exchanger current I_NaCa
type NaCaParams struct {
	KNaCa float64 `def:"1000" desc:"maximal I_NaCa, in pA/pF"`
	Gamma float64 `def:"0.35" desc:"voltage dependence parameter of I_NaCa"`
	KmCa  float64 `def:"1.38" desc:"half-saturation constant for Ca++, in mM"`
	KmNai float64 `def:"87.5" desc:"half-saturation constant for Na+, in mM"`
	Ksat  float64 `def:"0.1" desc:"saturation factor of I_NaCa at very negative potentials"`
	Alpha float64 `def:"2.5" desc:"factor enhancing the outward nature of I_NaCa"`
}

func (np *NaCaParams) Defaults() {
	np.KNaCa = 1000
	np.Gamma = 0.35
	np.KmCa = 1.38
	np.KmNai = 87.5
	np.Ksat = 0.1
	np.Alpha = 2.5
}

// NaKParams are the parameters of the Na+/K+ pump current I_NaK
type NaKParams struct {
	PNaK float64 `def:"2.724" desc:"maximal I_NaK, in pA/pF"`
	KmK  float64 `def:"1" desc:"half-saturation constant for extracellular K+, in mM"`
	KmNa float64 `def:"40" desc:"half-saturation constant for intracellular Na+, in mM"`
}

func (np *NaKParams) Defaults() {
	np.PNaK = 2.724
	np.KmK = 1
	np.KmNa = 40
}

// Params are all the parameters of the ten Tusscher 2006 model for one CellType.
// Construct with NewParams; after that the value is read-only --
// nothing in this package writes to a *Params outside of
// Defaults, Update and NewParams.
type Params struct {
	Type CellType         `inactive:"+" desc:"cell type these params were built for -- selects Gto, GKs, the I_to inactivation kinetics and the initial conditions"`
	Phys PhysParams       `view:"inline" desc:"physical constants"`
	Cell CellParams       `view:"inline" desc:"capacitance and compartment volumes"`
	Ext  ExtParams        `view:"inline" desc:"extracellular concentrations"`
	Gbar GbarParams       `view:"inline" desc:"maximal conductances"`
	NaCa NaCaParams       `view:"inline" desc:"Na+/Ca++ exchanger"`
	NaK  NaKParams        `view:"inline" desc:"Na+/K+ pump"`
	SR   SRParams         `view:"inline" desc:"sarcoplasmic reticulum uptake, release, leak and subspace transfer"`
	Buf  BufParams        `view:"inline" desc:"rapid calcium buffering in each compartment"`
	Erev chans.ErevParams `view:"-" desc:"reversal potential parameters -- set from Phys and Gbar in Update"`
}

// NewParams returns validated default params for given cell type
func NewParams(ct CellType) (*Params, error) {
	if ct < 0 || ct >= CellTypeN {
		return nil, fmt.Errorf("tt06.NewParams: invalid CellType: %v", ct)
	}
	pars := &Params{Type: ct}
	pars.Defaults()
	if err := pars.Validate(); err != nil {
		return nil, err
	}
	return pars, nil
}

// Defaults sets the published values for the current Type
func (pars *Params) Defaults() {
	pars.Phys.Defaults()
	pars.Cell.Defaults()
	pars.Ext.Defaults()
	pars.Gbar.Defaults()
	pars.Gbar.SetCellType(pars.Type)
	pars.NaCa.Defaults()
	pars.NaK.Defaults()
	pars.SR.Defaults()
	pars.Buf.Defaults()
	pars.Update()
}

// Update must be called after any changes to parameters
func (pars *Params) Update() {
	pars.Phys.Update()
	pars.Cell.Update(pars.Phys.F)
	pars.Ext.Update()
	pars.Erev.RTONF = pars.Phys.RTONF
	pars.Erev.PKNa = pars.Gbar.PKNa
}

// Validate returns an error listing every parameter that is out of range:
// all constants must be finite and non-negative, and those that
// are divided by or take a logarithm must be strictly positive.
func (pars *Params) Validate() error {
	var errs []error
	nonNeg := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, fmt.Errorf("tt06.Params: %s must be finite and >= 0, is: %g", name, v))
		}
	}
	pos := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			errs = append(errs, fmt.Errorf("tt06.Params: %s must be finite and > 0, is: %g", name, v))
		}
	}
	if pars.Type < 0 || pars.Type >= CellTypeN {
		errs = append(errs, fmt.Errorf("tt06.Params: invalid Type: %v", pars.Type))
	}

	pos("Phys.R", pars.Phys.R)
	pos("Phys.T", pars.Phys.T)
	pos("Phys.F", pars.Phys.F)

	pos("Cell.Cm", pars.Cell.Cm)
	pos("Cell.Chi", pars.Cell.Chi)
	pos("Cell.VC", pars.Cell.VC)
	pos("Cell.VSR", pars.Cell.VSR)
	pos("Cell.VSS", pars.Cell.VSS)

	pos("Ext.Ko", pars.Ext.Ko)
	pos("Ext.Nao", pars.Ext.Nao)
	pos("Ext.Cao", pars.Ext.Cao)

	nonNeg("Gbar.Na", pars.Gbar.Na)
	nonNeg("Gbar.K1", pars.Gbar.K1)
	nonNeg("Gbar.To", pars.Gbar.To)
	nonNeg("Gbar.Kr", pars.Gbar.Kr)
	nonNeg("Gbar.Ks", pars.Gbar.Ks)
	nonNeg("Gbar.PKNa", pars.Gbar.PKNa)
	nonNeg("Gbar.CaL", pars.Gbar.CaL)
	nonNeg("Gbar.PK", pars.Gbar.PK)
	nonNeg("Gbar.PCa", pars.Gbar.PCa)
	nonNeg("Gbar.KPCa", pars.Gbar.KPCa)
	nonNeg("Gbar.BNa", pars.Gbar.BNa)
	nonNeg("Gbar.BCa", pars.Gbar.BCa)

	nonNeg("NaCa.KNaCa", pars.NaCa.KNaCa)
	nonNeg("NaCa.KmCa", pars.NaCa.KmCa)
	nonNeg("NaCa.KmNai", pars.NaCa.KmNai)
	nonNeg("NaCa.Ksat", pars.NaCa.Ksat)
	nonNeg("NaCa.Alpha", pars.NaCa.Alpha)
	if g := pars.NaCa.Gamma; math.IsNaN(g) || g < 0 || g > 1 {
		errs = append(errs, fmt.Errorf("tt06.Params: NaCa.Gamma must be in [0,1], is: %g", g))
	}

	nonNeg("NaK.PNaK", pars.NaK.PNaK)
	nonNeg("NaK.KmK", pars.NaK.KmK)
	nonNeg("NaK.KmNa", pars.NaK.KmNa)

	nonNeg("SR.VmaxUp", pars.SR.VmaxUp)
	nonNeg("SR.Kup", pars.SR.Kup)
	nonNeg("SR.Vrel", pars.SR.Vrel)
	nonNeg("SR.K1p", pars.SR.K1p)
	nonNeg("SR.K2p", pars.SR.K2p)
	nonNeg("SR.K3", pars.SR.K3)
	nonNeg("SR.K4", pars.SR.K4)
	nonNeg("SR.EC", pars.SR.EC)
	pos("SR.MinSR", pars.SR.MinSR)
	pos("SR.MaxSR", pars.SR.MaxSR)
	if pars.SR.MaxSR < pars.SR.MinSR {
		errs = append(errs, fmt.Errorf("tt06.Params: SR.MaxSR: %g must be >= SR.MinSR: %g", pars.SR.MaxSR, pars.SR.MinSR))
	}
	nonNeg("SR.Vleak", pars.SR.Vleak)
	nonNeg("SR.Vxfer", pars.SR.Vxfer)

	nonNeg("Buf.BufC", pars.Buf.BufC)
	pos("Buf.KBufC", pars.Buf.KBufC)
	nonNeg("Buf.BufSR", pars.Buf.BufSR)
	pos("Buf.KBufSR", pars.Buf.KBufSR)
	nonNeg("Buf.BufSS", pars.Buf.BufSS)
	pos("Buf.KBufSS", pars.Buf.KBufSS)

	return errors.Join(errs...)
}
