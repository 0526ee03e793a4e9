// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import "math"

///////////////////////////////////////////////////////////////////////
//  calcium.go contains the sarcoplasmic reticulum release, uptake,
//  leak and subspace transfer, the rapid buffering of Ca++, and the
//  concentration updates

// SRParams are the parameters of sarcoplasmic reticulum (SR) calcium handling
type SRParams struct {
	VmaxUp float64 `def:"0.006375" desc:"maximal SERCA uptake rate I_up, in mM/ms"`
	Kup    float64 `def:"0.00025" desc:"half-saturation constant of I_up, in mM"`
	Vrel   float64 `def:"0.102" desc:"maximal release rate I_rel through open ryanodine receptors, in 1/ms"`
	K1p    float64 `def:"0.15" desc:"ryanodine receptor opening rate constant, before scaling by kCaSR, in 1/(mM^2 ms)"`
	K2p    float64 `def:"0.045" desc:"ryanodine receptor inactivation rate constant, before scaling by kCaSR, in 1/(mM ms)"`
	K3     float64 `def:"0.06" desc:"ryanodine receptor closing rate, in 1/ms"`
	K4     float64 `def:"0.005" desc:"ryanodine receptor recovery rate, in 1/ms"`
	EC     float64 `def:"1.5" desc:"CaSR at which kCaSR is half-way between MinSR and MaxSR, in mM"`
	MinSR  float64 `def:"1" desc:"minimum of kCaSR, approached as the SR fills"`
	MaxSR  float64 `def:"2.5" desc:"maximum of kCaSR, approached as the SR empties"`
	Vleak  float64 `def:"0.00036" desc:"SR leak rate I_leak, in 1/ms"`
	Vxfer  float64 `def:"0.0038" desc:"subspace to cytoplasm transfer rate I_xfer, in 1/ms"`
}

func (sp *SRParams) Defaults() {
	sp.VmaxUp = 0.006375
	sp.Kup = 0.00025
	sp.Vrel = 0.102
	sp.K1p = 0.15
	sp.K2p = 0.045
	sp.K3 = 0.06
	sp.K4 = 0.005
	sp.EC = 1.5
	sp.MinSR = 1
	sp.MaxSR = 2.5
	sp.Vleak = 0.00036
	sp.Vxfer = 0.0038
}

// Release holds the SR-load dependent ryanodine receptor rates
type Release struct {
	KCaSR float64 `desc:"SR load dependent scaling of the opening and inactivation rates"`
	K1    float64 `desc:"opening rate, K1p / KCaSR"`
	K2    float64 `desc:"inactivation rate, K2p * KCaSR"`
}

// ReleaseFmCaSR computes the release rates given SR calcium casr
func (sp *SRParams) ReleaseFmCaSR(casr float64) Release {
	ec := sp.EC / casr
	k := sp.MaxSR - (sp.MaxSR-sp.MinSR)/(1+ec*ec)
	return Release{KCaSR: k, K1: sp.K1p / k, K2: sp.K2p * k}
}

// DRPrime returns the rate of change of the recovered fraction rp of
// ryanodine receptors, given subspace calcium cass
func (sp *SRParams) DRPrime(rl Release, rp, cass float64) float64 {
	return sp.K4*(1-rp) - rl.K2*cass*rp
}

// Open returns the open probability of the ryanodine receptors,
// with the open state in quasi-steady state relative to rp
func (sp *SRParams) Open(rl Release, rp, cass float64) float64 {
	kc := rl.K1 * cass * cass
	return kc * rp / (sp.K3 + kc)
}

// Irel is the release flux from SR to subspace, in mM/ms
func (sp *SRParams) Irel(o, casr, cass float64) float64 {
	return sp.Vrel * o * (casr - cass)
}

// Ileak is the leak flux from SR to cytoplasm, in mM/ms
func (sp *SRParams) Ileak(casr, cai float64) float64 {
	return sp.Vleak * (casr - cai)
}

// Iup is the SERCA uptake flux from cytoplasm to SR, in mM/ms
func (sp *SRParams) Iup(cai float64) float64 {
	kc := sp.Kup / cai
	return sp.VmaxUp / (1 + kc*kc)
}

// Ixfer is the diffusive flux from subspace to cytoplasm, in mM/ms
func (sp *SRParams) Ixfer(cass, cai float64) float64 {
	return sp.Vxfer * (cass - cai)
}

// UpdateRPrime advances st.RPrime by dt (explicit Euler) and returns
// the open probability computed from the updated value
func (sp *SRParams) UpdateRPrime(st *State, dt float64) float64 {
	rl := sp.ReleaseFmCaSR(st.CaSR)
	st.RPrime += dt * sp.DRPrime(rl, st.RPrime, st.CaSS)
	return sp.Open(rl, st.RPrime, st.CaSS)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Buffering

// BufParams are the rapid calcium buffer totals and dissociation constants,
// in mM, for the cytoplasm, SR and subspace
type BufParams struct {
	BufC   float64 `def:"0.2" desc:"total cytoplasmic buffer"`
	KBufC  float64 `def:"0.001" desc:"cytoplasmic buffer dissociation constant"`
	BufSR  float64 `def:"10" desc:"total SR buffer"`
	KBufSR float64 `def:"0.3" desc:"SR buffer dissociation constant"`
	BufSS  float64 `def:"0.4" desc:"total subspace buffer"`
	KBufSS float64 `def:"0.00025" desc:"subspace buffer dissociation constant"`
}

func (bp *BufParams) Defaults() {
	bp.BufC = 0.2
	bp.KBufC = 0.001
	bp.BufSR = 10
	bp.KBufSR = 0.3
	bp.BufSS = 0.4
	bp.KBufSS = 0.00025
}

// BufferedTotal returns the total (free + bound) calcium given the free
// concentration, with buf total buffer of dissociation constant k
func BufferedTotal(free, buf, k float64) float64 {
	return free + buf*free/(free+k)
}

// BufferedFree returns the free calcium given the total concentration,
// as the positive root of free^2 + b*free - k*tot = 0, with b = buf - tot + k.
// Of the two algebraically equal forms of the root, the one without
// a difference of nearly equal terms is used, so the result stays
// accurate when tot is tiny compared to buf.
func BufferedFree(tot, buf, k float64) float64 {
	b := buf - tot + k
	c := k * tot
	s := math.Sqrt(b*b + 4*c)
	if b >= 0 {
		if s+b == 0 {
			return 0
		}
		return 2 * c / (s + b)
	}
	return (s - b) / 2
}

//////////////////////////////////////////////////////////////////////////////////////
//  Concentration updates

// FluxesFmState computes the intracellular calcium fluxes of st into cur,
// given the ryanodine receptor open probability o
func (pars *Params) FluxesFmState(st *State, o float64, cur *Currents) {
	sp := &pars.SR
	cur.O = o
	cur.Irel = sp.Irel(o, st.CaSR, st.CaSS)
	cur.Ileak = sp.Ileak(st.CaSR, st.Cai)
	cur.Iup = sp.Iup(st.Cai)
	cur.Ixfer = sp.Ixfer(st.CaSS, st.Cai)
}

// UpdateIons advances Nai and Ki by dt (explicit Euler).
// The stimulus current stim is carried by K+.
func (pars *Params) UpdateIons(st *State, cur *Currents, stim, dt float64) {
	f := pars.Cell.CmVcF
	st.Nai -= dt * f * (cur.INa + cur.IbNa + 3*cur.INaK + 3*cur.INaCa)
	st.Ki -= dt * f * (stim + cur.IK1 + cur.Ito + cur.IKr + cur.IKs - 2*cur.INaK + cur.IpK)
}

// UpdateCa advances the three calcium compartments by dt.
// Each total (free + bound) concentration is stepped with explicit Euler
// and the new free concentration recovered with BufferedFree.
// All currents and fluxes must have been computed from the state before the update.
func (pars *Params) UpdateCa(st *State, cur *Currents, dt float64) {
	cp := &pars.Cell
	bp := &pars.Buf

	dsr := cur.Iup - cur.Irel - cur.Ileak
	dss := -cur.Ixfer*cp.VcOnVss + cur.Irel*cp.VsrOnVss - cp.CmVssF2*cur.ICaL
	dc := -cp.CmVcF2*(cur.IbCa+cur.IpCa-2*cur.INaCa) - (cur.Iup-cur.Ileak)*cp.VsrOnVc + cur.Ixfer

	st.CaSR = BufferedFree(BufferedTotal(st.CaSR, bp.BufSR, bp.KBufSR)+dt*dsr, bp.BufSR, bp.KBufSR)
	st.CaSS = BufferedFree(BufferedTotal(st.CaSS, bp.BufSS, bp.KBufSS)+dt*dss, bp.BufSS, bp.KBufSS)
	st.Cai = BufferedFree(BufferedTotal(st.Cai, bp.BufC, bp.KBufC)+dt*dc, bp.BufC, bp.KBufC)
}
