// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import (
	"math"
	"testing"
)

func TestBufferedRoundTrip(t *testing.T) {
	bp := BufParams{}
	bp.Defaults()
	bufs := [][2]float64{{bp.BufC, bp.KBufC}, {bp.BufSR, bp.KBufSR}, {bp.BufSS, bp.KBufSS}}
	tots := []float64{0, 1e-300, 1e-12, 1e-8, 1e-5, 0.0001, 0.001, 0.01, 0.1, 0.2, 0.4, 1, 3.64, 10, 25, 100, 1e4}
	for bi, bk := range bufs {
		for _, tot := range tots {
			free := BufferedFree(tot, bk[0], bk[1])
			if free < 0 || math.IsNaN(free) {
				t.Errorf("buf %d: free must be >= 0, tot: %v, free: %v\n", bi, tot, free)
				continue
			}
			if free > tot {
				t.Errorf("buf %d: free: %v must be <= tot: %v\n", bi, free, tot)
			}
			rt := BufferedTotal(free, bk[0], bk[1])
			if tot == 0 {
				if rt != 0 {
					t.Errorf("buf %d: zero total must give zero, got: %v\n", bi, rt)
				}
				continue
			}
			rdif := math.Abs(rt-tot) / tot
			if rdif > difTol {
				t.Errorf("buf %d: round trip err: tot: %v, free: %v, total again: %v, rel dif: %v\n", bi, tot, free, rt, rdif)
			}
		}
	}
}

func TestBufferedFreeInverse(t *testing.T) {
	bp := BufParams{}
	bp.Defaults()
	for _, free := range []float64{1e-7, 7e-5, 0.000126, 0.00036, 0.01, 1.3, 3.64} {
		tot := BufferedTotal(free, bp.BufSR, bp.KBufSR)
		fr := BufferedFree(tot, bp.BufSR, bp.KBufSR)
		rdif := math.Abs(fr-free) / free
		if rdif > difTol {
			t.Errorf("free err: free: %v, tot: %v, free again: %v, rel dif: %v\n", free, tot, fr, rdif)
		}
	}
}

func TestRelease(t *testing.T) {
	sp := SRParams{}
	sp.Defaults()
	// kCaSR is a sigmoid between MinSR and MaxSR, half-way at EC
	rl := sp.ReleaseFmCaSR(sp.EC)
	if dif := math.Abs(rl.KCaSR - 0.5*(sp.MinSR+sp.MaxSR)); dif > difTol {
		t.Errorf("kCaSR at EC: %v, dif: %v\n", rl.KCaSR, dif)
	}
	// a fuller SR lowers kCaSR, which speeds opening
	empty := sp.ReleaseFmCaSR(1e-6)
	full := sp.ReleaseFmCaSR(1e6)
	if math.Abs(empty.KCaSR-sp.MaxSR) > 1e-6 || math.Abs(full.KCaSR-sp.MinSR) > 1e-6 {
		t.Errorf("kCaSR limits: empty: %v, full: %v\n", empty.KCaSR, full.KCaSR)
	}
	if !(full.K1 > empty.K1) {
		t.Errorf("opening rate must increase with SR load: empty: %v, full: %v\n", empty.K1, full.K1)
	}
	if math.Abs(rl.K1*rl.KCaSR-sp.K1p) > difTol || math.Abs(rl.K2/rl.KCaSR-sp.K2p) > difTol {
		t.Errorf("k1 / k2 scaling err: %+v\n", rl)
	}
	// fully recovered receptors at rest do not change, and open probability is in [0,1]
	if d := sp.DRPrime(rl, 1, 0); d != 0 {
		t.Errorf("DRPrime at rp = 1, cass = 0 must be 0, is: %v\n", d)
	}
	for _, cass := range []float64{0, 1e-4, 0.01, 1, 100} {
		o := sp.Open(rl, 0.9, cass)
		if o < 0 || o > 0.9 {
			t.Errorf("open probability out of [0, rp] at cass: %v: %v\n", cass, o)
		}
	}
}

func TestCaFluxes(t *testing.T) {
	sp := SRParams{}
	sp.Defaults()
	if v := sp.Iup(sp.Kup); math.Abs(v-0.5*sp.VmaxUp) > difTol {
		t.Errorf("Iup at Kup must be half-maximal: %v\n", v)
	}
	prv := 0.0
	for _, cai := range []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2} {
		v := sp.Iup(cai)
		if v <= prv || v > sp.VmaxUp {
			t.Errorf("Iup must rise monotonically toward VmaxUp: cai: %v, iup: %v\n", cai, v)
		}
		prv = v
	}
	if sp.Ileak(1, 1) != 0 || sp.Ixfer(0.3, 0.3) != 0 || sp.Irel(0.5, 2, 2) != 0 {
		t.Errorf("linear fluxes must vanish at equal concentrations\n")
	}
}

// totalCa returns the total (free + bound) calcium content, in mM * uL
func totalCa(pars *Params, st *State) float64 {
	bp := &pars.Buf
	cp := &pars.Cell
	return BufferedTotal(st.Cai, bp.BufC, bp.KBufC)*cp.VC +
		BufferedTotal(st.CaSR, bp.BufSR, bp.KBufSR)*cp.VSR +
		BufferedTotal(st.CaSS, bp.BufSS, bp.KBufSS)*cp.VSS
}

func TestCaConservation(t *testing.T) {
	for ct := Epicardial; ct < CellTypeN; ct++ {
		pars, err := NewParams(ct)
		if err != nil {
			t.Fatal(err)
		}
		st := NewState(ct)
		st.CaSS = 0.002 // get some release going
		for i := 0; i < 200; i++ {
			tot := totalCa(pars, st)
			o := pars.SR.UpdateRPrime(st, MaxStableDt)
			cur := Currents{}
			pars.FluxesFmState(st, o, &cur)
			pars.UpdateCa(st, &cur, MaxStableDt)
			ntot := totalCa(pars, st)
			rdif := math.Abs(ntot-tot) / tot
			if rdif > difTol {
				t.Errorf("%v: step %d: total Ca not conserved: %v -> %v, rel dif: %v\n", ct, i, tot, ntot, rdif)
				break
			}
		}
		if err := st.CheckDomain(); err != nil {
			t.Error(err)
		}
	}
}
