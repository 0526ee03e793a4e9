// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import "github.com/emer/tentusscher/chans"

// MaxStableDt is the largest time step, in msec, for which the explicit
// updates of V, RPrime and the concentrations are known to stay stable.
// It is guidance only: Step does not check dt.
const MaxStableDt = 0.02

// Step advances st in place by dt msec, with stimulus current stim (pA/pF,
// negative is depolarizing).  The order of operations is:
//   - reversal potentials from the current concentrations
//   - gate rates at the current V (fCass at the current CaSS)
//   - Rush-Larsen update of all gates
//   - RPrime by explicit Euler, then the RyR open probability from it
//   - all currents at the current V with the updated gates
//   - Nai, Ki and the total Ca of each compartment by explicit Euler,
//     followed by the buffering quadratic for free Ca
//   - V by explicit Euler
//
// Step never fails: a too-large dt shows up as non-finite values,
// which callers can detect with State.Finite.
func (pars *Params) Step(st *State, stim, dt float64) {
	var cur Currents
	pars.StepCurrents(st, stim, dt, &cur)
}

// StepCurrents is Step, also returning the currents used into cur
func (pars *Params) StepCurrents(st *State, stim, dt float64, cur *Currents) {
	var ev chans.Erev
	pars.ErevFmState(st, &ev)

	pars.UpdateGates(st, dt)

	o := pars.SR.UpdateRPrime(st, dt)

	pars.CurrentsFmState(st, &ev, cur)
	pars.FluxesFmState(st, o, cur)

	pars.UpdateIons(st, cur, stim, dt)
	pars.UpdateCa(st, cur, dt)

	st.V -= dt * (cur.Itot() + stim)
}
