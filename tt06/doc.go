// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tt06 implements the ten Tusscher & Panfilov (2006) model of the human
ventricular myocyte as a single-cell integrator.

The cell is described by 19 state variables (State): the membrane potential,
twelve Hodgkin-Huxley style gates, the free calcium concentration in the
cytosol, sarcoplasmic reticulum (SR) and subspace, the sodium and potassium
concentrations, and the fraction of recovered ryanodine receptors.
Params holds the physical constants, volumes, external concentrations,
maximal conductances and calcium handling constants for one of three
transmural cell types (CellType).

Each call to Params.Step advances a State by one time step:

  - the gates are updated with the exponential Rush-Larsen scheme, which is
    stable for any dt even though the gate time constants range from
    ~0.1 msec (m) to several hundred msec (f, s in endocardium);
  - the recovered ryanodine receptor fraction and the concentrations are
    updated with explicit Euler, free calcium in each compartment being
    recovered from total calcium by the closed-form solution of the
    rapid buffering equilibrium;
  - the membrane potential is updated with explicit Euler from the sum of
    the transmembrane currents (in pA/pF) and the stimulus current.

The explicit parts of the scheme are only stable for small steps:
dt <= MaxStableDt (0.02 msec) is recommended.  Step never checks or
reports anything -- State.Finite and State.CheckDomain are provided for
callers that want to detect divergence.

A *Params is never written by Step or any of the current, gating or
calcium functions, so one Params can be shared by any number of
goroutines, each stepping its own State.
*/
package tt06
