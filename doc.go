// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tentusscher is the overall repository for a single-cell implementation of
the ten Tusscher & Panfilov (2006) model of the human ventricular myocyte
implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* tt06: the model itself: parameters for the three cell types (epicardial,
endocardial, midmyocardial), the 19-variable State, the gating kinetics,
the transmembrane currents, the calcium subsystem with its buffers, and the
time Step that advances a State by Dt msec using Rush-Larsen updates for the
gates and explicit Euler for everything else.

* chans: reversal potentials from ionic concentrations (Nernst, and the
Goldman-Hodgkin-Katz form for the Na-permeable potassium current).

* stim: stimulus protocols: trains of current pulses at a basic cycle length.

* trace: recording of state and currents into an etable.Table, CSV output, and
action potential analysis (peak, upstroke velocity, APD at any repolarization).

* examples: these actually compile into runnable programs.  examples/pace is the
place to start: it paces one cell and reports the action potential of every beat.
examples/gates plots the steady states and time constants of all the gates,
and examples/bench benchmarks stepping many cells in parallel.
*/
package tentusscher
