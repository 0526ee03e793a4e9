// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

// Cell bundles the params, state and timing of one simulated myocyte.
// Pars may be shared read-only by many Cells; each Cell must be
// stepped by only one goroutine at a time.
type Cell struct {
	Pars *Params  `desc:"parameters, read-only"`
	St   State    `desc:"state, advanced by Cycle"`
	Cur  Currents `desc:"currents computed on the last Cycle"`
	Time Time     `desc:"timing state"`
}

// NewCell returns a new Cell for given cell type, at its initial conditions
func NewCell(ct CellType) (*Cell, error) {
	pars, err := NewParams(ct)
	if err != nil {
		return nil, err
	}
	return NewCellPars(pars), nil
}

// NewCellPars returns a new Cell using given (shared) params
func NewCellPars(pars *Params) *Cell {
	cl := &Cell{Pars: pars}
	cl.Time.Defaults()
	cl.Init()
	return cl
}

// Init resets the state to the initial conditions and the time to 0
func (cl *Cell) Init() {
	cl.St.Init(cl.Pars.Type)
	cl.Cur = Currents{}
	cl.Time.Reset()
}

// Cycle advances the cell by one time step with stimulus current stim
func (cl *Cell) Cycle(stim float64) {
	cl.Pars.StepCurrents(&cl.St, stim, cl.Time.Dt, &cl.Cur)
	cl.Time.CycleInc()
}
