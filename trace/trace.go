// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package trace records the state and currents of a tt06 cell over time into an
etable.Table, writes the table as CSV, and analyzes recorded action potentials
(resting and peak potential, maximal upstroke velocity, and action potential
duration at any fraction of repolarization).
*/
package trace

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/tentusscher/tt06"
)

// LogPrec is the precision for saving float values in the CSV output
var LogPrec = 8

// Trace is a recording of named State and Currents variables over time.
// The first column of Table is always "Time", in msec.
type Trace struct {
	Vars  []string      `desc:"names of the State variables recorded"`
	Curs  []string      `desc:"names of the Currents variables recorded"`
	Table *etable.Table `view:"no-inline" desc:"the recorded values, one row per Record"`

	stFuns  []tt06.StateVarFunc
	curFuns []tt06.CurrentVarFunc
}

// New returns a new Trace recording given State and Currents variables
func New(vars, curs []string) (*Trace, error) {
	tr := &Trace{}
	if err := tr.Config(vars, curs); err != nil {
		return nil, err
	}
	return tr, nil
}

// Config resolves the variable names and configures an empty Table
func (tr *Trace) Config(vars, curs []string) error {
	tr.Vars = vars
	tr.Curs = curs
	tr.stFuns = make([]tt06.StateVarFunc, len(vars))
	tr.curFuns = make([]tt06.CurrentVarFunc, len(curs))
	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
	}
	for i, nm := range vars {
		idx, err := tt06.StateVarIndex(nm)
		if err != nil {
			return err
		}
		tr.stFuns[i] = tt06.StateVars.Order[idx].Val
		sch = append(sch, etable.Column{nm, etensor.FLOAT64, nil, nil})
	}
	for i, nm := range curs {
		idx, ok := tt06.CurrentVars.Map[nm]
		if !ok {
			return fmt.Errorf("trace.Config: current name: %v not valid", nm)
		}
		tr.curFuns[i] = tt06.CurrentVars.Order[idx].Val
		sch = append(sch, etable.Column{nm, etensor.FLOAT64, nil, nil})
	}
	if tr.Table == nil {
		tr.Table = &etable.Table{}
	}
	tr.Table.SetMetaData("name", "Trace")
	tr.Table.SetMetaData("read-only", "true")
	tr.Table.SetMetaData("precision", strconv.Itoa(LogPrec))
	tr.Table.SetFromSchema(sch, 0)
	return nil
}

// Reset removes all recorded rows
func (tr *Trace) Reset() {
	tr.Table.SetNumRows(0)
}

// Rows returns the number of recorded rows
func (tr *Trace) Rows() int {
	return tr.Table.Rows
}

// Record adds a row with the values of st and cur at time tm.
// cur can be nil if no currents are recorded.
func (tr *Trace) Record(tm float64, st *tt06.State, cur *tt06.Currents) {
	dt := tr.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloatIdx(0, row, tm)
	ci := 1
	for _, fun := range tr.stFuns {
		dt.SetCellFloatIdx(ci, row, *fun(st))
		ci++
	}
	if cur == nil {
		return
	}
	for _, fun := range tr.curFuns {
		dt.SetCellFloatIdx(ci, row, *fun(cur))
		ci++
	}
}

// Col returns the recorded values of named column (Time or a recorded variable).
// The returned slice is the column storage itself, valid until the next Record.
func (tr *Trace) Col(name string) ([]float64, error) {
	ci := tr.Table.ColIdx(name)
	if ci < 0 {
		return nil, fmt.Errorf("trace.Col: column name: %v not found", name)
	}
	return tr.Table.Cols[ci].(*etensor.Float64).Values, nil
}

// WriteCSV writes the table with a header row to w, separated by delim
func (tr *Trace) WriteCSV(w io.Writer, delim etable.Delims) error {
	return tr.Table.WriteCSV(w, delim, etable.Headers)
}

// SizeReport returns a string describing the memory used by the recorded values
func (tr *Trace) SizeReport() string {
	ncol := len(tr.Table.Cols)
	mem := tr.Rows() * ncol * 8
	var b strings.Builder
	fmt.Fprintf(&b, "Trace: %d rows x %d cols\t Mem: %v\n", tr.Rows(), ncol, datasize.ByteSize(mem).HumanReadable())
	return b.String()
}
