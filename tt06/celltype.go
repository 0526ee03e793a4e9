// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tt06

import "github.com/goki/ki/kit"

// CellType is the transmural variant of the ventricular myocyte.
// The variants differ in the maximal conductances of I_to and I_Ks,
// in the inactivation kinetics of I_to, and in their initial conditions.
type CellType int

//go:generate stringer -type=CellType

var KiT_CellType = kit.Enums.AddEnum(CellTypeN, kit.NotBitFlag, nil)

func (ev CellType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CellType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The cell types
const (
	// Epicardial cells have a large I_to with fast recovery (spike-and-dome morphology)
	Epicardial CellType = iota

	// Endocardial cells have a small I_to with slow recovery from inactivation
	Endocardial

	// MidMyocardial (M) cells have a large I_to and a reduced I_Ks,
	// giving the longest action potential
	MidMyocardial

	CellTypeN
)
