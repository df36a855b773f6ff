/*
 * racah.go, part of golft
 *
 * Copyright 2025 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package lft

import (
	"encoding/json"
	"fmt"
	"math"
)

//Racah holds a validated set of Racah inter-electron repulsion parameters, in cm^-1.
//The A parameter only shifts all the diagonal elements equally, so it drops out of any
//energy difference and is not kept. A Racah is immutable once built.
type Racah struct {
	b float64
	c float64
}

//NewRacah returns a Racah parameter set after checking that both values are normal,
//positive floats. One or two optional reduction factors can be given; they multiply B
//and C respectively before validation (a single factor is applied to both). These are
//the nephelauxetic factors, so they normally are 0 < factor <= 1, but any positive
//value is accepted.
func NewRacah(B, C float64, reduction ...float64) (*Racah, error) {
	switch len(reduction) {
	case 0:
	case 1:
		B *= reduction[0]
		C *= reduction[0]
	case 2:
		B *= reduction[0]
		C *= reduction[1]
	default:
		return nil, NewInvalidParameter("NewRacah", "goLFT: at most 2 reduction factors can be given, not %d", len(reduction))
	}
	for _, v := range reduction {
		if badfloat(v) || v <= 0 {
			return nil, NewInvalidParameter("NewRacah", "goLFT: reduction factors must be positive and finite, got %v", v)
		}
	}
	if badfloat(B) || B <= 0 {
		return nil, NewInvalidParameter("NewRacah", "goLFT: the Racah B parameter must be positive and finite, got %v cm^-1", B)
	}
	if badfloat(C) || C <= 0 {
		return nil, NewInvalidParameter("NewRacah", "goLFT: the Racah C parameter must be positive and finite, got %v cm^-1", C)
	}
	return &Racah{b: B, c: C}, nil
}

//FromSlaterCondon builds a Racah set from the Slater-Condon integrals F2 and F4, given in eV.
//The usual linear relations B = F2/49 - 5*F4/441 and C = 35*F4/441 are applied and the
//result converted to cm^-1.
func FromSlaterCondon(F2, F4 float64) (*Racah, error) {
	B := EV2Cm * (F2/49.0 - 5.0*F4/441.0)
	C := EV2Cm * (35.0 * F4 / 441.0)
	R, err := NewRacah(B, C)
	if err != nil {
		return nil, errDecorate(err, fmt.Sprintf("FromSlaterCondon: F2=%v F4=%v eV", F2, F4))
	}
	return R, nil
}

//B returns the Racah B parameter, in cm^-1.
func (R *Racah) B() float64 { return R.b }

//C returns the Racah C parameter, in cm^-1.
func (R *Racah) C() float64 { return R.c }

//Ratio returns C/B. Tanabe-Sugano diagrams are only comparable at equal ratios,
//so this value goes into titles and file names.
func (R *Racah) Ratio() float64 { return R.c / R.b }

//SlaterCondon returns the Slater-Condon integrals F2 and F4, in eV, that reproduce
//the parameter set. It is the exact inverse of FromSlaterCondon.
func (R *Racah) SlaterCondon() (F2, F4 float64) {
	F4 = R.c * 441.0 / (35.0 * EV2Cm)
	F2 = 49.0 * (R.b/EV2Cm + 5.0*F4/441.0)
	return F2, F4
}

func (R *Racah) String() string {
	return fmt.Sprintf("B=%4.1f C=%4.1f cm^-1 (C/B=%4.2f)", R.b, R.c, R.Ratio())
}

func (R *Racah) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		B float64 `json:"b"`
		C float64 `json:"c"`
	}{
		B: R.b,
		C: R.c,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (R *Racah) UnmarshalJSON(b []byte) error {
	var a struct {
		B float64 `json:"b"`
		C float64 `json:"c"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	R2, err := NewRacah(a.B, a.C)
	if err != nil {
		return errDecorate(err, "Racah.UnmarshalJSON")
	}
	*R = *R2
	return nil
}

//badfloat tells whether a float is unusable in any physical quantity.
func badfloat(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
