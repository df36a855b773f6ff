/*
 * term.go, part of golft
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
)

//Term is a spectroscopic term symbol in the octahedral double-naming, i.e. a spin
//multiplicity 2S+1 plus one of the Oh irreducible representations A1, A2, E, T1, T2.
//All d^n terms in Oh are gerade so the parity is not stored, just printed.
//The zero value is not a valid term; use NewTerm.
type Term struct {
	mult  int
	irrep string
}

//orbitalDegen maps each irrep to its orbital degeneracy.
var orbitalDegen = map[string]int{"A1": 1, "A2": 1, "E": 2, "T1": 3, "T2": 3}

//NewTerm returns the term with the given spin multiplicity and irreducible representation.
//It panics on labels that cannot exist for a d^n ion, as terms are only ever built from
//the constant tables in goLFT, not from user input.
func NewTerm(mult int, irrep string) Term {
	if _, ok := orbitalDegen[irrep]; !ok {
		panic(ErrBadIrrep)
	}
	if mult < 1 || mult > 6 {
		panic(ErrBadMult)
	}
	return Term{mult: mult, irrep: irrep}
}

//Mult returns the spin multiplicity 2S+1 of the term.
func (T Term) Mult() int { return T.mult }

//Irrep returns the Mulliken symbol of the term without parity, e.g. "T1".
func (T Term) Irrep() string { return T.irrep }

//Degeneracy returns the total (spin times orbital) degeneracy of the term.
func (T Term) Degeneracy() int { return T.mult * orbitalDegen[T.irrep] }

//String prints the term in the flat ASCII form used in tables and file names,
//multiplicity first and with the gerade subscript appended: "3T1g", "1Eg", "6A1g".
func (T Term) String() string {
	return fmt.Sprintf("%d%sg", T.mult, T.irrep)
}

func (T Term) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Mult  int    `json:"mult"`
		Irrep string `json:"irrep"`
	}{
		Mult:  T.mult,
		Irrep: T.irrep,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (T *Term) UnmarshalJSON(b []byte) error {
	var a struct {
		Mult  int    `json:"mult"`
		Irrep string `json:"irrep"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if _, ok := orbitalDegen[a.Irrep]; !ok {
		return NewInvalidParameter("Term.UnmarshalJSON", "goLFT: unknown irreducible representation %q", a.Irrep)
	}
	if a.Mult < 1 || a.Mult > 6 {
		return NewInvalidParameter("Term.UnmarshalJSON", "goLFT: spin multiplicity %d out of range", a.Mult)
	}
	T.mult = a.Mult
	T.irrep = a.Irrep
	return nil
}
