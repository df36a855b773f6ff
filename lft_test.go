/*
 * lft_test.go, part of golft
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
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestRacahValidation(Te *testing.T) {
	R, err := NewRacah(860, 3850)
	if err != nil {
		Te.Error(err)
	}
	fmt.Println("Got a parameter set:", R)
	bad := [][2]float64{
		{-860, 3850},
		{0, 3850},
		{860, -1},
		{math.NaN(), 3850},
		{860, math.Inf(1)},
	}
	for _, v := range bad {
		_, err := NewRacah(v[0], v[1])
		if err == nil {
			Te.Errorf("B=%v C=%v should have been rejected", v[0], v[1])
			continue
		}
		if _, ok := err.(InvalidParameterError); !ok {
			Te.Errorf("wrong error type for B=%v C=%v: %v", v[0], v[1], err)
		}
	}
}

func TestRacahReduction(Te *testing.T) {
	//two factors, one per parameter
	R, err := NewRacah(1080, 4850, 0.8, 0.9)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(R.B()-864) > 1e-10 || math.Abs(R.C()-4365) > 1e-10 {
		Te.Errorf("reduction factors misapplied: %v", R)
	}
	//a single factor goes on both
	R, err = NewRacah(1000, 4500, 0.5)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(R.B()-500) > 1e-10 || math.Abs(R.C()-2250) > 1e-10 {
		Te.Errorf("single reduction factor misapplied: %v", R)
	}
	if _, err = NewRacah(1000, 4500, -0.5); err == nil {
		Te.Error("a negative reduction factor should have been rejected")
	}
	if _, err = NewRacah(1000, 4500, 0.9, 0.9, 0.9); err == nil {
		Te.Error("3 reduction factors should have been rejected")
	}
}

//TestSlaterCondon checks the conversion against the linear relations and that
//converting back and forth is the identity.
func TestSlaterCondon(Te *testing.T) {
	R, err := FromSlaterCondon(10.0, 6.0)
	if err != nil {
		Te.Error(err)
	}
	wantB := EV2Cm * (10.0/49.0 - 5.0*6.0/441.0)
	wantC := EV2Cm * (35.0 * 6.0 / 441.0)
	if math.Abs(R.B()-wantB) > 1e-9 || math.Abs(R.C()-wantC) > 1e-9 {
		Te.Errorf("conversion off: got %v, want B=%v C=%v", R, wantB, wantC)
	}
	fmt.Println("F2=10 F4=6 eV gives", R)
	//round trip starting from Racah values
	R, err = NewRacah(860, 3850)
	if err != nil {
		Te.Error(err)
	}
	F2, F4 := R.SlaterCondon()
	R2, err := FromSlaterCondon(F2, F4)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(R.B()-R2.B()) > 1e-9*R.B() || math.Abs(R.C()-R2.C()) > 1e-9*R.C() {
		Te.Errorf("round trip drifted: %v vs %v", R, R2)
	}
	if math.Abs(R.Ratio()-3850.0/860.0) > 1e-12 {
		Te.Error("wrong C/B ratio:", R.Ratio())
	}
}

func TestErrors(Te *testing.T) {
	var err Error = NewUnsupportedConfiguration("oct.ForCount", 9)
	uerr := err.(UnsupportedConfigurationError)
	if uerr.ElectronCount() != 9 {
		Te.Error("the error misreports the electron count:", uerr.ElectronCount())
	}
	if !strings.Contains(err.Error(), "d9") {
		Te.Error("the message does not name the configuration:", err.Error())
	}
	deco := err.Decorate("sweep.Run")
	if len(deco) != 2 || deco[0] != "oct.ForCount" || deco[1] != "sweep.Run" {
		Te.Errorf("wrong decoration slice: %v", deco)
	}
	if deco := err.Decorate(""); len(deco) != 1 {
		Te.Errorf("an empty decoration changed the slice: %v", deco)
	}
	nerr := NewNumericalInstability("sweep.solvePoint", NewTerm(3, "T1"), 12500, "element 0,0 evaluated to NaN")
	if nerr.Term().String() != "3T1g" || nerr.Delta() != 12500 {
		Te.Errorf("instability error misreports the block: %s at %v", nerr.Term(), nerr.Delta())
	}
	if !strings.Contains(nerr.Error(), "3T1g") || !strings.Contains(nerr.Error(), "NaN") {
		Te.Error("uninformative message:", nerr.Error())
	}
	fmt.Println("decorated error:", err.Error(), deco)
}

func TestTerms(Te *testing.T) {
	cases := []struct {
		mult  int
		irrep string
		label string
		degen int
	}{
		{3, "T1", "3T1g", 9},
		{1, "E", "1Eg", 2},
		{6, "A1", "6A1g", 6},
		{2, "T2", "2T2g", 6},
		{5, "A2", "5A2g", 5},
	}
	for _, c := range cases {
		T := NewTerm(c.mult, c.irrep)
		if T.String() != c.label {
			Te.Errorf("got label %s, want %s", T.String(), c.label)
		}
		if T.Degeneracy() != c.degen {
			Te.Errorf("%s: got degeneracy %d, want %d", c.label, T.Degeneracy(), c.degen)
		}
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("an impossible irrep should panic")
		}
	}()
	_ = NewTerm(3, "T3")
}

func TestGrid(Te *testing.T) {
	G, err := NewGrid(40000, 500)
	if err != nil {
		Te.Error(err)
	}
	v := G.Values()
	if len(v) != 500 || G.Len() != 500 {
		Te.Error("wrong grid size:", len(v))
	}
	if v[0] != 0 || v[len(v)-1] != 40000 || G.Max() != 40000 {
		Te.Errorf("grid endpoints not exact: %v %v", v[0], v[len(v)-1])
	}
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			Te.Errorf("grid not strictly increasing at %d: %v <= %v", i, v[i], v[i-1])
		}
	}
	//same bounds, same points
	G2, err := NewGrid(40000, 500)
	if err != nil {
		Te.Error(err)
	}
	for i, x := range G2.Values() {
		if x != v[i] {
			Te.Error("grids from equal bounds differ at point", i)
		}
	}
	//the grid does not share its internals with callers
	v[3] = -1
	if G.Values()[3] == -1 {
		Te.Error("Values leaked the internal slice")
	}
	S, err := SinglePoint(8065)
	if err != nil {
		Te.Error(err)
	}
	if S.Len() != 1 || S.Max() != 8065 {
		Te.Error("bad single-point grid")
	}
	for _, bad := range []func() (*Grid, error){
		func() (*Grid, error) { return NewGrid(-5, 10) },
		func() (*Grid, error) { return NewGrid(40000, 1) },
		func() (*Grid, error) { return NewGrid(math.Inf(1), 10) },
		func() (*Grid, error) { return SinglePoint(-1) },
	} {
		if _, err := bad(); err == nil {
			Te.Error("an invalid grid was accepted")
		}
	}
}
