/*
 * grid.go, part of golft
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
	"gonum.org/v1/gonum/floats"
)

//Grid is an ordered, strictly increasing set of crystal-field strengths (10Dq, in cm^-1)
//at which the secular matrices will be solved. Grids are plain data, a pure function of
//their bounds and size, so re-building one with the same arguments always gives the same
//points.
type Grid struct {
	vals []float64
}

//NewGrid returns a grid of points sample values evenly spanning [0,max]. The endpoints are
//included and exact. It needs max positive and finite and at least 2 points; the free-ion
//limit 10Dq=0 is always the first point.
func NewGrid(max float64, points int) (*Grid, error) {
	if badfloat(max) || max <= 0 {
		return nil, NewInvalidParameter("NewGrid", "goLFT: the upper 10Dq bound must be positive and finite, got %v cm^-1", max)
	}
	if points < 2 {
		return nil, NewInvalidParameter("NewGrid", "goLFT: a grid needs at least 2 points, got %d. Use SinglePoint for one-shot calculations", points)
	}
	v := make([]float64, points)
	floats.Span(v, 0, max)
	v[points-1] = max //Span can leave the last point an ulp short
	return &Grid{vals: v}, nil
}

//SinglePoint returns a grid with only the given field strength, for single-complex
//calculations like the printed level tables. Zero is allowed (the free ion).
func SinglePoint(delta float64) (*Grid, error) {
	if badfloat(delta) || delta < 0 {
		return nil, NewInvalidParameter("SinglePoint", "goLFT: the 10Dq value must be non-negative and finite, got %v cm^-1", delta)
	}
	return &Grid{vals: []float64{delta}}, nil
}

//Values returns a fresh copy of the grid points, in cm^-1. The caller owns the slice.
func (G *Grid) Values() []float64 {
	r := make([]float64, len(G.vals))
	copy(r, G.vals)
	return r
}

//Len returns the number of points in the grid.
func (G *Grid) Len() int { return len(G.vals) }

//Max returns the last (largest) point of the grid.
func (G *Grid) Max() float64 { return G.vals[len(G.vals)-1] }
