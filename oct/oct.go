/*
 * oct.go, part of golft
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

/*Package oct holds the complete secular matrices of the d2-d8 configurations in an
octahedral ligand field, in the strong-field basis and with the coefficients of the
classic Tanabe-Sugano tabulation. Every matrix element is a linear form in the cubic
splitting Dq and the Racah parameters B and C; states of different symmetry or spin
never mix, so the full Hamiltonian factors into the blocks stored here.

The tables are built once, at init time, and never change afterwards. Note that the
field strength in this package is Dq, not 10Dq, as that is how the tabulated
coefficients are written.*/
package oct

import (
	"fmt"
	"math"

	lft "github.com/rmera/golft"
	"gonum.org/v1/gonum/mat"
)

var (
	sqrt2 = math.Sqrt(2.0)
	sqrt3 = math.Sqrt(3.0)
	sqrt6 = math.Sqrt(6.0)
)

//Coef is one element of a secular matrix template, the linear form
//Dq*dq + B*b + C*c. There is no constant part in any of the tabulated elements.
type Coef struct {
	Dq float64
	B  float64
	C  float64
}

//eval gives the element value at a field strength dq (in Dq units, cm^-1) and
//Racah parameters b, c (cm^-1).
func (co Coef) eval(dq, b, c float64) float64 {
	return co.Dq*dq + co.B*b + co.C*c
}

//Block is the symmetric secular matrix template of one symmetry block, tagged with
//its spectroscopic term. Blocks are immutable; evaluating one at given parameters
//produces a fresh numeric matrix.
type Block struct {
	term lft.Term
	dim  int
	elem []Coef //row-major, dim*dim, kept fully mirrored
}

//newBlock builds a template from the diagonal and the upper off-diagonal elements,
//mirroring the latter. Elements not given are zero.
func newBlock(term lft.Term, diag []Coef, off map[[2]int]Coef) *Block {
	dim := len(diag)
	e := make([]Coef, dim*dim)
	for i, d := range diag {
		e[i*dim+i] = d
	}
	for ij, v := range off {
		i, j := ij[0], ij[1]
		if i >= dim || j >= dim || i >= j {
			panic("goLFT/oct.newBlock: off-diagonal index out of the upper triangle")
		}
		e[i*dim+j] = v
		e[j*dim+i] = v
	}
	return &Block{term: term, dim: dim, elem: e}
}

//single builds the 1x1 template of a state that belongs to no multi-dimensional block.
func single(term lft.Term, co Coef) *Block {
	return newBlock(term, []Coef{co}, nil)
}

//conjugate returns the templates of the hole configuration d^(10-n): by the
//electron-hole formalism the electrostatic part is unchanged and every Dq
//coefficient flips its sign.
func conjugate(blocks []*Block) []*Block {
	r := make([]*Block, len(blocks))
	for k, b := range blocks {
		e := make([]Coef, len(b.elem))
		for i, co := range b.elem {
			co.Dq = -co.Dq
			e[i] = co
		}
		r[k] = &Block{term: b.term, dim: b.dim, elem: e}
	}
	return r
}

//Term returns the spectroscopic term of the block.
func (S *Block) Term() lft.Term { return S.term }

//Dim returns the dimension (number of roots) of the block.
func (S *Block) Dim() int { return S.dim }

//At returns the template element i,j.
func (S *Block) At(i, j int) Coef {
	if i < 0 || j < 0 || i >= S.dim || j >= S.dim {
		panic("goLFT/oct.At: element index out of range")
	}
	return S.elem[i*S.dim+j]
}

//Matrix evaluates the template at the field strength dq (Dq, not 10Dq!) and the Racah
//parameters b and c, all in cm^-1. It returns a NumericalInstabilityError if any element
//comes out not finite.
func (S *Block) Matrix(dq, b, c float64) (*mat.SymDense, error) {
	data := make([]float64, S.dim*S.dim)
	for i, co := range S.elem {
		v := co.eval(dq, b, c)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, lft.NewNumericalInstability("Matrix", S.term, 10*dq, fmt.Sprintf("element %d,%d evaluated to %v", i/S.dim, i%S.dim, v))
		}
		data[i] = v
	}
	return mat.NewSymDense(S.dim, data), nil
}

//Config is the validated set of secular matrices for one d^n configuration, in a fixed
//block order, plus the bookkeeping needed to reference energies to the ground state.
type Config struct {
	n        int
	blocks   []*Block
	ground   int     //block whose lowest root anchors E=0 at weak field
	lowspin  int     //block that takes over as the ground state past the spin crossover; -1 if the ground term never changes
	crosstol float64 //shifted energy at or below which the lowspin block has taken over
}

//ElectronCount returns n for the d^n configuration.
func (F *Config) ElectronCount() int { return F.n }

//NBlocks returns the number of symmetry blocks.
func (F *Config) NBlocks() int { return len(F.blocks) }

//Block returns the i-th symmetry block. The order is fixed and matches the column
//order of the printed diagrams.
func (F *Config) Block(i int) *Block {
	if i < 0 || i >= len(F.blocks) {
		panic("goLFT/oct.Block: block index out of range")
	}
	return F.blocks[i]
}

//Blocks returns all the symmetry blocks, in order. The slice is a copy but the blocks
//are the shared, immutable templates.
func (F *Config) Blocks() []*Block {
	r := make([]*Block, len(F.blocks))
	copy(r, F.blocks)
	return r
}

//TotalDim returns the size of the full basis, i.e. the total number of levels,
//which is also the sum of the dimensions of all blocks.
func (F *Config) TotalDim() int {
	t := 0
	for _, b := range F.blocks {
		t += b.dim
	}
	return t
}

//GroundIndex returns the index of the block whose lowest root is the weak-field
//ground state.
func (F *Config) GroundIndex() int { return F.ground }

//LowSpinIndex returns the index of the block that becomes the ground state past the
//high-spin/low-spin crossover, or -1 for the configurations where the ground term
//never changes (d2, d3 and d8).
func (F *Config) LowSpinIndex() int { return F.lowspin }

//CrossoverTol returns the tolerance used to decide that the crossover happened: once
//the lowest root of the low-spin block, already shifted, falls at or below this value,
//it becomes the new zero.
func (F *Config) CrossoverTol() float64 { return F.crosstol }

var configs map[int]*Config

func init() {
	configs = map[int]*Config{
		2: d2Config(),
		3: d3Config(),
		4: d4Config(),
		5: d5Config(),
		6: d6Config(),
		7: d7Config(),
		8: d8Config(),
	}
}

//ForCount returns the secular matrices for a d^n ion in an octahedral field. Only
//n between 2 and 8 is meaningful: d0, d1, d9 and d10 have no electron-repulsion
//problem left, so asking for them (or for anything else) is an
//UnsupportedConfigurationError.
func ForCount(n int) (*Config, error) {
	c, ok := configs[n]
	if !ok {
		return nil, lft.NewUnsupportedConfiguration("oct.ForCount", n)
	}
	return c, nil
}
