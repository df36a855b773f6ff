package oct

import (
	lft "github.com/rmera/golft"
)

//The d5 configuration (e.g. Mn2+, Fe3+), the only one that is its own hole conjugate:
//the diagrams are symmetric in Dq and every multi-dimensional block repeats its
//t2g^x eg^y diagonal entries at +10Dq and -10Dq. The ground state is the field
//independent 6A1(6S) until the 2T2(2I) root crosses below it.
func d5Blocks() []*Block {
	T22 := newBlock(lft.NewTerm(2, "T2"),
		[]Coef{
			{Dq: -20, B: -20, C: 10},
			{Dq: -10, B: -8, C: 9},
			{Dq: -10, B: -18, C: 9},
			{B: -16, C: 8},
			{B: -12, C: 8},
			{B: 2, C: 12},
			{B: -6, C: 10},
			{Dq: 10, B: -18, C: 9},
			{Dq: 10, B: -8, C: 9},
			{Dq: 20, B: -20, C: 10},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 3 * sqrt6},
			{0, 2}: {B: sqrt6},
			{0, 4}: {B: -2 * sqrt3},
			{0, 5}: {B: 4, C: 2},
			{0, 6}: {B: 2},
			{1, 2}: {B: 3},
			{1, 3}: {B: sqrt6 / 2},
			{1, 4}: {B: -3 * sqrt2 / 2},
			{1, 5}: {B: 3 * sqrt6 / 2},
			{1, 6}: {B: 3 * sqrt6 / 2},
			{1, 8}: {B: 4, C: 1},
			{2, 3}: {B: 3 * sqrt6 / 2},
			{2, 4}: {B: -3 * sqrt2 / 2},
			{2, 5}: {B: 5 * sqrt6 / 2},
			{2, 6}: {B: -5 * sqrt6 / 2},
			{2, 7}: {C: 1},
			{3, 4}: {B: 2 * sqrt3},
			{3, 7}: {B: -3 * sqrt6 / 2},
			{3, 8}: {B: -sqrt6 / 2},
			{4, 5}: {B: -10 * sqrt3},
			{4, 7}: {B: 3 * sqrt2 / 2},
			{4, 8}: {B: 3 * sqrt2 / 2},
			{4, 9}: {B: -2 * sqrt3},
			{5, 7}: {B: -5 * sqrt6 / 2},
			{5, 8}: {B: -3 * sqrt6 / 2},
			{5, 9}: {B: 4, C: 2},
			{6, 7}: {B: -5 * sqrt6 / 2},
			{6, 8}: {B: 3 * sqrt6 / 2},
			{6, 9}: {B: -2},
			{7, 8}: {B: 3},
			{7, 9}: {B: -sqrt6},
			{8, 9}: {B: -3 * sqrt6},
		})
	T21 := newBlock(lft.NewTerm(2, "T1"),
		[]Coef{
			{Dq: -10, B: -22, C: 9},
			{Dq: -10, B: -8, C: 9},
			{B: -4, C: 10},
			{B: -12, C: 8},
			{B: -10, C: 10},
			{B: -6, C: 10},
			{Dq: 10, B: -8, C: 9},
			{Dq: 10, B: -22, C: 9},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -3},
			{0, 2}: {B: -3 * sqrt2 / 2},
			{0, 3}: {B: 3 * sqrt2 / 2},
			{0, 4}: {B: -3 * sqrt2 / 2},
			{0, 5}: {B: -3 * sqrt6 / 2},
			{0, 7}: {C: 1},
			{1, 2}: {B: 3 * sqrt2 / 2},
			{1, 3}: {B: 3 * sqrt2 / 2},
			{1, 4}: {B: 15 * sqrt2 / 2},
			{1, 5}: {B: 5 * sqrt6 / 2},
			{1, 6}: {B: 4, C: 1},
			{2, 5}: {B: 10 * sqrt3},
			{2, 6}: {B: 3 * sqrt2 / 2},
			{2, 7}: {B: -3 * sqrt2 / 2},
			{3, 6}: {B: -3 * sqrt2 / 2},
			{3, 7}: {B: -3 * sqrt2 / 2},
			{4, 5}: {B: 2 * sqrt3},
			{4, 6}: {B: 15 * sqrt2 / 2},
			{4, 7}: {B: -3 * sqrt2 / 2},
			{5, 6}: {B: 5 * sqrt6 / 2},
			{5, 7}: {B: -3 * sqrt6 / 2},
			{6, 7}: {B: -3},
		})
	E2 := newBlock(lft.NewTerm(2, "E"),
		[]Coef{
			{Dq: -10, B: -4, C: 12},
			{Dq: -10, B: -13, C: 9},
			{B: -4, C: 10},
			{B: -16, C: 8},
			{B: -12, C: 8},
			{Dq: 10, B: -13, C: 9},
			{Dq: 10, B: -4, C: 12},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 10},
			{0, 2}: {B: 6},
			{0, 3}: {B: 6 * sqrt3},
			{0, 4}: {B: 6 * sqrt2},
			{0, 5}: {B: -2},
			{0, 6}: {B: 4, C: 2},
			{1, 2}: {B: -3},
			{1, 3}: {B: 3 * sqrt3},
			{1, 5}: {B: 2, C: 1},
			{1, 6}: {B: 2},
			{2, 5}: {B: -3},
			{2, 6}: {B: -6},
			{3, 4}: {B: 2 * sqrt6},
			{3, 5}: {B: -3 * sqrt3},
			{3, 6}: {B: 6 * sqrt3},
			{4, 6}: {B: 6 * sqrt2},
			{5, 6}: {B: -10},
		})
	A21 := newBlock(lft.NewTerm(2, "A1"),
		[]Coef{
			{Dq: -10, B: -3, C: 9},
			{B: -12, C: 8},
			{B: -19, C: 8},
			{Dq: 10, B: -3, C: 9},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -3 * sqrt2},
			{0, 3}: {B: 6, C: 1},
			{1, 2}: {B: -4 * sqrt3},
			{1, 3}: {B: 3 * sqrt2},
		})
	A22 := newBlock(lft.NewTerm(2, "A2"),
		[]Coef{
			{Dq: -10, B: -23, C: 9},
			{B: -12, C: 8},
			{Dq: 10, B: -23, C: 9},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 3 * sqrt2},
			{0, 2}: {B: -2, C: 1},
			{1, 2}: {B: -3 * sqrt2},
		})
	T41 := newBlock(lft.NewTerm(4, "T1"),
		[]Coef{
			{Dq: -10, B: -25, C: 6},
			{B: -16, C: 7},
			{Dq: 10, B: -25, C: 6},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -3 * sqrt2},
			{0, 2}: {C: 1},
			{1, 2}: {B: -3 * sqrt2},
		})
	T42 := newBlock(lft.NewTerm(4, "T2"),
		[]Coef{
			{Dq: -10, B: -17, C: 6},
			{B: -22, C: 5},
			{Dq: 10, B: -17, C: 6},
		},
		map[[2]int]Coef{
			{0, 1}: {B: sqrt6},
			{0, 2}: {B: 4, C: 1},
			{1, 2}: {B: -sqrt6},
		})
	E4 := newBlock(lft.NewTerm(4, "E"),
		[]Coef{
			{B: -22, C: 5},
			{B: -21, C: 5},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -2 * sqrt3},
		})
	A61 := single(lft.NewTerm(6, "A1"), Coef{B: -35})
	A41 := single(lft.NewTerm(4, "A1"), Coef{B: -25, C: 5})
	A42 := single(lft.NewTerm(4, "A2"), Coef{B: -13, C: 7})
	return []*Block{T22, T21, E2, A21, A22, T41, T42, E4, A61, A41, A42}
}

func d5Config() *Config {
	return &Config{n: 5, blocks: d5Blocks(), ground: 8, lowspin: 0}
}
