package oct

import (
	lft "github.com/rmera/golft"
)

//The d4 configuration (e.g. Cr2+, Mn3+). The largest secular problem together with
//d5 and d6: 43 levels in 12 blocks, with two 7x7 triplet and singlet T blocks.
//The weak-field ground state is 5E(5D); at strong fields the 3T1(3H) root dives
//below it (the high-spin/low-spin crossover).
func d4Blocks() []*Block {
	T31 := newBlock(lft.NewTerm(3, "T1"),
		[]Coef{
			{Dq: -16, B: -15, C: 5},
			{Dq: -6, B: -11, C: 4},
			{Dq: -6, B: -3, C: 6},
			{Dq: 4, B: -1, C: 6},
			{Dq: 4, B: -9, C: 4},
			{Dq: 4, B: -11, C: 4},
			{Dq: 14, B: -16, C: 5},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -sqrt6},
			{0, 2}: {B: -3 * sqrt2},
			{0, 3}: {B: 2 * sqrt2, C: sqrt2},
			{0, 4}: {B: -2 * sqrt2},
			{1, 2}: {B: 5 * sqrt3},
			{1, 3}: {B: sqrt3},
			{1, 4}: {B: -sqrt3},
			{1, 5}: {B: 3},
			{1, 6}: {B: sqrt6},
			{2, 3}: {B: -3},
			{2, 4}: {B: -3},
			{2, 5}: {B: 5 * sqrt3},
			{2, 6}: {B: sqrt2, C: sqrt2},
			{3, 4}: {B: -10},
			{3, 6}: {B: 3 * sqrt2},
			{4, 5}: {B: -2 * sqrt3},
			{4, 6}: {B: -3 * sqrt2},
			{5, 6}: {B: sqrt6},
		})
	T12 := newBlock(lft.NewTerm(1, "T2"),
		[]Coef{
			{Dq: -16, B: -9, C: 7},
			{Dq: -6, B: -9, C: 6},
			{Dq: -6, B: 3, C: 8},
			{Dq: 4, B: -9, C: 6},
			{Dq: 4, B: -3, C: 6},
			{Dq: 4, B: 5, C: 8},
			{Dq: 14, C: 7},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 3 * sqrt2},
			{0, 2}: {B: -5 * sqrt6},
			{0, 4}: {B: -2 * sqrt2},
			{0, 5}: {B: 2 * sqrt2, C: sqrt2},
			{1, 2}: {B: -5 * sqrt3},
			{1, 3}: {B: 3},
			{1, 4}: {B: -3},
			{1, 5}: {B: -3},
			{1, 6}: {B: -sqrt6},
			{2, 3}: {B: -3 * sqrt3},
			{2, 4}: {B: 5 * sqrt3},
			{2, 5}: {B: -5 * sqrt3},
			{2, 6}: {B: 3 * sqrt2, C: sqrt2},
			{3, 4}: {B: -6},
			{3, 6}: {B: -3 * sqrt6},
			{4, 5}: {B: -10},
			{4, 6}: {B: sqrt6},
			{5, 6}: {B: sqrt6},
		})
	A11 := newBlock(lft.NewTerm(1, "A1"),
		[]Coef{
			{Dq: -16, C: 10},
			{Dq: -6, C: 6},
			{Dq: 4, B: 14, C: 11},
			{Dq: 4, B: -3, C: 6},
			{Dq: 24, B: -16, C: 8},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -12 * sqrt2},
			{0, 2}: {B: 4 * sqrt2, C: 2 * sqrt2},
			{0, 3}: {B: 2 * sqrt2},
			{1, 2}: {B: -12},
			{1, 3}: {B: -6},
			{2, 3}: {B: 20},
			{2, 4}: {B: 2 * sqrt6, C: sqrt6},
			{3, 4}: {B: 2 * sqrt6},
		})
	E11 := newBlock(lft.NewTerm(1, "E"),
		[]Coef{
			{Dq: -16, B: -9, C: 7},
			{Dq: -6, B: -6, C: 6},
			{Dq: 4, B: 5, C: 8},
			{Dq: 4, B: 6, C: 9},
			{Dq: 4, B: -3, C: 6},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 6},
			{0, 2}: {B: 2 * sqrt2, C: sqrt2},
			{0, 3}: {B: -2},
			{0, 4}: {B: -4},
			{1, 2}: {B: -3 * sqrt2},
			{1, 3}: {B: -12},
			{2, 3}: {B: 10 * sqrt2},
			{2, 4}: {B: -10 * sqrt2},
		})
	T32 := newBlock(lft.NewTerm(3, "T2"),
		[]Coef{
			{Dq: -6, B: -9, C: 4},
			{Dq: -6, B: -5, C: 6},
			{Dq: 4, B: -13, C: 4},
			{Dq: 4, B: -9, C: 4},
			{Dq: 14, B: -8, C: 5},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -5 * sqrt3},
			{0, 2}: {B: sqrt6},
			{0, 3}: {B: sqrt3},
			{0, 4}: {B: -sqrt6},
			{1, 2}: {B: -3 * sqrt2},
			{1, 3}: {B: 3},
			{1, 4}: {B: 3 * sqrt2, C: sqrt2},
			{2, 3}: {B: -2 * sqrt2},
			{2, 4}: {B: -6},
			{3, 4}: {B: 3 * sqrt2},
		})
	T11 := newBlock(lft.NewTerm(1, "T1"),
		[]Coef{
			{Dq: -6, B: -3, C: 6},
			{Dq: -6, B: -3, C: 8},
			{Dq: 4, B: -3, C: 6},
			{Dq: 14, B: -16, C: 7},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 5 * sqrt3},
			{0, 2}: {B: 3},
			{0, 3}: {B: sqrt6},
			{1, 2}: {B: -5 * sqrt3},
			{1, 3}: {B: sqrt2, C: sqrt2},
			{2, 3}: {B: -sqrt6},
		})
	E31 := newBlock(lft.NewTerm(3, "E"),
		[]Coef{
			{Dq: -6, B: -13, C: 4},
			{Dq: -6, B: -10, C: 4},
			{Dq: 4, B: -11, C: 4},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -4},
			{1, 2}: {B: -3 * sqrt2},
		})
	A32 := newBlock(lft.NewTerm(3, "A2"),
		[]Coef{
			{Dq: -6, B: -8, C: 4},
			{Dq: 4, B: -2, C: 7},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -12},
		})
	A12 := newBlock(lft.NewTerm(1, "A2"),
		[]Coef{
			{Dq: -6, B: -12, C: 6},
			{Dq: 4, B: -3, C: 6},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 6},
		})
	E51 := single(lft.NewTerm(5, "E"), Coef{Dq: -6, B: -21})
	T52 := single(lft.NewTerm(5, "T2"), Coef{Dq: 4, B: -21})
	A31 := single(lft.NewTerm(3, "A1"), Coef{Dq: -6, B: -12, C: 4})
	return []*Block{T31, T12, A11, E11, T32, T11, E31, A32, A12, E51, T52, A31}
}

func d4Config() *Config {
	return &Config{n: 4, blocks: d4Blocks(), ground: 9, lowspin: 0}
}

//d6 (e.g. Fe2+, Co3+) is the four-hole conjugate of d4. High-spin ground state 5T2;
//past the crossover the closed-shell singlet 1A1 takes over. The small positive
//tolerance absorbs roundoff right at the crossing, where the two curves are
//nearly tangent.
func d6Config() *Config {
	return &Config{n: 6, blocks: conjugate(d4Blocks()), ground: 10, lowspin: 2, crosstol: 1e-4}
}
