package oct

import (
	lft "github.com/rmera/golft"
)

//The d2 configuration (e.g. V3+, Cr4+). Free-ion terms 3F, 3P, 1S, 1D, 1G split in
//Oh into seven blocks; the ground state is the lowest root of 3T1(3F) at any field
//strength, so there is no spin crossover.
func d2Blocks() []*Block {
	A11 := newBlock(lft.NewTerm(1, "A1"),
		[]Coef{
			{Dq: -8, B: 10, C: 5},
			{Dq: 12, B: 8, C: 4},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 2 * sqrt6, C: sqrt6},
		})
	E1 := newBlock(lft.NewTerm(1, "E"),
		[]Coef{
			{Dq: -8, B: 1, C: 2},
			{Dq: 12, C: 2},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -2 * sqrt3},
		})
	T12 := newBlock(lft.NewTerm(1, "T2"),
		[]Coef{
			{Dq: -8, B: 1, C: 2},
			{Dq: 2, C: 2},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 2 * sqrt3},
		})
	T31 := newBlock(lft.NewTerm(3, "T1"),
		[]Coef{
			{Dq: -8, B: -5},
			{Dq: 2, B: 4},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 6},
		})
	T11 := single(lft.NewTerm(1, "T1"), Coef{Dq: 2, B: 4, C: 2})
	T32 := single(lft.NewTerm(3, "T2"), Coef{Dq: 2, B: -8})
	A32 := single(lft.NewTerm(3, "A2"), Coef{Dq: 12, B: -8})
	return []*Block{A11, E1, T12, T31, T11, T32, A32}
}

func d2Config() *Config {
	return &Config{n: 2, blocks: d2Blocks(), ground: 3, lowspin: -1}
}

//d8 (e.g. Ni2+) is the two-hole conjugate of d2. The ground state is the field
//independent 3A2, last block in the list.
func d8Config() *Config {
	return &Config{n: 8, blocks: conjugate(d2Blocks()), ground: 6, lowspin: -1}
}
