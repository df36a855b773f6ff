package oct

import (
	lft "github.com/rmera/golft"
)

//The d3 configuration (e.g. Cr3+, Mn4+). Free-ion terms 4F, 4P, 2P, 2D (twice),
//2F, 2G, 2H. The ground state is always 4A2(4F), the half-filled t2g shell.
func d3Blocks() []*Block {
	T22 := newBlock(lft.NewTerm(2, "T2"),
		[]Coef{
			{Dq: -12, C: 5},
			{Dq: -2, B: -6, C: 3},
			{Dq: -2, B: 4, C: 3},
			{Dq: 8, B: 6, C: 5},
			{Dq: 8, B: -2, C: 3},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -3 * sqrt3},
			{0, 2}: {B: -5 * sqrt3},
			{0, 3}: {B: 4, C: 2},
			{0, 4}: {B: 2},
			{1, 2}: {B: 3},
			{1, 3}: {B: -3 * sqrt3},
			{1, 4}: {B: -3 * sqrt3},
			{2, 3}: {B: -sqrt3},
			{2, 4}: {B: sqrt3},
			{3, 4}: {B: 10},
		})
	T21 := newBlock(lft.NewTerm(2, "T1"),
		[]Coef{
			{Dq: -12, B: -6, C: 3},
			{Dq: -2, C: 3},
			{Dq: -2, B: -6, C: 3},
			{Dq: 8, B: -6, C: 3},
			{Dq: 8, B: -2, C: 3},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -3},
			{0, 2}: {B: 3},
			{0, 4}: {B: -2 * sqrt3},
			{1, 2}: {B: -3},
			{1, 3}: {B: 3},
			{1, 4}: {B: 3 * sqrt3},
			{2, 3}: {B: -3},
			{2, 4}: {B: -sqrt3},
			{3, 4}: {B: 2 * sqrt3},
		})
	E2 := newBlock(lft.NewTerm(2, "E"),
		[]Coef{
			{Dq: -12, B: -6, C: 3},
			{Dq: -2, B: 8, C: 6},
			{Dq: -2, B: -1, C: 3},
			{Dq: 18, B: -8, C: 4},
		},
		map[[2]int]Coef{
			{0, 1}: {B: -6 * sqrt2},
			{0, 2}: {B: -3 * sqrt2},
			{1, 2}: {B: 10},
			{1, 3}: {B: 2 * sqrt3, C: sqrt3},
			{2, 3}: {B: 2 * sqrt3},
		})
	T41 := newBlock(lft.NewTerm(4, "T1"),
		[]Coef{
			{Dq: -2, B: -3},
			{Dq: 8, B: -12},
		},
		map[[2]int]Coef{
			{0, 1}: {B: 6},
		})
	A42 := single(lft.NewTerm(4, "A2"), Coef{Dq: -12, B: -15})
	T42 := single(lft.NewTerm(4, "T2"), Coef{Dq: -2, B: -15})
	A21 := single(lft.NewTerm(2, "A1"), Coef{Dq: -2, B: -11, C: 3})
	A22 := single(lft.NewTerm(2, "A2"), Coef{Dq: -2, B: 9, C: 3})
	return []*Block{T22, T21, E2, T41, A42, T42, A21, A22}
}

func d3Config() *Config {
	return &Config{n: 3, blocks: d3Blocks(), ground: 4, lowspin: -1}
}

//d7 (e.g. Co2+) is the three-hole conjugate of d3. The weak-field ground state is
//the lowest root of 4T1(4F); past the crossover the doublet 2E takes over.
func d7Config() *Config {
	return &Config{n: 7, blocks: conjugate(d3Blocks()), ground: 3, lowspin: 2}
}
