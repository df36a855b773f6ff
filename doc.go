/*
 * doc.go, part of golft
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package lft is the main package of the goLFT library. It provides the basic types for
ligand-field calculations on octahedral transition-metal complexes: the Racah electron-repulsion
parameters, crystal-field grids and spectroscopic term symbols, plus the errors shared by the
rest of the library.



	**goLFT Capabilities**


    Carries the complete Tanabe-Sugano secular matrices for d2-d8 ions in an
	octahedral field, with the literature coefficients (package oct).

    Sweeps the crystal-field strength over a grid and diagonalizes every
	symmetry block at each point, referencing all the energies to the ground
	level, including through the high-spin/low-spin crossover (package sweep).

    Assembles the eigenvalues into Tanabe-Sugano (E/B vs 10Dq/B) or
	energy-correlation (E vs 10Dq) datasets, with energy cutoffs and
	root limits (package diagram).

    Converts between Racah and Slater-Condon electron-repulsion parameters
	and applies nephelauxetic reduction factors.

    Writes datasets as plain or compressed CSV, prints single-point
	level tables and plots the diagrams to PNG files (packages export
	and lftplot).

    Runs batches of calculations over ranges of Dq, B and C (package batch).



All energies are in cm^-1 unless stated otherwise. The field strength is always given
as the cubic splitting 10Dq, also in cm^-1. Only octahedral (Oh) complexes are handled;
as every term of a d^n ion in Oh is gerade, the "g" subscript is implied throughout and
only appended when labels are printed.

goLFT uses the gonum libraries (gonum.org) for all the linear algebra.*/
package lft
