/*
 * conversion.go, part of golft
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

package lft

//This provides useful conversion factors and other constants

//Conversions
const (
	EV2Cm   = 8065.54 //eV 2 wavenumbers (cm^-1)
	Cm2EV   = 1 / 8065.54
	H2Cm    = 219474.6 //Hartree 2 wavenumbers
	Cm2H    = 1 / 219474.6
	Kcal2Cm = 349.755 //Kcal/mol 2 wavenumbers
	Cm2Kcal = 1 / 349.755
)

//Others
const (
	FreeIonRatio = 4.5 //typical C/B for a free 3d ion, useful as a default
)
