/*
 * errors.go, part of golft
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

import "fmt"

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given string (normally the name of the caller) to the decoration slice and returns the resulting slice. If given an empty string, it just returns the current slice.
}

//InvalidParameterError is returned when a numerical input (Racah parameters, reduction
//factors, grid bounds) is out of its physical domain or not a normal float. These errors
//are always produced before any diagonalization starts.
type InvalidParameterError struct {
	message string
	deco    []string
}

func (err InvalidParameterError) Error() string { return err.message }

func (err InvalidParameterError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//NewInvalidParameter returns an InvalidParameterError whose message should name the
//offending quantity and its value.
func NewInvalidParameter(caller, format string, a ...interface{}) InvalidParameterError {
	return InvalidParameterError{message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

//UnsupportedConfigurationError is returned when asked for a d^n configuration outside
//the d2-d8 range covered by the secular matrices. d0, d1, d9 and d10 have no inter-electron
//repulsion problem to solve, so there is no diagram to compute for them.
type UnsupportedConfigurationError struct {
	n       int
	message string
	deco    []string
}

func (err UnsupportedConfigurationError) Error() string { return err.message }

func (err UnsupportedConfigurationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//ElectronCount returns the rejected d-electron count.
func (err UnsupportedConfigurationError) ElectronCount() int { return err.n }

//NewUnsupportedConfiguration returns an UnsupportedConfigurationError for the count n.
func NewUnsupportedConfiguration(caller string, n int) UnsupportedConfigurationError {
	return UnsupportedConfigurationError{n: n, message: fmt.Sprintf("goLFT: no secular matrices for a d%d configuration, only d2-d8 are supported", n), deco: []string{caller}}
}

//NumericalInstabilityError reports that the diagonalization of one symmetry block, at one
//crystal-field strength, produced non-finite numbers or failed to converge. It is recoverable:
//the sweep drops the offending grid point and goes on, reporting the error next to the results.
type NumericalInstabilityError struct {
	term    Term
	delta   float64
	message string
	deco    []string
}

func (err NumericalInstabilityError) Error() string { return err.message }

func (err NumericalInstabilityError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Term returns the term symbol of the block that failed.
func (err NumericalInstabilityError) Term() Term { return err.term }

//Delta returns the crystal-field strength (10Dq, cm^-1) at which the failure happened.
func (err NumericalInstabilityError) Delta() float64 { return err.delta }

//NewNumericalInstability returns a NumericalInstabilityError for the given block and field
//strength. The detail string says what actually went wrong.
func NewNumericalInstability(caller string, term Term, delta float64, detail string) NumericalInstabilityError {
	m := fmt.Sprintf("goLFT: unstable diagonalization of the %s block at 10Dq=%4.1f cm^-1: %s", term.String(), delta, detail)
	return NumericalInstabilityError{term: term, delta: delta, message: m, deco: []string{caller}}
}

//errDecorate is a helper function that asserts that the error implements lft.Error
//and decorates it with the caller's name before returning it.
//if used with an error not implementing lft.Error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use the typed errors above.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Panic messages for programming errors, as opposed to wrong user input.
const (
	ErrNilParameters = PanicMsg("goLFT: nil Racah parameter set given")
	ErrNilGrid       = PanicMsg("goLFT: nil crystal-field grid given")
	ErrNilConfig     = PanicMsg("goLFT: nil d^n configuration given")
	ErrBadIrrep      = PanicMsg("goLFT: irreducible representation must be one of A1, A2, E, T1, T2")
	ErrBadMult       = PanicMsg("goLFT: spin multiplicity must be between 1 and 6")
)
