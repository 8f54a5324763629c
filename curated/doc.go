// This file is part of GopherRover.
//
// GopherRover is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherRover is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherRover.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error. Unlike fmt errors, the pattern used to create
// the error can later be tested for:
//
//	e := curated.Errorf("connection: %v", err)
//
//	if curated.Is(e, "connection: %v") {
//		...
//	}
//
// The Has() function is similar to Is() but checks for the pattern anywhere
// in the error chain, rather than just at the outermost level. The IsAny()
// function answers whether the error was created by curated.Errorf() at all;
// an 'uncurated' error can be thought of as an unexpected error.
//
// The Error() function implementation for curated errors ensures that the
// message chain is normalised - that it does not contain duplicate adjacent
// parts. The practical advantage of this is that functions never need worry
// about when or whether to wrap an error they are returning up the chain.
package curated
