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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// Note how the "Expected" functions handle the nil type: nil is considered a
// success and consequently will cause ExpectedFailure to fail and
// ExpectedSuccess to succeed. This is a consequence of how errors usually
// work in Go (nil indicating no error).
//
// The Equate() function compares like-typed variables for equality. Some
// types can be compared against int for convenience. See Equate()
// documentation for discussion why.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output. The Writer.Compare() function tests for equality against
// an expected string.
package test
