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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Usage differs from flag.FlagSet in that the argument array is given first
// with NewArgs() and Parse() is then called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "CHECK", "VERSION")
//
//	p, err := md.Parse()
//	...
//
// The reason for this difference is to allow effective parsing of modes:
// after a successful Parse(), the Mode() function reports which sub-mode (if
// any) was requested and NewMode() prepares the struct for parsing of that
// mode's own flags.
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions.
package modalflag
