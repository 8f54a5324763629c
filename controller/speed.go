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

package controller

// Speed is one of five discrete command magnitudes derived from a continuous
// analog sample.
type Speed int

// The list of valid Speed values. A quantized axis is always one of these.
const (
	Zero Speed = iota
	Slow
	Middle
	High
	Max
)

func (s Speed) String() string {
	switch s {
	case Zero:
		return "zero"
	case Slow:
		return "slow"
	case Middle:
		return "middle"
	case High:
		return "high"
	case Max:
		return "max"
	}
	return "invalid"
}
