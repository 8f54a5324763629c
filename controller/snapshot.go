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

import (
	"fmt"
	"strings"
)

// AxisValue is the converted reading of a single analog axis.
//
// For quantizing profiles the Value field holds one of the discrete Speed
// levels and should be read with the Level() function. For the Simple
// profile the Value field holds the raw axis reading.
type AxisValue struct {
	// true if the raw axis value was >= 0. always true for trigger axes
	Positive bool

	Value float32
}

// Level returns the axis value as a discrete Speed. Only meaningful for
// values produced by a quantizing profile.
func (a AxisValue) Level() Speed {
	return Speed(a.Value)
}

// HatValue is the reading of a single 2D hat. Each component is in the set
// {-1, 0, 1}, with positive Y meaning up.
type HatValue struct {
	X int
	Y int
}

// Snapshot records all button, hat and axis values for one poll cycle. A
// snapshot is built fresh every cycle and never mutated once it has been
// placed in the event queue.
//
// The zero value is the neutral snapshot, which is what a Disconnected event
// carries.
type Snapshot struct {
	Buttons []bool
	Hats    []HatValue
	Axes    []AxisValue
}

// EqualTo compares two snapshots by value. Two snapshots are equal if and
// only if all three sequences are pairwise equal element-by-element.
func (s Snapshot) EqualTo(o Snapshot) bool {
	if len(s.Buttons) != len(o.Buttons) || len(s.Hats) != len(o.Hats) || len(s.Axes) != len(o.Axes) {
		return false
	}

	for i := range s.Buttons {
		if s.Buttons[i] != o.Buttons[i] {
			return false
		}
	}

	for i := range s.Hats {
		if s.Hats[i] != o.Hats[i] {
			return false
		}
	}

	for i := range s.Axes {
		if s.Axes[i] != o.Axes[i] {
			return false
		}
	}

	return true
}

// String implements the Stringer interface. Used when dumping controller
// input to the log.
func (s Snapshot) String() string {
	b := strings.Builder{}

	for i := range s.Buttons {
		b.WriteString(fmt.Sprintf("button %d: %v; ", i, s.Buttons[i]))
	}

	for i := range s.Hats {
		b.WriteString(fmt.Sprintf("hat %d: %d,%d; ", i, s.Hats[i].X, s.Hats[i].Y))
	}

	for i := range s.Axes {
		b.WriteString(fmt.Sprintf("axis %d: %.3f,%v; ", i, s.Axes[i].Value, s.Axes[i].Positive))
	}

	return strings.TrimSuffix(b.String(), "; ")
}
