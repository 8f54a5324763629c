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

// XboxButton enumerates the button indices of an Xbox-class controller as
// reported by SDL.
type XboxButton int

// The list of valid XboxButton values. Not all of these are consumed by the
// drive policy but the full set documents the device generation the fixed
// button count refers to.
const (
	XboxA           XboxButton = 0
	XboxB           XboxButton = 1
	XboxX           XboxButton = 3
	XboxY           XboxButton = 4
	XboxBumperLeft  XboxButton = 6
	XboxBumperRight XboxButton = 7
	XboxBack        XboxButton = 10
	XboxStart       XboxButton = 11
	XboxGuide       XboxButton = 12
	XboxStickLeft   XboxButton = 13
	XboxStickRight  XboxButton = 14
)

// XboxAxis enumerates the analog axis indices of an Xbox-class controller.
type XboxAxis int

// The list of valid XboxAxis values.
const (
	XboxStickLeftX   XboxAxis = 0
	XboxStickLeftY   XboxAxis = 1
	XboxStickRightX  XboxAxis = 2
	XboxStickRightY  XboxAxis = 3
	XboxTriggerRight XboxAxis = 4
	XboxTriggerLeft  XboxAxis = 5
)

// Xbox provides named access into a Snapshot taken from an Xbox-class
// controller. All accessors are safe to use with a neutral snapshot, in
// which case the corresponding zero value is returned.
var Xbox xbox

type xbox struct{}

// Button returns the state of the numbered button.
func (_ xbox) Button(s Snapshot, b XboxButton) bool {
	if int(b) >= len(s.Buttons) {
		return false
	}
	return s.Buttons[b]
}

// HatX returns the horizontal component of the directional pad. Positive
// means right.
func (_ xbox) HatX(s Snapshot) int {
	if len(s.Hats) == 0 {
		return 0
	}
	return s.Hats[0].X
}

// HatY returns the vertical component of the directional pad. Positive means
// up.
func (_ xbox) HatY(s Snapshot) int {
	if len(s.Hats) == 0 {
		return 0
	}
	return s.Hats[0].Y
}

// Axis returns the converted value of the numbered analog axis.
func (_ xbox) Axis(s Snapshot, a XboxAxis) AxisValue {
	if int(a) >= len(s.Axes) {
		return AxisValue{Positive: true}
	}
	return s.Axes[a]
}

// StickLeftX is shorthand for Axis(s, XboxStickLeftX).
func (x xbox) StickLeftX(s Snapshot) AxisValue { return x.Axis(s, XboxStickLeftX) }

// StickLeftY is shorthand for Axis(s, XboxStickLeftY).
func (x xbox) StickLeftY(s Snapshot) AxisValue { return x.Axis(s, XboxStickLeftY) }

// StickRightX is shorthand for Axis(s, XboxStickRightX).
func (x xbox) StickRightX(s Snapshot) AxisValue { return x.Axis(s, XboxStickRightX) }

// StickRightY is shorthand for Axis(s, XboxStickRightY).
func (x xbox) StickRightY(s Snapshot) AxisValue { return x.Axis(s, XboxStickRightY) }

// TriggerLeft is shorthand for Axis(s, XboxTriggerLeft).
func (x xbox) TriggerLeft(s Snapshot) AxisValue { return x.Axis(s, XboxTriggerLeft) }

// TriggerRight is shorthand for Axis(s, XboxTriggerRight).
func (x xbox) TriggerRight(s Snapshot) AxisValue { return x.Axis(s, XboxTriggerRight) }
