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
	"time"
)

// DeviceEventKind classifies the events returned by Device.WaitEvent().
type DeviceEventKind int

// The list of valid DeviceEventKind values.
const (
	// nothing happened before the wait timed out. the caller should simply
	// wait again
	DeviceNothing DeviceEventKind = iota

	// a stick has been attached to the system. the Index field of the
	// DeviceEvent identifies it for the Open() function
	DeviceAdded

	// a stick has been removed from the system. the InstanceID field of the
	// DeviceEvent identifies which one
	DeviceRemoved

	// axis, hat or button activity on the opened stick
	DeviceInput

	// a synthetic termination event, sent with PushQuit()
	DeviceQuit
)

// DeviceEvent is returned by Device.WaitEvent().
type DeviceEvent struct {
	Kind DeviceEventKind

	// instance identity of the stick the event relates to. valid for
	// DeviceRemoved events
	InstanceID int

	// enumeration index of a newly attached stick. valid for DeviceAdded
	// events
	Index int
}

// Device is the interface to the physical input system. The sdljoystick
// package provides the production implementation. The Controller type is the
// sole owner of a Device; no other part of the application should touch it.
//
// A Device distinguishes between the collection of sticks attached to the
// system (enumerated with Count() and Name()) and the single stick that has
// been opened for reading.
type Device interface {
	// enumeration of attached sticks
	Count() int
	Name(idx int) string

	// Open the numbered stick for reading. An error is returned if the stick
	// has disappeared since enumeration; treat that as "not connected"
	Open(idx int) error

	// Close the opened stick. no-op if no stick is open
	Close()

	// identity of the opened stick
	OpenedName() string
	InstanceID() int

	// dimensions of the opened stick
	NumAxes() int
	NumButtons() int
	NumHats() int

	// reads of the opened stick. axis values are normalized to the range
	// [-1.0, 1.0]. hat values are per-component in the set {-1, 0, 1} with
	// positive Y meaning up
	Axis(i int) float32
	Button(i int) bool
	Hat(i int) (int, int)

	// WaitEvent blocks until the next device event or until the timeout
	// elapses, in which case a DeviceNothing event is returned. the timeout
	// exists so that callers can check for cooperative cancellation
	WaitEvent(timeout time.Duration) DeviceEvent

	// PushQuit injects a synthetic DeviceQuit event, waking any WaitEvent()
	PushQuit()

	// Flush discards all pending device events
	Flush()
}
