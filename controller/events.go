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

// EventType tags the events produced by the Controller.
type EventType int

// The list of valid EventType values.
const (
	// the queue-empty sentinel, returned by Queue.GetNoWait() when there is
	// nothing to receive
	EventEmpty EventType = iota

	// the expected controller has been matched and opened
	EventConnected

	// the connected controller has been removed. the accompanying snapshot
	// is neutral
	EventDisconnected

	// the polled snapshot differs from the previously dispatched snapshot
	EventInputChanged

	// the capture loop has ended, either by request or because the
	// controller is permanently lost
	EventQuit
)

func (e EventType) String() string {
	switch e {
	case EventEmpty:
		return "empty"
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	case EventInputChanged:
		return "input changed"
	case EventQuit:
		return "quit"
	}
	return "invalid"
}

// Data is one entry in the event queue: an event tag and, for
// EventInputChanged and EventDisconnected, the snapshot that accompanies it.
//
// Data values are constructed by the Controller and consumed exactly once by
// the drive loop.
type Data struct {
	Event EventType
	Input Snapshot
}
