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

// Package controller captures input from a handheld game controller and
// converts it into a stream of events suitable for the drive package.
//
// The Controller type owns a Device (the physical input system, in practice
// the sdljoystick package) and runs a capture loop on its own goroutine. On
// every device wakeup the controller reads the full button/hat/axis state,
// quantizes analog values through a Converter and assembles a Snapshot. If
// the snapshot differs from the previously dispatched snapshot an
// InputChanged event is placed in the Data queue.
//
// The capture loop also monitors connectivity. When the connected controller
// is removed a Disconnected event is emitted (carrying a neutral snapshot)
// and a bounded reconnection search begins. If the search times out the
// controller is considered permanently lost and a Quit event is emitted.
//
// The Data queue is an unbounded FIFO with a single producer (the capture
// loop) and a single consumer (the drive loop). Events are received in the
// order they were produced.
package controller
