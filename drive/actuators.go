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

package drive

import "time"

// Motor is one side of the rover's drive train. Implemented by the
// hardware/motor package.
type Motor interface {
	Move(duty float64, forward bool)
	Stop()
}

// Servo is one axis of the camera mount. Implemented by the hardware/servo
// package.
type Servo interface {
	Move(step time.Duration, interval time.Duration, clockwise bool)
	Stop()
	Initial()
}

// Lamp is the headlamp. Implemented by the hardware/lamp package.
type Lamp interface {
	On()
	Off()
	Brighten()
	Dim()
}

// FaultInput reports whether the motor power board has cut power.
// Implemented by the hardware package.
type FaultInput interface {
	Faulted() bool
}

// Actuators gathers everything the driving policy can move. The Fault field
// may be nil, in which case the drive train is assumed healthy.
type Actuators struct {
	LeftMotor  Motor
	RightMotor Motor
	Pan        Servo
	Tilt       Servo
	Lamp       Lamp
	Fault      FaultInput
}
