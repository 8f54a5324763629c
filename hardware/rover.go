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

// Package hardware assembles the rover's actuators into a single value. The
// subsystems can be used individually but the Rover type takes care of
// claiming every pin, and of releasing them all in a safe order.
package hardware

import (
	"github.com/jetsetilly/gopherrover/hardware/gpio"
	"github.com/jetsetilly/gopherrover/hardware/lamp"
	"github.com/jetsetilly/gopherrover/hardware/motor"
	"github.com/jetsetilly/gopherrover/hardware/servo"
)

// Pins lists the BCM pin assignment of every actuator.
type Pins struct {
	Lamp  int
	Pan   int
	Tilt  int
	Fault int

	LeftForward   int
	LeftBackward  int
	RightForward  int
	RightBackward int
}

// DefaultPins returns the pin assignment of the reference chassis. The pan
// and tilt servos sit on the two hardware PWM channels.
func DefaultPins() Pins {
	return Pins{
		Lamp:          16,
		Pan:           13,
		Tilt:          12,
		Fault:         26,
		LeftForward:   22,
		LeftBackward:  24,
		RightForward:  27,
		RightBackward: 23,
	}
}

// Rover is the complete set of actuators on the chassis.
type Rover struct {
	gpio *gpio.GPIO

	LeftMotor  *motor.Motor
	RightMotor *motor.Motor
	Pan        *servo.Servo
	Tilt       *servo.Servo
	Lamp       *lamp.Lamp

	// fault is asserted high by the motor power board when it has cut
	// power. the pull-down means a missing board reads as healthy
	fault gpio.Input
}

// NewRover is the preferred method of initialisation for the Rover type.
// Every pin named in the Pins value is claimed. On error, any pins already
// claimed are released.
func NewRover(pins Pins) (*Rover, error) {
	g, err := gpio.NewGPIO()
	if err != nil {
		return nil, err
	}

	rov := &Rover{gpio: g}

	// claim the raw pins before building any actuators. an error path with
	// nothing built is easier to unwind
	pwm := func(pin int) gpio.PWM {
		if err != nil {
			return nil
		}
		var p gpio.PWM
		p, err = g.PWM(pin)
		return p
	}

	leftFwd := pwm(pins.LeftForward)
	leftBwd := pwm(pins.LeftBackward)
	rightFwd := pwm(pins.RightForward)
	rightBwd := pwm(pins.RightBackward)
	pan := pwm(pins.Pan)
	tilt := pwm(pins.Tilt)
	lmp := pwm(pins.Lamp)

	if err == nil {
		rov.fault, err = g.PullDownInput(pins.Fault)
	}

	if err != nil {
		for _, p := range []gpio.PWM{leftFwd, leftBwd, rightFwd, rightBwd, pan, tilt, lmp} {
			if p != nil {
				p.Stop()
			}
		}
		g.Close()
		return nil, err
	}

	rov.LeftMotor = motor.NewMotor(leftFwd, leftBwd)
	rov.RightMotor = motor.NewMotor(rightFwd, rightBwd)
	rov.Pan = servo.NewServo(pan)
	rov.Tilt = servo.NewServo(tilt)
	rov.Lamp = lamp.NewLamp(lmp)

	return rov, nil
}

// Faulted returns true if the motor power board has asserted its fault
// line.
func (rov *Rover) Faulted() bool {
	return rov.fault.Read()
}

// SafeState stops both motors and recentres both servos. The lamp is left
// as it is.
func (rov *Rover) SafeState() {
	rov.LeftMotor.Stop()
	rov.RightMotor.Stop()
	rov.Pan.Initial()
	rov.Tilt.Initial()
}

// Close puts the rover into the safe state and releases every pin. The
// Rover is no longer usable after Close.
func (rov *Rover) Close() {
	rov.SafeState()
	rov.LeftMotor.Close()
	rov.RightMotor.Close()
	rov.Pan.Close()
	rov.Tilt.Close()
	rov.Lamp.Close()
	rov.gpio.Close()
}
