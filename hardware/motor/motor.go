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

// Package motor drives one side of the rover's drive train through an
// H-bridge with separate forward and backward PWM inputs.
package motor

import (
	"github.com/jetsetilly/gopherrover/hardware/gpio"
)

// Motor represents one motor of the drive train.
type Motor struct {
	forward  gpio.PWM
	backward gpio.PWM
}

// NewMotor is the preferred method of initialisation for the Motor type.
// The motor starts in the stopped state.
func NewMotor(forward, backward gpio.PWM) *Motor {
	m := &Motor{
		forward:  forward,
		backward: backward,
	}
	m.Stop()
	return m
}

// Move runs the motor at the given duty fraction. Duty values greater than
// 1.0 are clamped and negative values stop the motor.
//
// The opposing input of the H-bridge is always cut before power is applied.
// Driving both inputs at once would short the bridge.
func (m *Motor) Move(duty float64, forward bool) {
	if duty > 1.0 {
		duty = 1.0
	}
	if duty < 0.0 {
		duty = 0.0
	}

	if forward {
		m.backward.Set(0)
		m.forward.Set(duty)
	} else {
		m.forward.Set(0)
		m.backward.Set(duty)
	}
}

// Stop cuts power to both inputs of the H-bridge.
func (m *Motor) Stop() {
	m.forward.Set(0)
	m.backward.Set(0)
}

// Close stops the motor and releases both pins. The Motor is no longer
// usable after Close.
func (m *Motor) Close() {
	m.forward.Stop()
	m.backward.Stop()
}
