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

// Package lamp controls the rover's dimmable headlamp.
package lamp

import (
	"sync"

	"github.com/jetsetilly/gopherrover/hardware/gpio"
)

// Brightness is stepped in tenths of full power. An integer scale avoids
// the drift of accumulating a floating point step.
const numSteps = 10

// Lamp represents the headlamp. Brightness is retained while the lamp is
// off and restored when it is next turned on.
type Lamp struct {
	pwm gpio.PWM

	crit       sync.Mutex
	lit        bool
	brightness int
}

// NewLamp is the preferred method of initialisation for the Lamp type. The
// lamp starts off at full brightness.
func NewLamp(pwm gpio.PWM) *Lamp {
	l := &Lamp{
		pwm:        pwm,
		brightness: numSteps,
	}
	l.pwm.Set(0)
	return l
}

// On turns the lamp on at the retained brightness. If the lamp has been
// dimmed all the way to darkness, On restores full brightness.
func (l *Lamp) On() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.lit = true
	if l.brightness == 0 {
		l.brightness = numSteps
	}
	l.apply()
}

// Off turns the lamp off. The brightness setting is retained.
func (l *Lamp) Off() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.lit = false
	l.apply()
}

// Brighten increases brightness by one step, saturating at full power.
func (l *Lamp) Brighten() {
	l.crit.Lock()
	defer l.crit.Unlock()
	if l.brightness < numSteps {
		l.brightness++
	}
	l.apply()
}

// Dim decreases brightness by one step. A lamp dimmed to zero is dark even
// when lit.
func (l *Lamp) Dim() {
	l.crit.Lock()
	defer l.crit.Unlock()
	if l.brightness > 0 {
		l.brightness--
	}
	l.apply()
}

// Close turns the lamp off and releases the pin. The Lamp is no longer
// usable after Close.
func (l *Lamp) Close() {
	l.pwm.Stop()
}

func (l *Lamp) apply() {
	if !l.lit {
		l.pwm.Set(0)
		return
	}
	l.pwm.Set(float64(l.brightness) / numSteps)
}
