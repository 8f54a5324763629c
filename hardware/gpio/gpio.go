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

package gpio

import (
	"github.com/jetsetilly/gopherrover/curated"
	"github.com/stianeikeland/go-rpio/v4"
)

// Error patterns returned by the gpio package.
const (
	InvalidPin = "gpio: invalid pin %d"
	NotOpen    = "gpio: device not open"
)

// the highest BCM pin number on the 40 pin header
const maxPin = 27

// PWM is a single pulse-width modulated output pin. Duty is expressed as a
// fraction of the cycle in the range [0.0, 1.0]. Values outside that range
// are clamped.
type PWM interface {
	// Set the fraction of each cycle for which the pin is high.
	Set(duty float64)

	// SetFrequency changes the cycle frequency. The duty fraction is
	// preserved.
	SetFrequency(hz int)

	// Stop drives the pin low and releases any resources held by the pin.
	// The PWM value is no longer usable after Stop.
	Stop()
}

// Input is a single digital input pin.
type Input interface {
	Read() bool
}

// GPIO represents the Raspberry Pi GPIO header. The zero value is not
// usable, use NewGPIO().
type GPIO struct {
	open bool
}

// NewGPIO is the preferred method of initialisation for the GPIO type.
//
// The returned value owns the memory mapping of the GPIO registers and must
// be closed when the process is done with the header.
func NewGPIO() (*GPIO, error) {
	err := rpio.Open()
	if err != nil {
		return nil, curated.Errorf("gpio: %v", err)
	}
	return &GPIO{open: true}, nil
}

// Close releases the GPIO header. Pins claimed through this instance must
// not be used after Close.
func (g *GPIO) Close() {
	if !g.open {
		return
	}
	g.open = false
	_ = rpio.Close()
}

// PWM claims the numbered BCM pin as a pulse-width modulated output. The
// initial state is a stopped pin, held low.
func (g *GPIO) PWM(pin int) (PWM, error) {
	if !g.open {
		return nil, curated.Errorf(NotOpen)
	}
	if pin < 0 || pin > maxPin {
		return nil, curated.Errorf(InvalidPin, pin)
	}

	switch pin {
	case 12, 13, 18, 19:
		return newHardPWM(rpio.Pin(pin)), nil
	}

	return newSoftPWM(rpio.Pin(pin)), nil
}

// PullDownInput claims the numbered BCM pin as an input with the internal
// pull-down resistor enabled. A floating pin reads false.
func (g *GPIO) PullDownInput(pin int) (Input, error) {
	if !g.open {
		return nil, curated.Errorf(NotOpen)
	}
	if pin < 0 || pin > maxPin {
		return nil, curated.Errorf(InvalidPin, pin)
	}

	p := rpio.Pin(pin)
	p.Input()
	p.PullDown()

	return &input{pin: p}, nil
}

// input implements the Input interface.
type input struct {
	pin rpio.Pin
}

// Read implements the Input interface.
func (inp *input) Read() bool {
	return inp.pin.Read() == rpio.High
}
