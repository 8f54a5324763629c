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
	"sync"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// the cycle frequency used by either PWM implementation until
// SetFrequency() is called
const defaultFrequency = 100

// the number of duty steps in one cycle of the hardware PWM peripheral. at
// the servo frequency of 50Hz this gives a pulse resolution of 2µs
const hardCycleLen = 10000

// hardPWM implements the PWM interface on one of the Pi's hardware PWM
// channels.
type hardPWM struct {
	pin  rpio.Pin
	duty float64
}

func newHardPWM(pin rpio.Pin) *hardPWM {
	p := &hardPWM{pin: pin}
	p.pin.Mode(rpio.Pwm)
	p.pin.Freq(defaultFrequency * hardCycleLen)
	p.pin.DutyCycle(0, hardCycleLen)
	return p
}

// Set implements the PWM interface.
func (p *hardPWM) Set(duty float64) {
	p.duty = clampDuty(duty)
	p.pin.DutyCycle(uint32(p.duty*hardCycleLen+0.5), hardCycleLen)
}

// SetFrequency implements the PWM interface.
func (p *hardPWM) SetFrequency(hz int) {
	if hz < 1 {
		hz = 1
	}
	p.pin.Freq(hz * hardCycleLen)
	p.Set(p.duty)
}

// Stop implements the PWM interface.
func (p *hardPWM) Stop() {
	p.pin.DutyCycle(0, hardCycleLen)
	p.pin.Mode(rpio.Output)
	p.pin.Low()
}

// softPWM implements the PWM interface by bit-banging the pin from a
// goroutine. The jitter of a scheduled goroutine is far too coarse for servo
// pulses but is imperceptible for motor speed and lamp brightness.
type softPWM struct {
	pin rpio.Pin

	crit sync.Mutex
	hz   int
	duty float64

	quit chan struct{}
	once sync.Once
}

func newSoftPWM(pin rpio.Pin) *softPWM {
	p := &softPWM{
		pin:  pin,
		hz:   defaultFrequency,
		quit: make(chan struct{}),
	}
	p.pin.Output()
	p.pin.Low()
	go p.run()
	return p
}

// Set implements the PWM interface.
func (p *softPWM) Set(duty float64) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.duty = clampDuty(duty)
}

// SetFrequency implements the PWM interface.
func (p *softPWM) SetFrequency(hz int) {
	if hz < 1 {
		hz = 1
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	p.hz = hz
}

// Stop implements the PWM interface.
func (p *softPWM) Stop() {
	p.once.Do(func() {
		close(p.quit)
	})
}

func (p *softPWM) run() {
	for {
		p.crit.Lock()
		hz := p.hz
		duty := p.duty
		p.crit.Unlock()

		period := time.Second / time.Duration(hz)
		on := time.Duration(duty * float64(period))
		off := period - on

		if on > 0 {
			p.pin.High()
			select {
			case <-p.quit:
				p.pin.Low()
				return
			case <-time.After(on):
			}
		}

		if off > 0 {
			p.pin.Low()
			select {
			case <-p.quit:
				p.pin.Low()
				return
			case <-time.After(off):
			}
		}
	}
}

func clampDuty(duty float64) float64 {
	if duty < 0.0 {
		return 0.0
	}
	if duty > 1.0 {
		return 1.0
	}
	return duty
}
