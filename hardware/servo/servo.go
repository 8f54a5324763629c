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

// Package servo positions an SG90 class hobby servo.
//
// The servo is commanded by a pulse of between 0.5ms and 2.4ms repeated
// every 20ms. Rather than jumping to a target position, movement is
// expressed as a rate. The Move() function starts the pulse width stepping
// and the servo sweeps until it is told to stop or until it reaches the end
// of its travel. A short step and interval gives a slow smooth pan, a
// longer step a fast slew.
package servo

import (
	"sync"
	"time"

	"github.com/jetsetilly/gopherrover/hardware/gpio"
)

// Pulse width limits of the SG90. Beyond these limits the servo buzzes
// against its end stops.
const (
	MinPulse = 500 * time.Microsecond
	MaxPulse = 2400 * time.Microsecond
)

// The pulse is repeated every frame. Fifty frames per second.
const Frame = 20 * time.Millisecond

// DefaultInterval is the stepping interval used when Move() is given an
// interval of zero.
const DefaultInterval = 25 * time.Millisecond

// centre of travel
const initialPulse = (MinPulse + MaxPulse) / 2

// Servo represents a single SG90 on a hardware PWM pin.
type Servo struct {
	pwm gpio.PWM

	crit     sync.Mutex
	pulse    time.Duration
	step     time.Duration
	interval time.Duration

	quit chan struct{}
	once sync.Once
}

// NewServo is the preferred method of initialisation for the Servo type.
// The servo moves to the centre of its travel immediately.
//
// The supplied PWM pin should be backed by a hardware PWM channel. A
// software loop cannot time servo pulses accurately.
func NewServo(pwm gpio.PWM) *Servo {
	s := &Servo{
		pwm:      pwm,
		pulse:    initialPulse,
		interval: DefaultInterval,
		quit:     make(chan struct{}),
	}

	s.pwm.SetFrequency(int(time.Second / Frame))
	s.pwm.Set(dutyFraction(s.pulse))

	go s.run()

	return s
}

// Move starts the servo sweeping. The pulse width changes by step every
// interval until Stop() is called or the end of travel is reached.
// Clockwise rotation shortens the pulse.
//
// Calling Move() while a sweep is in progress retargets the sweep without
// pausing it.
func (s *Servo) Move(step time.Duration, interval time.Duration, clockwise bool) {
	if step < 0 {
		step = -step
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clockwise {
		step = -step
	}

	s.crit.Lock()
	defer s.crit.Unlock()
	s.step = step
	s.interval = interval
}

// Stop halts any sweep in progress. The servo holds its current position.
func (s *Servo) Stop() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.step = 0
}

// Initial halts any sweep in progress and returns the servo to the centre
// of its travel.
func (s *Servo) Initial() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.step = 0
	s.pulse = initialPulse
	s.pwm.Set(dutyFraction(s.pulse))
}

// Close stops the stepping goroutine and releases the pin. The Servo is no
// longer usable after Close.
func (s *Servo) Close() {
	s.once.Do(func() {
		close(s.quit)
	})
	s.pwm.Stop()
}

func (s *Servo) run() {
	for {
		s.crit.Lock()
		interval := s.interval
		s.crit.Unlock()

		select {
		case <-s.quit:
			return
		case <-time.After(interval):
		}

		s.crit.Lock()
		if s.step != 0 {
			s.pulse += s.step
			if s.pulse <= MinPulse {
				s.pulse = MinPulse
				s.step = 0
			} else if s.pulse >= MaxPulse {
				s.pulse = MaxPulse
				s.step = 0
			}
			s.pwm.Set(dutyFraction(s.pulse))
		}
		s.crit.Unlock()
	}
}

func dutyFraction(pulse time.Duration) float64 {
	return float64(pulse) / float64(Frame)
}
