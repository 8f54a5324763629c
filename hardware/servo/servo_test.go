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

package servo_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gopherrover/hardware/servo"
	"github.com/jetsetilly/gopherrover/test"
)

// fakePWM is safe to share with the servo's stepping goroutine.
type fakePWM struct {
	crit    sync.Mutex
	duty    float64
	freq    int
	stopped bool
}

func (p *fakePWM) Set(duty float64) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.duty = duty
}

func (p *fakePWM) SetFrequency(hz int) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.freq = hz
}

func (p *fakePWM) Stop() {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.stopped = true
}

func (p *fakePWM) read() float64 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.duty
}

// pulse width expressed as a fraction of the 20ms frame
func fraction(pulse time.Duration) float64 {
	return float64(pulse) / float64(servo.Frame)
}

func TestServoInitialPosition(t *testing.T) {
	pwm := &fakePWM{}
	s := servo.NewServo(pwm)
	defer s.Close()

	test.Equate(t, pwm.freq, 50)
	test.Equate(t, pwm.read(), fraction((servo.MinPulse+servo.MaxPulse)/2))
}

func TestServoSweep(t *testing.T) {
	pwm := &fakePWM{}
	s := servo.NewServo(pwm)
	defer s.Close()

	start := pwm.read()

	// anti-clockwise lengthens the pulse
	s.Move(50*time.Microsecond, time.Millisecond, false)
	time.Sleep(50 * time.Millisecond)
	if pwm.read() <= start {
		t.Errorf("pulse did not lengthen during anti-clockwise sweep")
	}

	// stopping holds the position
	s.Stop()
	time.Sleep(10 * time.Millisecond)
	held := pwm.read()
	time.Sleep(20 * time.Millisecond)
	test.Equate(t, pwm.read(), held)

	// clockwise shortens the pulse
	s.Move(50*time.Microsecond, time.Millisecond, true)
	time.Sleep(50 * time.Millisecond)
	if pwm.read() >= held {
		t.Errorf("pulse did not shorten during clockwise sweep")
	}

	s.Initial()
	test.Equate(t, pwm.read(), fraction((servo.MinPulse+servo.MaxPulse)/2))
}

func TestServoTravelLimit(t *testing.T) {
	pwm := &fakePWM{}
	s := servo.NewServo(pwm)
	defer s.Close()

	// a huge step slams into the end stop in one tick. the sweep must stop
	// there and exactly there
	s.Move(servo.MaxPulse, time.Millisecond, false)
	time.Sleep(50 * time.Millisecond)
	test.Equate(t, pwm.read(), fraction(servo.MaxPulse))

	s.Move(servo.MaxPulse, time.Millisecond, true)
	time.Sleep(50 * time.Millisecond)
	test.Equate(t, pwm.read(), fraction(servo.MinPulse))

	// reaching the limit cancels the sweep. a later Initial() must not be
	// disturbed by further stepping
	s.Initial()
	time.Sleep(20 * time.Millisecond)
	test.Equate(t, pwm.read(), fraction((servo.MinPulse+servo.MaxPulse)/2))
}

func TestServoClose(t *testing.T) {
	pwm := &fakePWM{}
	s := servo.NewServo(pwm)
	s.Close()
	test.Equate(t, pwm.stopped, true)

	// Close is idempotent
	s.Close()
}
