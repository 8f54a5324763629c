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

package motor_test

import (
	"testing"

	"github.com/jetsetilly/gopherrover/hardware/motor"
	"github.com/jetsetilly/gopherrover/test"
)

type record struct {
	name string
	duty float64
}

// fakePWM records every Set() call into a log shared between the forward
// and backward pins, so tests can assert on the order of operations across
// the whole H-bridge.
type fakePWM struct {
	name    string
	log     *[]record
	stopped bool
}

func (p *fakePWM) Set(duty float64) {
	*p.log = append(*p.log, record{name: p.name, duty: duty})
}

func (p *fakePWM) SetFrequency(hz int) {}

func (p *fakePWM) Stop() {
	p.stopped = true
}

func newBridge() (*fakePWM, *fakePWM, *[]record) {
	log := &[]record{}
	return &fakePWM{name: "fwd", log: log}, &fakePWM{name: "bwd", log: log}, log
}

func TestMotorMove(t *testing.T) {
	fwd, bwd, log := newBridge()
	m := motor.NewMotor(fwd, bwd)

	// construction stops both directions
	test.Equate(t, len(*log), 2)
	*log = (*log)[:0]

	// moving forward cuts the backward pin before powering the forward pin
	m.Move(0.5, true)
	test.Equate(t, len(*log), 2)
	test.Equate(t, (*log)[0].name, "bwd")
	test.Equate(t, (*log)[0].duty, 0.0)
	test.Equate(t, (*log)[1].name, "fwd")
	test.Equate(t, (*log)[1].duty, 0.5)
	*log = (*log)[:0]

	// and the same the other way around
	m.Move(0.75, false)
	test.Equate(t, (*log)[0].name, "fwd")
	test.Equate(t, (*log)[0].duty, 0.0)
	test.Equate(t, (*log)[1].name, "bwd")
	test.Equate(t, (*log)[1].duty, 0.75)
}

func TestMotorClamping(t *testing.T) {
	fwd, bwd, log := newBridge()
	m := motor.NewMotor(fwd, bwd)
	*log = (*log)[:0]

	m.Move(1.15, true)
	test.Equate(t, (*log)[1].duty, 1.0)
	*log = (*log)[:0]

	m.Move(-0.5, false)
	test.Equate(t, (*log)[1].duty, 0.0)
}

func TestMotorStop(t *testing.T) {
	fwd, bwd, log := newBridge()
	m := motor.NewMotor(fwd, bwd)
	m.Move(1.0, true)
	*log = (*log)[:0]

	m.Stop()
	test.Equate(t, len(*log), 2)
	test.Equate(t, (*log)[0].duty, 0.0)
	test.Equate(t, (*log)[1].duty, 0.0)

	m.Close()
	test.Equate(t, fwd.stopped, true)
	test.Equate(t, bwd.stopped, true)
}
