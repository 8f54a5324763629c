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

package drive_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherrover/controller"
	"github.com/jetsetilly/gopherrover/drive"
	"github.com/jetsetilly/gopherrover/test"
)

// the recording mocks store the last command they were given. the Run()
// loop is exercised synchronously so no locking is required.

type mockMotor struct {
	duty    float64
	forward bool
	moving  bool
}

func (m *mockMotor) Move(duty float64, forward bool) {
	m.duty = duty
	m.forward = forward
	m.moving = duty > 0
}

func (m *mockMotor) Stop() {
	m.duty = 0
	m.moving = false
}

type mockServo struct {
	step      time.Duration
	clockwise bool
	sweeping  bool
	centred   bool
}

func (m *mockServo) Move(step time.Duration, interval time.Duration, clockwise bool) {
	m.step = step
	m.clockwise = clockwise
	m.sweeping = true
	m.centred = false
}

func (m *mockServo) Stop() {
	m.sweeping = false
}

func (m *mockServo) Initial() {
	m.sweeping = false
	m.centred = true
}

type mockLamp struct {
	lit        bool
	brightness int
}

func (m *mockLamp) On()       { m.lit = true }
func (m *mockLamp) Off()      { m.lit = false }
func (m *mockLamp) Brighten() { m.brightness++ }
func (m *mockLamp) Dim()      { m.brightness-- }

type mockFault struct {
	faulted bool

	// when non-empty, script overrides faulted. one entry is consumed per
	// call
	script []bool
}

func (m *mockFault) Faulted() bool {
	if len(m.script) > 0 {
		v := m.script[0]
		m.script = m.script[1:]
		return v
	}
	return m.faulted
}

type rig struct {
	left  *mockMotor
	right *mockMotor
	pan   *mockServo
	tilt  *mockServo
	lamp  *mockLamp
	fault *mockFault
	data  *controller.Queue
	drv   *drive.Driver
}

func newRig() *rig {
	r := &rig{
		left:  &mockMotor{},
		right: &mockMotor{},
		pan:   &mockServo{},
		tilt:  &mockServo{},
		lamp:  &mockLamp{},
		fault: &mockFault{},
		data:  controller.NewQueue(),
	}
	r.drv = drive.NewDriver(drive.Actuators{
		LeftMotor:  r.left,
		RightMotor: r.right,
		Pan:        r.pan,
		Tilt:       r.tilt,
		Lamp:       r.lamp,
		Fault:      r.fault,
	}, r.data)
	return r
}

// run feeds the snapshots through the queue and runs the policy to
// completion.
func (r *rig) run(snapshots ...controller.Snapshot) {
	for _, s := range snapshots {
		r.data.Put(controller.Data{Event: controller.EventInputChanged, Input: s})
	}
	r.data.Put(controller.Data{Event: controller.EventQuit})
	r.drv.Run()
}

// snapshot builders

func neutral() controller.Snapshot {
	return controller.Snapshot{
		Buttons: make([]bool, 15),
		Hats:    make([]controller.HatValue, 1),
		Axes:    make([]controller.AxisValue, 6),
	}
}

func withAxis(s controller.Snapshot, a controller.XboxAxis, level controller.Speed, positive bool) controller.Snapshot {
	s.Axes[a] = controller.AxisValue{Positive: positive, Value: float32(level)}
	return s
}

func withButton(s controller.Snapshot, b controller.XboxButton) controller.Snapshot {
	s.Buttons[b] = true
	return s
}

func withHat(s controller.Snapshot, x int, y int) controller.Snapshot {
	s.Hats[0] = controller.HatValue{X: x, Y: y}
	return s
}

func TestStraightLine(t *testing.T) {
	r := newRig()

	// stick forward is the negative direction of the raw axis
	r.run(withAxis(neutral(), controller.XboxStickLeftY, controller.Middle, false))

	test.Equate(t, r.left.duty, 0.5)
	test.Equate(t, r.left.forward, true)
	test.Equate(t, r.right.duty, 0.5)
	test.Equate(t, r.right.forward, true)

	// stick back reverses
	r = newRig()
	r.run(withAxis(neutral(), controller.XboxStickLeftY, controller.Slow, true))
	test.Equate(t, r.left.duty, 0.25)
	test.Equate(t, r.left.forward, false)
	test.Equate(t, r.right.forward, false)
}

func TestStopOnNeutralStick(t *testing.T) {
	r := newRig()
	r.run(
		withAxis(neutral(), controller.XboxStickLeftY, controller.Max, false),
		neutral(),
	)
	test.Equate(t, r.left.moving, false)
	test.Equate(t, r.right.moving, false)
}

func TestPivotTurn(t *testing.T) {
	// stick right: the right wheel is on the inside of the turn
	r := newRig()
	r.run(withAxis(neutral(), controller.XboxStickLeftX, controller.High, true))
	test.Equate(t, r.right.moving, false)
	test.Equate(t, r.left.duty, 0.75)
	test.Equate(t, r.left.forward, true)

	// stick left
	r = newRig()
	r.run(withAxis(neutral(), controller.XboxStickLeftX, controller.High, false))
	test.Equate(t, r.left.moving, false)
	test.Equate(t, r.right.duty, 0.75)
}

func TestSteeredDrive(t *testing.T) {
	// forward at High with steering at Slow, stick sign positive. the right
	// wheel is the outer wheel
	r := newRig()
	s := withAxis(neutral(), controller.XboxStickLeftY, controller.High, false)
	s = withAxis(s, controller.XboxStickLeftX, controller.Slow, true)
	r.run(s)

	test.Equate(t, r.right.duty, 0.75)
	test.Equate(t, r.left.duty, 0.6)
	test.Equate(t, r.left.forward, true)
	test.Equate(t, r.right.forward, true)

	// the inner wheel duty saturates at zero rather than reversing
	r = newRig()
	s = withAxis(neutral(), controller.XboxStickLeftY, controller.Slow, false)
	s = withAxis(s, controller.XboxStickLeftX, controller.Max, false)
	r.run(s)

	test.Equate(t, r.left.duty, 0.25)
	test.Equate(t, r.right.duty, 0.0)
}

func TestSpinTurn(t *testing.T) {
	// left trigger spins left: left wheel backward, right wheel forward
	r := newRig()
	r.run(withAxis(neutral(), controller.XboxTriggerLeft, controller.Middle, true))

	test.Equate(t, r.left.duty, 0.5)
	test.Equate(t, r.left.forward, false)
	test.Equate(t, r.right.duty, 0.5)
	test.Equate(t, r.right.forward, true)

	// the spin wins over the stick
	r = newRig()
	s := withAxis(neutral(), controller.XboxTriggerRight, controller.Max, true)
	s = withAxis(s, controller.XboxStickLeftY, controller.Slow, false)
	r.run(s)

	test.Equate(t, r.right.duty, 1.0)
	test.Equate(t, r.right.forward, false)
	test.Equate(t, r.left.duty, 1.0)
	test.Equate(t, r.left.forward, true)
}

func TestSpinTurnBothTriggers(t *testing.T) {
	// both triggers cancel out and the stick policy applies
	r := newRig()
	s := withAxis(neutral(), controller.XboxTriggerLeft, controller.Max, true)
	s = withAxis(s, controller.XboxTriggerRight, controller.Max, true)
	r.run(s)

	test.Equate(t, r.left.moving, false)
	test.Equate(t, r.right.moving, false)
}

func TestCamera(t *testing.T) {
	// the pan direction is inverted with respect to the stick
	r := newRig()
	r.run(withAxis(neutral(), controller.XboxStickRightX, controller.Slow, true))
	test.Equate(t, r.pan.sweeping, true)
	test.Equate(t, r.pan.clockwise, false)
	test.Equate(t, r.pan.step, 5*time.Microsecond)
	test.Equate(t, r.tilt.sweeping, false)

	r = newRig()
	r.run(withAxis(neutral(), controller.XboxStickRightY, controller.Max, true))
	test.Equate(t, r.tilt.sweeping, true)
	test.Equate(t, r.tilt.clockwise, true)
	test.Equate(t, r.tilt.step, 20*time.Microsecond)

	// releasing the stick stops the sweep
	r = newRig()
	r.run(
		withAxis(neutral(), controller.XboxStickRightX, controller.Max, true),
		neutral(),
	)
	test.Equate(t, r.pan.sweeping, false)
}

func TestCameraRecentre(t *testing.T) {
	r := newRig()
	s := withButton(neutral(), controller.XboxStickRight)
	s = withAxis(s, controller.XboxStickRightX, controller.Max, true)
	r.run(s)

	// the click wins over any stick deflection
	test.Equate(t, r.pan.centred, true)
	test.Equate(t, r.tilt.centred, true)
	test.Equate(t, r.pan.sweeping, false)
}

func TestLamp(t *testing.T) {
	r := newRig()
	r.run(
		withHat(neutral(), 1, 0),
		withHat(neutral(), 0, 1),
		withHat(neutral(), 0, 1),
		withHat(neutral(), 0, -1),
	)
	test.Equate(t, r.lamp.lit, true)
	test.Equate(t, r.lamp.brightness, 1)

	r = newRig()
	r.run(withHat(neutral(), -1, 0))
	test.Equate(t, r.lamp.lit, false)
}

func TestFaultInterlock(t *testing.T) {
	r := newRig()
	r.fault.faulted = true

	// the drive train must not start while the fault line is asserted. the
	// camera and lamp still respond
	s := withAxis(neutral(), controller.XboxStickLeftY, controller.Max, false)
	s = withAxis(s, controller.XboxStickRightX, controller.Slow, true)
	s = withHat(s, 1, 0)
	r.run(s)

	test.Equate(t, r.left.moving, false)
	test.Equate(t, r.right.moving, false)
	test.Equate(t, r.pan.sweeping, true)
	test.Equate(t, r.lamp.lit, true)
}

func TestFaultRecovery(t *testing.T) {
	r := newRig()

	// faulted for the first snapshot only
	r.fault.script = []bool{true}

	fwd := withAxis(neutral(), controller.XboxStickLeftY, controller.Max, false)
	steered := withAxis(neutral(), controller.XboxStickLeftY, controller.Max, false)
	steered = withAxis(steered, controller.XboxStickLeftX, controller.Slow, true)
	r.run(fwd, steered)

	test.Equate(t, r.right.duty, 1.0)
	test.Equate(t, r.left.duty, 0.85)
}

func TestDisconnectedStops(t *testing.T) {
	r := newRig()

	s := withAxis(neutral(), controller.XboxStickLeftY, controller.Max, false)
	s = withAxis(s, controller.XboxStickRightX, controller.Max, true)
	s = withHat(s, 1, 0)

	r.data.Put(controller.Data{Event: controller.EventInputChanged, Input: s})
	r.data.Put(controller.Data{Event: controller.EventDisconnected})
	r.data.Put(controller.Data{Event: controller.EventQuit})
	r.drv.Run()

	test.Equate(t, r.left.moving, false)
	test.Equate(t, r.right.moving, false)
	test.Equate(t, r.pan.sweeping, false)
	test.Equate(t, r.tilt.sweeping, false)

	// the lamp stays lit
	test.Equate(t, r.lamp.lit, true)
}

func TestQuitChord(t *testing.T) {
	r := newRig()

	s := withButton(withButton(neutral(), controller.XboxBack), controller.XboxStart)
	r.data.Put(controller.Data{Event: controller.EventInputChanged, Input: s})

	// no Quit event is queued. Run must return on the chord alone
	r.drv.Run()

	// back alone does not end the session
	r = newRig()
	r.run(withButton(neutral(), controller.XboxBack))
}
