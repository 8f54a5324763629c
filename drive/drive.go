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

import (
	"time"

	"github.com/jetsetilly/gopherrover/controller"
	"github.com/jetsetilly/gopherrover/logger"
)

// DutyTable is the motor duty fraction for each Speed level.
type DutyTable [5]float64

// StepTable is the servo pulse change per step interval for each Speed
// level.
type StepTable [5]time.Duration

// Default tables, tuned for the reference chassis.
var (
	DefaultDutyTable = DutyTable{0.0, 0.25, 0.5, 0.75, 1.0}
	DefaultStepTable = StepTable{
		0,
		5 * time.Microsecond,
		10 * time.Microsecond,
		15 * time.Microsecond,
		20 * time.Microsecond,
	}
)

// how much duty is shed from the inner wheel per Speed level of steering
const steeringShed = 0.15

// DefaultStepInterval is the servo stepping interval used by NewDriver().
const DefaultStepInterval = 25 * time.Millisecond

// Driver applies the driving policy to every event in the controller's
// queue.
type Driver struct {
	act  Actuators
	data *controller.Queue

	duty     DutyTable
	step     StepTable
	interval time.Duration

	// whether log entries are to be made. see the commentary for the
	// Permission interface in the logger package
	LogActions bool

	// the rising edge of the fault line is what is logged, a stuck fault
	// line would otherwise fill the log
	faulted bool
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The default dispatch tables are used.
func NewDriver(act Actuators, data *controller.Queue) *Driver {
	return &Driver{
		act:      act,
		data:     data,
		duty:     DefaultDutyTable,
		step:     DefaultStepTable,
		interval: DefaultStepInterval,
	}
}

// SetTables overrides the default dispatch tables.
func (drv *Driver) SetTables(duty DutyTable, step StepTable, interval time.Duration) {
	drv.duty = duty
	drv.step = step
	drv.interval = interval
}

// AllowLogging implements the logger.Permission interface.
func (drv *Driver) AllowLogging() bool {
	return drv.LogActions
}

// Run consumes the event queue until a Quit event arrives or the driver
// presses the back and start buttons together. The actuators are left in
// whatever state the last event put them; the caller decides what a safe
// shutdown state is.
//
// Run blocks and is expected to be the main loop of the process. A panic
// during dispatch is logged and causes Run to return as though a quit event
// had been received.
func (drv *Driver) Run() {
	defer func() {
		if r := recover(); r != nil {
			logger.Logf(logger.Allow, "drive", "unexpected error during dispatch: %v", r)
		}
	}()

	for {
		ev := drv.data.Get()

		switch ev.Event {
		case controller.EventQuit:
			logger.Log(drv, "drive", "quit event received")
			return

		case controller.EventConnected:
			logger.Log(drv, "drive", "controller connected")

		case controller.EventDisconnected:
			// a controller that has gone away cannot command the rover to
			// stop. stop it here. the lamp is deliberately left alone, a
			// dark rover is hard to recover at night
			logger.Log(drv, "drive", "controller disconnected: stopping")
			drv.act.LeftMotor.Stop()
			drv.act.RightMotor.Stop()
			drv.act.Pan.Stop()
			drv.act.Tilt.Stop()

		case controller.EventInputChanged:
			if drv.quitChord(ev.Input) {
				logger.Log(drv, "drive", "session ended by driver")
				return
			}
			drv.lamp(ev.Input)
			drv.camera(ev.Input)
			drv.driveTrain(ev.Input)
		}
	}
}

// back and start pressed together end the session.
func (drv *Driver) quitChord(s controller.Snapshot) bool {
	return controller.Xbox.Button(s, controller.XboxBack) && controller.Xbox.Button(s, controller.XboxStart)
}

func (drv *Driver) lamp(s controller.Snapshot) {
	switch controller.Xbox.HatX(s) {
	case 1:
		drv.act.Lamp.On()
	case -1:
		drv.act.Lamp.Off()
	}

	switch controller.Xbox.HatY(s) {
	case 1:
		drv.act.Lamp.Brighten()
	case -1:
		drv.act.Lamp.Dim()
	}
}

func (drv *Driver) camera(s controller.Snapshot) {
	if controller.Xbox.Button(s, controller.XboxStickRight) {
		drv.act.Pan.Initial()
		drv.act.Tilt.Initial()
		return
	}

	// the pan servo is mounted upside down so the sense of rotation is
	// inverted
	x := controller.Xbox.StickRightX(s)
	if x.Level() == controller.Zero {
		drv.act.Pan.Stop()
	} else {
		drv.act.Pan.Move(drv.step[x.Level()], drv.interval, !x.Positive)
	}

	y := controller.Xbox.StickRightY(s)
	if y.Level() == controller.Zero {
		drv.act.Tilt.Stop()
	} else {
		drv.act.Tilt.Move(drv.step[y.Level()], drv.interval, y.Positive)
	}
}

func (drv *Driver) driveTrain(s controller.Snapshot) {
	// a faulted power board cannot act on motor commands so none are issued,
	// not even a stop
	if drv.act.Fault != nil && drv.act.Fault.Faulted() {
		if !drv.faulted {
			drv.faulted = true
			logger.Log(drv, "drive", "power board fault: drive commands suspended")
		}
		return
	}
	drv.faulted = false

	// exactly one trigger spins the rover on the spot. the trigger levels
	// are not blended with the stick
	lt := controller.Xbox.TriggerLeft(s).Level()
	rt := controller.Xbox.TriggerRight(s).Level()
	if (lt == controller.Zero) != (rt == controller.Zero) {
		if lt != controller.Zero {
			drv.act.LeftMotor.Move(drv.duty[lt], false)
			drv.act.RightMotor.Move(drv.duty[lt], true)
		} else {
			drv.act.RightMotor.Move(drv.duty[rt], false)
			drv.act.LeftMotor.Move(drv.duty[rt], true)
		}
		return
	}

	x := controller.Xbox.StickLeftX(s)
	y := controller.Xbox.StickLeftY(s)

	// pushing the stick away from the body drives forward, which is the
	// negative direction of the raw axis
	forward := !y.Positive

	switch {
	case x.Level() == controller.Zero && y.Level() == controller.Zero:
		drv.act.LeftMotor.Stop()
		drv.act.RightMotor.Stop()

	case x.Level() == controller.Zero:
		// straight line
		drv.act.LeftMotor.Move(drv.duty[y.Level()], forward)
		drv.act.RightMotor.Move(drv.duty[y.Level()], forward)

	case y.Level() == controller.Zero:
		// pivot turn. the wheel on the inside of the turn stops
		if x.Positive {
			drv.act.RightMotor.Stop()
			drv.act.LeftMotor.Move(drv.duty[x.Level()], true)
		} else {
			drv.act.LeftMotor.Stop()
			drv.act.RightMotor.Move(drv.duty[x.Level()], true)
		}

	default:
		// steered drive. the wheel on the side matching the stick's sign is
		// the outer wheel and runs at the commanded speed; the other sheds
		// duty in proportion to the steering level
		outer := drv.duty[y.Level()]
		inner := outer - steeringShed*float64(x.Level())
		if inner < 0.0 {
			inner = 0.0
		}
		if x.Positive {
			drv.act.RightMotor.Move(outer, forward)
			drv.act.LeftMotor.Move(inner, forward)
		} else {
			drv.act.LeftMotor.Move(outer, forward)
			drv.act.RightMotor.Move(inner, forward)
		}
	}
}
