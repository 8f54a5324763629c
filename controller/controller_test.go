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

package controller_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gopherrover/controller"
	"github.com/jetsetilly/gopherrover/curated"
	"github.com/jetsetilly/gopherrover/test"
)

const padName = "Xbox Series X Controller"

// stubDevice is a scriptable implementation of the controller.Device
// interface. Device events are injected through the events channel and the
// axis/button/hat state is set directly by the test.
type stubDevice struct {
	crit sync.Mutex

	names    []string
	opened   int
	instance int

	axes    []float32
	buttons []bool
	hatX    int
	hatY    int

	events chan controller.DeviceEvent
}

func newStubDevice(names ...string) *stubDevice {
	return &stubDevice{
		names:   names,
		opened:  -1,
		axes:    make([]float32, 6),
		buttons: make([]bool, 15),
		events:  make(chan controller.DeviceEvent, 64),
	}
}

func (d *stubDevice) Count() int {
	return len(d.names)
}

func (d *stubDevice) Name(idx int) string {
	return d.names[idx]
}

func (d *stubDevice) Open(idx int) error {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.opened = idx
	d.instance++
	return nil
}

func (d *stubDevice) Close() {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.opened = -1
}

func (d *stubDevice) OpenedName() string {
	d.crit.Lock()
	defer d.crit.Unlock()
	if d.opened == -1 {
		return ""
	}
	return d.names[d.opened]
}

func (d *stubDevice) InstanceID() int {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.instance
}

func (d *stubDevice) NumAxes() int    { return len(d.axes) }
func (d *stubDevice) NumButtons() int { return len(d.buttons) }
func (d *stubDevice) NumHats() int    { return 1 }

func (d *stubDevice) Axis(i int) float32 {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.axes[i]
}

func (d *stubDevice) Button(i int) bool {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.buttons[i]
}

func (d *stubDevice) Hat(i int) (int, int) {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.hatX, d.hatY
}

func (d *stubDevice) WaitEvent(timeout time.Duration) controller.DeviceEvent {
	select {
	case ev := <-d.events:
		return ev
	case <-time.After(timeout):
		return controller.DeviceEvent{Kind: controller.DeviceNothing}
	}
}

func (d *stubDevice) PushQuit() {
	d.events <- controller.DeviceEvent{Kind: controller.DeviceQuit}
}

func (d *stubDevice) Flush() {
	for {
		select {
		case <-d.events:
		default:
			return
		}
	}
}

// test helpers for scripting the stub

func (d *stubDevice) setAxis(a controller.XboxAxis, v float32) {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.axes[a] = v
}

func (d *stubDevice) setButton(b controller.XboxButton, v bool) {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.buttons[b] = v
}

func (d *stubDevice) activity() {
	d.events <- controller.DeviceEvent{Kind: controller.DeviceInput}
}

func (d *stubDevice) remove() {
	d.events <- controller.DeviceEvent{Kind: controller.DeviceRemoved, InstanceID: d.InstanceID()}
}

func (d *stubDevice) attach() {
	d.events <- controller.DeviceEvent{Kind: controller.DeviceAdded, Index: 0}
}

func TestConnectAndCapture(t *testing.T) {
	d := newStubDevice("SomeOtherPad", padName)
	con := controller.NewController(d, padName, time.Second, controller.NewConverter(controller.ProfileXbox))

	test.ExpectedSuccess(t, con.Connect())
	test.Equate(t, con.Data.Get().Event.String(), "connected")
	test.ExpectedSuccess(t, con.IsConnected())

	con.Run()

	// a freshly assembled snapshot differs in length from the empty "last
	// dispatched" snapshot so the very first poll always emits an event
	d.activity()
	ev := con.Data.Get()
	test.Equate(t, ev.Event.String(), "input changed")

	// a poll with no change emits nothing
	d.activity()

	// change a stick axis and poll again. the next event received must carry
	// the new value; if the unchanged poll had emitted an event this would
	// fail
	d.setAxis(controller.XboxStickLeftX, 0.5)
	d.activity()
	ev = con.Data.Get()
	test.Equate(t, ev.Event.String(), "input changed")
	if controller.Xbox.StickLeftX(ev.Input).Level() != controller.Middle {
		t.Errorf("unexpected stick level %v", controller.Xbox.StickLeftX(ev.Input).Level())
	}
	test.Equate(t, controller.Xbox.StickLeftX(ev.Input).Positive, true)

	// button changes are detected too
	d.setButton(controller.XboxA, true)
	d.activity()
	ev = con.Data.Get()
	test.Equate(t, ev.Event.String(), "input changed")
	test.Equate(t, controller.Xbox.Button(ev.Input, controller.XboxA), true)

	con.Quit()
	test.Equate(t, con.Data.Get().Event.String(), "quit")

	// Quit() is idempotent
	con.Quit()
	test.Equate(t, con.Data.GetNoWait().Event.String(), "empty")
}

func TestDisconnectAndReconnect(t *testing.T) {
	d := newStubDevice(padName)
	con := controller.NewController(d, padName, time.Second, controller.NewConverter(controller.ProfileXbox))

	test.ExpectedSuccess(t, con.Connect())
	test.Equate(t, con.Data.Get().Event.String(), "connected")
	con.Run()

	// removing the connected stick produces exactly one Disconnected event
	// carrying a neutral snapshot
	d.remove()
	ev := con.Data.Get()
	test.Equate(t, ev.Event.String(), "disconnected")
	test.Equate(t, len(ev.Input.Buttons), 0)
	test.Equate(t, len(ev.Input.Axes), 0)

	// the reconnection search is now running. attaching a matching stick
	// produces a Connected event and polling resumes
	d.attach()
	test.Equate(t, con.Data.Get().Event.String(), "connected")

	d.setAxis(controller.XboxStickLeftY, -1.0)
	d.activity()
	ev = con.Data.Get()
	test.Equate(t, ev.Event.String(), "input changed")
	if controller.Xbox.StickLeftY(ev.Input).Level() != controller.Max {
		t.Errorf("unexpected stick level after reconnect")
	}

	con.Quit()
	test.Equate(t, con.Data.Get().Event.String(), "quit")
}

func TestReconnectTimeout(t *testing.T) {
	d := newStubDevice(padName)
	con := controller.NewController(d, padName, 250*time.Millisecond, controller.NewConverter(controller.ProfileXbox))

	test.ExpectedSuccess(t, con.Connect())
	test.Equate(t, con.Data.Get().Event.String(), "connected")
	con.Run()

	// no device is attached after removal. the search must end in a Quit
	// event and never a Connected event
	d.remove()
	test.Equate(t, con.Data.Get().Event.String(), "disconnected")
	test.Equate(t, con.Data.Get().Event.String(), "quit")
	test.ExpectedFailure(t, con.IsConnected())
}

func TestConnectTimeout(t *testing.T) {
	d := newStubDevice("SomeOtherPad")
	con := controller.NewController(d, padName, 100*time.Millisecond, controller.NewConverter(controller.ProfileXbox))

	err := con.Connect()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, controller.ConnectionTimeout) {
		t.Errorf("unexpected error: %v", err)
	}
	test.Equate(t, con.Data.Get().Event.String(), "quit")
}
