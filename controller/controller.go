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

package controller

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherrover/curated"
	"github.com/jetsetilly/gopherrover/logger"
)

// Sentinel error returned by Connect() when the expected controller could
// not be found within the connection timeout.
const ConnectionTimeout = "controller: connection timed out"

// how often WaitEvent() wakes up so that loops can check for cancellation.
const eventWakeup = 500 * time.Millisecond

// connectionState records where the capture loop is in the connection state
// machine.
type connectionState int32

const (
	stateDisconnected connectionState = iota
	stateSearching
	stateConnected
)

// Controller captures input from a handheld game controller. See the package
// documentation for an overview of the capture pipeline.
type Controller struct {
	device    Device
	match     string
	timeout   time.Duration
	converter *Converter

	// Data is the queue of events produced by the capture loop. It is the
	// only way information leaves this type
	Data *Queue

	// LogInput causes every changed snapshot to be dumped to the log. very
	// noisy, for development only
	LogInput bool

	// single-writer flags. state is written by whichever goroutine is
	// currently performing connection work; running and quit follow the
	// compare-and-swap discipline
	state   int32 // connectionState
	running int32
	quit    int32

	// the previously dispatched snapshot, for change detection. only ever
	// touched by the capture loop
	lastInput Snapshot

	wg sync.WaitGroup
}

// NewController is the preferred method of initialisation for the Controller
// type.
//
// The match argument is the device name the controller must report in order
// to be considered ours. The timeout argument bounds every connection
// search; a duration of 0 means wait forever.
func NewController(device Device, match string, timeout time.Duration, converter *Converter) *Controller {
	con := &Controller{
		device:    device,
		match:     match,
		timeout:   timeout,
		converter: converter,
		Data:      NewQueue(),
	}
	return con
}

// AllowLogging implements the logger.Permission interface. Input dumping is
// allowed only when the LogInput field is set.
func (con *Controller) AllowLogging() bool {
	return con.LogInput
}

func (con *Controller) setState(s connectionState) {
	atomic.StoreInt32(&con.state, int32(s))
}

func (con *Controller) currState() connectionState {
	return connectionState(atomic.LoadInt32(&con.state))
}

// IsConnected returns true if the expected controller is currently open.
func (con *Controller) IsConnected() bool {
	return con.currState() == stateConnected
}

// tryConnect looks for an attached stick matching the expected name and
// opens it. An empty match string accepts any stick. A Connected event is
// emitted on success.
func (con *Controller) tryConnect() bool {
	for i := 0; i < con.device.Count(); i++ {
		n := con.device.Name(i)
		logger.Logf(logger.Allow, "controller", "detected: %s", n)

		if con.match != "" && n != con.match {
			continue
		}

		if err := con.device.Open(i); err != nil {
			// the stick has gone away between enumeration and open. treat
			// as not connected
			logger.Log(logger.Allow, "controller", err)
			con.setState(stateDisconnected)
			return false
		}

		con.setState(stateConnected)
		con.Data.Put(Data{Event: EventConnected})
		logger.Log(logger.Allow, "controller", "controller connected")
		return true
	}

	return false
}

// search waits for device-attached notifications and tries to connect on
// each one. It ends on success, on cancellation or on a synthetic quit
// event. The found channel is closed on return, whatever the reason.
func (con *Controller) search(ctx context.Context, found chan<- struct{}) {
	defer close(found)

	logger.Log(logger.Allow, "controller", "searching for controller")

	for {
		if ctx.Err() != nil {
			return
		}

		ev := con.device.WaitEvent(eventWakeup)

		switch ev.Kind {
		case DeviceAdded:
			if con.tryConnect() {
				return
			}

		case DeviceQuit:
			return
		}
	}
}

// reconnect runs a bounded search for the expected controller. Returns true
// if the controller is connected on return.
func (con *Controller) reconnect() bool {
	con.setState(stateSearching)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	found := make(chan struct{})
	go con.search(ctx, found)

	if con.timeout == 0 {
		<-found
	} else {
		select {
		case <-found:
		case <-time.After(con.timeout):
			// the search may still be in flight briefly after the timeout.
			// it will notice the cancellation at its next wakeup and exit
			// without emitting further events
			cancel()
		}
	}

	return con.IsConnected()
}

// Connect to the expected controller: an immediate match is attempted first,
// falling back to a bounded search for a newly attached device. If the
// search times out a Quit event is emitted and an error returned; the
// controller should be considered unusable.
func (con *Controller) Connect() error {
	logger.Log(logger.Allow, "controller", "trying to connect controller")

	// events accumulated before the session are of no interest
	con.device.Flush()

	if con.tryConnect() {
		return nil
	}

	if !con.reconnect() {
		logger.Log(logger.Allow, "controller", "controller is not detected")
		con.Quit()
		return curated.Errorf(ConnectionTimeout)
	}

	return nil
}

// Run starts the capture loop on its own goroutine. Calling Run() on an
// already running Controller is a no-op.
func (con *Controller) Run() {
	if !atomic.CompareAndSwapInt32(&con.running, 0, 1) {
		return
	}

	logger.Log(logger.Allow, "controller", "capturing controller input")

	con.wg.Add(1)
	go con.run()
}

func (con *Controller) run() {
	defer con.wg.Done()

	// event handling happens on one OS thread for the lifetime of the loop
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		ev := con.device.WaitEvent(eventWakeup)

		switch ev.Kind {
		case DeviceQuit:
			return

		case DeviceRemoved:
			if !con.IsConnected() || ev.InstanceID != con.device.InstanceID() {
				continue
			}

			con.disconnect()

			if !con.reconnect() {
				// the controller is permanently lost. fatal for the whole
				// system: signal termination after best-effort cleanup
				logger.Log(logger.Allow, "controller", "controller is not detected")
				con.Data.Clear()
				con.Data.Put(Data{Event: EventQuit})
				return
			}

		case DeviceInput:
			if !con.IsConnected() {
				continue
			}
			con.poll()
		}
	}
}

// disconnect handles the removal of the connected controller: stale events
// are dropped so that the Disconnected event is never followed by input from
// before the disconnection.
func (con *Controller) disconnect() {
	con.setState(stateDisconnected)
	con.Data.Clear()
	con.lastInput = Snapshot{}
	con.Data.Put(Data{Event: EventDisconnected})
	logger.Log(logger.Allow, "controller", "controller disconnected")
	con.device.Close()
}

// poll reads the full state of the controller, assembles a fresh snapshot
// and emits an InputChanged event if it differs from the previously
// dispatched snapshot.
func (con *Controller) poll() {
	cur := Snapshot{
		Buttons: make([]bool, con.device.NumButtons()),
		Hats:    make([]HatValue, con.device.NumHats()),
		Axes:    make([]AxisValue, con.device.NumAxes()),
	}

	for i := range cur.Axes {
		cur.Axes[i] = con.converter.Convert(i, con.device.Axis(i))
	}

	for i := range cur.Buttons {
		cur.Buttons[i] = con.device.Button(i)
	}

	for i := range cur.Hats {
		x, y := con.device.Hat(i)
		cur.Hats[i] = HatValue{X: x, Y: y}
	}

	if cur.EqualTo(con.lastInput) {
		return
	}

	con.lastInput = cur
	logger.Log(con, "controller", cur)
	con.Data.Put(Data{Event: EventInputChanged, Input: cur})
}

// Quit ends the capture loop, closes the device and emits a final Quit
// event. Calling Quit() more than once is a no-op, as is calling it on a
// Controller that was never run.
func (con *Controller) Quit() {
	if !atomic.CompareAndSwapInt32(&con.quit, 0, 1) {
		return
	}

	logger.Log(logger.Allow, "controller", "closing controller")

	con.Data.Clear()

	if atomic.LoadInt32(&con.running) == 1 {
		con.device.PushQuit()
		con.wg.Wait()
	}

	con.Data.Put(Data{Event: EventQuit})
	con.device.Close()
}
