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

// Package sdljoystick implements the controller.Device interface on top of
// the SDL joystick subsystem. It is the only package in the project that
// imports SDL directly.
//
// SDL restricts event handling to the OS thread that initialised the
// library. The controller package honours that restriction by calling all
// Device functions from a single locked goroutine, with the exception of
// PushQuit() and Flush() which SDL documents as thread-safe.
package sdljoystick

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherrover/controller"
	"github.com/veandco/go-sdl2/sdl"
)

// Input is the SDL implementation of the controller.Device interface.
type Input struct {
	joy *sdl.Joystick

	// the name of the open joystick is cached. the SDL handle is not valid
	// after the underlying device has gone away but we still want to report
	// the name of what was connected
	name string
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() (*Input, error) {
	err := sdl.Init(sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdljoystick: %w", err)
	}
	sdl.JoystickEventState(sdl.ENABLE)
	return &Input{}, nil
}

// Destroy closes any open joystick and shuts the SDL library down.
func (inp *Input) Destroy() {
	inp.Close()
	sdl.Quit()
}

// Count implements the controller.Device interface.
func (inp *Input) Count() int {
	return sdl.NumJoysticks()
}

// Name implements the controller.Device interface.
func (inp *Input) Name(idx int) string {
	return sdl.JoystickNameForIndex(idx)
}

// Open implements the controller.Device interface.
func (inp *Input) Open(idx int) error {
	inp.Close()

	joy := sdl.JoystickOpen(idx)
	if joy == nil {
		return fmt.Errorf("sdljoystick: cannot open joystick %d: %s", idx, sdl.GetError())
	}

	inp.joy = joy
	inp.name = joy.Name()

	return nil
}

// Close implements the controller.Device interface.
func (inp *Input) Close() {
	if inp.joy != nil {
		inp.joy.Close()
		inp.joy = nil
	}
}

// OpenedName implements the controller.Device interface.
func (inp *Input) OpenedName() string {
	if inp.joy == nil {
		return ""
	}
	return inp.name
}

// InstanceID implements the controller.Device interface.
func (inp *Input) InstanceID() int {
	if inp.joy == nil {
		return -1
	}
	return int(inp.joy.InstanceID())
}

// NumAxes implements the controller.Device interface.
func (inp *Input) NumAxes() int {
	if inp.joy == nil {
		return 0
	}
	return inp.joy.NumAxes()
}

// NumButtons implements the controller.Device interface.
func (inp *Input) NumButtons() int {
	if inp.joy == nil {
		return 0
	}
	return inp.joy.NumButtons()
}

// NumHats implements the controller.Device interface.
func (inp *Input) NumHats() int {
	if inp.joy == nil {
		return 0
	}
	return inp.joy.NumHats()
}

// Axis implements the controller.Device interface. The int16 value reported
// by SDL is normalised to the range [-1.0, 1.0].
func (inp *Input) Axis(i int) float32 {
	if inp.joy == nil {
		return 0
	}

	v := float32(inp.joy.Axis(i)) / 32767.0
	if v < -1.0 {
		v = -1.0
	}

	return v
}

// Button implements the controller.Device interface.
func (inp *Input) Button(i int) bool {
	if inp.joy == nil {
		return false
	}
	return inp.joy.Button(i) == sdl.PRESSED
}

// Hat implements the controller.Device interface. The SDL bitmask is
// decomposed into horizontal and vertical components. Positive x means
// right and positive y means up.
func (inp *Input) Hat(i int) (int, int) {
	if inp.joy == nil {
		return 0, 0
	}

	var x, y int

	v := inp.joy.Hat(i)
	if v&sdl.HAT_RIGHT == sdl.HAT_RIGHT {
		x = 1
	} else if v&sdl.HAT_LEFT == sdl.HAT_LEFT {
		x = -1
	}
	if v&sdl.HAT_UP == sdl.HAT_UP {
		y = 1
	} else if v&sdl.HAT_DOWN == sdl.HAT_DOWN {
		y = -1
	}

	return x, y
}

// WaitEvent implements the controller.Device interface.
func (inp *Input) WaitEvent(timeout time.Duration) controller.DeviceEvent {
	ev := sdl.WaitEventTimeout(int(timeout.Milliseconds()))

	switch ev := ev.(type) {
	case *sdl.JoyDeviceAddedEvent:
		// for the added event the Which field is a device index and not an
		// instance ID
		return controller.DeviceEvent{
			Kind:  controller.DeviceAdded,
			Index: int(ev.Which),
		}

	case *sdl.JoyDeviceRemovedEvent:
		return controller.DeviceEvent{
			Kind:       controller.DeviceRemoved,
			InstanceID: int(ev.Which),
		}

	case *sdl.JoyAxisEvent:
		return controller.DeviceEvent{
			Kind:       controller.DeviceInput,
			InstanceID: int(ev.Which),
		}

	case *sdl.JoyButtonEvent:
		return controller.DeviceEvent{
			Kind:       controller.DeviceInput,
			InstanceID: int(ev.Which),
		}

	case *sdl.JoyHatEvent:
		return controller.DeviceEvent{
			Kind:       controller.DeviceInput,
			InstanceID: int(ev.Which),
		}

	case *sdl.QuitEvent:
		return controller.DeviceEvent{Kind: controller.DeviceQuit}
	}

	return controller.DeviceEvent{Kind: controller.DeviceNothing}
}

// PushQuit implements the controller.Device interface.
func (inp *Input) PushQuit() {
	_, _ = sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT})
}

// Flush implements the controller.Device interface.
func (inp *Input) Flush() {
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}
