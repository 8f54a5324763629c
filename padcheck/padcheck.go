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

// Package padcheck displays live controller input in the terminal. It is
// the diagnostic used to find the button and axis numbering of an
// unfamiliar controller, which is why it reads the controller with the
// Simple profile and shows raw axis values rather than quantized levels.
package padcheck

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gopherrover/controller"
	"github.com/jetsetilly/gopherrover/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Check runs the display loop until a Quit event or until the q key is
// pressed.
//
// The terminal is switched to cbreak mode for the duration so the keypress
// is seen without waiting for a newline.
func Check(device controller.Device, match string, timeout time.Duration, output io.Writer) error {
	var canAttr unix.Termios
	var cbreakAttr unix.Termios

	err := termios.Tcgetattr(os.Stdin.Fd(), &canAttr)
	if err != nil {
		return curated.Errorf("padcheck: %v", err)
	}
	cbreakAttr = canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &cbreakAttr)
	defer termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &canAttr)

	con := controller.NewController(device, match, timeout, controller.NewConverter(controller.ProfileSimple))

	err = con.Connect()
	if err != nil {
		return curated.Errorf("padcheck: %v", err)
	}
	con.Run()
	defer con.Quit()

	// the keyboard goroutine ends the session through the same Quit()
	// path as everything else. it leaks if the session ends some other
	// way, which is acceptable for a short-lived diagnostic mode
	go func() {
		b := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(b)
			if err != nil {
				return
			}
			if n == 1 && (b[0] == 'q' || b[0] == 'Q') {
				con.Quit()
				return
			}
		}
	}()

	fmt.Fprintf(output, "press q to quit\n")

	for {
		d := con.Data.Get()
		switch d.Event {
		case controller.EventQuit:
			fmt.Fprintf(output, "\n")
			return nil

		case controller.EventConnected:
			fmt.Fprintf(output, "connected: %s (%d axes, %d buttons, %d hats)\n",
				device.OpenedName(), device.NumAxes(), device.NumButtons(), device.NumHats())

		case controller.EventDisconnected:
			fmt.Fprintf(output, "\ndisconnected: waiting for controller\n")

		case controller.EventInputChanged:
			// overwrite the previous line. the trailing spaces mop up any
			// residue of a longer line
			fmt.Fprintf(output, "\r%s    ", d.Input.String())
		}
	}
}
