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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopherrover/controller"
	"github.com/jetsetilly/gopherrover/drive"
	"github.com/jetsetilly/gopherrover/hardware"
	"github.com/jetsetilly/gopherrover/logger"
	"github.com/jetsetilly/gopherrover/modalflag"
	"github.com/jetsetilly/gopherrover/padcheck"
	"github.com/jetsetilly/gopherrover/performance"
	"github.com/jetsetilly/gopherrover/sdljoystick"
	"github.com/jetsetilly/gopherrover/statsview"
	"github.com/jetsetilly/gopherrover/version"
)

// the name SDL reports for the controller the rover ships with
const defaultController = "Xbox Series X Controller"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "CHECK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "CHECK":
		err = check(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	match := md.AddString("controller", defaultController, "name of the controller to drive with")
	timeout := md.AddInt("timeout", 30, "seconds to wait for a controller to (re)connect")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	profile := md.AddString("profile", "none", "run profiler: CPU, MEM, BOTH, NONE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	dev, err := sdljoystick.NewInput()
	if err != nil {
		return err
	}
	defer dev.Destroy()

	con := controller.NewController(dev, *match,
		time.Duration(*timeout)*time.Second,
		controller.NewConverter(controller.ProfileXbox))
	con.LogInput = *log

	err = con.Connect()
	if err != nil {
		return err
	}
	defer con.Quit()

	rov, err := hardware.NewRover(hardware.DefaultPins())
	if err != nil {
		return err
	}
	defer rov.Close()

	drv := drive.NewDriver(drive.Actuators{
		LeftMotor:  rov.LeftMotor,
		RightMotor: rov.RightMotor,
		Pan:        rov.Pan,
		Tilt:       rov.Tilt,
		Lamp:       rov.Lamp,
		Fault:      rov,
	}, con.Data)
	drv.LogActions = *log

	con.Run()

	// ctrl-c ends the session through the same path as the controller's
	// quit chord
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		con.Quit()
	}()

	err = performance.RunProfiler(prf, "gopherrover", func() error {
		drv.Run()
		return nil
	})

	// whatever ended the session, the rover must not be left moving
	rov.SafeState()

	return err
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	match := md.AddString("controller", "", "name of the controller to display. first attached if empty")
	timeout := md.AddInt("timeout", 30, "seconds to wait for a controller to (re)connect")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dev, err := sdljoystick.NewInput()
	if err != nil {
		return err
	}
	defer dev.Destroy()

	return padcheck.Check(dev, *match, time.Duration(*timeout)*time.Second, os.Stdout)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
