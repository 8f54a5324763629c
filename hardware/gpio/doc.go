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

// Package gpio wraps the Raspberry Pi GPIO header. It is the only package in
// the project that touches /dev/gpiomem.
//
// The GPIO type is an explicit resource. There is no package level state and
// every pin is claimed through an instance of the type, which is created
// once and closed once by the owning process.
//
// Pulse-width modulation is exposed through the PWM interface. Pins backed
// by one of the Pi's hardware PWM channels (BCM 12, 13, 18 and 19) are
// driven by the PWM peripheral. Any other pin is driven by a software loop,
// which is accurate enough for motor speed control and lamp dimming but
// should not be used for servos.
package gpio
