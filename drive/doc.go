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

// Package drive turns controller snapshots into actuator commands.
//
// The Driver type consumes events from the controller's queue and applies
// the driving policy to each snapshot:
//
//	left stick      drive train (speed, steering, pivot turns)
//	triggers        spin turn on the spot
//	right stick     camera pan and tilt
//	right stick click  recentre the camera
//	directional pad    headlamp on/off and brightness
//	back + start    end the session
//
// The package knows nothing about GPIO. Actuators are supplied through
// small interfaces, which is also how the policy is tested.
package drive
