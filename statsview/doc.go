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

// Package statsview is an optional package that will be built only when the
// statsview build constraint is present.
//
// It provides a HTTP server offering runtime statistics. Underlying
// functionality provided by "github.com/go-echarts/statsview". Useful when
// soak testing the control loop on the vehicle itself.
//
// The vehicle is headless so the server listens on all interfaces, not just
// the loopback. After launch, graphical statistics are viewable from another
// machine at:
//
//	<vehicle address>:12600/debug/statsview
//
// And standard Go pprof statistics at:
//
//	<vehicle address>:12600/debug/pprof/
package statsview
