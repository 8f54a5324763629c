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

// Profile selects how a Converter treats raw axis readings. It is a small
// closed set decided at construction time; the alternative of inspecting the
// controller at runtime is deliberately not supported.
type Profile int

// The list of valid Profile values.
const (
	// quantize stick axes by magnitude and trigger axes by shifted value.
	// suitable for Xbox-class controllers and required by the drive policy
	ProfileXbox Profile = iota

	// report raw axis values without quantization. intended for diagnostics
	// where finer grained inspection is wanted. note that raw values make
	// change detection very noisy
	ProfileSimple
)

// Thresholds are the four bucket boundaries of the quantization step
// function. Boundaries are lower-bound inclusive and the highest bucket is
// unbounded above.
type Thresholds [4]float32

// Default threshold tables. Stick thresholds apply to the absolute axis
// value. Trigger thresholds apply to the value after the +1 domain shift
// (triggers rest at -1).
var (
	StickThresholds   = Thresholds{0.2, 0.4, 0.6, 0.8}
	TriggerThresholds = Thresholds{0.2, 0.65, 1.1, 1.6}
)

// Converter maps raw analog samples to AxisValues according to a Profile.
// Converters are pure and stateless; the same input always produces the same
// output.
type Converter struct {
	profile Profile

	stick   Thresholds
	trigger Thresholds

	// axis indices to be treated as triggers rather than sticks
	triggers map[int]bool
}

// NewConverter is the preferred method of initialisation for the Converter
// type. The default threshold tables are used and, for the Xbox profile, the
// trigger axes are those of the Xbox layout.
func NewConverter(profile Profile) *Converter {
	cv := &Converter{
		profile: profile,
		stick:   StickThresholds,
		trigger: TriggerThresholds,
		triggers: map[int]bool{
			int(XboxTriggerLeft):  true,
			int(XboxTriggerRight): true,
		},
	}
	return cv
}

// SetThresholds overrides the default threshold tables.
func (cv *Converter) SetThresholds(stick Thresholds, trigger Thresholds) {
	cv.stick = stick
	cv.trigger = trigger
}

// Convert a raw axis reading into an AxisValue. The idx argument identifies
// the logical role of the axis (stick or trigger).
func (cv *Converter) Convert(idx int, value float32) AxisValue {
	switch cv.profile {
	case ProfileXbox:
		if cv.triggers[idx] {
			// trigger axes rest at -1. shift the domain to [0, 2] so that an
			// unpressed trigger falls below the Zero threshold. sign is
			// always positive for triggers
			return AxisValue{
				Positive: true,
				Value:    float32(bucket(1+value, cv.trigger)),
			}
		}

		abs := value
		if abs < 0 {
			abs = -abs
		}

		return AxisValue{
			Positive: value >= 0,
			Value:    float32(bucket(abs, cv.stick)),
		}

	case ProfileSimple:
		return AxisValue{
			Positive: value >= 0,
			Value:    value,
		}
	}

	panic("unknown axis conversion profile")
}

// bucket is the 5 level monotone step function shared by both axis types.
func bucket(v float32, t Thresholds) Speed {
	switch {
	case v < t[0]:
		return Zero
	case v < t[1]:
		return Slow
	case v < t[2]:
		return Middle
	case v < t[3]:
		return High
	}
	return Max
}
