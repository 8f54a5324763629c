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
	"testing"

	"github.com/jetsetilly/gopherrover/controller"
	"github.com/jetsetilly/gopherrover/test"
)

// a stick axis of the Xbox layout. any axis not in the trigger set will do
const stickAxis = int(controller.XboxStickLeftX)

func TestStickQuantization(t *testing.T) {
	cv := controller.NewConverter(controller.ProfileXbox)

	// threshold boundaries are lower-bound inclusive
	tests := []struct {
		value float32
		level controller.Speed
	}{
		{0.0, controller.Zero},
		{0.19, controller.Zero},
		{0.2, controller.Slow},
		{0.39, controller.Slow},
		{0.4, controller.Middle},
		{0.6, controller.High},
		{0.79, controller.High},
		{0.8, controller.Max},
		{1.0, controller.Max},
	}

	for _, tc := range tests {
		a := cv.Convert(stickAxis, tc.value)
		if a.Level() != tc.level {
			t.Errorf("stick value %.2f quantized to %v (wanted %v)", tc.value, a.Level(), tc.level)
		}
		test.Equate(t, a.Positive, true)

		// negative values quantize by magnitude with a negative sign
		a = cv.Convert(stickAxis, -tc.value)
		if a.Level() != tc.level {
			t.Errorf("stick value %.2f quantized to %v (wanted %v)", -tc.value, a.Level(), tc.level)
		}
		if tc.value > 0 {
			test.Equate(t, a.Positive, false)
		}
	}
}

func TestStickMonotonicity(t *testing.T) {
	cv := controller.NewConverter(controller.ProfileXbox)

	prev := controller.Zero
	for v := float32(0.0); v <= 1.0; v += 0.01 {
		a := cv.Convert(stickAxis, v)
		if a.Level() < prev {
			t.Fatalf("quantization not monotonic at %.2f (%v after %v)", v, a.Level(), prev)
		}
		if a.Level() < controller.Zero || a.Level() > controller.Max {
			t.Fatalf("quantization out of range at %.2f (%v)", v, a.Level())
		}
		prev = a.Level()
	}
}

func TestTriggerQuantization(t *testing.T) {
	cv := controller.NewConverter(controller.ProfileXbox)

	// triggers rest at -1 and are shifted by +1 before quantization. sign is
	// always positive
	tests := []struct {
		value float32
		level controller.Speed
	}{
		{-1.0, controller.Zero},
		{-0.81, controller.Zero},
		{-0.79, controller.Slow},
		{-0.36, controller.Slow},
		{-0.35, controller.Middle},
		{0.1, controller.High},
		{0.6, controller.Max},
		{1.0, controller.Max},
	}

	for _, tc := range tests {
		for _, trigger := range []controller.XboxAxis{controller.XboxTriggerLeft, controller.XboxTriggerRight} {
			a := cv.Convert(int(trigger), tc.value)
			if a.Level() != tc.level {
				t.Errorf("trigger value %.2f quantized to %v (wanted %v)", tc.value, a.Level(), tc.level)
			}
			test.Equate(t, a.Positive, true)
		}
	}
}

func TestSimpleProfile(t *testing.T) {
	cv := controller.NewConverter(controller.ProfileSimple)

	// the simple profile reports raw values, even for trigger axes
	a := cv.Convert(stickAxis, 0.73)
	test.Equate(t, a.Value, float32(0.73))
	test.Equate(t, a.Positive, true)

	a = cv.Convert(stickAxis, -0.21)
	test.Equate(t, a.Value, float32(-0.21))
	test.Equate(t, a.Positive, false)

	a = cv.Convert(int(controller.XboxTriggerLeft), -1.0)
	test.Equate(t, a.Value, float32(-1.0))
	test.Equate(t, a.Positive, false)
}

func TestThresholdOverride(t *testing.T) {
	cv := controller.NewConverter(controller.ProfileXbox)
	cv.SetThresholds(
		controller.Thresholds{0.1, 0.2, 0.3, 0.4},
		controller.TriggerThresholds,
	)

	a := cv.Convert(stickAxis, 0.45)
	if a.Level() != controller.Max {
		t.Errorf("overridden thresholds not applied (%v)", a.Level())
	}
}
