// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sim

import (
	"math"
)

// Source synthesizes the analog input: the 12-bit conversion value for
// sample n on the given channel. The device shifts the value into the
// raw result word itself.
type Source func(n int, channel uint8) uint16

const valueMask = 0x0fff

// Constant holds the input at a fixed level.
func Constant(v uint16) Source {
	return func(int, uint8) uint16 {
		return v & valueMask
	}
}

// Ramp counts up from start in step increments, wrapping at 12 bits.
func Ramp(start, step uint16) Source {
	return func(n int, _ uint8) uint16 {
		return (start + uint16(n)*step) & valueMask
	}
}

// Sine oscillates around mid with the given amplitude, one full cycle
// every samplesPerCycle samples.
func Sine(mid, amplitude float64, samplesPerCycle int) Source {
	return func(n int, _ uint8) uint16 {
		phase := 2 * math.Pi * float64(n) / float64(samplesPerCycle)
		v := mid + amplitude*math.Sin(phase)
		if v < 0 {
			v = 0
		}
		if v > valueMask {
			v = valueMask
		}
		return uint16(v)
	}
}

// Sequence plays the given values in order, repeating from the start
// when they run out.
func Sequence(values ...uint16) Source {
	return func(n int, _ uint8) uint16 {
		return values[n%len(values)] & valueMask
	}
}
