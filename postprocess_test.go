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

package chaincap_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/chaincap"
)

func floatNear(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWaveformNormalize(t *testing.T) {
	raw := []uint16{16, 32, 48}
	w, err := chaincap.NewWaveform(raw, 3, 1, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}
	if w.Normalized() {
		t.Errorf("Waveform born normalized")
	}
	if err := w.Normalize(); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !w.Normalized() {
		t.Errorf("Normalized() false after Normalize")
	}
	if expected := []uint16{1, 2, 3}; !reflect.DeepEqual(w.Samples(), expected) {
		t.Errorf("Samples = %v, expected %v", w.Samples(), expected)
	}
	// The shift is destructive, so a repeat must fail loudly instead of
	// halving the data again.
	if err := w.Normalize(); err == nil {
		t.Errorf("Second Normalize succeeded")
	}
	if expected := []uint16{1, 2, 3}; !reflect.DeepEqual(w.Samples(), expected) {
		t.Errorf("Samples changed by rejected Normalize: %v", w.Samples())
	}
}

func TestWaveformRejectsBadGeometry(t *testing.T) {
	if _, err := chaincap.NewWaveform([]uint16{}, 0, 1, 500000); err == nil {
		t.Errorf("NewWaveform accepted a zero block size")
	}
	if _, err := chaincap.NewWaveform([]uint16{1, 2, 3}, 2, 2, 500000); err == nil {
		t.Errorf("NewWaveform accepted 3 words for a 2x2 geometry")
	}
}

func TestWaveformSummary(t *testing.T) {
	w, err := chaincap.NewWaveform([]uint16{1, 2, 3}, 3, 1, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}
	s := w.Summary()
	if s.N != 3 || !floatNear(s.Min, 1) || !floatNear(s.Max, 3) ||
		!floatNear(s.Mean, 2) || !floatNear(s.StdDev, 1) {
		t.Errorf("Summary = %v", s)
	}
	if expected := "<N:3, Min:1, Max:3, Mean:2.000, StdDev:1.000>"; s.String() != expected {
		t.Errorf("Summary string = %q, expected %q", s.String(), expected)
	}
}

func TestWaveformBlockSummaries(t *testing.T) {
	w, err := chaincap.NewWaveform([]uint16{1, 2, 3, 4, 5, 6}, 3, 2, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}
	blocks := w.BlockSummaries()
	if len(blocks) != 2 {
		t.Fatalf("Got %v block summaries, expected 2", len(blocks))
	}
	if blocks[0].N != 3 || !floatNear(blocks[0].Mean, 2) {
		t.Errorf("Block 0 summary = %v", blocks[0])
	}
	if blocks[1].N != 3 || !floatNear(blocks[1].Mean, 5) {
		t.Errorf("Block 1 summary = %v", blocks[1])
	}
}

func TestWaveformBlocksMatrix(t *testing.T) {
	w, err := chaincap.NewWaveform([]uint16{1, 2, 3, 4, 5, 6}, 3, 2, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}
	m := w.BlocksMatrix()
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("Matrix dims = %vx%v, expected 2x3", rows, cols)
	}
	if got := m.At(1, 0); !floatNear(got, 4) {
		t.Errorf("At(1, 0) = %v, expected 4", got)
	}
}
