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

// Captured waveform post-processing.
package chaincap

import (
	"fmt"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Waveform holds one capture: numBlocks blocks of blockSize conversion
// words in trigger order. Words start raw (value shifted left by
// GuardBits over status flags) and become plain conversion values
// after Normalize.
type Waveform struct {
	data       []uint16
	blockSize  int
	numBlocks  int
	sampleRate uint32
	normalized bool
}

func NewWaveform(data []uint16, blockSize, numBlocks int, sampleRate uint32) (*Waveform, error) {
	if blockSize < 1 || numBlocks < 1 {
		return nil, fmt.Errorf("Invalid geometry %vx%v", numBlocks, blockSize)
	}
	if len(data) != blockSize*numBlocks {
		return nil, fmt.Errorf("Got %v words, geometry %vx%v needs %v",
			len(data), numBlocks, blockSize, blockSize*numBlocks)
	}
	return &Waveform{data, blockSize, numBlocks, sampleRate, false}, nil
}

func (w *Waveform) Len() int            { return len(w.data) }
func (w *Waveform) BlockSize() int      { return w.blockSize }
func (w *Waveform) NumBlocks() int      { return w.numBlocks }
func (w *Waveform) SampleRate() uint32  { return w.sampleRate }
func (w *Waveform) Normalized() bool    { return w.normalized }

// Samples returns the backing words in trigger order. Callers must not
// modify the slice.
func (w *Waveform) Samples() []uint16 {
	return w.data
}

// Normalize shifts the guard bits out of every word, in place. The
// shift destroys the raw words, so a second call is an error rather
// than a silent halving of the data.
func (w *Waveform) Normalize() error {
	if w.normalized {
		return fmt.Errorf("waveform already normalized")
	}
	glog.V(1).Infof("Normalizing %d samples", len(w.data))
	for i := range w.data {
		w.data[i] >>= GuardBits
	}
	w.normalized = true
	return nil
}

// Floats widens the samples for numeric work.
func (w *Waveform) Floats() []float64 {
	out := make([]float64, len(w.data))
	for i, v := range w.data {
		out[i] = float64(v)
	}
	return out
}

// BlocksMatrix lays the capture out one block per row:
//  _          _
// | -- B0  -- |
// | -- B1  -- |
// | -- ..  -- |
// |_ -- BN  -_|
//
func (w *Waveform) BlocksMatrix() mat.Matrix {
	return mat.NewDense(w.numBlocks, w.blockSize, w.Floats())
}

type Stats struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func (s Stats) String() string {
	return fmt.Sprintf("<N:%d, Min:%g, Max:%g, Mean:%.3f, StdDev:%.3f>",
		s.N, s.Min, s.Max, s.Mean, s.StdDev)
}

func summarize(xs []float64) Stats {
	return Stats{
		N:      len(xs),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
	}
}

// Summary computes whole-capture statistics.
func (w *Waveform) Summary() Stats {
	return summarize(w.Floats())
}

// BlockSummaries computes per-block statistics, one entry per row of
// BlocksMatrix.
func (w *Waveform) BlockSummaries() []Stats {
	m := w.BlocksMatrix().(*mat.Dense)
	out := make([]Stats, w.numBlocks)
	for i := 0; i < w.numBlocks; i++ {
		out[i] = summarize(m.RawRowView(i))
	}
	return out
}
