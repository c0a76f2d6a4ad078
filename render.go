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

// Renders captured waveforms as "<index> <value>" text lines.
package chaincap

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/time/rate"
)

// Record is one parsed output line.
type Record struct {
	Index int
	Value uint16
}

type Renderer struct {
	out     OutputInterface
	limiter *rate.Limiter
}

// NewRenderer builds a renderer over out. lineRate bounds the output
// pace in lines per second, giving slow sinks settling time between
// lines; rate.Inf renders unpaced.
func NewRenderer(out OutputInterface, lineRate rate.Limit) *Renderer {
	return &Renderer{out, rate.NewLimiter(lineRate, 1)}
}

// Render streams every sample of w in buffer order, one line per
// sample: the decimal sample index, a space, the decimal value, a
// newline. No header, no trailing output past the final newline.
// Bytes go to the sink synchronously and in order.
func (r *Renderer) Render(ctx context.Context, w *Waveform) error {
	glog.V(1).Infof("Rendering %d samples", w.Len())
	line := make([]byte, 0, 16)
	for i, v := range w.Samples() {
		if err := r.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("render pacing: %v", err)
		}
		line = strconv.AppendInt(line[:0], int64(i), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(v), 10)
		line = append(line, '\n')
		if err := r.send(line); err != nil {
			return fmt.Errorf("render sample %d: %v", i, err)
		}
	}
	if f, ok := r.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (r *Renderer) send(p []byte) error {
	for _, b := range p {
		if err := r.out.SendByte(b); err != nil {
			return err
		}
	}
	return nil
}

// ParseRecords reads rendered lines back. Strict: two decimal fields
// per line, indices counting up from zero.
func ParseRecords(src io.Reader) ([]Record, error) {
	var out []Record
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: got %d fields, want 2", len(out), len(fields))
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad index: %v", len(out), err)
		}
		if idx != len(out) {
			return nil, fmt.Errorf("line %d: index %d out of order", len(out), idx)
		}
		val, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad value: %v", len(out), err)
		}
		out = append(out, Record{idx, uint16(val)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning records: %v", err)
	}
	return out, nil
}
