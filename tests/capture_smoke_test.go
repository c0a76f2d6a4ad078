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

// Smoke tests against an attached capture board. These talk to real
// hardware over USB and fail without it.
package main

import (
	"bytes"
	"context"
	"flag"
	"time"

	"github.com/google/chaincap"

	"testing"

	"golang.org/x/time/rate"
)

func init() {
	testing.Init()
	flag.Parse()
}

func TestUsbCapture(t *testing.T) {
	dev, err := chaincap.OpenUsbDevice()
	if err != nil {
		t.Fatal(err)
	}
	defer dev.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	wf, err := chaincap.Capture(ctx, dev, chaincap.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if wf.Len() != 3*1024 {
		t.Errorf("Captured %v samples, expected 3072", wf.Len())
	}

	// Normalized samples are 12-bit conversion values.
	s := wf.Summary()
	if s.Min < 0 || s.Max > 0x0fff {
		t.Errorf("Samples outside converter range: %v", s)
	}
	t.Logf("Capture summary: %v", s)
}

func TestUsbCaptureRendersText(t *testing.T) {
	dev, err := chaincap.OpenUsbDevice()
	if err != nil {
		t.Fatal(err)
	}
	defer dev.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := chaincap.DefaultConfig()
	cfg.BlockSize = 16
	wf, err := chaincap.Capture(ctx, dev, cfg)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r := chaincap.NewRenderer(chaincap.NewWriterOutput(&buf), rate.Inf)
	if err = r.Render(ctx, wf); err != nil {
		t.Fatal(err)
	}
	records, err := chaincap.ParseRecords(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != wf.Len() {
		t.Errorf("Parsed %v records from %v samples", len(records), wf.Len())
	}
	for i, rec := range records {
		if rec.Value != wf.Samples()[i] {
			t.Errorf("Record %v = %v, sample is %v", i, rec.Value, wf.Samples()[i])
			break
		}
	}
}
