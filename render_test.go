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
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/chaincap"
	"github.com/google/chaincap/mocks"

	"github.com/golang/mock/gomock"
	"golang.org/x/time/rate"
)

func TestRendererText(t *testing.T) {
	w, err := chaincap.NewWaveform([]uint16{1, 2, 3, 4, 5, 6, 7, 8}, 2, 4, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}

	var buf bytes.Buffer
	r := chaincap.NewRenderer(chaincap.NewWriterOutput(&buf), rate.Inf)
	if err := r.Render(context.Background(), w); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := "0 1\n1 2\n2 3\n3 4\n4 5\n5 6\n6 7\n7 8\n"
	if buf.String() != expected {
		t.Errorf("Rendered %q, expected %q", buf.String(), expected)
	}
}

func TestRendererByteOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	out := mocks.NewMockOutputInterface(mockCtrl)
	gomock.InOrder(
		out.EXPECT().SendByte(byte('0')).Return(nil),
		out.EXPECT().SendByte(byte(' ')).Return(nil),
		out.EXPECT().SendByte(byte('7')).Return(nil),
		out.EXPECT().SendByte(byte('\n')).Return(nil),
	)

	w, err := chaincap.NewWaveform([]uint16{7}, 1, 1, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}
	r := chaincap.NewRenderer(out, rate.Inf)
	if err := r.Render(context.Background(), w); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestRendererStopsOnSinkError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	out := mocks.NewMockOutputInterface(mockCtrl)
	out.EXPECT().SendByte(gomock.Any()).Return(fmt.Errorf("sink jammed"))

	w, err := chaincap.NewWaveform([]uint16{7, 8}, 2, 1, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}
	r := chaincap.NewRenderer(out, rate.Inf)
	err = r.Render(context.Background(), w)
	if err == nil {
		t.Fatalf("Render succeeded with a failing sink")
	}
	if !strings.Contains(err.Error(), "render sample 0") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRendererCancelled(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	out := mocks.NewMockOutputInterface(mockCtrl)

	w, err := chaincap.NewWaveform([]uint16{7}, 1, 1, 500000)
	if err != nil {
		t.Fatalf("NewWaveform failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := chaincap.NewRenderer(out, rate.Inf)
	err = r.Render(ctx, w)
	if err == nil {
		t.Fatalf("Render succeeded with a cancelled context")
	}
	if !strings.Contains(err.Error(), "render pacing") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestParseRecords(t *testing.T) {
	records, err := chaincap.ParseRecords(strings.NewReader("0 1\n1 2\n2 3\n"))
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Got %v records, expected 3", len(records))
	}
	for i, r := range records {
		if r.Index != i || r.Value != uint16(i+1) {
			t.Errorf("Record %v = %+v", i, r)
		}
	}
}

func TestParseRecordsRejectsMalformed(t *testing.T) {
	for _, text := range []string{
		"0 1 2\n",    // too many fields
		"1 5\n",      // index does not start at zero
		"0 5\n2 6\n", // index gap
		"x 5\n",      // non-numeric index
		"0 99999\n",  // value over 16 bits
	} {
		if _, err := chaincap.ParseRecords(strings.NewReader(text)); err == nil {
			t.Errorf("ParseRecords accepted %q", text)
		}
	}
}
