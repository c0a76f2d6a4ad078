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
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/chaincap"
	"github.com/google/chaincap/mocks"
	"github.com/google/chaincap/sim"

	"github.com/golang/mock/gomock"
	"golang.org/x/time/rate"
)

func TestConfigValidate(t *testing.T) {
	const clock = 30000000
	good := chaincap.DefaultConfig()
	if err := good.Validate(clock); err != nil {
		t.Errorf("Default config rejected: %v", err)
	}

	for _, tc := range []struct {
		name   string
		mutate func(*chaincap.Config)
	}{
		{"zero rate", func(c *chaincap.Config) { c.SampleRate = 0 }},
		{"rate above clock/2", func(c *chaincap.Config) { c.SampleRate = 20000000 }},
		{"zero block size", func(c *chaincap.Config) { c.BlockSize = 0 }},
		{"oversized block", func(c *chaincap.Config) { c.BlockSize = chaincap.MaxTransferWords + 1 }},
		{"zero blocks", func(c *chaincap.Config) { c.NumBlocks = 0 }},
		{"too many blocks", func(c *chaincap.Config) { c.NumBlocks = chaincap.MaxDescriptors + 1 }},
		{"bad channel", func(c *chaincap.Config) { c.Channel = chaincap.MaxChannel + 1 }},
		{"no trigger", func(c *chaincap.Config) { c.Trigger = chaincap.TriggerSourceNone }},
	} {
		cfg := good
		tc.mutate(&cfg)
		if err := cfg.Validate(clock); err == nil {
			t.Errorf("Validate accepted %v", tc.name)
		}
	}
}

func TestConfigRateTruncation(t *testing.T) {
	const clock = 30000000
	cfg := chaincap.DefaultConfig()

	// 500k divides the clock evenly.
	if period := cfg.TriggerPeriod(clock); period != 60 {
		t.Errorf("TriggerPeriod = %v, expected 60", period)
	}
	if got := cfg.AchievedRate(clock); got != 500000 {
		t.Errorf("AchievedRate = %v, expected 500000", got)
	}

	// 7k does not; the truncated period lands above the request.
	cfg.SampleRate = 7000
	if period := cfg.TriggerPeriod(clock); period != 4285 {
		t.Errorf("TriggerPeriod = %v, expected 4285", period)
	}
	if got := cfg.AchievedRate(clock); got != 7001 {
		t.Errorf("AchievedRate = %v, expected 7001", got)
	}
}

// The whole pipeline on a ramp input: every block in trigger order,
// guard bits gone, text output line per sample.
func TestCaptureRamp(t *testing.T) {
	dev := sim.New(nil)
	defer dev.Close()

	cfg := chaincap.Config{
		SampleRate: 500000,
		BlockSize:  4,
		NumBlocks:  2,
		Channel:    3,
		Trigger:    chaincap.TriggerSourcePulseGen,
	}
	wf, err := chaincap.Capture(context.Background(), dev, cfg)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	if !wf.Normalized() {
		t.Errorf("Capture returned a raw waveform")
	}
	expected := []uint16{1, 2, 3, 4, 5, 6, 7, 8}
	if !reflect.DeepEqual(wf.Samples(), expected) {
		t.Errorf("Samples = %v, expected %v", wf.Samples(), expected)
	}

	var buf bytes.Buffer
	r := chaincap.NewRenderer(chaincap.NewWriterOutput(&buf), rate.Inf)
	if err := r.Render(context.Background(), wf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	text := "0 1\n1 2\n2 3\n3 4\n4 5\n5 6\n6 7\n7 8\n"
	if buf.String() != text {
		t.Errorf("Rendered %q, expected %q", buf.String(), text)
	}

	if n := dev.Conversions(); n != 8 {
		t.Errorf("Conversions = %v, expected 8", n)
	}
	if n := dev.Advances(); n != 2 {
		t.Errorf("Advances = %v, expected 2", n)
	}
	if n := dev.DebugPulses(); n != 16 {
		t.Errorf("DebugPulses = %v, expected 16 (8 per block)", n)
	}
}

func TestCaptureFullGeometry(t *testing.T) {
	dev := sim.New(nil)
	defer dev.Close()

	wf, err := chaincap.Capture(context.Background(), dev, chaincap.DefaultConfig())
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if wf.Len() != 3*1024 {
		t.Fatalf("Len = %v, expected 3072", wf.Len())
	}
	// Unit ramp: sample i carries i+1 across block boundaries.
	for _, i := range []int{0, 1023, 1024, 3071} {
		if got := wf.Samples()[i]; got != uint16(i+1) {
			t.Errorf("Sample %v = %v, expected %v", i, got, i+1)
		}
	}
}

func TestSessionStateFlow(t *testing.T) {
	dev := sim.New(nil)
	defer dev.Close()

	cfg := chaincap.DefaultConfig()
	cfg.BlockSize = 4
	s, err := chaincap.NewSession(dev, cfg)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	defer s.Close()

	if s.State() != chaincap.StateIdle {
		t.Errorf("State = %v, expected Idle", s.State())
	}
	if err := s.Configure(context.Background()); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if s.State() != chaincap.StateConfiguring {
		t.Errorf("State = %v, expected Configuring", s.State())
	}

	wf, err := s.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if s.State() != chaincap.StateDone {
		t.Errorf("State = %v, expected Done", s.State())
	}
	if s.Waveform() != wf {
		t.Errorf("Waveform() does not return the acquired capture")
	}

	// One completion per block, and exactly as many as the device
	// raised.
	if got := s.Completed(); got != uint32(cfg.NumBlocks) {
		t.Errorf("Completed = %v, expected %v", got, cfg.NumBlocks)
	}
	if got, raised := s.Completed(), dev.Advances(); got != uint32(raised) {
		t.Errorf("Completed = %v, device raised %v", got, raised)
	}
}

func TestSessionStateGuards(t *testing.T) {
	dev := sim.New(nil)
	defer dev.Close()

	s, err := chaincap.NewSession(dev, chaincap.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	defer s.Close()

	if _, err := s.Acquire(context.Background()); err == nil {
		t.Errorf("Acquire succeeded before Configure")
	}
	if err := s.Configure(context.Background()); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := s.Configure(context.Background()); err == nil {
		t.Errorf("Second Configure succeeded")
	}
}

func TestSessionRejectsBadConfig(t *testing.T) {
	dev := sim.New(nil)
	defer dev.Close()

	cfg := chaincap.DefaultConfig()
	cfg.SampleRate = 20000000
	if _, err := chaincap.NewSession(dev, cfg); err == nil {
		t.Errorf("NewSession accepted a rate the clock cannot pace")
	}
}

// A device that stops raising triggers mid-capture must not hang
// Acquire; cancellation reports the blocks that did land.
func TestSessionAcquireCancelled(t *testing.T) {
	dev := sim.New(&sim.Config{StallAfter: 3})
	defer dev.Close()

	cfg := chaincap.Config{
		SampleRate: 500000,
		BlockSize:  2,
		NumBlocks:  4,
		Channel:    3,
		Trigger:    chaincap.TriggerSourcePulseGen,
	}
	s, err := chaincap.NewSession(dev, cfg)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	defer s.Close()
	if err := s.Configure(context.Background()); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = s.Acquire(ctx)
	if err == nil {
		t.Fatalf("Acquire succeeded on a stalled device")
	}
	if !strings.Contains(err.Error(), "interrupted after 1/4 blocks") {
		t.Errorf("Unexpected error: %v", err)
	}
	if s.State() != chaincap.StateIdle {
		t.Errorf("State = %v after abort, expected Idle", s.State())
	}
}

func TestSessionReportsDriverError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	board := mocks.NewMockBoardInterface(mockCtrl)
	timing := mocks.NewMockTimingInterface(mockCtrl)
	sampler := mocks.NewMockSamplerInterface(mockCtrl)
	engine := mocks.NewMockChainInterface(mockCtrl)

	board.EXPECT().SystemClockRate().Return(uint32(30000000)).AnyTimes()
	board.EXPECT().Error().Return(nil)
	sampler.EXPECT().Calibrate(gomock.Any()).Return(nil)
	sampler.EXPECT().Configure(uint8(3), chaincap.TriggerSourcePulseGen)
	sampler.EXPECT().EnableSequencer()
	sampler.EXPECT().Error().Return(nil)
	engine.EXPECT().Load(gomock.Any())
	engine.EXPECT().Arm()
	engine.EXPECT().Error().Return(fmt.Errorf("transfer count watchdog"))
	timing.EXPECT().Configure(uint32(60), uint32(30))
	timing.EXPECT().Error().Return(nil)
	dev.EXPECT().SetEventHandler(chaincap.EventChainAdvance, gomock.Any()).Return(nil)

	// The failed bring-up quiesces the hardware on the way out.
	timing.EXPECT().Stop()
	dev.EXPECT().SetEventHandler(chaincap.EventChainAdvance, gomock.Nil()).Return(nil)
	sampler.EXPECT().DisableSequencer()
	engine.EXPECT().Disarm()

	s, err := chaincap.NewSessionWithDrivers(dev, board, timing, sampler, engine,
		chaincap.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSessionWithDrivers failed: %v", err)
	}
	err = s.Configure(context.Background())
	if err == nil {
		t.Fatalf("Configure succeeded with a failing chain engine")
	}
	if !strings.Contains(err.Error(), "chain engine: transfer count watchdog") {
		t.Errorf("Unexpected error: %v", err)
	}
}
