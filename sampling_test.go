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
	"context"
	"strings"
	"testing"

	"github.com/google/chaincap"
	"github.com/google/chaincap/sim"
)

func newTestSampler(t *testing.T) (*chaincap.Sampler, *sim.Device) {
	t.Helper()
	dev := sim.New(nil)
	t.Cleanup(func() { dev.Close() })
	sampler, err := chaincap.NewSampler(chaincap.NewRegisters(dev))
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}
	return sampler, dev
}

func TestSamplerCalibrate(t *testing.T) {
	sampler, _ := newTestSampler(t)
	if err := sampler.Calibrate(context.Background()); err != nil {
		t.Fatalf("Calibrate failed: %v", err)
	}
	if err := sampler.Error(); err != nil {
		t.Fatalf("Sampler error after calibration: %v", err)
	}
}

func TestSamplerCalibrateCancelled(t *testing.T) {
	sampler, _ := newTestSampler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sampler.Calibrate(ctx)
	if err == nil {
		t.Fatalf("Calibrate succeeded with a cancelled context")
	}
	if !strings.Contains(err.Error(), "calibration did not complete") {
		t.Errorf("Unexpected error: %v", err)
	}
	// The failure sticks; later calls must not touch the device.
	if err := sampler.Error(); err == nil {
		t.Errorf("Error() clear after failed calibration")
	}
}

func TestSamplerConfigureRejectsChannel(t *testing.T) {
	sampler, _ := newTestSampler(t)
	sampler.Configure(chaincap.MaxChannel+1, chaincap.TriggerSourcePulseGen)
	if err := sampler.Error(); err == nil {
		t.Fatalf("Configure accepted channel %v", chaincap.MaxChannel+1)
	}
}

func TestSamplerSequencerRoundTrip(t *testing.T) {
	sampler, _ := newTestSampler(t)
	sampler.Configure(3, chaincap.TriggerSourcePulseGen)
	if channel := sampler.Channel(); channel != 3 {
		t.Errorf("Channel = %v, expected 3", channel)
	}
	if sampler.SequencerEnabled() {
		t.Errorf("Sequencer armed before EnableSequencer")
	}
	sampler.EnableSequencer()
	if !sampler.SequencerEnabled() {
		t.Errorf("Sequencer still off after EnableSequencer")
	}
	sampler.DisableSequencer()
	if sampler.SequencerEnabled() {
		t.Errorf("Sequencer still armed after DisableSequencer")
	}
	if err := sampler.Error(); err != nil {
		t.Fatalf("Sampler error: %v", err)
	}
}
