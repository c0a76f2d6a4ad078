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
	"testing"

	"github.com/google/chaincap"
	"github.com/google/chaincap/mocks"
	"github.com/google/chaincap/sim"

	"github.com/golang/mock/gomock"
)

func TestPulseGenStartStop(t *testing.T) {
	dev := sim.New(nil)
	defer dev.Close()
	regs := chaincap.NewRegisters(dev)

	timing, err := chaincap.NewPulseGen(regs)
	if err != nil {
		t.Fatalf("NewPulseGen failed: %v", err)
	}
	if timing.Running() {
		t.Errorf("Counter runs right after bring-up")
	}

	timing.Configure(60, 30)
	timing.Start()
	if !timing.Running() {
		t.Errorf("Counter halted after Start")
	}
	timing.Stop()
	if timing.Running() {
		t.Errorf("Counter still runs after Stop")
	}
	if err := timing.Error(); err != nil {
		t.Fatalf("PulseGen error: %v", err)
	}
}

// Start sets the self-resetting clear bit, so the control write must
// skip read-back verification; Stop verifies with clear masked out.
func TestPulseGenStartStopRegisterTraffic(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	gomock.InOrder(
		// Bring-up: halt from a cleared counter, zero both matches.
		dev.EXPECT().RegWrite(chaincap.RegTimerCtrl, []byte{0x03, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegWrite(chaincap.RegTimerPeriod, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegRead(chaincap.RegTimerPeriod, gomock.Any()).
			SetArg(1, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegWrite(chaincap.RegTimerPulse, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegRead(chaincap.RegTimerPulse, gomock.Any()).
			SetArg(1, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),

		// Start: read control, write clear+run with no read-back.
		dev.EXPECT().RegRead(chaincap.RegTimerCtrl, gomock.Any()).
			SetArg(1, []byte{0x01, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegWrite(chaincap.RegTimerCtrl, []byte{0x02, 0x00, 0x00, 0x00}).
			Return(nil),

		// Stop: read control, write halt, verify with clear masked.
		dev.EXPECT().RegRead(chaincap.RegTimerCtrl, gomock.Any()).
			SetArg(1, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegWrite(chaincap.RegTimerCtrl, []byte{0x01, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegRead(chaincap.RegTimerCtrl, gomock.Any()).
			SetArg(1, []byte{0x01, 0x00, 0x00, 0x00}).
			Return(nil),
	)

	timing, err := chaincap.NewPulseGen(chaincap.NewRegisters(dev))
	if err != nil {
		t.Fatalf("NewPulseGen failed: %v", err)
	}
	timing.Start()
	timing.Stop()
	if err := timing.Error(); err != nil {
		t.Fatalf("PulseGen error: %v", err)
	}
}

func TestPulseGenCount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	gomock.InOrder(
		dev.EXPECT().RegWrite(chaincap.RegTimerCtrl, gomock.Any()).Return(nil),
		dev.EXPECT().RegWrite(chaincap.RegTimerPeriod, gomock.Any()).Return(nil),
		dev.EXPECT().RegRead(chaincap.RegTimerPeriod, gomock.Any()).
			SetArg(1, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegWrite(chaincap.RegTimerPulse, gomock.Any()).Return(nil),
		dev.EXPECT().RegRead(chaincap.RegTimerPulse, gomock.Any()).
			SetArg(1, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegRead(chaincap.RegTimerCount, gomock.Any()).
			SetArg(1, []byte{0x11, 0x00, 0x00, 0x00}).
			Return(nil),
	)

	timing, err := chaincap.NewPulseGen(chaincap.NewRegisters(dev))
	if err != nil {
		t.Fatalf("NewPulseGen failed: %v", err)
	}
	if count := timing.Count(); count != 0x11 {
		t.Errorf("Count = %#x, expected 0x11", count)
	}
}
