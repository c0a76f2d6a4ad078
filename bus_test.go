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

	"github.com/golang/mock/gomock"
)

func TestRegistersRead(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	dev.EXPECT().RegRead(chaincap.RegTimerPeriod, gomock.Any()).
		SetArg(1, []byte{0x3c, 0x00, 0x00, 0x00}).
		Return(nil)

	regs := chaincap.NewRegisters(dev)
	v, err := regs.Read32(chaincap.RegTimerPeriod)
	if err != nil {
		t.Errorf("Register read failed: %v", err)
	}
	if v != 0x3c {
		t.Errorf("Unexpected value returned (%#x)", v)
	}
}

func TestRegistersWrite(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	dev.EXPECT().RegWrite(chaincap.RegTimerPeriod,
		[]byte{0x44, 0x33, 0x22, 0x11}).
		Return(nil)

	regs := chaincap.NewRegisters(dev)
	if err := regs.Write32(chaincap.RegTimerPeriod, 0x11223344, false); err != nil {
		t.Errorf("Register write failed: %v", err)
	}
}

func TestRegistersWriteVerificationPasses(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	gomock.InOrder(
		dev.EXPECT().RegWrite(chaincap.RegChainIntEn,
			[]byte{0x01, 0x00, 0x00, 0x00}).
			Return(nil),
		// Read-back equals the written value.
		dev.EXPECT().RegRead(chaincap.RegChainIntEn, gomock.Any()).
			SetArg(1, []byte{0x01, 0x00, 0x00, 0x00}).
			Return(nil),
	)

	regs := chaincap.NewRegisters(dev)
	if err := regs.Write32(chaincap.RegChainIntEn, 0x01, true); err != nil {
		t.Errorf("Register write failed: %v", err)
	}
}

func TestRegistersWriteVerificationFails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	gomock.InOrder(
		dev.EXPECT().RegWrite(chaincap.RegChainIntEn,
			[]byte{0x01, 0x00, 0x00, 0x00}).
			Return(nil),
		// Read-back differs in the low byte.
		dev.EXPECT().RegRead(chaincap.RegChainIntEn, gomock.Any()).
			SetArg(1, []byte{0x00, 0x00, 0x00, 0x00}).
			Return(nil),
	)

	regs := chaincap.NewRegisters(dev)
	if err := regs.Write32(chaincap.RegChainIntEn, 0x01, true); err == nil {
		t.Errorf("Register write expected to fail")
	}
}

func TestRegistersWriteReadMaskPasses(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// The read-back differs only in the self-clearing second byte,
	// which the mask excludes from comparison.
	written := uint32(0x0201)
	mask := []byte{0xff, 0x00, 0xff, 0xff}

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	gomock.InOrder(
		dev.EXPECT().RegWrite(chaincap.RegTimerCtrl,
			[]byte{0x01, 0x02, 0x00, 0x00}).
			Return(nil),
		dev.EXPECT().RegRead(chaincap.RegTimerCtrl, gomock.Any()).
			SetArg(1, []byte{0x01, 0x00, 0x00, 0x00}).
			Return(nil),
	)

	regs := chaincap.NewRegisters(dev)
	if err := regs.Write(chaincap.RegTimerCtrl, &written, true, mask); err != nil {
		t.Errorf("Register write failed: %v", err)
	}
}

func TestReadSampleMemory(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	dev := mocks.NewMockDeviceInterface(mockCtrl)
	dev.EXPECT().RegRead(chaincap.RegSampleData, gomock.Any()).
		SetArg(1, []byte{0x10, 0x00, 0x20, 0x00, 0x30, 0x00}).
		Return(nil)

	regs := chaincap.NewRegisters(dev)
	words := make([]uint16, 3)
	if err := regs.ReadSampleMemory(words); err != nil {
		t.Errorf("Sample memory read failed: %v", err)
	}
	for i, want := range []uint16{0x10, 0x20, 0x30} {
		if words[i] != want {
			t.Errorf("Word %d: got %#x, expected %#x", i, words[i], want)
		}
	}
}
