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

// Board bring-up: model identification, clocking and pin routing.
// Implements BoardInterface.
package chaincap

import (
	"fmt"

	"github.com/golang/glog"
)

// Pin routing matrix values. Routes the timing generator output onto
// the sampler trigger input and claims the debug pin for GPIO.
const (
	pinAssignTrigger uint32 = 0x01
	pinAssignDebug   uint32 = 0x100
)

type ModelVersion struct {
	Major uint8
	Minor uint8
}

func (v ModelVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

type Board struct {
	regs *Registers
	err  error

	clockRate uint32
}

func (b *Board) Close() error {
	return nil
}

func (b *Board) Error() error {
	return b.err
}

// Version reads the model identification register.
func (b *Board) Version() ModelVersion {
	if b.err != nil {
		return ModelVersion{}
	}
	var raw uint32
	if b.err = b.regs.Read(RegVersion, &raw); b.err != nil {
		return ModelVersion{}
	}
	return ModelVersion{uint8(raw >> 8), uint8(raw)}
}

// SystemClockRate returns the clock feeding the timing generator, in
// Hz. Read once at bring-up; the rate is fixed after that.
func (b *Board) SystemClockRate() uint32 {
	return b.clockRate
}

// SetDebugPin drives the diagnostic output pin.
func (b *Board) SetDebugPin(high bool) {
	if b.err != nil {
		return
	}
	var out uint32
	if b.err = b.regs.Read(RegGpioOut, &out); b.err != nil {
		return
	}
	if high {
		out |= DebugPinMask
	} else {
		out &= ^DebugPinMask
	}
	b.err = b.regs.Write32(RegGpioOut, out, true)
}

// PulseDebugPin emits n short pulses on the diagnostic pin, one toggle
// pair per pulse. Called from the completion handler, so failures are
// logged and swallowed rather than left to surface mid-interrupt.
func (b *Board) PulseDebugPin(n int) {
	for i := 0; i < 2*n; i++ {
		if err := b.regs.Write32(RegGpioToggle, DebugPinMask, false); err != nil {
			glog.V(2).Infof("[board] debug pin toggle failed: %v", err)
			return
		}
	}
}

func (b *Board) assignPins() {
	if b.err != nil {
		return
	}
	glog.V(1).Infof("[board] routing trigger and debug pins")
	if b.err = b.regs.Write32(RegPinAssign, pinAssignTrigger|pinAssignDebug, true); b.err != nil {
		return
	}
	var dir uint32
	if b.err = b.regs.Read(RegGpioDir, &dir); b.err != nil {
		return
	}
	b.err = b.regs.Write32(RegGpioDir, dir|DebugPinMask, true)
}

func NewBoard(regs *Registers) (*Board, error) {
	b := &Board{regs: regs}

	ver := b.Version()
	if b.err != nil {
		return nil, fmt.Errorf("Failed reading model version: %v", b.err)
	}
	if ver.Major != ModelMajor {
		return nil, fmt.Errorf("Unexpected model version: %v", ver)
	}
	glog.V(1).Infof("[board] model version %v", ver)

	if b.err = b.regs.Read(RegClockRate, &b.clockRate); b.err != nil {
		return nil, fmt.Errorf("Failed reading clock rate: %v", b.err)
	}
	if b.clockRate == 0 {
		return nil, fmt.Errorf("Device reports a dead system clock")
	}

	b.assignPins()
	b.SetDebugPin(false)

	if b.err != nil {
		return nil, b.err
	}
	return b, nil
}
