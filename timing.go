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

// Timing generator. A free-running counter compared against two match
// values: the period match resets the counter and asserts the trigger
// line, the pulse match deasserts it. Implements TimingInterface.
package chaincap

import (
	"github.com/golang/glog"
)

type PulseGen struct {
	regs *Registers
	err  error
}

func (t *PulseGen) Close() error {
	return nil
}

func (t *PulseGen) Error() error {
	return t.err
}

// Configure sets the trigger period and pulse width in clock ticks.
// The counter keeps its run state; callers configure while halted.
// pulseWidth must stay below period for the line to ever deassert;
// that relation is the caller's to uphold.
func (t *PulseGen) Configure(period, pulseWidth uint32) {
	if t.err != nil {
		return
	}
	glog.V(1).Infof("[timing] period = %v ticks, pulse = %v ticks", period, pulseWidth)
	if t.err = t.regs.Write32(RegTimerPeriod, period, true); t.err != nil {
		return
	}
	t.err = t.regs.Write32(RegTimerPulse, pulseWidth, true)
}

// Start clears the counter and releases the halt bit. The first
// trigger edge fires one full period later.
func (t *PulseGen) Start() {
	if t.err != nil {
		return
	}
	glog.V(1).Infof("[timing] starting")
	ctrl := t.ctrl()
	ctrl |= TimerCtrlClear
	ctrl &= ^TimerCtrlHalt
	// Clear is self-resetting, so skip read-back verification here.
	t.setCtrl(ctrl, false)
}

// Stop halts the counter in place. Restarting later counts from zero.
func (t *PulseGen) Stop() {
	if t.err != nil {
		return
	}
	glog.V(1).Infof("[timing] stopping")
	t.setCtrl(t.ctrl()|TimerCtrlHalt, true)
}

func (t *PulseGen) Running() bool {
	return t.ctrl()&TimerCtrlHalt == 0
}

// Count reads the instantaneous counter value.
func (t *PulseGen) Count() uint32 {
	if t.err != nil {
		return 0
	}
	var count uint32
	if t.err = t.regs.Read(RegTimerCount, &count); t.err != nil {
		return 0
	}
	return count
}

func (t *PulseGen) ctrl() uint32 {
	if t.err != nil {
		return 0
	}
	var ctrl uint32
	t.err = t.regs.Read(RegTimerCtrl, &ctrl)
	return ctrl
}

func (t *PulseGen) setCtrl(ctrl uint32, verify bool) {
	if t.err != nil {
		return
	}
	var mask []byte
	if verify {
		// The clear bit self-resets; exclude it from read-back.
		mask = []byte{^byte(TimerCtrlClear), 0xff, 0xff, 0xff}
	}
	t.err = t.regs.Write(RegTimerCtrl, &ctrl, verify, mask)
}

func NewPulseGen(regs *Registers) (*PulseGen, error) {
	t := &PulseGen{regs, nil}

	// Counting starts halted, from zero, with no matches set.
	t.setCtrl(TimerCtrlHalt|TimerCtrlClear, false)
	t.Configure(0, 0)

	if t.err != nil {
		return nil, t.err
	}
	return t, nil
}
