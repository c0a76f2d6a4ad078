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

// Sampling unit. Converts the selected analog input once per rising
// trigger edge while the sequencer is enabled. Implements
// SamplerInterface.
package chaincap

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"
)

// GuardBits is the left shift applied to every conversion value inside
// the raw result word. The low bits carry status flags and are dropped
// during normalization.
const GuardBits = 4

// MaxChannel is the highest analog input the multiplexer reaches.
const MaxChannel = 11

var calPollInterval = time.Millisecond

type Sampler struct {
	regs *Registers
	err  error
}

func (s *Sampler) Close() error {
	return nil
}

func (s *Sampler) Error() error {
	return s.err
}

// Calibrate runs the hardware self-calibration cycle and blocks until
// the device reports completion. Conversions before calibration are
// garbage; the sequencer must not be enabled yet.
func (s *Sampler) Calibrate(ctx context.Context) error {
	if s.err != nil {
		return s.err
	}
	glog.V(1).Infof("[sampler] calibrating")
	ctl := SampCtrlCalibrate
	// The start bit self-clears, so no read-back verification.
	if s.err = s.regs.Write(RegSampCtrl, &ctl, false, nil); s.err != nil {
		return s.err
	}
	for {
		status := s.status()
		if s.err != nil {
			return s.err
		}
		if status&SampStatusCalDone != 0 {
			glog.V(1).Infof("[sampler] calibration done")
			return nil
		}
		select {
		case <-ctx.Done():
			s.err = fmt.Errorf("calibration did not complete: %v", ctx.Err())
			return s.err
		case <-time.After(calPollInterval):
		}
	}
}

// Configure selects the analog channel and the conversion trigger
// source. Leaves the sequencer disabled; EnableSequencer arms it.
func (s *Sampler) Configure(channel uint8, src TriggerSource) {
	if s.err != nil {
		return
	}
	if channel > MaxChannel {
		s.err = fmt.Errorf("Invalid channel (%v), range 0-%v only", channel, MaxChannel)
		return
	}
	glog.V(1).Infof("[sampler] channel = %v, trigger = %v", channel, src)
	seq := uint32(channel) & SeqChannelMask
	seq |= (uint32(src) << SeqTriggerShift) & SeqTriggerMask
	s.setSeq(seq)
}

func (s *Sampler) Channel() uint8 {
	return uint8(s.seq() & SeqChannelMask)
}

// EnableSequencer arms conversions. Set this bit last: the channel and
// trigger fields must be stable before the first edge arrives.
func (s *Sampler) EnableSequencer() {
	s.setSeq(s.seq() | SeqEnable)
}

func (s *Sampler) DisableSequencer() {
	s.setSeq(s.seq() & ^SeqEnable)
}

func (s *Sampler) SequencerEnabled() bool {
	return s.seq()&SeqEnable != 0
}

// ResultWord reads the raw word of the most recent conversion:
// the 12-bit value left-shifted by GuardBits.
func (s *Sampler) ResultWord() uint16 {
	if s.err != nil {
		return 0
	}
	var word uint32
	if s.err = s.regs.Read(RegSampResult, &word); s.err != nil {
		return 0
	}
	return uint16(word)
}

func (s *Sampler) status() uint32 {
	if s.err != nil {
		return 0
	}
	var status uint32
	s.err = s.regs.Read(RegSampStatus, &status)
	return status
}

func (s *Sampler) seq() uint32 {
	if s.err != nil {
		return 0
	}
	var seq uint32
	s.err = s.regs.Read(RegSampSeq, &seq)
	return seq
}

func (s *Sampler) setSeq(seq uint32) {
	if s.err != nil {
		return
	}
	s.err = s.regs.Write32(RegSampSeq, seq, true)
}

func NewSampler(regs *Registers) (*Sampler, error) {
	s := &Sampler{regs, nil}

	// Known quiet state: sequencer off, no channel selected.
	s.setSeq(0)

	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}
