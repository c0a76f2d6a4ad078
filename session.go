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

// Coordinates one timer-triggered waveform capture: the timing
// generator paces conversions, the chain engine moves every result
// word to capture memory, and the CPU sleeps until the last block
// completes.
package chaincap

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/golang/glog"
)

// Diagnostic pulses emitted per completed block, visible on the debug
// pin with a logic probe.
const debugPulsesPerBlock = 8

type Config struct {
	// Requested sample rate in samples per second. The achieved rate
	// is the system clock divided by the truncated trigger period and
	// can land below the request; Configure logs when it does.
	SampleRate uint32
	BlockSize  int
	NumBlocks  int
	Channel    uint8
	Trigger    TriggerSource
}

// DefaultConfig matches the reference board: 500k samples/s on
// channel 3, three 1024-word blocks.
func DefaultConfig() Config {
	return Config{
		SampleRate: 500000,
		BlockSize:  1024,
		NumBlocks:  3,
		Channel:    3,
		Trigger:    TriggerSourcePulseGen,
	}
}

// TriggerPeriod derives the timer period in clock ticks. Integer
// division: the fraction is dropped, not rounded.
func (c Config) TriggerPeriod(clockRate uint32) uint32 {
	return clockRate / c.SampleRate
}

// AchievedRate is the sample rate the truncated period actually
// delivers.
func (c Config) AchievedRate(clockRate uint32) uint32 {
	return clockRate / c.TriggerPeriod(clockRate)
}

func (c Config) Validate(clockRate uint32) error {
	if c.SampleRate == 0 {
		return fmt.Errorf("sample rate must be positive")
	}
	// Below two ticks per period the pulse width truncates to zero and
	// the trigger line never deasserts.
	if period := clockRate / c.SampleRate; period < 2 {
		return fmt.Errorf("sample rate %v too fast for %v Hz clock", c.SampleRate, clockRate)
	}
	if c.BlockSize < 1 || c.BlockSize > MaxTransferWords {
		return fmt.Errorf("block size %v outside 1..%v", c.BlockSize, MaxTransferWords)
	}
	if c.NumBlocks < 1 || c.NumBlocks > MaxDescriptors {
		return fmt.Errorf("block count %v outside 1..%v", c.NumBlocks, MaxDescriptors)
	}
	if c.Channel > MaxChannel {
		return fmt.Errorf("channel %v outside 0..%v", c.Channel, MaxChannel)
	}
	if c.Trigger != TriggerSourcePulseGen && c.Trigger != TriggerSourcePin {
		return fmt.Errorf("conversions need a trigger source")
	}
	return nil
}

// Session owns one capture from bring-up to drained waveform.
//
// The flow is Idle, Configuring (hardware armed), Acquiring (timer
// running, data moving with no CPU involvement), Draining (reading
// capture memory back), Done. Completion interrupts land in
// onBlockDone on the device event goroutine; Acquire sleeps on the
// events channel and trusts only the counter.
type Session struct {
	dev     DeviceInterface
	regs    *Registers
	board   BoardInterface
	timing  TimingInterface
	sampler SamplerInterface
	engine  ChainInterface
	cfg     Config

	state     State
	completed atomic.Uint32
	events    chan struct{}
	wf        *Waveform
}

func NewSession(dev DeviceInterface, cfg Config) (*Session, error) {
	var err error
	regs := NewRegisters(dev)

	var board *Board
	if board, err = NewBoard(regs); err != nil {
		return nil, err
	}
	if err = cfg.Validate(board.SystemClockRate()); err != nil {
		return nil, err
	}

	var timing *PulseGen
	if timing, err = NewPulseGen(regs); err != nil {
		return nil, err
	}
	var sampler *Sampler
	if sampler, err = NewSampler(regs); err != nil {
		return nil, err
	}
	var engine *ChainEngine
	if engine, err = NewChainEngine(regs); err != nil {
		return nil, err
	}

	return &Session{
		dev:     dev,
		regs:    regs,
		board:   board,
		timing:  timing,
		sampler: sampler,
		engine:  engine,
		cfg:     cfg,
		state:   StateIdle,
		events:  make(chan struct{}, 1),
	}, nil
}

// NewSessionWithDrivers builds a session over externally constructed
// collaborators. Exported for testing.
func NewSessionWithDrivers(dev DeviceInterface, board BoardInterface, timing TimingInterface,
	sampler SamplerInterface, engine ChainInterface, cfg Config) (*Session, error) {
	if err := cfg.Validate(board.SystemClockRate()); err != nil {
		return nil, err
	}
	return &Session{
		dev:     dev,
		regs:    NewRegisters(dev),
		board:   board,
		timing:  timing,
		sampler: sampler,
		engine:  engine,
		cfg:     cfg,
		state:   StateIdle,
		events:  make(chan struct{}, 1),
	}, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Config() Config {
	return s.cfg
}

// Completed returns how many blocks the chain engine has finished.
func (s *Session) Completed() uint32 {
	return s.completed.Load()
}

// Waveform returns the drained capture once the session is Done.
func (s *Session) Waveform() *Waveform {
	return s.wf
}

// Configure calibrates the sampler, loads and arms the transfer chain
// and programs the trigger timing. The session is armed but silent
// afterwards; Acquire starts the clock. ctx bounds the calibration
// wait.
func (s *Session) Configure(ctx context.Context) error {
	if s.state != StateIdle {
		return fmt.Errorf("Configure in state %v", s.state)
	}
	s.state = StateConfiguring

	clock := s.board.SystemClockRate()
	period := s.cfg.TriggerPeriod(clock)
	if achieved := s.cfg.AchievedRate(clock); achieved != s.cfg.SampleRate {
		glog.Warningf("Requested %v samples/s, achieving %v (period %v ticks)",
			s.cfg.SampleRate, achieved, period)
	}

	if err := s.sampler.Calibrate(ctx); err != nil {
		s.abort()
		return err
	}
	s.sampler.Configure(s.cfg.Channel, s.cfg.Trigger)

	chain, err := BuildChain(RegSampResult, s.cfg.NumBlocks, s.cfg.BlockSize)
	if err != nil {
		s.abort()
		return err
	}
	s.engine.Load(chain)

	if err = s.dev.SetEventHandler(EventChainAdvance, s.onBlockDone); err != nil {
		s.abort()
		return fmt.Errorf("registering completion handler: %v", err)
	}
	s.engine.Arm()
	s.sampler.EnableSequencer()
	s.timing.Configure(period, period/2)

	if err = s.driverError(); err != nil {
		s.abort()
		return err
	}
	glog.Infof("Configured %d blocks of %d samples at %d samples/s",
		s.cfg.NumBlocks, s.cfg.BlockSize, s.cfg.AchievedRate(clock))
	return nil
}

// Acquire starts the timing generator and sleeps until every block of
// the chain has completed, then drains and normalizes the capture.
// During acquisition no code runs on this goroutine at all; wakeups
// come only from the completion handler and may be coalesced, so the
// counter is re-checked after every one. ctx cancellation abandons
// the capture and quiesces the hardware; the partial buffer is
// discarded.
func (s *Session) Acquire(ctx context.Context) (*Waveform, error) {
	if s.state != StateConfiguring {
		return nil, fmt.Errorf("Acquire in state %v", s.state)
	}
	s.state = StateAcquiring

	s.timing.Start()
	if err := s.driverError(); err != nil {
		s.abort()
		return nil, err
	}

	total := s.cfg.NumBlocks * s.cfg.BlockSize
	glog.V(1).Infof("Acquiring %d samples in %d blocks", total, s.cfg.NumBlocks)

	want := uint32(s.cfg.NumBlocks)
	for s.completed.Load() < want {
		select {
		case <-ctx.Done():
			done := s.completed.Load()
			s.abort()
			return nil, fmt.Errorf("acquisition interrupted after %d/%d blocks: %v",
				done, want, ctx.Err())
		case <-s.events:
		}
	}

	// The counter increment trails the last word of its block, so a
	// full counter means a fully committed buffer.
	s.state = StateDraining
	s.quiesce()
	if err := s.driverError(); err != nil {
		return nil, err
	}

	data := make([]uint16, total)
	if err := s.regs.ReadSampleMemory(data); err != nil {
		return nil, err
	}
	wf, err := NewWaveform(data, s.cfg.BlockSize, s.cfg.NumBlocks, s.cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	if err = wf.Normalize(); err != nil {
		return nil, err
	}

	s.wf = wf
	s.state = StateDone
	glog.Infof("Capture complete: %d samples in %d blocks", total, want)
	return wf, nil
}

// Close quiesces the hardware. The device stays open; it belongs to
// the caller.
func (s *Session) Close() error {
	if s.state == StateConfiguring || s.state == StateAcquiring {
		s.abort()
	}
	return s.driverError()
}

// onBlockDone is the completion interrupt body. It runs on the device
// event goroutine between transfers, so it must stay short and must
// not block: acknowledge, pulse the probe pin, count, nudge the
// waiter. The channel send is non-blocking; coalesced wakeups are
// fine because the waiter re-reads the counter.
func (s *Session) onBlockDone() {
	s.engine.Ack()
	s.board.PulseDebugPin(debugPulsesPerBlock)
	s.completed.Add(1)
	select {
	case s.events <- struct{}{}:
	default:
	}
}

// quiesce halts the trigger source, waits out any in-flight completion
// handler, then disables the sampler and engine. Safe once acquisition
// stopped producing events.
func (s *Session) quiesce() {
	s.timing.Stop()
	// Unregistering blocks until an in-flight handler returns; after
	// this no goroutine touches the drivers but ours.
	if err := s.dev.SetEventHandler(EventChainAdvance, nil); err != nil {
		glog.Warningf("Unregistering completion handler: %v", err)
	}
	s.sampler.DisableSequencer()
	s.engine.Disarm()
}

func (s *Session) abort() {
	s.quiesce()
	s.state = StateIdle
}

func (s *Session) driverError() error {
	if err := s.board.Error(); err != nil {
		return fmt.Errorf("board: %v", err)
	}
	if err := s.timing.Error(); err != nil {
		return fmt.Errorf("timing: %v", err)
	}
	if err := s.sampler.Error(); err != nil {
		return fmt.Errorf("sampler: %v", err)
	}
	if err := s.engine.Error(); err != nil {
		return fmt.Errorf("chain engine: %v", err)
	}
	return nil
}

// Capture runs one complete capture: bring-up, configure, acquire.
func Capture(ctx context.Context, dev DeviceInterface, cfg Config) (*Waveform, error) {
	s, err := NewSession(dev, cfg)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if err = s.Configure(ctx); err != nil {
		return nil, err
	}
	return s.Acquire(ctx)
}
