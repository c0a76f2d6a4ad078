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

// Capture device collaborator interfaces.
package chaincap

import (
	"context"
	"io"
)

//go:generate stringer -type Event
type Event int

const (
	// EventChainAdvance fires when a transfer descriptor exhausts its
	// word count. The handler runs on the device event goroutine and
	// must not block.
	EventChainAdvance Event = iota
	// EventConversionDone fires after every completed conversion.
	EventConversionDone Event = iota
)

//go:generate stringer -type TriggerSource
type TriggerSource int

const (
	TriggerSourceNone     TriggerSource = iota
	TriggerSourcePulseGen TriggerSource = iota
	TriggerSourcePin      TriggerSource = iota
)

//go:generate stringer -type WordWidth
type WordWidth int

const (
	Width8  WordWidth = iota
	Width16 WordWidth = iota
	Width32 WordWidth = iota
)

//go:generate stringer -type State
type State int

// Capture session states.
const (
	StateIdle        State = iota
	StateConfiguring State = iota
	StateAcquiring   State = iota
	StateDraining    State = iota
	StateDone        State = iota
)

//go:generate mockgen -destination=mocks/device.go -package=mocks github.com/google/chaincap DeviceInterface
type DeviceInterface interface {
	io.Closer
	// Reads/writes raw bytes at a register space offset.
	RegRead(addr Address, data []byte) error
	RegWrite(addr Address, data []byte) error
	// Registers the handler invoked on the device event goroutine when
	// ev fires. A nil fn removes the handler.
	SetEventHandler(ev Event, fn func()) error
}

//go:generate mockgen -destination=mocks/timing.go -package=mocks github.com/google/chaincap TimingInterface
type TimingInterface interface {
	io.Closer
	Error() error
	// Sets the trigger period and pulse width, both in system clock
	// ticks. The trigger line asserts at each period boundary and
	// deasserts pulseWidth ticks later.
	Configure(period, pulseWidth uint32)
	// Starts counting from zero. Stop halts the counter in place.
	Start()
	Stop()
	Running() bool
	Count() uint32
}

//go:generate mockgen -destination=mocks/sampler.go -package=mocks github.com/google/chaincap SamplerInterface
type SamplerInterface interface {
	io.Closer
	Error() error
	// Runs the hardware self-calibration cycle. Blocks until the
	// device reports completion or ctx expires. Must be called before
	// the first conversion.
	Calibrate(ctx context.Context) error
	// Selects the analog input channel and the conversion trigger.
	Configure(channel uint8, src TriggerSource)
	Channel() uint8
	// While the sequencer is enabled, each rising trigger edge starts
	// one conversion. The raw result word carries the conversion value
	// left-shifted by GuardBits.
	EnableSequencer()
	DisableSequencer()
	SequencerEnabled() bool
	ResultWord() uint16
}

//go:generate mockgen -destination=mocks/chain.go -package=mocks github.com/google/chaincap ChainInterface
type ChainInterface interface {
	io.Closer
	Error() error
	// Validates the chain and writes its descriptors into the arena.
	Load(chain *Chain)
	// Arm starts the engine at the chain head: one word moves per
	// trigger event. Disarm masks the engine and its notifications.
	Arm()
	Disarm()
	// Completion interrupt bookkeeping. Ack clears the pending bit and
	// is safe to call from the event handler.
	Pending() bool
	Ack()
	ActiveIndex() int
}

//go:generate mockgen -destination=mocks/board.go -package=mocks github.com/google/chaincap BoardInterface
type BoardInterface interface {
	io.Closer
	Error() error
	SystemClockRate() uint32
	// Diagnostic GPIO pin. PulseDebugPin emits n short pulses and is
	// safe to call from the event handler.
	SetDebugPin(high bool)
	PulseDebugPin(n int)
}

//go:generate mockgen -destination=mocks/output.go -package=mocks github.com/google/chaincap OutputInterface
type OutputInterface interface {
	io.Closer
	// Transmits a single byte, blocking until the sink accepted it.
	SendByte(b byte) error
}
