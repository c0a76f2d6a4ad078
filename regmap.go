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

// Register map of the capture device.
// Shared between the peripheral drivers and implementations of
// DeviceInterface (the sim device model, debug-probe links).
package chaincap

// Address is a byte offset into the device register space.
type Address uint32

const (
	RegVersion     Address = 0x000 // RO: model identification
	RegClockRate   Address = 0x004 // RO: system clock rate in Hz
	RegPinAssign   Address = 0x008 // pin routing matrix
	RegGpioDir     Address = 0x00c // 1 bit per pin, 1 = output
	RegGpioOut     Address = 0x010 // output pin states
	RegGpioToggle  Address = 0x014 // WO: write 1 bits to flip pins
	RegTimerCtrl   Address = 0x020
	RegTimerPeriod Address = 0x024 // match 0: trigger period in clock ticks
	RegTimerPulse  Address = 0x028 // match 2: trigger pulse width in clock ticks
	RegTimerCount  Address = 0x02c // RO: free-running counter value
	RegSampCtrl    Address = 0x040
	RegSampStatus  Address = 0x044 // RO
	RegSampSeq     Address = 0x048 // conversion sequence control
	RegSampResult  Address = 0x04c // RO: last conversion word
	RegChainCtrl   Address = 0x060
	RegChainStatus Address = 0x064 // RO
	RegChainIntEn  Address = 0x068
	RegChainInt    Address = 0x06c // W1C: pending descriptor completions
	RegChainDesc   Address = 0x080 // descriptor arena, MaxDescriptors slots
	RegSampleData  Address = 0x200 // RO: streamed capture memory reads
)

// Timer control bits. The counter runs while the halt bit is clear.
const (
	TimerCtrlHalt  uint32 = 0x01
	TimerCtrlClear uint32 = 0x02 // self-clearing, resets the counter
)

// Sampler control and status bits.
const (
	SampCtrlCalibrate uint32 = 0x01 // self-clearing, starts calibration
	SampStatusCalDone uint32 = 0x01
	SampStatusBusy    uint32 = 0x02
)

// Sequence control register layout. The enable bit must be set last;
// a conversion fires on each rising edge of the selected trigger.
const (
	SeqChannelMask  uint32 = 0x0000001f
	SeqTriggerMask  uint32 = 0x00000700
	SeqTriggerShift        = 8
	SeqEnable       uint32 = 0x80000000
)

// Chain engine control and status bits.
const (
	ChainCtrlEnable    uint32 = 0x01
	ChainCtrlHeadMask  uint32 = 0x0f00
	ChainCtrlHeadShift        = 8
	ChainStatusBusy    uint32 = 0x01
	ChainStatusActMask uint32 = 0x0f00
	ChainStatusActShift       = 8
	ChainIntAdvance    uint32 = 0x01 // raised when a descriptor exhausts its count
)

// Descriptor arena geometry.
const (
	MaxDescriptors   = 8
	DescRecordSize   = 16 // bytes per arena slot
	MaxTransferWords = 1024
)

// DescriptorRecord is the wire layout of one arena slot, written with
// little-endian field order. Next is an arena index; a negative value
// terminates the chain.
type DescriptorRecord struct {
	Src     uint32
	DstEnd  uint32
	Control uint32
	Next    int32
}

// Descriptor control word layout.
const (
	DescCountMask  uint32 = 0x000007ff
	DescWidthMask  uint32 = 0x00003000
	DescWidthShift        = 12
	DescReload     uint32 = 0x00010000
	DescIntAdvance uint32 = 0x00020000
	DescValid      uint32 = 0x80000000
)

// DescSlotAddr returns the register address of arena slot i.
func DescSlotAddr(i int) Address {
	return RegChainDesc + Address(i*DescRecordSize)
}

// Pin numbers on the GPIO port.
const (
	DebugPin     = 15
	DebugPinMask = uint32(1) << DebugPin
)

// Model identification, reported through RegVersion.
const (
	ModelMajor = 1
	ModelMinor = 2
)
