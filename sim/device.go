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

// In-process model of the capture device. Implements
// chaincap.DeviceInterface against the published register map, with
// the timing generator, sampler and chain engine semantics running on
// a virtual tick clock: no wall-clock sleeps, one full trigger period
// per event-loop step.
package sim

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/google/chaincap"
)

// SramWords is the capture memory size, enough for a full arena of
// maximum-length transfers.
const SramWords = chaincap.MaxDescriptors * chaincap.MaxTransferWords

const regSpace = int(chaincap.RegSampleData)

// Conversions before calibration completes read as all-ones.
const uncalibratedValue = 0x0fff

// Status reads it takes for a started calibration to report done.
const calibrationPolls = 3

type Config struct {
	// System clock rate in Hz. Defaults to the reference board's 30MHz.
	ClockRate uint32
	// Analog input model. Defaults to a unit ramp.
	Source Source
	// Stop producing trigger events after this many conversions.
	// Models a wedged clock; zero means never stall.
	StallAfter int
}

var defaultConfig = Config{
	ClockRate: 30000000,
}

// Device is one virtual capture device. The register file is the
// contract: drivers talk to it exactly as they would to hardware.
// Event handlers run on the device event goroutine, between trigger
// periods.
type Device struct {
	mu       sync.Mutex
	regBytes [regSpace]byte
	sram     [SramWords]uint16

	source     Source
	stallAfter int

	// Calibration settles over a few status polls.
	calibrated   bool
	calCountdown int

	// Active chain bookkeeping. remaining counts down to the end of
	// the current descriptor; reload happens inside the same step that
	// consumes the last word, so no trigger can fall into a gap.
	chainBusy bool
	active    int
	activeD   chaincap.Descriptor
	remaining uint32

	// Virtual-time accounting, for tests and inspection.
	ticks       uint64
	lineHigh    uint64
	lineLow     uint64
	edges       int
	conversions int
	advances    int
	gpioToggles int
	faults      int

	running bool
	closed  bool
	wg      sync.WaitGroup

	handlerMu sync.Mutex
	handlers  map[chaincap.Event]func()
}

// New builds a device in reset state: timer halted, sequencer off,
// chain disarmed, uncalibrated. A nil conf selects the defaults.
func New(conf *Config) *Device {
	d := &Device{
		source:   Ramp(1, 1),
		active:   -1,
		handlers: make(map[chaincap.Event]func()),
	}
	c := defaultConfig
	if conf != nil {
		if conf.ClockRate != 0 {
			c.ClockRate = conf.ClockRate
		}
		c.Source = conf.Source
		c.StallAfter = conf.StallAfter
	}
	if c.Source != nil {
		d.source = c.Source
	}
	d.stallAfter = c.StallAfter

	d.setReg32(chaincap.RegVersion, chaincap.ModelMajor<<8|chaincap.ModelMinor)
	d.setReg32(chaincap.RegClockRate, c.ClockRate)
	d.setReg32(chaincap.RegTimerCtrl, chaincap.TimerCtrlHalt)
	return d
}

func (d *Device) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	// Halt the timer so the event loop drains out.
	d.setReg32(chaincap.RegTimerCtrl, d.reg32(chaincap.RegTimerCtrl)|chaincap.TimerCtrlHalt)
	d.mu.Unlock()

	d.wg.Wait()
	glog.V(1).Infof("[sim] closed: %d conversions, %d block advances", d.conversions, d.advances)
	return nil
}

func (d *Device) RegRead(addr chaincap.Address, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return fmt.Errorf("device closed")
	}

	if addr == chaincap.RegSampleData {
		return d.readSampleMemoryLocked(data)
	}
	if int(addr)+len(data) > regSpace {
		return fmt.Errorf("read of %v bytes at %#x outside register space", len(data), uint32(addr))
	}

	switch addr {
	case chaincap.RegSampStatus:
		d.serveSampStatusLocked()
	case chaincap.RegChainStatus:
		d.serveChainStatusLocked()
	}
	copy(data, d.regBytes[addr:int(addr)+len(data)])
	return nil
}

func (d *Device) RegWrite(addr chaincap.Address, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return fmt.Errorf("device closed")
	}
	if int(addr)+len(data) > regSpace {
		return fmt.Errorf("write of %v bytes at %#x outside register space", len(data), uint32(addr))
	}

	// Descriptor arena takes arbitrary-width writes; everything else
	// is a single 32-bit register.
	if addr >= chaincap.RegChainDesc &&
		int(addr)+len(data) <= int(chaincap.RegChainDesc)+chaincap.MaxDescriptors*chaincap.DescRecordSize {
		if d.chainBusy {
			return fmt.Errorf("descriptor write while chain engine busy")
		}
		copy(d.regBytes[addr:], data)
		return nil
	}
	if len(data) != 4 {
		return fmt.Errorf("write of %v bytes at %#x, registers are 32-bit", len(data), uint32(addr))
	}
	v := binary.LittleEndian.Uint32(data)

	switch addr {
	case chaincap.RegVersion, chaincap.RegClockRate, chaincap.RegTimerCount,
		chaincap.RegSampStatus, chaincap.RegSampResult, chaincap.RegChainStatus:
		return fmt.Errorf("register %#x is read-only", uint32(addr))

	case chaincap.RegTimerCtrl:
		wasHalted := d.reg32(chaincap.RegTimerCtrl)&chaincap.TimerCtrlHalt != 0
		if v&chaincap.TimerCtrlClear != 0 {
			d.setReg32(chaincap.RegTimerCount, 0)
		}
		d.setReg32(addr, v & ^chaincap.TimerCtrlClear)
		if wasHalted && v&chaincap.TimerCtrlHalt == 0 {
			d.startLocked()
		}

	case chaincap.RegSampCtrl:
		if v&chaincap.SampCtrlCalibrate != 0 {
			d.calibrated = false
			d.calCountdown = calibrationPolls
			glog.V(2).Infof("[sim] calibration started")
		}
		d.setReg32(addr, v & ^chaincap.SampCtrlCalibrate)

	case chaincap.RegChainCtrl:
		wasEnabled := d.reg32(chaincap.RegChainCtrl)&chaincap.ChainCtrlEnable != 0
		d.setReg32(addr, v)
		enabled := v&chaincap.ChainCtrlEnable != 0
		if enabled && !wasEnabled {
			head := int((v & chaincap.ChainCtrlHeadMask) >> chaincap.ChainCtrlHeadShift)
			d.activateLocked(head)
		}
		if !enabled {
			d.chainBusy = false
			d.active = -1
		}

	case chaincap.RegChainInt:
		pend := d.reg32(chaincap.RegChainInt)
		d.setReg32(addr, pend & ^v)

	case chaincap.RegGpioToggle:
		d.setReg32(chaincap.RegGpioOut, d.reg32(chaincap.RegGpioOut)^v)
		if v&chaincap.DebugPinMask != 0 {
			d.gpioToggles++
		}

	case chaincap.RegPinAssign, chaincap.RegGpioDir, chaincap.RegGpioOut,
		chaincap.RegTimerPeriod, chaincap.RegTimerPulse,
		chaincap.RegSampSeq, chaincap.RegChainIntEn:
		d.setReg32(addr, v)

	default:
		return fmt.Errorf("write to unknown register %#x", uint32(addr))
	}
	return nil
}

// SetEventHandler installs fn for ev. Passing nil removes the handler
// and blocks until an in-flight invocation has returned, so callers
// can use it to quiesce.
func (d *Device) SetEventHandler(ev chaincap.Event, fn func()) error {
	d.handlerMu.Lock()
	defer d.handlerMu.Unlock()
	if fn == nil {
		delete(d.handlers, ev)
	} else {
		d.handlers[ev] = fn
	}
	return nil
}

//
// Inspection, for tests and the viewer.
//

func (d *Device) Conversions() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conversions
}

// Advances counts raised block-completion interrupts.
func (d *Device) Advances() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.advances
}

func (d *Device) TriggerEdges() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.edges
}

// Ticks returns elapsed virtual time in clock ticks.
func (d *Device) Ticks() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// LineTicks returns how long the trigger line spent asserted and
// deasserted, in clock ticks.
func (d *Device) LineTicks() (high, low uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lineHigh, d.lineLow
}

// DebugPulses counts completed debug pin pulses (toggle pairs).
func (d *Device) DebugPulses() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gpioToggles / 2
}

func (d *Device) Faults() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.faults
}

// SampleWord reads capture memory directly, bypassing the bus.
func (d *Device) SampleWord(slot int) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sram[slot]
}

//
// Event loop.
//

// startLocked spins up the event loop on the halted-to-running edge.
func (d *Device) startLocked() {
	if d.running {
		return
	}
	d.running = true
	d.wg.Add(1)
	glog.V(1).Infof("[sim] timer running")
	go d.loop()
}

func (d *Device) loop() {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		fire, ok := d.stepLocked()
		if !ok {
			d.running = false
			n := d.conversions
			d.mu.Unlock()
			glog.V(1).Infof("[sim] event loop idle after %d conversions", n)
			return
		}
		d.mu.Unlock()

		// Handlers run without the device lock: they are free to
		// access registers, like a real interrupt handler would.
		if fire {
			d.fire(chaincap.EventChainAdvance)
		}
		d.fire(chaincap.EventConversionDone)
	}
}

// stepLocked advances virtual time by one trigger period: one edge,
// one conversion, one chain transfer. Returns fire when the step
// completed a block with its interrupt raised, and ok=false when the
// model has nothing further to do.
func (d *Device) stepLocked() (fire, ok bool) {
	if d.reg32(chaincap.RegTimerCtrl)&chaincap.TimerCtrlHalt != 0 {
		return false, false
	}
	seq := d.reg32(chaincap.RegSampSeq)
	if seq&chaincap.SeqEnable == 0 {
		return false, false
	}
	src := chaincap.TriggerSource((seq & chaincap.SeqTriggerMask) >> chaincap.SeqTriggerShift)
	if src != chaincap.TriggerSourcePulseGen {
		// No external pin model; nothing will ever trigger.
		return false, false
	}
	if !d.chainBusy {
		return false, false
	}
	if d.stallAfter > 0 && d.conversions >= d.stallAfter {
		return false, false
	}
	period := uint64(d.reg32(chaincap.RegTimerPeriod))
	if period == 0 {
		return false, false
	}

	// Trigger line: asserted at the period boundary, deasserted at the
	// pulse match.
	pulse := uint64(d.reg32(chaincap.RegTimerPulse))
	if pulse > period {
		pulse = period
	}
	d.ticks += period
	d.lineHigh += pulse
	d.lineLow += period - pulse
	d.edges++

	// One conversion per rising edge.
	value := uint16(uncalibratedValue)
	if d.calibrated {
		value = d.source(d.conversions, uint8(seq&chaincap.SeqChannelMask)) & valueMask
	}
	raw := value << chaincap.GuardBits
	d.setReg32(chaincap.RegSampResult, uint32(raw))
	d.conversions++

	// End of sequence moves one word through the chain engine.
	slot := d.activeD.DstEnd - d.remaining + 1
	if int(slot) < SramWords {
		d.sram[slot] = raw
	} else {
		d.faults++
	}
	d.remaining--
	if d.remaining > 0 {
		return false, true
	}

	// Block complete: raise the interrupt and switch descriptors in
	// the same step, so the engine never sits without a descriptor
	// while triggers keep coming.
	if d.activeD.IntAdvance && d.reg32(chaincap.RegChainIntEn)&chaincap.ChainIntAdvance != 0 {
		d.setReg32(chaincap.RegChainInt, d.reg32(chaincap.RegChainInt)|chaincap.ChainIntAdvance)
		d.advances++
		fire = true
	}
	if d.activeD.Reload && d.activeD.Next >= 0 {
		d.activateLocked(d.activeD.Next)
	} else {
		d.chainBusy = false
		d.active = -1
	}
	return fire, true
}

// activateLocked makes arena slot idx the engine's active descriptor.
func (d *Device) activateLocked(idx int) {
	if idx < 0 || idx >= chaincap.MaxDescriptors {
		glog.Errorf("[sim] chain activated with bad slot %d", idx)
		d.chainBusy = false
		d.active = -1
		d.faults++
		return
	}
	var rec chaincap.DescriptorRecord
	off := int(chaincap.DescSlotAddr(idx))
	rec.Src = binary.LittleEndian.Uint32(d.regBytes[off:])
	rec.DstEnd = binary.LittleEndian.Uint32(d.regBytes[off+4:])
	rec.Control = binary.LittleEndian.Uint32(d.regBytes[off+8:])
	rec.Next = int32(binary.LittleEndian.Uint32(d.regBytes[off+12:]))
	if rec.Control&chaincap.DescValid == 0 {
		glog.Errorf("[sim] chain activated on invalid descriptor %d", idx)
		d.chainBusy = false
		d.active = -1
		d.faults++
		return
	}
	d.activeD = chaincap.ParseRecord(rec)
	d.remaining = d.activeD.Count
	d.active = idx
	d.chainBusy = true
	glog.V(2).Infof("[sim] descriptor %d active: %d words ending at slot %d",
		idx, d.activeD.Count, d.activeD.DstEnd)
}

func (d *Device) fire(ev chaincap.Event) {
	d.handlerMu.Lock()
	fn := d.handlers[ev]
	if fn != nil {
		fn()
	}
	d.handlerMu.Unlock()
}

//
// Register helpers. Callers hold mu.
//

func (d *Device) reg32(addr chaincap.Address) uint32 {
	return binary.LittleEndian.Uint32(d.regBytes[addr:])
}

func (d *Device) setReg32(addr chaincap.Address, v uint32) {
	binary.LittleEndian.PutUint32(d.regBytes[addr:], v)
}

func (d *Device) serveSampStatusLocked() {
	// Calibration settles across polls rather than instantly, so the
	// driver's wait loop actually waits.
	if d.calCountdown > 0 {
		d.calCountdown--
		if d.calCountdown == 0 {
			d.calibrated = true
			glog.V(2).Infof("[sim] calibration done")
		}
	}
	var status uint32
	if d.calibrated {
		status |= chaincap.SampStatusCalDone
	}
	if d.running && d.chainBusy {
		status |= chaincap.SampStatusBusy
	}
	d.setReg32(chaincap.RegSampStatus, status)
}

func (d *Device) serveChainStatusLocked() {
	var status uint32
	if d.chainBusy {
		status |= chaincap.ChainStatusBusy
		status |= (uint32(d.active) << chaincap.ChainStatusActShift) & chaincap.ChainStatusActMask
	}
	d.setReg32(chaincap.RegChainStatus, status)
}

func (d *Device) readSampleMemoryLocked(data []byte) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("sample memory reads are 16-bit aligned, got %v bytes", len(data))
	}
	words := len(data) / 2
	if words > SramWords {
		return fmt.Errorf("read of %v words exceeds capture memory (%v)", words, SramWords)
	}
	for i := 0; i < words; i++ {
		binary.LittleEndian.PutUint16(data[2*i:], d.sram[i])
	}
	return nil
}
