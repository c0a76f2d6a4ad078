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

// Transfer chain engine. Moves one conversion word per trigger event
// into capture memory, following a chain of transfer descriptors.
// Implements ChainInterface.
package chaincap

import (
	"fmt"

	"github.com/golang/glog"
)

// Descriptor describes one block transfer. The destination carries the
// END slot of the block in capture memory: the transfer fills words
// forward and finishes at DstEnd, so the first word lands at
// DstEnd-Count+1. When the count exhausts, the engine raises the
// advance interrupt (if IntAdvance is set) and, with Reload set,
// switches to descriptor Next without a gap a trigger could fall into.
type Descriptor struct {
	Src        Address
	DstEnd     uint32
	Count      uint32
	Width      WordWidth
	Reload     bool
	IntAdvance bool
	Next       int
}

// StartSlot returns the capture memory slot the first word lands in.
func (d *Descriptor) StartSlot() uint32 {
	return d.DstEnd - d.Count + 1
}

func (d *Descriptor) record() DescriptorRecord {
	ctl := (d.Count - 1) & DescCountMask
	ctl |= (uint32(d.Width) << DescWidthShift) & DescWidthMask
	if d.Reload {
		ctl |= DescReload
	}
	if d.IntAdvance {
		ctl |= DescIntAdvance
	}
	ctl |= DescValid
	next := int32(-1)
	if d.Next >= 0 {
		next = int32(d.Next)
	}
	return DescriptorRecord{
		Src:     uint32(d.Src),
		DstEnd:  d.DstEnd,
		Control: ctl,
		Next:    next,
	}
}

// ParseRecord decodes an arena slot back into a Descriptor.
func ParseRecord(rec DescriptorRecord) Descriptor {
	d := Descriptor{
		Src:        Address(rec.Src),
		DstEnd:     rec.DstEnd,
		Count:      (rec.Control & DescCountMask) + 1,
		Width:      WordWidth((rec.Control & DescWidthMask) >> DescWidthShift),
		Reload:     rec.Control&DescReload != 0,
		IntAdvance: rec.Control&DescIntAdvance != 0,
		Next:       int(rec.Next),
	}
	if rec.Next < 0 {
		d.Next = -1
	}
	return d
}

// Chain is a forward chain of descriptors held in a fixed arena.
// Descs is indexed by arena slot; Head names the first descriptor.
type Chain struct {
	Descs []Descriptor
	Head  int
}

// Validate checks the chain against the engine's transfer rules:
// in-range counts, 16-bit words from the sampler result register,
// consecutive block placement, a non-reloading terminal descriptor,
// and no cycles anywhere in the arena walk.
func (c *Chain) Validate() error {
	if len(c.Descs) == 0 {
		return fmt.Errorf("empty chain")
	}
	if len(c.Descs) > MaxDescriptors {
		return fmt.Errorf("chain needs %v descriptors, arena holds %v",
			len(c.Descs), MaxDescriptors)
	}
	if c.Head < 0 || c.Head >= len(c.Descs) {
		return fmt.Errorf("chain head %v out of range", c.Head)
	}

	visited := make([]bool, len(c.Descs))
	idx := c.Head
	var prev *Descriptor
	for idx >= 0 {
		if idx >= len(c.Descs) {
			return fmt.Errorf("descriptor link %v out of range", idx)
		}
		if visited[idx] {
			return fmt.Errorf("descriptor cycle through slot %v", idx)
		}
		visited[idx] = true

		d := &c.Descs[idx]
		if d.Count == 0 || d.Count > MaxTransferWords {
			return fmt.Errorf("descriptor %v count %v outside 1..%v",
				idx, d.Count, MaxTransferWords)
		}
		if d.Width != Width16 {
			return fmt.Errorf("descriptor %v width %v, sampler words are 16-bit", idx, d.Width)
		}
		if d.DstEnd+1 < d.Count {
			return fmt.Errorf("descriptor %v end slot %v precedes its own block", idx, d.DstEnd)
		}
		if prev != nil && d.StartSlot() != prev.DstEnd+1 {
			return fmt.Errorf("descriptor %v starts at slot %v, previous block ended at %v",
				idx, d.StartSlot(), prev.DstEnd)
		}
		if d.Reload != (d.Next >= 0) {
			return fmt.Errorf("descriptor %v reload flag disagrees with its link", idx)
		}

		prev = d
		idx = d.Next
	}
	return nil
}

// Blocks returns the number of descriptors reachable from the head.
// Valid chains only.
func (c *Chain) Blocks() int {
	n := 0
	for idx := c.Head; idx >= 0 && idx < len(c.Descs); idx = c.Descs[idx].Next {
		n++
	}
	return n
}

// BuildChain lays out numBlocks consecutive transfers of wordsPerBlock
// conversion words each, reading from src. All but the last descriptor
// reload into their successor; every descriptor signals on completion.
func BuildChain(src Address, numBlocks, wordsPerBlock int) (*Chain, error) {
	if numBlocks < 1 {
		return nil, fmt.Errorf("numBlocks (%v) must be at least 1", numBlocks)
	}
	if wordsPerBlock < 1 || wordsPerBlock > MaxTransferWords {
		return nil, fmt.Errorf("wordsPerBlock (%v) outside 1..%v", wordsPerBlock, MaxTransferWords)
	}

	c := &Chain{Descs: make([]Descriptor, numBlocks), Head: 0}
	for k := 0; k < numBlocks; k++ {
		c.Descs[k] = Descriptor{
			Src:        src,
			DstEnd:     uint32((k+1)*wordsPerBlock - 1),
			Count:      uint32(wordsPerBlock),
			Width:      Width16,
			Reload:     k < numBlocks-1,
			IntAdvance: true,
			Next:       k + 1,
		}
	}
	c.Descs[numBlocks-1].Next = -1

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("built an invalid chain: %v", err)
	}
	return c, nil
}

type ChainEngine struct {
	regs *Registers
	err  error
}

func (c *ChainEngine) Close() error {
	return nil
}

func (c *ChainEngine) Error() error {
	return c.err
}

// Writes the chain descriptors into the device arena. The engine must
// be disarmed. Invalid chains never reach the device.
func (c *ChainEngine) Load(chain *Chain) {
	if c.err != nil {
		return
	}
	if c.err = chain.Validate(); c.err != nil {
		return
	}
	glog.V(1).Infof("[chain] loading %d descriptors, head = %d", len(chain.Descs), chain.Head)
	for i := range chain.Descs {
		rec := chain.Descs[i].record()
		if c.err = c.regs.Write(DescSlotAddr(i), &rec, true, nil); c.err != nil {
			return
		}
	}
	ctrl := c.ctrl() & ^ChainCtrlHeadMask
	ctrl |= (uint32(chain.Head) << ChainCtrlHeadShift) & ChainCtrlHeadMask
	c.setCtrl(ctrl)
}

// Arm enables the engine at the loaded head and unmasks the advance
// interrupt. One word moves per trigger event from then on.
func (c *ChainEngine) Arm() {
	if c.err != nil {
		return
	}
	glog.V(1).Infof("[chain] arming")
	c.err = c.regs.Write32(RegChainIntEn, ChainIntAdvance, true)
	c.setCtrl(c.ctrl() | ChainCtrlEnable)
}

// Disarm masks the notification path and halts the engine. A trigger
// arriving from here on moves no data and is lost.
func (c *ChainEngine) Disarm() {
	if c.err != nil {
		return
	}
	glog.V(1).Infof("[chain] disarming")
	c.setCtrl(c.ctrl() & ^ChainCtrlEnable)
	c.err = c.regs.Write32(RegChainIntEn, 0, true)
}

func (c *ChainEngine) Pending() bool {
	if c.err != nil {
		return false
	}
	var pend uint32
	if c.err = c.regs.Read(RegChainInt, &pend); c.err != nil {
		return false
	}
	return pend&ChainIntAdvance != 0
}

// Ack clears the pending advance interrupt (write 1 to clear).
func (c *ChainEngine) Ack() {
	if c.err != nil {
		return
	}
	c.err = c.regs.Write32(RegChainInt, ChainIntAdvance, false)
}

// ActiveIndex returns the arena slot the engine is filling, or -1 when
// the chain has halted.
func (c *ChainEngine) ActiveIndex() int {
	if c.err != nil {
		return -1
	}
	var status uint32
	if c.err = c.regs.Read(RegChainStatus, &status); c.err != nil {
		return -1
	}
	if status&ChainStatusBusy == 0 {
		return -1
	}
	return int((status & ChainStatusActMask) >> ChainStatusActShift)
}

func (c *ChainEngine) ctrl() uint32 {
	if c.err != nil {
		return 0
	}
	var ctrl uint32
	c.err = c.regs.Read(RegChainCtrl, &ctrl)
	return ctrl
}

func (c *ChainEngine) setCtrl(ctrl uint32) {
	if c.err != nil {
		return
	}
	c.err = c.regs.Write32(RegChainCtrl, ctrl, true)
}

func NewChainEngine(regs *Registers) (*ChainEngine, error) {
	c := &ChainEngine{regs, nil}

	// Quiesce: mask notifications, halt, drop stale pending bits.
	c.err = c.regs.Write32(RegChainIntEn, 0, true)
	c.setCtrl(0)
	c.Ack()

	if c.err != nil {
		return nil, c.err
	}
	return c, nil
}
