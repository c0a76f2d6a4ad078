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

// Low-level USB transport to the capture board. Registers move over
// vendor control transfers, completion events arrive on an interrupt
// endpoint, and sample memory streams over a bulk endpoint.
package chaincap

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

const (
	boardVid    = 0x1fc9
	boardPid    = 0x0083
	boardEvtEp  = 1
	boardBulkEp = 3

	fwMjVersion = 1
	fwMnVersion = 0

	// Largest register payload carried by one control transfer. Bigger
	// reads stream over the bulk endpoint.
	ctrlChunk = 64
)

//go:generate stringer -type Request
type Request uint8

const (
	ReqMemStream Request = 0x10
	ReqRegRead   Request = 0x12
	ReqRegWrite  Request = 0x13
	ReqFwVersion Request = 0x17
)

const (
	rTypeControlIn  uint8 = gousb.ControlIn | gousb.ControlVendor | gousb.ControlInterface
	rTypeControlOut uint8 = gousb.ControlOut | gousb.ControlVendor | gousb.ControlInterface
)

// Encapsulates the board USB resources. Implements DeviceInterface.
type UsbDevice struct {
	ctx *gousb.Context
	// dev also implements the control endpoint.
	dev       *gousb.Device
	intf      *gousb.Interface
	intf_done func()
	// Bulk sample stream and interrupt event endpoints.
	ep_in  *gousb.InEndpoint
	ep_evt *gousb.InEndpoint

	// Event pump goroutine lifetime.
	pumpCancel context.CancelFunc
	wg         sync.WaitGroup

	// handlerMu is held while a handler runs, so unregistering waits
	// out an in-flight invocation.
	handlerMu sync.Mutex
	handlers  map[Event]func()
}

func OpenUsbDevice() (*UsbDevice, error) {
	d := &UsbDevice{handlers: map[Event]func(){}}
	d.ctx = gousb.NewContext()

	var err error
	d.dev, err = d.ctx.OpenDeviceWithVIDPID(boardVid, boardPid)
	if d.dev == nil && err == nil {
		d.Close()
		return nil, fmt.Errorf("Capture board not found")
	}

	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening capture board: %v", err)
	}

	// The default interface is always #0 alt #0 in the currently active
	// config.
	d.intf, d.intf_done, err = d.dev.DefaultInterface()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Claming default interface: %v", err)
	}

	d.ep_in, err = d.intf.InEndpoint(boardBulkEp)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening sample stream endpoint: %v", err)
	}

	d.ep_evt, err = d.intf.InEndpoint(boardEvtEp)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening event endpoint: %v", err)
	}

	ver := FwVersion{}
	if err = d.ReadFwVersion(&ver); err != nil {
		d.Close()
		return nil, fmt.Errorf("Failed reading FW version: %v", err)
	}
	if ver.Major != fwMjVersion || ver.Minor != fwMnVersion {
		d.Close()
		return nil, fmt.Errorf("Unexpected FW version: %v", ver)
	}

	var pumpCtx context.Context
	pumpCtx, d.pumpCancel = context.WithCancel(context.Background())
	d.wg.Add(1)
	go d.pumpEvents(pumpCtx)
	return d, nil
}

func (d *UsbDevice) Close() error {
	glog.V(1).Infof("Closing USB device")
	if d.pumpCancel != nil {
		d.pumpCancel()
		d.pumpCancel = nil
		d.wg.Wait()
	}
	if d.intf_done != nil {
		d.intf_done()
		d.intf_done = nil
	}
	if d.intf != nil {
		d.intf.Close()
		d.intf = nil
	}
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	if d.ctx != nil {
		d.ctx.Close()
		d.ctx = nil
	}
	return nil
}

// RegRead fills data from the register space at addr. Reads larger
// than one control transfer stream over the bulk endpoint.
func (d *UsbDevice) RegRead(addr Address, data []byte) error {
	if len(data) <= ctrlChunk {
		return d.controlIn(ReqRegRead, uint16(addr), data)
	}
	return d.streamIn(addr, data)
}

func (d *UsbDevice) RegWrite(addr Address, data []byte) error {
	if len(data) > ctrlChunk {
		return fmt.Errorf("Register write of %d bytes exceeds control transfer limit", len(data))
	}
	return d.controlOut(ReqRegWrite, uint16(addr), data)
}

// SetEventHandler registers fn for ev. A nil fn removes the handler
// and returns only after any in-flight invocation finished.
func (d *UsbDevice) SetEventHandler(ev Event, fn func()) error {
	d.handlerMu.Lock()
	defer d.handlerMu.Unlock()
	if fn == nil {
		delete(d.handlers, ev)
	} else {
		d.handlers[ev] = fn
	}
	return nil
}

// pumpEvents relays event codes from the interrupt endpoint to the
// registered handlers. Each received byte is one event.
func (d *UsbDevice) pumpEvents(ctx context.Context) {
	defer d.wg.Done()
	buf := make([]byte, 8)
	for {
		n, err := d.ep_evt.ReadContext(ctx, buf)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			glog.Errorf("Event endpoint read failed: %v", err)
			return
		}
		for _, code := range buf[:n] {
			d.fire(Event(code))
		}
	}
}

func (d *UsbDevice) fire(ev Event) {
	d.handlerMu.Lock()
	fn := d.handlers[ev]
	if fn != nil {
		fn()
	}
	d.handlerMu.Unlock()
}

func (d *UsbDevice) controlIn(request Request, val uint16, buf []byte) error {
	n, err := d.dev.Control(rTypeControlIn, uint8(request), val, 0, buf)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(buf) {
		return fmt.Errorf("Failed to read entire buffer %v vs %v", n, len(buf))
	}
	glog.V(2).Infof("[usb-ctrl IN]: request = %v, val = %x, data =\n%s",
		request, val, hex.Dump(buf))
	return nil
}

func (d *UsbDevice) controlOut(request Request, val uint16, buf []byte) error {
	n, err := d.dev.Control(rTypeControlOut, uint8(request), val, 0, buf)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(buf) {
		return fmt.Errorf("Failed to write entire buffer %v vs %v", n, len(buf))
	}
	glog.V(2).Infof("[usb-ctrl OUT]: request = %v, val = %x, data =\n%s",
		request, val, hex.Dump(buf))
	return nil
}

// streamIn asks the firmware to stream a register space window, then
// drains it from the bulk endpoint.
func (d *UsbDevice) streamIn(addr Address, data []byte) error {
	count := []byte{
		byte(len(data)), byte(len(data) >> 8),
		byte(len(data) >> 16), byte(len(data) >> 24),
	}
	if err := d.controlOut(ReqMemStream, uint16(addr), count); err != nil {
		return err
	}
	for off := 0; off < len(data); {
		n, err := d.ep_in.Read(data[off:])
		if err != nil {
			return fmt.Errorf("Bulk read failed at offset %v: %v", off, err)
		}
		off += n
	}
	glog.V(2).Infof("[usb-bulk IN]: read %d bytes from %#04x", len(data), uint32(addr))
	return nil
}

type FwVersion struct {
	Major uint8
	Minor uint8
	Debug uint8
}

func (v FwVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Debug)
}

// Reads the transport firmware version.
func (d *UsbDevice) ReadFwVersion(ver *FwVersion) error {
	buf := make([]byte, 3)
	if err := d.controlIn(ReqFwVersion, 0, buf); err != nil {
		return err
	}
	ver.Major, ver.Minor, ver.Debug = buf[0], buf[1], buf[2]
	return nil
}
