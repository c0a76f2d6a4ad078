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

// USB bulk-endpoint output sink. Implements OutputInterface.
package chaincap

import (
	"encoding/hex"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

const (
	// The render sink enumerates as its own USB function, separate from
	// the register transport, so both can be open at once.
	usbOutVid   = 0x1fc9
	usbOutPid   = 0x0084
	usbOutEp    = 2
	usbOutChunk = 64 // endpoint packet size
)

// UsbOutput streams rendered bytes to a bulk OUT endpoint. Bytes are
// staged up to one endpoint packet and pushed when the packet fills or
// on Flush.
type UsbOutput struct {
	ctx       *gousb.Context
	dev       *gousb.Device
	intf      *gousb.Interface
	intf_done func()
	ep_out    *gousb.OutEndpoint

	staged []byte
}

func OpenUsbOutput() (*UsbOutput, error) {
	o := &UsbOutput{staged: make([]byte, 0, usbOutChunk)}
	o.ctx = gousb.NewContext()

	var err error
	o.dev, err = o.ctx.OpenDeviceWithVIDPID(usbOutVid, usbOutPid)
	if o.dev == nil && err == nil {
		o.Close()
		return nil, fmt.Errorf("USB output device not found")
	}
	if err != nil {
		o.Close()
		return nil, fmt.Errorf("Opening USB output device: %v", err)
	}

	// The default interface is always #0 alt #0 in the currently active
	// config.
	o.intf, o.intf_done, err = o.dev.DefaultInterface()
	if err != nil {
		o.Close()
		return nil, fmt.Errorf("Claming default interface: %v", err)
	}

	o.ep_out, err = o.intf.OutEndpoint(usbOutEp)
	if err != nil {
		o.Close()
		return nil, fmt.Errorf("Opening output endpoint: %v", err)
	}

	return o, nil
}

func (o *UsbOutput) Close() error {
	glog.V(1).Infof("Closing USB output device")
	var err error
	if o.ep_out != nil {
		err = o.Flush()
		o.ep_out = nil
	}
	if o.intf_done != nil {
		o.intf_done()
		o.intf_done = nil
	}
	if o.intf != nil {
		o.intf.Close()
		o.intf = nil
	}
	if o.dev != nil {
		o.dev.Close()
		o.dev = nil
	}
	if o.ctx != nil {
		o.ctx.Close()
		o.ctx = nil
	}
	return err
}

func (o *UsbOutput) SendByte(b byte) error {
	o.staged = append(o.staged, b)
	if len(o.staged) < usbOutChunk {
		return nil
	}
	return o.Flush()
}

// Flush pushes the staged bytes through the endpoint.
func (o *UsbOutput) Flush() error {
	if len(o.staged) == 0 {
		return nil
	}
	n, err := o.ep_out.Write(o.staged)
	glog.V(2).Infof("[usb-bulk OUT]: wrote %d bytes. data:\n%s", n, hex.Dump(o.staged))
	if err != nil {
		return fmt.Errorf("Bulk write failed: %v", err)
	}
	if n != len(o.staged) {
		return fmt.Errorf("Failed to write entire buffer over bulk interface")
	}
	o.staged = o.staged[:0]
	return nil
}
