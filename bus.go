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

// Typed register access over the raw device bus.
package chaincap

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/golang/glog"
)

type Registers struct {
	dev DeviceInterface
}

func NewRegisters(dev DeviceInterface) *Registers {
	return &Registers{dev}
}

// Reads a fixed-size value from register addr.
// Values are encoded little-endian in the register space.
func (r *Registers) Read(addr Address, data interface{}) error {
	var err error
	if binary.Size(data) == -1 {
		return fmt.Errorf("Failed to get data size")
	}
	buf := make([]byte, binary.Size(data))
	glog.V(2).Infof("[reg-read]: addr = %#x, dlen = %v", uint32(addr), len(buf))
	if err = r.dev.RegRead(addr, buf); err != nil {
		return fmt.Errorf("RegRead failed %v", err)
	}
	if err = binary.Read(bytes.NewReader(buf), binary.LittleEndian, data); err != nil {
		return fmt.Errorf("binary.Read failed: %v", err)
	}
	return nil
}

// Writes a fixed-size value to register addr.
// With verify set, the register is read back and compared; mask limits
// the comparison to the masked bits (status bits the device owns).
func (r *Registers) Write(addr Address, data interface{}, verify bool, mask []byte) error {
	var err error
	buf := new(bytes.Buffer)
	if err = binary.Write(buf, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("binary.Write failed: %v", err)
	}
	glog.V(2).Infof("[reg-write]: addr = %#x, dlen = %v", uint32(addr), buf.Len())
	if err = r.dev.RegWrite(addr, buf.Bytes()); err != nil {
		return fmt.Errorf("RegWrite failed %v", err)
	}

	if verify {
		expected := buf.Bytes()
		actual := make([]byte, len(expected))
		if err = r.dev.RegRead(addr, actual); err != nil {
			return fmt.Errorf("RegRead for verify failed %v", err)
		}
		if mask != nil {
			if len(mask) != len(expected) {
				return fmt.Errorf("Mask length (%v) doesn't match data length (%v)",
					len(mask), len(expected))
			}
			expected = append([]byte(nil), expected...)
			for i, m := range mask {
				actual[i] &= m
				expected[i] &= m
			}
		}
		if !bytes.Equal(expected, actual) {
			return fmt.Errorf("Write verification failed at %#x", uint32(addr))
		}
	}
	return nil
}

// Reads a 32-bit register.
func (r *Registers) Read32(addr Address) (uint32, error) {
	var v uint32
	if err := r.Read(addr, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// Writes a 32-bit register.
func (r *Registers) Write32(addr Address, v uint32, verify bool) error {
	return r.Write(addr, &v, verify, nil)
}

// Streams the capture memory contents into words, one bulk read.
func (r *Registers) ReadSampleMemory(words []uint16) error {
	raw := make([]byte, 2*len(words))
	glog.V(1).Infof("[reg-read]: sample memory, %v words", len(words))
	if err := r.dev.RegRead(RegSampleData, raw); err != nil {
		return fmt.Errorf("RegRead sample memory failed %v", err)
	}
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return nil
}
