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

// Serial output sinks. Implement OutputInterface.
package chaincap

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/golang/glog"
	"github.com/tarm/serial"
)

// WriterOutput adapts any io.Writer into an output sink. Bytes are
// buffered; Flush or Close pushes them through.
type WriterOutput struct {
	w *bufio.Writer
}

func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{bufio.NewWriter(w)}
}

func (o *WriterOutput) SendByte(b byte) error {
	return o.w.WriteByte(b)
}

func (o *WriterOutput) Flush() error {
	return o.w.Flush()
}

func (o *WriterOutput) Close() error {
	return o.w.Flush()
}

type UartConfig struct {
	Port string
	Baud int
	// How long to keep retrying the port open. USB serial adapters
	// enumerate a moment after plug-in.
	OpenTimeout time.Duration
}

var defaultUartConfig = UartConfig{
	Baud:        115200,
	OpenTimeout: 10 * time.Second,
}

// UartOutput transmits through a serial port, one byte per send,
// blocking until the UART accepted the byte.
type UartOutput struct {
	conf UartConfig
	port *serial.Port
}

func NewUartOutput(conf *UartConfig) (*UartOutput, error) {
	u := &UartOutput{conf: defaultUartConfig}
	if conf != nil {
		if conf.Port != "" {
			u.conf.Port = conf.Port
		}
		if conf.Baud != 0 {
			u.conf.Baud = conf.Baud
		}
		if conf.OpenTimeout != 0 {
			u.conf.OpenTimeout = conf.OpenTimeout
		}
	}
	if u.conf.Port == "" {
		return nil, fmt.Errorf("No UART port named")
	}

	open := func() error {
		port, err := serial.OpenPort(&serial.Config{Name: u.conf.Port, Baud: u.conf.Baud})
		if err != nil {
			glog.V(1).Infof("[uart] open %v failed, retrying: %v", u.conf.Port, err)
			return err
		}
		u.port = port
		return nil
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = u.conf.OpenTimeout
	if err := backoff.Retry(open, bo); err != nil {
		return nil, fmt.Errorf("Opening UART %v: %v", u.conf.Port, err)
	}

	glog.Infof("UART output on %v at %v baud", u.conf.Port, u.conf.Baud)
	return u, nil
}

func (u *UartOutput) SendByte(b byte) error {
	n, err := u.port.Write([]byte{b})
	if err != nil {
		return fmt.Errorf("UART write failed: %v", err)
	}
	if n != 1 {
		return fmt.Errorf("UART accepted %v bytes, want 1", n)
	}
	return nil
}

func (u *UartOutput) Close() error {
	glog.V(1).Infof("[uart] closing %v", u.conf.Port)
	return u.port.Close()
}
