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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/chaincap"
	"github.com/google/chaincap/sim"
)

// CaptureSetup selects the acquisition geometry. The zero values are
// filled from the board defaults when the config file omits them.
type CaptureSetup struct {
	// SampleRate is the requested rate in samples per second. The
	// achieved rate can land below it when the trigger period
	// truncates; the run log reports the difference.
	SampleRate uint32 `yaml:"SampleRate"`
	BlockSize  int    `yaml:"BlockSize"`
	NumBlocks  int    `yaml:"NumBlocks"`
	Channel    uint8  `yaml:"Channel"`
}

type OutputSetup struct {
	// Sink routes the rendered waveform: "stdout", "uart" or "usb".
	Sink string `yaml:"Sink"`

	// Port and Baud configure the serial line when Sink is "uart",
	// e.g. /dev/ttyUSB0 at 115200.
	Port string `yaml:"Port"`
	Baud int    `yaml:"Baud"`

	// LineRate paces rendering in lines per second so a slow terminal
	// on the far end can keep up. 0 renders unpaced.
	LineRate float64 `yaml:"LineRate"`
}

type SimSetup struct {
	// Signal shapes the simulated input: "sine", "ramp" or "constant".
	Signal string `yaml:"Signal"`

	// ClockRate overrides the simulated system clock in Hz. 0 keeps
	// the model default.
	ClockRate uint32 `yaml:"ClockRate"`
}

// Config holds one capture run end to end: which device to drive, what
// to acquire, and where the rendered waveform goes.
type Config struct {
	// Device selects the capture hardware: "sim" or "usb".
	Device string `yaml:"Device"`

	Capture CaptureSetup `yaml:"Capture"`
	Output  OutputSetup  `yaml:"Output"`
	Sim     SimSetup     `yaml:"Sim"`
}

func defaults() Config {
	d := chaincap.DefaultConfig()
	return Config{
		Device: "sim",
		Capture: CaptureSetup{
			SampleRate: d.SampleRate,
			BlockSize:  d.BlockSize,
			NumBlocks:  d.NumBlocks,
			Channel:    d.Channel,
		},
		Output: OutputSetup{
			Sink: "stdout",
			Baud: 115200,
		},
		Sim: SimSetup{
			Signal: "sine",
		},
	}
}

func (c Config) captureConfig() chaincap.Config {
	return chaincap.Config{
		SampleRate: c.Capture.SampleRate,
		BlockSize:  c.Capture.BlockSize,
		NumBlocks:  c.Capture.NumBlocks,
		Channel:    c.Capture.Channel,
		Trigger:    chaincap.TriggerSourcePulseGen,
	}
}

func signalSource(name string) (sim.Source, error) {
	switch strings.ToLower(name) {
	case "", "sine":
		return sim.Sine(2048, 1500, 250), nil
	case "ramp":
		return sim.Ramp(0, 1), nil
	case "constant":
		return sim.Constant(1000), nil
	}
	return nil, fmt.Errorf("unknown signal %q", name)
}

func (c Config) openDevice() (chaincap.DeviceInterface, error) {
	switch strings.ToLower(c.Device) {
	case "", "sim":
		src, err := signalSource(c.Sim.Signal)
		if err != nil {
			return nil, err
		}
		return sim.New(&sim.Config{ClockRate: c.Sim.ClockRate, Source: src}), nil
	case "usb":
		return chaincap.OpenUsbDevice()
	}
	return nil, fmt.Errorf("unknown device %q", c.Device)
}

func (c Config) openSink() (chaincap.OutputInterface, error) {
	switch strings.ToLower(c.Output.Sink) {
	case "", "stdout":
		return chaincap.NewWriterOutput(os.Stdout), nil
	case "uart":
		return chaincap.NewUartOutput(&chaincap.UartConfig{
			Port: c.Output.Port,
			Baud: c.Output.Baud,
		})
	case "usb":
		return chaincap.OpenUsbOutput()
	}
	return nil, fmt.Errorf("unknown sink %q", c.Output.Sink)
}
