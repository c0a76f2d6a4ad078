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

// Captures a waveform and renders it as index/value text lines.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/chaincap"

	"github.com/golang/glog"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/theckman/yacspin"
	"golang.org/x/time/rate"

	yml "gopkg.in/yaml.v2"
)

var (
	// Version is the version number. Typically injected via ldflags
	// with git build.
	Version = "1.0"

	// ConfigFileName is what it sounds like.
	ConfigFileName = "wavecap.yml"
	k              = koanf.New(".")
)

func init() {
	flag.Parse()
}

func setupconfig() {
	k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err := k.Load(file.Provider(ConfigFileName), yaml.Parser()); err != nil {
		errtxt := err.Error()
		if !strings.Contains(errtxt, "no such") { // file missing, who cares
			glog.Exitf("Loading config: %v", err)
		}
	}
}

func root() {
	str := `wavecap drives the capture board through one timer-paced acquisition
and renders the waveform as "<index> <value>" text lines.

Usage:
	wavecap <command>

Commands:
	run
	help
	mkconf
	conf
	version`
	fmt.Println(str)
}

func help() {
	str := `wavecap is configured via wavecap.yml; run "wavecap mkconf" to write
one with the defaults filled in.

Device selects what to drive:
- "sim"  captures from the in-process device model (no hardware)
- "usb"  captures from the board over USB

Sim.Signal shapes the simulated input: "sine", "ramp" or "constant".

Output.Sink routes the rendered text:
- "stdout"  plain text on standard output
- "uart"    a serial line; set Output.Port and Output.Baud
- "usb"     the board render endpoint

Output.LineRate throttles rendering to that many lines per second so a
slow terminal behind a serial link is not overrun. 0 means no pacing.

The achieved sample rate is the system clock divided by the truncated
trigger period, so odd requests land slightly low; the run log prints
the achieved rate.`
	fmt.Println(str)
}

func mkconf() {
	c := Config{}
	err := k.Unmarshal("", &c)
	if err != nil {
		glog.Fatal(err)
	}
	f, err := os.Create(ConfigFileName)
	if err != nil {
		glog.Fatal(err)
	}
	defer f.Close()
	err = yml.NewEncoder(f).Encode(c)
	if err != nil {
		glog.Fatal(err)
	}
}

func printconf() {
	c := Config{}
	k.Unmarshal("", &c)
	err := yml.NewEncoder(os.Stdout).Encode(c)
	if err != nil {
		glog.Fatal(err)
	}
}

func pversion() {
	fmt.Printf("wavecap version %v\n", Version)
}

func newSpinner(msg string) (*yacspin.Spinner, error) {
	return yacspin.New(yacspin.Config{
		Writer:            os.Stderr,
		Frequency:         100 * time.Millisecond,
		CharSet:           yacspin.CharSets[59],
		Suffix:            " " + msg,
		StopCharacter:     "done",
		StopColors:        []string{"fgGreen"},
		StopFailCharacter: "failed",
		StopFailColors:    []string{"fgRed"},
	})
}

func run() {
	var err error
	c := Config{}
	if err = k.Unmarshal("", &c); err != nil {
		glog.Fatal(err)
	}

	// Ctrl-C abandons the acquisition and quiesces the board.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var dev chaincap.DeviceInterface
	if dev, err = c.openDevice(); err != nil {
		glog.Fatal(err)
	}
	defer dev.Close()

	spin, err := newSpinner(fmt.Sprintf("capturing %d blocks of %d samples",
		c.Capture.NumBlocks, c.Capture.BlockSize))
	if err != nil {
		glog.Fatal(err)
	}
	spin.Start()

	wf, err := chaincap.Capture(ctx, dev, c.captureConfig())
	if err != nil {
		spin.StopFail()
		glog.Fatal(err)
	}
	spin.Stop()

	glog.Infof("Capture stats: %v", wf.Summary())
	for i, st := range wf.BlockSummaries() {
		glog.V(1).Infof("Block %d: %v", i, st)
	}

	var out chaincap.OutputInterface
	if out, err = c.openSink(); err != nil {
		glog.Fatal(err)
	}
	defer out.Close()

	lineRate := rate.Limit(c.Output.LineRate)
	if lineRate == 0 {
		lineRate = rate.Inf
	}
	r := chaincap.NewRenderer(out, lineRate)
	if err = r.Render(ctx, wf); err != nil {
		glog.Fatal(err)
	}
}

func main() {
	defer glog.Flush()
	if flag.NArg() == 0 {
		root()
		return
	}
	setupconfig()
	switch strings.ToLower(flag.Arg(0)) {
	case "help":
		help()
	case "mkconf":
		mkconf()
	case "conf":
		printconf()
	case "version":
		pversion()
	case "run":
		run()
	default:
		glog.Exitf("Unknown command %q", flag.Arg(0))
	}
}
