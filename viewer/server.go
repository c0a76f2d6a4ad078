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

// Waveform viewer. Runs captures against the simulated device and
// serves them live over HTTP; the page long-polls /waveforms and
// redraws whenever a capture lands.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/chaincap"
	"github.com/google/chaincap/sim"
	"github.com/google/chaincap/util"

	"github.com/golang/glog"
	"github.com/labstack/echo"
	"golang.org/x/time/rate"
)

var (
	portFlag    = flag.Int("port", 8080, "Server HTTP port number")
	sourceFlag  = flag.String("source", "sine", "Simulated input signal (sine, ramp or constant)")
	rateFlag    = flag.Uint("rate", 0, "Sample rate in samples per second (0 keeps the default)")
	historyFlag = flag.Int("history", 16, "Captures retained in memory")
)

type CaptureMetadata struct {
	Id         int     `json:"Id"`
	Taken      string  `json:"Taken"`
	NumBlocks  int     `json:"NumBlocks"`
	BlockSize  int     `json:"BlockSize"`
	SampleRate uint32  `json:"SampleRate"`
	Mean       float64 `json:"Mean"`
	StdDev     float64 `json:"StdDev"`
}

type captureEntry struct {
	meta CaptureMetadata
	wf   *chaincap.Waveform
}

// captureStore keeps the most recent captures in memory, oldest first.
// Nothing is persisted; restarting the viewer starts the list over.
type captureStore struct {
	mu      sync.Mutex
	nextId  int
	entries []*captureEntry
	limit   int
}

func newCaptureStore(limit int) *captureStore {
	return &captureStore{limit: limit}
}

func (s *captureStore) add(wf *chaincap.Waveform) CaptureMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := wf.Summary()
	e := &captureEntry{
		meta: CaptureMetadata{
			Id:         s.nextId,
			Taken:      time.Now().Format(time.RFC3339),
			NumBlocks:  wf.NumBlocks(),
			BlockSize:  wf.BlockSize(),
			SampleRate: wf.SampleRate(),
			Mean:       stats.Mean,
			StdDev:     stats.StdDev,
		},
		wf: wf,
	}
	s.nextId++
	s.entries = append(s.entries, e)
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
	return e.meta
}

func (s *captureStore) list() []CaptureMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	metas := []CaptureMetadata{}
	for _, e := range s.entries {
		metas = append(metas, e.meta)
	}
	return metas
}

func (s *captureStore) get(id int) *captureEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.meta.Id == id {
			return e
		}
	}
	return nil
}

func signalSource(name string) (sim.Source, error) {
	switch name {
	case "sine":
		return sim.Sine(2048, 1500, 250), nil
	case "ramp":
		return sim.Ramp(0, 1), nil
	case "constant":
		return sim.Constant(1000), nil
	}
	return nil, fmt.Errorf("unknown source %q", name)
}

// runCapture performs one complete capture against a fresh simulated
// device and stores the result.
func runCapture(store *captureStore, broker *util.Broker[int]) (CaptureMetadata, error) {
	source, err := signalSource(*sourceFlag)
	if err != nil {
		return CaptureMetadata{}, err
	}
	dev := sim.New(&sim.Config{Source: source})
	defer dev.Close()

	cfg := chaincap.DefaultConfig()
	if *rateFlag != 0 {
		cfg.SampleRate = uint32(*rateFlag)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	wf, err := chaincap.Capture(ctx, dev, cfg)
	if err != nil {
		return CaptureMetadata{}, err
	}

	meta := store.add(wf)
	broker.Publish(meta.Id)
	return meta, nil
}

// waitForCapture parks the request until a new capture lands, the
// client goes away, or the long-poll window closes.
func waitForCapture(c echo.Context, broker *util.Broker[int]) {
	timedOut := time.NewTimer(5 * time.Minute)
	defer timedOut.Stop()

	captured := broker.Subscribe()
	defer broker.Unsubscribe(captured)

	select {
	case <-timedOut.C:
		glog.V(1).Infof("Timed out")
	case <-c.Request().Context().Done():
		glog.V(1).Infof("Client disconnected")
	case id := <-captured:
		glog.V(1).Infof("Received capture %d notification from broker", id)
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	store := newCaptureStore(*historyFlag)
	broker := util.NewBroker[int]()
	go broker.Start()
	defer broker.Stop()

	// Seed the page with one capture so it has something to draw.
	go func() {
		if _, err := runCapture(store, broker); err != nil {
			glog.Errorf("Initial capture failed: %v", err)
		}
	}()

	e := echo.New()

	// Static files.
	e.File("/", "viewer/index.html")
	e.File("/viewer.js", "viewer/viewer.js")

	// Returns capture metadata, long-polling for a new capture unless
	// wait=false.
	e.GET("/waveforms", func(c echo.Context) error {
		if c.QueryParam("wait") != "false" {
			waitForCapture(c, broker)
		}
		return c.JSON(http.StatusOK, store.list())
	})

	// Returns the sample data of a single capture.
	e.GET("/waveforms/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid capture id")
		}
		entry := store.get(id)
		if entry == nil {
			return c.String(http.StatusNotFound, "No such capture")
		}
		return c.JSON(http.StatusOK, entry.wf.Floats())
	})

	// Returns the capture rendered as index/value text lines.
	e.GET("/waveforms/:id/text", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid capture id")
		}
		entry := store.get(id)
		if entry == nil {
			return c.String(http.StatusNotFound, "No such capture")
		}
		var buf bytes.Buffer
		out := chaincap.NewWriterOutput(&buf)
		r := chaincap.NewRenderer(out, rate.Inf)
		if err := r.Render(c.Request().Context(), entry.wf); err != nil {
			glog.Errorf("Render failed: %v", err)
			return err
		}
		return c.String(http.StatusOK, buf.String())
	})

	// Runs a fresh capture.
	e.POST("/captures", func(c echo.Context) error {
		meta, err := runCapture(store, broker)
		if err != nil {
			glog.Errorf("Capture failed: %v", err)
			return err
		}
		return c.JSON(http.StatusOK, meta)
	})

	glog.Fatal(e.Start(fmt.Sprintf(":%d", *portFlag)))
}
