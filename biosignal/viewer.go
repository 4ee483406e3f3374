// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package biosignal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/neuralllamas/focusflow/logger"
)

// LabelFormat is the wall-clock format of the x-axis labels.
const LabelFormat = "15:04:05"

// Chart is redrawn once after every accepted sample.
type Chart interface {
	Update(s Snapshot)
}

// ChartFunc adapts a function to Chart.
type ChartFunc func(s Snapshot)

func (f ChartFunc) Update(s Snapshot) {
	f(s)
}

// Handler receives connection events. Run calls it from a single goroutine,
// one event at a time.
type Handler interface {
	OnOpen()
	OnMessage(data []byte)
	// OnInvalidMessage gets frames that cannot carry a sample at all,
	// such as binary frames.
	OnInvalidMessage(err error)
	OnError(err error)
	OnClose()
}

// Viewer appends incoming samples to its Buffers and redraws the chart.
type Viewer struct {
	// Clock stamps each sample; defaults to time.Now.
	Clock func() time.Time

	buffers *Buffers
	chart   Chart
	logger  logger.LoggerInterface
}

var _ Handler = (*Viewer)(nil)

func NewViewer(maxSamples int, chart Chart, logger logger.LoggerInterface) *Viewer {
	return &Viewer{
		Clock:   time.Now,
		buffers: NewBuffers(maxSamples),
		chart:   chart,
		logger:  logger,
	}
}

// Buffers exposes the viewer's state. Only touch it from the goroutine that
// delivers messages.
func (v *Viewer) Buffers() *Buffers {
	return v.buffers
}

func (v *Viewer) OnOpen() {
	v.logger.Print("Connected to WebSocket server.")
}

func (v *Viewer) OnClose() {
	v.logger.Print("WebSocket connection closed.")
}

func (v *Viewer) OnError(err error) {
	v.logger.Printf("WebSocket error: %v", err)
}

func (v *Viewer) OnInvalidMessage(err error) {
	v.logger.Printf("Error parsing message: %v", err)
}

// OnMessage appends and redraws for every JSON object, even one with missing
// or non-numeric channels. Such a sample is still reported as a parse error
// after the redraw, in place of the values line.
func (v *Viewer) OnMessage(data []byte) {
	sample, err := ParseSample(data)
	if err != nil {
		v.OnInvalidMessage(err)
		return
	}

	v.buffers.Append(sample, v.Clock().Format(LabelFormat))
	if v.chart != nil {
		v.chart.Update(v.buffers.Snapshot())
	}

	if missing := missingChannels(sample); len(missing) > 0 {
		v.OnInvalidMessage(fmt.Errorf("no numeric value for %s", strings.Join(missing, ", ")))
		return
	}

	v.logger.Printf("Alpha: %.2f, Beta: %.2f, Theta: %.2f, Delta: %.2f, Gamma: %.2f, Concentration: %.2f",
		sample.Alpha, sample.Beta, sample.Theta, sample.Delta, sample.Gamma, sample.Concentration)
}

// ParseSample decodes one producer message. The message must be a JSON
// object; channel fields that are missing or not numbers come back as NaN.
// Numbers beyond the float64 range become ±Inf instead of failing the
// whole message.
func ParseSample(data []byte) (Sample, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return Sample{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Sample{}, errors.New("unexpected data after message")
	}
	if fields == nil {
		return Sample{}, errors.New("message is null")
	}

	var sample Sample
	for _, c := range Channels {
		sample.set(c, channelValue(fields[c.Key()]))
	}
	return sample, nil
}

func channelValue(field interface{}) float64 {
	number, ok := field.(json.Number)
	if !ok {
		return math.NaN()
	}
	// out of range parses to ±Inf (or 0) together with ErrRange; keep it
	value, err := strconv.ParseFloat(number.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return value
}

func missingChannels(s Sample) []string {
	var missing []string
	for _, c := range Channels {
		if math.IsNaN(s.Value(c)) {
			missing = append(missing, c.Key())
		}
	}
	return missing
}
