// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package biosignal

import (
	"errors"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var pngColors = [NumChannels]drawing.Color{
	drawing.ColorRed,
	drawing.ColorBlue,
	drawing.ColorGreen,
	{R: 128, G: 0, B: 128, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	drawing.ColorBlack,
}

// RenderPNG draws the snapshot as a line chart, one line per channel, with
// the sample index on the x axis. NaN readings are left out of their line.
func RenderPNG(w io.Writer, s Snapshot) error {
	series := make([]chart.Series, 0, NumChannels)
	for _, c := range Channels {
		xs, ys := finitePoints(s.Series[c])
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			// a single point has no extent; draw it as a flat stub
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    c.String(),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: pngColors[c],
				StrokeWidth: 2,
			},
		})
	}
	if len(series) == 0 {
		return errors.New("no samples to render")
	}

	graph := chart.Chart{
		Width:      1024,
		Height:     480,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: "Time (s)"},
		YAxis:      chart.YAxis{Name: "EEG Value"},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

func finitePoints(values []float64) (xs, ys []float64) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}
	return
}
