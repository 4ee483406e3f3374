// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

// Package chartview draws biosignal snapshots inside a tview layout.
package chartview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/neuralllamas/focusflow/biosignal"
	"github.com/rivo/tview"
)

const plotRune = '•'

// SignalChart draws one dotted line per channel, newest sample on the right.
// All channels share one y scale.
type SignalChart struct {
	*tview.Box

	snapshot biosignal.Snapshot
}

func NewSignalChart() *SignalChart {
	return &SignalChart{
		Box: tview.NewBox(),
	}
}

func (c *SignalChart) SetSnapshot(snapshot biosignal.Snapshot) {
	c.snapshot = snapshot
}

func (c *SignalChart) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)
	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height < 3 {
		return
	}

	c.drawLegend(screen, x, y, width)

	// legend on top, time labels at the bottom
	plotY, plotHeight := y+1, height-2
	labels := c.snapshot.Labels

	lo, hi, ok := seriesRange(c.snapshot)
	if !ok {
		tview.Print(screen, "waiting for samples", x, plotY+plotHeight/2, width, tview.AlignCenter, tcell.ColorGray)
		return
	}

	start := visibleStart(c.snapshot.Len(), width)
	for _, ch := range biosignal.Channels {
		style := tcell.StyleDefault.Foreground(ch.Color())
		for i, v := range c.snapshot.Series[ch][start:] {
			if !isFinite(v) {
				continue
			}
			screen.SetContent(x+i, plotY+scaleRow(v, lo, hi, plotHeight), plotRune, nil, style)
		}
	}

	axisY := y + height - 1
	tview.Print(screen, fmt.Sprintf("%.2f..%.2f", lo, hi), x, axisY, width, tview.AlignCenter, tcell.ColorGray)
	if len(labels) > 0 {
		tview.Print(screen, labels[start], x, axisY, width, tview.AlignLeft, tcell.ColorGray)
		tview.Print(screen, labels[len(labels)-1], x, axisY, width, tview.AlignRight, tcell.ColorGray)
	}
}

func (c *SignalChart) drawLegend(screen tcell.Screen, x, y, width int) {
	last, haveLast := c.snapshot.Last()
	offset := 0
	for _, ch := range biosignal.Channels {
		if offset >= width {
			return
		}
		_, printed := tview.Print(screen, legendEntry(ch, last, haveLast), x+offset, y, width-offset, tview.AlignLeft, ch.Color())
		offset += printed + 2
	}
}

func legendEntry(ch biosignal.Channel, last biosignal.Sample, haveLast bool) string {
	if !haveLast {
		return ch.String()
	}
	return fmt.Sprintf("%s %.2f", ch, last.Value(ch))
}

// seriesRange returns the smallest and largest finite value across all
// channels.
func seriesRange(s biosignal.Snapshot) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, series := range s.Series {
		for _, v := range series {
			if !isFinite(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	return
}

// scaleRow maps v onto rows 0 (hi) to height-1 (lo). A flat range lands in
// the middle row.
func scaleRow(v, lo, hi float64, height int) int {
	if height <= 1 {
		return 0
	}
	if hi <= lo {
		return height / 2
	}
	frac := (v - lo) / (hi - lo)
	frac = math.Max(0, math.Min(1, frac))
	return height - 1 - int(math.Round(frac*float64(height-1)))
}

// visibleStart is the index of the first sample that fits in width columns.
func visibleStart(n, width int) int {
	if n > width {
		return n - width
	}
	return 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
