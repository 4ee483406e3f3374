// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"

	"github.com/neuralllamas/focusflow/biosignal"
	"github.com/neuralllamas/focusflow/logger"
	"github.com/neuralllamas/focusflow/mpvplayer"
)

// session holds what the TUI and headless front ends share.
type session struct {
	logger *logger.Logger
	player *mpvplayer.Player // nil with --no-player

	snapshots    *biosignal.Latest
	signalURL    string
	maxSamples   int
	signalOn     bool
	snapshotFile string
}

// startSignal connects to the biosignal producer in its own goroutine. Every
// accepted sample is recorded for snapshots before chart sees it.
func (s *session) startSignal(ctx context.Context, chart biosignal.Chart) {
	if !s.signalOn {
		s.logger.Print("signal viewer disabled")
		return
	}

	viewer := biosignal.NewViewer(s.maxSamples, biosignal.ChartFunc(func(snap biosignal.Snapshot) {
		s.snapshots.Update(snap)
		if chart != nil {
			chart.Update(snap)
		}
	}), s.logger)

	go func() {
		// failures were already logged by the viewer
		_ = biosignal.Run(ctx, s.signalURL, viewer)
	}()
}
