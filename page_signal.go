// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/neuralllamas/focusflow/biosignal"
	"github.com/neuralllamas/focusflow/chartview"
	"github.com/rivo/tview"
)

type SignalPage struct {
	Root *tview.Flex

	chart *chartview.SignalChart

	// external refs
	ui *Ui
}

var _ biosignal.Chart = (*SignalPage)(nil)

func (ui *Ui) createSignalPage() *SignalPage {
	signalPage := SignalPage{
		ui:    ui,
		chart: chartview.NewSignalChart(),
	}

	title := " signal "
	if ui.session.signalOn {
		title = fmt.Sprintf(" signal: %s ", ui.session.signalURL)
	}
	signalPage.chart.SetTitle(title).
		SetTitleAlign(tview.AlignLeft).
		SetBorder(true)

	signalPage.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(signalPage.chart, 0, 1, true)

	return &signalPage
}

// Update is called from the socket goroutine with a fresh copy of the buffers.
func (s *SignalPage) Update(snapshot biosignal.Snapshot) {
	s.ui.app.QueueUpdateDraw(func() {
		s.chart.SetSnapshot(snapshot)
	})
}
