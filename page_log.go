// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"time"

	"github.com/neuralllamas/focusflow/logger"
	"github.com/rivo/tview"
)

const maxLogLines = 100

type LogPage struct {
	Root *tview.Flex

	logList *tview.List

	// external refs
	ui *Ui
}

func (ui *Ui) createLogPage() *LogPage {
	logPage := LogPage{
		ui: ui,
	}

	logPage.logList = tview.NewList().ShowSecondaryText(false)

	logPage.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(logPage.logList, 0, 1, true)

	return &logPage
}

func (l *LogPage) Print(line string) {
	line = logger.Stamp(time.Now(), line)
	l.ui.app.QueueUpdateDraw(func() {
		l.insert(line)
	})
}

// insert adds line at the top and drops the oldest lines beyond maxLogLines.
func (l *LogPage) insert(line string) {
	l.logList.InsertItem(0, tview.Escape(line), "", 0, nil)

	for l.logList.GetItemCount() > maxLogLines {
		l.logList.RemoveItem(-1)
	}
}
