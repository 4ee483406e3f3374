// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/neuralllamas/focusflow/mpvplayer"
	"github.com/rivo/tview"
)

// columns: position, title, artist, duration
const queueDataColumns = 4

// data for rendering queue table
type queueData struct {
	tview.TableContentReadOnly

	// our copy of the queue
	playerQueue mpvplayer.PlayerQueue
}

var _ tview.TableContent = (*queueData)(nil)

type QueuePage struct {
	Root *tview.Flex

	queueList *tview.Table
	queueData queueData

	// external refs
	ui *Ui
}

func (ui *Ui) createQueuePage() *QueuePage {
	queuePage := QueuePage{
		ui: ui,
	}

	// main table
	queuePage.queueList = tview.NewTable().
		SetSelectable(true, false). // rows selectable
		SetSelectedStyle(tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack))
	queuePage.queueList.Box.
		SetTitle(" playlist ").
		SetTitleAlign(tview.AlignLeft).
		SetBorder(true)
	queuePage.queueList.SetContent(&queuePage.queueData)

	// flex wrapper
	queuePage.Root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(queuePage.queueList, 0, 1, true)

	return &queuePage
}

// UpdateQueue refreshes the table from the player. Call from the UI goroutine.
func (q *QueuePage) UpdateQueue() {
	if q.ui.player == nil {
		q.queueList.SetTitle(" playlist (player disabled) ")
		return
	}
	q.queueData.playerQueue = q.ui.player.GetQueueCopy()
}

// queueData methods, used by tview to lazily render the table
func (q *queueData) GetCell(row, column int) *tview.TableCell {
	if row >= len(q.playerQueue) || column >= queueDataColumns || row < 0 || column < 0 {
		return nil
	}
	song := q.playerQueue[row]

	switch column {
	case 0: // position; the player always plays the head of the queue
		text := fmt.Sprintf("%2d", row+1)
		color := tcell.ColorDefault
		if row == 0 {
			text = " >"
			color = tcell.ColorGreen
		}
		return &tview.TableCell{
			Text:        text,
			Color:       color,
			Expansion:   0,
			MaxWidth:    2,
			Transparent: true,
		}
	case 1: // title
		return &tview.TableCell{
			Text:        tview.Escape(song.Title),
			Expansion:   1,
			Transparent: true,
		}
	case 2: // artist
		return &tview.TableCell{
			Text:        tview.Escape(song.Artist),
			Expansion:   1,
			Transparent: true,
		}
	case 3: // duration
		min, sec := iSecondsToMinAndSec(song.Duration)
		text := fmt.Sprintf("%3d:%02d", min, sec)
		return &tview.TableCell{
			Text:        text,
			Align:       tview.AlignRight,
			Expansion:   0,
			MaxWidth:    6,
			Transparent: true,
		}
	}

	return nil
}

// Return the total number of rows in the table.
func (q *queueData) GetRowCount() int {
	return len(q.playerQueue)
}

// Return the total number of columns in the table.
func (q *queueData) GetColumnCount() int {
	return queueDataColumns
}
