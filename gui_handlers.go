// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/neuralllamas/focusflow/biosignal"
)

func (ui *Ui) handlePageInput(event *tcell.EventKey) *tcell.EventKey {
	if ui.helpWidget.visible {
		return event
	}

	switch event.Rune() {
	case '1':
		ui.ShowPage(PagePlayer)

	case '2':
		ui.ShowPage(PageSignal)

	case '3':
		ui.ShowPage(PageLog)

	case '?':
		ui.ShowHelp()

	case 'Q':
		ui.Quit()

	case 's':
		// write chart snapshot (delegate to background event loop)
		path := biosignal.SnapshotPath(ui.session.snapshotFile, time.Now())
		select {
		case ui.eventLoop.snapshotRequests <- path:
		default:
			ui.logger.Print("snapshot already in progress")
		}

	default:
		if ui.player == nil {
			return event
		}
		return ui.handlePlayerInput(event)
	}

	return nil
}

func (ui *Ui) handlePlayerInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'p':
		// toggle playing/pause
		if err := ui.player.Pause(); err != nil {
			ui.logger.PrintError("handlePageInput: Pause", err)
		}

	case 'P':
		// stop playing without changes to queue
		ui.logger.Print("key stop")
		if err := ui.player.Stop(); err != nil {
			ui.logger.PrintError("handlePageInput: Stop", err)
		}

	case '-':
		// volume-
		if err := ui.player.AdjustVolume(-5); err != nil {
			ui.logger.PrintError("handlePageInput: AdjustVolume-", err)
		}

	case '+', '=':
		// volume+
		if err := ui.player.AdjustVolume(5); err != nil {
			ui.logger.PrintError("handlePageInput: AdjustVolume+", err)
		}

	case 'n', '>':
		// skip to next track
		if err := ui.player.NextTrack(); err != nil {
			ui.logger.PrintError("handlePageInput: Next", err)
		}
		ui.queuePage.UpdateQueue()

	default:
		return event
	}

	return nil
}

func (ui *Ui) ShowPage(name string) {
	ui.pages.SwitchToPage(name)
	ui.menuWidget.SetActivePage(name)
	_, prim := ui.pages.GetFrontPage()
	ui.app.SetFocus(prim)
}

func (ui *Ui) Quit() {
	if ui.player != nil {
		ui.player.Quit()
	}
	ui.app.Stop()
}
