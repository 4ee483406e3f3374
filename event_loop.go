// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"

	"github.com/neuralllamas/focusflow/mpvplayer"
)

type eventLoop struct {
	// snapshot writes are handled by background loop
	snapshotRequests chan string
}

func (ui *Ui) initEventLoops() {
	ui.eventLoop = &eventLoop{
		snapshotRequests: make(chan string, 1),
	}
}

func (ui *Ui) runEventLoops(ctx context.Context) {
	go ui.guiEventLoop(ctx)
	go ui.backgroundEventLoop(ctx)
}

// SendEvent receives events from the mpv wrapper.
func (ui *Ui) SendEvent(event mpvplayer.UiEvent) {
	ui.mpvEvents <- event
}

// handle ui updates
func (ui *Ui) guiEventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case msg := <-ui.logger.Prints:
			// handle log page output
			ui.logPage.Print(msg)

		case mpvEvent := <-ui.mpvEvents:
			ui.handleMpvEvent(mpvEvent)
		}
	}
}

func (ui *Ui) handleMpvEvent(mpvEvent mpvplayer.UiEvent) {
	switch mpvEvent.Type {
	case mpvplayer.EventStatus:
		statusData, ok := mpvEvent.Data.(mpvplayer.StatusData)
		if !ok {
			return
		}

		ui.app.QueueUpdateDraw(func() {
			ui.playerStatus.SetText(formatPlayerStatus(statusData.Volume, statusData.Position, statusData.Duration))
		})

	case mpvplayer.EventStopped:
		ui.logger.Print("mpvEvent: stopped")
		ui.app.QueueUpdateDraw(func() {
			ui.startStopStatus.SetText("[red::b]Stopped[::-]")
			ui.queuePage.UpdateQueue()
		})

	case mpvplayer.EventPlaying:
		ui.logger.Print("mpvEvent: playing")
		statusText := playbackStatusText(mpvEvent)

		ui.app.QueueUpdateDraw(func() {
			ui.startStopStatus.SetText(statusText)
			ui.queuePage.UpdateQueue()
		})

	case mpvplayer.EventPaused, mpvplayer.EventUnpaused:
		statusText := playbackStatusText(mpvEvent)

		ui.app.QueueUpdateDraw(func() {
			ui.startStopStatus.SetText(statusText)
		})

	default:
		ui.logger.Printf("guiEventLoop: unhandled mpvEvent %v", mpvEvent)
	}
}

func playbackStatusText(mpvEvent mpvplayer.UiEvent) string {
	statusText := "[green::b]Playing[::-]"
	if mpvEvent.Type == mpvplayer.EventPaused {
		statusText = "[yellow::b]Paused[::-]"
	}

	if currentSong, ok := mpvEvent.Data.(mpvplayer.QueueItem); ok {
		statusText += formatSongForStatusBar(&currentSong)
	}
	return statusText
}

// loop for blocking background tasks that would otherwise block the ui
func (ui *Ui) backgroundEventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case path := <-ui.eventLoop.snapshotRequests:
			if err := ui.session.snapshots.WriteFile(path); err != nil {
				ui.logger.PrintError("snapshot", err)
				continue
			}
			ui.logger.Printf("wrote chart snapshot to %s", path)
			ui.app.QueueUpdateDraw(func() {
				ui.showMessageBox("Chart saved to " + path)
			})
		}
	}
}
