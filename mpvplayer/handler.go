// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	"github.com/supersonic-app/go-mpv"
)

func (p *Player) EventLoop() {
	if err := p.instance.ObserveProperty(0, "playback-time", mpv.FORMAT_INT64); err != nil {
		p.logger.PrintError("Observe1", err)
	}
	if err := p.instance.ObserveProperty(0, "duration", mpv.FORMAT_INT64); err != nil {
		p.logger.PrintError("Observe2", err)
	}
	if err := p.instance.ObserveProperty(0, "volume", mpv.FORMAT_INT64); err != nil {
		p.logger.PrintError("Observe3", err)
	}

	for evt := range p.mpvEvents {
		if evt == nil {
			// quit signal
			break
		}

		switch evt.Event_Id {
		case mpv.EVENT_PROPERTY_CHANGE:
			// one of our observed properties changed; re-read all three
			statusData := StatusData{}
			var err error
			if statusData.Position, err = p.getPropertyInt64("playback-time"); err != nil {
				statusData.Position = 0
			}
			if statusData.Duration, err = p.getPropertyInt64("duration"); err != nil {
				statusData.Duration = 0
			}
			if statusData.Volume, err = p.getPropertyInt64("volume"); err != nil {
				statusData.Volume = 0
			}
			p.sendGuiDataEvent(EventStatus, statusData)

		case mpv.EVENT_END_FILE:
			p.handleEndFile()

		case mpv.EVENT_START_FILE:
			p.replaceInProgress.Store(false)
			p.stopped.Store(false)

			currentSong := p.currentSong()
			if paused, err := p.IsPaused(); err != nil {
				p.logger.PrintError("mpv.EventLoop: IsPaused", err)
			} else if !paused {
				p.sendGuiDataEvent(EventPlaying, currentSong)
			} else {
				p.sendGuiDataEvent(EventPaused, currentSong)
			}

		case mpv.EVENT_IDLE, mpv.EVENT_NONE:
			continue

		default:
			p.logger.Printf("mpv.EventLoop: unhandled event id %v", evt.Event_Id)
		}
	}
}

// handleEndFile advances the queue when a track finishes on its own.
func (p *Player) handleEndFile() {
	// we don't want to update anything if we're in the process of replacing the current track
	if p.replaceInProgress.Load() {
		return
	}

	if p.stopped.Load() {
		// this is feedback for a user-requested stop
		p.logger.Print("mpv.EventLoop: mpv stopped")
		p.sendGuiEvent(EventStopped)
		return
	}

	if next, ok := p.advanceQueue(); ok {
		if err := p.instance.Command([]string{"loadfile", next.Uri}); err != nil {
			p.logger.PrintError("mpv.EventLoop: load next", err)
		}
		return
	}

	// no remaining tracks
	p.logger.Print("mpv.EventLoop: stopping (auto)")
	p.stopped.Store(true)
	p.sendGuiEvent(EventStopped)
}

func (p *Player) sendGuiEvent(typ UiEventType) {
	p.sendGuiDataEvent(typ, nil)
}

func (p *Player) sendGuiDataEvent(typ UiEventType, data interface{}) {
	if p.eventConsumer != nil {
		p.eventConsumer.SendEvent(UiEvent{
			Type: typ,
			Data: data,
		})
	}

	p.sendRemoteEvent(typ, data)
}

func (p *Player) sendRemoteEvent(typ UiEventType, data interface{}) {
	switch typ {
	case EventStopped:
		for _, cb := range p.cbOnStopped {
			cb()
		}

	case EventPlaying, EventUnpaused:
		if track, ok := data.(QueueItem); ok {
			p.sendSongChange(track)
			p.sendPlaybackUpdate(track, false)
		}
		for _, cb := range p.cbOnPlaying {
			cb()
		}

	case EventPaused:
		if track, ok := data.(QueueItem); ok {
			p.sendSongChange(track)
			p.sendPlaybackUpdate(track, true)
		}
		for _, cb := range p.cbOnPaused {
			cb()
		}
	}
}

func (p *Player) sendSongChange(track QueueItem) {
	for _, cb := range p.cbOnSongChange {
		cb(&track)
	}
}

func (p *Player) sendPlaybackUpdate(track QueueItem, paused bool) {
	if !track.IsValid() {
		return
	}
	for _, cb := range p.playbackListeners {
		cb(track.Id, paused)
	}
}
