// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/neuralllamas/focusflow/logger"
	"github.com/neuralllamas/focusflow/remote"
	"github.com/supersonic-app/go-mpv"
)

type PlayerQueue []QueueItem

type Player struct {
	instance      *mpv.Mpv
	mpvEvents     chan *mpv.Event
	eventConsumer EventConsumer
	logger        logger.LoggerInterface

	queueLock sync.Mutex
	queue     PlayerQueue

	// written by both the caller's goroutine and EventLoop
	replaceInProgress atomic.Bool
	stopped           atomic.Bool

	// callbacks; registered before EventLoop starts
	playbackListeners []PlaybackListener
	cbOnPaused        []func()
	cbOnStopped       []func()
	cbOnPlaying       []func()
	cbOnSongChange    []func(remote.TrackInterface)
}

var _ remote.ControlledPlayer = (*Player)(nil)

func NewPlayer(logger logger.LoggerInterface) (player *Player, err error) {
	mpvInstance := mpv.Create()

	if err = mpvInstance.SetOptionString("audio-display", "no"); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}
	if err = mpvInstance.SetOptionString("video", "no"); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}

	if err = mpvInstance.Initialize(); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}

	player = &Player{
		instance:      mpvInstance,
		mpvEvents:     make(chan *mpv.Event),
		eventConsumer: nil, // must be set by calling RegisterEventConsumer()
		queue:         make([]QueueItem, 0),
		logger:        logger,
	}
	player.stopped.Store(true)

	go player.mpvEngineEventHandler(mpvInstance)
	return
}

func (p *Player) mpvEngineEventHandler(instance *mpv.Mpv) {
	for {
		evt := instance.WaitEvent(1)
		p.mpvEvents <- evt
	}
}

func (p *Player) Quit() {
	p.mpvEvents <- nil
	p.instance.TerminateDestroy()
}

func (p *Player) RegisterEventConsumer(consumer EventConsumer) {
	p.eventConsumer = consumer
}

// AddPlaybackListener registers cb for play, resume and pause transitions.
// It is called from the player's event goroutine.
func (p *Player) AddPlaybackListener(cb PlaybackListener) {
	p.playbackListeners = append(p.playbackListeners, cb)
}

func (p *Player) OnPaused(cb func()) {
	p.cbOnPaused = append(p.cbOnPaused, cb)
}

func (p *Player) OnStopped(cb func()) {
	p.cbOnStopped = append(p.cbOnStopped, cb)
}

func (p *Player) OnPlaying(cb func()) {
	p.cbOnPlaying = append(p.cbOnPlaying, cb)
}

func (p *Player) OnSongChange(cb func(track remote.TrackInterface)) {
	p.cbOnSongChange = append(p.cbOnSongChange, cb)
}

// SetQueue replaces the queue with items and starts the first one.
func (p *Player) SetQueue(items []QueueItem) error {
	p.queueLock.Lock()
	p.queue = append(PlayerQueue(nil), items...)
	p.queueLock.Unlock()

	if len(items) == 0 {
		return p.Stop()
	}
	p.replaceInProgress.Store(true)
	if ip, e := p.IsPaused(); ip && e == nil {
		if err := p.Pause(); err != nil {
			p.logger.PrintError("Pause", err)
		}
	}
	return p.instance.Command([]string{"loadfile", items[0].Uri})
}

func (p *Player) AddToQueue(item *QueueItem) {
	p.queueLock.Lock()
	defer p.queueLock.Unlock()
	p.queue = append(p.queue, *item)
}

func (p *Player) GetQueueCopy() PlayerQueue {
	p.queueLock.Lock()
	defer p.queueLock.Unlock()
	cpy := make(PlayerQueue, len(p.queue))
	copy(cpy, p.queue)
	return cpy
}

func (p *Player) currentSong() QueueItem {
	p.queueLock.Lock()
	defer p.queueLock.Unlock()
	if len(p.queue) > 0 {
		return p.queue[0]
	}
	return QueueItem{}
}

// NextTrack drops the current track and starts the next one, or stops if
// the queue runs out.
func (p *Player) NextTrack() error {
	next, ok := p.advanceQueue()
	if !ok {
		return p.Stop()
	}

	if loaded, err := p.IsSongLoaded(); err != nil {
		p.logger.PrintError("NextTrack", err)
	} else if loaded {
		p.replaceInProgress.Store(true)
		if err := p.instance.Command([]string{"stop"}); err != nil {
			p.logger.PrintError("temporaryStop", err)
		}
	}
	return p.instance.Command([]string{"loadfile", next.Uri})
}

// advanceQueue drops the current track and returns the new head, if any.
func (p *Player) advanceQueue() (QueueItem, bool) {
	p.queueLock.Lock()
	defer p.queueLock.Unlock()
	if len(p.queue) > 0 {
		p.queue = p.queue[1:]
	}
	if len(p.queue) == 0 {
		return QueueItem{}, false
	}
	return p.queue[0], true
}

func (p *Player) Stop() error {
	p.logger.Printf("stopping (user)")
	p.stopped.Store(true)
	return p.instance.Command([]string{"stop"})
}

func (p *Player) IsSongLoaded() (bool, error) {
	idle, err := p.getPropertyBool("idle-active")
	return !idle, err
}

func (p *Player) IsPaused() (bool, error) {
	return p.getPropertyBool("pause")
}

func (p *Player) IsPlaying() (playing bool, err error) {
	idle, err := p.getPropertyBool("idle-active")
	if err != nil {
		return false, err
	}
	paused, err := p.getPropertyBool("pause")
	if err != nil {
		return false, err
	}
	return !idle && !paused, nil
}

// Pause toggles playing music
// If a song is playing, it is paused. If a song is paused, playing resumes.
// If stopped, the song starts playing.
func (p *Player) Pause() (err error) {
	loaded, err := p.IsSongLoaded()
	if err != nil {
		return
	}
	paused, err := p.IsPaused()
	if err != nil {
		return
	}

	currentSong := p.currentSong()

	if loaded && !p.stopped.Load() {
		// toggle pause if not stopped
		err = p.instance.Command([]string{"cycle", "pause"})
		if err != nil {
			p.logger.PrintError("cycle pause", err)
			return
		}
		paused = !paused

		if paused {
			p.sendGuiDataEvent(EventPaused, currentSong)
		} else {
			p.sendGuiDataEvent(EventUnpaused, currentSong)
		}
		return
	}

	if !currentSong.IsValid() {
		p.stopped.Store(true)
		p.sendGuiEvent(EventStopped)
		return
	}

	err = p.instance.Command([]string{"loadfile", currentSong.Uri})
	if err != nil {
		p.logger.PrintError("loadfile", err)
		return
	}

	if p.stopped.Load() {
		p.stopped.Store(false)
		if err = p.instance.SetProperty("pause", mpv.FORMAT_FLAG, false); err != nil {
			p.logger.PrintError("setprop pause", err)
		}
		// mpv will send start file event which also sends the gui event
	} else {
		p.sendGuiDataEvent(EventUnpaused, currentSong)
	}
	return
}

func (p *Player) SetVolume(percentValue int64) error {
	if percentValue > 100 {
		percentValue = 100
	} else if percentValue < 0 {
		percentValue = 0
	}

	return p.instance.SetProperty("volume", mpv.FORMAT_INT64, percentValue)
}

func (p *Player) AdjustVolume(increment int64) error {
	volume, err := p.getPropertyInt64("volume")
	if err != nil {
		return err
	}
	return p.SetVolume(volume + increment)
}

// accessed from background context
func (p *Player) GetPlayingTrack() (QueueItem, error) {
	paused, err := p.IsPaused()
	if err != nil {
		return QueueItem{}, err
	}
	if paused {
		return QueueItem{}, errors.New("not playing")
	}

	currentSong := p.currentSong()
	if !currentSong.IsValid() {
		return QueueItem{}, errors.New("queue empty")
	}
	return currentSong, nil
}
