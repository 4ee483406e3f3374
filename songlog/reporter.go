// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package songlog

import (
	"context"
	"errors"
	"sync"

	"github.com/neuralllamas/focusflow/logger"
)

// PlaybackUpdate is what the player reports on every play/pause transition.
type PlaybackUpdate struct {
	TrackID  string
	IsPaused bool
}

// Sender is the part of Client the Reporter needs.
type Sender interface {
	LogSong(ctx context.Context, payload Payload) error
}

// Reporter turns playback updates into log_song requests. Requests are
// fire-and-forget: HandleUpdate never waits, and nothing orders the
// responses of successive requests.
type Reporter struct {
	sender Sender
	logger logger.LoggerInterface
	wg     sync.WaitGroup
}

func NewReporter(sender Sender, logger logger.LoggerInterface) *Reporter {
	return &Reporter{
		sender: sender,
		logger: logger,
	}
}

// HandleUpdate is registered as the player's playback listener.
func (r *Reporter) HandleUpdate(u PlaybackUpdate) {
	if u.IsPaused {
		r.logger.Printf("Paused song: %s", u.TrackID)
		r.logCurrentSong(u.TrackID, u.IsPaused)
	} else {
		// resume events carry no pause flag; the server treats a missing
		// flag as "playing"
		r.logger.Printf("Playing song: %s", u.TrackID)
		r.logCurrentSong(u.TrackID)
	}
}

func (r *Reporter) logCurrentSong(songID string, isPaused ...bool) {
	payload := NewPayload(songID, isPaused...)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.Send(context.Background(), payload)
	}()
}

// Send performs one request synchronously and reports the outcome.
func (r *Reporter) Send(ctx context.Context, payload Payload) {
	err := r.sender.LogSong(ctx, payload)
	var statusErr *StatusError
	switch {
	case err == nil:
		r.logger.Printf("Logged song ID: %s", payload.SongID)
	case errors.As(err, &statusErr):
		r.logger.Printf("Failed to log song: %s", statusErr.StatusText)
	default:
		r.logger.Printf("Error logging song: %v", err)
	}
}

// Close waits for in-flight requests to finish. It does not cancel them.
func (r *Reporter) Close() {
	r.wg.Wait()
}
