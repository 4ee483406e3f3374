// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

// ControlledPlayer is the player surface a desktop remote can drive.
type ControlledPlayer interface {
	IsPaused() (bool, error)
	IsPlaying() (bool, error)

	// Pause toggles between playing and paused.
	Pause() error
	NextTrack() error
	Stop() error

	// SetVolume takes a percentage, clamped to 0..100.
	SetVolume(percentValue int64) error

	// Registers a callback which is invoked when the player transitions to the Paused state.
	OnPaused(cb func())

	// Registers a callback which is invoked when the player transitions to the Stopped state.
	OnStopped(cb func())

	// Registers a callback which is invoked when the player transitions to the Playing state.
	OnPlaying(cb func())

	OnSongChange(func(track TrackInterface))
}

type TrackInterface interface {
	GetArtist() string
	GetTitle() string
	GetDuration() int

	// something like ID != ""
	IsValid() bool
}
