// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"errors"
	"math"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
	"github.com/neuralllamas/focusflow/logger"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
	mprisBusName     = "org.mpris.MediaPlayer2.focusflow"
)

// MPRIS PlaybackStatus values
const (
	StatusPlaying = "Playing"
	StatusPaused  = "Paused"
	StatusStopped = "Stopped"
)

type MprisPlayer struct {
	dbus   *dbus.Conn
	props  *prop.Properties
	player ControlledPlayer
	logger logger.LoggerInterface
}

// RegisterMprisPlayer exports player on the session bus so desktop media
// keys can drive it. Play/pause coming in over D-Bus goes through the same
// player calls as the keyboard, so it reaches the song logger too.
func RegisterMprisPlayer(player ControlledPlayer, logger_ logger.LoggerInterface) (mpp *MprisPlayer, err error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return
	}

	mpp = &MprisPlayer{
		dbus:   conn,
		player: player,
		logger: logger_,
	}

	err = conn.ExportAll(mpp, mprisPath, mprisPlayerIface)
	if err != nil {
		return
	}

	var mprisPlayer = map[string]*prop.Prop{
		"CanControl":     {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoNext":      {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPause":       {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPlay":        {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanSeek":        {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoPrevious":  {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Metadata":       {Value: songMetadata(nil), Writable: false, Emit: prop.EmitTrue, Callback: nil},
		"Volume":         {Value: float64(1.0), Writable: true, Emit: prop.EmitTrue, Callback: mpp.volumeChange},
		"PlaybackStatus": {Value: StatusStopped, Writable: false, Emit: prop.EmitTrue, Callback: nil},
	}

	var mediaPlayer = map[string]*prop.Prop{
		"CanQuit":             {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanRaise":            {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"HasTrackList":        {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Identity":            {Value: "focusflow", Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedUriSchemes": {Value: []string{}, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedMimeTypes":  {Value: []string{}, Writable: false, Emit: prop.EmitFalse, Callback: nil},
	}

	mpp.props, err = prop.Export(
		conn,
		mprisPath,
		map[string]map[string]*prop.Prop{
			"org.mpris.MediaPlayer2": mediaPlayer,
			mprisPlayerIface:         mprisPlayer,
		},
	)
	if err != nil {
		return
	}

	n := &introspect.Node{
		Name: mprisPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       mprisPlayerIface,
				Methods:    introspect.Methods(mpp),
				Properties: mpp.props.Introspection(mprisPlayerIface),
			},
		},
	}
	err = conn.Export(introspect.NewIntrospectable(n), mprisPath, "org.freedesktop.DBus.Introspectable")
	if err != nil {
		return
	}

	reply, err := conn.RequestName(mprisBusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		err = errors.New("name already owned")
		return
	}

	player.OnPlaying(func() { mpp.setStatus(StatusPlaying) })
	player.OnPaused(func() { mpp.setStatus(StatusPaused) })
	player.OnStopped(func() { mpp.setStatus(StatusStopped) })
	player.OnSongChange(mpp.OnSongChange)
	return
}

func (m *MprisPlayer) Close() {
	if err := m.dbus.Close(); err != nil {
		m.logger.PrintError("mpp Close", err)
	}
}

// Mandatory functions
func (m *MprisPlayer) Stop() *dbus.Error {
	if err := m.player.Stop(); err != nil {
		m.logger.PrintError("mpp Stop", err)
	}
	return nil
}

func (m *MprisPlayer) Next() *dbus.Error {
	if err := m.player.NextTrack(); err != nil {
		m.logger.PrintError("mpp NextTrack", err)
	}
	return nil
}

// set paused
func (m *MprisPlayer) Pause() *dbus.Error {
	if paused, err := m.player.IsPaused(); err != nil {
		m.logger.PrintError("mpp IsPaused", err)
	} else if !paused {
		if err = m.player.Pause(); err != nil {
			m.logger.PrintError("mpp Pause", err)
		}
	}
	return nil
}

// set playing
func (m *MprisPlayer) Play() *dbus.Error {
	if playing, err := m.player.IsPlaying(); err != nil {
		m.logger.PrintError("mpp IsPlaying", err)
	} else if !playing {
		if err = m.player.Pause(); err != nil {
			m.logger.PrintError("mpp Pause", err)
		}
	}
	return nil
}

func (m *MprisPlayer) PlayPause() *dbus.Error {
	if err := m.player.Pause(); err != nil {
		m.logger.PrintError("mpp Pause", err)
	}
	return nil
}

func (m *MprisPlayer) Previous() *dbus.Error {
	return nil
}

func (m *MprisPlayer) volumeChange(c *prop.Change) *dbus.Error {
	fVol, ok := c.Value.(float64)
	if !ok {
		return prop.ErrInvalidArg
	}

	percentVol := volumePercent(fVol)
	if err := m.player.SetVolume(percentVol); err != nil {
		m.logger.PrintError("volumeChange", err)
	} else {
		m.logger.Printf("mpris: adjust volume %f -> %d%%", fVol, percentVol)
	}
	return nil
}

func (m *MprisPlayer) setStatus(status string) {
	m.props.SetMust(mprisPlayerIface, "PlaybackStatus", status)
}

// OnSongChange publishes the new track's metadata.
func (m *MprisPlayer) OnSongChange(currentSong TrackInterface) {
	m.props.SetMust(mprisPlayerIface, "Metadata", songMetadata(currentSong))
}

func volumePercent(fVol float64) int64 {
	return int64(math.Round(fVol * 100))
}

func songMetadata(track TrackInterface) map[string]interface{} {
	metadata := map[string]interface{}{
		"mpris:trackid":     dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack"),
		"mpris:length":      int64(0),
		"xesam:album":       "",
		"xesam:albumArtist": "",
		"xesam:artist":      []string{},
		"xesam:composer":    []string{},
		"xesam:genre":       []string{},
		"xesam:title":       "",
		"xesam:trackNumber": int32(0),
	}
	if track == nil || !track.IsValid() {
		return metadata
	}

	metadata["mpris:trackid"] = dbus.ObjectPath("/org/mpris/MediaPlayer2/focusflow/track")
	metadata["mpris:length"] = int64(track.GetDuration()) * 1000000 // microseconds
	metadata["xesam:artist"] = []string{track.GetArtist()}
	metadata["xesam:title"] = track.GetTitle()
	return metadata
}
