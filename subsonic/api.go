// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package subsonic

import (
	"encoding/json"
	"strconv"
	"strings"
)

// response structs
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Entity struct {
	Id          string `json:"id"`
	IsDirectory bool   `json:"isDir"`
	Parent      string `json:"parent"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	Duration    int    `json:"duration"`
	Track       int    `json:"track"`
	Path        string `json:"path"`
}

// Return the title if present, otherwise fallback to the file path
func (e Entity) GetSongTitle() string {
	if e.Title != "" {
		return e.Title
	}

	if e.Path == "" || strings.HasSuffix(e.Path, "/") {
		return ""
	}

	lastSlash := strings.LastIndex(e.Path, "/")
	if lastSlash == -1 {
		return e.Path
	}
	return e.Path[lastSlash+1:]
}

type Entities []Entity

type Playlists struct {
	Playlists []Playlist `json:"playlist"`
}

type Playlist struct {
	Id        Id       `json:"id"`
	Name      string   `json:"name"`
	SongCount int      `json:"songCount"`
	Entries   Entities `json:"entry"`
}

type Response struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	Type          string    `json:"type"`
	ServerVersion string    `json:"serverVersion"`
	OpenSubsonic  bool      `json:"openSubsonic"`
	Playlists     Playlists `json:"playlists"`
	Playlist      Playlist  `json:"playlist"`
	Error         Error     `json:"error"`
}

type responseWrapper struct {
	Response Response `json:"subsonic-response"`
}

// Id accepts both string and numeric ids; some servers send playlist ids as
// numbers.
type Id string

func (si *Id) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, (*string)(si))
	}
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return err
	}
	*si = Id(strconv.Itoa(i))
	return nil
}
