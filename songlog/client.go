// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package songlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const DefaultPath = "/log_song"

// Payload is the JSON body of a log_song request. IsPaused is only sent for
// pause events; resume and play events leave it out entirely.
type Payload struct {
	SongID   string `json:"song_id"`
	IsPaused *bool  `json:"isPaused,omitempty"`
}

// NewPayload builds a payload for songID. The pause flag is included only if
// one is passed.
func NewPayload(songID string, isPaused ...bool) Payload {
	p := Payload{SongID: songID}
	if len(isPaused) > 0 {
		paused := isPaused[0]
		p.IsPaused = &paused
	}
	return p
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code       int
	StatusText string
}

func (e *StatusError) Error() string {
	return e.StatusText
}

// Client posts playback events to the song logging server.
type Client struct {
	Host       string
	Path       string
	HTTPClient *http.Client
}

func NewClient(host string) *Client {
	return &Client{
		Host:       strings.TrimSuffix(host, "/"),
		Path:       DefaultPath,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) endpoint() string {
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.Host + path
}

// LogSong makes a single POST attempt. The response body is discarded.
func (c *Client) LogSong(ctx context.Context, payload Payload) error {
	caller := "LogSong"
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("[%s] failed to marshal payload: %w", caller, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("[%s] failed to build request: %w", caller, err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("[%s] failed to make POST request: %w", caller, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Code: res.StatusCode, StatusText: statusText(res)}
	}
	return nil
}

// statusText mirrors what a browser exposes as Response.statusText: the
// reason phrase without the numeric code.
func statusText(res *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(res.Status, fmt.Sprintf("%d", res.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(res.StatusCode)
}
