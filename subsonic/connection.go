// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package subsonic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/neuralllamas/focusflow/logger"
)

type Connection struct {
	Username      string
	Password      string
	Host          string
	PlaintextAuth bool

	clientName    string
	clientVersion string

	logger logger.LoggerInterface
}

func Init(logger logger.LoggerInterface) *Connection {
	return &Connection{
		clientName:    "example",
		clientVersion: "1.8.0",

		logger: logger,
	}
}

func (s *Connection) SetClientInfo(name, version string) {
	s.clientName = name
	s.clientVersion = version
}

func defaultQuery(connection *Connection) url.Values {
	query := url.Values{}
	if connection.PlaintextAuth {
		query.Set("p", connection.Password)
	} else {
		token, salt := authToken(connection.Password)
		query.Set("t", token)
		query.Set("s", salt)
	}
	query.Set("u", connection.Username)
	query.Set("v", connection.clientVersion)
	query.Set("c", connection.clientName)
	query.Set("f", "json")

	return query
}

// GetServerInfo pings the server and returns the response, which contains basic
// information about the server
// https://opensubsonic.netlify.app/docs/endpoints/ping/
func (connection *Connection) GetServerInfo() (Response, error) {
	query := defaultQuery(connection)
	requestUrl := connection.Host + "/rest/ping" + "?" + query.Encode()
	return connection.GetResponse("GetServerInfo", requestUrl)
}

// GetPlaylists lists the user's playlists without their entries.
func (connection *Connection) GetPlaylists() (Playlists, error) {
	query := defaultQuery(connection)
	requestUrl := connection.Host + "/rest/getPlaylists" + "?" + query.Encode()
	resp, err := connection.GetResponse("GetPlaylists", requestUrl)
	return resp.Playlists, err
}

func (connection *Connection) GetPlaylist(id string) (Playlist, error) {
	query := defaultQuery(connection)
	query.Set("id", id)

	requestUrl := connection.Host + "/rest/getPlaylist" + "?" + query.Encode()
	resp, err := connection.GetResponse("GetPlaylist", requestUrl)
	return resp.Playlist, err
}

// FindPlaylist returns the first playlist whose name matches name,
// ignoring case, with its entries loaded.
func (connection *Connection) FindPlaylist(name string) (Playlist, error) {
	playlists, err := connection.GetPlaylists()
	if err != nil {
		return Playlist{}, err
	}
	for _, pl := range playlists.Playlists {
		if strings.EqualFold(pl.Name, name) {
			if connection.logger != nil {
				connection.logger.Printf("FindPlaylist: using playlist %s (%s)", pl.Name, pl.Id)
			}
			return connection.GetPlaylist(string(pl.Id))
		}
	}
	return Playlist{}, fmt.Errorf("playlist '%s' not found", name)
}

// note that this function does not make a request, it just formats the play url
// to pass to mpv
func (connection *Connection) GetPlayUrl(entity Entity) string {
	// we don't want to call stream on a directory
	if entity.IsDirectory {
		return ""
	}

	query := defaultQuery(connection)
	query.Set("id", entity.Id)
	return connection.Host + "/rest/stream" + "?" + query.Encode()
}

func (connection *Connection) GetResponse(caller, requestUrl string) (Response, error) {
	zero := Response{}
	res, err := http.Get(requestUrl)
	if err != nil {
		return zero, fmt.Errorf("[%s] failed to make GET request: %v", caller, err)
	}

	if res.Body != nil {
		defer res.Body.Close()
	} else {
		return zero, fmt.Errorf("[%s] response body is nil", caller)
	}

	if res.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("[%s] unexpected status code: %d, status: %s", caller, res.StatusCode, res.Status)
	}

	responseBody, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		return zero, fmt.Errorf("[%s] failed to read response body: %v", caller, readErr)
	}

	var decodedBody responseWrapper
	err = json.Unmarshal(responseBody, &decodedBody)
	if err != nil {
		return zero, fmt.Errorf("[%s] failed to unmarshal response body: %v", caller, err)
	}

	if decodedBody.Response.Status == "failed" {
		return decodedBody.Response, fmt.Errorf("[%s] server error %d: %s", caller,
			decodedBody.Response.Error.Code, decodedBody.Response.Error.Message)
	}

	return decodedBody.Response, nil
}
