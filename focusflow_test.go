package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/neuralllamas/focusflow/subsonic"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainWithoutTUI(t *testing.T) {
	// Mock osExit to prevent actual exit during test
	exitCalled := false
	osExit = func(code int) {
		exitCalled = true

		if code != 0 {
			// Capture and print the stack trace
			stackBuf := make([]byte, 1024)
			stackSize := runtime.Stack(stackBuf, false)
			stackTrace := string(stackBuf[:stackSize])

			t.Fatalf("Unexpected exit with code: %d\nStack trace:\n%s\n", code, stackTrace)
		}
	}
	headlessMode = true
	testMode = true

	// Restore patches after the test
	defer func() {
		osExit = os.Exit
		headlessMode = false
		testMode = false
	}()

	// Set command-line arguments to trigger the help flag
	os.Args = []string{"cmd", "--config=focusflow-example.toml", "--help"}

	main()

	if !exitCalled {
		t.Fatalf("osExit was not called")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "focusflow.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expectError string
	}{
		{
			name:    "minimal",
			content: "[server]\nhost = \"http://localhost:5000\"\n",
		},
		{
			name:        "missing server host",
			content:     "[signal]\nurl = \"ws://localhost:9999\"\n",
			expectError: "server.host is required",
		},
		{
			name:        "zero max samples",
			content:     "[server]\nhost = \"http://localhost:5000\"\n[signal]\nmax-samples = 0\n",
			expectError: "signal.max-samples must be positive",
		},
		{
			name:        "subsonic without credentials",
			content:     "[server]\nhost = \"http://localhost:5000\"\n[subsonic]\nhost = \"http://music\"\n",
			expectError: "auth.username is required",
		},
		{
			name: "subsonic with credentials",
			content: "[server]\nhost = \"http://localhost:5000\"\n[subsonic]\nhost = \"http://music\"\n" +
				"[auth]\nusername = \"user\"\npassword = \"pass\"\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			path := writeConfig(t, tc.content)
			err := readConfig(&path)

			if tc.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadConfigDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := writeConfig(t, "[server]\nhost = \"http://localhost:5000\"\n")
	require.NoError(t, readConfig(&path))

	assert.Equal(t, "/log_song", viper.GetString("server.log-path"))
	assert.Equal(t, "ws://localhost:8765", viper.GetString("signal.url"))
	assert.Equal(t, 1000, viper.GetInt("signal.max-samples"))
	assert.Equal(t, "npc", viper.GetString("playlist.name"))
	assert.Equal(t, 5, viper.GetInt("playlist.limit"))
}

func TestReadConfigMissingFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "nope.toml")
	err := readConfig(&path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file error")
}

func newSubsonicServer(t *testing.T, entries int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rest/getPlaylists":
			fmt.Fprint(w, `{"subsonic-response":{"status":"ok","playlists":{"playlist":[
				{"id":"1","name":"Chill"},{"id":"2","name":"NPC"}]}}}`)
		case "/rest/getPlaylist":
			assert.Equal(t, "2", r.URL.Query().Get("id"))
			body := `{"subsonic-response":{"status":"ok","playlist":{"id":"2","name":"NPC","entry":[`
			body += `{"id":"dir","isDir":true,"title":"A folder"}`
			for i := 0; i < entries; i++ {
				body += fmt.Sprintf(`,{"id":"s%d","title":"Song %d","artist":"Artist","duration":%d}`, i, i, 60+i)
			}
			body += `]}}}`
			fmt.Fprint(w, body)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLoadPlaylist(t *testing.T) {
	server := newSubsonicServer(t, 8)

	connection := subsonic.Init(nil)
	connection.SetClientInfo(Name, APIVersion)
	connection.Host = server.URL
	connection.Username = "user"
	connection.Password = "pass"

	items, err := loadPlaylist(connection, "npc", 5)
	require.NoError(t, err)
	require.Len(t, items, 5)

	assert.Equal(t, "s0", items[0].Id)
	assert.Equal(t, "Song 0", items[0].Title)
	assert.Equal(t, "Artist", items[0].Artist)
	assert.Equal(t, 60, items[0].Duration)
	assert.Contains(t, items[0].Uri, server.URL+"/rest/stream?")
	assert.Equal(t, "s4", items[4].Id)
}

func TestLoadPlaylistShort(t *testing.T) {
	server := newSubsonicServer(t, 2)

	connection := subsonic.Init(nil)
	connection.Host = server.URL

	items, err := loadPlaylist(connection, "NPC", 5)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLoadPlaylistNotFound(t *testing.T) {
	server := newSubsonicServer(t, 2)

	connection := subsonic.Init(nil)
	connection.Host = server.URL

	_, err := loadPlaylist(connection, "focus", 5)
	assert.EqualError(t, err, "playlist 'focus' not found")
}
