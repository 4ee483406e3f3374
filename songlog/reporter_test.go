package songlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Print(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *recordingLogger) Printf(s string, as ...interface{}) {
	l.Print(fmt.Sprintf(s, as...))
}

func (l *recordingLogger) PrintError(source string, err error) {
	l.Printf("Error(%s) -> %s", source, err.Error())
}

func (l *recordingLogger) matching(prefix string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, line := range l.lines {
		if strings.HasPrefix(line, prefix) {
			out = append(out, line)
		}
	}
	return out
}

type fakeSender struct {
	mu       sync.Mutex
	payloads []Payload
	err      error
}

func (f *fakeSender) LogSong(_ context.Context, payload Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return f.err
}

func TestHandleUpdatePauseFlag(t *testing.T) {
	testCases := []struct {
		name     string
		update   PlaybackUpdate
		expected string
	}{
		{
			name:     "paused sends isPaused true",
			update:   PlaybackUpdate{TrackID: "abc123", IsPaused: true},
			expected: `{"song_id":"abc123","isPaused":true}`,
		},
		{
			// the flag is absent for play/resume, not false
			name:     "playing omits isPaused",
			update:   PlaybackUpdate{TrackID: "abc123", IsPaused: false},
			expected: `{"song_id":"abc123"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{}
			log := &recordingLogger{}
			r := NewReporter(sender, log)

			r.HandleUpdate(tc.update)
			r.Close()

			require.Len(t, sender.payloads, 1)
			b, err := json.Marshal(sender.payloads[0])
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(b))
		})
	}
}

func TestSendOutcomeLogging(t *testing.T) {
	t.Run("success logs the track id and no error", func(t *testing.T) {
		log := &recordingLogger{}
		r := NewReporter(&fakeSender{}, log)
		r.Send(context.Background(), NewPayload("abc123"))

		assert.Equal(t, []string{"Logged song ID: abc123"}, log.matching("Logged"))
		assert.Empty(t, log.matching("Failed"))
		assert.Empty(t, log.matching("Error"))
	})

	t.Run("status failure logs the status text once", func(t *testing.T) {
		log := &recordingLogger{}
		sender := &fakeSender{err: &StatusError{Code: http.StatusBadRequest, StatusText: "Bad Request"}}
		r := NewReporter(sender, log)
		r.Send(context.Background(), NewPayload("abc123"))

		assert.Equal(t, []string{"Failed to log song: Bad Request"}, log.matching("Failed"))
		assert.Empty(t, log.matching("Logged"))
	})

	t.Run("transport failure logs the underlying error", func(t *testing.T) {
		log := &recordingLogger{}
		sender := &fakeSender{err: errors.New("dial tcp: connection refused")}
		r := NewReporter(sender, log)
		r.Send(context.Background(), NewPayload("abc123"))

		assert.Equal(t, []string{"Error logging song: dial tcp: connection refused"}, log.matching("Error logging"))
		assert.Empty(t, log.matching("Logged"))
	})
}

func TestReporterAgainstServer(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusAccepted, http.StatusNotFound, http.StatusBadGateway} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := newLogServer(t, status, nil)
			log := &recordingLogger{}
			r := NewReporter(NewClient(server.URL), log)

			r.HandleUpdate(PlaybackUpdate{TrackID: "abc123", IsPaused: true})
			r.Close()

			failures := log.matching("Failed to log song")
			if status >= 200 && status < 300 {
				assert.Empty(t, failures)
				assert.Len(t, log.matching("Logged song ID: abc123"), 1)
			} else {
				assert.Equal(t, []string{"Failed to log song: " + http.StatusText(status)}, failures)
			}
		})
	}
}

func TestHandleUpdateIsOneRequestPerEvent(t *testing.T) {
	sender := &fakeSender{}
	r := NewReporter(sender, &recordingLogger{})

	for i := 0; i < 10; i++ {
		r.HandleUpdate(PlaybackUpdate{TrackID: fmt.Sprintf("track-%d", i), IsPaused: i%2 == 0})
	}
	r.Close()

	assert.Len(t, sender.payloads, 10)
}
