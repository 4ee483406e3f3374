package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrintError(t *testing.T) {
	l := Init()
	l.PrintError("LogSong", errors.New("connection refused"))
	assert.Equal(t, "Error(LogSong) -> connection refused", <-l.Prints)
}

func TestPrintf(t *testing.T) {
	l := Init()
	l.Printf("Logged song ID: %s", "abc123")
	assert.Equal(t, "Logged song ID: abc123", <-l.Prints)
}

func TestDrain(t *testing.T) {
	l := Init()
	l.Print("first")
	l.Print("second")
	close(l.Prints)

	var buf bytes.Buffer
	l.Drain(&buf, make(chan struct{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.True(t, strings.HasSuffix(lines[0], ") first"))
		assert.True(t, strings.HasSuffix(lines[1], ") second"))
	}
}

func TestStamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 13, 4, 5, 0, time.Local)
	assert.Equal(t, "(13:04:05) hello", Stamp(ts, "hello"))
}
