package biosignal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPath(t *testing.T) {
	assert.Equal(t, "chart.png", SnapshotPath("chart.png", time.Now()))

	ts := time.Date(2024, 3, 1, 9, 8, 7, 0, time.Local)
	assert.Equal(t, "focusflow-20240301-090807.png", SnapshotPath("", ts))
}

func TestLatestWriteFile(t *testing.T) {
	h := &Latest{}
	dir := t.TempDir()

	// no samples yet
	empty := filepath.Join(dir, "empty.png")
	assert.Error(t, h.WriteFile(empty))
	assert.NoFileExists(t, empty)

	buffers := NewBuffers(10)
	buffers.Append(Sample{Alpha: 1, Beta: 2, Theta: 3, Delta: 4, Gamma: 5, Concentration: 60}, "10:00:00")
	buffers.Append(Sample{Alpha: 2, Beta: 1, Theta: 3, Delta: 4, Gamma: 5, Concentration: 65}, "10:00:01")
	h.Update(buffers.Snapshot())

	path := filepath.Join(dir, "chart.png")
	require.NoError(t, h.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestLatestKeepsLatest(t *testing.T) {
	h := &Latest{}
	buffers := NewBuffers(2)
	for i := 0; i < 3; i++ {
		buffers.Append(Sample{Alpha: float64(i)}, "t")
		h.Update(buffers.Snapshot())
	}
	assert.Equal(t, 2, h.Get().Len())
	last, ok := h.Get().Last()
	assert.True(t, ok)
	assert.Equal(t, 2.0, last.Alpha)
}
