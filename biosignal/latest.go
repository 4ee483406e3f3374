// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package biosignal

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

// Latest keeps the most recent snapshot for PNG export. The socket goroutine
// writes it through Update; exporters read it from anywhere.
type Latest struct {
	mu   sync.Mutex
	last Snapshot
}

var _ Chart = (*Latest)(nil)

func (h *Latest) Update(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = s
}

func (h *Latest) Get() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// WriteFile renders the latest snapshot to path. Nothing is written when
// rendering fails.
func (h *Latest) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, h.Get()); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// SnapshotPath returns name if set, otherwise a timestamped file name in the
// working directory.
func SnapshotPath(name string, t time.Time) string {
	if name != "" {
		return name
	}
	return t.Local().Format("focusflow-20060102-150405.png")
}
