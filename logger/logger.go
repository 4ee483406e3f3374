// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package logger

import (
	"fmt"
	"io"
	"time"
)

// Logger hands formatted lines to whoever drains Prints. In the TUI that is
// the gui event loop feeding the log page; headless runs use Drain.
type Logger struct {
	Prints chan string
}

var _ LoggerInterface = (*Logger)(nil)

func Init() *Logger {
	return &Logger{make(chan string, 100)}
}

func (l *Logger) Print(s string) {
	l.Prints <- s
}

func (l *Logger) Printf(s string, as ...interface{}) {
	l.Prints <- fmt.Sprintf(s, as...)
}

func (l *Logger) PrintError(source string, err error) {
	l.Printf("Error(%s) -> %s", source, err.Error())
}

// Drain copies log lines to w until Prints is closed or done is closed.
// Each line gets the same wall-clock prefix the log page uses.
func (l *Logger) Drain(w io.Writer, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case line, ok := <-l.Prints:
			if !ok {
				return
			}
			fmt.Fprintln(w, Stamp(time.Now(), line))
		}
	}
}

// Stamp prefixes line with the local time of t.
func Stamp(t time.Time, line string) string {
	return t.Local().Format("(15:04:05) ") + line
}
