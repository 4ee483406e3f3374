// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// runHeadless plays the queue and records the signal without a terminal UI
// until SIGINT/SIGTERM or ctx is cancelled.
func runHeadless(ctx context.Context, sess *session) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	go sess.logger.Drain(os.Stderr, done)

	sess.startSignal(ctx, nil)

	if sess.player != nil {
		go sess.player.EventLoop()
		defer sess.player.Quit()

		if len(sess.player.GetQueueCopy()) > 0 {
			// nobody is there to press play
			if err := sess.player.Pause(); err != nil {
				return err
			}
		}
	}

	<-ctx.Done()
	sess.logger.Print("shutting down")
	return nil
}
