// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

func secondsToMinAndSec(seconds int64) (int, int) {
	minutes := seconds / 60
	remainingSeconds := seconds % 60
	return int(minutes), int(remainingSeconds)
}

func iSecondsToMinAndSec(seconds int) (int, int) {
	return secondsToMinAndSec(int64(seconds))
}
