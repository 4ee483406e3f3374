// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

const helpPlayback = `
p     play/pause
P     stop
n     next song
-/=   volume down/volume up
s     save chart snapshot
1/2/3 player/signal/log
Q     quit
`

const helpPageSignal = `
one line per channel:
alpha, beta, theta, delta,
gamma and concentration.
latest values are in the legend.
the chart keeps the newest
signal.max-samples samples.
`

const helpPageLog = `
newest lines at the top,
the last 100 are kept.
`
