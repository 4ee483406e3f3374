// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package biosignal

import "github.com/gdamore/tcell/v2"

// Channel is one biosignal series. Channels are listed in display order.
type Channel int

const (
	Alpha Channel = iota
	Beta
	Theta
	Delta
	Gamma
	Concentration

	NumChannels = 6
)

var Channels = [NumChannels]Channel{Alpha, Beta, Theta, Delta, Gamma, Concentration}

var channelInfo = [NumChannels]struct {
	key   string
	label string
	color tcell.Color
}{
	{"alpha", "Alpha", tcell.ColorRed},
	{"beta", "Beta", tcell.ColorBlue},
	{"theta", "Theta", tcell.ColorGreen},
	{"delta", "Delta", tcell.ColorPurple},
	{"gamma", "Gamma", tcell.ColorOrange},
	{"concentration", "Concentration", tcell.ColorWhite},
}

// Key is the JSON field name of the channel.
func (c Channel) Key() string {
	return channelInfo[c].key
}

func (c Channel) String() string {
	return channelInfo[c].label
}

// Color is the series color in the terminal chart.
func (c Channel) Color() tcell.Color {
	return channelInfo[c].color
}

// Sample is one message from the biosignal producer.
type Sample struct {
	Alpha         float64
	Beta          float64
	Theta         float64
	Delta         float64
	Gamma         float64
	Concentration float64
}

// Value returns the reading for channel c.
func (s Sample) Value(c Channel) float64 {
	switch c {
	case Alpha:
		return s.Alpha
	case Beta:
		return s.Beta
	case Theta:
		return s.Theta
	case Delta:
		return s.Delta
	case Gamma:
		return s.Gamma
	case Concentration:
		return s.Concentration
	}
	return 0
}

func (s *Sample) set(c Channel, v float64) {
	switch c {
	case Alpha:
		s.Alpha = v
	case Beta:
		s.Beta = v
	case Theta:
		s.Theta = v
	case Delta:
		s.Delta = v
	case Gamma:
		s.Gamma = v
	case Concentration:
		s.Concentration = v
	}
}
