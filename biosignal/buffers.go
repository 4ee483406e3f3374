// Copyright 2024 The FocusFlow Authors
// SPDX-License-Identifier: GPL-3.0-only

package biosignal

// Buffers holds one ordered sequence per channel plus the shared timestamp
// labels. All seven sequences always have the same length, and that length
// never exceeds MaxSamples once Append returns.
//
// Buffers is not safe for concurrent use; it belongs to the goroutine that
// reads the socket.
type Buffers struct {
	MaxSamples int

	series [NumChannels][]float64
	labels []string
}

func NewBuffers(maxSamples int) *Buffers {
	return &Buffers{MaxSamples: maxSamples}
}

// Append adds one sample and its label, then drops the oldest entry of every
// sequence while there are more than MaxSamples. A MaxSamples of zero or less
// keeps everything.
func (b *Buffers) Append(sample Sample, label string) {
	b.labels = append(b.labels, label)
	for _, c := range Channels {
		b.series[c] = append(b.series[c], sample.Value(c))
	}

	if b.MaxSamples <= 0 {
		return
	}
	for len(b.labels) > b.MaxSamples {
		b.labels = b.labels[1:]
		for _, c := range Channels {
			b.series[c] = b.series[c][1:]
		}
	}
}

func (b *Buffers) Len() int {
	return len(b.labels)
}

// Series returns the live slice for channel c. Callers must not keep it
// across an Append.
func (b *Buffers) Series(c Channel) []float64 {
	return b.series[c]
}

func (b *Buffers) Labels() []string {
	return b.labels
}

// Snapshot copies the current contents.
func (b *Buffers) Snapshot() Snapshot {
	s := Snapshot{Labels: append([]string(nil), b.labels...)}
	for _, c := range Channels {
		s.Series[c] = append([]float64(nil), b.series[c]...)
	}
	return s
}

// Snapshot is a copy of Buffers handed to a Chart.
type Snapshot struct {
	Labels []string
	Series [NumChannels][]float64
}

func (s Snapshot) Len() int {
	return len(s.Labels)
}

// Last returns the newest sample, or false if the snapshot is empty.
func (s Snapshot) Last() (Sample, bool) {
	n := len(s.Labels)
	if n == 0 {
		return Sample{}, false
	}
	var sample Sample
	for _, c := range Channels {
		sample.set(c, s.Series[c][n-1])
	}
	return sample, true
}
