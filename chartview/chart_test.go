package chartview

import (
	"math"
	"testing"

	"github.com/neuralllamas/focusflow/biosignal"
	"github.com/stretchr/testify/assert"
)

func TestSeriesRange(t *testing.T) {
	var s biosignal.Snapshot
	_, _, ok := seriesRange(s)
	assert.False(t, ok)

	s.Series[biosignal.Alpha] = []float64{1, math.NaN(), -2}
	s.Series[biosignal.Concentration] = []float64{70, math.Inf(1), 10}
	lo, hi, ok := seriesRange(s)
	assert.True(t, ok)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 70.0, hi)
}

func TestScaleRow(t *testing.T) {
	assert.Equal(t, 9, scaleRow(0, 0, 10, 10))
	assert.Equal(t, 0, scaleRow(10, 0, 10, 10))
	assert.Equal(t, 4, scaleRow(5, 0, 10, 10))

	// flat range
	assert.Equal(t, 5, scaleRow(3, 3, 3, 10))
	// out of range values are clamped
	assert.Equal(t, 0, scaleRow(20, 0, 10, 10))
	assert.Equal(t, 9, scaleRow(-5, 0, 10, 10))
	assert.Equal(t, 0, scaleRow(5, 0, 10, 1))
}

func TestVisibleStart(t *testing.T) {
	assert.Equal(t, 0, visibleStart(10, 80))
	assert.Equal(t, 0, visibleStart(80, 80))
	assert.Equal(t, 20, visibleStart(100, 80))
}

func TestLegendEntry(t *testing.T) {
	assert.Equal(t, "Alpha", legendEntry(biosignal.Alpha, biosignal.Sample{}, false))
	assert.Equal(t, "Gamma 0.90", legendEntry(biosignal.Gamma, biosignal.Sample{Gamma: 0.9}, true))
	assert.Equal(t, "Beta NaN", legendEntry(biosignal.Beta, biosignal.Sample{Beta: math.NaN()}, true))
}
