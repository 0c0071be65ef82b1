package stat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/midbel/chartkit/stat"
)

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.Equal(t, 1.0, stat.Quantile(sorted, 0))
	assert.Equal(t, 2.5, stat.Quantile(sorted, 0.5))
	assert.Equal(t, 4.0, stat.Quantile(sorted, 1), "upper rank out of range returns the last value")
	assert.InDelta(t, 1.75, stat.Quantile(sorted, 0.25), 1e-12)
	assert.Equal(t, 9.0, stat.Quantile([]float64{9}, 0.3))
	assert.True(t, math.IsNaN(stat.Quantile(nil, 0.5)))
}

func TestMeanStdDev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, stat.Mean(xs), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7), stat.StdDev(xs), 1e-12, "n-1 denominator")
	assert.True(t, math.IsNaN(stat.Mean(nil)))
	assert.True(t, math.IsNaN(stat.StdDev([]float64{1})))
}

func TestSorted(t *testing.T) {
	xs := []float64{3, 1, 2}
	assert.Equal(t, []float64{1, 2, 3}, stat.Sorted(xs))
	assert.Equal(t, []float64{3, 1, 2}, xs, "input is left untouched")
}

func TestSummary(t *testing.T) {
	s := stat.Summary([]float64{100, 3, 1, 4, 2})

	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.Equal(t, 2.0, s.Q1)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 4.0, s.Q3)
	assert.Equal(t, 1.0, s.LowerWhisker)
	assert.Equal(t, 4.0, s.UpperWhisker, "outlier is left out of the whisker")
	assert.InDelta(t, 22.0, s.Mean, 1e-12)

	assert.Equal(t, stat.BoxSummary{}, stat.Summary(nil))
	assert.Equal(t, 0.0, stat.Summary([]float64{4}).StdDev)
}
