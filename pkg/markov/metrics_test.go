package markov_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/markov"
	"github.com/dmitrymomot/passgen/pkg/randsrc"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	t.Run("nil registerer", func(t *testing.T) {
		t.Parallel()
		_, err := markov.NewMetrics(nil)
		assert.ErrorIs(t, err, markov.ErrNilRegisterer)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		t.Parallel()
		reg := prometheus.NewRegistry()

		_, err := markov.NewMetrics(reg)
		require.NoError(t, err)

		_, err = markov.NewMetrics(reg)
		var already prometheus.AlreadyRegisteredError
		assert.ErrorAs(t, err, &already)
	})

	t.Run("series exist before first use", func(t *testing.T) {
		t.Parallel()
		reg := prometheus.NewRegistry()
		_, err := markov.NewMetrics(reg)
		require.NoError(t, err)

		n, err := testutil.GatherAndCount(reg, "passgen_markov_generated_total")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestMetricsRecordPaths(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := markov.NewMetrics(reg)
	require.NoError(t, err)

	primary := newGenerator(t, markov.Build([]string{"banana"}), markov.Request{Length: 6}, markov.WithMetrics(m))
	fallback := newGenerator(t, markov.Build(nil), markov.Request{Length: 6}, markov.WithMetrics(m))

	src := randsrc.FromUint64(50)
	for range 3 {
		primary.Generate(src)
	}
	for range 2 {
		fallback.Generate(src)
	}

	const expected = `
# HELP passgen_markov_attempts Primary attempts consumed per generated value.
# TYPE passgen_markov_attempts histogram
passgen_markov_attempts_bucket{le="1"} 5
passgen_markov_attempts_bucket{le="2"} 5
passgen_markov_attempts_bucket{le="5"} 5
passgen_markov_attempts_bucket{le="10"} 5
passgen_markov_attempts_bucket{le="25"} 5
passgen_markov_attempts_bucket{le="50"} 5
passgen_markov_attempts_bucket{le="100"} 5
passgen_markov_attempts_bucket{le="+Inf"} 5
passgen_markov_attempts_sum 3
passgen_markov_attempts_count 5
# HELP passgen_markov_generated_total Generated values by code path.
# TYPE passgen_markov_generated_total counter
passgen_markov_generated_total{path="fallback"} 2
passgen_markov_generated_total{path="primary"} 3
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"passgen_markov_generated_total", "passgen_markov_attempts")
	assert.NoError(t, err)
}

func TestMetricsExhaustedAttempts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := markov.NewMetrics(reg)
	require.NoError(t, err)

	g := newGenerator(t, markov.Build([]string{"bcdfg"}), markov.Request{Length: 8}, markov.WithMetrics(m))
	g.Generate(randsrc.FromUint64(51))

	const expected = `
# HELP passgen_markov_generated_total Generated values by code path.
# TYPE passgen_markov_generated_total counter
passgen_markov_generated_total{path="fallback"} 1
passgen_markov_generated_total{path="primary"} 0
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "passgen_markov_generated_total")
	assert.NoError(t, err)

	sum, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range sum {
		if mf.GetName() == "passgen_markov_attempts" {
			assert.InDelta(t, float64(markov.MaxAttempts), mf.GetMetric()[0].GetHistogram().GetSampleSum(), 1e-9)
		}
	}
}
