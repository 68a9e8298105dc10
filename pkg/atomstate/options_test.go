package atomstate

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/atomstate/pkg/atomstate/observability"
)

func TestDefaultOptions(t *testing.T) {
	cfg := defaultOptions[int]()

	assert.Equal(t, slog.Default(), cfg.logger)
	assert.Equal(t, observability.NoopMetrics{}, cfg.metrics)
	assert.Equal(t, observability.NoopSpanManager{}, cfg.spans)
	assert.Nil(t, cfg.onError)
	assert.False(t, cfg.equalSet)
}

func TestWithMetrics_NilIgnored(t *testing.T) {
	cfg := defaultOptions[int]()
	WithMetrics[int](nil)(&cfg)
	assert.Equal(t, observability.NoopMetrics{}, cfg.metrics)
}

func TestWithTracing_NilIgnored(t *testing.T) {
	cfg := defaultOptions[int]()
	WithTracing[int](nil)(&cfg)
	assert.Equal(t, observability.NoopSpanManager{}, cfg.spans)
}

func TestWithEqual_MarksExplicit(t *testing.T) {
	cfg := defaultOptions[int]()
	WithEqual[int](nil)(&cfg)

	assert.True(t, cfg.equalSet)
	assert.Nil(t, cfg.equal)
}

func TestNew_EqualResolution(t *testing.T) {
	// Comparable type: suppression on by default.
	ints := New(0)
	require.NotNil(t, ints.equal)
	assert.True(t, ints.equal(1, 1))

	// Non-comparable type: no suppression.
	slices := New([]int{})
	assert.Nil(t, slices.equal)

	// Explicit nil disables suppression even for comparable types.
	disabled := New(0, WithEqual[int](nil))
	assert.Nil(t, disabled.equal)
}

func TestNew_GeneratedID(t *testing.T) {
	a := New(0)
	assert.True(t, strings.HasPrefix(a.id, "atom-"))
	assert.Equal(t, a.id, a.name, "name defaults to instance id")

	b := New(0)
	assert.NotEqual(t, a.id, b.id)
}
