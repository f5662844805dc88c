package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesPrivateRegistry(t *testing.T) {
	// Two instances with the same namespace must not collide.
	a := New("passcheck")
	b := New("passcheck")

	a.Evaluations.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Evaluations))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Evaluations))
}

func TestSnapshot(t *testing.T) {
	m := New("passcheck")

	m.Evaluations.Add(3)
	m.StrongVerdicts.Inc()
	m.RuleFailures.WithLabelValues("length").Add(2)
	m.RuleFailures.WithLabelValues("digit").Inc()
	m.EvaluationDuration.Observe(0.0001)

	s, err := m.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, 3, s.Evaluations)
	assert.Equal(t, 1, s.Strong)
	assert.Equal(t, map[string]int{"length": 2, "digit": 1}, s.RuleFailures)
}

func TestSnapshotWithoutNamespace(t *testing.T) {
	m := New("")
	m.Evaluations.Inc()

	s, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Evaluations)
	assert.Empty(t, s.RuleFailures)
}
