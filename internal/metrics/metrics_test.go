package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/employee-directory/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	appMetrics := metrics.NewMetrics(reg)

	require.NotNil(t, appMetrics)
	assert.InDelta(t, 0, testutil.ToFloat64(appMetrics.Refreshes.WithLabelValues("success")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(appMetrics.Refreshes.WithLabelValues("failure")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "directory_refreshes_total")
	assert.Contains(t, names, "directory_records")
	assert.Contains(t, names, "directory_last_successful_refresh_timestamp")
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		_ = metrics.NewMetrics(reg)
	})
}
