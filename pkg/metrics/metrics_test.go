package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_IVRCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("salon_test", reg)

	m.CallStarted()
	m.CallStarted()
	m.DigitHandled("select_service")
	m.CallEnded("confirmed")
	m.ActiveCalls(1)
	m.CollaboratorFailed("hold")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.IVRCallsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IVRDigits.WithLabelValues("select_service")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IVROutcomes.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IVRActiveCalls))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IVRCollaboratorErrors.WithLabelValues("hold")))
}

func TestMetrics_HTTPAndDB(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("salon_test", reg)

	m.ObserveHTTP("GET", "/api/v1/bookings", "200", 15*time.Millisecond)
	m.ObserveDB("query", 2*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/bookings", "200")))

	n, err := testutil.GatherAndCount(reg, "salon_test_http_request_duration_seconds", "salon_test_db_query_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
