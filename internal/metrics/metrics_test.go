package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveRequest("get_job", 200)
	m.ObserveRequest("get_job", 200)
	m.ObserveRequest("list_users", 503)
	m.ObservePoll("error")
	m.ObserveJob("completed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BackendRequests.WithLabelValues("get_job", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendRequests.WithLabelValues("list_users", "503")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Polls.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Jobs.WithLabelValues("completed")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("x", 200)
		m.ObservePoll("ok")
		m.ObserveJob("failed")
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveJob("failed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `studio_jobs_total{status="failed"} 1`)
}
