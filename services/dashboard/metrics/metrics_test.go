package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.ObserveUpload(ResultOK, 10, 3)
	c.ObserveUpload(ResultMalformed, 0, 0)
	c.ObserveRecompute(5 * time.Millisecond)
	c.SetActiveSessions(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Uploads.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Uploads.WithLabelValues(ResultMalformed)))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.RowsLoaded))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.RowsDropped))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ActiveSessions))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `dashboard_uploads_total{result="ok"} 1`)
	assert.Contains(t, string(body), "dashboard_recompute_duration_seconds_count 1")
}
