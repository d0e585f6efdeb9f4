package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGeocode(t *testing.T) {
	before := testutil.ToFloat64(geocodeRequests.WithLabelValues(GeocodeUnparsable))

	RecordGeocode(GeocodeUnparsable)

	assert.Equal(t, before+1, testutil.ToFloat64(geocodeRequests.WithLabelValues(GeocodeUnparsable)))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveQuery("query", "loc_info", false, 20*time.Millisecond)
	ObserveHTTPRequest(http.MethodGet, "/loc/info/dates", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "locinsight_db_query_duration_seconds"))
	assert.True(t, strings.Contains(body, `route="/loc/info/dates"`))
}
