package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()

	a.CollectionSubmissions.WithLabelValues("create", "success").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CollectionSubmissions.WithLabelValues("create", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CollectionSubmissions.WithLabelValues("create", "success")))
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.NotificationsShown.WithLabelValues("error").Inc()
	m.RequestDuration.WithLabelValues("GET", "/v1/users", "200").Observe(0.01)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics/prometheus", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `notifications_shown_total{category="error"} 1`))
	assert.True(t, strings.Contains(body, `http_request_duration_seconds_count{method="GET",route="/v1/users",status="200"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
