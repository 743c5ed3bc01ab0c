package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAreIsolatedPerInstance(t *testing.T) {
	a := New()
	b := New()

	a.PostsCreated.Inc()
	a.PostsCreated.Inc()
	a.RequestsRejected.WithLabelValues("validation").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(a.PostsCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.PostsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.RequestsRejected.WithLabelValues("validation")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.PostsStored.Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "blogposts_posts_stored 3")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
