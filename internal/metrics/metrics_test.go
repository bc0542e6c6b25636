package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		healthFn HealthFunc
		wantCode int
		wantBody string
	}{
		{
			name:     "healthy",
			healthFn: func(context.Context) error { return nil },
			wantCode: http.StatusOK,
			wantBody: "ok",
		},
		{
			name:     "database down",
			healthFn: func(context.Context) error { return errors.New("no connection") },
			wantCode: http.StatusServiceUnavailable,
			wantBody: "unhealthy: no connection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Health(tt.healthFn)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandlerExposesCounters(t *testing.T) {
	Bets.WithLabelValues("placed").Inc()
	FloatCache.WithLabelValues("hit").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `skinbet_bets_total{result="placed"}`)
	assert.Contains(t, rec.Body.String(), `skinbet_float_cache_requests_total{result="hit"}`)
}
