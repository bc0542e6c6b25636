package trading

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantOK     bool
		wantLen    int
		wantStatus int
		wantReason string
	}{
		{
			name:       "success envelope",
			statusCode: http.StatusOK,
			body:       `{"status":200,"response":[{"id":"1","guide_price":1.5,"tradable":true}]}`,
			wantOK:     true,
			wantLen:    1,
		},
		{
			name:       "empty response",
			statusCode: http.StatusOK,
			body:       `{"status":200}`,
			wantOK:     true,
			wantLen:    0,
		},
		{
			name:       "failure reported in envelope",
			statusCode: http.StatusOK,
			body:       `{"status":400,"message":"Invalid trade link"}`,
			wantStatus: http.StatusBadRequest,
			wantReason: "Invalid trade link",
		},
		{
			name:       "http error with envelope",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"status":503,"message":"Bots offline"}`,
			wantStatus: http.StatusServiceUnavailable,
			wantReason: "Bots offline",
		},
		{
			name:       "http error without body",
			statusCode: http.StatusBadGateway,
			body:       ``,
			wantStatus: http.StatusBadGateway,
			wantReason: "Bad Gateway",
		},
		{
			name:       "malformed payload",
			statusCode: http.StatusOK,
			body:       `{"status":200,"response":"oops"}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := decode[[]Item](tt.statusCode, []byte(tt.body))
			assert.Equal(t, tt.wantOK, result.OK())

			items, err := result.Unwrap()
			if tt.wantOK {
				assert.NoError(t, err)
				assert.Len(t, items, tt.wantLen)
				return
			}

			assert.ErrorIs(t, err, ErrExternalService)
			var failure *Failure
			if assert.True(t, errors.As(err, &failure)) {
				assert.Equal(t, tt.wantStatus, failure.Status)
				if tt.wantReason != "" {
					assert.Equal(t, tt.wantReason, failure.Reason)
				}
			}
		})
	}
}

func TestResult(t *testing.T) {
	ok := Success(42)
	v, err := ok.Unwrap()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	failed := Fail[int](http.StatusConflict, "busy")
	v, err = failed.Unwrap()
	assert.Zero(t, v)
	assert.EqualError(t, err, "trading service responded 409: busy")
}
