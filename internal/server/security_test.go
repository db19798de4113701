package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector(RateLimitRequests, RateLimitWindow)
	handler := AuthMiddleware(apiKey, detector)(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/state", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/state", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/state", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 2, detector.failedAuthByIP["192.0.2.1"], "httptest requests come from 192.0.2.1")
}

func TestAuthMiddleware_DisabledWithoutKey(t *testing.T) {
	handler := AuthMiddleware("", NewSuspiciousActivityDetector(10, time.Minute))(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/farm/expand", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector(3, time.Minute)
	now := time.Unix(1_700_000_000, 0)
	detector.now = func() time.Time { return now }
	detector.windowStart = now
	handler := RateLimitMiddleware(detector)(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/state", nil)
	req.RemoteAddr = "192.168.1.100:1234"
	serve := func() int {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve())

	other := httptest.NewRequest("GET", "/api/v1/state", nil)
	other.RemoteAddr = "127.0.0.1:9999"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limits are per IP")

	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, serve(), "window reset")
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest("POST", "/", stringsReader("0123456789abcdef"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
