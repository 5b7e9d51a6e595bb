package middlewarectx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/logger"
)

func TestRateLimitMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	request := func(remote string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = remote
		return req
	}

	t.Run("allows requests within burst", func(t *testing.T) {
		h := RateLimitMiddleware(logger.Discard(), 1, 3)(ok)
		for range 3 {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, request("10.0.0.1:5000"))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("blocks requests exceeding burst", func(t *testing.T) {
		h := RateLimitMiddleware(logger.Discard(), 0.001, 1)(ok)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, request("10.0.0.1:5000"))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		h.ServeHTTP(w, request("10.0.0.1:5001"))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"too many requests"}`, w.Body.String())
	})

	t.Run("limits clients independently", func(t *testing.T) {
		h := RateLimitMiddleware(logger.Discard(), 0.001, 1)(ok)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, request("10.0.0.1:5000"))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		h.ServeHTTP(w, request("10.0.0.2:5000"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLimiterSet_SweepsIdleClients(t *testing.T) {
	start := time.Now()
	set := &limiterSet{rps: 1, burst: 1, clients: map[string]*clientLimiter{}, lastSweep: start}

	assert.True(t, set.allow("a", start))
	assert.True(t, set.allow("b", start.Add(idleLimiterTTL/2)))
	assert.Len(t, set.clients, 2)

	assert.True(t, set.allow("c", start.Add(idleLimiterTTL+time.Minute)))
	assert.NotContains(t, set.clients, "a")
	assert.Contains(t, set.clients, "b")
	assert.Contains(t, set.clients, "c")
}

func TestRealIP_ForwardedHeaderAndLimiter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	request := func(forwarded string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		req.Header.Set("X-Forwarded-For", forwarded)
		return req
	}

	tests := []struct {
		name       string
		trustProxy bool
		wantSecond int
	}{
		{name: "untrusted header does not reset limit", trustProxy: false, wantSecond: http.StatusTooManyRequests},
		{name: "trusted proxy limits per forwarded client", trustProxy: true, wantSecond: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RealIP(tt.trustProxy)(RateLimitMiddleware(logger.Discard(), 0.001, 1)(ok))

			first := httptest.NewRecorder()
			h.ServeHTTP(first, request("203.0.113.1"))
			assert.Equal(t, http.StatusOK, first.Code)

			second := httptest.NewRecorder()
			h.ServeHTTP(second, request("203.0.113.2"))
			assert.Equal(t, tt.wantSecond, second.Code)
		})
	}
}
