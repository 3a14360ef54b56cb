package main

import (
	"encoding/json"
	"esewabridge/internal/ratelimiter"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRequiresBasicAuth(t *testing.T) {
	ta := newTestApplication(t)

	tests := []struct {
		name     string
		user     string
		pass     string
		noHeader bool
		want     int
	}{
		{name: "no header", noHeader: true, want: http.StatusUnauthorized},
		{name: "wrong password", user: "admin", pass: "nope", want: http.StatusUnauthorized},
		{name: "wrong user", user: "root", pass: "secret", want: http.StatusUnauthorized},
		{name: "valid", user: "admin", pass: "secret", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
			if !tt.noHeader {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rr := ta.do(req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestHealthBody(t *testing.T) {
	ta := newTestApplication(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.SetBasicAuth("admin", "secret")
	rr := ta.do(req)
	require.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Data struct {
			Status   string   `json:"status"`
			Env      string   `json:"env"`
			Version  string   `json:"version"`
			Gateways []string `json:"gateways"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "ok", res.Data.Status)
	assert.Equal(t, "test", res.Data.Env)
	assert.Equal(t, version, res.Data.Version)
	assert.Equal(t, []string{"esewa"}, res.Data.Gateways)
}

func TestBasicAuthRejectsWhenUnconfigured(t *testing.T) {
	ta := newTestApplication(t)
	ta.config.auth.basic = basicConfig{}

	req := httptest.NewRequest(http.MethodGet, "/v1/debug/vars", nil)
	req.SetBasicAuth("", "")
	rr := ta.do(req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	ta := newTestApplication(t)
	limiter := ratelimiter.NewFixedWindowLimiter(1, time.Minute)
	defer limiter.Stop()

	ta.rateLimiter = limiter
	ta.config.rateLimiter = ratelimiter.Config{RequestsPerTimeFrame: 1, TimeFrame: time.Minute, Enabled: true}

	rr := ta.do(httptest.NewRequest(http.MethodGet, "/esewa-failure", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ta.do(httptest.NewRequest(http.MethodGet, "/esewa-failure", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestRateLimiterIgnoresSourcePort(t *testing.T) {
	ta := newTestApplication(t)
	limiter := ratelimiter.NewFixedWindowLimiter(1, time.Minute)
	defer limiter.Stop()

	ta.rateLimiter = limiter
	ta.config.rateLimiter = ratelimiter.Config{RequestsPerTimeFrame: 1, TimeFrame: time.Minute, Enabled: true}

	want := []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}
	for i, port := range []string{"50000", "50001", "50002"} {
		req := httptest.NewRequest(http.MethodGet, "/esewa-failure", nil)
		req.RemoteAddr = "10.0.0.1:" + port
		rr := ta.do(req)
		assert.Equal(t, want[i], rr.Code, "port %s", port)
	}

	// a different host still has its own window
	req := httptest.NewRequest(http.MethodGet, "/esewa-failure", nil)
	req.RemoteAddr = "10.0.0.2:50000"
	assert.Equal(t, http.StatusOK, ta.do(req).Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{remoteAddr: "10.0.0.1:50000", want: "10.0.0.1"},
		{remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{remoteAddr: "10.0.0.1", want: "10.0.0.1"},
		{remoteAddr: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	ta := newTestApplication(t)
	limiter := ratelimiter.NewFixedWindowLimiter(1, time.Minute)
	defer limiter.Stop()

	ta.rateLimiter = limiter

	for i := 0; i < 3; i++ {
		rr := ta.do(httptest.NewRequest(http.MethodGet, "/esewa-failure", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestSwaggerDoc(t *testing.T) {
	ta := newTestApplication(t)

	rr := ta.do(httptest.NewRequest(http.MethodGet, "/v1/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/start-esewa-payment")
	assert.Contains(t, rr.Body.String(), "/esewa-success")
}
