package httpx

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/pkg/metrics"
)

// Transport decorates outbound requests with the current bearer token and a
// correlation id, and records per-call metrics. It never retries.
type Transport struct {
	service string
	tokens  *TokenHolder
	base    http.RoundTripper
}

// NewTransport returns a Transport for the named service ("auth" or "admin").
// A nil base falls back to http.DefaultTransport.
func NewTransport(service string, tokens *TokenHolder, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{service: service, tokens: tokens, base: base}
}

// RoundTrip clones the request before mutating headers, per the
// http.RoundTripper contract.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if token := t.tokens.Token(); token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	if clone.Header.Get("X-Request-ID") == "" {
		clone.Header.Set("X-Request-ID", uuid.NewString())
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(clone)
	metrics.APIRequestDuration.WithLabelValues(t.service).Observe(time.Since(start).Seconds())
	metrics.APIRequestsTotal.WithLabelValues(t.service, req.Method, outcome(resp, err)).Inc()
	return resp, err
}

func outcome(resp *http.Response, err error) string {
	switch {
	case err != nil:
		return "transport_error"
	case resp.StatusCode >= 500:
		return "server_error"
	case resp.StatusCode >= 400:
		return "client_error"
	default:
		return "ok"
	}
}
