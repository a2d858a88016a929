// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across pipeline stages.
package httputil

import (
	"net/http"
	"time"
)

// userAgentTransport stamps every outgoing request with the configured
// client identifier before delegating to the wrapped RoundTripper. arXiv
// asks automated clients to identify themselves with a contact address;
// routing both the feed query and document downloads through this transport
// keeps the header from being forgotten at a call site.
type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(clone)
}

// NewClient returns an HTTP client with the given per-request timeout that
// sends userAgent on every request. Requests are issued exactly once; no
// layer of the pipeline retries.
func NewClient(timeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			agent: userAgent,
			base:  http.DefaultTransport,
		},
	}
}
