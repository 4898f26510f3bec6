// Package http provides the outbound HTTP client used for external API calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for external API calls.
//
// http.DefaultClient carries no timeout, so outbound calls always go through
// this constructor. The transport is set explicitly for connection stability
// and resource management:
//   - Proxy: honors HTTP_PROXY and friends when set
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns: caps idle connections under load
//   - Client.Timeout: whole-request timeout, passed in by the caller
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
