// Package network provides a pre-configured HTTP client shared by every upstream collaborator.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// The crawl is strictly sequential, so the pool limits matter less than the
// timeouts: a hung remote call stalls the whole run until these fire.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with conservative pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
