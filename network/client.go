// Package network provides the HTTP clients used to talk to the live platform.
package network

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole request when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// Client is the shared plain HTTP client.
var Client = &http.Client{
	Timeout:   DefaultTimeout,
	Transport: newTransport(),
}

// Options tune a client built by New.
type Options struct {
	Timeout time.Duration
	// Fingerprint makes TLS handshakes look like Chrome's.
	Fingerprint bool
}

// New returns a client configured by options. Without any option set it
// returns the shared Client.
func New(options Options) *http.Client {
	if options.Timeout <= 0 && !options.Fingerprint {
		return Client
	}

	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var transport http.RoundTripper = newTransport()
	if options.Fingerprint {
		transport = NewFingerprintTransport(timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// newTransport initializes a tuned http.Transport.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
