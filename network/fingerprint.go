package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/livelink-cli/livelink/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// FingerprintTransport sends https requests over TLS connections carrying
// Chrome's Client Hello. HTTP/2 is tried first; when that fails the request is
// repeated over HTTP/1.1. Plain http requests only use the HTTP/1.1 path.
type FingerprintTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

// NewFingerprintTransport returns a transport whose dials time out after timeout.
func NewFingerprintTransport(timeout time.Duration) *FingerprintTransport {
	h1 := newTransport()
	h1.ForceAttemptHTTP2 = false
	h1.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLS(ctx, network, addr, timeout, []string{"http/1.1"})
	}

	return &FingerprintTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, timeout, nil)
			},
		},
		h1: h1,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *FingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" || !replayable(req) {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	if req.Context().Err() != nil {
		return nil, err
	}

	log.Debugf("h2 request to %s failed, retrying over http/1.1: %s", req.URL.Host, err)
	return t.h1.RoundTrip(req.Clone(req.Context()))
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody
}

// dialTLS creates a TLS connection mimicking Chrome 120's fingerprint.
// Without protocols both h2 and http/1.1 are advertised.
func dialTLS(ctx context.Context, network, addr string, timeout time.Duration, protocols []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protocols,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
