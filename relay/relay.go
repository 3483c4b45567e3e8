package relay

import (
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"
)

// DefaultConnectTimeout bounds the TCP connect to an upstream.
const DefaultConnectTimeout = 15 * time.Second

// AbortedError reports an upstream failure after the response started.
// Nothing more can be written; the connection has to be torn down.
var AbortedError = errors.New("aborted: upstream failed mid-response")

// HTTPRelay copies a request to a target and streams the response back.
// One httputil.ReverseProxy is built per call so the transport error can
// be handed to the caller instead of written to the client.
type HTTPRelay struct {
	FlushInterval time.Duration
	transport     http.RoundTripper
}

func New(connectTimeout, flushInterval time.Duration) *HTTPRelay {
	if connectTimeout == 0 {
		connectTimeout = DefaultConnectTimeout
	}
	return &HTTPRelay{
		FlushInterval: flushInterval,
		transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   connectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Relay forwards req to target, rewriting the outbound URL and host.
// Inbound context cancellation propagates to the outbound call. Returns
// AbortedError when the upstream failed mid-response.
func (h *HTTPRelay) Relay(rw http.ResponseWriter, req *http.Request, target *url.URL) (err error) {
	var relayErr error
	proxy := &httputil.ReverseProxy{
		Director: func(outreq *http.Request) {
			outreq.URL = target
			outreq.Host = target.Host
			if _, ok := outreq.Header["User-Agent"]; !ok {
				// keep the transport from injecting a default
				outreq.Header.Set("User-Agent", "")
			}
		},
		Transport:     h.transport,
		FlushInterval: h.FlushInterval,
		ErrorHandler: func(_ http.ResponseWriter, _ *http.Request, handlerErr error) {
			relayErr = handlerErr
		},
	}

	defer func() {
		if p := recover(); p != nil {
			if p != http.ErrAbortHandler {
				panic(p)
			}
			err = AbortedError
		}
	}()

	proxy.ServeHTTP(rw, req)
	return relayErr
}
