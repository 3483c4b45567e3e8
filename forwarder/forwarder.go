package forwarder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"code.cloudfoundry.org/tenantrouter/models"
)

//go:generate counterfeiter -o fakes/relay.go --fake-name Relay . relay
type relay interface {
	Relay(rw http.ResponseWriter, req *http.Request, target *url.URL) error
}

// ErrorKind classifies a relay failure.
type ErrorKind int

const (
	ConnectionFailed ErrorKind = iota
	Timeout
	RequestCanceled
	UpstreamProtocolError
	BodyTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionFailed:
		return "ConnectionFailed"
	case Timeout:
		return "Timeout"
	case RequestCanceled:
		return "RequestCanceled"
	case UpstreamProtocolError:
		return "UpstreamProtocolError"
	case BodyTooLarge:
		return "BodyTooLarge"
	}
	return "Unknown"
}

// ForwardError carries a relay failure and its classification.
type ForwardError struct {
	Kind  ErrorKind
	Cause error
}

func (e *ForwardError) Error() string {
	return fmt.Sprintf("forward failed (%s): %s", e.Kind, e.Cause)
}

func (e *ForwardError) Unwrap() error {
	return e.Cause
}

// Outcome reports what reached the client. StatusCode is the verbatim
// upstream status once the response started; ResponseStarted tells the
// boundary whether it may still write an error response.
type Outcome struct {
	StatusCode      int
	ResponseStarted bool
}

// Executor drives the relay collaborator with a chosen destination and
// translates relay failures into the ForwardError taxonomy. It does not
// reimplement HTTP transport.
type Executor struct {
	Relay        relay
	MaxBodyBytes int64
}

// Forward relays the request to dest. The target URI is the destination
// address, the remainder path, and the original query string verbatim.
func (e *Executor) Forward(rw http.ResponseWriter, req *http.Request, dest models.Destination, remainderPath string) (Outcome, error) {
	target, err := buildTarget(dest.Address, remainderPath, req.URL.RawQuery)
	if err != nil {
		return Outcome{}, &ForwardError{Kind: UpstreamProtocolError, Cause: err}
	}

	if e.MaxBodyBytes > 0 && req.Body != nil {
		req.Body = http.MaxBytesReader(rw, req.Body, e.MaxBodyBytes)
	}

	recorder := &statusRecorder{ResponseWriter: rw}
	err = e.Relay.Relay(recorder, req, target)
	outcome := Outcome{StatusCode: recorder.status, ResponseStarted: recorder.wroteHeader}
	if err != nil {
		return outcome, &ForwardError{Kind: classify(req, err), Cause: err}
	}

	return outcome, nil
}

func buildTarget(address, remainderPath, rawQuery string) (*url.URL, error) {
	targetStr := address + remainderPath
	if rawQuery != "" {
		targetStr = targetStr + "?" + rawQuery
	}
	target, err := url.Parse(targetStr)
	if err != nil {
		return nil, fmt.Errorf("build target url: %w", err)
	}
	return target, nil
}

func classify(req *http.Request, err error) ErrorKind {
	if req.Context().Err() == context.Canceled || errors.Is(err, context.Canceled) {
		return RequestCanceled
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ConnectionFailed
	}
	if strings.Contains(err.Error(), "request body too large") {
		return BodyTooLarge
	}
	return UpstreamProtocolError
}

// statusRecorder notes whether and what the relay wrote, so a failure
// mid-response can be told apart from one before any bytes went out.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.wroteHeader = true
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.wroteHeader = true
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
