package forwarder_test

import (
	"context"
	"errors"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"code.cloudfoundry.org/tenantrouter/forwarder"
	"code.cloudfoundry.org/tenantrouter/forwarder/fakes"
	"code.cloudfoundry.org/tenantrouter/models"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ = Describe("Executor", func() {
	var (
		executor  *forwarder.Executor
		fakeRelay *fakes.Relay
		recorder  *httptest.ResponseRecorder
		req       *http.Request
		dest      models.Destination
	)

	BeforeEach(func() {
		fakeRelay = &fakes.Relay{}
		executor = &forwarder.Executor{
			Relay: fakeRelay,
		}
		recorder = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "http://gateway.example.com/api/product/items/42?system=tenant-a&page=2", nil)
		dest = models.Destination{
			ID:      "tenant-a",
			Address: "http://product-a.example.com:8080",
		}
	})

	It("builds the target from the address, remainder path and verbatim query", func() {
		_, err := executor.Forward(recorder, req, dest, "/items/42")
		Expect(err).NotTo(HaveOccurred())

		Expect(fakeRelay.RelayCallCount()).To(Equal(1))
		_, relayReq, target := fakeRelay.RelayArgsForCall(0)
		Expect(target.String()).To(Equal("http://product-a.example.com:8080/items/42?system=tenant-a&page=2"))
		Expect(relayReq).To(BeIdenticalTo(req))
	})

	It("builds a bare target for an empty remainder and query", func() {
		req = httptest.NewRequest("GET", "http://gateway.example.com/api/product", nil)

		_, err := executor.Forward(recorder, req, dest, "")
		Expect(err).NotTo(HaveOccurred())

		_, _, target := fakeRelay.RelayArgsForCall(0)
		Expect(target.String()).To(Equal("http://product-a.example.com:8080"))
	})

	It("returns the verbatim upstream status on success", func() {
		fakeRelay.RelayStub = func(rw http.ResponseWriter, req *http.Request, target *url.URL) error {
			rw.WriteHeader(http.StatusTeapot)
			rw.Write([]byte("short and stout"))
			return nil
		}

		outcome, err := executor.Forward(recorder, req, dest, "/items/42")
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome.StatusCode).To(Equal(http.StatusTeapot))
		Expect(outcome.ResponseStarted).To(BeTrue())
		Expect(recorder.Body.String()).To(Equal("short and stout"))
	})

	Describe("failure classification", func() {
		It("classifies a canceled inbound context as RequestCanceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			req = req.WithContext(ctx)
			cancel()
			fakeRelay.RelayReturns(errors.New("context canceled"))

			outcome, err := executor.Forward(recorder, req, dest, "/items/42")
			Expect(outcome.ResponseStarted).To(BeFalse())

			var forwardErr *forwarder.ForwardError
			Expect(errors.As(err, &forwardErr)).To(BeTrue())
			Expect(forwardErr.Kind).To(Equal(forwarder.RequestCanceled))
		})

		It("classifies a wrapped context.Canceled as RequestCanceled", func() {
			fakeRelay.RelayReturns(&url.Error{Op: "Get", URL: "http://x", Err: context.Canceled})

			_, err := executor.Forward(recorder, req, dest, "/items/42")

			var forwardErr *forwarder.ForwardError
			Expect(errors.As(err, &forwardErr)).To(BeTrue())
			Expect(forwardErr.Kind).To(Equal(forwarder.RequestCanceled))
		})

		It("classifies timeouts as Timeout", func() {
			fakeRelay.RelayReturns(&net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}})

			_, err := executor.Forward(recorder, req, dest, "/items/42")

			var forwardErr *forwarder.ForwardError
			Expect(errors.As(err, &forwardErr)).To(BeTrue())
			Expect(forwardErr.Kind).To(Equal(forwarder.Timeout))
		})

		It("classifies dial failures as ConnectionFailed", func() {
			fakeRelay.RelayReturns(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")})

			_, err := executor.Forward(recorder, req, dest, "/items/42")

			var forwardErr *forwarder.ForwardError
			Expect(errors.As(err, &forwardErr)).To(BeTrue())
			Expect(forwardErr.Kind).To(Equal(forwarder.ConnectionFailed))
		})

		It("classifies an oversized request body as BodyTooLarge", func() {
			fakeRelay.RelayReturns(errors.New("http: request body too large"))

			_, err := executor.Forward(recorder, req, dest, "/items/42")

			var forwardErr *forwarder.ForwardError
			Expect(errors.As(err, &forwardErr)).To(BeTrue())
			Expect(forwardErr.Kind).To(Equal(forwarder.BodyTooLarge))
		})

		It("classifies anything else as UpstreamProtocolError", func() {
			fakeRelay.RelayReturns(errors.New("malformed HTTP response"))

			_, err := executor.Forward(recorder, req, dest, "/items/42")

			var forwardErr *forwarder.ForwardError
			Expect(errors.As(err, &forwardErr)).To(BeTrue())
			Expect(forwardErr.Kind).To(Equal(forwarder.UpstreamProtocolError))
			Expect(forwardErr.Unwrap()).To(MatchError("malformed HTTP response"))
		})

		It("reports when the response had already started", func() {
			fakeRelay.RelayStub = func(rw http.ResponseWriter, req *http.Request, target *url.URL) error {
				rw.WriteHeader(http.StatusOK)
				rw.Write([]byte("partial"))
				return errors.New("upstream hung up mid-body")
			}

			outcome, err := executor.Forward(recorder, req, dest, "/items/42")
			Expect(err).To(HaveOccurred())
			Expect(outcome.ResponseStarted).To(BeTrue())
			Expect(outcome.StatusCode).To(Equal(http.StatusOK))
		})
	})

	Describe("request body cap", func() {
		BeforeEach(func() {
			executor.MaxBodyBytes = 8
		})

		It("lets small bodies through", func() {
			req = httptest.NewRequest("POST", "http://gateway.example.com/api/product/items?system=tenant-a",
				strings.NewReader("tiny"))
			fakeRelay.RelayStub = func(rw http.ResponseWriter, req *http.Request, target *url.URL) error {
				body, err := ioutil.ReadAll(req.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(body)).To(Equal("tiny"))
				return nil
			}

			_, err := executor.Forward(recorder, req, dest, "/items")
			Expect(err).NotTo(HaveOccurred())
		})

		It("classifies an overflowing body as BodyTooLarge", func() {
			req = httptest.NewRequest("POST", "http://gateway.example.com/api/product/items?system=tenant-a",
				strings.NewReader("definitely more than eight bytes"))
			fakeRelay.RelayStub = func(rw http.ResponseWriter, req *http.Request, target *url.URL) error {
				_, err := ioutil.ReadAll(req.Body)
				return err
			}

			_, err := executor.Forward(recorder, req, dest, "/items")

			var forwardErr *forwarder.ForwardError
			Expect(errors.As(err, &forwardErr)).To(BeTrue())
			Expect(forwardErr.Kind).To(Equal(forwarder.BodyTooLarge))
		})
	})
})
