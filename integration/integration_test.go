package integration_test

import (
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Integration of the gateway with the registry and upstreams", func() {
	var te *TestEnv

	BeforeEach(func() {
		var err error
		te, err = NewTestEnv()
		Expect(err).NotTo(HaveOccurred())

		te.SetRegistryRoutes(
			registryRoute{
				TenantID:      "tenant-a",
				ProductTarget: te.ProductA.Server.URL,
				OrderTarget:   te.OrderA.Server.URL,
			},
			registryRoute{
				TenantID:      "tenant-b",
				ProductTarget: te.ProductB.Server.URL,
			},
		)
	})

	AfterEach(func() {
		te.Cleanup()
	})

	doRequest := func(method, url, body string, headers map[string]string) (*http.Response, string) {
		var bodyReader *strings.Reader
		if body == "" {
			bodyReader = strings.NewReader("")
		} else {
			bodyReader = strings.NewReader(body)
		}
		request, err := http.NewRequest(method, url, bodyReader)
		Expect(err).NotTo(HaveOccurred())
		for name, value := range headers {
			request.Header.Set(name, value)
		}
		resp, err := http.DefaultClient.Do(request)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		responseBody, err := ioutil.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp, string(responseBody)
	}

	reconcile := func() {
		resp, body := doRequest("POST", te.Admin.URL+"/reconcile", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("version"))
	}

	Specify("dynamic requests reach the tenant's backend with the query intact", func() {
		reconcile()

		resp, body := doRequest("GET", te.Gateway.URL+"/api/product/items/42?system=tenant-a&page=2", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(Equal("hello from product-a"))
		Expect(resp.Header.Get("X-Served-By")).To(Equal("product-a"))
		Expect(resp.Header.Get("X-Correlation-Id")).NotTo(BeEmpty())

		last := te.ProductA.LastRequest()
		Expect(last.Method).To(Equal("GET"))
		Expect(last.Path).To(Equal("/items/42"))
		Expect(last.RawQuery).To(Equal("system=tenant-a&page=2"))
	})

	Specify("request bodies are forwarded", func() {
		reconcile()

		resp, _ := doRequest("POST", te.Gateway.URL+"/api/order/restock?system=tenant-a", "restock 7 crates", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		last := te.OrderA.LastRequest()
		Expect(last.Method).To(Equal("POST"))
		Expect(last.Path).To(Equal("/restock"))
		Expect(last.Body).To(Equal("restock 7 crates"))
	})

	Specify("a supplied correlation id is echoed back", func() {
		reconcile()

		resp, _ := doRequest("GET", te.Gateway.URL+"/api/product/items?system=tenant-a", "", map[string]string{
			"X-Correlation-Id": "ticket-776",
		})
		Expect(resp.Header.Get("X-Correlation-Id")).To(Equal("ticket-776"))
	})

	Specify("a reconcile swaps the routing table for the next request", func() {
		reconcile()

		_, body := doRequest("GET", te.Gateway.URL+"/api/product/items?system=tenant-a", "", nil)
		Expect(body).To(Equal("hello from product-a"))

		te.SetRegistryRoutes(registryRoute{
			TenantID:      "tenant-a",
			ProductTarget: te.ProductB.Server.URL,
		})
		reconcile()

		_, body = doRequest("GET", te.Gateway.URL+"/api/product/items?system=tenant-a", "", nil)
		Expect(body).To(Equal("hello from product-b"))
	})

	Specify("the admin server serves single tenant routes straight from the registry", func() {
		resp, body := doRequest("GET", te.Admin.URL+"/tenant_routes/tenant-a", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(fmt.Sprintf(`{
			"tenant_id": "tenant-a",
			"product_target": %q,
			"inventory_target": "",
			"order_target": %q
		}`, te.ProductA.Server.URL, te.OrderA.Server.URL)))

		resp, _ = doRequest("GET", te.Admin.URL+"/tenant_routes/tenant-z", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	Specify("dynamic requests are refused until the first reconcile", func() {
		resp, _ := doRequest("GET", te.Admin.URL+"/ready", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusServiceUnavailable))

		resp, body := doRequest("GET", te.Gateway.URL+"/api/product/items?system=tenant-a", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusServiceUnavailable))
		Expect(body).To(ContainSubstring("not ready"))

		reconcile()

		resp, _ = doRequest("GET", te.Admin.URL+"/ready", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		resp, _ = doRequest("GET", te.Gateway.URL+"/api/product/items?system=tenant-a", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	Specify("tenant errors map to client-visible statuses", func() {
		reconcile()

		resp, _ := doRequest("GET", te.Gateway.URL+"/api/product/items?system=tenant-z", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

		resp, _ = doRequest("GET", te.Gateway.URL+"/api/product/items", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

		resp, _ = doRequest("GET", te.Gateway.URL+"/api/inventory/stock?system=tenant-b", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	Specify("static routes round-robin across the cluster without a snapshot", func() {
		_, body := doRequest("GET", te.Gateway.URL+"/status/health", "", nil)
		Expect(body).To(Equal("hello from status-1"))

		_, body = doRequest("GET", te.Gateway.URL+"/status/health", "", nil)
		Expect(body).To(Equal("hello from status-2"))

		_, body = doRequest("GET", te.Gateway.URL+"/status/health", "", nil)
		Expect(body).To(Equal("hello from status-1"))

		Expect(te.Status1.LastRequest().Path).To(Equal("/status/health"))
	})

	Specify("the destination header narrows a static cluster", func() {
		for i := 0; i < 3; i++ {
			_, body := doRequest("GET", te.Gateway.URL+"/status/health", "", map[string]string{
				"Destination": "status-2",
			})
			Expect(body).To(Equal("hello from status-2"))
		}
		Expect(te.Status1.RequestCount()).To(Equal(0))
	})

	Specify("narrowing to nothing yields 503", func() {
		resp, body := doRequest("GET", te.Gateway.URL+"/status/health", "", map[string]string{
			"Destination": "status-9",
		})
		Expect(resp.StatusCode).To(Equal(http.StatusServiceUnavailable))
		Expect(body).To(MatchJSON(`{"error": "no destination available"}`))
	})

	Specify("unmatched paths fall through to the catch-all cluster", func() {
		resp, body := doRequest("GET", te.Gateway.URL+"/completely/unknown", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(Equal("hello from fallback-1"))
	})

	Specify("an unreachable backend yields 502 without internal detail", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		deadAddr := listener.Addr().String()
		Expect(listener.Close()).To(Succeed())

		te.SetRegistryRoutes(registryRoute{
			TenantID:      "tenant-a",
			ProductTarget: "http://" + deadAddr,
		})
		reconcile()

		resp, body := doRequest("GET", te.Gateway.URL+"/api/product/items?system=tenant-a", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusBadGateway))
		Expect(body).To(MatchJSON(`{"error": "failed to forward request"}`))
		Expect(body).NotTo(ContainSubstring(deadAddr))
	})
})
