package admin_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/tenantrouter/admin"
	"code.cloudfoundry.org/tenantrouter/admin/fakes"
	"code.cloudfoundry.org/tenantrouter/models"

	hfakes "code.cloudfoundry.org/cf-networking-helpers/fakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Server", func() {
	var (
		handler        http.Handler
		resp           *httptest.ResponseRecorder
		marshaler      *hfakes.Marshaler
		fakeReconciler *fakes.Reconciler
		fakeRepo       *fakes.SnapshotGetter
		fakeRouteStore *fakes.RouteStore
	)

	BeforeEach(func() {
		marshaler = &hfakes.Marshaler{}
		marshaler.MarshalStub = json.Marshal

		fakeReconciler = &fakes.Reconciler{}
		fakeRepo = &fakes.SnapshotGetter{}
		fakeRouteStore = &fakes.RouteStore{}

		server := &admin.Server{
			Marshaler:    marshaler,
			Reconciler:   fakeReconciler,
			SnapshotRepo: fakeRepo,
			RouteStore:   fakeRouteStore,
		}
		handler = server.Handler()

		resp = httptest.NewRecorder()
	})

	Describe("POST /reconcile", func() {
		BeforeEach(func() {
			fakeReconciler.ReconcileReturns(42, nil)
		})

		It("runs a reconcile and reports the published version", func() {
			request := httptest.NewRequest("POST", "/reconcile", nil)
			handler.ServeHTTP(resp, request)

			Expect(fakeReconciler.ReconcileCallCount()).To(Equal(1))
			Expect(fakeReconciler.ReconcileArgsForCall(0)).NotTo(BeNil())

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body).To(MatchJSON(`{"version": 42}`))
		})

		Context("when the reconcile fails", func() {
			BeforeEach(func() {
				fakeReconciler.ReconcileReturns(0, errors.New("registry is down"))
			})

			It("responds 502 without leaking the error", func() {
				request := httptest.NewRequest("POST", "/reconcile", nil)
				handler.ServeHTTP(resp, request)

				Expect(resp.Code).To(Equal(http.StatusBadGateway))
				Expect(resp.Body).To(MatchJSON(`{"error": "reconcile failed"}`))
				Expect(resp.Body.String()).NotTo(ContainSubstring("registry is down"))
			})
		})

		Context("when json marshalling returns an error", func() {
			BeforeEach(func() {
				marshaler.MarshalStub = func(interface{}) ([]byte, error) {
					return nil, errors.New("marshalling-err")
				}
			})

			It("returns an InternalServerError", func() {
				request := httptest.NewRequest("POST", "/reconcile", nil)
				handler.ServeHTTP(resp, request)

				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body).To(MatchJSON(`{"error": "failed to marshal response"}`))
			})
		})

		It("rejects GET", func() {
			request := httptest.NewRequest("GET", "/reconcile", nil)
			handler.ServeHTTP(resp, request)

			Expect(resp.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Describe("GET /ready", func() {
		Context("before the first successful reconcile", func() {
			BeforeEach(func() {
				fakeRepo.GetReturns(nil, false)
			})

			It("responds 503", func() {
				request := httptest.NewRequest("GET", "/ready", nil)
				handler.ServeHTTP(resp, request)

				Expect(resp.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(resp.Body).To(MatchJSON(`{"error": "not ready"}`))
			})
		})

		Context("after a snapshot has been published", func() {
			BeforeEach(func() {
				fakeRepo.GetReturns(models.NewRoutingSnapshot(1, nil), true)
			})

			It("responds 200", func() {
				request := httptest.NewRequest("GET", "/ready", nil)
				handler.ServeHTTP(resp, request)

				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(resp.Body.String()).To(Equal("ok"))
			})
		})
	})

	Describe("GET /ping", func() {
		It("responds pong", func() {
			request := httptest.NewRequest("GET", "/ping", nil)
			handler.ServeHTTP(resp, request)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(Equal("pong"))
		})
	})

	Describe("GET /tenant_routes/:tenant_id", func() {
		BeforeEach(func() {
			fakeRouteStore.GetTenantRouteReturns(&models.TenantRoute{
				TenantID:      "tenant-a",
				ProductTarget: "http://product-a.internal:8080",
				OrderTarget:   "http://order-a.internal:8080",
			}, nil)
		})

		It("reads the tenant's row from the backing store", func() {
			request := httptest.NewRequest("GET", "/tenant_routes/tenant-a", nil)
			handler.ServeHTTP(resp, request)

			Expect(fakeRouteStore.GetTenantRouteCallCount()).To(Equal(1))
			ctx, tenantID := fakeRouteStore.GetTenantRouteArgsForCall(0)
			Expect(ctx).NotTo(BeNil())
			Expect(tenantID).To(Equal("tenant-a"))

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body).To(MatchJSON(`{
				"tenant_id": "tenant-a",
				"product_target": "http://product-a.internal:8080",
				"inventory_target": "",
				"order_target": "http://order-a.internal:8080"
			}`))
		})

		Context("when the store has no row for the tenant", func() {
			BeforeEach(func() {
				fakeRouteStore.GetTenantRouteReturns(nil, nil)
			})

			It("responds 404", func() {
				request := httptest.NewRequest("GET", "/tenant_routes/tenant-z", nil)
				handler.ServeHTTP(resp, request)

				Expect(resp.Code).To(Equal(http.StatusNotFound))
				Expect(resp.Body).To(MatchJSON(`{"error": "unknown tenant"}`))
			})
		})

		Context("when the store lookup fails", func() {
			BeforeEach(func() {
				fakeRouteStore.GetTenantRouteReturns(nil, errors.New("db is down"))
			})

			It("responds 502 without leaking the error", func() {
				request := httptest.NewRequest("GET", "/tenant_routes/tenant-a", nil)
				handler.ServeHTTP(resp, request)

				Expect(resp.Code).To(Equal(http.StatusBadGateway))
				Expect(resp.Body).To(MatchJSON(`{"error": "failed to read route store"}`))
				Expect(resp.Body.String()).NotTo(ContainSubstring("db is down"))
			})
		})
	})

	Describe("GET /metrics", func() {
		It("serves the prometheus registry", func() {
			request := httptest.NewRequest("GET", "/metrics", nil)
			handler.ServeHTTP(resp, request)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body).To(ContainSubstring("tenantrouter_snapshot_version"))
		})
	})
})
