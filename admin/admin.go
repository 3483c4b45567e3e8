package admin

import (
	"context"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/tenantrouter/metrics"
	"code.cloudfoundry.org/tenantrouter/models"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

//go:generate counterfeiter -o fakes/reconciler.go --fake-name Reconciler . reconciler
type reconciler interface {
	Reconcile(ctx context.Context) (uint64, error)
}

//go:generate counterfeiter -o fakes/snapshot_getter.go --fake-name SnapshotGetter . snapshotGetter
type snapshotGetter interface {
	Get() (*models.RoutingSnapshot, bool)
}

//go:generate counterfeiter -o fakes/route_store.go --fake-name RouteStore . routeStore
type routeStore interface {
	GetTenantRoute(ctx context.Context, tenantID string) (*models.TenantRoute, error)
}

// Server is the operator-facing surface. It never serves tenant traffic
// and listens on its own address.
type Server struct {
	Marshaler    marshal.Marshaler
	Reconciler   reconciler
	SnapshotRepo snapshotGetter
	RouteStore   routeStore
}

type reconcileResponse struct {
	Version uint64 `json:"version"`
}

type tenantRouteResponse struct {
	TenantID        string `json:"tenant_id"`
	ProductTarget   string `json:"product_target"`
	InventoryTarget string `json:"inventory_target"`
	OrderTarget     string `json:"order_target"`
}

func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.POST("/reconcile", s.handleReconcile)
	router.GET("/ready", s.handleReady)
	router.GET("/ping", s.handlePing)
	router.GET("/tenant_routes/:tenant_id", s.handleGetTenantRoute)
	router.Handler("GET", "/metrics", metrics.DefaultMetrics.Handler)
	return router
}

func (s *Server) handleReconcile(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	version, err := s.Reconciler.Reconcile(req.Context())
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Error("admin-triggered reconcile failed")
		s.respondWithCode(http.StatusBadGateway, w, "reconcile failed")
		return
	}

	bytes, err := s.Marshaler.Marshal(reconcileResponse{Version: version})
	if err != nil {
		s.respondWithCode(http.StatusInternalServerError, w, "failed to marshal response")
		return
	}
	w.Write(bytes)
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if _, ok := s.SnapshotRepo.Get(); !ok {
		s.respondWithCode(http.StatusServiceUnavailable, w, "not ready")
		return
	}
	w.Write([]byte("ok"))
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Write([]byte("pong"))
}

// handleGetTenantRoute reads the backing store directly, bypassing the
// published snapshot, so operators can compare the two.
func (s *Server) handleGetTenantRoute(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
	tenantID := ps.ByName("tenant_id")

	route, err := s.RouteStore.GetTenantRoute(req.Context(), tenantID)
	if err != nil {
		log.WithFields(log.Fields{"error": err, "tenant": tenantID}).Error("route store lookup failed")
		s.respondWithCode(http.StatusBadGateway, w, "failed to read route store")
		return
	}
	if route == nil {
		s.respondWithCode(http.StatusNotFound, w, "unknown tenant")
		return
	}

	bytes, err := s.Marshaler.Marshal(tenantRouteResponse{
		TenantID:        route.TenantID,
		ProductTarget:   route.ProductTarget,
		InventoryTarget: route.InventoryTarget,
		OrderTarget:     route.OrderTarget,
	})
	if err != nil {
		s.respondWithCode(http.StatusInternalServerError, w, "failed to marshal response")
		return
	}
	w.Write(bytes)
}

func (s *Server) respondWithCode(statusCode int, w http.ResponseWriter, description string) {
	w.WriteHeader(statusCode)
	w.Write([]byte(fmt.Sprintf(`{"error": "%s"}`, description)))
}
