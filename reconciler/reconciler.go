package reconciler

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"code.cloudfoundry.org/tenantrouter/metrics"
	"code.cloudfoundry.org/tenantrouter/models"
)

//go:generate counterfeiter -o fakes/route_store.go --fake-name RouteStore . routeStore
type routeStore interface {
	ListTenantRoutes(ctx context.Context) ([]models.TenantRoute, error)
}

//go:generate counterfeiter -o fakes/snapshot_repo.go --fake-name SnapshotRepo . snapshotRepo
type snapshotRepo interface {
	Publish(snapshot *models.RoutingSnapshot) bool
	Version() uint64
}

// Reconciler fetches the full tenant route table and swaps it into the
// snapshot repo. All triggers (startup, admin reload, timer loop) go
// through the same Reconcile call.
type Reconciler struct {
	RouteStore   routeStore
	SnapshotRepo snapshotRepo

	// version ticket counter, drawn atomically at reconcile entry
	nextVersion uint64
}

// Reconcile fetches the table, builds a snapshot carrying a version ticket
// drawn before the fetch, and publishes it. A snapshot whose ticket is
// older than the published version loses the race and is discarded.
// Returns the version current after the attempt. A fetch failure leaves
// the previous snapshot untouched.
func (r *Reconciler) Reconcile(ctx context.Context) (uint64, error) {
	ticket := atomic.AddUint64(&r.nextVersion, 1)

	rows, err := r.RouteStore.ListTenantRoutes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list tenant routes: %w", err)
	}

	snapshot := models.NewRoutingSnapshot(ticket, validRows(rows))

	if !r.SnapshotRepo.Publish(snapshot) {
		current := r.SnapshotRepo.Version()
		log.WithFields(log.Fields{
			"version":        ticket,
			"currentVersion": current,
		}).Info("discarding stale snapshot")
		return current, nil
	}

	metrics.Update(snapshot)
	log.WithFields(log.Fields{
		"version": ticket,
		"tenants": len(snapshot.Routes),
	}).Info("published routing snapshot")

	return ticket, nil
}

func validRows(rows []models.TenantRoute) []models.TenantRoute {
	valid := make([]models.TenantRoute, 0, len(rows))
	seen := map[string]struct{}{}
	for _, row := range rows {
		if row.TenantID == "" {
			log.Warn("dropping tenant route with empty tenant id")
			continue
		}
		if _, ok := seen[row.TenantID]; ok {
			log.WithFields(log.Fields{
				"tenant": row.TenantID,
			}).Warn("duplicate tenant route, last entry wins")
		}
		seen[row.TenantID] = struct{}{}

		row.ProductTarget = validTarget(row.TenantID, "product", row.ProductTarget)
		row.InventoryTarget = validTarget(row.TenantID, "inventory", row.InventoryTarget)
		row.OrderTarget = validTarget(row.TenantID, "order", row.OrderTarget)
		valid = append(valid, row)
	}
	return valid
}

// validTarget drops a malformed target URI, keeping the rest of the row.
func validTarget(tenantID, service, target string) string {
	if target == "" {
		return ""
	}
	parsed, err := url.Parse(target)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		log.WithFields(log.Fields{
			"tenant":  tenantID,
			"service": service,
			"target":  target,
		}).Warn("dropping malformed target URI")
		return ""
	}
	return target
}
