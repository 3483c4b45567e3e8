package resolver

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"code.cloudfoundry.org/tenantrouter/models"
	"code.cloudfoundry.org/tenantrouter/routecfg"
)

//go:generate counterfeiter -o fakes/snapshot_repo.go --fake-name SnapshotRepo . snapshotRepo
type snapshotRepo interface {
	Get() (*models.RoutingSnapshot, bool)
}

var (
	NotReadyError             = errors.New("not ready: have not yet reconciled with the route store")
	MissingTenantParamError   = errors.New("missing tenant: query parameter absent or empty")
	UnknownTenantError        = errors.New("unknown tenant: no route in current snapshot")
	ServiceNotConfiguredError = errors.New("service not configured: tenant has no target for this service")
)

// DefaultTenantParam names the query parameter carrying the tenant id.
const DefaultTenantParam = "system"

type prefixBinding struct {
	prefix  string
	service models.ServiceKind
}

// Resolver classifies requests into the dynamic or static regime and
// resolves dynamic requests against the current routing snapshot.
type Resolver struct {
	SnapshotRepo snapshotRepo
	TenantParam  string
	bindings     []prefixBinding
}

func New(repo snapshotRepo, tenantParam string, routes []routecfg.DynamicRoute) (*Resolver, error) {
	if tenantParam == "" {
		tenantParam = DefaultTenantParam
	}

	bindings := make([]prefixBinding, 0, len(routes))
	for _, route := range routes {
		kind, err := models.ParseServiceKind(route.Service)
		if err != nil {
			return nil, fmt.Errorf("dynamic route %q: %w", route.PathPrefix, err)
		}
		bindings = append(bindings, prefixBinding{prefix: route.PathPrefix, service: kind})
	}
	sort.SliceStable(bindings, func(i, j int) bool {
		return len(bindings[i].prefix) > len(bindings[j].prefix)
	})

	return &Resolver{
		SnapshotRepo: repo,
		TenantParam:  tenantParam,
		bindings:     bindings,
	}, nil
}

// Resolve classifies the request. Static and invalid classifications
// return a decision and no error; dynamic classification additionally
// resolves the tenant and returns either a single-destination candidate
// set or one of the sentinel errors above. The snapshot is read with one
// atomic load and held only for the table lookup.
func (r *Resolver) Resolve(req *http.Request) (*models.RoutingDecision, models.CandidateSet, error) {
	path := req.URL.Path
	if !strings.HasPrefix(path, "/") {
		return &models.RoutingDecision{
			Kind:   models.DecisionInvalid,
			Reason: fmt.Sprintf("path %q does not begin with /", path),
		}, nil, nil
	}

	binding, ok := r.matchDynamic(path)
	if !ok {
		return &models.RoutingDecision{
			Kind:         models.DecisionStatic,
			OriginalPath: path,
		}, nil, nil
	}

	decision := &models.RoutingDecision{
		Kind:          models.DecisionDynamic,
		Service:       binding.service,
		RemainderPath: path[len(binding.prefix):],
	}

	tenantID := req.URL.Query().Get(r.TenantParam)
	if tenantID == "" {
		return decision, nil, MissingTenantParamError
	}
	decision.TenantID = tenantID

	snapshot, ok := r.SnapshotRepo.Get()
	if !ok {
		return decision, nil, NotReadyError
	}

	route, ok := snapshot.Lookup(tenantID)
	if !ok {
		return decision, nil, fmt.Errorf("tenant %q: %w", tenantID, UnknownTenantError)
	}

	target, ok := route.TargetFor(binding.service)
	if !ok {
		return decision, nil, fmt.Errorf("tenant %q service %q: %w", tenantID, binding.service, ServiceNotConfiguredError)
	}

	candidates := models.NewCandidateSet(models.Destination{
		ID:       tenantID,
		Address:  target,
		Metadata: map[string]string{"service": string(binding.service)},
	})
	return decision, candidates, nil
}

// matchDynamic finds the longest configured prefix matching the path at a
// segment boundary.
func (r *Resolver) matchDynamic(path string) (prefixBinding, bool) {
	for _, binding := range r.bindings {
		if path == binding.prefix || strings.HasPrefix(path, binding.prefix+"/") {
			return binding, true
		}
	}
	return prefixBinding{}, false
}
