package models

import (
	"fmt"
	"sort"
)

// ServiceKind names one of the per-tenant backend services a dynamic
// route prefix can bind to.
type ServiceKind string

const (
	ServiceProduct   ServiceKind = "product"
	ServiceInventory ServiceKind = "inventory"
	ServiceOrder     ServiceKind = "order"
)

func ParseServiceKind(name string) (ServiceKind, error) {
	switch ServiceKind(name) {
	case ServiceProduct, ServiceInventory, ServiceOrder:
		return ServiceKind(name), nil
	}
	return "", fmt.Errorf("unknown service kind %q", name)
}

// TenantRoute holds one tenant's backend addresses. A target is an
// absolute scheme://host:port URI, or empty when the tenant does not
// run that service.
type TenantRoute struct {
	TenantID        string
	ProductTarget   string
	InventoryTarget string
	OrderTarget     string
}

func (t TenantRoute) TargetFor(kind ServiceKind) (string, bool) {
	var target string
	switch kind {
	case ServiceProduct:
		target = t.ProductTarget
	case ServiceInventory:
		target = t.InventoryTarget
	case ServiceOrder:
		target = t.OrderTarget
	}
	if target == "" {
		return "", false
	}
	return target, true
}

// RoutingSnapshot is the complete tenant routing table at a point in
// time. Instances are never mutated after construction; a new table is
// published by replacing the snapshot held in the SnapshotRepo.
type RoutingSnapshot struct {
	Version uint64
	Routes  map[string]TenantRoute
}

// NewRoutingSnapshot copies routes into a fresh table keyed by tenant
// id. Later entries win when a tenant id repeats; callers that care
// warn before building (see reconciler).
func NewRoutingSnapshot(version uint64, routes []TenantRoute) *RoutingSnapshot {
	table := make(map[string]TenantRoute, len(routes))
	for _, route := range routes {
		table[route.TenantID] = route
	}
	return &RoutingSnapshot{
		Version: version,
		Routes:  table,
	}
}

func (s *RoutingSnapshot) Lookup(tenantID string) (TenantRoute, bool) {
	route, ok := s.Routes[tenantID]
	return route, ok
}

// Destination is one network target considered for a request.
type Destination struct {
	ID       string
	Address  string
	Metadata map[string]string
}

// CandidateSet is the set of destinations under consideration for a
// request at a given pipeline stage, keyed by destination id.
type CandidateSet map[string]Destination

func NewCandidateSet(destinations ...Destination) CandidateSet {
	set := make(CandidateSet, len(destinations))
	for _, destination := range destinations {
		set[destination.ID] = destination
	}
	return set
}

// IDs returns the destination ids in sorted order, for stable logging
// and selection.
func (s CandidateSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type DecisionKind int

const (
	DecisionDynamic DecisionKind = iota
	DecisionStatic
	DecisionInvalid
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionDynamic:
		return "dynamic"
	case DecisionStatic:
		return "static"
	case DecisionInvalid:
		return "invalid"
	}
	return "unknown"
}

// RoutingDecision is the outcome of classifying one inbound request.
// TenantID, Service and RemainderPath are set for dynamic decisions,
// OriginalPath for static fallback, Reason for invalid requests.
type RoutingDecision struct {
	Kind          DecisionKind
	TenantID      string
	Service       ServiceKind
	RemainderPath string
	OriginalPath  string
	Reason        string
}
