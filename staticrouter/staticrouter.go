package staticrouter

import (
	"sort"
	"strings"

	"code.cloudfoundry.org/tenantrouter/models"
	"code.cloudfoundry.org/tenantrouter/routecfg"
)

// Router matches paths outside the dynamic regime against the configured
// static routes. Longest literal prefix wins; the "/*" catch-all matches
// only when no literal prefix does.
type Router struct {
	rules    []rule
	catchAll *rule
}

type rule struct {
	prefix     string
	cluster    string
	candidates models.CandidateSet
}

func New(config *routecfg.Config) *Router {
	clusters := map[string]models.CandidateSet{}
	for _, cluster := range config.Clusters {
		set := models.CandidateSet{}
		for _, dest := range cluster.Destinations {
			set[dest.ID] = models.Destination{
				ID:       dest.ID,
				Address:  dest.Address,
				Metadata: map[string]string{"cluster": cluster.Name},
			}
		}
		clusters[cluster.Name] = set
	}

	router := &Router{}
	for _, route := range config.StaticRoutes {
		r := rule{
			prefix:     route.PathPrefix,
			cluster:    route.Cluster,
			candidates: clusters[route.Cluster],
		}
		if route.PathPrefix == routecfg.CatchAllPrefix {
			catchAll := r
			router.catchAll = &catchAll
			continue
		}
		router.rules = append(router.rules, r)
	}

	sort.SliceStable(router.rules, func(i, j int) bool {
		return len(router.rules[i].prefix) > len(router.rules[j].prefix)
	})

	return router
}

// Match returns the candidate set and cluster name for the longest matching
// prefix, or false when no rule matches the path.
func (r *Router) Match(path string) (models.CandidateSet, string, bool) {
	for _, rule := range r.rules {
		if strings.HasPrefix(path, rule.prefix) {
			return rule.candidates, rule.cluster, true
		}
	}
	if r.catchAll != nil {
		return r.catchAll.candidates, r.catchAll.cluster, true
	}
	return nil, "", false
}
