package routecfg

import (
	"fmt"
	"io/ioutil"
	"net/url"
	"strings"

	"sigs.k8s.io/yaml"

	"code.cloudfoundry.org/tenantrouter/models"
)

// Config is the routing config file: dynamic prefix bindings consulted by
// the resolver, and static routes plus clusters consulted by the static
// router.
type Config struct {
	DynamicRoutes []DynamicRoute `json:"dynamic_routes"`
	StaticRoutes  []StaticRoute  `json:"static_routes"`
	Clusters      []Cluster      `json:"clusters"`
}

// DynamicRoute binds a path prefix to a tenant service kind.
type DynamicRoute struct {
	PathPrefix string `json:"path_prefix"`
	Service    string `json:"service"`
}

// StaticRoute binds a path prefix, or the "/*" catch-all, to a cluster.
type StaticRoute struct {
	PathPrefix string `json:"path_prefix"`
	Cluster    string `json:"cluster"`
}

// Cluster is a named set of static destinations.
type Cluster struct {
	Name         string        `json:"name"`
	Destinations []Destination `json:"destinations"`
}

type Destination struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

const CatchAllPrefix = "/*"

// Load reads and validates the routing config file at path.
func Load(path string) (*Config, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routing config: %w", err)
	}
	return Parse(contents)
}

// Parse unmarshals and validates routing config YAML.
func Parse(contents []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, fmt.Errorf("parse routing config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid routing config: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	seenDynamic := map[string]struct{}{}
	for _, route := range c.DynamicRoutes {
		if !strings.HasPrefix(route.PathPrefix, "/") || route.PathPrefix == CatchAllPrefix {
			return fmt.Errorf("dynamic route %q: path_prefix must begin with /", route.PathPrefix)
		}
		if _, err := models.ParseServiceKind(route.Service); err != nil {
			return fmt.Errorf("dynamic route %q: %w", route.PathPrefix, err)
		}
		if _, ok := seenDynamic[route.PathPrefix]; ok {
			return fmt.Errorf("dynamic route %q: duplicate path_prefix", route.PathPrefix)
		}
		seenDynamic[route.PathPrefix] = struct{}{}
	}

	clusters := map[string]struct{}{}
	for _, cluster := range c.Clusters {
		if cluster.Name == "" {
			return fmt.Errorf("cluster with empty name")
		}
		if _, ok := clusters[cluster.Name]; ok {
			return fmt.Errorf("cluster %q: duplicate name", cluster.Name)
		}
		clusters[cluster.Name] = struct{}{}

		for _, dest := range cluster.Destinations {
			if dest.ID == "" {
				return fmt.Errorf("cluster %q: destination with empty id", cluster.Name)
			}
			parsed, err := url.Parse(dest.Address)
			if err != nil || !parsed.IsAbs() || parsed.Host == "" {
				return fmt.Errorf("cluster %q: destination %q: address must be an absolute URL", cluster.Name, dest.ID)
			}
		}
	}

	seenStatic := map[string]struct{}{}
	for _, route := range c.StaticRoutes {
		if route.PathPrefix != CatchAllPrefix && !strings.HasPrefix(route.PathPrefix, "/") {
			return fmt.Errorf("static route %q: path_prefix must begin with /", route.PathPrefix)
		}
		if _, ok := seenStatic[route.PathPrefix]; ok {
			return fmt.Errorf("static route %q: duplicate path_prefix", route.PathPrefix)
		}
		seenStatic[route.PathPrefix] = struct{}{}

		if _, ok := clusters[route.Cluster]; !ok {
			return fmt.Errorf("static route %q: unknown cluster %q", route.PathPrefix, route.Cluster)
		}
	}

	return nil
}
