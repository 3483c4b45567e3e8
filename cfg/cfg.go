package cfg

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Gateway struct {
		// Query parameter naming the tenant on dynamic routes, default "system"
		TenantParam string

		// Header narrowing candidate destinations, default "Destination"
		FilterHeader string
	}

	Routes struct {
		// Where tenant routes are reconciled from: "db" or "registry"
		Source string

		// Path to the YAML file with dynamic prefix bindings and static clusters
		RoutingConfigFile string

		// Seconds between background reconciles; 0 uses the built-in default
		SyncIntervalSeconds int
	}

	DB struct {
		// database/sql driver name, mysql or postgres
		Driver string

		// Driver-specific data source name
		DataSourceName string
	}

	Registry struct {
		// Base URL for the tenant-route registry, e.g. https://registry.cf.system.internal
		BaseURL string

		// PEM file path for the certificate authority that signed the registry server cert
		CAFile string
	}

	UAA struct {
		// Base URL for UAA, e.g. https://uaa.cf.system.internal
		BaseURL string

		// UAA client name to use when acquiring a token for the registry
		ClientName string

		// Client secret matching the client name
		ClientSecret string

		// PEM file path for the certificate authority that signed the UAA server cert
		CAFile string
	}

	Forwarding struct {
		// Seconds allowed for the TCP connect to an upstream; 0 uses the relay default
		ConnectTimeoutSeconds int

		// Milliseconds between response flushes while streaming; 0 leaves flushing to the proxy
		FlushIntervalMillis int

		// Upper bound on inbound request body bytes; 0 means unlimited
		MaxBodyBytes int
	}
}

const (
	SourceDB       = "db"
	SourceRegistry = "registry"
)

const (
	FileTenantParam     = "tenantParam"
	FileFilterHeader    = "filterHeader"
	FileRoutesSource    = "routesSource"
	FileRoutingConfig   = "routingConfig"
	FileSyncInterval    = "syncIntervalSeconds"
	FileDBDriver        = "dbDriver"
	FileDBDataSource    = "dbDataSourceName"
	FileRegistryBaseURL = "registryBaseURL"
	FileRegistryCA      = "registryCA"
	FileUAABaseURL      = "uaaBaseURL"
	FileUAAClientName   = "clientName"
	FileUAAClientSecret = "clientSecret"
	FileUAACA           = "uaaCA"
	FileConnectTimeout  = "connectTimeoutSeconds"
	FileFlushInterval   = "flushIntervalMillis"
	FileMaxBodyBytes    = "maxBodyBytes"
)

// Load loads a Config from environment variables or files within a directory on disk
// When running inside a K8s Cluster, this directory should probably be a volume mount of a K8s Secret
func Load(configDir string) (*Config, error) {
	source, err := loadValue(configDir, FileRoutesSource)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	c.Routes.Source = source
	c.Routes.RoutingConfigFile = getPath(configDir, FileRoutingConfig)

	switch source {
	case SourceDB:
		c.DB.Driver, err = loadValue(configDir, FileDBDriver)
		if err != nil {
			return nil, err
		}
		c.DB.DataSourceName, err = loadValue(configDir, FileDBDataSource)
		if err != nil {
			return nil, err
		}
	case SourceRegistry:
		c.Registry.BaseURL, err = loadValue(configDir, FileRegistryBaseURL)
		if err != nil {
			return nil, err
		}
		c.Registry.CAFile = getPath(configDir, FileRegistryCA)
		c.UAA.BaseURL, err = loadValue(configDir, FileUAABaseURL)
		if err != nil {
			return nil, err
		}
		c.UAA.ClientName, err = loadValue(configDir, FileUAAClientName)
		if err != nil {
			return nil, err
		}
		c.UAA.ClientSecret, err = loadValue(configDir, FileUAAClientSecret)
		if err != nil {
			return nil, err
		}
		c.UAA.CAFile = getPath(configDir, FileUAACA)
	default:
		return nil, fmt.Errorf("routes source must be %q or %q, got %q", SourceDB, SourceRegistry, source)
	}

	c.Gateway.TenantParam, err = loadOptionalValue(configDir, FileTenantParam, "")
	if err != nil {
		return nil, err
	}
	c.Gateway.FilterHeader, err = loadOptionalValue(configDir, FileFilterHeader, "")
	if err != nil {
		return nil, err
	}
	c.Routes.SyncIntervalSeconds, err = loadOptionalIntValue(configDir, FileSyncInterval, 0)
	if err != nil {
		return nil, err
	}
	c.Forwarding.ConnectTimeoutSeconds, err = loadOptionalIntValue(configDir, FileConnectTimeout, 0)
	if err != nil {
		return nil, err
	}
	c.Forwarding.FlushIntervalMillis, err = loadOptionalIntValue(configDir, FileFlushInterval, 0)
	if err != nil {
		return nil, err
	}
	c.Forwarding.MaxBodyBytes, err = loadOptionalIntValue(configDir, FileMaxBodyBytes, 0)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func loadValue(configDir string, key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if exists {
		return value, nil
	}
	return readFile(configDir, key)
}

func loadOptionalValue(configDir string, key string, fallback string) (string, error) {
	value, exists := os.LookupEnv(key)
	if exists {
		return value, nil
	}
	value, err := readFile(configDir, key)
	if os.IsNotExist(err) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func loadOptionalIntValue(configDir string, key string, fallback int) (int, error) {
	raw, err := loadOptionalValue(configDir, key, "")
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return parsed, nil
}

func readFile(configDir string, filename string) (string, error) {
	bytes, err := ioutil.ReadFile(getPath(configDir, filename))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}

func getPath(configDir string, filename string) string {
	return filepath.Join(configDir, filename)
}
