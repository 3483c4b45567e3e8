package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/tenantrouter/admin"
	"code.cloudfoundry.org/tenantrouter/cfg"
	"code.cloudfoundry.org/tenantrouter/destfilter"
	"code.cloudfoundry.org/tenantrouter/forwarder"
	"code.cloudfoundry.org/tenantrouter/gateway"
	"code.cloudfoundry.org/tenantrouter/jsonclient"
	"code.cloudfoundry.org/tenantrouter/models"
	"code.cloudfoundry.org/tenantrouter/picker"
	"code.cloudfoundry.org/tenantrouter/reconciler"
	"code.cloudfoundry.org/tenantrouter/registryclient"
	"code.cloudfoundry.org/tenantrouter/relay"
	"code.cloudfoundry.org/tenantrouter/resolver"
	"code.cloudfoundry.org/tenantrouter/routecfg"
	"code.cloudfoundry.org/tenantrouter/sqlstore"
	"code.cloudfoundry.org/tenantrouter/staticrouter"
	"code.cloudfoundry.org/tenantrouter/tokenclient"
	"code.cloudfoundry.org/tlsconfig"
	log "github.com/sirupsen/logrus"
)

const defaultSyncInterval = 30 * time.Second

type routeStore interface {
	ListTenantRoutes(ctx context.Context) ([]models.TenantRoute, error)
	GetTenantRoute(ctx context.Context, tenantID string) (*models.TenantRoute, error)
}

func main() {
	if err := mainWithError(); err != nil {
		log.Fatalf("tenantrouter: %s", err)
	}
}

func mainWithError() error {
	var (
		configDir         string
		gatewayListenAddr string
		adminListenAddr   string
		verbosity         int
	)
	flag.StringVar(&configDir, "c", "", "directory with config files")
	flag.StringVar(&gatewayListenAddr, "l", "127.0.0.1:8080", "listen address for the gateway server")
	flag.StringVar(&adminListenAddr, "a", "127.0.0.1:9090", "listen address for the admin server")
	flag.IntVar(&verbosity, "v", int(log.InfoLevel), "log verbosity, 0 least verbose up to 6")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.Level(verbosity))

	if configDir == "" {
		return fmt.Errorf("missing required flag for config dir")
	}

	config, err := cfg.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	routingConfig, err := routecfg.Load(config.Routes.RoutingConfigFile)
	if err != nil {
		return fmt.Errorf("loading routing config: %w", err)
	}

	store, err := buildRouteStore(config)
	if err != nil {
		return fmt.Errorf("building route store: %w", err)
	}

	snapshotRepo := &models.SnapshotRepo{}
	routeReconciler := &reconciler.Reconciler{
		RouteStore:   store,
		SnapshotRepo: snapshotRepo,
	}

	// A failed first reconcile is not fatal: the gateway serves anyway and
	// answers dynamic requests with 503 until a reconcile succeeds.
	if _, err := routeReconciler.Reconcile(context.Background()); err != nil {
		log.WithFields(log.Fields{"error": err}).Error("initial reconcile failed")
	}

	routeResolver, err := resolver.New(snapshotRepo, config.Gateway.TenantParam, routingConfig.DynamicRoutes)
	if err != nil {
		return fmt.Errorf("building resolver: %w", err)
	}

	httpRelay := relay.New(
		time.Duration(config.Forwarding.ConnectTimeoutSeconds)*time.Second,
		time.Duration(config.Forwarding.FlushIntervalMillis)*time.Millisecond,
	)

	gatewayHandler := &gateway.Handler{
		Marshaler: marshal.MarshalFunc(json.Marshal),
		Resolver:  routeResolver,
		Static:    staticrouter.New(routingConfig),
		Filter:    destfilter.New(config.Gateway.FilterHeader),
		Picker:    picker.NewRoundRobin(),
		Forwarder: &forwarder.Executor{
			Relay:        httpRelay,
			MaxBodyBytes: int64(config.Forwarding.MaxBodyBytes),
		},
	}

	adminServer := &admin.Server{
		Marshaler:    marshal.MarshalFunc(json.Marshal),
		Reconciler:   routeReconciler,
		SnapshotRepo: snapshotRepo,
		RouteStore:   store,
	}

	syncInterval := defaultSyncInterval
	if config.Routes.SyncIntervalSeconds > 0 {
		syncInterval = time.Duration(config.Routes.SyncIntervalSeconds) * time.Second
	}

	go func() {
		log.WithFields(log.Fields{"interval": syncInterval.String()}).Info("starting route sync loop")
		for {
			time.Sleep(syncInterval)
			if _, err := routeReconciler.Reconcile(context.Background()); err != nil {
				log.WithFields(log.Fields{"error": err}).Error("route sync failed")
			}
		}
	}()

	go func() {
		log.WithFields(log.Fields{"listenAddr": adminListenAddr}).Info("starting admin server")
		log.Fatalf("admin server: %s", http.ListenAndServe(adminListenAddr, adminServer.Handler()))
	}()

	log.WithFields(log.Fields{"listenAddr": gatewayListenAddr}).Info("starting gateway server")
	return http.ListenAndServe(gatewayListenAddr, gatewayHandler)
}

func buildRouteStore(config *cfg.Config) (routeStore, error) {
	switch config.Routes.Source {
	case cfg.SourceDB:
		store, err := sqlstore.Open(config.DB.Driver, config.DB.DataSourceName)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	case cfg.SourceRegistry:
		return buildRegistryStore(config)
	}
	return nil, fmt.Errorf("unsupported routes source %q", config.Routes.Source)
}

func buildRegistryStore(config *cfg.Config) (*registryclient.Client, error) {
	uaaJSONClient, err := buildTLSJSONClient(config.UAA.CAFile)
	if err != nil {
		return nil, err
	}
	registryJSONClient, err := buildTLSJSONClient(config.Registry.CAFile)
	if err != nil {
		return nil, err
	}

	tokenClient := &tokenclient.Client{
		BaseURL:    config.UAA.BaseURL,
		Name:       config.UAA.ClientName,
		Secret:     config.UAA.ClientSecret,
		JSONClient: uaaJSONClient,
	}

	return &registryclient.Client{
		BaseURL:     config.Registry.BaseURL,
		JSONClient:  registryJSONClient,
		TokenSource: tokenClient,
	}, nil
}

func buildTLSJSONClient(caFile string) (*jsonclient.JSONClient, error) {
	tlsConfig, err := tlsconfig.
		Build(tlsconfig.WithInternalServiceDefaults()).
		Client(tlsconfig.WithAuthorityFromFile(caFile))
	if err != nil {
		return nil, err
	}

	return &jsonclient.JSONClient{
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
			},
		},
	}, nil
}
