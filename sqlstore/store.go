package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"code.cloudfoundry.org/tenantrouter/models"
)

// Store reads the tenant route table from a SQL database. The table is
// written by the tenant control plane; the gateway reads it during
// reconcile. Upsert and Delete exist for seeding and operator tooling.
type Store struct {
	DB *sqlx.DB
}

const createTenantRoutesTable = `
CREATE TABLE IF NOT EXISTS tenant_routes (
	tenant_id VARCHAR(255) PRIMARY KEY,
	product_target VARCHAR(2048) NOT NULL DEFAULT '',
	inventory_target VARCHAR(2048) NOT NULL DEFAULT '',
	order_target VARCHAR(2048) NOT NULL DEFAULT ''
)`

// Open connects to the database named by driverName ("mysql", "postgres",
// or "sqlite3" in tests) and verifies the connection.
func Open(driverName, dataSourceName string) (*Store, error) {
	db, err := sqlx.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driverName == "sqlite3" {
		// every new sqlite connection sees its own in-memory database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createTenantRoutesTable); err != nil {
		return fmt.Errorf("create tenant_routes table: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

type tenantRouteRow struct {
	TenantID        string `db:"tenant_id"`
	ProductTarget   string `db:"product_target"`
	InventoryTarget string `db:"inventory_target"`
	OrderTarget     string `db:"order_target"`
}

func (r tenantRouteRow) toModel() models.TenantRoute {
	return models.TenantRoute{
		TenantID:        r.TenantID,
		ProductTarget:   r.ProductTarget,
		InventoryTarget: r.InventoryTarget,
		OrderTarget:     r.OrderTarget,
	}
}

// ListTenantRoutes returns the complete route table ordered by tenant id.
func (s *Store) ListTenantRoutes(ctx context.Context) ([]models.TenantRoute, error) {
	rows := []tenantRouteRow{}
	err := s.DB.SelectContext(ctx, &rows,
		`SELECT tenant_id, product_target, inventory_target, order_target
		 FROM tenant_routes ORDER BY tenant_id`)
	if err != nil {
		return nil, fmt.Errorf("list tenant routes: %w", err)
	}

	routes := make([]models.TenantRoute, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, row.toModel())
	}
	return routes, nil
}

// GetTenantRoute returns the route for one tenant, or nil when the tenant
// has no row.
func (s *Store) GetTenantRoute(ctx context.Context, tenantID string) (*models.TenantRoute, error) {
	row := tenantRouteRow{}
	query := s.DB.Rebind(
		`SELECT tenant_id, product_target, inventory_target, order_target
		 FROM tenant_routes WHERE tenant_id = ?`)
	err := s.DB.GetContext(ctx, &row, query, tenantID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant route: %w", err)
	}

	route := row.toModel()
	return &route, nil
}

// UpsertTenantRoute replaces the tenant's row. Delete-then-insert keeps the
// statement portable across mysql, postgres and sqlite.
func (s *Store) UpsertTenantRoute(ctx context.Context, route models.TenantRoute) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		tx.Rebind(`DELETE FROM tenant_routes WHERE tenant_id = ?`),
		route.TenantID)
	if err != nil {
		return fmt.Errorf("delete existing tenant route: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		tx.Rebind(`INSERT INTO tenant_routes
			(tenant_id, product_target, inventory_target, order_target)
			VALUES (?, ?, ?, ?)`),
		route.TenantID, route.ProductTarget, route.InventoryTarget, route.OrderTarget)
	if err != nil {
		return fmt.Errorf("insert tenant route: %w", err)
	}

	return tx.Commit()
}

func (s *Store) DeleteTenantRoute(ctx context.Context, tenantID string) error {
	_, err := s.DB.ExecContext(ctx,
		s.DB.Rebind(`DELETE FROM tenant_routes WHERE tenant_id = ?`),
		tenantID)
	if err != nil {
		return fmt.Errorf("delete tenant route: %w", err)
	}
	return nil
}
