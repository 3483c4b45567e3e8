package registryclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"code.cloudfoundry.org/tenantrouter/jsonclient"
	"code.cloudfoundry.org/tenantrouter/models"
)

// Client reads the tenant route table from the route registry API.
type Client struct {
	JSONClient  jsonClient
	TokenSource tokenSource
	BaseURL     string
}

//go:generate counterfeiter -o fakes/json_client.go --fake-name JSONClient . jsonClient
type jsonClient interface {
	MakeRequest(ctx context.Context, request *http.Request, response interface{}) error
}

//go:generate counterfeiter -o fakes/token_source.go --fake-name TokenSource . tokenSource
type tokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// registry page size cap; a table larger than this needs paging support
const MaxResultsPerPage int = 5000

type tenantRouteResource struct {
	TenantID        string `json:"tenant_id"`
	ProductTarget   string `json:"product_target"`
	InventoryTarget string `json:"inventory_target"`
	OrderTarget     string `json:"order_target"`
}

func (r tenantRouteResource) toModel() models.TenantRoute {
	return models.TenantRoute{
		TenantID:        r.TenantID,
		ProductTarget:   r.ProductTarget,
		InventoryTarget: r.InventoryTarget,
		OrderTarget:     r.OrderTarget,
	}
}

// ListTenantRoutes fetches the complete tenant route table in one call.
func (c *Client) ListTenantRoutes(ctx context.Context) ([]models.TenantRoute, error) {
	token, err := c.TokenSource.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/tenant_routes?per_page=%d", c.BaseURL, MaxResultsPerPage)
	request, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "bearer "+token)

	type listTenantRoutesResponse struct {
		Pagination struct {
			TotalPages int `json:"total_pages"`
		} `json:"pagination"`
		Resources []tenantRouteResource `json:"resources"`
	}
	response := &listTenantRoutesResponse{}

	err = c.JSONClient.MakeRequest(ctx, request, response)
	if err != nil {
		return nil, err
	}
	if response.Pagination.TotalPages > 1 {
		return nil, errors.New("too many results, paging not implemented")
	}

	routes := make([]models.TenantRoute, 0, len(response.Resources))
	for _, resource := range response.Resources {
		routes = append(routes, resource.toModel())
	}
	return routes, nil
}

// GetTenantRoute fetches a single tenant's route, or nil when the
// registry does not know the tenant.
func (c *Client) GetTenantRoute(ctx context.Context, tenantID string) (*models.TenantRoute, error) {
	token, err := c.TokenSource.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/tenant_routes/%s", c.BaseURL, url.PathEscape(tenantID))
	request, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "bearer "+token)

	resource := &tenantRouteResource{}
	err = c.JSONClient.MakeRequest(ctx, request, resource)
	if err != nil {
		var badResponse *jsonclient.BadResponseError
		if errors.As(err, &badResponse) && badResponse.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	route := resource.toModel()
	return &route, nil
}
