package tokenclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	BaseURL    string
	Name       string
	Secret     string
	JSONClient jsonClient
}

//go:generate counterfeiter -o fakes/json_client.go --fake-name JSONClient . jsonClient
type jsonClient interface {
	MakeRequest(ctx context.Context, request *http.Request, response interface{}) error
}

// GetToken acquires a client-credentials access token for the tenant
// route registry API.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	reqURL := fmt.Sprintf("%s/oauth/token", c.BaseURL)
	bodyString := fmt.Sprintf("client_id=%s&grant_type=client_credentials", c.Name)
	request, err := http.NewRequest("POST", reqURL, strings.NewReader(bodyString))
	if err != nil {
		return "", err
	}
	request.SetBasicAuth(c.Name, c.Secret)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	type getTokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	response := &getTokenResponse{}
	err = c.JSONClient.MakeRequest(ctx, request, response)
	if err != nil {
		return "", err
	}
	return response.AccessToken, nil
}
