package jsonclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

//go:generate counterfeiter -o fakes/http_client.go --fake-name HTTPClient . HttpClient
type HttpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// BadResponseError reports a non-2xx response so that callers can branch
// on the status code without parsing error strings.
type BadResponseError struct {
	StatusCode int
	Body       string
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("bad response, code %d: %s", e.StatusCode, e.Body)
}

type JSONClient struct {
	HTTPClient HttpClient
}

// MakeRequest performs request on the underlying client and unmarshals
// the JSON response body into response. The request is canceled when ctx
// is.
func (c *JSONClient) MakeRequest(ctx context.Context, request *http.Request, response interface{}) error {
	request = request.WithContext(ctx)
	request.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return fmt.Errorf("http client: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &BadResponseError{StatusCode: resp.StatusCode, Body: string(respBytes)}
	}

	err = json.Unmarshal(respBytes, &response)
	if err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return nil
}
