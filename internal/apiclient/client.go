package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"pacenote/internal/domain"
)

// HTTPClient talks to the pacenote JSON API at Base. It implements
// domain.Fetcher for the edit-page loader.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTP builds a client for base (e.g. "http://127.0.0.1:8080"). A nil hc
// uses http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

var _ domain.Fetcher = (*HTTPClient)(nil)

// Fetch GETs Base+path. The response is returned whatever its status.
func (c *HTTPClient) Fetch(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.HTTP.Do(req)
}

// Locations lists the locations that have at least one recorded stage.
func (c *HTTPClient) Locations(ctx context.Context) ([]domain.LocationStages, error) {
	var out []domain.LocationStages
	if err := c.getJSON(ctx, "/api/locations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveRegions replaces the regions of location/stage and regenerates its
// pacenotes on the server.
func (c *HTTPClient) SaveRegions(ctx context.Context, location, stage string, regions domain.Regions) error {
	var res domain.Result
	p := "/api/regions/" + url.PathEscape(location) + "/" + url.PathEscape(stage) + "/"
	if err := c.post(ctx, p, regions, &res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("api post %s: %s", p, res.Message)
	}
	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("api post %s: %s%s", path, resp.Status, resultMessage(resp))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Fetch(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("api get %s: %s%s", path, resp.Status, resultMessage(resp))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// resultMessage extracts the message of a JSON error body, if any.
func resultMessage(resp *http.Response) string {
	var res domain.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || res.Message == "" {
		return ""
	}
	return ": " + res.Message
}
