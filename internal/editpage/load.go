package editpage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"pacenote/internal/domain"
)

// missingParam stands in for an absent query parameter. Missing parameters
// are not rejected; they produce paths like "undefined/undefined/".
const missingParam = "undefined"

// ParseParams reads the location and stage query parameters of u.
func ParseParams(u *url.URL) domain.LoadParams {
	q := u.Query()
	p := domain.LoadParams{
		Location: param(q, "location"),
		Stage:    param(q, "stage"),
	}
	p.ResourcePath = p.Location + "/" + p.Stage + "/"
	return p
}

func param(q url.Values, key string) string {
	if !q.Has(key) {
		return missingParam
	}
	return q.Get(key)
}

// Load fetches the stage label and regions for the edit view at u.
func Load(ctx context.Context, f domain.Fetcher, u *url.URL) (domain.LoadResult, error) {
	p := ParseParams(u)
	wire := url.PathEscape(p.Location) + "/" + url.PathEscape(p.Stage) + "/"

	stage, err := fetchJSON(ctx, f, "/api/stage/"+wire)
	if err != nil {
		return domain.LoadResult{}, err
	}
	regions, err := fetchJSON(ctx, f, "/api/regions/"+wire)
	if err != nil {
		return domain.LoadResult{}, err
	}

	return domain.LoadResult{
		URL:     p.ResourcePath,
		Params:  u.Query(),
		Stage:   stage,
		Regions: regions,
	}, nil
}

func fetchJSON(ctx context.Context, f domain.Fetcher, path string) (json.RawMessage, error) {
	resp, err := f.Fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %w", path, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", path, domain.ErrNetwork, err)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("decode %s: %w", path, domain.ErrParse)
	}
	return json.RawMessage(b), nil
}
