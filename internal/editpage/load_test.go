package editpage_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacenote/internal/apiclient"
	"pacenote/internal/domain"
	"pacenote/internal/editpage"
)

type fakeFetcher struct {
	bodies map[string]string
	fail   map[string]error
	paths  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) (*http.Response, error) {
	f.paths = append(f.paths, path)
	if err := f.fail[path]; err != nil {
		return nil, err
	}
	body, ok := f.bodies[path]
	if !ok {
		body = `{"success":false,"message":"not found"}`
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestParseParams(t *testing.T) {
	p := editpage.ParseParams(mustURL(t, "/edit?location=us&stage=draft"))
	assert.Equal(t, domain.LoadParams{Location: "us", Stage: "draft", ResourcePath: "us/draft/"}, p)
}

func TestParseParams_MissingBecomesUndefined(t *testing.T) {
	p := editpage.ParseParams(mustURL(t, "/edit"))
	assert.Equal(t, "undefined/undefined/", p.ResourcePath)

	p = editpage.ParseParams(mustURL(t, "/edit?location=03"))
	assert.Equal(t, "03/undefined/", p.ResourcePath)

	p = editpage.ParseParams(mustURL(t, "/edit?location=&stage="))
	assert.Equal(t, "//", p.ResourcePath)
}

func TestLoad_FetchesStageThenRegions(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{
		"/api/stage/us/draft/":   `"01.Rallye Monte-Carlo / 01.Les Borels"`,
		"/api/regions/us/draft/": `[{"start":1.5,"end":2,"content":"left 3"}]`,
	}}

	res, err := editpage.Load(context.Background(), f, mustURL(t, "/edit?location=us&stage=draft"))
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/stage/us/draft/", "/api/regions/us/draft/"}, f.paths)
	assert.Equal(t, "us/draft/", res.URL)
	assert.Equal(t, "us", res.Params.Get("location"))
	assert.Equal(t, "draft", res.Params.Get("stage"))
	assert.JSONEq(t, `"01.Rallye Monte-Carlo / 01.Les Borels"`, string(res.Stage))
	assert.JSONEq(t, `[{"start":1.5,"end":2,"content":"left 3"}]`, string(res.Regions))

	name, err := editpage.StageName(res)
	require.NoError(t, err)
	assert.Equal(t, "01.Rallye Monte-Carlo / 01.Les Borels", name)

	regions, err := editpage.DecodeRegions(res)
	require.NoError(t, err)
	assert.Equal(t, domain.Regions{{Start: 1.5, End: 2, Content: "left 3"}}, regions)
}

func TestLoad_MissingParamsUseLiteralPath(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{
		"/api/stage/undefined/undefined/":   `""`,
		"/api/regions/undefined/undefined/": `{"success":false,"message":"stage not found"}`,
	}}

	res, err := editpage.Load(context.Background(), f, mustURL(t, "/edit"))
	require.NoError(t, err)
	assert.Equal(t, "undefined/undefined/", res.URL)
	assert.Equal(t, []string{"/api/stage/undefined/undefined/", "/api/regions/undefined/undefined/"}, f.paths)
}

func TestLoad_StageFetchFailureAborts(t *testing.T) {
	errDial := errors.New("dial tcp: connection refused")
	f := &fakeFetcher{fail: map[string]error{"/api/stage/us/draft/": errDial}}

	_, err := editpage.Load(context.Background(), f, mustURL(t, "/edit?location=us&stage=draft"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, err, errDial)
	assert.Equal(t, []string{"/api/stage/us/draft/"}, f.paths, "regions must not be fetched")
}

func TestLoad_RegionsFetchFailure(t *testing.T) {
	f := &fakeFetcher{
		bodies: map[string]string{"/api/stage/us/draft/": `"x"`},
		fail:   map[string]error{"/api/regions/us/draft/": errors.New("reset")},
	}

	_, err := editpage.Load(context.Background(), f, mustURL(t, "/edit?location=us&stage=draft"))
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestLoad_InvalidJSON(t *testing.T) {
	for name, bodies := range map[string]map[string]string{
		"stage": {
			"/api/stage/us/draft/":   `<html>oops</html>`,
			"/api/regions/us/draft/": `[]`,
		},
		"regions": {
			"/api/stage/us/draft/":   `"x"`,
			"/api/regions/us/draft/": `[{"start":1`,
		},
		"trailing data": {
			"/api/stage/us/draft/":   `"x" "y"`,
			"/api/regions/us/draft/": `[]`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			f := &fakeFetcher{bodies: bodies}
			res, err := editpage.Load(context.Background(), f, mustURL(t, "/edit?location=us&stage=draft"))
			require.ErrorIs(t, err, domain.ErrParse)
			assert.Empty(t, res.Stage)
			assert.Empty(t, res.Regions)
		})
	}
}

func TestLoad_OverHTTP(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/stage/01/02/":
			_, _ = io.WriteString(w, `"01.Rallye Monte-Carlo / 02.Peïra Cava - La Bollène-Vésubie"`)
		case "/api/regions/01/02/":
			_, _ = io.WriteString(w, `[]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := apiclient.NewHTTP(srv.URL, srv.Client())
	res, err := editpage.Load(context.Background(), client, mustURL(t, "/edit?location=01&stage=02"))
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/stage/01/02/", "/api/regions/01/02/"}, paths)
	assert.Equal(t, "01/02/", res.URL)
	assert.JSONEq(t, `[]`, string(res.Regions))
}

func TestLoad_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := editpage.Load(context.Background(), apiclient.NewHTTP(base, nil), mustURL(t, "/edit?location=1&stage=1"))
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
