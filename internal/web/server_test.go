package web_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacenote/internal/api"
	"pacenote/internal/apiclient"
	"pacenote/internal/catalog"
	"pacenote/internal/domain"
	"pacenote/internal/store"
	"pacenote/internal/web"
)

// newServer starts the full front with a fetcher that loops back to itself.
func newServer(t *testing.T, root string) *httptest.Server {
	t.Helper()
	var handler http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	h, err := web.New(web.Config{
		API:     api.New(store.NewFileStore(root)),
		Fetcher: apiclient.NewHTTP(srv.URL, srv.Client()),
	})
	require.NoError(t, err)
	handler = h
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := web.New(web.Config{})
	assert.Error(t, err)

	_, err = web.New(web.Config{API: http.NotFoundHandler()})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := newServer(t, t.TempDir())
	code, body := get(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestAPIMountedUnderPrefix(t *testing.T) {
	srv := newServer(t, t.TempDir())
	code, body := get(t, srv, "/api/hello")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello World!\n", body)
}

func TestEditPage_RendersLoadedStage(t *testing.T) {
	root := t.TempDir()
	st, ok := catalog.Resolve("1", "3")
	require.True(t, ok)
	dir := filepath.Join(root, catalog.Dir(st))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "regions.log"), []byte("1.000000,2.000000,caution <jump>\n"), 0o644))

	srv := newServer(t, root)
	code, body := get(t, srv, "/edit?location=1&stage=3")
	require.Equal(t, http.StatusOK, code, body)

	assert.True(t, strings.HasPrefix(body, "<!doctype html><html>"), body)
	assert.Contains(t, body, "<tr><td>1.000</td><td>2.000</td>")
	assert.Contains(t, body, "<title>01.Rallye Monte-Carlo / 03.La Bollène-Vésubie - Col de Turini</title>")
	assert.Contains(t, body, "caution &lt;jump&gt;")
	assert.Contains(t, body, `src="/api/files/1/3/capture.wav"`)
	assert.Contains(t, body, `src="/api/map/1/3/"`)
}

func TestEditPage_UnknownStageFails(t *testing.T) {
	srv := newServer(t, t.TempDir())
	code, body := get(t, srv, "/edit")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, body, "load failed")
	assert.Contains(t, body, "undefined/undefined/")
}

type downFetcher struct{}

func (downFetcher) Fetch(context.Context, string) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestEditPage_NetworkFailure(t *testing.T) {
	h, err := web.New(web.Config{API: http.NotFoundHandler(), Fetcher: downFetcher{}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/edit?location=1&stage=1", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), domain.ErrNetwork.Error()))
}
