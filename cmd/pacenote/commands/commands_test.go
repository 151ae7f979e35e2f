package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			var regions []map[string]any
			if r.URL.Path != "/api/regions/01/02/" || json.NewDecoder(r.Body).Decode(&regions) != nil {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"success":false,"message":"stage not found"}`)
				return
			}
			_, _ = io.WriteString(w, `{"success":true,"message":""}`)
			return
		}
		switch r.URL.Path {
		case "/api/stage/01/02/":
			_, _ = io.WriteString(w, `"01.Rallye Monte-Carlo / 02.Peïra Cava - La Bollène-Vésubie"`)
		case "/api/regions/01/02/":
			_, _ = io.WriteString(w, `[{"start":1,"end":2,"content":"left 3"}]`)
		case "/api/locations":
			_, _ = io.WriteString(w, `[{"Name":"Rally Sweden","Stages":[{"ID":{"Location":2,"Stage":1},"Location":"Rally Sweden","Stage":"Hof-Finnskog"}]}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PACENOTE_LOG_DIR", t.TempDir())
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLoadCommand_PrintsResult(t *testing.T) {
	srv := fakeAPI(t)

	out, err := run(t, "load", "--api", srv.URL, "--location", "01", "--stage", "02")
	require.NoError(t, err)

	var got struct {
		URL     string              `json:"url"`
		Params  map[string][]string `json:"params"`
		Stage   string              `json:"stage"`
		Regions []map[string]any    `json:"regions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "01/02/", got.URL)
	assert.Equal(t, []string{"01"}, got.Params["location"])
	assert.Equal(t, "01.Rallye Monte-Carlo / 02.Peïra Cava - La Bollène-Vésubie", got.Stage)
	assert.Len(t, got.Regions, 1)
}

func TestLoadCommand_InvalidJSONFails(t *testing.T) {
	srv := fakeAPI(t)

	// Unknown paths answer a plain-text 404 body.
	_, err := run(t, "load", "--api", srv.URL, "--location", "09", "--stage", "09")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestLocationsCommand(t *testing.T) {
	srv := fakeAPI(t)

	out, err := run(t, "locations", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Rally Sweden\n")
	assert.Contains(t, out, "02.Rally Sweden / 01.Hof-Finnskog")
	assert.Contains(t, out, "--location 2 --stage 1")
}

func TestRootFlagsOverrideEnv(t *testing.T) {
	srv := fakeAPI(t)
	t.Setenv("PACENOTE_API_BASE", "http://127.0.0.1:1")

	_, err := run(t, "locations", "--api", srv.URL, "--listen", "127.0.0.1:9000")
	require.NoError(t, err)
	assert.Equal(t, srv.URL, cfg.APIBase)
	assert.Equal(t, "127.0.0.1:9000", cfg.WebListen)
}

func TestSaveCommand_FromFile(t *testing.T) {
	srv := fakeAPI(t)
	path := filepath.Join(t.TempDir(), "regions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"start":1,"end":2,"content":"left 3"}]`), 0o644))

	out, err := run(t, "save", "--api", srv.URL, "--location", "01", "--stage", "02", path)
	require.NoError(t, err)
	assert.Equal(t, "saved 1 regions to 01/02\n", out)
}

func TestSaveCommand_FromStdin(t *testing.T) {
	srv := fakeAPI(t)

	_, err := runWithInput(t, `[]`, "save", "--api", srv.URL, "--location", "01", "--stage", "02", "-")
	require.NoError(t, err)
}

func TestSaveCommand_Errors(t *testing.T) {
	srv := fakeAPI(t)

	_, err := runWithInput(t, `[]`, "save", "--api", srv.URL, "--location", "09", "--stage", "09", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage not found")

	_, err = runWithInput(t, `{not json`, "save", "--api", srv.URL, "--location", "01", "--stage", "02", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "regions decode failed")

	_, err = run(t, "save", "--api", srv.URL, "-")
	assert.Error(t, err)
}

func TestRecordCommand_StopsOnCancel(t *testing.T) {
	t.Setenv("PACENOTE_LOG_DIR", t.TempDir())
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"record", "--udp", "127.0.0.1:0", "--offset", "5"})
	require.NoError(t, root.ExecuteContext(ctx))
}
