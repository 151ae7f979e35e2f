package app

import (
	"net/http"

	"pacenote/internal/api"
	"pacenote/internal/apiclient"
	"pacenote/internal/store"
	"pacenote/internal/web"
)

// Wire bundles the store and the front handler built from a Config.
type Wire struct {
	Store   *store.FileStore
	Handler http.Handler
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	fs := store.NewFileStore(cfg.LogDir)

	// The edit view loads through the public API at cfg.APIBase.
	client := apiclient.NewHTTP(cfg.APIBase, &http.Client{Timeout: cfg.HTTPTimeout})

	front, err := web.New(web.Config{API: api.New(fs), Fetcher: client})
	if err != nil {
		return nil, err
	}

	return &Wire{Store: fs, Handler: front}, nil
}
