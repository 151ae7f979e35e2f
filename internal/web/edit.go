package web

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"pacenote/internal/domain"
	"pacenote/internal/editpage"
)

// editView is what the edit page template renders.
type editView struct {
	Title    string
	Location string
	Stage    string
	Regions  domain.Regions
	AudioURL string
	MapURL   string
}

func (s *server) handleEdit(w http.ResponseWriter, r *http.Request) {
	res, err := editpage.Load(r.Context(), s.fetcher, r.URL)
	if err != nil {
		s.loadFailed(w, r, err)
		return
	}
	view, err := newEditView(res)
	if err != nil {
		s.loadFailed(w, r, err)
		return
	}

	templ.Handler(editPage(view), templ.WithErrorHandler(renderFailed)).ServeHTTP(w, r)
}

func (s *server) loadFailed(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("load edit page %s: %v", r.URL.RequestURI(), err)
	templ.Handler(errorPage(err),
		templ.WithStatus(http.StatusBadGateway),
		templ.WithErrorHandler(renderFailed),
	).ServeHTTP(w, r)
}

func renderFailed(r *http.Request, err error) http.Handler {
	log.Printf("render %s: %v", r.URL.Path, err)
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "render failed", http.StatusInternalServerError)
	})
}

func newEditView(res domain.LoadResult) (editView, error) {
	title, err := editpage.StageName(res)
	if err != nil {
		return editView{}, err
	}
	// An unknown stage answers a JSON error object instead of an array.
	regions, err := editpage.DecodeRegions(res)
	if err != nil {
		return editView{}, fmt.Errorf("stage %q: %w", res.URL, err)
	}
	location := res.Params.Get("location")
	stage := res.Params.Get("stage")
	base := url.PathEscape(location) + "/" + url.PathEscape(stage) + "/"
	return editView{
		Title:    title,
		Location: location,
		Stage:    stage,
		Regions:  regions,
		AudioURL: "/api/files/" + base + "capture.wav",
		MapURL:   "/api/map/" + base,
	}, nil
}
