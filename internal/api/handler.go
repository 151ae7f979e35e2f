package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"pacenote/internal/catalog"
	"pacenote/internal/digest"
	"pacenote/internal/domain"
)

type handler struct {
	store domain.PacenoteStore
}

// New returns the API routes backed by s.
func New(s domain.PacenoteStore) http.Handler {
	h := &handler{store: s}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /hello", h.hello)
	mux.HandleFunc("GET /locations", h.locations)
	mux.HandleFunc("GET /stage/{location}/{stage}/{$}", h.stageName)
	mux.HandleFunc("GET /regions/{location}/{stage}/{$}", h.getRegions)
	mux.HandleFunc("POST /regions/{location}/{stage}/{$}", h.postRegions)
	mux.HandleFunc("GET /files/{location}/{stage}/{name}", h.files)
	mux.HandleFunc("GET /map/{location}/{stage}/{$}", h.mapgen)
	return mux
}

func (h *handler) hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello World!\n"))
}

func (h *handler) locations(w http.ResponseWriter, _ *http.Request) {
	locations := []domain.LocationStages{}
	for i, loc := range catalog.Locations {
		stages := []domain.Stage{}
		for _, st := range catalog.Stages(i + 1) {
			if h.store.Recorded(st) {
				stages = append(stages, st)
			}
		}
		if len(stages) == 0 {
			continue
		}
		locations = append(locations, domain.LocationStages{Name: loc.Name, Stages: stages})
	}
	writeJSON(w, http.StatusOK, locations)
}

func (h *handler) stageName(w http.ResponseWriter, r *http.Request) {
	label := ""
	if st, ok := resolve(r); ok {
		label = catalog.Label(st)
	}
	writeJSON(w, http.StatusOK, label)
}

func (h *handler) getRegions(w http.ResponseWriter, r *http.Request) {
	st, ok := resolve(r)
	if !ok {
		writeError(w, http.StatusBadRequest, stageNotFound(r))
		return
	}
	regions, err := h.store.Regions(st)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("regions load failed: %w", err))
		return
	}

	b, err := json.Marshal(regions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	tag := digest.ETag(b)
	w.Header().Set("ETag", tag)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(append(b, '\n'))
}

func (h *handler) postRegions(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	st, ok := resolve(r)
	if !ok {
		writeError(w, http.StatusBadRequest, stageNotFound(r))
		return
	}
	var regions domain.Regions
	if err := json.NewDecoder(r.Body).Decode(&regions); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("regions decode failed: %w", err))
		return
	}
	if err := h.store.SaveRegions(st, regions); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusBadRequest
		}
		writeError(w, status, fmt.Errorf("regions save failed: %w", err))
		return
	}
	log.Printf("regions saved: %s (%d)", catalog.Label(st), len(regions))
	writeJSON(w, http.StatusOK, domain.Result{Success: true})
}

func (h *handler) files(w http.ResponseWriter, r *http.Request) {
	st, ok := resolve(r)
	if !ok {
		writeError(w, http.StatusNotFound, stageNotFound(r))
		return
	}
	fpath, err := h.store.FilePath(st, r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := os.Stat(fpath); err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("file not found: %q", r.PathValue("name")))
		return
	}
	http.ServeFile(w, r, fpath)
}

func (h *handler) mapgen(w http.ResponseWriter, r *http.Request) {
	st, ok := resolve(r)
	if !ok {
		writeError(w, http.StatusNotFound, stageNotFound(r))
		return
	}
	track, err := h.store.Track(st)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if len(track) == 0 {
		writeError(w, http.StatusNotFound, errors.New("telemetry is empty"))
		return
	}

	var buf bytes.Buffer
	drawTrack(&buf, catalog.Label(st), track)
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

func resolve(r *http.Request) (domain.Stage, bool) {
	return catalog.Resolve(r.PathValue("location"), r.PathValue("stage"))
}

func stageNotFound(r *http.Request) error {
	return fmt.Errorf("%w: %q/%q", domain.ErrStageNotFound, r.PathValue("location"), r.PathValue("stage"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Println("encode failed:", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Println(err)
	b, _ := json.Marshal(domain.Result{Success: false, Message: err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}
