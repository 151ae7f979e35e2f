package domain

import (
	"context"
	"net/http"
)

// Fetcher issues a GET for an API path (e.g. "/api/stage/01/02/") and returns
// the raw response. The caller closes the body.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*http.Response, error)
}

// PacenoteStore persists per-stage recordings, regions and pacenotes.
type PacenoteStore interface {
	Recorded(stage Stage) bool
	Regions(stage Stage) (Regions, error)
	SaveRegions(stage Stage, regions Regions) error
	Track(stage Stage) ([]TrackPoint, error)
	FilePath(stage Stage, name string) (string, error)
}

// TelemetryStore is what the telemetry receiver needs: where to save new
// recordings and which cues to call for stages that already have pacenotes.
type TelemetryStore interface {
	HasPacenotes(stage Stage) bool
	Cues(stage Stage) ([]Cue, error)
	SaveTelemetry(stage Stage, points []TrackPoint) (string, error)
}
