package domain

import (
	"encoding/json"
	"net/url"
)

// StageID addresses a stage by 1-based location and stage numbers.
type StageID struct {
	Location int
	Stage    int
}

// Stage is a resolved stage with its display names.
type Stage struct {
	ID       StageID
	Location string
	Stage    string
}

// LocationStages is one entry of /api/locations: a rally location and the
// stages recorded for it.
type LocationStages struct {
	Name   string
	Stages []Stage
}

// Region is a pacenote call spanning [Start, End] seconds of the capture.
type Region struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Content string  `json:"content"`
}

type Regions []Region

// TrackPoint is one telemetry sample: elapsed capture time in nanoseconds and
// the vehicle position.
type TrackPoint struct {
	UID     uint64
	Elapsed int64
	X, Y, Z float64
}

// Cue is one pacenote.log line: a call and the position it belongs to.
type Cue struct {
	X, Y, Z float64
	Message string
}

// Result is the JSON status body returned by mutating or failing API calls.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoadParams are the edit view's query parameters.
type LoadParams struct {
	Location string
	Stage    string
	// ResourcePath is Location + "/" + Stage + "/".
	ResourcePath string
}

// LoadResult is what the edit view renders. It is built fresh on every load.
type LoadResult struct {
	URL     string          `json:"url"`
	Params  url.Values      `json:"params"`
	Stage   json.RawMessage `json:"stage"`
	Regions json.RawMessage `json:"regions"`
}
