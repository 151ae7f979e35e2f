package domain

import "errors"

var (
	// ErrNetwork marks a fetch that failed before a response arrived.
	ErrNetwork = errors.New("network failure")
	// ErrParse marks a response body that is not valid JSON.
	ErrParse = errors.New("invalid json")
	// ErrStageNotFound marks a location/stage pair outside the catalog.
	ErrStageNotFound = errors.New("stage not found")
	// ErrInvalidName marks a file name that escapes its stage directory.
	ErrInvalidName = errors.New("invalid file name")
)
