// Package apiclient provides the HTTP implementation of domain.Fetcher used
// by the edit-page loader, plus typed helpers for the pacenote API.
//
// Supported operations include:
//   - Fetching any API path as a raw response (Fetch).
//   - Listing recorded locations and stages.
//   - Saving the regions of a stage.
//
// All requests accept a context for cancellation and deadlines. Typed helpers
// return non-2xx statuses as errors with the HTTP method, path and status text.
package apiclient
