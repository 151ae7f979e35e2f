// Package editpage loads the data the edit view renders.
//
// Load derives a resource path from the "location" and "stage" query
// parameters and fetches, one after the other, the stage label and the saved
// regions from the pacenote API:
//
//	GET /api/stage/<location>/<stage>/
//	GET /api/regions/<location>/<stage>/
//
// Both bodies are kept as raw JSON. The first failure aborts the load: a
// failed fetch wraps domain.ErrNetwork, a body that is not valid JSON wraps
// domain.ErrParse. There is no retry and no partial result.
package editpage
