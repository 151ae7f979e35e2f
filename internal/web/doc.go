// Package web is the HTTP front of the pacenote editor. It mounts the JSON
// API under /api/, answers a health check, and renders the edit view at
// /edit?location=NN&stage=NN from data produced by the edit-page loader.
//
// Views live in views.templ; views_templ.go is regenerated from it.
package web

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate -f views.templ
