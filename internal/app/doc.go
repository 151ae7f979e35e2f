// Package app loads runtime configuration and wires the store, API, client
// and web front into a runnable server.
package app
