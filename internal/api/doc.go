// Package api serves the pacenote editor's JSON API. It is mounted under
// /api by the web front, so the routes below are relative to that prefix.
//
//	GET  /hello
//	    Liveness text.
//
//	GET  /locations
//	    Locations that have at least one recorded stage, each with the list of
//	    its recorded stages.
//
//	GET  /stage/{location}/{stage}/
//	    JSON string label "NN.<Location> / NN.<Stage>"; "" for an unknown stage.
//
//	GET  /regions/{location}/{stage}/
//	    Saved regions as a JSON array. Responses carry an ETag and honour
//	    If-None-Match.
//
//	POST /regions/{location}/{stage}/
//	    Replace the regions and regenerate pacenote.log.
//
//	GET  /files/{location}/{stage}/{name}
//	    A raw file from the stage directory (capture.wav, telemetry.log, ...).
//
//	GET  /map/{location}/{stage}/
//	    SVG map of the recorded track.
//
// Failures answer {"success":false,"message":...} with a 4xx/5xx status.
package api
