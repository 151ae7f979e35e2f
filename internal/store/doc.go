// Package store provides file-based persistence for recorded stages.
//
// Each stage owns a directory under the log root (see catalog.Dir) holding:
//   - telemetry.log: "uid,elapsedNanos,x,y,z" samples written while recording;
//     later recordings of the same stage go to telemetry.log.1, .2, ...
//   - capture.wav: the co-driver audio captured alongside the telemetry
//   - regions.log: "start,end,content" spans marked in the editor
//   - pacenote.log: "x,y,z,content" calls generated from the two above
//
// All methods are concurrency-safe via internal locking.
package store
