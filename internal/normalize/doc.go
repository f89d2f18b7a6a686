// Package normalize runs the album normalization pipeline.
//
// The Walker visits every album folder under a base folder in name order,
// skipping folders whose name already ends with the completion marker.
// Each remaining folder goes through the Processor:
//
//  1. title reconciliation with the operator (package reconcile)
//  2. album and artist inference (package infer)
//  3. tag rewrite and rename of every track to {number}{title}{ext}
//  4. track-number check against 1..count, with a loud warning on gaps
//  5. optional playlist and history entry
//
// after which the Walker renames the folder with the marker appended, so
// a second run never touches it again. A folder where a track could not be
// rewritten or renamed keeps its name and is retried next time.
//
// Usage:
//
//	processor := normalize.NewProcessor(settings, audio.NewID3Store(), console, journal, onProgress)
//	walker := normalize.NewWalker(settings, processor, console, onProgress)
//	summary, err := walker.Run(ctx, "/music")
//
// Per-file failures never abort a folder; they are collected as skips in
// the folder's AlbumReport and reported through the progress callback.
package normalize
