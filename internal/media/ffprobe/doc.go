// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Only container-level format metadata is requested; the date extractor
// needs the creation_time tag and nothing stream-specific. The probe runs
// one subprocess per file and any failure is reported to the caller as a
// regular error, never an abort of the batch.
package ffprobe
