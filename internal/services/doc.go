// Package services defines the shared error taxonomy used across the
// archive passes.
//
// Errors are tagged with sentinel markers so callers can distinguish
// structural problems (bad configuration, missing directories) that abort
// an invocation from per-file failures that are logged and skipped.
package services
