// Package logging builds the slog loggers used by every archive pass.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for captured output. When no format is
// configured the choice follows whether stderr is a terminal.
//
// Components receive loggers through constructor injection; a nil logger
// is always replaced with a no-op handler so observability never changes
// behavior.
package logging
