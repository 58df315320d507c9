// Package main hosts the mediarch CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into archive
// operations: organizing source media into the year/month tree, grouping
// organized files into event folders, deduplicating exact copies, and
// configuration scaffolding. It centralizes configuration resolution, archive
// locking, and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
