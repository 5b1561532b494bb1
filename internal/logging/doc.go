// Package logging constructs the slog logger behind stremport diagnostics.
//
// The converted JSON owns stdout, so every human-facing message — discovery
// summaries, remediation hints, debug detail — goes through a logger bound
// to stderr. Two formats are supported: console, a compact key=value line
// for terminals, and json for capturing runs in scripts.
package logging
