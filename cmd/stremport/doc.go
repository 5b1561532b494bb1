// Package main hosts the stremport CLI entrypoint and command graph.
//
// The Cobra-based command tree turns a saved Stremio library page into a
// Trakt import file: the root command runs the conversion, inspect shows
// what the scanner recovered without converting, and config scaffolds or
// checks the optional TOML configuration. It centralizes configuration
// resolution and logger setup so subcommands can focus on user experience
// instead of wiring.
//
// Stdout belongs to the data stream. Diagnostics, summaries, and errors go
// to stderr so the JSON payload can be piped or redirected untouched.
package main
