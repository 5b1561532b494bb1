// Package stremio extracts media library items from a Stremio HTML library
// export.
//
// A Stremio export has no formal schema: each library entry is an anchor
// element carrying a meta-item-container class whose href encodes the IMDB
// identifier (and, for episodes, season and episode numbers), with watch
// state, poster art, and display text scattered across loosely named
// descendant elements. The scanner recovers that structure with a single
// forward pass over the token stream — no DOM is built and no lookahead is
// performed beyond the current tag or text event.
//
// Identification is heuristic by necessity. Class names are matched with
// case-insensitive substring tests against the naming conventions observed
// across Stremio releases (progress-bar vs progressBar, poster vs thumbnail,
// and so on), and field population follows deliberate first-wins or
// last-wins rules per field. Malformed or missing markup degrades to absent
// fields rather than errors; the only hard failures are an empty input
// document and a scan that discovers nothing at all.
package stremio
