// Package trakt shapes scanned library items into the JSON schema accepted
// by the Trakt list import. Conversion is a pure mapping: it filters by watch
// state and progress, refines shows into episodes when season numbers are
// known, and stamps watchlist/watched timestamps. Fields outside the import
// schema travel along under an underscore prefix so an import run can be
// audited without them being treated as schema fields.
package trakt
