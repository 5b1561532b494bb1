package trakt

import (
	"encoding/json"
	"io"
	"time"

	"stremport/internal/stremio"
)

// UnknownDate is the sentinel Trakt accepts when the real watch date cannot
// be recovered from the export.
const UnknownDate = "unknown"

// KindEpisode refines a show entry once season and episode numbers are known.
const KindEpisode = "episode"

// Entry is one record of the import payload. Underscore-prefixed fields are
// diagnostic passthrough, not part of the import schema.
type Entry struct {
	ImdbID        string  `json:"imdb_id"`
	Kind          string  `json:"type"`
	Title         string  `json:"title,omitempty"`
	Season        *int    `json:"season,omitempty"`
	Episode       *int    `json:"episode,omitempty"`
	WatchlistedAt string  `json:"watchlisted_at,omitempty"`
	WatchedAt     string  `json:"watched_at,omitempty"`
	Href          string  `json:"_href,omitempty"`
	PosterURL     string  `json:"_poster_url,omitempty"`
	Progress      float64 `json:"_progress,omitempty"`
	Year          int     `json:"_year,omitempty"`
	Duration      string  `json:"_duration,omitempty"`
	EpisodeTitle  string  `json:"_episode_title,omitempty"`
}

// Options controls filtering and timestamp behavior during conversion.
type Options struct {
	// AddWatchlist stamps watchlisted_at on every entry, watched or not.
	AddWatchlist bool
	// MarkUnknownDates uses the "unknown" sentinel for watched_at instead
	// of the conversion time.
	MarkUnknownDates bool
	// WatchedOnly drops entries that are neither marked watched nor past
	// the progress threshold.
	WatchedOnly bool
	// MinProgress drops entries below this progress percentage.
	MinProgress float64
}

// DefaultOptions mirrors the import behavior most users want: everything
// lands on the watchlist, watch dates are left unknown.
func DefaultOptions() Options {
	return Options{AddWatchlist: true, MarkUnknownDates: true}
}

// Convert filters and maps items into import entries, preserving discovery
// order. The now argument supplies every timestamp so conversion stays pure.
func Convert(items []stremio.Item, opts Options, now time.Time) []Entry {
	stamp := now.UTC().Format(time.RFC3339)

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if opts.MinProgress > 0 && item.Progress < opts.MinProgress {
			continue
		}
		if opts.WatchedOnly && !item.IsWatched() {
			continue
		}

		entry := Entry{
			ImdbID:       item.ImdbID,
			Kind:         string(item.Kind),
			Title:        item.Title,
			Href:         item.Href,
			PosterURL:    item.PosterURL,
			Progress:     item.Progress,
			Year:         item.Year,
			Duration:     item.Duration,
			EpisodeTitle: item.EpisodeTitle,
		}
		if item.IsEpisode() {
			entry.Kind = KindEpisode
			entry.Season = item.Season
			entry.Episode = item.Episode
		}
		if opts.AddWatchlist {
			entry.WatchlistedAt = stamp
		}
		if item.IsWatched() {
			if opts.MarkUnknownDates {
				entry.WatchedAt = UnknownDate
			} else {
				entry.WatchedAt = stamp
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// WriteJSON emits entries as a pretty-printed UTF-8 array with a trailing
// newline, suitable for handing straight to the Trakt importer.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
