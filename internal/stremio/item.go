package stremio

// Kind classifies a library item by the detail route embedded in its href.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
)

// Item is one media entry recovered from the export. Fields the scanner
// never discovers stay at their zero value and are omitted from JSON output.
type Item struct {
	ImdbID       string            `json:"imdb_id"`
	Kind         Kind              `json:"type"`
	Title        string            `json:"title,omitempty"`
	Href         string            `json:"href,omitempty"`
	Watched      bool              `json:"is_watched"`
	Progress     float64           `json:"progress"`
	Season       *int              `json:"season,omitempty"`
	Episode      *int              `json:"episode,omitempty"`
	PosterURL    string            `json:"poster_url,omitempty"`
	PosterShape  string            `json:"poster_shape,omitempty"`
	Year         int               `json:"year,omitempty"`
	Duration     string            `json:"duration,omitempty"`
	EpisodeTitle string            `json:"episode_title,omitempty"`
	ReleaseInfo  string            `json:"release_info,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// IsEpisode reports whether the href carried season and episode numbers.
func (i Item) IsEpisode() bool {
	return i.Season != nil && i.Episode != nil
}

// IsWatched applies the watch heuristic shared by filtering and conversion:
// an explicit watched marker, or playback progress past 90 percent.
func (i Item) IsWatched() bool {
	return i.Watched || i.Progress > 90
}

// Summary holds per-kind counts for a scanned library.
type Summary struct {
	Total    int
	Movies   int
	Shows    int
	Episodes int
	Watched  int
}

// Summarize counts items by kind. Shows with season/episode numbers count as
// episodes, not shows.
func Summarize(items []Item) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		switch {
		case item.IsEpisode():
			s.Episodes++
		case item.Kind == KindShow:
			s.Shows++
		default:
			s.Movies++
		}
		if item.IsWatched() {
			s.Watched++
		}
	}
	return s
}
