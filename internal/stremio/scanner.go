package stremio

import (
	"errors"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ContainerClass marks the anchor element wrapping one library card. Exports
// without it yield no items; the CLI names it in the remediation hint.
const ContainerClass = "meta-item-container"

var (
	// ErrEmptyInput reports an empty or whitespace-only document.
	ErrEmptyInput = errors.New("input document is empty")
	// ErrNoItems reports a completed scan that discovered nothing.
	ErrNoItems = errors.New("no media items found")
)

var (
	detailHrefPattern    = regexp.MustCompile(`#/detail/(movie|series)/(tt\d+)`)
	episodeHrefPattern   = regexp.MustCompile(`(tt\d+):(\d+):(\d+)`)
	progressWidthPattern = regexp.MustCompile(`width:\s*([\d.]+)%`)
	backgroundURLPattern = regexp.MustCompile(`background-image:\s*url\(["']?([^"')\s]+)["']?\)`)
	posterShapePattern   = regexp.MustCompile(`poster-shape-(\w+)`)
	yearPattern          = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// captureField names the item field the next text event should populate.
type captureField int

const (
	captureNone captureField = iota
	captureTitle
	captureReleaseInfo
	captureDuration
	captureEpisodeTitle
)

// scanner carries the per-document state threaded through the token loop.
type scanner struct {
	items   []Item
	current *Item
	capture captureField
}

// Scan reads an entire export document and returns the items it contains in
// discovery order. Malformed markup degrades to absent fields; the only error
// Scan itself raises is ErrEmptyInput. A well-formed document with no library
// cards returns an empty, non-nil slice — callers decide whether that is
// ErrNoItems.
func Scan(r io.Reader) ([]Item, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := string(raw)
	if strings.TrimSpace(doc) == "" {
		return nil, ErrEmptyInput
	}

	s := &scanner{items: []Item{}}
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// The tokenizer only errors at end of input when reading
			// from memory.
			return s.items, nil
		case html.StartTagToken:
			tag, attrs := readTag(z)
			s.startTag(tag, attrs)
		case html.SelfClosingTagToken:
			tag, attrs := readTag(z)
			s.startTag(tag, attrs)
			s.endTag(tag)
		case html.TextToken:
			s.text(string(z.Text()))
		case html.EndTagToken:
			tag, _ := z.TagName()
			s.endTag(string(tag))
		}
	}
}

func readTag(z *html.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	attrs := make(map[string]string)
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		attrs[string(key)] = string(val)
	}
	return string(name), attrs
}

func (s *scanner) startTag(tag string, attrs map[string]string) {
	class := attrs["class"]

	if tag == "a" && strings.Contains(class, ContainerClass) {
		s.openItem(attrs)
	}
	if s.current == nil {
		return
	}

	lower := strings.ToLower(class)
	style := attrs["style"]

	if tag == "div" {
		if strings.Contains(class, "watched-icon-layer") {
			s.current.Watched = true
		}
		// Stremio has shipped both progress-bar and progressBar.
		if strings.Contains(class, "progress-bar") || strings.Contains(lower, "progressbar") {
			if m := progressWidthPattern.FindStringSubmatch(style); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					s.current.Progress = min(v, 100)
				}
			}
		}
		if strings.Contains(lower, "poster") || strings.Contains(lower, "thumbnail") || strings.Contains(lower, "image") {
			if s.current.PosterURL == "" {
				if m := backgroundURLPattern.FindStringSubmatch(style); m != nil {
					s.current.PosterURL = decodeURL(m[1])
				}
			}
			if strings.Contains(class, "poster-shape") {
				if m := posterShapePattern.FindStringSubmatch(class); m != nil {
					s.current.PosterShape = m[1]
				}
			}
		}
	}

	if tag == "img" {
		if src := attrs["src"]; src != "" && s.current.PosterURL == "" {
			s.current.PosterURL = decodeURL(src)
		}
		if alt := attrs["alt"]; alt != "" && s.current.Title == "" {
			s.current.Title = alt
		}
	}

	// Text-bearing elements arm capture for the next text event. The rules
	// run in a fixed order and the last match wins, so an element classed
	// both "name" and "release" captures release info.
	if (tag == "div" || tag == "span" || tag == "p") && class != "" {
		if strings.Contains(lower, "title") || strings.Contains(lower, "name") || strings.Contains(lower, "label") {
			s.capture = captureTitle
		}
		if strings.Contains(lower, "year") || strings.Contains(lower, "release") || strings.Contains(lower, "date") {
			s.capture = captureReleaseInfo
		}
		if strings.Contains(lower, "duration") || strings.Contains(lower, "runtime") || strings.Contains(lower, "time") {
			s.capture = captureDuration
		}
		if strings.Contains(lower, "episode") && strings.Contains(lower, "title") {
			s.capture = captureEpisodeTitle
		}
	}

	// Catch-all for background images on elements the class rules missed.
	if style != "" && s.current.PosterURL == "" && strings.Contains(style, "background-image") {
		if m := backgroundURLPattern.FindStringSubmatch(style); m != nil {
			s.current.PosterURL = decodeURL(m[1])
		}
	}
}

// openItem starts a new item from a library card anchor. Anchors carrying the
// container class but no parsable detail href are ignored.
func (s *scanner) openItem(attrs map[string]string) {
	href := attrs["href"]
	m := detailHrefPattern.FindStringSubmatch(href)
	if m == nil {
		return
	}

	item := &Item{
		ImdbID: m[2],
		Kind:   KindMovie,
		Title:  attrs["title"],
		Href:   href,
	}
	if m[1] == "series" {
		item.Kind = KindShow
	}

	// Hrefs like tt5875444:5:3 address season 5, episode 3.
	if em := episodeHrefPattern.FindStringSubmatch(href); em != nil {
		season, serr := strconv.Atoi(em[2])
		episode, eerr := strconv.Atoi(em[3])
		if serr == nil && eerr == nil {
			item.Season = &season
			item.Episode = &episode
		}
	}

	for key, value := range attrs {
		if strings.HasPrefix(key, "data-") {
			if item.Extra == nil {
				item.Extra = make(map[string]string)
			}
			item.Extra[key] = value
		}
	}

	s.current = item
}

func (s *scanner) text(data string) {
	if s.current == nil || s.capture == captureNone {
		return
	}
	text := strings.TrimSpace(data)
	if text == "" {
		return
	}
	switch s.capture {
	case captureReleaseInfo:
		s.current.ReleaseInfo = text
		if y := yearPattern.FindString(text); y != "" {
			if year, err := strconv.Atoi(y); err == nil {
				s.current.Year = year
			}
		}
	case captureDuration:
		s.current.Duration = text
	case captureEpisodeTitle:
		s.current.EpisodeTitle = text
	case captureTitle:
		// The title attribute and image alt text outrank nested labels.
		if s.current.Title == "" {
			s.current.Title = text
		}
	}
}

func (s *scanner) endTag(tag string) {
	switch tag {
	case "div", "span", "p":
		s.capture = captureNone
	case "a":
		if s.current != nil {
			s.items = append(s.items, *s.current)
			s.current = nil
		}
	}
}

// decodeURL undoes percent-encoding, keeping the raw value when it does not
// decode cleanly.
func decodeURL(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
