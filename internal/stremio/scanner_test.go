package stremio_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"stremport/internal/stremio"
	"stremport/internal/testsupport"
)

func scan(t *testing.T, doc string) []stremio.Item {
	t.Helper()
	items, err := stremio.Scan(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	return items
}

func TestScanSingleWatchedMovie(t *testing.T) {
	doc := testsupport.ExportPage(testsupport.Card{
		Href:    "#/detail/movie/tt1234567",
		Title:   "Example Film",
		Watched: true,
		Attrs:   map[string]string{"data-catalog": "library"},
	})

	items := scan(t, doc)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.ImdbID != "tt1234567" {
		t.Fatalf("unexpected imdb id: %q", item.ImdbID)
	}
	if item.Kind != stremio.KindMovie {
		t.Fatalf("unexpected kind: %q", item.Kind)
	}
	if item.Title != "Example Film" {
		t.Fatalf("unexpected title: %q", item.Title)
	}
	if !item.Watched {
		t.Fatal("expected watched marker to be detected")
	}
	if item.Href != "#/detail/movie/tt1234567" {
		t.Fatalf("unexpected href: %q", item.Href)
	}
	if item.IsEpisode() {
		t.Fatal("movie must not be an episode")
	}
	if got := item.Extra["data-catalog"]; got != "library" {
		t.Fatalf("expected data attribute passthrough, got %q", got)
	}
}

func TestScanEpisodeHrefAndProgress(t *testing.T) {
	doc := testsupport.ExportPage(testsupport.Card{
		Href:     "#/detail/series/tt7654321:2:5",
		Title:    "Example Show",
		Progress: "45.5%",
	})

	items := scan(t, doc)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Kind != stremio.KindShow {
		t.Fatalf("series href must classify as show, got %q", item.Kind)
	}
	if !item.IsEpisode() {
		t.Fatal("expected season and episode to be parsed")
	}
	if *item.Season != 2 || *item.Episode != 5 {
		t.Fatalf("unexpected season/episode: %d/%d", *item.Season, *item.Episode)
	}
	if item.Progress != 45.5 {
		t.Fatalf("unexpected progress: %v", item.Progress)
	}
	if item.Watched {
		t.Fatal("no watched marker present")
	}
	if item.IsWatched() {
		t.Fatal("45.5%% progress must not count as watched")
	}
}

func TestScanTitlePriority(t *testing.T) {
	attr := testsupport.Card{
		Href:   "#/detail/movie/tt0000001",
		Title:  "From Attribute",
		ImgSrc: "poster.jpg",
		ImgAlt: "From Alt",
		Spans:  [][2]string{{"title-label", "From Label"}},
	}
	alt := testsupport.Card{
		Href:   "#/detail/movie/tt0000002",
		ImgSrc: "poster.jpg",
		ImgAlt: "From Alt",
		Spans:  [][2]string{{"title-label", "From Label"}},
	}
	label := testsupport.Card{
		Href:  "#/detail/movie/tt0000003",
		Spans: [][2]string{{"name", "From Label"}, {"label", "Second Label"}},
	}

	items := scan(t, testsupport.ExportPage(attr, alt, label))
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Title != "From Attribute" {
		t.Fatalf("title attribute must win, got %q", items[0].Title)
	}
	if items[1].Title != "From Alt" {
		t.Fatalf("img alt must win over nested label, got %q", items[1].Title)
	}
	if items[2].Title != "From Label" {
		t.Fatalf("first nested label must win, got %q", items[2].Title)
	}
}

func TestScanTextCaptureTargets(t *testing.T) {
	doc := testsupport.ExportPage(testsupport.Card{
		Href: "#/detail/movie/tt0137523",
		Spans: [][2]string{
			{"release-info", "1999 • Drama"},
			{"duration", "2h 19min"},
			{"episode-title", "Not Actually An Episode"},
		},
	})

	items := scan(t, doc)
	item := items[0]
	if item.ReleaseInfo != "1999 • Drama" {
		t.Fatalf("unexpected release info: %q", item.ReleaseInfo)
	}
	if item.Year != 1999 {
		t.Fatalf("expected year extracted from release info, got %d", item.Year)
	}
	if item.Duration != "2h 19min" {
		t.Fatalf("unexpected duration: %q", item.Duration)
	}
	// An "episode" + "title" class routes to the episode title even though
	// the title rule also matches; the last rule evaluated wins.
	if item.EpisodeTitle != "Not Actually An Episode" {
		t.Fatalf("unexpected episode title: %q", item.EpisodeTitle)
	}
	if item.Title != "" {
		t.Fatalf("episode-title text must not become the display title, got %q", item.Title)
	}
}

func TestScanCaptureSurvivesInlineMarkup(t *testing.T) {
	doc := testsupport.ExportPage(testsupport.Card{
		Href: "#/detail/movie/tt0000004",
		Body: `<span class="name"><b>Bold Title</b></span>`,
	})

	items := scan(t, doc)
	if items[0].Title != "Bold Title" {
		t.Fatalf("capture must span inline elements, got %q", items[0].Title)
	}
}

func TestScanCaptureDisarmsAtElementEnd(t *testing.T) {
	doc := testsupport.ExportPage(testsupport.Card{
		Href: "#/detail/movie/tt0000005",
		Body: `<span class="name"></span><span class="plain">Stray Text</span>`,
	})

	items := scan(t, doc)
	if items[0].Title != "" {
		t.Fatalf("closing the label span must disarm capture, got %q", items[0].Title)
	}
}

func TestScanPosterPriority(t *testing.T) {
	posterWins := testsupport.Card{
		Href:        "#/detail/movie/tt0000006",
		PosterStyle: "background-image: url('https://img.example/first%20poster.jpg')",
		ImgSrc:      "https://img.example/second.jpg",
	}
	imgFallback := testsupport.Card{
		Href:   "#/detail/movie/tt0000007",
		ImgSrc: "https://img.example/from%2Fimg.jpg",
	}
	inlineFallback := testsupport.Card{
		Href: "#/detail/movie/tt0000008",
		Body: `<div style="background-image: url(https://img.example/inline.jpg)"></div>`,
	}

	items := scan(t, testsupport.ExportPage(posterWins, imgFallback, inlineFallback))
	if got := items[0].PosterURL; got != "https://img.example/first poster.jpg" {
		t.Fatalf("poster layer must win and be percent-decoded, got %q", got)
	}
	if got := items[1].PosterURL; got != "https://img.example/from/img.jpg" {
		t.Fatalf("img src fallback failed, got %q", got)
	}
	if got := items[2].PosterURL; got != "https://img.example/inline.jpg" {
		t.Fatalf("inline style fallback failed, got %q", got)
	}
}

func TestScanPosterShape(t *testing.T) {
	doc := testsupport.ExportPage(testsupport.Card{
		Href: "#/detail/movie/tt0000009",
		Body: `<div class="poster-container poster-shape-square" style="background-image: url(x.jpg)"></div>`,
	})

	items := scan(t, doc)
	if items[0].PosterShape != "square" {
		t.Fatalf("unexpected poster shape: %q", items[0].PosterShape)
	}
	if items[0].PosterURL != "x.jpg" {
		t.Fatalf("unexpected poster url: %q", items[0].PosterURL)
	}
}

func TestScanProgressEdgeCases(t *testing.T) {
	missingWidth := testsupport.Card{
		Href: "#/detail/movie/tt0000010",
		Body: `<div class="progress-bar"></div>`,
	}
	garbageWidth := testsupport.Card{
		Href: "#/detail/movie/tt0000011",
		Body: `<div class="progress-bar" style="width: lots%"></div>`,
	}
	camelCase := testsupport.Card{
		Href: "#/detail/movie/tt0000012",
		Body: `<div class="progressBarForeground" style="width: 12.5%"></div>`,
	}
	overflow := testsupport.Card{
		Href: "#/detail/movie/tt0000013",
		Body: `<div class="progress-bar" style="width: 250%"></div>`,
	}

	items := scan(t, testsupport.ExportPage(missingWidth, garbageWidth, camelCase, overflow))
	if items[0].Progress != 0 {
		t.Fatalf("missing width must leave progress at 0, got %v", items[0].Progress)
	}
	if items[1].Progress != 0 {
		t.Fatalf("unparsable width must leave progress at 0, got %v", items[1].Progress)
	}
	if items[2].Progress != 12.5 {
		t.Fatalf("camel-case progress class not detected, got %v", items[2].Progress)
	}
	if items[3].Progress != 100 {
		t.Fatalf("progress must be clamped to 100, got %v", items[3].Progress)
	}
}

func TestScanIgnoresUnparsableAnchors(t *testing.T) {
	doc := `<html><body>
		<a class="meta-item-container" href="#/settings">Settings</a>
		<a class="meta-item-container" href="#/detail/movie/nm0000138">Person, not title</a>
		<a href="#/detail/movie/tt0000014">No container class</a>
	</body></html>`

	items := scan(t, doc)
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestScanStrayEndTagIsNoOp(t *testing.T) {
	doc := "<html><body></a></div>" + testsupport.Card{Href: "#/detail/movie/tt0000015"}.HTML() + "</body></html>"

	items := scan(t, doc)
	if len(items) != 1 || items[0].ImdbID != "tt0000015" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestScanEmptyInput(t *testing.T) {
	for _, doc := range []string{"", "   \n\t  "} {
		_, err := stremio.Scan(strings.NewReader(doc))
		if !errors.Is(err, stremio.ErrEmptyInput) {
			t.Fatalf("input %q: expected ErrEmptyInput, got %v", doc, err)
		}
	}
}

func TestScanNoCardsReturnsEmptySlice(t *testing.T) {
	items, err := stremio.Scan(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestScanIsDeterministic(t *testing.T) {
	doc := testsupport.ExportPage(
		testsupport.Card{Href: "#/detail/movie/tt0000016", Title: "A", Progress: "10%"},
		testsupport.Card{Href: "#/detail/series/tt0000017", Title: "B", Watched: true},
		testsupport.Card{Href: "#/detail/series/tt0000018:1:1", Title: "C"},
	)

	first := scan(t, doc)
	second := scan(t, doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("independent scans disagree:\n%+v\n%+v", first, second)
	}
	if first[0].ImdbID != "tt0000016" || first[1].ImdbID != "tt0000017" || first[2].ImdbID != "tt0000018" {
		t.Fatalf("discovery order not preserved: %+v", first)
	}
}

func TestSummarize(t *testing.T) {
	doc := testsupport.ExportPage(
		testsupport.Card{Href: "#/detail/movie/tt0000019", Watched: true},
		testsupport.Card{Href: "#/detail/movie/tt0000020", Progress: "95%"},
		testsupport.Card{Href: "#/detail/series/tt0000021"},
		testsupport.Card{Href: "#/detail/series/tt0000022:3:4", Progress: "20%"},
	)

	summary := stremio.Summarize(scan(t, doc))
	want := stremio.Summary{Total: 4, Movies: 2, Shows: 1, Episodes: 1, Watched: 2}
	if summary != want {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
