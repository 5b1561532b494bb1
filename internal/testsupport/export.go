package testsupport

import (
	"fmt"
	"strings"
)

// Card describes one synthetic library card for building export fixtures.
// Zero-value fields are left out of the generated markup.
type Card struct {
	Href        string
	Title       string
	Watched     bool
	Progress    string // raw width value, e.g. "45.5%"
	PosterStyle string // raw style for the poster div
	ImgSrc      string
	ImgAlt      string
	Spans       [][2]string       // class, text pairs rendered as nested spans
	Attrs       map[string]string // extra attributes on the anchor
	Body        string            // arbitrary extra markup inside the anchor
}

// HTML renders the card as a meta-item-container anchor.
func (c Card) HTML() string {
	var b strings.Builder
	b.WriteString(`<a class="meta-item-container" href="` + c.Href + `"`)
	if c.Title != "" {
		b.WriteString(` title="` + c.Title + `"`)
	}
	for key, value := range c.Attrs {
		fmt.Fprintf(&b, " %s=%q", key, value)
	}
	b.WriteString(">")
	if c.PosterStyle != "" {
		b.WriteString(`<div class="poster-image-layer" style="` + c.PosterStyle + `"></div>`)
	}
	if c.ImgSrc != "" || c.ImgAlt != "" {
		fmt.Fprintf(&b, `<img src=%q alt=%q>`, c.ImgSrc, c.ImgAlt)
	}
	if c.Watched {
		b.WriteString(`<div class="watched-icon-layer"></div>`)
	}
	if c.Progress != "" {
		b.WriteString(`<div class="progress-bar-container"><div class="progress-bar" style="width: ` + c.Progress + `"></div></div>`)
	}
	for _, span := range c.Spans {
		fmt.Fprintf(&b, `<span class=%q>%s</span>`, span[0], span[1])
	}
	b.WriteString(c.Body)
	b.WriteString("</a>")
	return b.String()
}

// ExportPage wraps cards in the surrounding page chrome of a library export.
func ExportPage(cards ...Card) string {
	var b strings.Builder
	b.WriteString("<html><body><div class=\"library-grid\">\n")
	for _, card := range cards {
		b.WriteString(card.HTML())
		b.WriteString("\n")
	}
	b.WriteString("</div></body></html>\n")
	return b.String()
}
