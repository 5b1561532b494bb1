package main

import (
	"encoding/json"
	"strings"
	"testing"

	"stremport/internal/testsupport"
)

func TestInspectPlainOutput(t *testing.T) {
	isolateEnv(t)
	doc := testsupport.ExportPage(
		testsupport.Card{Href: "#/detail/series/tt7654321:2:5", Title: "Example Show", Progress: "45.5%"},
		testsupport.Card{Href: "#/detail/movie/tt1234567", Title: "Example Film", Watched: true},
	)

	stdout, stderr, err := runCLI(t, []string{"inspect"}, doc)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	// Buffers are not terminals, so output falls back to tab-separated rows.
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %q", stdout)
	}
	first := strings.Split(lines[0], "\t")
	if first[0] != "tt7654321" || first[1] != "episode" || first[3] != "S02E05" || first[4] != "45.5%" {
		t.Fatalf("unexpected first row: %q", lines[0])
	}
	second := strings.Split(lines[1], "\t")
	if second[0] != "tt1234567" || second[1] != "movie" || second[5] != "yes" {
		t.Fatalf("unexpected second row: %q", lines[1])
	}

	requireContains(t, stderr, "found items")
}

func TestInspectJSONOutput(t *testing.T) {
	isolateEnv(t)
	doc := testsupport.ExportPage(testsupport.Card{
		Href:     "#/detail/movie/tt1234567",
		Title:    "Example Film",
		Progress: "12.5%",
	})

	stdout, _, err := runCLI(t, []string{"inspect", "--json"}, doc)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(stdout), &items); err != nil {
		t.Fatalf("stdout is not JSON: %v (%q)", err, stdout)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0]["imdb_id"] != "tt1234567" || items[0]["progress"] != 12.5 {
		t.Fatalf("unexpected item: %v", items[0])
	}
}

func TestInspectNoItemsFails(t *testing.T) {
	isolateEnv(t)
	_, _, err := runCLI(t, []string{"inspect"}, "<html><body></body></html>")
	if err == nil {
		t.Fatal("expected inspect to fail on an itemless page")
	}
}
