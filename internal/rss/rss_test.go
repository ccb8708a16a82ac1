package rss

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"medonet-rss/internal/model"
)

var testMeta = model.ChannelMeta{
	Title:       "agregat",
	Link:        "https://www.medonet.pl/",
	Description: "opis",
	Language:    "pl-PL",
}

func warsawTime(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Fatalf("loc: %v", err)
	}
	return time.Date(2026, 8, 30, 12, 0, 0, 0, loc)
}

func TestRender_DeclarationLineExact(t *testing.T) {
	b, err := Render(testMeta, nil, warsawTime(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"
	if !bytes.HasPrefix(b, []byte(want)) {
		t.Fatalf("declaration line wrong: %q", b[:60])
	}
	if !bytes.HasSuffix(b, []byte("\n")) {
		t.Fatalf("missing trailing newline")
	}
}

func TestRender_ItemFields(t *testing.T) {
	ts := warsawTime(t)
	items := []model.Item{{
		GUID:        "abc123",
		Title:       "Tytuł",
		Link:        "https://example.com/a",
		Description: "opis artykułu",
		PubDate:     ts,
		Label:       "uroda",
		Image:       "https://img.example/a.jpg",
	}}
	b, err := Render(testMeta, items, ts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(b)
	for _, want := range []string{
		`<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">`,
		"<guid>abc123</guid>",
		"<category>uroda</category>",
		"<pubDate>" + ts.Format(time.RFC1123Z) + "</pubDate>",
		`<enclosure url="https://img.example/a.jpg" length="0" type="image/jpeg">`,
		`<media:content url="https://img.example/a.jpg" medium="image">`,
		"<lastBuildDate>" + ts.Format(time.RFC1123Z) + "</lastBuildDate>",
		"<language>pl-PL</language>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRender_EmptyTitlePlaceholder(t *testing.T) {
	ts := warsawTime(t)
	items := []model.Item{{GUID: "g", Link: "https://example.com/a", PubDate: ts, Image: "https://i/f.jpg"}}
	b, err := Render(testMeta, items, ts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(b), "<title>(bez tytułu)</title>") {
		t.Fatalf("placeholder title missing:\n%s", b)
	}
}

func TestRender_Idempotent(t *testing.T) {
	ts := warsawTime(t)
	items := []model.Item{{GUID: "g", Title: "t", PubDate: ts, Image: "https://i/f.jpg"}}
	a, err := Render(testMeta, items, ts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := Render(testMeta, items, ts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same input must render byte-identical output")
	}
}

func TestWriteFile_CreatesDirAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs", "medonet.xml")
	ts := warsawTime(t)

	many := []model.Item{
		{GUID: "a", Title: "a", PubDate: ts, Image: "https://i/f.jpg"},
		{GUID: "b", Title: "b", PubDate: ts, Image: "https://i/f.jpg"},
	}
	if err := WriteFile(path, testMeta, many, ts); err != nil {
		t.Fatalf("write: %v", err)
	}
	first, _ := os.ReadFile(path)

	// second run fully replaces prior content
	if err := WriteFile(path, testMeta, nil, ts); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	second, _ := os.ReadFile(path)
	if len(second) >= len(first) {
		t.Fatalf("output not replaced wholesale: first=%d second=%d", len(first), len(second))
	}
	if strings.Contains(string(second), "<item>") {
		t.Fatalf("stale items left in output")
	}
}
