package aggregate

import (
	"testing"
	"time"

	"medonet-rss/internal/model"
)

func itemWithGUID(guid string) model.Item {
	return model.Item{GUID: guid, Link: "http://ex/" + guid}
}

func itemAt(guid string, ts time.Time) model.Item {
	it := itemWithGUID(guid)
	it.PubDate = ts
	return it
}

func TestSelect_RetentionWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	items := []model.Item{
		itemAt("fresh", now.Add(-time.Hour)),
		itemAt("boundary", now.Add(-14*24*time.Hour)), // exactly on the cutoff
		itemAt("stale", now.Add(-20*24*time.Hour)),
	}
	got := Select(items, now, 14)
	if len(got) != 2 {
		t.Fatalf("kept=%d want 2", len(got))
	}
	for _, it := range got {
		if it.GUID == "stale" {
			t.Fatalf("20-day-old item must be excluded")
		}
	}
	// inclusive boundary
	if got[1].GUID != "boundary" {
		t.Fatalf("boundary item missing: %+v", got)
	}
}

func TestSelect_SortDescending(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	items := []model.Item{
		itemAt("old", now.Add(-3*time.Hour)),
		itemAt("new", now.Add(-time.Hour)),
		itemAt("mid", now.Add(-2*time.Hour)),
	}
	got := Select(items, now, 14)
	if got[0].GUID != "new" || got[1].GUID != "mid" || got[2].GUID != "old" {
		t.Fatalf("order wrong: %+v", got)
	}
}

func TestSelect_StableOnEqualTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ts := now.Add(-time.Hour)
	items := []model.Item{itemAt("first", ts), itemAt("second", ts), itemAt("third", ts)}
	got := Select(items, now, 14)
	if got[0].GUID != "first" || got[1].GUID != "second" || got[2].GUID != "third" {
		t.Fatalf("encounter order not preserved: %+v", got)
	}
}

func TestSelect_EmptyInput(t *testing.T) {
	got := Select(nil, time.Now(), 14)
	if len(got) != 0 {
		t.Fatalf("want empty output")
	}
}
