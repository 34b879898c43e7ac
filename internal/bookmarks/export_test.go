package bookmarks

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExportRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	store.Add(Record{Title: "First moon landing", Date: "1969-07-20"})
	store.Add(Record{Title: "Fall of the Berlin Wall", Date: "1989-11-09"})

	var buf bytes.Buffer
	if err := store.Export(&buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var exported []Record
	if err := json.Unmarshal(buf.Bytes(), &exported); err != nil {
		t.Fatalf("exported content is not valid JSON: %v", err)
	}

	listed := store.List()
	if len(exported) != len(listed) {
		t.Fatalf("exported %d records, listed %d", len(exported), len(listed))
	}
	for i := range listed {
		if exported[i].Title != listed[i].Title || exported[i].Date != listed[i].Date {
			t.Errorf("record %d: exported (%q, %q), listed (%q, %q)",
				i, exported[i].Title, exported[i].Date, listed[i].Title, listed[i].Date)
		}
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	got := ExportFilename(now)
	want := "bookmarks-2024-03-07-15-04-05.json"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExportFilenamesSortLexically(t *testing.T) {
	earlier := ExportFilename(time.Date(2024, 3, 7, 9, 59, 59, 0, time.UTC))
	later := ExportFilename(time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC))
	if !(earlier < later) {
		t.Errorf("filenames do not sort chronologically: %q vs %q", earlier, later)
	}
}

func TestExportToFile(t *testing.T) {
	tmpDir, _ := os.MkdirTemp("", "hip-test")
	defer os.RemoveAll(tmpDir)

	store, _ := newTestStore()
	store.Add(Record{Title: "First powered flight", Date: "1903-12-17"})

	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	path, err := store.ExportToFile(tmpDir, now)
	if err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}
	if filepath.Base(path) != "bookmarks-2024-03-07-15-04-05.json" {
		t.Errorf("unexpected filename %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export failed: %v", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("export file is not valid JSON: %v", err)
	}
	if len(records) != 1 || records[0].Title != "First powered flight" {
		t.Errorf("unexpected export content: %+v", records)
	}
}
