package export

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"ytexport/youtube"
)

func item(id, title string) youtube.PlaylistItem {
	return youtube.PlaylistItem{
		ID:                     id,
		Title:                  title,
		Description:            "desc " + id,
		Thumbnails:             youtube.Thumbnails{"default": "https://i.ytimg.com/" + id + ".jpg"},
		VideoOwnerChannelTitle: "Owner",
		VideoOwnerChannelID:    "UCowner",
	}
}

// scenario mirrors a run where metadata for P2 could not be fetched.
func scenario() []youtube.Playlist {
	return []youtube.Playlist{
		{ID: "C1", Details: youtube.PlaylistDetails{Title: "Watch Later"}, Items: []youtube.PlaylistItem{item("w1", "Later one")}},
		{
			ID: "P1",
			Details: youtube.PlaylistDetails{
				Title:       "Vacation",
				Description: "Summer trip",
				Thumbnails:  youtube.Thumbnails{"default": "https://i.ytimg.com/pl.jpg"},
			},
			Items: []youtube.PlaylistItem{item("v1", "Beach"), item("v2", "Hike, day 2")},
		},
		{ID: "P2", Items: []youtube.PlaylistItem{item("x1", "One"), item("x2", "Two")}},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func TestExportScenario(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Dir: dir}

	report, err := e.Export(context.Background(), scenario())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	details := readCSV(t, filepath.Join(dir, DetailsTable))
	wantDetails := [][]string{
		{"", "id", "title", "description", "thumbnails"},
		{"0", "C1", "Watch Later", "", ""},
		{"1", "P1", "Vacation", "Summer trip", `{"default":"https://i.ytimg.com/pl.jpg"}`},
		{"2", "P2", "", "", ""},
	}
	if !reflect.DeepEqual(details, wantDetails) {
		t.Errorf("%s = %q, want %q", DetailsTable, details, wantDetails)
	}

	vacation := readCSV(t, filepath.Join(dir, "Vacation.csv"))
	if len(vacation) != 3 {
		t.Fatalf("Vacation.csv has %d rows, want header + 2", len(vacation))
	}
	wantRow := []string{"1", "v2", "Hike, day 2", "desc v2", `{"default":"https://i.ytimg.com/v2.jpg"}`, "Owner", "UCowner"}
	if !reflect.DeepEqual(vacation[2], wantRow) {
		t.Errorf("Vacation.csv row 2 = %q, want %q", vacation[2], wantRow)
	}

	// The playlist whose title fetch failed falls back to its id.
	if rows := readCSV(t, filepath.Join(dir, "P2.csv")); len(rows) != 3 {
		t.Errorf("P2.csv has %d rows, want header + 2", len(rows))
	}

	wantFiles := []string{DetailsTable, DetailsSnapshot, VideosSnapshot, "Watch Later.csv", "Vacation.csv", "P2.csv"}
	if !reflect.DeepEqual(report.Files, wantFiles) {
		t.Errorf("report.Files = %v, want %v", report.Files, wantFiles)
	}
	if len(report.Skipped) != 0 {
		t.Errorf("report.Skipped = %v, want none", report.Skipped)
	}

	entries, _ := os.ReadDir(dir)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	sort.Strings(wantFiles)
	if !reflect.DeepEqual(names, wantFiles) {
		t.Errorf("directory = %v, want exactly %v", names, wantFiles)
	}
}

func TestExportSkipsFailedTableAndContinues(t *testing.T) {
	dir := t.TempDir()
	// A directory in the way makes the rename of Vacation.csv fail.
	if err := os.Mkdir(filepath.Join(dir, "Vacation.csv"), 0755); err != nil {
		t.Fatal(err)
	}
	e := &Exporter{Dir: dir}

	report, err := e.Export(context.Background(), scenario())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if len(report.Skipped) != 1 || report.Skipped[0].PlaylistID != "P1" {
		t.Fatalf("report.Skipped = %+v, want only P1", report.Skipped)
	}
	if report.Skipped[0].Err == nil {
		t.Error("skipped entry has no error")
	}
	if _, err := os.Stat(filepath.Join(dir, "P2.csv")); err != nil {
		t.Errorf("P2.csv not written after P1 failed: %v", err)
	}
}

func TestExportKeepsDetailsTableFromCollidingTitle(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Dir: dir}
	playlists := []youtube.Playlist{
		{ID: "C1", Details: youtube.PlaylistDetails{Title: "Watch Later"}},
		{ID: "P1", Details: youtube.PlaylistDetails{Title: "playlist_details"}, Items: []youtube.PlaylistItem{item("v1", "Beach")}},
	}

	if _, err := e.Export(context.Background(), playlists); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	details := readCSV(t, filepath.Join(dir, DetailsTable))
	if len(details) != 3 || len(details[0]) != len(detailsHeader) {
		t.Errorf("%s = %q, want the details table with 2 rows", DetailsTable, details)
	}
	if rows := readCSV(t, filepath.Join(dir, "playlist_details (P1).csv")); len(rows) != 2 {
		t.Errorf("items table of P1 has %d rows, want 2", len(rows))
	}
}

func TestExportAggregateFailureIsReturned(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, DetailsTable), 0755); err != nil {
		t.Fatal(err)
	}
	e := &Exporter{Dir: dir}

	if _, err := e.Export(context.Background(), scenario()); err == nil {
		t.Error("Export() should fail when the details table cannot be written")
	}
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{Dir: dir}
	first, err := e.Export(context.Background(), scenario())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	for _, name := range []string{DetailsTable, "Vacation.csv", "P2.csv", "Watch Later.csv"} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	report, err := e.Replay(context.Background())
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if report.RunID != first.RunID {
		t.Errorf("Replay() RunID = %q, want %q", report.RunID, first.RunID)
	}
	if rows := readCSV(t, filepath.Join(dir, "Vacation.csv")); len(rows) != 3 {
		t.Errorf("replayed Vacation.csv has %d rows, want 3", len(rows))
	}
	if rows := readCSV(t, filepath.Join(dir, DetailsTable)); len(rows) != 4 {
		t.Errorf("replayed %s has %d rows, want 4", DetailsTable, len(rows))
	}
}

func TestReplayWithoutSnapshot(t *testing.T) {
	e := &Exporter{Dir: t.TempDir()}
	if _, err := e.Replay(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Replay() error = %v, want os.ErrNotExist", err)
	}
}
