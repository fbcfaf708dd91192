// Package export writes collected playlists to CSV tables and binary
// snapshots in an output directory.
package export

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"ytexport/internal/storage"
	"ytexport/youtube"
)

// Output file names, relative to the export directory.
const (
	DetailsTable    = "playlist_details.csv"
	DetailsSnapshot = "playlist_details.pkl"
	VideosSnapshot  = "playlist_videos.pkl"
)

// Exporter writes export files into Dir, replacing files from earlier runs.
type Exporter struct {
	// Dir is the output directory. It is created if missing.
	Dir string
	// SQLitePath, when set, additionally receives the export as SQLite tables.
	SQLitePath string
}

// Report describes what an export wrote.
type Report struct {
	// RunID identifies the run inside the snapshots and the SQLite tables.
	RunID string
	// Files lists the written files relative to the output directory.
	Files []string
	// Skipped lists playlists whose item table could not be written.
	Skipped []Skipped
}

// Skipped records a per-playlist table that was not written.
type Skipped struct {
	PlaylistID string
	File       string
	Err        error
}

// Export writes the details table, both snapshots and one item table per
// playlist. Failures on the aggregate files are returned; a failing item
// table is logged, recorded in the report and skipped.
func (e *Exporter) Export(ctx context.Context, playlists []youtube.Playlist) (*Report, error) {
	snap := NewSnapshot(playlists)
	report := &Report{RunID: snap.RunID}

	if err := e.writeDetails(playlists, report); err != nil {
		return report, err
	}

	if err := e.write(DetailsSnapshot, 0644, report, func(w io.Writer) error {
		return WriteSnapshot(w, snap.DetailsOnly())
	}); err != nil {
		return report, err
	}
	if err := e.write(VideosSnapshot, 0644, report, func(w io.Writer) error {
		return WriteSnapshot(w, snap)
	}); err != nil {
		return report, err
	}

	e.writeItemTables(playlists, report)

	if e.SQLitePath != "" {
		if err := WriteSQLite(ctx, e.SQLitePath, snap); err != nil {
			log.Printf("export: sqlite %s: %v", e.SQLitePath, err)
		} else {
			log.Printf("export: wrote %d playlists to %s", len(playlists), e.SQLitePath)
		}
	}

	return report, nil
}

// Replay regenerates the CSV tables from the playlist_videos snapshot of an
// earlier run, without touching the API or the snapshots.
func (e *Exporter) Replay(ctx context.Context) (*Report, error) {
	snap, err := ReadSnapshotFile(filepath.Join(e.Dir, VideosSnapshot))
	if err != nil {
		return nil, err
	}
	report := &Report{RunID: snap.RunID}

	if err := e.writeDetails(snap.Playlists, report); err != nil {
		return report, err
	}
	e.writeItemTables(snap.Playlists, report)
	return report, nil
}

func (e *Exporter) writeDetails(playlists []youtube.Playlist, report *Report) error {
	return e.write(DetailsTable, 0644, report, func(w io.Writer) error {
		return writeDetailsTable(w, playlists)
	})
}

func (e *Exporter) writeItemTables(playlists []youtube.Playlist, report *Report) {
	names := tableNames(playlists)
	for i, pl := range playlists {
		name := names[i] + ".csv"
		err := e.write(name, 0644, report, func(w io.Writer) error {
			return writeItemsTable(w, pl.Items)
		})
		if err != nil {
			log.Printf("export: skipping items of playlist %s: %v", pl.ID, err)
			report.Skipped = append(report.Skipped, Skipped{PlaylistID: pl.ID, File: name, Err: err})
		}
	}
}

// write atomically writes name into the output directory and records it.
func (e *Exporter) write(name string, perm os.FileMode, report *Report, fn func(io.Writer) error) error {
	path := filepath.Join(e.Dir, name)
	if err := storage.WriteFile(path, perm, fn); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	report.Files = append(report.Files, name)
	return nil
}
