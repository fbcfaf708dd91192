package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS playlists (
	id          TEXT PRIMARY KEY,
	position    INTEGER NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	thumbnails  TEXT NOT NULL,
	run_id      TEXT NOT NULL,
	exported_at TEXT NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS playlist_items (
	playlist_id         TEXT NOT NULL,
	position            INTEGER NOT NULL,
	id                  TEXT NOT NULL,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL,
	thumbnails          TEXT NOT NULL,
	owner_channel_title TEXT NOT NULL,
	owner_channel_id    TEXT NOT NULL,
	PRIMARY KEY (playlist_id, position)
)`}

// WriteSQLite stores the snapshot's playlists and items in the SQLite
// database at path, replacing any rows previously stored for the same
// playlists. Everything is written in a single transaction.
func WriteSQLite(ctx context.Context, path string, snap *Snapshot) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1) // SQLite: single writer

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	exportedAt := snap.CreatedAt.Format("2006-01-02T15:04:05Z")
	for pos, pl := range snap.Playlists {
		if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_items WHERE playlist_id = ?`, pl.ID); err != nil {
			return fmt.Errorf("clear items of %s: %w", pl.ID, err)
		}

		thumbs, err := encodeThumbnails(pl.Details.Thumbnails)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO playlists (id, position, title, description, thumbnails, run_id, exported_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			pl.ID, pos, pl.Details.Title, pl.Details.Description, thumbs, snap.RunID, exportedAt,
		); err != nil {
			return fmt.Errorf("insert playlist %s: %w", pl.ID, err)
		}

		for i, it := range pl.Items {
			thumbs, err := encodeThumbnails(it.Thumbnails)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO playlist_items (playlist_id, position, id, title, description, thumbnails, owner_channel_title, owner_channel_id)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				pl.ID, i, it.ID, it.Title, it.Description, thumbs, it.VideoOwnerChannelTitle, it.VideoOwnerChannelID,
			); err != nil {
				return fmt.Errorf("insert item %s of %s: %w", it.ID, pl.ID, err)
			}
		}
	}

	return tx.Commit()
}
