// Package ytexport exports the playlists of a YouTube account to CSV files.
//
// # Overview
//
// An export run authenticates with OAuth, enumerates the account's
// playlists (starting with the default saved-items playlist, labelled
// "Watch Later"), fetches each playlist's details and items, and writes:
//
//   - playlist_details.csv: one row per playlist
//   - playlist_details.pkl: binary snapshot of the details
//   - playlist_videos.pkl: binary snapshot of every playlist with its items
//   - <title>.csv: the items of one playlist, per playlist
//
// # Quick Start
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	report, err := ytexport.Run(ctx, cfg, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report.Files)
//
// # Failure Handling
//
// Only a failed account lookup, authentication or an unwritable aggregate
// file stops a run. Everything else degrades: a playlist whose details cannot
// be fetched gets an empty row, a playlist whose first item page fails gets
// an empty table, and a failure on a later page keeps the items gathered so
// far. Each of these is logged with the playlist id.
//
// # Configuration
//
// Settings are read from environment variables, then ytexport.json (current
// directory or ~/.config/ytexport/ytexport.json), then defaults:
//
//   - YTEXPORT_CREDENTIALS_FILE: OAuth client secret (credentials.json)
//   - YTEXPORT_TOKEN_FILE: cached token (token.json)
//   - YTEXPORT_SAVE_TOKEN: write the token back after consent/refresh (false)
//   - YTEXPORT_AUTH_TIMEOUT: how long to wait for browser consent (5m)
//   - YTEXPORT_OUTPUT_DIR: where files are written (.)
//   - YTEXPORT_SQLITE_PATH: also write a SQLite database (disabled)
//   - YTEXPORT_WATCH_LATER_TITLE: label of the saved-items playlist
//   - YTEXPORT_MAX_RESULTS: API page size, 1-50 (50)
//   - YTEXPORT_PROGRESS: show a progress bar (true)
//
// Sub-packages
//
//   - youtube: pagination and playlist enumeration over the Data API
//   - export: CSV tables, snapshots and the SQLite sink
//   - auth: OAuth installed-application flow and token cache
//   - config: configuration loading
package ytexport
