// Package youtube enumerates an account's playlists and their items through
// the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
)

// Sentinel errors for playlist listing operations.
var (
	ErrChannelNotFound = errors.New("youtube: no channel for the authenticated account")
)

// API is the subset of the YouTube Data API used by the export.
// ServiceAPI implements it on top of the generated client; tests use fakes.
type API interface {
	// MyChannelID returns the id of the authenticated account's channel.
	MyChannelID(ctx context.Context) (string, error)

	// MyPlaylists returns one page of the account's own playlist ids.
	MyPlaylists(ctx context.Context, pageToken string) (Page[string], error)

	// PlaylistSnippet returns the descriptive metadata for one playlist.
	PlaylistSnippet(ctx context.Context, playlistID string) (PlaylistDetails, error)

	// PlaylistItems returns one page of a playlist's items, unfiltered.
	PlaylistItems(ctx context.Context, playlistID, pageToken string) (Page[RawItem], error)
}

// Thumbnails maps a size label ("default", "medium", "high", ...) to an image URL.
type Thumbnails map[string]string

// PlaylistDetails is the descriptive record of a playlist.
// The zero value is what a failed metadata fetch yields.
type PlaylistDetails struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

// IsZero reports whether no metadata was retrieved.
func (d PlaylistDetails) IsZero() bool {
	return d.Title == "" && d.Description == "" && len(d.Thumbnails) == 0
}

// RawItem is a playlist item as returned by the API, before projection.
// Snippet is nil when the API omitted it.
type RawItem struct {
	ID      string
	Snippet *RawItemSnippet
}

// RawItemSnippet carries the snippet fields the export projects.
type RawItemSnippet struct {
	Title                  string
	Description            string
	Thumbnails             Thumbnails
	VideoOwnerChannelTitle string
	VideoOwnerChannelID    string
}

// PlaylistItem is one exported playlist entry.
type PlaylistItem struct {
	// ID is the playlist item id (not the video id).
	ID                     string     `json:"id"`
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Thumbnails             Thumbnails `json:"thumbnails"`
	VideoOwnerChannelTitle string     `json:"videoOwnerChannelTitle"`
	VideoOwnerChannelID    string     `json:"videoOwnerChannelId"`
}

// Playlist carries everything collected for one playlist through the
// pipeline, so ids, details and items never need to be matched up by index.
type Playlist struct {
	ID      string          `json:"id"`
	Details PlaylistDetails `json:"details"`
	Items   []PlaylistItem  `json:"items"`
}

// ListerError wraps a fatal listing failure with the step that failed.
// Use errors.As() to extract this error type and get operation details:
//
//	var listerErr *youtube.ListerError
//	if errors.As(err, &listerErr) {
//		fmt.Printf("%s failed: %v\n", listerErr.Op, listerErr.Err)
//	}
type ListerError struct {
	// Op is the step that failed ("channel", "playlists").
	Op string
	// ID is the channel or playlist id involved, if known.
	ID string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the listing error.
func (e *ListerError) Error() string {
	if e.ID != "" {
		return "youtube: " + e.Op + " " + e.ID + ": " + e.Err.Error()
	}
	return "youtube: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *ListerError) Unwrap() error { return e.Err }
