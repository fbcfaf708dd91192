package youtube

import (
	"context"
	"log"
)

// DefaultWatchLaterTitle labels the account's default saved-items playlist.
const DefaultWatchLaterTitle = "Watch Later"

// CollectOptions configures Collect.
type CollectOptions struct {
	// WatchLaterTitle replaces the title of the first playlist.
	// Empty means DefaultWatchLaterTitle.
	WatchLaterTitle string

	// OnProgress is called while playlist items are fetched: once with
	// done == 0 before the first playlist, then after each playlist.
	OnProgress func(done, total int)
}

// Collect gathers ids, details and items for every playlist of the
// authenticated account, sequentially and in enumeration order.
//
// The only error returned is a failed channel lookup; every other failure
// degrades to empty details or a shorter item list for the playlist concerned.
func Collect(ctx context.Context, api API, opts *CollectOptions) ([]Playlist, error) {
	if opts == nil {
		opts = &CollectOptions{}
	}

	ids, err := ListPlaylistIDs(ctx, api)
	if err != nil {
		return nil, err
	}
	log.Printf("youtube: found %d playlists", len(ids))

	playlists := make([]Playlist, len(ids))
	for i, id := range ids {
		playlists[i] = Playlist{
			ID:      id,
			Details: GetPlaylistDetails(ctx, api, id),
		}
	}

	// The channel id playlist comes back untitled or titled after the
	// channel, so it is always relabelled.
	title := opts.WatchLaterTitle
	if title == "" {
		title = DefaultWatchLaterTitle
	}
	playlists[0].Details.Title = title

	if opts.OnProgress != nil {
		opts.OnProgress(0, len(playlists))
	}
	for i := range playlists {
		playlists[i].Items = ListPlaylistItems(ctx, api, playlists[i].ID)
		if opts.OnProgress != nil {
			opts.OnProgress(i+1, len(playlists))
		}
	}

	return playlists, nil
}
