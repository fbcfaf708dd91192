package youtube

import (
	"context"
	"log"
)

// ListPlaylistIDs returns the ids of every playlist owned by the
// authenticated account. The first id is the account's channel id, which
// doubles as the id of its default saved-items playlist; the account's own
// playlists follow in API order.
//
// Only the channel lookup is fatal. If paging through the playlists fails
// part way, the ids gathered so far are returned without error.
func ListPlaylistIDs(ctx context.Context, api API) ([]string, error) {
	channelID, err := api.MyChannelID(ctx)
	if err != nil {
		return nil, &ListerError{Op: "channel", Err: err}
	}

	ids := []string{channelID}

	res := Paginate(ctx, api.MyPlaylists)
	if !res.Complete() {
		log.Printf("youtube: playlist listing stopped after %d page(s): %v", res.Pages, res.Err)
	}
	return append(ids, res.Items...), nil
}

// GetPlaylistDetails fetches the title, description and thumbnails of a
// playlist. On any failure it logs the playlist id and returns the zero
// PlaylistDetails.
func GetPlaylistDetails(ctx context.Context, api API, playlistID string) PlaylistDetails {
	details, err := api.PlaylistSnippet(ctx, playlistID)
	if err != nil {
		log.Printf("youtube: couldn't retrieve playlist details for ID %s: %v", playlistID, err)
		return PlaylistDetails{}
	}
	return details
}
