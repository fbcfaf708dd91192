package youtube

import (
	"context"
	"log"
)

// ListPlaylistItems returns every item of a playlist in API order.
//
// If the first page cannot be fetched the playlist is treated as having no
// data: the failure is logged and an empty slice returned. A failure on a
// later page silently ends the listing with what was gathered so far.
// Items lacking any exported field are dropped without a log.
func ListPlaylistItems(ctx context.Context, api API, playlistID string) []PlaylistItem {
	res := Paginate(ctx, func(ctx context.Context, pageToken string) (Page[RawItem], error) {
		return api.PlaylistItems(ctx, playlistID, pageToken)
	})
	if res.Err != nil && res.Pages == 0 {
		log.Printf("youtube: failed to retrieve any of the videos for playlist ID %s: %v", playlistID, res.Err)
		return []PlaylistItem{}
	}

	items := make([]PlaylistItem, 0, len(res.Items))
	for _, raw := range res.Items {
		item, ok := projectItem(raw)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// projectItem extracts the exported fields of a raw item. It reports false
// when any of them is missing. The client library decodes an absent string
// as "", so empty counts as missing for every field except the description,
// which the API sends as "" when a video has none.
func projectItem(raw RawItem) (PlaylistItem, bool) {
	s := raw.Snippet
	if raw.ID == "" || s == nil || s.Thumbnails == nil {
		return PlaylistItem{}, false
	}
	if s.Title == "" || s.VideoOwnerChannelTitle == "" || s.VideoOwnerChannelID == "" {
		return PlaylistItem{}, false
	}
	return PlaylistItem{
		ID:                     raw.ID,
		Title:                  s.Title,
		Description:            s.Description,
		Thumbnails:             s.Thumbnails,
		VideoOwnerChannelTitle: s.VideoOwnerChannelTitle,
		VideoOwnerChannelID:    s.VideoOwnerChannelID,
	}, true
}
