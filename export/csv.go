package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"ytexport/youtube"
)

var (
	detailsHeader = []string{"", "id", "title", "description", "thumbnails"}
	itemsHeader   = []string{"", "id", "title", "description", "thumbnails", "videoOwnerChannelTitle", "videoOwnerChannelId"}
)

// writeDetailsTable writes one row per playlist. The unnamed first column is
// the zero-based row number. A playlist whose metadata could not be fetched
// still gets a row, with empty descriptive columns.
func writeDetailsTable(w io.Writer, playlists []youtube.Playlist) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(detailsHeader); err != nil {
		return err
	}
	for i, pl := range playlists {
		thumbs, err := encodeThumbnails(pl.Details.Thumbnails)
		if err != nil {
			return err
		}
		row := []string{strconv.Itoa(i), pl.ID, pl.Details.Title, pl.Details.Description, thumbs}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeItemsTable writes one row per playlist item, in playlist order.
func writeItemsTable(w io.Writer, items []youtube.PlaylistItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(itemsHeader); err != nil {
		return err
	}
	for i, it := range items {
		thumbs, err := encodeThumbnails(it.Thumbnails)
		if err != nil {
			return err
		}
		row := []string{
			strconv.Itoa(i),
			it.ID,
			it.Title,
			it.Description,
			thumbs,
			it.VideoOwnerChannelTitle,
			it.VideoOwnerChannelID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// encodeThumbnails renders a thumbnail set as a JSON object with sorted keys,
// or an empty cell when there is none.
func encodeThumbnails(t youtube.Thumbnails) (string, error) {
	if len(t) == 0 {
		return "", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
