package youtube

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errFake = errors.New("fake: backend error")

// paged splits items into pages linked by "page-N" continuation tokens.
func paged[T any](pages ...[]T) []Page[T] {
	out := make([]Page[T], len(pages))
	for i, items := range pages {
		out[i].Items = items
		if i < len(pages)-1 {
			out[i].NextPageToken = fmt.Sprintf("page-%d", i+1)
		}
	}
	return out
}

// pagedSource serves pages by token and fails on page failAt (-1: never).
type pagedSource[T any] struct {
	pages  []Page[T]
	failAt int
	tokens []string
}

func newSource[T any](failAt int, pages ...[]T) *pagedSource[T] {
	return &pagedSource[T]{pages: paged(pages...), failAt: failAt}
}

func (s *pagedSource[T]) fetch(ctx context.Context, pageToken string) (Page[T], error) {
	s.tokens = append(s.tokens, pageToken)
	idx := 0
	if pageToken != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(pageToken, "page-"))
		if err != nil {
			return Page[T]{}, fmt.Errorf("fake: bad token %q", pageToken)
		}
		idx = n
	}
	if idx == s.failAt {
		return Page[T]{}, errFake
	}
	if idx >= len(s.pages) {
		return Page[T]{}, fmt.Errorf("fake: no page %d", idx)
	}
	return s.pages[idx], nil
}

// fakeAPI is an in-memory API.
type fakeAPI struct {
	channelID  string
	channelErr error
	playlists  *pagedSource[string]
	snippets   map[string]PlaylistDetails
	items      map[string]*pagedSource[RawItem]
}

func (f *fakeAPI) MyChannelID(ctx context.Context) (string, error) {
	if f.channelErr != nil {
		return "", f.channelErr
	}
	return f.channelID, nil
}

func (f *fakeAPI) MyPlaylists(ctx context.Context, pageToken string) (Page[string], error) {
	if f.playlists == nil {
		return Page[string]{}, nil
	}
	return f.playlists.fetch(ctx, pageToken)
}

func (f *fakeAPI) PlaylistSnippet(ctx context.Context, playlistID string) (PlaylistDetails, error) {
	d, ok := f.snippets[playlistID]
	if !ok {
		return PlaylistDetails{}, errFake
	}
	return d, nil
}

func (f *fakeAPI) PlaylistItems(ctx context.Context, playlistID, pageToken string) (Page[RawItem], error) {
	src, ok := f.items[playlistID]
	if !ok {
		return Page[RawItem]{}, errFake
	}
	return src.fetch(ctx, pageToken)
}

// rawItem builds a raw item with every exported field present.
func rawItem(id string) RawItem {
	return RawItem{
		ID: id,
		Snippet: &RawItemSnippet{
			Title:                  "Video " + id,
			Description:            "About " + id,
			Thumbnails:             Thumbnails{"default": "https://i.ytimg.com/vi/" + id + "/default.jpg"},
			VideoOwnerChannelTitle: "Owner",
			VideoOwnerChannelID:    "UCowner",
		},
	}
}
