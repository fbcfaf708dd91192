package youtube

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DefaultMaxResults is the largest page size the Data API accepts.
const DefaultMaxResults = 50

// ServiceAPI implements API with the YouTube Data API v3 client.
type ServiceAPI struct {
	service    *youtube.Service
	maxResults int64
}

// NewServiceAPI creates an API backed by an authenticated HTTP client.
// Extra client options (such as option.WithEndpoint) are passed through.
func NewServiceAPI(ctx context.Context, client *http.Client, maxResults int64, opts ...option.ClientOption) (*ServiceAPI, error) {
	if client == nil {
		return nil, fmt.Errorf("http client required")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &ServiceAPI{service: service, maxResults: maxResults}, nil
}

// MyChannelID implements API.
func (a *ServiceAPI) MyChannelID(ctx context.Context) (string, error) {
	resp, err := a.service.Channels.List([]string{"contentDetails"}).
		Mine(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", ErrChannelNotFound
	}
	return resp.Items[0].Id, nil
}

// MyPlaylists implements API.
func (a *ServiceAPI) MyPlaylists(ctx context.Context, pageToken string) (Page[string], error) {
	call := a.service.Playlists.List([]string{"contentDetails"}).
		Mine(true).
		MaxResults(a.maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return Page[string]{}, err
	}

	page := Page[string]{NextPageToken: resp.NextPageToken}
	for _, pl := range resp.Items {
		page.Items = append(page.Items, pl.Id)
	}
	return page, nil
}

// PlaylistSnippet implements API.
func (a *ServiceAPI) PlaylistSnippet(ctx context.Context, playlistID string) (PlaylistDetails, error) {
	resp, err := a.service.Playlists.List([]string{"snippet"}).
		Id(playlistID).
		Context(ctx).
		Do()
	if err != nil {
		return PlaylistDetails{}, err
	}
	if len(resp.Items) == 0 {
		return PlaylistDetails{}, fmt.Errorf("playlist %s not found", playlistID)
	}

	snippet := resp.Items[0].Snippet
	if snippet == nil {
		return PlaylistDetails{}, fmt.Errorf("playlist %s has no snippet", playlistID)
	}
	return PlaylistDetails{
		Title:       snippet.Title,
		Description: snippet.Description,
		Thumbnails:  convertThumbnails(snippet.Thumbnails),
	}, nil
}

// PlaylistItems implements API.
func (a *ServiceAPI) PlaylistItems(ctx context.Context, playlistID, pageToken string) (Page[RawItem], error) {
	call := a.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(a.maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return Page[RawItem]{}, err
	}

	page := Page[RawItem]{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		raw := RawItem{ID: item.Id}
		if s := item.Snippet; s != nil {
			raw.Snippet = &RawItemSnippet{
				Title:                  s.Title,
				Description:            s.Description,
				Thumbnails:             convertThumbnails(s.Thumbnails),
				VideoOwnerChannelTitle: s.VideoOwnerChannelTitle,
				VideoOwnerChannelID:    s.VideoOwnerChannelId,
			}
		}
		page.Items = append(page.Items, raw)
	}
	return page, nil
}

// convertThumbnails flattens the API's fixed thumbnail slots into a map keyed
// by size label. Slots the API left out are omitted; nil in gives nil out.
func convertThumbnails(td *youtube.ThumbnailDetails) Thumbnails {
	if td == nil {
		return nil
	}
	thumbs := Thumbnails{}
	for label, t := range map[string]*youtube.Thumbnail{
		"default":  td.Default,
		"medium":   td.Medium,
		"high":     td.High,
		"standard": td.Standard,
		"maxres":   td.Maxres,
	} {
		if t != nil && t.Url != "" {
			thumbs[label] = t.Url
		}
	}
	return thumbs
}
