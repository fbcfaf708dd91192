package youtube

import "context"

// Page is one response of a cursor-paginated list call.
// An empty NextPageToken marks the last page.
type Page[T any] struct {
	Items         []T
	NextPageToken string
}

// PageFunc fetches the page identified by pageToken ("" for the first page).
type PageFunc[T any] func(ctx context.Context, pageToken string) (Page[T], error)

// Result is the outcome of a pagination run.
//
// Err is nil when every page was fetched. Otherwise Items holds everything
// gathered before the failing page and Err holds the cause; items of the
// failing page itself are never included.
type Result[T any] struct {
	Items []T
	// Pages counts the pages fetched successfully. Zero together with a
	// non-nil Err means the first page already failed.
	Pages int
	Err   error
}

// Complete reports whether pagination ran until the last page.
func (r Result[T]) Complete() bool { return r.Err == nil }

// Paginate fetches pages in order, one at a time, until a page carries no
// continuation token or a fetch fails. It never returns an error directly;
// failures are reported through Result.Err.
func Paginate[T any](ctx context.Context, fetch PageFunc[T]) Result[T] {
	var res Result[T]
	pageToken := ""
	for {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}

		page, err := fetch(ctx, pageToken)
		if err != nil {
			res.Err = err
			return res
		}
		res.Pages++
		res.Items = append(res.Items, page.Items...)

		if page.NextPageToken == "" {
			return res
		}
		pageToken = page.NextPageToken
	}
}
