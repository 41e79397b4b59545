package notemd

import "context"

// Fetcher retrieves page HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML content of the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
