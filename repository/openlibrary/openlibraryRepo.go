package openlibraryrepo

import "context"

// SearchResult relays the upstream response as-is: the raw JSON body and
// the status code it arrived with.
type SearchResult struct {
	StatusCode int
	Body       []byte
}

type Repo interface {
	SearchAuthors(ctx context.Context, name string) (*SearchResult, error)
}
