package openlibraryrepo

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/yunus169/book-review-project-final-project/util/httpx"
)

type httpRepo struct {
	baseURL string
	client  *http.Client
}

// NewHTTP builds the adapter against baseURL (https://openlibrary.org in
// production, an httptest server in tests). The shared client carries the
// timeout; the request context carries cancellation.
func NewHTTP(baseURL string) Repo {
	return &httpRepo{baseURL: baseURL, client: httpx.Client()}
}

func (r *httpRepo) SearchAuthors(ctx context.Context, name string) (*SearchResult, error) {
	u := r.baseURL + "/search/authors.json?q=" + url.QueryEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &SearchResult{StatusCode: resp.StatusCode, Body: body}, nil
}
