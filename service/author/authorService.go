package authorsvc

import (
	"context"

	openlibraryrepo "github.com/yunus169/book-review-project-final-project/repository/openlibrary"
)

// Lookup is a straight relay: the controller decides how to surface the
// upstream status, the service just performs the round-trip.
type Service interface {
	Lookup(ctx context.Context, name string) (*openlibraryrepo.SearchResult, error)
}

type service struct{ ol openlibraryrepo.Repo }

func New(ol openlibraryrepo.Repo) Service { return &service{ol: ol} }

func (s *service) Lookup(ctx context.Context, name string) (*openlibraryrepo.SearchResult, error) {
	return s.ol.SearchAuthors(ctx, name)
}
