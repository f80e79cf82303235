package reviewsvc

import (
	"context"
	"errors"

	"github.com/yunus169/book-review-project-final-project/model"
)

// ErrNoReviews covers both "book has no reviews" and "book does not
// exist"; the endpoint answers 404 for either, matching the platform's
// documented contract.
var ErrNoReviews = errors.New("no reviews found for this book")

type Repo interface {
	Create(ctx context.Context, user string, rating int, text string, bookID int64) (int64, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByBook(ctx context.Context, bookID int64) ([]model.Review, error)
}

type Service interface {
	Add(ctx context.Context, user string, rating int, text string, bookID int64) (int64, error)
	List(ctx context.Context) ([]model.Review, error)
	// ListForBook returns the book's reviews and the arithmetic mean of
	// their ratings.
	ListForBook(ctx context.Context, bookID int64) ([]model.Review, float64, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Add(ctx context.Context, user string, rating int, text string, bookID int64) (int64, error) {
	return s.r.Create(ctx, user, rating, text, bookID)
}

func (s *service) List(ctx context.Context) ([]model.Review, error) { return s.r.List(ctx) }

func (s *service) ListForBook(ctx context.Context, bookID int64) ([]model.Review, float64, error) {
	reviews, err := s.r.ListByBook(ctx, bookID)
	if err != nil {
		return nil, 0, err
	}
	if len(reviews) == 0 {
		return nil, 0, ErrNoReviews
	}
	total := 0
	for _, rv := range reviews {
		total += rv.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return reviews, avg, nil
}
