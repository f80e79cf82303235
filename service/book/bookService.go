package booksvc

import (
	"context"
	"errors"

	"github.com/yunus169/book-review-project-final-project/model"
)

var ErrBadInput = errors.New("invalid payload")

// topLimit is the ranking cutoff: at most five books, rated ones only.
const topLimit = 5

type Repo interface {
	Create(ctx context.Context, title, author, summary, genre string) (int64, error)
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, p model.BookPatch) error
	Delete(ctx context.Context, id int64) error
	TopRated(ctx context.Context, limit int) ([]model.RatedBook, error)
}

type Service interface {
	Create(ctx context.Context, title, author, summary, genre string) (int64, error)
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, p model.BookPatch) error
	Delete(ctx context.Context, id int64) error
	Top(ctx context.Context) ([]model.RatedBook, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, title, author, summary, genre string) (int64, error) {
	if title == "" || author == "" || summary == "" || genre == "" {
		return 0, ErrBadInput
	}
	return s.r.Create(ctx, title, author, summary, genre)
}

func (s *service) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	return s.r.List(ctx, f)
}
func (s *service) Detail(ctx context.Context, id int64) (*model.Book, error) {
	return s.r.Detail(ctx, id)
}
func (s *service) Update(ctx context.Context, id int64, p model.BookPatch) error {
	return s.r.Update(ctx, id, p)
}
func (s *service) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }
func (s *service) Top(ctx context.Context) ([]model.RatedBook, error) {
	return s.r.TopRated(ctx, topLimit)
}
