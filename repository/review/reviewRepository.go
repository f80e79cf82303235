package reviewrepo

import (
	"context"
	"errors"

	"github.com/yunus169/book-review-project-final-project/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrBookNotFound reports an insert against a book id the FK rejects.
var ErrBookNotFound = errors.New("book not found")

type Repo interface {
	Create(ctx context.Context, user string, rating int, text string, bookID int64) (int64, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByBook(ctx context.Context, bookID int64) ([]model.Review, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, user string, rating int, text string, bookID int64) (int64, error) {
	const q = `
INSERT INTO reviews (reviewer, rating, body, book_id)
VALUES ($1,$2,$3,$4)
RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, q, user, rating, text, bookID).Scan(&id); err != nil {
		if isFKViolation(err) {
			return 0, ErrBookNotFound
		}
		return 0, err
	}
	return id, nil
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func (r *repo) List(ctx context.Context) ([]model.Review, error) {
	const q = `
	SELECT id, reviewer, rating, body, book_id
	FROM reviews
	ORDER BY id`
	return r.scanRows(ctx, q)
}

func (r *repo) ListByBook(ctx context.Context, bookID int64) ([]model.Review, error) {
	const q = `
	SELECT id, reviewer, rating, body, book_id
	FROM reviews
	WHERE book_id = $1
	ORDER BY id`
	return r.scanRows(ctx, q, bookID)
}

func (r *repo) scanRows(ctx context.Context, q string, args ...any) ([]model.Review, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.User, &rv.Rating, &rv.Text, &rv.BookID); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
