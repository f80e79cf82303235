package bookrepo

import (
	"context"
	"errors"

	"github.com/yunus169/book-review-project-final-project/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports an id-based miss. Repos never leak pgx.ErrNoRows.
var ErrNotFound = errors.New("book not found")

type Repo interface {
	Create(ctx context.Context, title, author, summary, genre string) (int64, error)
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, p model.BookPatch) error
	Delete(ctx context.Context, id int64) error
	TopRated(ctx context.Context, limit int) ([]model.RatedBook, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, title, author, summary, genre string) (int64, error) {
	const q = `
INSERT INTO books (title, author, summary, genre)
VALUES ($1,$2,$3,$4)
RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, q, title, author, summary, genre).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	// POSITION(needle IN hay) > 0 is case-sensitive substring containment.
	// $1='' disables the corresponding filter.
	const q = `
	SELECT id, title, author, summary, genre
	FROM books
	WHERE ($1 = '' OR POSITION($1 IN title) > 0)
	  AND ($2 = '' OR POSITION($2 IN author) > 0)
	  AND ($3 = '' OR POSITION($3 IN genre) > 0)
	ORDER BY id`
	rows, err := r.db.Query(ctx, q, f.Title, f.Author, f.Genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Summary, &b.Genre); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
SELECT id, title, author, summary, genre
FROM books
WHERE id = $1`
	var b model.Book
	err := r.db.QueryRow(ctx, q, id).Scan(&b.ID, &b.Title, &b.Author, &b.Summary, &b.Genre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Update(ctx context.Context, id int64, p model.BookPatch) error {
	// COALESCE merges the patch over the stored row; nil leaves a field alone.
	const q = `
	UPDATE books
	SET title   = COALESCE($2, title),
	    author  = COALESCE($3, author),
	    summary = COALESCE($4, summary),
	    genre   = COALESCE($5, genre)
	WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id, p.Title, p.Author, p.Summary, p.Genre)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repo) TopRated(ctx context.Context, limit int) ([]model.RatedBook, error) {
	// Zero-review books are excluded by the INNER JOIN; ties break on id.
	const q = `
	SELECT b.id, b.title, b.author, b.summary, b.genre,
	       AVG(r.rating)::FLOAT8 AS average_rating
	FROM books b
	JOIN reviews r ON r.book_id = b.id
	GROUP BY b.id
	ORDER BY average_rating DESC, b.id ASC
	LIMIT $1`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RatedBook{}
	for rows.Next() {
		var rb model.RatedBook
		if err := rows.Scan(&rb.ID, &rb.Title, &rb.Author, &rb.Summary, &rb.Genre, &rb.AverageRating); err != nil {
			return nil, err
		}
		out = append(out, rb)
	}
	return out, rows.Err()
}
