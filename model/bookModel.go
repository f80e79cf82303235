// model/book.go
package model

type Book struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Summary string `json:"summary"`
	Genre   string `json:"genre"`
}

// BookPatch carries a partial update; nil fields keep the stored value.
type BookPatch struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Summary *string `json:"summary"`
	Genre   *string `json:"genre"`
}

// RatedBook is a book together with the mean of its review ratings.
type RatedBook struct {
	Book
	AverageRating float64 `json:"average_rating"`
}

// BookFilter narrows listing by case-sensitive substring match per field.
// Empty fields are skipped; supplied fields are ANDed.
type BookFilter struct {
	Title  string
	Author string
	Genre  string
}
