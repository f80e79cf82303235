package review

// Rating is a pointer so a supplied 0 passes the presence check; no range
// is enforced.
type CreateReviewReq struct {
	User   string `json:"user" validate:"required"`
	Rating *int   `json:"rating" validate:"required"`
	Text   string `json:"text" validate:"required"`
	BookID int64  `json:"book_id" validate:"required"`
}
