package book

type CreateBookReq struct {
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author" validate:"required"`
	Summary string `json:"summary" validate:"required"`
	Genre   string `json:"genre" validate:"required"`
}

// UpdateBookReq is a patch: every field is independently optional and a
// nil pointer means "keep the stored value".
type UpdateBookReq struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Summary *string `json:"summary"`
	Genre   *string `json:"genre"`
}
