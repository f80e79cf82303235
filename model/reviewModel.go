package model

type Review struct {
	ID     int64  `json:"id"`
	User   string `json:"user"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	BookID int64  `json:"book_id"`
}
