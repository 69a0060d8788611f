package entity

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	Base
	Content string `db:"content"`
	Rating  int    `db:"rating"` // 1-5
	UserID  int64  `db:"user_id"`
	MovieID int64  `db:"movie_id"`
}

// ReviewWithAuthor is a review joined with the user who wrote it.
type ReviewWithAuthor struct {
	Review
	Author User
}
