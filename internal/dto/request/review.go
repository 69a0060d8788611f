package request

// CreateReviewRequest leaves rating untagged; its 1..5 range is a domain rule.
type CreateReviewRequest struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating"`
	MovieID int64  `json:"movie_id" validate:"required,gt=0"`
}
