package response

import (
	"time"

	"moviehub/internal/data/entity"
)

type ReviewResponse struct {
	ID        int64        `json:"id"`
	Content   string       `json:"content"`
	Rating    int          `json:"rating"`
	CreatedAt time.Time    `json:"created_at"`
	UserID    int64        `json:"user_id"`
	MovieID   int64        `json:"movie_id"`
	User      UserResponse `json:"user"`
}

func ReviewToResponse(review *entity.Review, author *entity.User) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		UserID:    review.UserID,
		MovieID:   review.MovieID,
		User:      UserToResponse(author),
	}
}

func ReviewsToResponse(reviews []*entity.ReviewWithAuthor) []ReviewResponse {
	resp := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		resp[i] = ReviewToResponse(&review.Review, &review.Author)
	}
	return resp
}
