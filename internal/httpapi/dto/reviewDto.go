package dto

import (
	"time"

	"reviewhub/internal/httpapi/models"
)

// CreateReviewDTO for posting a review on a movie
type CreateReviewDTO struct {
	Rating     *float64 `json:"rating" binding:"required"`
	ReviewText string   `json:"review_text" binding:"required,min=1"`
}

// UpdateReviewDTO for editing a review; only provided fields are applied
type UpdateReviewDTO struct {
	Rating     *float64 `json:"rating,omitempty"`
	ReviewText *string  `json:"review_text,omitempty"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movie_id"`
	Username   string    `json:"username"`
	Rating     float64   `json:"rating"`
	ReviewText string    `json:"review_text"`
	Likes      int64     `json:"likes"`
	Unlikes    int64     `json:"unlikes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review, likes, unlikes int64) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID,
		MovieID:    review.MovieID,
		Username:   review.User.Username,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		Likes:      likes,
		Unlikes:    unlikes,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

// ReviewDetailResponse adds the comment thread, oldest first
type ReviewDetailResponse struct {
	ReviewResponse
	Comments []CommentResponse `json:"comments"`
}

// PaginatedReviewResponse for returning paginated reviews
type PaginatedReviewResponse struct {
	Data       []ReviewResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedReviewResponse creates a paginated review response
func NewPaginatedReviewResponse(data []ReviewResponse, total, page, pageSize int) *PaginatedReviewResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedReviewResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
