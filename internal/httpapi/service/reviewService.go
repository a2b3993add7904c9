package service

import (
	"context"
	"errors"

	"reviewhub/internal/httpapi/authz"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, movieID int64, rating float64, text string) (*dto.ReviewResponse, error)
	UpdateReview(reviewID int64, requester *models.User, update dto.UpdateReviewDTO) (*dto.ReviewResponse, error)
	DeleteReview(reviewID int64, requester *models.User) error
	GetReview(reviewID int64) (*dto.ReviewDetailResponse, error)
	GetMovieReviews(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error)
	GetUserReviews(userID string, page, pageSize int) (*dto.PaginatedReviewResponse, error)
	Like(userID string, reviewID int64) error
	Unlike(userID string, reviewID int64) error
}

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	engagementRepo repository.EngagementRepository
	movieRepo      repository.MovieRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	engagementRepo repository.EngagementRepository,
	movieRepo repository.MovieRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		engagementRepo: engagementRepo,
		movieRepo:      movieRepo,
	}
}

func validRating(rating float64) bool {
	return rating >= MinRating && rating <= MaxRating
}

// CreateReview posts a review for a movie. A user gets one review per movie;
// the unique constraint makes the duplicate check and the insert atomic, so
// two concurrent creates for the same pair cannot both land.
func (s *reviewService) CreateReview(ctx context.Context, userID string, movieID int64, rating float64, text string) (*dto.ReviewResponse, error) {
	if !validRating(rating) {
		return nil, ErrRatingOutOfRange
	}

	// Check if movie exists
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:     userID,
		MovieID:    movieID,
		Rating:     rating,
		ReviewText: text,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	// Reload with user data
	review, err := s.reviewRepo.GetByUserAndMovie(userID, movieID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review, 0, 0), nil
}

// UpdateReview applies only the provided fields; the rating is re-validated
// against the same bounds. Only the owner may edit.
func (s *reviewService) UpdateReview(reviewID int64, requester *models.User, update dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if !authz.OwnerOrRead(requester, review.UserID, true) {
		return nil, ErrNotOwner
	}

	if update.Rating != nil {
		if !validRating(*update.Rating) {
			return nil, ErrRatingOutOfRange
		}
		review.Rating = *update.Rating
	}
	if update.ReviewText != nil {
		review.ReviewText = *update.ReviewText
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	likes, unlikes, err := s.engagementRepo.CountsForReview(reviewID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review, likes, unlikes), nil
}

// DeleteReview removes the review and, through storage-level cascade, all
// of its likes, unlikes and comments.
func (s *reviewService) DeleteReview(reviewID int64, requester *models.User) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if !authz.OwnerOrRead(requester, review.UserID, true) {
		return ErrNotOwner
	}

	return s.reviewRepo.Delete(reviewID)
}

// GetReview retrieves a review with its comment thread, oldest comment first
func (s *reviewService) GetReview(reviewID int64) (*dto.ReviewDetailResponse, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	likes, unlikes, err := s.engagementRepo.CountsForReview(reviewID)
	if err != nil {
		return nil, err
	}

	comments := make([]dto.CommentResponse, 0, len(review.Comments))
	for _, comment := range review.Comments {
		comments = append(comments, *dto.FromModelToCommentResponse(&comment))
	}

	return &dto.ReviewDetailResponse{
		ReviewResponse: *dto.FromModelToReviewResponse(review, likes, unlikes),
		Comments:       comments,
	}, nil
}

// GetMovieReviews retrieves all reviews for a movie with pagination
func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetByMovie(movieID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return s.buildPage(reviews, int(total), page, pageSize)
}

// GetUserReviews retrieves all reviews by a user with pagination
func (s *reviewService) GetUserReviews(userID string, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	reviews, total, err := s.reviewRepo.GetByUser(userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return s.buildPage(reviews, int(total), page, pageSize)
}

func (s *reviewService) buildPage(reviews []models.Review, total, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		likes, unlikes, err := s.engagementRepo.CountsForReview(review.ID)
		if err != nil {
			return nil, err
		}
		reviewResponses = append(reviewResponses, *dto.FromModelToReviewResponse(&review, likes, unlikes))
	}

	return dto.NewPaginatedReviewResponse(reviewResponses, total, page, pageSize), nil
}

// Like puts the review in the liked state for this user: any prior unlike is
// cleared and a like is inserted, all in one transaction. Liking an already
// liked review is a conflict.
func (s *reviewService) Like(userID string, reviewID int64) error {
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if err := s.engagementRepo.Like(userID, reviewID); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyLiked
		}
		return err
	}

	return nil
}

// Unlike is the mirror image: any prior like is cleared and an unlike is
// inserted. Unliking an already unliked review is a conflict.
func (s *reviewService) Unlike(userID string, reviewID int64) error {
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if err := s.engagementRepo.Unlike(userID, reviewID); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyUnliked
		}
		return err
	}

	return nil
}
