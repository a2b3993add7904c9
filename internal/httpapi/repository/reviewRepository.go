package repository

import (
	"reviewhub/internal/httpapi/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(reviewID int64) error
	GetByID(reviewID int64) (*models.Review, error)
	GetByUserAndMovie(userID string, movieID int64) (*models.Review, error)
	GetByMovie(movieID int64, page, pageSize int) ([]models.Review, int64, error)
	GetByUser(userID string, page, pageSize int) ([]models.Review, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create a new review. The uq_reviews_user_movie constraint rejects a second
// review for the same (user, movie) pair, so the check and the insert cannot
// race.
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Update an existing review
func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete a review; likes, unlikes and comments cascade at the storage layer
func (r *reviewRepository) Delete(reviewID int64) error {
	result := r.db.Delete(&models.Review{}, reviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves a review with its author and comments (oldest first)
func (r *reviewRepository) GetByID(reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("id = ?", reviewID).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByUserAndMovie retrieves a user's review for a specific movie
func (r *reviewRepository) GetByUserAndMovie(userID string, movieID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).
		Preload("User").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByMovie retrieves all reviews for a movie with pagination
func (r *reviewRepository) GetByMovie(movieID int64, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Where("movie_id = ?", movieID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("movie_id = ?", movieID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetByUser retrieves all reviews by a user with pagination
func (r *reviewRepository) GetByUser(userID string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Preload("Movie").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}
