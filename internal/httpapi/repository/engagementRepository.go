package repository

import (
	"reviewhub/internal/httpapi/models"

	"gorm.io/gorm"
)

// EngagementRepository handles the like/unlike relations. The two mutations
// are delete-then-insert swaps run inside one transaction, so no concurrent
// reader ever observes both a Like and an Unlike for the same pair. Duplicate
// inserts fail on the composite unique indexes and bubble up as unique
// violations.
type EngagementRepository interface {
	Like(userID string, reviewID int64) error
	Unlike(userID string, reviewID int64) error
	CountsForReview(reviewID int64) (likes, unlikes int64, err error)
	GetLikes(reviewID int64) ([]models.Like, error)
	GetUnlikes(reviewID int64) ([]models.Unlike, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// Like clears any prior unlike for the pair, then inserts the like.
func (r *engagementRepository) Like(userID string, reviewID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND review_id = ?", userID, reviewID).
			Delete(&models.Unlike{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Like{UserID: userID, ReviewID: reviewID}).Error
	})
}

// Unlike clears any prior like for the pair, then inserts the unlike.
func (r *engagementRepository) Unlike(userID string, reviewID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND review_id = ?", userID, reviewID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Unlike{UserID: userID, ReviewID: reviewID}).Error
	})
}

// CountsForReview returns the like and unlike totals for a review
func (r *engagementRepository) CountsForReview(reviewID int64) (int64, int64, error) {
	var likes, unlikes int64

	if err := r.db.Model(&models.Like{}).Where("review_id = ?", reviewID).Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&models.Unlike{}).Where("review_id = ?", reviewID).Count(&unlikes).Error; err != nil {
		return 0, 0, err
	}

	return likes, unlikes, nil
}

// GetLikes retrieves all likes on a review with their users
func (r *engagementRepository) GetLikes(reviewID int64) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("review_id = ?", reviewID).
		Preload("User").
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// GetUnlikes retrieves all unlikes on a review with their users
func (r *engagementRepository) GetUnlikes(reviewID int64) ([]models.Unlike, error) {
	var unlikes []models.Unlike
	err := r.db.Where("review_id = ?", reviewID).
		Preload("User").
		Order("created_at DESC").
		Find(&unlikes).Error
	if err != nil {
		return nil, err
	}
	return unlikes, nil
}
