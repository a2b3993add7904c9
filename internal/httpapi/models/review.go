package models

import "time"

// Review is unique per (user, movie) pair, enforced by uq_reviews_user_movie.
type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_reviews_user_movie,priority:1"`
	MovieID    int64     `json:"movie_id" gorm:"not null;uniqueIndex:uq_reviews_user_movie,priority:2;index"`
	Rating     float64   `json:"rating" gorm:"type:numeric(3,1);not null;check:rating >= 0.0 AND rating <= 5.0"`
	ReviewText string    `json:"review_text" gorm:"not null;type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie    Movie     `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
	Unlikes  []Unlike  `json:"unlikes,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
