package models

import "time"

// Like marks a review as liked by a user. At most one Like per (user, review),
// and a Like never coexists with an Unlike for the same pair.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_likes_user_review,priority:1"`
	ReviewID  int64     `json:"review_id" gorm:"not null;uniqueIndex:uq_likes_user_review,priority:2;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Review Review `json:"review,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}
