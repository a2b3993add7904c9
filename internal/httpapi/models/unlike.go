package models

import "time"

// Unlike is the persisted negative counterpart of Like, with the same
// one-per-(user, review) rule.
type Unlike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_unlikes_user_review,priority:1"`
	ReviewID  int64     `json:"review_id" gorm:"not null;uniqueIndex:uq_unlikes_user_review,priority:2;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Review Review `json:"review,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Unlike) TableName() string {
	return "unlikes"
}
