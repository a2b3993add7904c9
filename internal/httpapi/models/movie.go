package models

import "time"

// Movie rows are created once from an OMDb lookup and never updated afterwards.
type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	IMDBID      *string   `json:"imdb_id,omitempty" gorm:"column:imdb_id;uniqueIndex;size:50"`
	Plot        *string   `json:"plot,omitempty" gorm:"type:text"`
	Poster      *string   `json:"poster,omitempty" gorm:"size:500"`
	ReleaseYear *int      `json:"release_year,omitempty"`
	Genre       *string   `json:"genre,omitempty"`
	Director    *string   `json:"director,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
