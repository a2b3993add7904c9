package dto

import (
	"time"

	"reviewhub/internal/httpapi/models"
)

// CreateMovieDTO for creating a movie; everything else comes from the
// enrichment lookup
type CreateMovieDTO struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// MovieResponse for returning movie information
type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	IMDBID      *string   `json:"imdb_id,omitempty"`
	Plot        *string   `json:"plot,omitempty"`
	Poster      *string   `json:"poster,omitempty"`
	ReleaseYear *int      `json:"release_year,omitempty"`
	Genre       *string   `json:"genre,omitempty"`
	Director    *string   `json:"director,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromModelToMovieResponse converts a Movie model to MovieResponse DTO
func FromModelToMovieResponse(movie *models.Movie) *MovieResponse {
	return &MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		IMDBID:      movie.IMDBID,
		Plot:        movie.Plot,
		Poster:      movie.Poster,
		ReleaseYear: movie.ReleaseYear,
		Genre:       movie.Genre,
		Director:    movie.Director,
		CreatedAt:   movie.CreatedAt,
	}
}

// PaginatedMovieResponse for returning paginated movies
type PaginatedMovieResponse struct {
	Data       []MovieResponse `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// NewPaginatedMovieResponse creates a paginated movie response
func NewPaginatedMovieResponse(data []MovieResponse, total, page, pageSize int) *PaginatedMovieResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedMovieResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
