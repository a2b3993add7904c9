package repository

import (
	"context"
	"fmt"
	"strings"

	"reviewhub/internal/httpapi/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	GetByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error)
	GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	// unique violations on imdb_id bubble up for the service to translate
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) GetByIMDBID(ctx context.Context, imdbID string) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).Where("imdb_id = ?", imdbID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// Search performs case-insensitive partial match on title, genre and director.
// Splits query into tokens and requires each token to appear in at least one
// of the fields.
func (r *movieRepository) Search(ctx context.Context, query string) ([]models.Movie, error) {
	var list []models.Movie
	tokens := strings.Fields(query)
	db := r.db.WithContext(ctx)

	if len(tokens) == 0 {
		return list, nil
	}

	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens)*3)
	for _, t := range tokens {
		p := "%" + t + "%"
		// COALESCE avoids NULL genre/director breaking ILIKE
		clauses = append(clauses, "(title ILIKE ? OR COALESCE(genre,'') ILIKE ? OR COALESCE(director,'') ILIKE ?)")
		args = append(args, p, p, p)
	}

	where := strings.Join(clauses, " AND ")
	if err := db.Where(where, args...).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return list, nil
}

// Delete removes a movie; its reviews and their likes, unlikes and comments
// cascade at the storage layer.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
