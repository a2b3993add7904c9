package service

import (
	"context"
	"errors"

	"reviewhub/internal/cache"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/repository"
	"reviewhub/internal/omdb"

	"gorm.io/gorm"
)

// MetadataFetcher is the external enrichment lookup. The OMDb client
// implements it; tests substitute their own.
type MetadataFetcher interface {
	FetchByTitle(ctx context.Context, title string) (*omdb.MovieDetails, error)
}

type MovieService interface {
	Create(ctx context.Context, title string) (*dto.MovieResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error)
	List(ctx context.Context, page, pageSize int) (*dto.PaginatedMovieResponse, error)
	Search(ctx context.Context, query string) ([]dto.MovieResponse, error)
	Delete(ctx context.Context, id int64) error
}

type movieService struct {
	movieRepo  repository.MovieRepository
	fetcher    MetadataFetcher
	movieCache *cache.MovieCache
}

func NewMovieService(movieRepo repository.MovieRepository, fetcher MetadataFetcher, movieCache *cache.MovieCache) MovieService {
	return &movieService{
		movieRepo:  movieRepo,
		fetcher:    fetcher,
		movieCache: movieCache,
	}
}

// Create looks the title up in OMDb and persists the enriched record. Any
// lookup failure (miss, timeout, network) means no row is created. The
// operation is not idempotent: a retry performs the lookup again and only
// the insert is rejected.
func (s *movieService) Create(ctx context.Context, title string) (*dto.MovieResponse, error) {
	details, err := s.fetcher.FetchByTitle(ctx, title)
	if err != nil {
		// upstream failures are folded into not-found by policy
		return nil, ErrMovieNotFoundUpstream
	}

	// Gather all enrichment fields into one record, then a single insert.
	movie := &models.Movie{
		Title:       details.Title,
		Plot:        details.Plot,
		Poster:      details.Poster,
		ReleaseYear: details.ReleaseYear,
		Genre:       details.Genre,
		Director:    details.Director,
	}
	if details.ImdbID != "" {
		movie.IMDBID = &details.ImdbID
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrMovieExists
		}
		return nil, err
	}

	return dto.FromModelToMovieResponse(movie), nil
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	if cached := s.movieCache.Get(ctx, id); cached != nil {
		return dto.FromModelToMovieResponse(cached), nil
	}

	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	s.movieCache.Set(ctx, movie)

	return dto.FromModelToMovieResponse(movie), nil
}

func (s *movieService) List(ctx context.Context, page, pageSize int) (*dto.PaginatedMovieResponse, error) {
	movies, total, err := s.movieRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	movieResponses := make([]dto.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		movieResponses = append(movieResponses, *dto.FromModelToMovieResponse(&movie))
	}

	return dto.NewPaginatedMovieResponse(movieResponses, int(total), page, pageSize), nil
}

func (s *movieService) Search(ctx context.Context, query string) ([]dto.MovieResponse, error) {
	movies, err := s.movieRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	movieResponses := make([]dto.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		movieResponses = append(movieResponses, *dto.FromModelToMovieResponse(&movie))
	}

	return movieResponses, nil
}

// Delete removes a movie and, via cascade, all of its reviews and their
// likes, unlikes and comments.
func (s *movieService) Delete(ctx context.Context, id int64) error {
	if err := s.movieRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	s.movieCache.Invalidate(ctx, id)
	return nil
}
