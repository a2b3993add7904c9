package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewService mocks the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, userID string, movieID int64, rating float64, text string) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, userID, movieID, rating, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) UpdateReview(reviewID int64, requester *models.User, update dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	args := m.Called(reviewID, requester, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) DeleteReview(reviewID int64, requester *models.User) error {
	args := m.Called(reviewID, requester)
	return args.Error(0)
}

func (m *MockReviewService) GetReview(reviewID int64) (*dto.ReviewDetailResponse, error) {
	args := m.Called(reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewDetailResponse), args.Error(1)
}

func (m *MockReviewService) GetMovieReviews(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	args := m.Called(ctx, movieID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetUserReviews(userID string, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedReviewResponse), args.Error(1)
}

func (m *MockReviewService) Like(userID string, reviewID int64) error {
	args := m.Called(userID, reviewID)
	return args.Error(0)
}

func (m *MockReviewService) Unlike(userID string, reviewID int64) error {
	args := m.Called(userID, reviewID)
	return args.Error(0)
}

func TestCreateReviewHandler_Success(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/movies/:movie_id/reviews", asAuthenticated("user-123", "user"), handler.Create)

	review := &dto.ReviewResponse{ID: 10, MovieID: 1, Rating: 4.5, ReviewText: "great"}
	mockReviewService.On("CreateReview", mock.Anything, "user-123", int64(1), 4.5, "great").Return(review, nil)

	rating := 4.5
	reqBody := dto.CreateReviewDTO{Rating: &rating, ReviewText: "great"}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/movies/1/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.ReviewResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(10), response.ID)
	assert.Equal(t, 4.5, response.Rating)

	mockReviewService.AssertExpectations(t)
}

func TestCreateReviewHandler_ZeroRatingIsValid(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/movies/:movie_id/reviews", asAuthenticated("user-123", "user"), handler.Create)

	// rating 0.0 must survive binding; it is a value, not an absence
	review := &dto.ReviewResponse{ID: 10, MovieID: 1, Rating: 0.0}
	mockReviewService.On("CreateReview", mock.Anything, "user-123", int64(1), 0.0, "awful").Return(review, nil)

	body := []byte(`{"rating": 0.0, "review_text": "awful"}`)

	req, _ := http.NewRequest("POST", "/movies/1/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestCreateReviewHandler_Duplicate(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/movies/:movie_id/reviews", asAuthenticated("user-123", "user"), handler.Create)

	mockReviewService.On("CreateReview", mock.Anything, "user-123", int64(1), 4.0, "again").
		Return(nil, service.ErrDuplicateReview)

	body := []byte(`{"rating": 4.0, "review_text": "again"}`)

	req, _ := http.NewRequest("POST", "/movies/1/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestCreateReviewHandler_RatingOutOfRange(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/movies/:movie_id/reviews", asAuthenticated("user-123", "user"), handler.Create)

	mockReviewService.On("CreateReview", mock.Anything, "user-123", int64(1), 5.5, "too much").
		Return(nil, service.ErrRatingOutOfRange)

	body := []byte(`{"rating": 5.5, "review_text": "too much"}`)

	req, _ := http.NewRequest("POST", "/movies/1/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestCreateReviewHandler_InvalidMovieID(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/movies/:movie_id/reviews", asAuthenticated("user-123", "user"), handler.Create)

	body := []byte(`{"rating": 4.0, "review_text": "text"}`)

	req, _ := http.NewRequest("POST", "/movies/abc/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockReviewService.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetReviewHandler_Success(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.GET("/reviews/:review_id", handler.Get)

	detail := &dto.ReviewDetailResponse{
		ReviewResponse: dto.ReviewResponse{ID: 10, Rating: 4.0, Likes: 3, Unlikes: 1},
		Comments: []dto.CommentResponse{
			{ID: 1, Content: "first"},
		},
	}
	mockReviewService.On("GetReview", int64(10)).Return(detail, nil)

	req, _ := http.NewRequest("GET", "/reviews/10", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ReviewDetailResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(10), response.ID)
	assert.Equal(t, int64(3), response.Likes)
	assert.Len(t, response.Comments, 1)
}

func TestGetReviewHandler_NotFound(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.GET("/reviews/:review_id", handler.Get)

	mockReviewService.On("GetReview", int64(404)).Return(nil, service.ErrReviewNotFound)

	req, _ := http.NewRequest("GET", "/reviews/404", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReviewHandler_Forbidden(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.PUT("/reviews/:review_id", asAuthenticated("other-user", "user"), handler.Update)

	mockReviewService.On("UpdateReview", int64(10), mock.AnythingOfType("*models.User"), mock.Anything).
		Return(nil, service.ErrNotOwner)

	body := []byte(`{"rating": 1.0}`)

	req, _ := http.NewRequest("PUT", "/reviews/10", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestDeleteReviewHandler_Success(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.DELETE("/reviews/:review_id", asAuthenticated("user-123", "user"), handler.Delete)

	mockReviewService.On("DeleteReview", int64(10), mock.AnythingOfType("*models.User")).Return(nil)

	req, _ := http.NewRequest("DELETE", "/reviews/10", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestLikeHandler_Success(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/reviews/:review_id/like", asAuthenticated("user-123", "user"), handler.Like)

	mockReviewService.On("Like", "user-123", int64(10)).Return(nil)

	req, _ := http.NewRequest("POST", "/reviews/10/like", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestLikeHandler_AlreadyLiked(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/reviews/:review_id/like", asAuthenticated("user-123", "user"), handler.Like)

	mockReviewService.On("Like", "user-123", int64(10)).Return(service.ErrAlreadyLiked)

	req, _ := http.NewRequest("POST", "/reviews/10/like", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestUnlikeHandler_AlreadyUnliked(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.POST("/reviews/:review_id/unlike", asAuthenticated("user-123", "user"), handler.Unlike)

	mockReviewService.On("Unlike", "user-123", int64(10)).Return(service.ErrAlreadyUnliked)

	req, _ := http.NewRequest("POST", "/reviews/10/unlike", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockReviewService.AssertExpectations(t)
}

func TestListByMovieHandler_Pagination(t *testing.T) {
	mockReviewService := new(MockReviewService)
	handler := NewReviewHandler(mockReviewService)
	router := setupRouter()
	router.GET("/movies/:movie_id/reviews", handler.ListByMovie)

	page := &dto.PaginatedReviewResponse{
		Data:     []dto.ReviewResponse{{ID: 10}},
		Page:     2,
		PageSize: 5,
		Total:    11,
	}
	mockReviewService.On("GetMovieReviews", mock.Anything, int64(1), 2, 5).Return(page, nil)

	req, _ := http.NewRequest("GET", "/movies/1/reviews?page=2&page_size=5", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockReviewService.AssertExpectations(t)
}
