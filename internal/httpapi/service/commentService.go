package service

import (
	"errors"

	"reviewhub/internal/httpapi/authz"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(userID string, reviewID int64, content string) (*dto.CommentResponse, error)
	UpdateComment(commentID int64, requester *models.User, content string) (*dto.CommentResponse, error)
	DeleteComment(commentID int64, requester *models.User) error
	GetCommentByID(commentID int64) (*dto.CommentResponse, error)
	GetReviewComments(reviewID int64, page, pageSize int) (*dto.PaginatedCommentResponse, error)
	GetUserComments(userID string, page, pageSize int) (*dto.PaginatedCommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// CreateComment creates a new comment on a review. There is no uniqueness
// rule here; a user may comment any number of times.
func (s *commentService) CreateComment(userID string, reviewID int64, content string) (*dto.CommentResponse, error) {
	// Check if review exists
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		UserID:   userID,
		ReviewID: reviewID,
		Content:  content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with user data
	comment, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// UpdateComment updates an existing comment; only the owner may edit
func (s *commentService) UpdateComment(commentID int64, requester *models.User, content string) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if !authz.OwnerOrRead(requester, comment.UserID, true) {
		return nil, ErrNotOwner
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	comment, err = s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// DeleteComment deletes a comment; only the owner may delete
func (s *commentService) DeleteComment(commentID int64, requester *models.User) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if !authz.OwnerOrRead(requester, comment.UserID, true) {
		return ErrNotOwner
	}

	return s.commentRepo.Delete(commentID)
}

// GetCommentByID retrieves a comment by ID
func (s *commentService) GetCommentByID(commentID int64) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// GetReviewComments retrieves comments on a review, oldest first
func (s *commentService) GetReviewComments(reviewID int64, page, pageSize int) (*dto.PaginatedCommentResponse, error) {
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comments, total, err := s.commentRepo.GetByReview(reviewID, page, pageSize)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, *dto.FromModelToCommentResponse(&comment))
	}

	return dto.NewPaginatedCommentResponse(commentResponses, int(total), page, pageSize), nil
}

// GetUserComments retrieves all comments by a user with pagination
func (s *commentService) GetUserComments(userID string, page, pageSize int) (*dto.PaginatedCommentResponse, error) {
	comments, total, err := s.commentRepo.GetByUser(userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, *dto.FromModelToCommentResponse(&comment))
	}

	return dto.NewPaginatedCommentResponse(commentResponses, int(total), page, pageSize), nil
}
