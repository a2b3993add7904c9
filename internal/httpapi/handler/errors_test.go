package handler

import (
	"errors"
	"net/http"
	"testing"

	"reviewhub/internal/httpapi/service"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{service.ErrRatingOutOfRange, http.StatusBadRequest},
		{service.ErrPasswordTooWeak, http.StatusBadRequest},
		{service.ErrNameInUse, http.StatusConflict},
		{service.ErrDuplicateReview, http.StatusConflict},
		{service.ErrAlreadyLiked, http.StatusConflict},
		{service.ErrAlreadyUnliked, http.StatusConflict},
		{service.ErrMovieExists, http.StatusConflict},
		{service.ErrNotOwner, http.StatusForbidden},
		{service.ErrMovieNotFound, http.StatusNotFound},
		{service.ErrMovieNotFoundUpstream, http.StatusNotFound},
		{service.ErrReviewNotFound, http.StatusNotFound},
		{service.ErrCommentNotFound, http.StatusNotFound},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrInvalidToken, http.StatusUnauthorized},
		{service.ErrExpiredToken, http.StatusUnauthorized},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, statusFromError(tt.err), "err=%v", tt.err)
	}
}
