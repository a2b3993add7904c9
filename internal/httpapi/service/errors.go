package service

import (
	"errors"
	"fmt"
)

// Base error kinds. Every service error wraps one of these so handlers can
// map it to a status code with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
)

// Authentication errors, surfaced as 401 by the handlers
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

var (
	ErrNameInUse  = fmt.Errorf("%w: username already in use", ErrConflict)
	ErrEmailInUse = fmt.Errorf("%w: email already in use", ErrConflict)

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrWrongPassword   = fmt.Errorf("%w: old password is incorrect", ErrValidation)
	ErrPasswordTooWeak = fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)

	ErrMovieNotFound         = fmt.Errorf("%w: movie not found", ErrNotFound)
	ErrMovieNotFoundUpstream = fmt.Errorf("%w: movie not found upstream", ErrNotFound)
	ErrMovieExists           = fmt.Errorf("%w: movie already exists", ErrConflict)

	ErrReviewNotFound   = fmt.Errorf("%w: review not found", ErrNotFound)
	ErrDuplicateReview  = fmt.Errorf("%w: duplicate review", ErrConflict)
	ErrRatingOutOfRange = fmt.Errorf("%w: rating must be between 0.0 and 5.0", ErrValidation)

	ErrAlreadyLiked   = fmt.Errorf("%w: already liked", ErrConflict)
	ErrAlreadyUnliked = fmt.Errorf("%w: already unliked", ErrConflict)

	ErrCommentNotFound = fmt.Errorf("%w: comment not found", ErrNotFound)

	ErrNotOwner = fmt.Errorf("%w: you don't have permission to modify this resource", ErrForbidden)
)
