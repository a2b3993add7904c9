package handler

import (
	"errors"
	"net/http"

	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// statusFromError maps a service error kind to an HTTP status code.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

// requesterFromContext rebuilds the requesting user from the claims the auth
// middleware stored on the context. Returns nil when the request is
// unauthenticated.
func requesterFromContext(c *gin.Context) *models.User {
	userID, exists := c.Get("userID")
	if !exists {
		return nil
	}
	role, _ := c.Get("role")
	roleStr, _ := role.(string)

	return &models.User{
		ID:   userID.(string),
		Role: roleStr,
	}
}
