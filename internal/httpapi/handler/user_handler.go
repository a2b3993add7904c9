package handler

import (
	"net/http"

	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/middleware"
	"reviewhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService    service.UserService
	reviewService  service.ReviewService
	commentService service.CommentService
}

func NewUserHandler(
	userService service.UserService,
	reviewService service.ReviewService,
	commentService service.CommentService,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		reviewService:  reviewService,
		commentService: commentService,
	}
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", middleware.RequireAdmin(), h.List)
		users.GET("/:user_id", h.Get)
		users.PUT("/:user_id", h.Update)
		users.DELETE("/:user_id", h.Delete)

		users.GET("/:user_id/reviews", h.ListReviews)
		users.GET("/:user_id/comments", h.ListComments)
	}
}

// Get retrieves a user's public profile
// GET /api/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List retrieves all users with pagination; admin only
// GET /api/users?page=1&page_size=20
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	users, err := h.userService.ListUsers(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Update edits an account's profile fields; self or admin only
// PUT /api/users/:user_id
func (h *UserHandler) Update(c *gin.Context) {
	requester := requesterFromContext(c)
	if requester == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Param("user_id"), requester, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes an account; self or admin only. Everything the user owns
// goes with it.
// DELETE /api/users/:user_id
func (h *UserHandler) Delete(c *gin.Context) {
	requester := requesterFromContext(c)
	if requester == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.userService.DeleteUser(c.Param("user_id"), requester); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListReviews retrieves a user's reviews with pagination
// GET /api/users/:user_id/reviews
func (h *UserHandler) ListReviews(c *gin.Context) {
	page, pageSize := parsePagination(c)

	reviews, err := h.reviewService.GetUserReviews(c.Param("user_id"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListComments retrieves a user's comments with pagination
// GET /api/users/:user_id/comments
func (h *UserHandler) ListComments(c *gin.Context) {
	page, pageSize := parsePagination(c)

	comments, err := h.commentService.GetUserComments(c.Param("user_id"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
