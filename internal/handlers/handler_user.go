package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/poultrybooks/poultry_books_app/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)       // Admin only
		users.GET("", h.listUsers)         // Admin only
		users.GET("/:id", h.getUser)       // Own or admin
		users.DELETE("/:id", h.deleteUser) // Admin only, never admins
	}
}

// idParam parses the numeric :id path parameter.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}

// callerID retrieves the authenticated user's ID, aborting with 401 when the
// auth middleware did not run.
func callerID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := callerID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create user", slog.String("username", req.Username))

	createdUser, err := h.userService.CreateUser(c.Request.Context(), creatorID, req)
	if err != nil {
		logger.Error("Failed to create user in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create user")
		return
	}

	logger.Info("User created successfully", slog.Int64("new_user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(createdUser))
}

func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID, ok := idParam(c)
	if !ok {
		return
	}
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	// Users may read their own record; anything else needs the admin role,
	// re-read from the store rather than trusted from the token.
	if loggedInID != targetID {
		caller, err := h.userService.GetUserByID(c.Request.Context(), loggedInID)
		if err != nil || !caller.IsAdmin() {
			logger.Warn("User forbidden to access another user's details", slog.Int64("target_id", targetID))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		logger.Error("Failed to get user from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), loggedInID)
	if err != nil {
		logger.Error("Failed to list users from service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list users")
		return
	}

	userResponses := make([]dto.UserResponse, len(users))
	for i := range users {
		userResponses[i] = dto.ToUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: userResponses})
}

func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID, ok := idParam(c)
	if !ok {
		return
	}
	loggedInID, ok := callerID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("target_user_id", targetID))
	logger.Info("Received request to delete user")

	if err := h.userService.DeleteUser(c.Request.Context(), loggedInID, targetID); err != nil {
		logger.Error("Failed to delete user in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete user")
		return
	}

	logger.Info("User deleted successfully")
	c.Status(http.StatusNoContent)
}
