package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrybooks/poultry_books_app/internal/core/ports/services"
	"github.com/poultrybooks/poultry_books_app/internal/dto"
	"github.com/poultrybooks/poultry_books_app/internal/middleware"
	"github.com/poultrybooks/poultry_books_app/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles HTTP requests for authentication.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the public authentication routes. Login is
// rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, falling back to 10-M", slog.String("value", cfg.LoginRateLimit))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondError(c, err, "Login failed")
		return
	}

	logger.Info("Login succeeded", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Role:        string(user.Role),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}
