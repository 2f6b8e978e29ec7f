package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"goat-dashboard/internal/domain"
	"goat-dashboard/internal/service"
	"goat-dashboard/internal/storage"
	"goat-dashboard/internal/token"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth      service.AuthService
	sessions  service.SessionService
	avatars   storage.Service
	avatarTTL time.Duration
	logger    *logrus.Logger
}

func NewHandler(auth service.AuthService, sessions service.SessionService, avatars storage.Service, avatarTTL time.Duration, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	if avatarTTL <= 0 {
		avatarTTL = 15 * time.Minute
	}
	return &Handler{
		auth:      auth,
		sessions:  sessions,
		avatars:   avatars,
		avatarTTL: avatarTTL,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	auth := router.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/verify", h.verify)
	}

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		protected := api.Group("", h.authMiddleware())
		protected.GET("/me", h.me)
		protected.GET("/portal/general", h.portal("general"))
		protected.GET("/portal/employee", h.requireRole(domain.RoleEmployee), h.portal("employee"))
		protected.GET("/portal/executive", h.requireRole(domain.RoleExecutive), h.portal("executive"))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	result, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.WithField("path", c.FullPath()).Warnf("authenticate: %v", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    h.userToResponse(c, result.User),
	})
}

func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	user, err := h.sessions.Resolve(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.logger.WithField("path", c.FullPath()).Warnf("resolve session: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    h.userToResponse(c, user),
	})
}

const userKey = "user"

// authMiddleware re-verifies the bearer token on every privileged call. The
// client-side guard is only an optimistic gate; this is the boundary.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := h.sessions.Resolve(c.Request.Context(), raw)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func (h *Handler) requireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	value, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    h.userToResponse(c, currentUser(c)),
	})
}

func (h *Handler) portal(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"portal":  name,
			"user":    h.userToResponse(c, currentUser(c)),
		})
	}
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture"`
	JoinDate       string `json:"join_date"`
	Department     string `json:"department"`
	Designation    string `json:"designation"`
}

func (h *Handler) userToResponse(c *gin.Context, user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}

	picture := user.ProfilePicture
	if h.avatars != nil && picture != "" {
		resolved, err := h.avatars.ResolveAvatarURL(c.Request.Context(), picture, h.avatarTTL)
		if err != nil {
			h.logger.Warnf("resolve avatar url: %v", err)
		} else {
			picture = resolved
		}
	}

	return &UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           string(user.Role),
		ProfilePicture: picture,
		JoinDate:       user.JoinDate,
		Department:     user.Department,
		Designation:    user.Designation,
	}
}
