package handler

import (
	"net/http"
	"strings"

	"dropz-server/internal/apierrors"
	"dropz-server/internal/auth/processor"
	"dropz-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Wallet   *string `json:"wallet,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// HandleRegister creates an email account
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	registered, err := h.authProcessor.Register(c.Request.Context(), req.Email, req.Password, req.Wallet)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registered)
}

// HandleLogin verifies credentials and returns a session token
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	token, err := h.authProcessor.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// HandleGetMe returns the account behind the current session
func (h *Handler) HandleGetMe(c *gin.Context) {
	userIDStr := c.GetString("user_id")
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid session"))
		return
	}

	user, err := h.authProcessor.GetUser(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// AuthMiddleware validates the Bearer token and stores the subject in the
// gin context under "user_id".
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Missing bearer token"))
			c.Abort()
			return
		}

		claims, err := h.authProcessor.ValidateJWTToken(c.Request.Context(), token)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Next()
	}
}
