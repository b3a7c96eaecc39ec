package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledger/internal/errors"
	"ledger/internal/metrics"
	"ledger/internal/services"
)

// TokenIssuer issues session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService  services.UserServicer
	tokens       TokenIssuer
	auditService services.AuditServicer
	metrics      *metrics.Registry
}

// NewAuthHandler creates a new AuthHandler. m may be nil.
func NewAuthHandler(userService services.UserServicer, tokens TokenIssuer, auditService services.AuditServicer, m *metrics.Registry) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens, auditService: auditService, metrics: m}
}

// CredentialsRequest represents the register and login payload.
// bcrypt ignores input past 72 bytes, so longer passwords are refused.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" example:"alice@example.com"`
	Password string `json:"password" binding:"required,max=72" example:"correct-horse"`
}

// UserResponse represents the public part of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Create an account. The response never contains password material.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body CredentialsRequest true "User credentials"
// @Success     200 {object} UserResponse "User registered"
// @Failure     400 {object} ErrorResponse "Invalid input or email already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, "REGISTER", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, UserResponse{ID: user.ID, Email: user.Email})
}

// Login handles user login
// @Summary     Login user
// @Description Verify credentials and issue a bearer token. Unknown email and wrong password return the same error.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body CredentialsRequest true "User credentials"
// @Success     200 {object} LoginResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input or credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.Verify(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrInvalidCredentials) {
			h.metrics.ObserveLogin(false)
			err = apperrors.ErrInvalidCredentials
		}
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.metrics.ObserveLogin(true)
	h.auditService.Log(user.ID, "LOGIN", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, LoginResponse{Token: token, Email: user.Email})
}
