package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/6631501193-blip/tracking-server/internal/domain/errors"
	"github.com/6631501193-blip/tracking-server/internal/server/http/dto"
	"github.com/6631501193-blip/tracking-server/internal/server/http/middleware"
)

// AuthHandler processes login, registration and profile lookups.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "name and password are required")
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			writeError(c, http.StatusUnauthorized, "invalid credentials")
		default:
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{UserID: user.ID, Name: user.Name})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "name and password are required")
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			writeError(c, http.StatusBadRequest, "name and password are required")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			writeError(c, http.StatusConflict, "user already exists")
		default:
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{UserID: user.ID, Name: user.Name})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.UserByID(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{UserID: user.ID, Name: user.Name})
}
