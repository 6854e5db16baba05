package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tidespring/breeze/internal/domain/errors"
	"github.com/tidespring/breeze/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, dto.CodeInvalidRequest, "malformed request body")
		return
	}

	userID, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			writeError(c, http.StatusBadRequest, dto.CodeInvalidRequest, "name, email and password are required")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			writeError(c, http.StatusBadRequest, dto.CodeDuplicateEmail, "email is already registered")
		default:
			writeError(c, http.StatusInternalServerError, dto.CodeInternal, "internal error")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, UserID: userID})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, dto.CodeInvalidRequest, "malformed request body")
		return
	}

	userID, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			writeError(c, http.StatusUnauthorized, dto.CodeInvalidCredentials, "email or password is incorrect")
		default:
			writeError(c, http.StatusInternalServerError, dto.CodeInternal, "internal error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, UserID: userID})
}
