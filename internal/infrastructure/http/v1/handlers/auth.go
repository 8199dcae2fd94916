package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ricemill/internal/domain/auth"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves login, logout and identity endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.LoginResponse{AccessToken: pair.AccessToken, ExpiresAt: pair.ExpiresAt})
}

// Logout handles POST /auth/logout and revokes the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token != "" {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			h.Error(c, err)
			return
		}
	}
	h.Success(c, "logged out")
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	h.OK(c, dto.MeResponse{Username: h.Username(c)})
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
