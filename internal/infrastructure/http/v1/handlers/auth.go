package handlers

import (
	"github.com/gin-gonic/gin"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/domain/auth"
	"traso/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	BaseHandler
	service *auth.Service
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterPublicRoutes registers routes that need no token.
func (h *AuthHandler) RegisterPublicRoutes(g *gin.RouterGroup) {
	g.POST("/login", h.Login)
}

// RegisterProtectedRoutes registers routes behind the auth middleware.
func (h *AuthHandler) RegisterProtectedRoutes(g *gin.RouterGroup) {
	g.GET("/me", h.Me)
	g.POST("/register", h.Register)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Credentials())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewLoginResponse(token, user))
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	rawID := c.GetString("user_id")
	userID, err := id.Parse(rawID)
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("invalid session"))
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}

// Register handles POST /auth/register. Only an authenticated operator can
// create further accounts.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.DisplayName)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromUser(user))
}
