package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/admin"
	"github.com/bisfor/hotel-booking-backend/internal/auth"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service    admin.Service
	jwtManager *auth.JWTManager
}

func NewHandler(service admin.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
	}
}

// Login exchanges an admin's email and password for an access token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	ctx := c.Request.Context()

	a, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidCredentials), errors.Is(err, admin.ErrInactive):
			// Do not reveal which condition failed.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		default:
			response.Error(c, err)
		}
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	log.Ctx(ctx).Info().Str("admin_id", a.ID).Msg("Admin logged in")

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtManager.TTL().Seconds()),
		Admin:       NewAdminResponse(a),
	})
}

// Me returns the account behind the current token.
func (h *Handler) Me(c *gin.Context) {
	adminID := auth.GetAdminID(c)
	if _, err := uuid.Parse(adminID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{Admin: NewAdminResponse(a)})
}

// Create adds another admin account. Only admins reach this handler.
func (h *Handler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, MeResponse{Admin: NewAdminResponse(a)})
}
