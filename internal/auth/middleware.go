package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/pkg/response"
)

var (
	errMissingToken  = errors.New("missing Authorization header")
	errMalformedAuth = errors.New("invalid Authorization header format")
)

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", errMalformedAuth
	}
	return token, nil
}

// AuthRequired rejects requests without a valid admin access token and
// stores the token's admin in the context. It does not check that the
// account still exists; api.RequireAdmin does that.
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}

		claims, err := jwtManager.ParseAndValidate(token)
		if err != nil {
			log.Ctx(c.Request.Context()).Debug().Err(err).Msg("Rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid or expired token"})
			return
		}

		c.Set(ctxAdminID, claims.Subject)
		c.Set(ctxAdminEmail, claims.Email)
		c.Next()
	}
}
