package auth

import "github.com/gin-gonic/gin"

const (
	ctxAdminID    = "adminID"
	ctxAdminEmail = "adminEmail"
	ctxIsAdmin    = "isAdmin"
)

// GetAdminID returns the authenticated admin's ID or empty string.
func GetAdminID(c *gin.Context) string {
	return c.GetString(ctxAdminID)
}

// GetAdminEmail returns the authenticated admin's email or empty string.
func GetAdminEmail(c *gin.Context) string {
	return c.GetString(ctxAdminEmail)
}

// MarkAdmin records that the request carries a verified, active admin account.
func MarkAdmin(c *gin.Context) {
	c.Set(ctxIsAdmin, true)
}

// IsAdmin reports whether MarkAdmin ran for this request.
// A valid token alone is not enough; the account must also have been checked.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxIsAdmin)
}
