package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers login and admin account routes.
func RegisterRoutes(r gin.IRouter, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	r.POST("/auth/login", h.Login)

	r.GET("/me", authMiddleware, adminMiddleware, h.Me)

	admins := r.Group("/admins")
	admins.Use(authMiddleware, adminMiddleware)
	{
		admins.POST("", h.Create)
	}
}
