package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := r.Group("/rooms")

	// Public
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// Admin
	adminGroup := group.Group("")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.POST("", h.Create)
		adminGroup.PUT("/:id", h.UpdatePrice)
		adminGroup.DELETE("/:id", h.Delete)
	}
}
