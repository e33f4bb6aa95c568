package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := r.Group("/admin/dashboard")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("/stats", h.Stats)
		group.GET("/rollups", h.Rollups)
	}
}
