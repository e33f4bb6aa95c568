package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	public := r.Group("/bookings")
	{
		public.POST("/quote", h.Quote)
		public.POST("", h.Create)
		public.GET("/:id", h.Get)
		public.GET("/:id/qr", h.PaymentQR)
		public.POST("/:id/confirm-payment", h.ConfirmPayment)
	}

	// === Admin Routes ===
	admin := r.Group("/admin/bookings")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.List)
		admin.DELETE("/:id", h.Delete)
	}
}
