package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bisfor/hotel-booking-backend/internal/admin"
	adminHttp "github.com/bisfor/hotel-booking-backend/internal/admin/http"
	"github.com/bisfor/hotel-booking-backend/internal/auth"
	"github.com/bisfor/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/bisfor/hotel-booking-backend/internal/booking/http"
	"github.com/bisfor/hotel-booking-backend/internal/dashboard"
	dashboardHttp "github.com/bisfor/hotel-booking-backend/internal/dashboard/http"
	"github.com/bisfor/hotel-booking-backend/internal/facility"
	facilityHttp "github.com/bisfor/hotel-booking-backend/internal/facility/http"
	"github.com/bisfor/hotel-booking-backend/internal/file"
	fileHttp "github.com/bisfor/hotel-booking-backend/internal/file/http"
	"github.com/bisfor/hotel-booking-backend/internal/room"
	roomHttp "github.com/bisfor/hotel-booking-backend/internal/room/http"
)

// Config holds the services and settings the router is assembled from.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	MaxUploadBytes int64
	Location       *time.Location

	AdminService     admin.Service
	RoomService      room.Service
	BookingService   booking.Service
	FacilityService  facility.Service
	FileService      file.Service
	DashboardService dashboard.Service
	JWTManager       *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request id, logging, recovery, CORS) and registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(), Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	// authMiddleware: validates the bearer token.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: checks the account behind the token is still active.
	adminMiddleware := RequireAdmin(cfg.AdminService)

	adminHandler := adminHttp.NewHandler(cfg.AdminService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService, cfg.FileService, cfg.MaxUploadBytes)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Location)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	fileHandler := fileHttp.NewHandler(cfg.FileService, cfg.MaxUploadBytes)
	dashboardHandler := dashboardHttp.NewHandler(cfg.DashboardService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		adminHttp.RegisterRoutes(v1, adminHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		facilityHttp.RegisterRoutes(v1, facilityHandler, authMiddleware, adminMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware, adminMiddleware)
		dashboardHttp.RegisterRoutes(v1, dashboardHandler, authMiddleware, adminMiddleware)
	}

	return r
}

func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	if cfg.IsProduction {
		config.AllowOrigins = splitOrigins(cfg.ProdOrigins)
		if len(config.AllowOrigins) == 0 {
			// No browser origin is trusted.
			config.AllowOriginFunc = func(string) bool { return false }
		}
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", requestIDHeader}
	config.ExposeHeaders = []string{requestIDHeader}
	return config
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
