package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/admin"
	"github.com/bisfor/hotel-booking-backend/internal/api"
	"github.com/bisfor/hotel-booking-backend/internal/auth"
	"github.com/bisfor/hotel-booking-backend/internal/booking"
	"github.com/bisfor/hotel-booking-backend/internal/config"
	"github.com/bisfor/hotel-booking-backend/internal/dashboard"
	"github.com/bisfor/hotel-booking-backend/internal/email"
	"github.com/bisfor/hotel-booking-backend/internal/facility"
	"github.com/bisfor/hotel-booking-backend/internal/file"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/storage"
	"github.com/bisfor/hotel-booking-backend/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	DBPool         *pgxpool.Pool
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	StoragePath    string
	MaxUploadBytes int64
	HotelName      string
	Location       *time.Location
	SES            config.SESConfig
}

// FromAppConfig maps the loaded environment onto container settings.
func FromAppConfig(cfg *config.Config, pool *pgxpool.Pool) Config {
	return Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		DBPool:         pool,
		JWTSecret:      cfg.JWTSecret,
		JWTTTL:         cfg.JWTAccessTokenTTL,
		BcryptCost:     cfg.BcryptCost,
		StoragePath:    cfg.StoragePath,
		MaxUploadBytes: cfg.MaxUploadBytes,
		HotelName:      cfg.HotelName,
		Location:       cfg.HotelLocation,
		SES:            cfg.SES,
	}
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router          *gin.Engine
	JWTManager      *auth.JWTManager
	AdminService    admin.Service
	RoomService     room.Service
	BookingService  booking.Service
	FacilityService facility.Service
	Notifier        *email.Notifier
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	var sender email.Sender = email.LogSender{}
	if cfg.SES.Enabled() {
		ses, err := email.NewSESClient(ctx, cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, cfg.SES.Region, cfg.SES.Sender)
		if err != nil {
			return nil, fmt.Errorf("failed to init SES client: %w", err)
		}
		sender = ses
	} else {
		log.Ctx(ctx).Warn().Msg("SES is not configured, emails will only be logged")
	}
	notifier := email.NewNotifier(sender, cfg.HotelName)

	// Admin Module
	adminRepo := admin.NewPgxRepository(cfg.DBPool)
	adminService := admin.NewService(adminRepo, passwordHasher)

	// File Module
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, fileService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, notifier)

	// Facility Module
	facilityRepo := facility.NewPgxRepository(cfg.DBPool)
	facilityService := facility.NewService(facilityRepo)

	// Dashboard Module
	dashboardService := dashboard.NewService(bookingService, roomService, cfg.Location)

	router := api.NewRouter(api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		MaxUploadBytes:   cfg.MaxUploadBytes,
		Location:         cfg.Location,
		AdminService:     adminService,
		RoomService:      roomService,
		BookingService:   bookingService,
		FacilityService:  facilityService,
		FileService:      fileService,
		DashboardService: dashboardService,
		JWTManager:       jwtManager,
	})

	return &Container{
		Router:          router,
		JWTManager:      jwtManager,
		AdminService:    adminService,
		RoomService:     roomService,
		BookingService:  bookingService,
		FacilityService: facilityService,
		Notifier:        notifier,
	}, nil
}
