package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bisfor/hotel-booking-backend/internal/config"
	"github.com/bisfor/hotel-booking-backend/internal/db"
	"github.com/bisfor/hotel-booking-backend/internal/facility"
	"github.com/bisfor/hotel-booking-backend/internal/room"
	"github.com/bisfor/hotel-booking-backend/internal/seed"
)

func main() {
	path := flag.String("file", "seed.yaml", "path to the seed file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	in, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("Failed to open seed file")
	}
	defer in.Close()

	data, err := seed.Parse(in)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid seed file")
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to db")
	}
	defer pool.Close()

	if err := db.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate db")
	}

	roomRepo := room.NewPgxRepository(pool)
	facilityRepo := facility.NewPgxRepository(pool)
	applier := &seed.Applier{
		RoomFinder:      roomRepo,
		RoomService:     room.NewService(roomRepo, nil),
		FacilityFinder:  facilityRepo,
		FacilityService: facility.NewService(facilityRepo),
	}

	res, err := applier.Apply(ctx, data)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	log.Info().Int("rooms", res.Rooms).Int("facilities", res.Facilities).Msg("Seeding complete")
}
