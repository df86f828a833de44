package main // Entry point package

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skalette/reservations/internal/booking"
	"github.com/skalette/reservations/internal/config"
	"github.com/skalette/reservations/internal/database"
	"github.com/skalette/reservations/internal/handler"
	"github.com/skalette/reservations/internal/middleware"
	"github.com/skalette/reservations/internal/queue"
	"github.com/skalette/reservations/internal/repository"
	"github.com/skalette/reservations/internal/router"
	"github.com/skalette/reservations/internal/service"
)

func main() {
	// Load a local .env when present; real deployments set the
	// environment directly and no file is needed.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := config.Load() // Load environment config

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", string(cfg.Backend)).Msg("open store")
	}
	defer store.Close()

	// Redis backs the rate limiter and the response cache. A nil client
	// disables both middlewares without affecting the rest of the app.
	rdb := config.NewRedisClient()
	rateCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()

	ledger := booking.NewLedger(store, log.With().Str("component", "ledger").Logger())
	avail := booking.NewAvailability(store, log.With().Str("component", "availability").Logger())
	publisher := service.NewPublisher(log.With().Str("component", "publisher").Logger())

	authH := handler.NewAuthHandler(cfg)
	resH := handler.NewReservationHandler(ledger, publisher, log.With().Str("component", "reservations").Logger())
	availH := handler.NewAvailabilityHandler(avail, log.With().Str("component", "availability").Logger())

	// The consumer mirrors confirmed bookings into a plain-text log for
	// the kitchen printer. It reconnects on its own, so a failed start
	// only means the broker is unreachable right now.
	go func() {
		if err := queue.StartConfirmedConsumer(log.With().Str("component", "consumer").Logger()); err != nil {
			log.Warn().Err(err).Msg("confirmed-reservation consumer stopped")
		}
	}()

	e := echo.New() // Create Echo instance
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterPublic(e, authH, resH, availH,
		middleware.NewRedisCache(cacheCfg, rdb),
		middleware.NewTokenBucket(rateCfg, rdb),
	)
	router.RegisterAdmin(e, resH, availH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Str("backend", string(cfg.Backend)).Msg("listening")

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// openStore builds the persistence adapter selected by STORAGE_BACKEND.
// All three satisfy the same repository.Store contract.
func openStore(cfg config.Config) (repository.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLStore(db, repository.DialectSQLite)
	case config.BackendMySQL:
		db, err := database.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLStore(db, repository.DialectMySQL)
	default:
		return repository.NewFileStore(cfg.DataDir)
	}
}
