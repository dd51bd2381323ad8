package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/logging"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/router"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // a missing .env is fine

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(cfg.ServiceName, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(database.Options{
		User:     cfg.DBUser,
		Password: cfg.DBPass,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Name:     cfg.DBName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if cfg.DBMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
	}

	rooms := repository.NewRoomRepo(db)
	guests := repository.NewGuestRepo(db)
	features := repository.NewFeatureRepo(db)
	pricing := repository.NewPricingRepo(db)
	reservations := repository.NewReservationRepo(db)
	links := repository.NewRoomLinkRepo(db)
	bills := repository.NewBillRepo(db)
	invoices := repository.NewInvoiceRepo(db)

	if err := database.SeedPricing(ctx, pricing, cfg.NightlyRateName, cfg.NightlyRateCents); err != nil {
		log.Fatal().Err(err).Msg("pricing seed failed")
	}

	publisher := queue.NewPublisher(cfg.AMQPURL, cfg.ReservationQueue, log.Logger)
	consumer := queue.NewConsumer(cfg.AMQPURL, cfg.ReservationQueue, cfg.ReservationLogPath, log.Logger)
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("reservation consumer stopped")
		}
	}()

	reservationSvc := service.NewReservationService(service.ReservationDeps{
		DB:           db,
		Rooms:        rooms,
		Guests:       guests,
		Features:     features,
		Pricing:      pricing,
		Reservations: reservations,
		Links:        links,
		Bills:        bills,
		Events:       publisher,
	}, cfg.NightlyRateName)
	reportSvc := service.NewReportService(reservationSvc, rooms)
	invoiceSvc := service.NewInvoiceService(invoices, reservationSvc, cfg.Issuer)

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		log.Warn().Msg("redis unavailable; caching and rate limiting disabled")
	} else {
		defer rdb.Close()
	}
	cacheCfg := config.LoadCacheConfig()
	mw := router.Middlewares{
		Cache:      middleware.NewRedisCache(cacheCfg, rdb),
		RateLimit:  middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		Invalidate: middleware.NewCacheInvalidator(cacheCfg, rdb),
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()
	e.Validator = handler.NewValidator()
	e.Use(middleware.RequestLogger(log.Logger))

	router.RegisterRoutes(e)
	router.RegisterReservations(e, handler.NewReservationHandler(reservationSvc), mw)
	router.RegisterReports(e, handler.NewReportHandler(reportSvc), mw)
	router.RegisterInvoices(e, handler.NewInvoiceHandler(invoiceSvc), mw)
	router.RegisterCatalog(e, handler.NewCatalogHandler(rooms, guests, features, pricing, links, bills), mw)

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
