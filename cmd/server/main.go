package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/skyward/flight-seat-booking/internal/config"
	"github.com/skyward/flight-seat-booking/internal/database"
	"github.com/skyward/flight-seat-booking/internal/handler"
	"github.com/skyward/flight-seat-booking/internal/middleware"
	"github.com/skyward/flight-seat-booking/internal/queue"
	"github.com/skyward/flight-seat-booking/internal/repository"
	"github.com/skyward/flight-seat-booking/internal/router"
	queue_publisher "github.com/skyward/flight-seat-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environment wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	reservations := repository.NewReservationRepo(db)
	admins := repository.NewAdminRepo(db)
	sessions := repository.NewSessionRepo(db)

	// Admins are provisioned out-of-band; the env pair seeds one for
	// development and first deployment.
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := admins.Upsert(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatalf("seed admin: %v", err)
		}
		cancel()
		log.Printf("seeded admin %q", cfg.AdminUsername)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and menu caching disabled")
	}

	booking := handler.NewBookingHandler(reservations, queue_publisher.Publisher{})
	admin := handler.NewAdminHandler(cfg, admins, sessions, reservations)

	e := echo.New()
	e.Validator = handler.NewValidator()
	router.Register(e, router.Deps{
		Booking:       booking,
		Admin:         admin,
		SessionSecret: cfg.SessionSecret,
		Sessions:      sessions,
		RateLimit:     middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		MenuCache:     middleware.ResponseCache(config.LoadCacheConfig(), rdb),
	})

	if cfg.QueueEnabled {
		go queue.StartReservationConsumer()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
