package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/config"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/database"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/handler"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/queue"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/repository"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// nil client disables caching and rate limiting, nothing else.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	clubs := repository.NewClubRepo(db)
	courts := repository.NewCourtRepo(db)
	hours := repository.NewHourRepo(db)
	bookings := repository.NewBookingRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens, clubs), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(clubs, courts, hours, bookings), rdb)
	router.RegisterClubAdmin(e, handler.NewClubHandler(clubs, courts, hours, bookings), cfg.JWTSecret)
	router.RegisterSystemAdmin(e, handler.NewSystemHandler(cfg, clubs, courts, hours), cfg.JWTSecret)

	// Booking event consumer runs for the life of the process and
	// reconnects on its own; the server does not depend on it.
	go func() {
		if err := queue.StartBookingConsumer(cfg.AMQPURL); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
