package main

import (
	"context"
	"log"

	"github.com/anonto42/water-board/backend/internal/events"
	"github.com/anonto42/water-board/backend/internal/router"
	"github.com/anonto42/water-board/backend/pkg/config"
	"github.com/anonto42/water-board/backend/pkg/firebase"
	"github.com/anonto42/water-board/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Firebase login is optional
	verifier, err := firebase.NewTokenVerifier(context.Background(), cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.FanOutQueue)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	config.SetupMiddleware(e, cfg)
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo.Database(cfg.MongoDatabase), verifier, publisher)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
