package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"nft-card-system/handlers"
	"nft-card-system/middleware"
	"nft-card-system/services"
	"nft-card-system/storage"
	"nft-card-system/utils"
	"nft-card-system/workers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, reading environment variables directly")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024, // 32MB, enough for artwork uploads
	})

	app.Use(middleware.RequestLogger())

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		log.Info("ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	origins := strings.Split(allowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// All state lives in this one store and vanishes on restart.
	store := storage.New()
	store.Seed()

	artworkEnabled, err := utils.InitArtworkStore()
	if err != nil {
		log.Fatal("failed to initialize artwork store: ", err)
	}
	if !artworkEnabled {
		log.Info("artwork store not configured, artwork uploads disabled")
	}

	userService := services.NewUserService(store)
	userService.ConnectDelay = 300 * time.Millisecond
	cardService := services.NewCardService(store)
	deckService := services.NewDeckService(store, services.NewRandomSynergy())
	eventService := services.NewEventService(store)
	transactionService := services.NewTransactionService(store)
	leaderboardService := services.NewLeaderboardService(store)

	handlers.SetupUserRoutes(app, userService)
	handlers.SetupCardRoutes(app, cardService)
	handlers.SetupDeckRoutes(app, deckService)
	handlers.SetupEventRoutes(app, eventService)
	handlers.SetupTransactionRoutes(app, transactionService)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched, err := eventService.StartEventScheduler()
	if err != nil {
		log.Fatal("failed to start event scheduler: ", err)
	}
	defer func() { _ = sched.Shutdown() }()

	go workers.PollRanks(ctx, store, 1*time.Minute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Error("server error: ", err)
		}
	}()

	log.Infof("server running on http://localhost:%s", port)

	<-ctx.Done()
	log.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error("shutdown error: ", err)
	}
}
