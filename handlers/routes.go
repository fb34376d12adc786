package handlers

import (
	"github.com/gofiber/fiber/v2"

	"nft-card-system/services"
	"nft-card-system/utils"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	app.Get("/users/:id", userService.GetUser)
	app.Post("/users", userService.CreateUser)
	app.Post("/wallet/connect", userService.ConnectWallet)
}

func SetupCardRoutes(app *fiber.App, cardService *services.CardService) {
	app.Get("/nfts", cardService.GetCards)
	app.Get("/nfts/:id", cardService.GetCard)
	app.Post("/nfts", cardService.CreateCard)

	// Artwork uploads only exist when the bucket is configured.
	if utils.ArtworkStoreEnabled() {
		app.Post("/nfts/:id/artwork", cardService.UploadArtwork)
	}
}

func SetupDeckRoutes(app *fiber.App, deckService *services.DeckService) {
	app.Get("/decks", deckService.GetDecks)
	app.Post("/decks", deckService.CreateDeck)
	app.Put("/decks/:id", deckService.UpdateDeck)
	app.Delete("/decks/:id", deckService.DeleteDeck)
}

func SetupEventRoutes(app *fiber.App, eventService *services.EventService) {
	app.Get("/events", eventService.GetEvents)
	app.Post("/events", eventService.CreateEvent)
	app.Post("/events/:id/join", eventService.JoinEvent)
}

func SetupTransactionRoutes(app *fiber.App, transactionService *services.TransactionService) {
	app.Get("/transactions", transactionService.GetTransactions)
	app.Post("/transactions", transactionService.CreateTransaction)
}

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService) {
	app.Get("/leaderboard", leaderboardService.GetLeaderboard)
	app.Get("/analytics/:userId", leaderboardService.GetAnalytics)
}
