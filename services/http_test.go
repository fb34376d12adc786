package services_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"nft-card-system/handlers"
	"nft-card-system/services"
	"nft-card-system/storage"
)

// newTestApp wires every route against an empty store with a fixed synergy
// scorer so deck stats are deterministic.
func newTestApp(t *testing.T) (*fiber.App, *storage.Store) {
	t.Helper()
	store := storage.New()
	app := fiber.New()

	handlers.SetupUserRoutes(app, services.NewUserService(store))
	handlers.SetupCardRoutes(app, services.NewCardService(store))
	handlers.SetupDeckRoutes(app, services.NewDeckService(store, services.FixedSynergy{Value: decimal.RequireFromString("72.5")}))
	handlers.SetupEventRoutes(app, services.NewEventService(store))
	handlers.SetupTransactionRoutes(app, services.NewTransactionService(store))
	handlers.SetupLeaderboardRoutes(app, services.NewLeaderboardService(store))

	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
