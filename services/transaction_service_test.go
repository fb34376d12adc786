package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nft-card-system/models"
)

func TestGetTransactions_RequiresUser(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/transactions", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTransaction(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/transactions", map[string]any{
		"userId":      "u1",
		"type":        "Purchase",
		"amount":      "12.5",
		"description": "Bought Moonlit Fortress",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tx models.Transaction
	decodeJSON(t, resp, &tx)
	assert.Equal(t, models.TransactionPurchase, tx.Type)
	assert.Equal(t, "12.5", tx.Amount.String())

	resp = doJSON(t, app, http.MethodGet, "/transactions?userId=u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var txs []models.Transaction
	decodeJSON(t, resp, &txs)
	assert.Len(t, txs, 1)
}

func TestCreateTransaction_BadAmount(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/transactions", map[string]any{
		"userId": "u1",
		"type":   "Purchase",
		"amount": "not-a-number",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTransaction_BadType(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/transactions", map[string]any{
		"userId": "u1",
		"type":   "Gift",
		"amount": "1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
