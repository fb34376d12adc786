package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionPurchase    TransactionType = "Purchase"
	TransactionSale        TransactionType = "Sale"
	TransactionEnhancement TransactionType = "Enhancement"
	TransactionReward      TransactionType = "Reward"
)

// Transaction is an append-only wallet ledger entry. Never mutated or
// deleted once created.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	NftID       *string         `json:"nftId"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateTransaction is the POST /transactions payload.
type CreateTransaction struct {
	UserID      string  `json:"userId" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=Purchase Sale Enhancement Reward"`
	Amount      string  `json:"amount" validate:"required"`
	Description string  `json:"description"`
	NftID       *string `json:"nftId"`
}
