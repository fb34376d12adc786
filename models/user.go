package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a collector account. Wallet linkage is optional — accounts can be
// created directly or minted on first wallet connect.
type User struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	WalletAddress *string         `json:"walletAddress"`
	TonBalance    decimal.Decimal `json:"tonBalance"`
	PowerScore    int             `json:"powerScore"`
	WinRate       decimal.Decimal `json:"winRate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateUser is the POST /users payload.
type CreateUser struct {
	Username      string  `json:"username" validate:"required"`
	WalletAddress *string `json:"walletAddress"`
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username      *string          `json:"username"`
	WalletAddress *string          `json:"walletAddress"`
	TonBalance    *decimal.Decimal `json:"tonBalance"`
	PowerScore    *int             `json:"powerScore"`
	WinRate       *decimal.Decimal `json:"winRate"`
}

// WalletConnectRequest is the POST /wallet/connect payload. Username is
// optional; when absent one is derived from the wallet address suffix.
type WalletConnectRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
	Username      string `json:"username"`
}
