package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nft-card-system/models"
)

// GetTransaction looks up a transaction by id.
func (s *Store) GetTransaction(id string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.get(id)
}

// ListTransactionsByUser returns the user's transactions newest first.
func (s *Store) ListTransactionsByUser(userID string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Transaction{}
	for _, id := range s.transactions.order {
		tx := s.transactions.items[id]
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CreateTransaction appends a ledger entry. Entries are never mutated or
// deleted afterwards.
func (s *Store) CreateTransaction(in models.CreateTransaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	amount := decimal.Zero
	if a, err := decimal.NewFromString(in.Amount); err == nil {
		amount = a
	}
	tx := models.Transaction{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Type:        models.TransactionType(in.Type),
		Amount:      amount,
		Description: in.Description,
		NftID:       in.NftID,
		CreatedAt:   time.Now().UTC(),
	}
	s.transactions.insert(tx.ID, tx)
	return tx
}
