package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nft-card-system/models"
)

// GetUser looks up a user by id.
func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id)
}

// GetUserByUsername scans for a user with an exact username match.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.users.order {
		if u := s.users.items[id]; u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser inserts a new user with zeroed balance and scores.
func (s *Store) CreateUser(in models.CreateUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := models.User{
		ID:            uuid.NewString(),
		Username:      in.Username,
		WalletAddress: in.WalletAddress,
		TonBalance:    decimal.Zero,
		PowerScore:    0,
		WinRate:       decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}
	s.users.insert(user.ID, user)
	return user
}

// UpdateUser shallow-merges the non-nil fields onto the stored user. The
// second return is false when the id does not exist.
func (s *Store) UpdateUser(id string, in models.UserUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users.get(id)
	if !ok {
		return models.User{}, false
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.WalletAddress != nil {
		user.WalletAddress = in.WalletAddress
	}
	if in.TonBalance != nil {
		user.TonBalance = *in.TonBalance
	}
	if in.PowerScore != nil {
		user.PowerScore = *in.PowerScore
	}
	if in.WinRate != nil {
		user.WinRate = *in.WinRate
	}
	s.users.replace(id, user)
	return user, true
}
