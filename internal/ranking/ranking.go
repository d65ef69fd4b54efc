// Package ranking projects the trade leaderboard out of user records.
package ranking

import (
	"context"

	"github.com/JosuePG/pokemon-trader/internal/store"
)

const (
	// DefaultLimit matches the original leaderboard size.
	DefaultLimit = 100
	maxLimit     = 100
)

type Entry struct {
	Username   string `json:"username"`
	TradeCount int    `json:"tradeCount"`
}

type Service struct {
	users store.UserRepository
}

func NewService(users store.UserRepository) *Service {
	return &Service{users: users}
}

// Top returns the highest-ranked users by completed trades, ties broken by
// id so the order is stable. A non-positive or oversized limit falls back to
// the default.
func (s *Service) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > maxLimit {
		limit = DefaultLimit
	}

	users, err := s.users.TopByTradeCount(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{Username: u.Username, TradeCount: u.TradeCount})
	}
	return entries, nil
}
