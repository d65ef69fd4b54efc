package handlers

import (
	"github.com/JosuePG/pokemon-trader/internal/cache"
	"github.com/JosuePG/pokemon-trader/internal/pokeapi"
	"github.com/JosuePG/pokemon-trader/internal/ranking"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"github.com/JosuePG/pokemon-trader/internal/trade"
	"go.uber.org/zap"
)

// Handler bundles the dependencies the HTTP endpoints need. Everything is
// injected at startup; no ambient globals beyond the process logger.
type Handler struct {
	users     store.UserRepository
	starters  *pokeapi.StarterService
	trades    *trade.Service
	inventory *cache.InventoryCache
	rankings  *ranking.Service
	log       *zap.Logger
}

func New(users store.UserRepository, starters *pokeapi.StarterService, trades *trade.Service, inventory *cache.InventoryCache, rankings *ranking.Service, log *zap.Logger) *Handler {
	return &Handler{
		users:     users,
		starters:  starters,
		trades:    trades,
		inventory: inventory,
		rankings:  rankings,
		log:       log,
	}
}
