// Package trade owns the trade lifecycle: offer validation, the
// pending->accepted/rejected state machine and the inventory settlement.
package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"go.uber.org/zap"
)

// Notifier delivers a best-effort message to a user. Implementations never
// fail the caller.
type Notifier interface {
	Notify(ctx context.Context, userID uint, message, email string)
}

// InventoryInvalidator drops a user's cached roster after settlement.
type InventoryInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}

// EventPublisher announces a newly created trade to the background worker.
type EventPublisher interface {
	TradeCreated(ctx context.Context, tradeID uint) error
}

type Service struct {
	users    store.UserRepository
	trades   store.TradeRepository
	notifier Notifier
	cache    InventoryInvalidator
	events   EventPublisher
	log      *zap.Logger
}

func NewService(users store.UserRepository, trades store.TradeRepository, notifier Notifier, cache InventoryInvalidator, events EventPublisher, log *zap.Logger) *Service {
	return &Service{
		users:    users,
		trades:   trades,
		notifier: notifier,
		cache:    cache,
		events:   events,
		log:      log,
	}
}

// Create validates the offer pair and persists a pending trade. The created
// event is published best-effort: the worker is an extension point, not a
// correctness dependency of trade creation.
func (s *Service) Create(ctx context.Context, callerID, responderID uint, requesterOffer, responderOffer []models.Pokemon) (*models.Trade, error) {
	if !Validate(requesterOffer, responderOffer) {
		return nil, ErrInvalidTrade
	}

	t := &models.Trade{
		RequesterID:      callerID,
		ResponderID:      responderID,
		RequesterPokemon: requesterOffer,
		ResponderPokemon: responderOffer,
		Status:           models.TradeStatusPending,
	}
	if err := s.trades.Create(ctx, t); err != nil {
		return nil, err
	}

	if err := s.events.TradeCreated(ctx, t.ID); err != nil {
		s.log.Error("failed to publish trade created event",
			zap.Uint("trade_id", t.ID), zap.Error(err))
	}
	return t, nil
}

// ListForUser returns the trades the user participates in, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]models.Trade, error) {
	return s.trades.ListForUser(ctx, userID)
}

// Accept settles a pending trade: the offered sets captured at creation time
// swap owners, both trade counters advance and the status flips to accepted,
// all in one conditional transaction. The swap is applied to the user rows
// the repository locks inside that transaction, never to copies read before
// it, so settlements sharing a participant compose instead of overwriting
// each other. Cache invalidation and notifications run after the commit and
// cannot fail it.
func (s *Service) Accept(ctx context.Context, callerID, tradeID uint) error {
	t, err := s.loadPending(ctx, callerID, tradeID)
	if err != nil {
		return err
	}

	var requester, responder *models.User
	err = s.trades.Settle(ctx, t, func(req, resp *models.User) error {
		req.Pokemon = swapOffer(req.Pokemon, t.RequesterPokemon, t.ResponderPokemon)
		resp.Pokemon = swapOffer(resp.Pokemon, t.ResponderPokemon, t.RequesterPokemon)
		req.TradeCount++
		req.SuccessfulTrades++
		resp.TradeCount++
		resp.SuccessfulTrades++
		requester, responder = req, resp
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			return ErrAlreadyProcessed
		case errors.Is(err, store.ErrNotFound):
			return ErrInvalidParticipants
		}
		return err
	}

	for _, id := range []uint{requester.ID, responder.ID} {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.log.Error("failed to invalidate inventory cache",
				zap.Uint("user_id", id), zap.Error(err))
		}
	}

	s.notifier.Notify(ctx, requester.ID,
		fmt.Sprintf("Your trade with %s was accepted.", responder.Email), requester.Email)
	s.notifier.Notify(ctx, responder.ID,
		fmt.Sprintf("You accepted a trade with %s.", requester.Email), responder.Email)
	return nil
}

// Reject flips a pending trade to rejected. No inventory changes.
func (s *Service) Reject(ctx context.Context, callerID, tradeID uint) error {
	t, err := s.loadPending(ctx, callerID, tradeID)
	if err != nil {
		return err
	}

	if err := s.trades.MarkRejected(ctx, t); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrAlreadyProcessed
		}
		return err
	}

	requester, reqErr := s.users.FindByID(ctx, t.RequesterID)
	responder, respErr := s.users.FindByID(ctx, t.ResponderID)
	if reqErr != nil || respErr != nil {
		s.log.Warn("skipping reject notifications, participant lookup failed",
			zap.Uint("trade_id", t.ID))
		return nil
	}
	s.notifier.Notify(ctx, requester.ID,
		fmt.Sprintf("Your trade with %s was rejected.", responder.Email), requester.Email)
	s.notifier.Notify(ctx, responder.ID,
		fmt.Sprintf("You rejected a trade from %s.", requester.Email), responder.Email)
	return nil
}

// loadPending performs the shared lookup, authorization and terminal-state
// checks. All of them run before any mutation.
func (s *Service) loadPending(ctx context.Context, callerID, tradeID uint) (*models.Trade, error) {
	t, err := s.trades.FindByID(ctx, tradeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTradeNotFound
		}
		return nil, err
	}
	if t.ResponderID != callerID {
		return nil, ErrForbidden
	}
	if t.Status != models.TradeStatusPending {
		return nil, ErrAlreadyProcessed
	}
	return t, nil
}

// swapOffer removes the given species from an inventory and appends the
// received ones, re-tagged from the sets recorded on the trade. Ownership is
// not re-verified against the current inventory; the trade settles the sets
// captured at creation time.
func swapOffer(owned, give, receive models.PokemonList) models.PokemonList {
	giveIDs := make(map[int]struct{}, len(give))
	for _, p := range give {
		giveIDs[p.PokeID] = struct{}{}
	}

	next := make(models.PokemonList, 0, len(owned)+len(receive))
	for _, p := range owned {
		if _, gone := giveIDs[p.PokeID]; !gone {
			next = append(next, p)
		}
	}
	for _, p := range receive {
		next = append(next, models.Pokemon{
			PokeID: p.PokeID,
			Name:   p.Name,
			Level:  p.Level,
			Sprite: p.Sprite,
		})
	}
	return next
}
