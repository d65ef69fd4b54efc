package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JosuePG/pokemon-trader/internal/httputil"
	"github.com/JosuePG/pokemon-trader/internal/middleware"
	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/JosuePG/pokemon-trader/internal/trade"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CreateTradeRequest struct {
	ResponderID      uint             `json:"responderId"`
	RequesterPokemon []models.Pokemon `json:"requesterPokemon"`
	ResponderPokemon []models.Pokemon `json:"responderPokemon"`
}

func (h *Handler) CreateTradeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.trades.Create(r.Context(), userID, req.ResponderID, req.RequesterPokemon, req.ResponderPokemon)
	if err != nil {
		if errors.Is(err, trade.ErrInvalidTrade) {
			httputil.WriteError(w, http.StatusBadRequest, "trade is not valid based on game rules")
			return
		}
		h.log.Error("failed to create trade", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to create trade request")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) ListTradesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	trades, err := h.trades.ListForUser(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to fetch trades", zap.Uint("user_id", userID), zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to fetch trades")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, trades)
}

func (h *Handler) AcceptTradeHandler(w http.ResponseWriter, r *http.Request) {
	userID, tradeID, ok := h.tradeCall(w, r)
	if !ok {
		return
	}

	if err := h.trades.Accept(r.Context(), userID, tradeID); err != nil {
		h.writeTradeError(w, err, "failed to accept trade")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "trade accepted and pokemon ownership transferred",
	})
}

func (h *Handler) RejectTradeHandler(w http.ResponseWriter, r *http.Request) {
	userID, tradeID, ok := h.tradeCall(w, r)
	if !ok {
		return
	}

	if err := h.trades.Reject(r.Context(), userID, tradeID); err != nil {
		h.writeTradeError(w, err, "failed to reject trade")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "trade rejected"})
}

func (h *Handler) tradeCall(w http.ResponseWriter, r *http.Request) (userID, tradeID uint, ok bool) {
	userID, ok = middleware.UserID(r.Context())
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return 0, 0, false
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid trade id")
		return 0, 0, false
	}
	return userID, uint(id), true
}

func (h *Handler) writeTradeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, trade.ErrTradeNotFound):
		httputil.WriteError(w, http.StatusNotFound, "trade not found")
	case errors.Is(err, trade.ErrForbidden):
		httputil.WriteError(w, http.StatusForbidden, "not authorized for this trade")
	case errors.Is(err, trade.ErrAlreadyProcessed):
		httputil.WriteError(w, http.StatusBadRequest, "trade already processed")
	case errors.Is(err, trade.ErrInvalidParticipants):
		httputil.WriteError(w, http.StatusBadRequest, "invalid trade participants")
	default:
		h.log.Error(fallback, zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, fallback)
	}
}
