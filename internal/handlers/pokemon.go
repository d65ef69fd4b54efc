package handlers

import (
	"errors"
	"net/http"

	"github.com/JosuePG/pokemon-trader/internal/httputil"
	"github.com/JosuePG/pokemon-trader/internal/middleware"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"go.uber.org/zap"
)

// MyPokemonHandler returns the caller's roster, read-through cached.
func (h *Handler) MyPokemonHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := middleware.UserID(ctx)
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if roster, hit, err := h.inventory.Get(ctx, userID); err != nil {
		h.log.Warn("inventory cache read failed", zap.Uint("user_id", userID), zap.Error(err))
	} else if hit {
		httputil.WriteJSON(w, http.StatusOK, roster)
		return
	}

	user, err := h.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.Error("failed to fetch user", zap.Uint("user_id", userID), zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to retrieve pokemon")
		return
	}

	if err := h.inventory.Set(ctx, userID, user.Pokemon); err != nil {
		h.log.Warn("inventory cache write failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	httputil.WriteJSON(w, http.StatusOK, user.Pokemon)
}
