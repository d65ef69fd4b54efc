package handlers

import (
	"net/http"
	"strconv"

	"github.com/JosuePG/pokemon-trader/internal/httputil"
	"github.com/JosuePG/pokemon-trader/internal/ranking"
	"go.uber.org/zap"
)

type LeaderboardResponse struct {
	Leaderboard []ranking.Entry `json:"leaderboard"`
}

func (h *Handler) RankingHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.rankings.Top(r.Context(), limit)
	if err != nil {
		h.log.Error("failed to fetch rankings", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to load rankings")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: entries})
}
