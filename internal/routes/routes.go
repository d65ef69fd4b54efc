package routes

import (
	"net/http"

	"github.com/JosuePG/pokemon-trader/internal/handlers"
	appmw "github.com/JosuePG/pokemon-trader/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRoutes(h *handlers.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Works Fine!"))
	})

	r.Post("/api/auth/register", h.RegisterHandler)
	r.Post("/api/auth/login", h.LoginHandler)

	r.With(appmw.Authenticated).Get("/api/pokemon/mine", h.MyPokemonHandler)

	r.With(appmw.Authenticated).Get("/api/trade", h.ListTradesHandler)
	r.With(appmw.Authenticated).Post("/api/trade", h.CreateTradeHandler)
	r.With(appmw.Authenticated).Post("/api/trade/{id}/accept", h.AcceptTradeHandler)
	r.With(appmw.Authenticated).Post("/api/trade/{id}/reject", h.RejectTradeHandler)

	r.With(appmw.Authenticated).Get("/api/rankings", h.RankingHandler)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
