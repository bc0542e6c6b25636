package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/skinbet/docs"
	accounthandlers "github.com/GlebRadaev/skinbet/internal/handlers/account"
	matchhandlers "github.com/GlebRadaev/skinbet/internal/handlers/matches"
	tradehandlers "github.com/GlebRadaev/skinbet/internal/handlers/trades"
	"github.com/GlebRadaev/skinbet/internal/metrics"
	"github.com/GlebRadaev/skinbet/internal/service"
	"github.com/GlebRadaev/skinbet/pkg/auth"
)

type MatchHandler interface {
	ListMatches(w http.ResponseWriter, r *http.Request)
	GetMatch(w http.ResponseWriter, r *http.Request)
	PlaceBet(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	EnsureUser(next http.Handler) http.Handler
	GetAccount(w http.ResponseWriter, r *http.Request)
	SetTradeLink(w http.ResponseWriter, r *http.Request)
}

type TradeHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Inventory(w http.ResponseWriter, r *http.Request)
	Trades(w http.ResponseWriter, r *http.Request)
	Withdrawals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	MatchHandler   MatchHandler
	AccountHandler AccountHandler
	TradeHandler   TradeHandler

	jwt    auth.JWTServiceInterface
	health metrics.HealthFunc
}

func New(s *service.Services, jwt auth.JWTServiceInterface, health metrics.HealthFunc) *Handlers {
	return &Handlers{
		MatchHandler:   matchhandlers.New(s.MatchService, s.BetService),
		AccountHandler: accounthandlers.New(s.AccountService),
		TradeHandler:   tradehandlers.New(s.TradeService),
		jwt:            jwt,
		health:         health,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", metrics.Health(h.health))

	r.Route("/api", func(r chi.Router) {
		r.Get("/matches", h.MatchHandler.ListMatches)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwt), h.AccountHandler.EnsureUser)

			r.Route("/matches/{id}", func(r chi.Router) {
				r.Get("/", h.MatchHandler.GetMatch)
				r.Post("/bet", h.MatchHandler.PlaceBet)
			})
			r.Route("/account", func(r chi.Router) {
				r.Get("/", h.AccountHandler.GetAccount)
				r.Put("/trade-link", h.AccountHandler.SetTradeLink)
			})
			r.Post("/deposit", h.TradeHandler.Deposit)
			r.Get("/inventory", h.TradeHandler.Inventory)
			r.Post("/withdraw", h.TradeHandler.Withdraw)
			r.Get("/trades", h.TradeHandler.Trades)
			r.Get("/withdrawals", h.TradeHandler.Withdrawals)
		})
	})

	return r
}
