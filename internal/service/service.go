package service

import (
	"github.com/GlebRadaev/skinbet/internal/floatcache"
	"github.com/GlebRadaev/skinbet/internal/handlers/account"
	"github.com/GlebRadaev/skinbet/internal/handlers/matches"
	"github.com/GlebRadaev/skinbet/internal/handlers/trades"
	"github.com/GlebRadaev/skinbet/internal/notify"
	"github.com/GlebRadaev/skinbet/internal/pg"
	"github.com/GlebRadaev/skinbet/internal/repo"
	"github.com/GlebRadaev/skinbet/internal/service/accountservice"
	"github.com/GlebRadaev/skinbet/internal/service/ledgerservice"
	"github.com/GlebRadaev/skinbet/internal/service/matchservice"
	"github.com/GlebRadaev/skinbet/internal/service/tradeservice"
	"github.com/GlebRadaev/skinbet/internal/service/wagerservice"
)

type Services struct {
	Ledger         *ledgerservice.Service
	MatchService   matches.MatchService
	BetService     matches.BetService
	AccountService account.Service
	TradeService   trades.Service
}

func New(
	repo *repo.Repositories,
	txManager pg.TXManager,
	tradingClient tradeservice.Trading,
	float *floatcache.Cache,
	publisher notify.Publisher,
) *Services {
	ledger := ledgerservice.New(repo.UserRepo, repo.EventRepo, repo.WithdrawalRepo, txManager)

	return &Services{
		Ledger:         ledger,
		MatchService:   matchservice.New(repo.MatchRepo),
		BetService:     wagerservice.New(repo.MatchRepo, repo.UserRepo, repo.BetRepo, ledger, publisher, txManager),
		AccountService: accountservice.New(repo.UserRepo, float),
		TradeService:   tradeservice.New(tradingClient, float, repo.UserRepo, repo.WithdrawalRepo, ledger, publisher),
	}
}
