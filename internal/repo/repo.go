package repo

import (
	"github.com/GlebRadaev/skinbet/internal/pg"
	betrepo "github.com/GlebRadaev/skinbet/internal/repo/bet-repo"
	eventrepo "github.com/GlebRadaev/skinbet/internal/repo/event-repo"
	matchrepo "github.com/GlebRadaev/skinbet/internal/repo/match-repo"
	userrepo "github.com/GlebRadaev/skinbet/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/skinbet/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	MatchRepo      *matchrepo.Repository
	BetRepo        *betrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	EventRepo      *eventrepo.Repository
}

// New builds every repository on top of conn. Pass a *pg.DB so that
// statements issued inside pg.TXManager units join the active transaction.
func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		MatchRepo:      matchrepo.New(conn),
		BetRepo:        betrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		EventRepo:      eventrepo.New(conn),
	}
}
