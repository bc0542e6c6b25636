package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MatchState string

const (
	MatchOpen     MatchState = "open"
	MatchLive     MatchState = "live"
	MatchFinished MatchState = "finished"
)

const (
	Team1 = 1
	Team2 = 2
)

type User struct {
	SteamID   string          `db:"steam_id"`
	Credit    decimal.Decimal `db:"credit"`
	TradeLink *string         `db:"trade_link"`
	CreatedAt time.Time       `db:"created_at"`
}

func (u *User) HasTradeLink() bool {
	return u.TradeLink != nil && *u.TradeLink != ""
}

type Match struct {
	ID      int64      `db:"id"`
	Type    string     `db:"type"`
	State   MatchState `db:"state"`
	Team1   int64      `db:"team1"`
	Team2   int64      `db:"team2"`
	StartAt time.Time  `db:"start_at"`
}

// MatchPool is a match together with the credit pooled on each side.
type MatchPool struct {
	Match
	Team1Name    string
	Team1Logo    string
	Team2Name    string
	Team2Logo    string
	Team1Value   decimal.Decimal
	Team2Value   decimal.Decimal
	Team1Percent int64
	Team2Percent int64
	Team1Ratio   decimal.Decimal
	Team2Ratio   decimal.Decimal
}

type Bet struct {
	SteamID   string          `db:"steam_id"`
	MatchID   int64           `db:"match_id"`
	Team      int             `db:"team"`
	Value     decimal.Decimal `db:"value"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Withdrawal struct {
	ID        uuid.UUID       `db:"id"`
	SteamID   string          `db:"steam_id"`
	ItemIDs   []string        `db:"item_ids"`
	Total     decimal.Decimal `db:"total"`
	CreatedAt time.Time       `db:"created_at"`
}

// Deposit is a completed deposit trade event about to be credited.
type Deposit struct {
	EventID int64
	TradeID int64
	SteamID string
	Amount  decimal.Decimal
}
