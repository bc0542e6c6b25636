package trading

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	EventTypeTrades = "trades"

	TradeTypeDeposit    = "deposit"
	TradeTypeWithdrawal = "withdrawal"

	TradeStateComplete  = "complete"
	TradeStateCancelled = "cancelled"

	ItemStateDeposited = "deposited"
)

type Item struct {
	ID         string          `json:"id"`
	AssetID    string          `json:"asset_id"`
	Name       string          `json:"name"`
	GuidePrice decimal.Decimal `json:"guide_price"`
	Tradable   bool            `json:"tradable"`
	State      string          `json:"state,omitempty"`
}

type Trade struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	State       string `json:"state"`
	UserSteamID string `json:"user_steam_id"`
	Items       []Item `json:"items"`
}

// Event is a single record of the trade event stream.
type Event struct {
	ID   int64           `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type ItemFilter struct {
	State string
}

type TradeFilter struct {
	UserSteamID string
	Type        string
	State       string
	Limit       int
	Sort        string
}

func SumGuidePrice(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.GuidePrice)
	}
	return total
}
