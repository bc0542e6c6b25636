package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/pkg/trading"
)

type DepositRequestDTO struct {
	AssetIDs []string `json:"asset_ids" example:"27348562891,27348562892"`
}

type WithdrawRequestDTO struct {
	ItemIDs []string `json:"item_ids" example:"f3a1,f3a2"`
}

type TradeResponseDTO struct {
	ID    int64     `json:"id" example:"1043"`
	Type  string    `json:"type" example:"deposit"`
	State string    `json:"state" example:"complete"`
	Items []ItemDTO `json:"items"`
}

func NewTradeResponse(trade trading.Trade) TradeResponseDTO {
	return TradeResponseDTO{
		ID:    trade.ID,
		Type:  trade.Type,
		State: trade.State,
		Items: NewItems(trade.Items),
	}
}

type WithdrawalResponseDTO struct {
	ID        string          `json:"id" example:"4b0f5d1e-7c1b-4b65-9d7e-1f0f6c1c2a10"`
	ItemIDs   []string        `json:"item_ids" example:"f3a1,f3a2"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"4.35"`
	CreatedAt time.Time       `json:"created_at" example:"2024-12-09T16:09:57Z"`
}

func NewWithdrawalResponse(w domain.Withdrawal) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:        w.ID.String(),
		ItemIDs:   w.ItemIDs,
		Total:     w.Total,
		CreatedAt: w.CreatedAt,
	}
}
