package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/skinbet/pkg/trading"
)

type ItemDTO struct {
	ID         string          `json:"id" example:"f3a1"`
	AssetID    string          `json:"asset_id,omitempty" example:"27348562891"`
	Name       string          `json:"name" example:"AK-47 | Redline (Field-Tested)"`
	GuidePrice decimal.Decimal `json:"guide_price" swaggertype:"string" example:"12.50"`
}

func NewItems(items []trading.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ItemDTO{
			ID:         item.ID,
			AssetID:    item.AssetID,
			Name:       item.Name,
			GuidePrice: item.GuidePrice,
		})
	}
	return out
}

type AccountResponseDTO struct {
	SteamID   string          `json:"steam_id" example:"76561198000000001"`
	Credit    decimal.Decimal `json:"credit" swaggertype:"string" example:"42.10"`
	TradeLink string          `json:"trade_link,omitempty" example:"https://steamcommunity.com/tradeoffer/new/?partner=39734273&token=abcdEFGH"`
	Float     []ItemDTO       `json:"float"`
}

type TradeLinkRequestDTO struct {
	TradeLink string `json:"trade_link" example:"https://steamcommunity.com/tradeoffer/new/?partner=39734273&token=abcdEFGH"`
}
