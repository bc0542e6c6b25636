package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/skinbet/internal/domain"
)

type PlaceBetRequestDTO struct {
	Team   int             `json:"team" example:"1"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"6.00"`
}

type BetResponseDTO struct {
	MatchID   int64           `json:"match_id" example:"9"`
	Team      int             `json:"team" example:"1"`
	Value     decimal.Decimal `json:"value" swaggertype:"string" example:"10.00"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-12-09T16:09:57Z"`
}

func NewBetResponse(bet *domain.Bet) *BetResponseDTO {
	if bet == nil {
		return nil
	}
	return &BetResponseDTO{
		MatchID:   bet.MatchID,
		Team:      bet.Team,
		Value:     bet.Value,
		UpdatedAt: bet.UpdatedAt,
	}
}
