package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/skinbet/internal/domain"
)

type TeamDTO struct {
	ID      int64           `json:"id" example:"12"`
	Name    string          `json:"name" example:"Natus Vincere"`
	Logo    string          `json:"logo,omitempty" example:"https://cdn.example.com/navi.png"`
	Value   decimal.Decimal `json:"value" swaggertype:"string" example:"150.25"`
	Percent int64           `json:"percent" example:"75"`
	Ratio   decimal.Decimal `json:"ratio" swaggertype:"string" example:"0.33"`
}

type MatchResponseDTO struct {
	ID      int64     `json:"id" example:"9"`
	Type    string    `json:"type" example:"csgo"`
	State   string    `json:"state" example:"open"`
	StartAt time.Time `json:"start_at" example:"2024-12-09T16:00:00Z"`
	Team1   TeamDTO   `json:"team1"`
	Team2   TeamDTO   `json:"team2"`
}

func NewMatchResponse(pool domain.MatchPool) MatchResponseDTO {
	return MatchResponseDTO{
		ID:      pool.ID,
		Type:    pool.Type,
		State:   string(pool.State),
		StartAt: pool.StartAt,
		Team1: TeamDTO{
			ID:      pool.Team1,
			Name:    pool.Team1Name,
			Logo:    pool.Team1Logo,
			Value:   pool.Team1Value,
			Percent: pool.Team1Percent,
			Ratio:   pool.Team1Ratio,
		},
		Team2: TeamDTO{
			ID:      pool.Team2,
			Name:    pool.Team2Name,
			Logo:    pool.Team2Logo,
			Value:   pool.Team2Value,
			Percent: pool.Team2Percent,
			Ratio:   pool.Team2Ratio,
		},
	}
}

type MatchDetailsResponseDTO struct {
	MatchResponseDTO
	Bet *BetResponseDTO `json:"bet,omitempty"`
}
