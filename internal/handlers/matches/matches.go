package matches

//go:generate mockgen -source=matches.go -destination=mock_matches.go -package=matches

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/dto"
	"github.com/GlebRadaev/skinbet/internal/handlers/apierr"
	"github.com/GlebRadaev/skinbet/pkg/auth"
	"github.com/GlebRadaev/skinbet/pkg/utils"
)

type MatchService interface {
	ListMatches(ctx context.Context, matchType string) ([]domain.MatchPool, error)
	GetMatch(ctx context.Context, id int64) (*domain.MatchPool, error)
}

type BetService interface {
	PlaceOrIncreaseBet(ctx context.Context, steamID string, matchID int64, team int, amount decimal.Decimal) (*domain.Bet, error)
	GetBet(ctx context.Context, steamID string, matchID int64) (*domain.Bet, error)
}

type MatchHandler struct {
	matchService MatchService
	betService   BetService
}

func New(matchService MatchService, betService BetService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		betService:   betService,
	}
}

// ListMatches godoc
//
//	@Summary		List matches
//	@Description	Live matches first, then open ones, then finished, each with its betting pool.
//	@Tags			Matches
//	@Produce		json
//	@Param			type	query	string	false	"Match type filter"
//	@Success		200	{array}		dto.MatchResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	pools, err := h.matchService.ListMatches(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response := make([]dto.MatchResponseDTO, 0, len(pools))
	for _, pool := range pools {
		response = append(response, dto.NewMatchResponse(pool))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMatch godoc
//
//	@Summary		Get match
//	@Description	Match with its betting pool and the caller's bet, if any.
//	@Tags			Matches
//	@Produce		json
//	@Param			id	path	int	true	"Match id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MatchDetailsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid match id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Match not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id} [get]
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	pool, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	bet, err := h.betService.GetBet(r.Context(), auth.SteamID(r.Context()), matchID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MatchDetailsResponseDTO{
		MatchResponseDTO: dto.NewMatchResponse(*pool),
		Bet:              dto.NewBetResponse(bet),
	})
}

// PlaceBet godoc
//
//	@Summary		Place or increase a bet
//	@Description	Amount is the new total of the bet. A first bet picks the team, later calls may only raise it.
//	@Tags			Matches
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Match id"
//	@Param			request	body	dto.PlaceBetRequestDTO	true	"Bet"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BetResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Not enough credit"
//	@Failure		404	{object}	utils.Response	"Match not found"
//	@Failure		409	{object}	utils.Response	"Match is not open or bet not increasing"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id}/bet [post]
func (h *MatchHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	matchID, ok := matchIDParam(w, r)
	if !ok {
		return
	}

	var req dto.PlaceBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bet, err := h.betService.PlaceOrIncreaseBet(r.Context(), auth.SteamID(r.Context()), matchID, req.Team, req.Amount)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBetResponse(bet))
}

func matchIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid match id")
		return 0, false
	}
	return id, true
}
