package trades

//go:generate mockgen -source=trades.go -destination=mock_trades.go -package=trades

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/dto"
	"github.com/GlebRadaev/skinbet/internal/handlers/apierr"
	"github.com/GlebRadaev/skinbet/pkg/auth"
	"github.com/GlebRadaev/skinbet/pkg/trading"
	"github.com/GlebRadaev/skinbet/pkg/utils"
)

type Service interface {
	Deposit(ctx context.Context, steamID string, assetIDs []string) (trading.Trade, error)
	Withdraw(ctx context.Context, steamID string, itemIDs []string) (*domain.Withdrawal, error)
	DepositableInventory(ctx context.Context, steamID string) ([]trading.Item, error)
	Trades(ctx context.Context, steamID string) ([]trading.Trade, error)
	Withdrawals(ctx context.Context, steamID string) ([]domain.Withdrawal, error)
}

type TradeHandler struct {
	tradeService Service
}

func New(tradeService Service) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// Deposit godoc
//
//	@Summary		Deposit items
//	@Description	Creates a deposit trade offer. Credit is added once the trade completes.
//	@Tags			Trades
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.DepositRequestDTO	true	"Assets to deposit"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.TradeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Trading service unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposit [post]
func (h *TradeHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trade, err := h.tradeService.Deposit(r.Context(), auth.SteamID(r.Context()), req.AssetIDs)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.NewTradeResponse(trade))
}

// Withdraw godoc
//
//	@Summary		Withdraw items
//	@Description	Sends float items to the caller and debits their guide price total.
//	@Tags			Trades
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.WithdrawRequestDTO	true	"Float items to withdraw"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WithdrawalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Not enough credit"
//	@Failure		409	{object}	utils.Response	"Some items are no longer available"
//	@Failure		502	{object}	utils.Response	"Trading service unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdraw [post]
func (h *TradeHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	withdrawal, err := h.tradeService.Withdraw(r.Context(), auth.SteamID(r.Context()), req.ItemIDs)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(*withdrawal))
}

// Inventory godoc
//
//	@Summary		Depositable inventory
//	@Description	Caller's tradable steam items worth depositing, most valuable first.
//	@Tags			Trades
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Trading service unavailable"
//	@Router			/api/inventory [get]
func (h *TradeHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.tradeService.DepositableInventory(r.Context(), auth.SteamID(r.Context()))
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewItems(items))
}

// Trades godoc
//
//	@Summary		Trade history
//	@Description	Cancelled withdrawals first, then the latest trades.
//	@Tags			Trades
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TradeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Trading service unavailable"
//	@Router			/api/trades [get]
func (h *TradeHandler) Trades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.tradeService.Trades(r.Context(), auth.SteamID(r.Context()))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response := make([]dto.TradeResponseDTO, 0, len(trades))
	for _, trade := range trades {
		response = append(response, dto.NewTradeResponse(trade))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdrawals godoc
//
//	@Summary		Withdrawal history
//	@Tags			Trades
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *TradeHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.tradeService.Withdrawals(r.Context(), auth.SteamID(r.Context()))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, 0, len(withdrawals))
	for _, withdrawal := range withdrawals {
		response = append(response, dto.NewWithdrawalResponse(withdrawal))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
