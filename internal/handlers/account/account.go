package account

//go:generate mockgen -source=account.go -destination=mock_account.go -package=account

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/skinbet/internal/domain"
	"github.com/GlebRadaev/skinbet/internal/dto"
	"github.com/GlebRadaev/skinbet/internal/handlers/apierr"
	"github.com/GlebRadaev/skinbet/internal/service/accountservice"
	"github.com/GlebRadaev/skinbet/pkg/auth"
	"github.com/GlebRadaev/skinbet/pkg/utils"
)

type Service interface {
	EnsureUser(ctx context.Context, steamID string) (*domain.User, error)
	GetAccount(ctx context.Context, steamID string) (*accountservice.Account, error)
	SetTradeLink(ctx context.Context, steamID, link string) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// EnsureUser creates the account of a verified steam id on its first request.
func (h *AccountHandler) EnsureUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.accountService.EnsureUser(r.Context(), auth.SteamID(r.Context())); err != nil {
			apierr.Write(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetAccount godoc
//
//	@Summary		Get account
//	@Description	Credit, trade link and the items currently available for withdrawal.
//	@Tags			Account
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.GetAccount(r.Context(), auth.SteamID(r.Context()))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response := dto.AccountResponseDTO{
		SteamID: account.User.SteamID,
		Credit:  account.User.Credit,
		Float:   dto.NewItems(account.Float),
	}
	if account.User.HasTradeLink() {
		response.TradeLink = *account.User.TradeLink
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetTradeLink godoc
//
//	@Summary		Set trade link
//	@Description	The link must be a steam trade offer link of the caller's own account.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.TradeLinkRequestDTO	true	"Trade link"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Trade link saved"
//	@Failure		400	{object}	utils.Response	"Invalid trade link"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account/trade-link [put]
func (h *AccountHandler) SetTradeLink(w http.ResponseWriter, r *http.Request) {
	var req dto.TradeLinkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accountService.SetTradeLink(r.Context(), auth.SteamID(r.Context()), req.TradeLink); err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Trade link saved"})
}
