package apierr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skinbet/internal/service/accountservice"
	"github.com/GlebRadaev/skinbet/internal/service/ledgerservice"
	"github.com/GlebRadaev/skinbet/internal/service/tradeservice"
	"github.com/GlebRadaev/skinbet/internal/service/wagerservice"
	"github.com/GlebRadaev/skinbet/pkg/trading"
	"github.com/GlebRadaev/skinbet/pkg/utils"
)

type mapping struct {
	err     error
	code    int
	message string
}

var mappings = []mapping{
	{ledgerservice.ErrInsufficientCredit, http.StatusPaymentRequired, "Not enough credit"},
	{ledgerservice.ErrInvalidAmount, http.StatusBadRequest, "Amount must be positive"},
	{ledgerservice.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{wagerservice.ErrMatchNotFound, http.StatusNotFound, "Match not found"},
	{wagerservice.ErrMatchNotOpen, http.StatusConflict, "Match is not open for bets"},
	{wagerservice.ErrBetNotIncreasing, http.StatusConflict, "A bet can only be increased"},
	{wagerservice.ErrTeamMismatch, http.StatusConflict, "You already bet on the other team"},
	{wagerservice.ErrInvalidTeam, http.StatusBadRequest, "Unknown team"},
	{tradeservice.ErrItemsUnavailable, http.StatusConflict, "Some items are no longer available"},
	{tradeservice.ErrTradeLinkRequired, http.StatusBadRequest, "Set your trade link first"},
	{tradeservice.ErrNoItemsSelected, http.StatusBadRequest, "No items selected"},
	{tradeservice.ErrDuplicateItems, http.StatusBadRequest, "Item selected more than once"},
	{accountservice.ErrInvalidTradeLink, http.StatusBadRequest, "Invalid trade link"},
	{accountservice.ErrInvalidSteamID, http.StatusUnauthorized, "Unauthorized"},
	{trading.ErrExternalService, http.StatusBadGateway, "Trading service unavailable"},
}

// Status maps a service error to its HTTP status and user-facing message.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.code, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func Write(w http.ResponseWriter, err error) {
	code, message := Status(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}
	utils.RespondWithError(w, code, message)
}
