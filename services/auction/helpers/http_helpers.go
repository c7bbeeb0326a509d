package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"idea-auction/internal/auctionerrors"
	"idea-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// The messages are stable; the UI surfaces them verbatim.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid must be higher than the current bid"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusBadRequest, "auction has ended"
	case errors.Is(err, auctionerrors.ErrAuctionNotEnded):
		return http.StatusBadRequest, "auction has not ended yet"
	case errors.Is(err, auctionerrors.ErrAlreadyFinalized):
		return http.StatusBadRequest, "this idea has already been sold"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusBadRequest, "no bids were placed for this auction"
	case errors.Is(err, auctionerrors.ErrSelfBidForbidden):
		return http.StatusForbidden, "cannot bid on your own idea"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "only the idea owner can finalize the auction"
	case errors.Is(err, auctionerrors.ErrNotWinningBidder):
		return http.StatusForbidden, "only the winning bidder can create a payment intent"
	case errors.Is(err, auctionerrors.ErrStoreConflict):
		return http.StatusServiceUnavailable, "bidding is busy, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
