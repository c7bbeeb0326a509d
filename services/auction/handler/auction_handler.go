package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"idea-auction/internal/auctionerrors"
	"idea-auction/internal/auth"
	"idea-auction/internal/models"
	query "idea-auction/internal/queryService"
	settlement "idea-auction/internal/settlementService"
	"idea-auction/monitoring"
	"idea-auction/services/auction/helpers"
	"idea-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, ideaID, bidderID, bidderName string, amount decimal.Decimal) (models.Bid, models.Auction, error)
}

type SettlementServiceInterface interface {
	FinalizeAuction(ctx context.Context, ideaID, requesterID string) (settlement.FinalizeResult, error)
	PaymentIntent(ctx context.Context, ideaID, requesterID string) (models.PaymentIntent, error)
}

type QueryServiceInterface interface {
	ActiveAuctions(ctx context.Context, key query.SortKey) ([]models.ActiveAuction, error)
	AuctionDetail(ctx context.Context, ideaID string) (models.AuctionDetail, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
}

type AuctionHandler struct {
	bidding    BiddingServiceInterface
	settlement SettlementServiceInterface
	query      QueryServiceInterface
}

func NewAuctionHandler(bidding BiddingServiceInterface, settlement SettlementServiceInterface, query QueryServiceInterface) *AuctionHandler {
	return &AuctionHandler{
		bidding:    bidding,
		settlement: settlement,
		query:      query,
	}
}

// PlaceBidHandler handles POST /auctions/:idea_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	ideaID := c.Param("idea_id")
	bidderID, bidderName, ok := auth.Identity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing identity"), "missing identity")
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, auction, err := h.bidding.PlaceBid(c.Request.Context(), ideaID, bidderID, bidderName, req.Amount)
	if err != nil {
		monitoring.TrackBid(bidOutcome(err))
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: bid not admitted", map[string]any{
			"handler":   "PlaceBidHandler",
			"idea_id":   ideaID,
			"bidder_id": bidderID,
			"error":     err.Error(),
		})
		return
	}

	monitoring.TrackBid(monitoring.OutcomeAccepted)
	resp := helpers.PlaceBidResponse{
		NewBid:         helpers.NewBidResponse(bid),
		UpdatedAuction: helpers.NewAuctionResponse(auction),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":      bid.BidID,
		"idea_id":     ideaID,
		"bidder_id":   bidderID,
		"amount":      bid.Amount.String(),
		"current_bid": auction.CurrentBid.String(),
	})
}

// FinalizeAuctionHandler handles POST /auctions/:idea_id/finalize
func (h *AuctionHandler) FinalizeAuctionHandler(c *gin.Context) {
	ideaID := c.Param("idea_id")
	requesterID, _, ok := auth.Identity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing identity"), "missing identity")
		return
	}

	result, err := h.settlement.FinalizeAuction(c.Request.Context(), ideaID, requesterID)
	if err != nil {
		monitoring.TrackFinalization(monitoring.OutcomeRejected)
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("FinalizeAuctionHandler: finalization failed", map[string]any{
			"idea_id":      ideaID,
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	// A repeat call is a benign no-op: same settlement, 200 instead of 201.
	if !result.Created {
		monitoring.TrackFinalization(monitoring.OutcomeRepeated)
		utils.JSONResponse(c, http.StatusOK, gin.H{"transaction": result.Transaction}, "auction already finalized")
		return
	}

	monitoring.TrackFinalization(monitoring.OutcomeFinalized)
	utils.JSONResponse(c, http.StatusCreated, gin.H{"transaction": result.Transaction}, "auction finalized successfully")
	helpers.LogSuccess("FinalizeAuctionHandler", "auction finalized successfully", map[string]any{
		"idea_id":        ideaID,
		"transaction_id": result.Transaction.TransactionID,
		"final_price":    result.Transaction.FinalPrice.String(),
		"commission_fee": result.Transaction.CommissionFee.String(),
	})
}

// GetActiveAuctionsHandler handles GET /auctions/active
func (h *AuctionHandler) GetActiveAuctionsHandler(c *gin.Context) {
	key, err := query.ParseSortKey(c.Query("sort"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid sort key")
		return
	}

	auctions, err := h.query.ActiveAuctions(c.Request.Context(), key)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("GetActiveAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "active auctions retrieved successfully")
}

// GetAuctionDetailHandler handles GET /auctions/:idea_id
func (h *AuctionHandler) GetAuctionDetailHandler(c *gin.Context) {
	ideaID := c.Param("idea_id")
	detail, err := h.query.AuctionDetail(c.Request.Context(), ideaID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionDetailHandler: error retrieving auction", map[string]any{"idea_id": ideaID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "auction retrieved successfully")
}

// GetTransactionsHandler handles GET /transactions
func (h *AuctionHandler) GetTransactionsHandler(c *gin.Context) {
	txns, err := h.query.Transactions(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("GetTransactionsHandler: failed to list transactions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, txns, "transactions retrieved successfully")
}

// CreatePaymentIntentHandler handles POST /payment-intents/:idea_id
func (h *AuctionHandler) CreatePaymentIntentHandler(c *gin.Context) {
	ideaID := c.Param("idea_id")
	requesterID, _, ok := auth.Identity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing identity"), "missing identity")
		return
	}

	intent, err := h.settlement.PaymentIntent(c.Request.Context(), ideaID, requesterID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreatePaymentIntentHandler: intent refused", map[string]any{
			"idea_id":      ideaID,
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, intent, "payment intent created successfully")
	helpers.LogSuccess("CreatePaymentIntentHandler", "payment intent created successfully", map[string]any{
		"idea_id":      ideaID,
		"buyer_id":     intent.BuyerID,
		"amount_cents": intent.AmountCents,
	})
}

func bidOutcome(err error) string {
	if errors.Is(err, auctionerrors.ErrStoreConflict) {
		return monitoring.OutcomeConflict
	}
	switch status, _ := helpers.MapErrorToHTTP(err); {
	case status >= 500:
		return monitoring.OutcomeError
	default:
		return monitoring.OutcomeRejected
	}
}
