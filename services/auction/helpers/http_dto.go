package helpers

import (
	"time"

	"idea-auction/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID      string          `json:"bid_id"`
	AuctionID  string          `json:"auction_id"`
	BidderID   string          `json:"bidder_id"`
	BidderName string          `json:"bidder_name"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  string          `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID  string          `json:"auction_id"`
	IdeaID     string          `json:"idea_id"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	CurrentBid decimal.Decimal `json:"current_bid"`
}

type PlaceBidResponse struct {
	NewBid         BidResponse     `json:"new_bid"`
	UpdatedAuction AuctionResponse `json:"updated_auction"`
}

func NewBidResponse(b models.Bid) BidResponse {
	return BidResponse{
		BidID:      b.BidID,
		AuctionID:  b.AuctionID,
		BidderID:   b.BidderID,
		BidderName: b.BidderName,
		Amount:     b.Amount,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewAuctionResponse(a models.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:  a.AuctionID,
		IdeaID:     a.IdeaID,
		StartTime:  a.StartTime.UTC().Format(time.RFC3339),
		EndTime:    a.EndTime.UTC().Format(time.RFC3339),
		CurrentBid: a.CurrentBid,
	}
}
