package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IdeaStatus is the lifecycle state of a listed idea.
type IdeaStatus string

const (
	StatusAuction IdeaStatus = "Auction"
	StatusSold    IdeaStatus = "Sold"
)

// Idea represents a listed idea up for auction
type Idea struct {
	IdeaID        string          `json:"idea_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Status        IdeaStatus      `json:"status"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	AuthorID      string          `json:"author_id"`
	AuthorName    string          `json:"author_name"`
	LikesCount    int             `json:"likes_count"`
	CommentsCount int             `json:"comments_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Auction holds the mutable bidding state associated 1:1 with an Idea.
// CurrentBid is initialized to the idea's starting price and only ever increases.
type Auction struct {
	AuctionID  string          `json:"auction_id"`
	IdeaID     string          `json:"idea_id"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	CurrentBid decimal.Decimal `json:"current_bid"`
}

// Bid is an immutable record of one party's offer on an auction
type Bid struct {
	BidID      string          `json:"bid_id"`
	AuctionID  string          `json:"auction_id"`
	BidderID   string          `json:"bidder_id"`
	BidderName string          `json:"bidder_name"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Transaction is the settlement record created exactly once per auction at finalization
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	IdeaID        string          `json:"idea_id"`
	IdeaTitle     string          `json:"idea_title"`
	SellerID      string          `json:"seller_id"`
	BuyerID       string          `json:"buyer_id"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	CommissionFee decimal.Decimal `json:"commission_fee"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ActiveAuction is the read projection backing the active-auctions listing
type ActiveAuction struct {
	IdeaID        string          `json:"idea_id"`
	Title         string          `json:"title"`
	AuthorName    string          `json:"author_name"`
	CurrentBid    decimal.Decimal `json:"current_bid"`
	EndTime       time.Time       `json:"end_time"`
	BidCount      int             `json:"bid_count"`
	LikesCount    int             `json:"likes_count"`
	CommentsCount int             `json:"comments_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuctionDetail is the read projection for a single auction page:
// the auction, its idea, and the full bid history newest-first.
type AuctionDetail struct {
	Auction Auction `json:"auction"`
	Idea    Idea    `json:"idea"`
	Bids    []Bid   `json:"bids"`
}

// PaymentIntent exposes the winning bidder and final amount to the
// external payment collaborator. Amount is in the currency's minor unit.
type PaymentIntent struct {
	IdeaID      string `json:"idea_id"`
	AuctionID   string `json:"auction_id"`
	BuyerID     string `json:"buyer_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}
