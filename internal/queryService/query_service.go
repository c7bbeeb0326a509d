package query

import (
	"context"
	"fmt"
	"sort"

	"idea-auction/internal/auctionerrors"
	"idea-auction/internal/models"
	"idea-auction/internal/repository"
)

// SortKey selects the ordering of the active-auctions listing.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortEndingSoon SortKey = "ending"
	SortHighestBid SortKey = "highest"
	SortMostBids   SortKey = "bids"
)

// ParseSortKey maps the query-string value to a SortKey. An empty value
// defaults to newest-first, matching the original listing order.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case "":
		return SortNewest, nil
	case SortNewest, SortEndingSoon, SortHighestBid, SortMostBids:
		return SortKey(raw), nil
	default:
		return "", fmt.Errorf("unknown sort key %q", raw)
	}
}

// Service provides the non-mutating projections consumed by the UI layer
type Service struct {
	store repository.AuctionStore
}

// NewService creates a new read-side Service instance
func NewService(store repository.AuctionStore) *Service {
	return &Service{store: store}
}

// ActiveAuctions returns every idea still in auction, ordered by the given key.
func (s *Service) ActiveAuctions(ctx context.Context, key SortKey) ([]models.ActiveAuction, error) {
	auctions, err := s.store.ListActiveAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active auctions: %w", err)
	}

	switch key {
	case SortEndingSoon:
		sort.SliceStable(auctions, func(i, j int) bool {
			return auctions[i].EndTime.Before(auctions[j].EndTime)
		})
	case SortHighestBid:
		sort.SliceStable(auctions, func(i, j int) bool {
			return auctions[i].CurrentBid.GreaterThan(auctions[j].CurrentBid)
		})
	case SortMostBids:
		sort.SliceStable(auctions, func(i, j int) bool {
			return auctions[i].BidCount > auctions[j].BidCount
		})
	default:
		sort.SliceStable(auctions, func(i, j int) bool {
			return auctions[i].CreatedAt.After(auctions[j].CreatedAt)
		})
	}
	return auctions, nil
}

// AuctionDetail returns the auction, its idea, and the bid history newest-first.
func (s *Service) AuctionDetail(ctx context.Context, ideaID string) (models.AuctionDetail, error) {
	if ideaID == "" {
		return models.AuctionDetail{}, fmt.Errorf("service: empty idea ID: %w", auctionerrors.ErrNotFound)
	}
	detail, err := s.store.GetAuctionDetail(ctx, ideaID)
	if err != nil {
		return models.AuctionDetail{}, fmt.Errorf("service: failed to get auction detail for idea %s: %w", ideaID, err)
	}
	return detail, nil
}

// Transactions returns all settlement records, newest first.
func (s *Service) Transactions(ctx context.Context) ([]models.Transaction, error) {
	txns, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list transactions: %w", err)
	}
	return txns, nil
}
