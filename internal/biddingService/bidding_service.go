package bidding

import (
	"context"
	"errors"
	"fmt"

	"idea-auction/internal/auctionerrors"
	"idea-auction/internal/clock"
	"idea-auction/internal/models"
	"idea-auction/internal/repository"
	"idea-auction/utils"

	"github.com/shopspring/decimal"
)

const defaultMaxAttempts = 3

// Service is the bid admission controller: it validates and sequences
// incoming bids against an auction's high-water mark. The read-validate-write
// sequence runs inside one store unit of work, so two concurrent bidders can
// never both succeed against the same stale current bid.
type Service struct {
	store       repository.AuctionStore
	clock       clock.Clock
	maxAttempts int
}

// NewService creates a new bid admission Service instance. maxAttempts bounds
// how often a bid is retried after a transient store conflict; values below 1
// fall back to the default.
func NewService(store repository.AuctionStore, clk clock.Clock, maxAttempts int) *Service {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}
	return &Service{
		store:       store,
		clock:       clk,
		maxAttempts: maxAttempts,
	}
}

// PlaceBid validates and records a bid for an idea's auction, returning the
// new bid together with the updated auction snapshot.
//
// Preconditions, checked in order inside one atomic unit: the auction exists,
// the deadline has not passed, the amount strictly exceeds the current bid,
// and the bidder is not the idea's author. A validation failure is terminal;
// only store conflicts are retried, up to maxAttempts.
func (s *Service) PlaceBid(ctx context.Context, ideaID, bidderID, bidderName string, amount decimal.Decimal) (models.Bid, models.Auction, error) {
	if err := s.validateInput(ideaID, bidderID, amount); err != nil {
		return models.Bid{}, models.Auction{}, err
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		bid, auction, err := s.admit(ctx, ideaID, bidderID, bidderName, amount)
		if err == nil {
			return bid, auction, nil
		}
		if !errors.Is(err, auctionerrors.ErrStoreConflict) {
			return models.Bid{}, models.Auction{}, err
		}
		lastErr = err
		utils.Warn("PlaceBid: retrying after store conflict", map[string]any{
			"idea_id": ideaID,
			"attempt": attempt,
		})
	}
	return models.Bid{}, models.Auction{}, fmt.Errorf("service: bid for idea %s not admitted after %d attempts: %w", ideaID, s.maxAttempts, lastErr)
}

// admit runs one admission attempt as a single atomic unit of work.
func (s *Service) admit(ctx context.Context, ideaID, bidderID, bidderName string, amount decimal.Decimal) (models.Bid, models.Auction, error) {
	var (
		bid     models.Bid
		auction models.Auction
	)

	err := s.store.WithTx(ctx, func(txCtx context.Context) error {
		idea, current, err := s.store.GetIdeaAndAuctionForUpdate(txCtx, ideaID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		// A bid at exactly the deadline is already too late.
		if !now.Before(current.EndTime) {
			return fmt.Errorf("service: %w - auction for idea %s closed at %s", auctionerrors.ErrAuctionClosed, ideaID, current.EndTime.UTC().Format("2006-01-02T15:04:05Z07:00"))
		}
		if !amount.GreaterThan(current.CurrentBid) {
			return fmt.Errorf("service: %w - current highest bid is %s", auctionerrors.ErrBidTooLow, current.CurrentBid.String())
		}
		if bidderID == idea.AuthorID {
			return fmt.Errorf("service: %w - idea %s", auctionerrors.ErrSelfBidForbidden, ideaID)
		}

		bid = models.Bid{
			BidID:      utils.GenerateID(),
			AuctionID:  current.AuctionID,
			BidderID:   bidderID,
			BidderName: bidderName,
			Amount:     amount,
			CreatedAt:  now,
		}

		if err := s.store.InsertBid(txCtx, bid); err != nil {
			return fmt.Errorf("service: failed to record bid for idea %s by user %s: %w", ideaID, bidderID, err)
		}
		if err := s.store.UpdateCurrentBid(txCtx, current.AuctionID, amount); err != nil {
			return err
		}

		current.CurrentBid = amount
		auction = current
		return nil
	})
	if err != nil {
		return models.Bid{}, models.Auction{}, err
	}
	return bid, auction, nil
}

// validateInput checks input validity before any storage round trip
func (s *Service) validateInput(ideaID, bidderID string, amount decimal.Decimal) error {
	if ideaID == "" || bidderID == "" {
		return fmt.Errorf("service: %w - missing ideaID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	return nil
}
