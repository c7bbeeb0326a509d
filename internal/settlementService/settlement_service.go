package settlement

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

// commissionRate is the platform's fixed cut of the final price.
var commissionRate = decimal.RequireFromString("0.10")

// Service closes ended auctions and produces the settlement record.
// Finalization is idempotent: concurrent or repeated invocations for the same
// idea yield exactly one Transaction.
type Service struct {
	store repository.AuctionStore
	clock clock.Clock
}

// NewService creates a new settlement Service instance
func NewService(store repository.AuctionStore, clk clock.Clock) *Service {
	return &Service{
		store: store,
		clock: clk,
	}
}

// FinalizeResult reports the settlement for an auction. Created is false when
// a previous invocation already produced the transaction.
type FinalizeResult struct {
	Transaction models.Transaction
	Created     bool
}

// FinalizeAuction closes the auction for ideaID, determines the winning bid,
// and writes the settlement record with commission. Only the idea's author may
// trigger it, and only after the auction deadline. Repeating the call returns
// the existing transaction instead of failing.
func (s *Service) FinalizeAuction(ctx context.Context, ideaID, requesterID string) (FinalizeResult, error) {
	var result FinalizeResult

	err := s.store.WithTx(ctx, func(txCtx context.Context) error {
		idea, auction, err := s.store.GetIdeaAndAuctionForUpdate(txCtx, ideaID)
		if err != nil {
			return err
		}

		if requesterID != idea.AuthorID {
			return fmt.Errorf("service: %w - idea %s", auctionerrors.ErrForbidden, ideaID)
		}
		if s.clock.Now().Before(auction.EndTime) {
			return fmt.Errorf("service: %w - auction for idea %s ends at %s", auctionerrors.ErrAuctionNotEnded, ideaID, auction.EndTime.UTC().Format("2006-01-02T15:04:05Z07:00"))
		}
		if idea.Status == models.StatusSold {
			existing, err := s.store.GetTransactionByIdea(txCtx, ideaID)
			if err != nil {
				return fmt.Errorf("service: idea %s sold but settlement missing: %w", ideaID, err)
			}
			result = FinalizeResult{Transaction: existing, Created: false}
			return nil
		}

		winning, err := s.store.GetWinningBid(txCtx, auction.AuctionID)
		if err != nil {
			return err
		}

		finalPrice := winning.Amount
		txn := models.Transaction{
			TransactionID: utils.GenerateID(),
			IdeaID:        idea.IdeaID,
			IdeaTitle:     idea.Title,
			SellerID:      idea.AuthorID,
			BuyerID:       winning.BidderID,
			FinalPrice:    finalPrice,
			CommissionFee: finalPrice.Mul(commissionRate),
			CreatedAt:     s.clock.Now(),
		}

		if err := s.store.MarkIdeaSold(txCtx, ideaID); err != nil {
			return err
		}
		if err := s.store.InsertTransaction(txCtx, txn); err != nil {
			return err
		}

		result = FinalizeResult{Transaction: txn, Created: true}
		return nil
	})
	if err != nil {
		// A concurrent finalization won the race. The unique violation
		// aborts the unit of work, so the existing settlement is read on
		// a fresh one.
		if errors.Is(err, auctionerrors.ErrAlreadyFinalized) {
			existing, readErr := s.store.GetTransactionByIdea(ctx, ideaID)
			if readErr != nil {
				return FinalizeResult{}, err
			}
			return FinalizeResult{Transaction: existing, Created: false}, nil
		}
		return FinalizeResult{}, err
	}
	return result, nil
}

// PaymentIntent exposes the winning bidder and final amount to the external
// payment collaborator. Only the confirmed winner of an ended auction may
// obtain it.
func (s *Service) PaymentIntent(ctx context.Context, ideaID, requesterID string) (models.PaymentIntent, error) {
	_, auction, err := s.store.GetIdeaAndAuction(ctx, ideaID)
	if err != nil {
		return models.PaymentIntent{}, err
	}
	if s.clock.Now().Before(auction.EndTime) {
		return models.PaymentIntent{}, fmt.Errorf("service: %w - auction for idea %s still open", auctionerrors.ErrAuctionNotEnded, ideaID)
	}

	winning, err := s.store.GetWinningBid(ctx, auction.AuctionID)
	if err != nil {
		return models.PaymentIntent{}, err
	}
	if winning.BidderID != requesterID {
		return models.PaymentIntent{}, fmt.Errorf("service: %w - idea %s", auctionerrors.ErrNotWinningBidder, ideaID)
	}

	return models.PaymentIntent{
		IdeaID:      ideaID,
		AuctionID:   auction.AuctionID,
		BuyerID:     winning.BidderID,
		AmountCents: winning.Amount.Shift(2).Round(0).IntPart(),
		Currency:    "usd",
	}, nil
}
