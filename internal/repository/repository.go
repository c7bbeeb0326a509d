package repository

import (
	"context"

	"idea-auction/internal/models"

	"github.com/shopspring/decimal"
)

// AuctionStore defines the ledger storage interface for the auction system.
//
// All mutating operations are meant to run inside WithTx so that the
// read-validate-write sequence of bid admission and finalization commits or
// rolls back as one unit. Implementations must guarantee that two concurrent
// units of work against the same auction row are totally ordered; when they
// cannot, they return auctionerrors.ErrStoreConflict, which is the only
// retry-safe error in the taxonomy.
type AuctionStore interface {
	// WithTx runs fn inside one atomically-isolated unit of work. Nested
	// calls join the enclosing unit.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	// GetIdeaAndAuction loads an idea and its auction without locking.
	GetIdeaAndAuction(ctx context.Context, ideaID string) (models.Idea, models.Auction, error)
	// GetIdeaAndAuctionForUpdate locks the auction row (and its idea) for
	// the duration of the enclosing unit of work.
	GetIdeaAndAuctionForUpdate(ctx context.Context, ideaID string) (models.Idea, models.Auction, error)

	InsertBid(ctx context.Context, bid models.Bid) error
	// UpdateCurrentBid raises the auction's high-water mark. The update is
	// conditional on amount being strictly greater than the stored value;
	// a lost race surfaces as ErrStoreConflict, never as a silent overwrite.
	UpdateCurrentBid(ctx context.Context, auctionID string, amount decimal.Decimal) error

	// GetWinningBid returns the bid with the highest amount, ties broken by
	// earliest creation time. Returns ErrNoBids when the auction has none.
	GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error)

	MarkIdeaSold(ctx context.Context, ideaID string) error
	// InsertTransaction creates the settlement record. At most one may ever
	// exist per idea; a duplicate surfaces as ErrAlreadyFinalized.
	InsertTransaction(ctx context.Context, txn models.Transaction) error
	GetTransactionByIdea(ctx context.Context, ideaID string) (models.Transaction, error)

	ListActiveAuctions(ctx context.Context) ([]models.ActiveAuction, error)
	GetAuctionDetail(ctx context.Context, ideaID string) (models.AuctionDetail, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// CreateIdeaWithAuction inserts an idea and its auction atomically.
	// Listing creation is owned by the marketplace CRUD layer; this is the
	// seeding surface for local runs and tests.
	CreateIdeaWithAuction(ctx context.Context, idea models.Idea, auction models.Auction) error
}
