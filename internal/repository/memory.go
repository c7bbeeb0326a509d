package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"idea-auction/internal/auctionerrors"
	"idea-auction/internal/models"

	"github.com/shopspring/decimal"
)

type memTxKey struct{}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore.
// A single mutex serializes every unit of work, which gives the same total
// ordering over the auction row that the Postgres store gets from row locks.
// Used for local runs without a database, integration tests, and benchmarks.
type MemoryRepo struct {
	mu           sync.Mutex
	ideas        map[string]models.Idea        // key: ideaID
	auctions     map[string]models.Auction     // key: ideaID
	auctionIdeas map[string]string             // key: auctionID -> ideaID
	bids         map[string][]models.Bid       // key: auctionID, append order = commit order
	transactions map[string]models.Transaction // key: ideaID
}

// NewMemoryRepo creates a new in-memory store instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		ideas:        make(map[string]models.Idea),
		auctions:     make(map[string]models.Auction),
		auctionIdeas: make(map[string]string),
		bids:         make(map[string][]models.Bid),
		transactions: make(map[string]models.Transaction),
	}
}

// WithTx serializes fn against all other units of work. Nested calls join
// the enclosing unit instead of deadlocking on the non-reentrant mutex.
func (r *MemoryRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(context.WithValue(ctx, memTxKey{}, struct{}{}))
}

// enter takes the mutex unless the context already runs inside WithTx.
func (r *MemoryRepo) enter(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *MemoryRepo) GetIdeaAndAuction(ctx context.Context, ideaID string) (models.Idea, models.Auction, error) {
	defer r.enter(ctx)()
	return r.getIdeaAndAuction(ideaID)
}

// GetIdeaAndAuctionForUpdate behaves like GetIdeaAndAuction; the enclosing
// WithTx already holds the repo-wide lock.
func (r *MemoryRepo) GetIdeaAndAuctionForUpdate(ctx context.Context, ideaID string) (models.Idea, models.Auction, error) {
	defer r.enter(ctx)()
	return r.getIdeaAndAuction(ideaID)
}

func (r *MemoryRepo) getIdeaAndAuction(ideaID string) (models.Idea, models.Auction, error) {
	idea, ok := r.ideas[ideaID]
	if !ok {
		return models.Idea{}, models.Auction{}, fmt.Errorf("get idea %s: %w", ideaID, auctionerrors.ErrNotFound)
	}
	auction, ok := r.auctions[ideaID]
	if !ok {
		return models.Idea{}, models.Auction{}, fmt.Errorf("get auction for idea %s: %w", ideaID, auctionerrors.ErrNotFound)
	}
	return idea, auction, nil
}

func (r *MemoryRepo) InsertBid(ctx context.Context, bid models.Bid) error {
	defer r.enter(ctx)()

	if _, ok := r.auctionIdeas[bid.AuctionID]; !ok {
		return fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrNotFound)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return nil
}

func (r *MemoryRepo) UpdateCurrentBid(ctx context.Context, auctionID string, amount decimal.Decimal) error {
	defer r.enter(ctx)()

	ideaID, ok := r.auctionIdeas[auctionID]
	if !ok {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	auction := r.auctions[ideaID]
	if !auction.CurrentBid.LessThan(amount) {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, auctionerrors.ErrStoreConflict)
	}
	auction.CurrentBid = amount
	r.auctions[ideaID] = auction
	return nil
}

func (r *MemoryRepo) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	defer r.enter(ctx)()

	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) ||
			(b.Amount.Equal(winning.Amount) && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

func (r *MemoryRepo) MarkIdeaSold(ctx context.Context, ideaID string) error {
	defer r.enter(ctx)()

	idea, ok := r.ideas[ideaID]
	if !ok {
		return fmt.Errorf("mark idea %s sold: %w", ideaID, auctionerrors.ErrNotFound)
	}
	idea.Status = models.StatusSold
	r.ideas[ideaID] = idea
	return nil
}

func (r *MemoryRepo) InsertTransaction(ctx context.Context, txn models.Transaction) error {
	defer r.enter(ctx)()

	if _, exists := r.transactions[txn.IdeaID]; exists {
		return fmt.Errorf("insert transaction for idea %s: %w", txn.IdeaID, auctionerrors.ErrAlreadyFinalized)
	}
	r.transactions[txn.IdeaID] = txn
	return nil
}

func (r *MemoryRepo) GetTransactionByIdea(ctx context.Context, ideaID string) (models.Transaction, error) {
	defer r.enter(ctx)()

	txn, ok := r.transactions[ideaID]
	if !ok {
		return models.Transaction{}, fmt.Errorf("get transaction for idea %s: %w", ideaID, auctionerrors.ErrNotFound)
	}
	return txn, nil
}

func (r *MemoryRepo) ListActiveAuctions(ctx context.Context) ([]models.ActiveAuction, error) {
	defer r.enter(ctx)()

	out := make([]models.ActiveAuction, 0)
	for ideaID, idea := range r.ideas {
		if idea.Status != models.StatusAuction {
			continue
		}
		auction, ok := r.auctions[ideaID]
		if !ok {
			continue
		}
		out = append(out, models.ActiveAuction{
			IdeaID:        idea.IdeaID,
			Title:         idea.Title,
			AuthorName:    idea.AuthorName,
			CurrentBid:    auction.CurrentBid,
			EndTime:       auction.EndTime,
			BidCount:      len(r.bids[auction.AuctionID]),
			LikesCount:    idea.LikesCount,
			CommentsCount: idea.CommentsCount,
			CreatedAt:     idea.CreatedAt,
		})
	}
	return out, nil
}

func (r *MemoryRepo) GetAuctionDetail(ctx context.Context, ideaID string) (models.AuctionDetail, error) {
	defer r.enter(ctx)()

	idea, auction, err := r.getIdeaAndAuction(ideaID)
	if err != nil {
		return models.AuctionDetail{}, err
	}

	// Bids append in commit order; reversing gives the newest-first history
	// without depending on timestamp uniqueness.
	stored := r.bids[auction.AuctionID]
	history := make([]models.Bid, len(stored))
	for i, b := range stored {
		history[len(stored)-1-i] = b
	}

	return models.AuctionDetail{
		Auction: auction,
		Idea:    idea,
		Bids:    history,
	}, nil
}

func (r *MemoryRepo) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	defer r.enter(ctx)()

	out := make([]models.Transaction, 0, len(r.transactions))
	for _, txn := range r.transactions {
		out = append(out, txn)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) CreateIdeaWithAuction(ctx context.Context, idea models.Idea, auction models.Auction) error {
	defer r.enter(ctx)()

	if _, exists := r.ideas[idea.IdeaID]; exists {
		return fmt.Errorf("create idea %s: %w", idea.IdeaID, auctionerrors.ErrStoreConflict)
	}
	r.ideas[idea.IdeaID] = idea
	r.auctions[idea.IdeaID] = auction
	r.auctionIdeas[auction.AuctionID] = idea.IdeaID
	return nil
}
