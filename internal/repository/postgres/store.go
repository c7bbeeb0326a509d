package postgres

import (
	"context"
	"errors"
	"fmt"

	"idea-auction/internal/auctionerrors"
	"idea-auction/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store is the Postgres implementation of repository.AuctionStore.
// Bid admission and finalization rely on SELECT ... FOR UPDATE on the
// auction/idea rows inside withTx, so concurrent writers against the same
// auction are totally ordered by the row lock.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := withTx(ctx, s.pool, fn)
	if err != nil && isRetryableConflict(err) {
		return fmt.Errorf("unit of work: %w", auctionerrors.ErrStoreConflict)
	}
	return err
}

const ideaAuctionColumns = `
i.id, i.title, i.description, i.category, i.status, i.starting_price,
i.author_id, i.author_name, i.likes_count, i.comments_count, i.created_at,
a.id, a.idea_id, a.start_time, a.end_time, a.current_bid`

func (s *Store) GetIdeaAndAuction(ctx context.Context, ideaID string) (models.Idea, models.Auction, error) {
	query := `SELECT ` + ideaAuctionColumns + `
FROM ideas i
JOIN auctions a ON a.idea_id = i.id
WHERE i.id = $1`
	return s.scanIdeaAndAuction(s.queryRow(ctx, query, ideaID), ideaID)
}

func (s *Store) GetIdeaAndAuctionForUpdate(ctx context.Context, ideaID string) (models.Idea, models.Auction, error) {
	query := `SELECT ` + ideaAuctionColumns + `
FROM ideas i
JOIN auctions a ON a.idea_id = i.id
WHERE i.id = $1
FOR UPDATE OF i, a`
	return s.scanIdeaAndAuction(s.queryRow(ctx, query, ideaID), ideaID)
}

func (s *Store) scanIdeaAndAuction(row pgx.Row, ideaID string) (models.Idea, models.Auction, error) {
	var (
		idea    models.Idea
		auction models.Auction
		status  string
	)
	err := row.Scan(
		&idea.IdeaID, &idea.Title, &idea.Description, &idea.Category, &status, &idea.StartingPrice,
		&idea.AuthorID, &idea.AuthorName, &idea.LikesCount, &idea.CommentsCount, &idea.CreatedAt,
		&auction.AuctionID, &auction.IdeaID, &auction.StartTime, &auction.EndTime, &auction.CurrentBid,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return models.Idea{}, models.Auction{}, fmt.Errorf("get idea %s: %w", ideaID, auctionerrors.ErrNotFound)
		}
		return models.Idea{}, models.Auction{}, fmt.Errorf("get idea %s: %w", ideaID, err)
	}
	idea.Status = models.IdeaStatus(status)
	return idea, auction, nil
}

func (s *Store) InsertBid(ctx context.Context, bid models.Bid) error {
	const stmt = `
INSERT INTO bids (id, auction_id, bidder_id, bidder_name, amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.exec(ctx, stmt, bid.BidID, bid.AuctionID, bid.BidderID, bid.BidderName, bid.Amount, bid.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, err)
	}
	return nil
}

// UpdateCurrentBid raises the high-water mark with a conditional update.
// The guard duplicates the validation done under the row lock: a zero
// affected-row count means another writer committed first.
func (s *Store) UpdateCurrentBid(ctx context.Context, auctionID string, amount decimal.Decimal) error {
	const stmt = `UPDATE auctions SET current_bid = $2 WHERE id = $1 AND current_bid < $2`

	tag, err := s.exec(ctx, stmt, auctionID, amount)
	if err != nil {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, auctionerrors.ErrStoreConflict)
	}
	return nil
}

func (s *Store) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	const query = `
SELECT id, auction_id, bidder_id, bidder_name, amount, created_at
FROM bids
WHERE auction_id = $1
ORDER BY amount DESC, created_at ASC, id ASC
LIMIT 1`

	var b models.Bid
	err := s.queryRow(ctx, query, auctionID).
		Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.BidderName, &b.Amount, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
		}
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, err)
	}
	return b, nil
}

func (s *Store) MarkIdeaSold(ctx context.Context, ideaID string) error {
	const stmt = `UPDATE ideas SET status = 'Sold' WHERE id = $1`

	tag, err := s.exec(ctx, stmt, ideaID)
	if err != nil {
		return fmt.Errorf("mark idea %s sold: %w", ideaID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark idea %s sold: %w", ideaID, auctionerrors.ErrNotFound)
	}
	return nil
}

func (s *Store) InsertTransaction(ctx context.Context, txn models.Transaction) error {
	const stmt = `
INSERT INTO transactions (id, idea_id, idea_title, seller_id, buyer_id, final_price, commission_fee, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.exec(ctx, stmt,
		txn.TransactionID, txn.IdeaID, txn.IdeaTitle, txn.SellerID, txn.BuyerID,
		txn.FinalPrice, txn.CommissionFee, txn.CreatedAt,
	)
	if err != nil {
		// The unique constraint on idea_id is the hard backstop for the
		// exactly-one-settlement invariant.
		if isUniqueViolation(err) {
			return fmt.Errorf("insert transaction for idea %s: %w", txn.IdeaID, auctionerrors.ErrAlreadyFinalized)
		}
		return fmt.Errorf("insert transaction for idea %s: %w", txn.IdeaID, err)
	}
	return nil
}

func (s *Store) GetTransactionByIdea(ctx context.Context, ideaID string) (models.Transaction, error) {
	const query = `
SELECT id, idea_id, idea_title, seller_id, buyer_id, final_price, commission_fee, created_at
FROM transactions
WHERE idea_id = $1`

	var t models.Transaction
	err := s.queryRow(ctx, query, ideaID).Scan(
		&t.TransactionID, &t.IdeaID, &t.IdeaTitle, &t.SellerID, &t.BuyerID,
		&t.FinalPrice, &t.CommissionFee, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return models.Transaction{}, fmt.Errorf("get transaction for idea %s: %w", ideaID, auctionerrors.ErrNotFound)
		}
		return models.Transaction{}, fmt.Errorf("get transaction for idea %s: %w", ideaID, err)
	}
	return t, nil
}

func (s *Store) ListActiveAuctions(ctx context.Context) ([]models.ActiveAuction, error) {
	const query = `
SELECT i.id, i.title, i.author_name, a.current_bid, a.end_time,
       (SELECT COUNT(*) FROM bids b WHERE b.auction_id = a.id) AS bid_count,
       i.likes_count, i.comments_count, i.created_at
FROM ideas i
JOIN auctions a ON a.idea_id = i.id
WHERE i.status = 'Auction'
ORDER BY i.created_at DESC`

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}
	defer rows.Close()

	out := make([]models.ActiveAuction, 0)
	for rows.Next() {
		var a models.ActiveAuction
		if err := rows.Scan(
			&a.IdeaID, &a.Title, &a.AuthorName, &a.CurrentBid, &a.EndTime,
			&a.BidCount, &a.LikesCount, &a.CommentsCount, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list active auctions: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}
	return out, nil
}

func (s *Store) GetAuctionDetail(ctx context.Context, ideaID string) (models.AuctionDetail, error) {
	idea, auction, err := s.GetIdeaAndAuction(ctx, ideaID)
	if err != nil {
		return models.AuctionDetail{}, err
	}

	const query = `
SELECT id, auction_id, bidder_id, bidder_name, amount, created_at
FROM bids
WHERE auction_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := s.query(ctx, query, auction.AuctionID)
	if err != nil {
		return models.AuctionDetail{}, fmt.Errorf("get auction detail for idea %s: %w", ideaID, err)
	}
	defer rows.Close()

	history := make([]models.Bid, 0)
	for rows.Next() {
		var b models.Bid
		if err := rows.Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.BidderName, &b.Amount, &b.CreatedAt); err != nil {
			return models.AuctionDetail{}, fmt.Errorf("get auction detail for idea %s: %w", ideaID, err)
		}
		history = append(history, b)
	}
	if err := rows.Err(); err != nil {
		return models.AuctionDetail{}, fmt.Errorf("get auction detail for idea %s: %w", ideaID, err)
	}

	return models.AuctionDetail{Auction: auction, Idea: idea, Bids: history}, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	const query = `
SELECT id, idea_id, idea_title, seller_id, buyer_id, final_price, commission_fee, created_at
FROM transactions
ORDER BY created_at DESC`

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID, &t.IdeaID, &t.IdeaTitle, &t.SellerID, &t.BuyerID,
			&t.FinalPrice, &t.CommissionFee, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func (s *Store) CreateIdeaWithAuction(ctx context.Context, idea models.Idea, auction models.Auction) error {
	return s.WithTx(ctx, func(txCtx context.Context) error {
		const ideaStmt = `
INSERT INTO ideas (id, title, description, category, status, starting_price, author_id, author_name, likes_count, comments_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		if _, err := s.exec(txCtx, ideaStmt,
			idea.IdeaID, idea.Title, idea.Description, idea.Category, string(idea.Status),
			idea.StartingPrice, idea.AuthorID, idea.AuthorName, idea.LikesCount, idea.CommentsCount, idea.CreatedAt,
		); err != nil {
			return fmt.Errorf("create idea %s: %w", idea.IdeaID, err)
		}

		const auctionStmt = `
INSERT INTO auctions (id, idea_id, start_time, end_time, current_bid)
VALUES ($1, $2, $3, $4, $5)`
		if _, err := s.exec(txCtx, auctionStmt,
			auction.AuctionID, auction.IdeaID, auction.StartTime, auction.EndTime, auction.CurrentBid,
		); err != nil {
			return fmt.Errorf("create auction for idea %s: %w", idea.IdeaID, err)
		}
		return nil
	})
}

func (s *Store) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return s.pool.Exec(ctx, sql, args...)
}

func (s *Store) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return s.pool.QueryRow(ctx, sql, args...)
}

func (s *Store) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return s.pool.Query(ctx, sql, args...)
}
