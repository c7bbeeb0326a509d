package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrNotFound      = errors.New("auction not found")
	ErrNoBids        = errors.New("no bids found for auction")
	ErrStoreConflict = errors.New("storage conflict, retry")
)

// business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrAuctionClosed    = errors.New("auction has ended")
	ErrSelfBidForbidden = errors.New("author cannot bid on own idea")
	ErrForbidden        = errors.New("only the idea owner can finalize the auction")
	ErrAuctionNotEnded  = errors.New("auction has not ended yet")
	ErrAlreadyFinalized = errors.New("idea has already been sold")
	ErrNotWinningBidder = errors.New("caller is not the winning bidder")
)
