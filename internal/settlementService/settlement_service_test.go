package settlement

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"idea-auction/internal/auctionerrors"
	"idea-auction/internal/clock"
	model "idea-auction/internal/models"
	"idea-auction/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func expectTx(mockStore *repository.MockAuctionStore) {
	mockStore.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func endedIdeaAndAuction() (model.Idea, model.Auction) {
	idea := model.Idea{
		IdeaID:        "idea1",
		Title:         "Idea 1",
		Status:        model.StatusAuction,
		StartingPrice: decimal.NewFromInt(5000),
		AuthorID:      "seller",
		AuthorName:    "Seller",
	}
	auction := model.Auction{
		AuctionID:  "auction1",
		IdeaID:     "idea1",
		StartTime:  testNow.Add(-2 * time.Hour),
		EndTime:    testNow.Add(-time.Hour),
		CurrentBid: decimal.NewFromInt(10000),
	}
	return idea, auction
}

// Tests FinalizeAuction
func TestSettlementService_FinalizeAuction(t *testing.T) {
	winningBid := model.Bid{
		BidID:      "bid1",
		AuctionID:  "auction1",
		BidderID:   "buyer1",
		BidderName: "Buyer",
		Amount:     decimal.NewFromInt(10000),
		CreatedAt:  testNow.Add(-90 * time.Minute),
	}

	tests := []struct {
		name          string
		requesterID   string
		mockSetup     func(mockStore *repository.MockAuctionStore)
		expectError   bool
		expectedError error
		expectCreated bool
	}{
		{
			name:        "successful_finalization",
			requesterID: "seller",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				expectTx(mockStore)
				idea, auction := endedIdeaAndAuction()
				mockStore.EXPECT().GetIdeaAndAuctionForUpdate(gomock.Any(), "idea1").Return(idea, auction, nil)
				mockStore.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(winningBid, nil)
				mockStore.EXPECT().MarkIdeaSold(gomock.Any(), "idea1").Return(nil)
				mockStore.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectError:   false,
			expectCreated: true,
		},
		{
			name:        "idea_not_found",
			requesterID: "seller",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				expectTx(mockStore)
				mockStore.EXPECT().GetIdeaAndAuctionForUpdate(gomock.Any(), "idea1").
					Return(model.Idea{}, model.Auction{}, fmt.Errorf("get idea idea1: %w", auctionerrors.ErrNotFound))
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNotFound,
		},
		{
			name:        "non_owner_forbidden",
			requesterID: "buyer1",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				expectTx(mockStore)
				idea, auction := endedIdeaAndAuction()
				mockStore.EXPECT().GetIdeaAndAuctionForUpdate(gomock.Any(), "idea1").Return(idea, auction, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrForbidden,
		},
		{
			name:        "auction_not_ended",
			requesterID: "seller",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				expectTx(mockStore)
				idea, auction := endedIdeaAndAuction()
				auction.EndTime = testNow.Add(time.Hour)
				mockStore.EXPECT().GetIdeaAndAuctionForUpdate(gomock.Any(), "idea1").Return(idea, auction, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionNotEnded,
		},
		{
			name:        "no_bids",
			requesterID: "seller",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				expectTx(mockStore)
				idea, auction := endedIdeaAndAuction()
				auction.CurrentBid = idea.StartingPrice
				mockStore.EXPECT().GetIdeaAndAuctionForUpdate(gomock.Any(), "idea1").Return(idea, auction, nil)
				mockStore.EXPECT().GetWinningBid(gomock.Any(), "auction1").
					Return(model.Bid{}, fmt.Errorf("get winning bid for auction auction1: %w", auctionerrors.ErrNoBids))
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNoBids,
		},
		{
			name:        "repeat_finalization_returns_existing",
			requesterID: "seller",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				expectTx(mockStore)
				idea, auction := endedIdeaAndAuction()
				idea.Status = model.StatusSold
				existing := model.Transaction{
					TransactionID: "txn1",
					IdeaID:        "idea1",
					SellerID:      "seller",
					BuyerID:       "buyer1",
					FinalPrice:    decimal.NewFromInt(10000),
					CommissionFee: decimal.NewFromInt(1000),
				}
				mockStore.EXPECT().GetIdeaAndAuctionForUpdate(gomock.Any(), "idea1").Return(idea, auction, nil)
				mockStore.EXPECT().GetTransactionByIdea(gomock.Any(), "idea1").Return(existing, nil)
			},
			expectError:   false,
			expectCreated: false,
		},
		{
			name:        "lost_settlement_race_returns_existing",
			requesterID: "seller",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				expectTx(mockStore)
				idea, auction := endedIdeaAndAuction()
				existing := model.Transaction{TransactionID: "txn1", IdeaID: "idea1", BuyerID: "buyer1"}
				mockStore.EXPECT().GetIdeaAndAuctionForUpdate(gomock.Any(), "idea1").Return(idea, auction, nil)
				mockStore.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(winningBid, nil)
				mockStore.EXPECT().MarkIdeaSold(gomock.Any(), "idea1").Return(nil)
				mockStore.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("insert transaction for idea idea1: %w", auctionerrors.ErrAlreadyFinalized))
				mockStore.EXPECT().GetTransactionByIdea(gomock.Any(), "idea1").
					Return(existing, nil)
			},
			expectError:   false,
			expectCreated: false,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := repository.NewMockAuctionStore(ctrl)
			tc.mockSetup(mockStore)

			service := NewService(mockStore, clock.NewFixed(testNow))
			result, err := service.FinalizeAuction(context.Background(), "idea1", tc.requesterID)

			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectCreated, result.Created)
			require.Equal(t, "buyer1", result.Transaction.BuyerID)

			if tc.expectCreated {
				require.Equal(t, "seller", result.Transaction.SellerID)
				require.True(t, result.Transaction.FinalPrice.Equal(decimal.NewFromInt(10000)))
				// 10% of 10000, exactly
				require.True(t, result.Transaction.CommissionFee.Equal(decimal.NewFromInt(1000)),
					"commission %s, want 1000", result.Transaction.CommissionFee)
				require.Equal(t, testNow, result.Transaction.CreatedAt)
			}
		})
	}
}

// Tests PaymentIntent
func TestSettlementService_PaymentIntent(t *testing.T) {
	winningBid := model.Bid{
		BidID:     "bid1",
		AuctionID: "auction1",
		BidderID:  "buyer1",
		Amount:    decimal.RequireFromString("5500.50"),
		CreatedAt: testNow.Add(-90 * time.Minute),
	}

	tests := []struct {
		name          string
		requesterID   string
		mockSetup     func(mockStore *repository.MockAuctionStore)
		expectError   bool
		expectedError error
		expectedCents int64
	}{
		{
			name:        "winning_bidder_gets_intent",
			requesterID: "buyer1",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				idea, auction := endedIdeaAndAuction()
				mockStore.EXPECT().GetIdeaAndAuction(gomock.Any(), "idea1").Return(idea, auction, nil)
				mockStore.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(winningBid, nil)
			},
			expectedCents: 550050,
		},
		{
			name:        "auction_still_running",
			requesterID: "buyer1",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				idea, auction := endedIdeaAndAuction()
				auction.EndTime = testNow.Add(time.Hour)
				mockStore.EXPECT().GetIdeaAndAuction(gomock.Any(), "idea1").Return(idea, auction, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionNotEnded,
		},
		{
			name:        "non_winner_forbidden",
			requesterID: "buyer2",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				idea, auction := endedIdeaAndAuction()
				mockStore.EXPECT().GetIdeaAndAuction(gomock.Any(), "idea1").Return(idea, auction, nil)
				mockStore.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(winningBid, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNotWinningBidder,
		},
		{
			name:        "no_bids",
			requesterID: "buyer1",
			mockSetup: func(mockStore *repository.MockAuctionStore) {
				idea, auction := endedIdeaAndAuction()
				mockStore.EXPECT().GetIdeaAndAuction(gomock.Any(), "idea1").Return(idea, auction, nil)
				mockStore.EXPECT().GetWinningBid(gomock.Any(), "auction1").
					Return(model.Bid{}, fmt.Errorf("get winning bid for auction auction1: %w", auctionerrors.ErrNoBids))
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNoBids,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := repository.NewMockAuctionStore(ctrl)
			tc.mockSetup(mockStore)

			service := NewService(mockStore, clock.NewFixed(testNow))
			intent, err := service.PaymentIntent(context.Background(), "idea1", tc.requesterID)

			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "idea1", intent.IdeaID)
			require.Equal(t, "auction1", intent.AuctionID)
			require.Equal(t, tc.requesterID, intent.BuyerID)
			require.Equal(t, tc.expectedCents, intent.AmountCents)
			require.Equal(t, "usd", intent.Currency)
		})
	}
}
