package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"idea-auction/config"
	"idea-auction/internal/auth"
	bidding "idea-auction/internal/biddingService"
	"idea-auction/internal/clock"
	"idea-auction/internal/models"
	query "idea-auction/internal/queryService"
	"idea-auction/internal/repository"
	"idea-auction/internal/repository/postgres"
	"idea-auction/internal/server"
	settlement "idea-auction/internal/settlementService"
	"idea-auction/migrations"
	"idea-auction/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open ledger store", map[string]any{"error": err.Error()})
	}
	defer closeStore()

	clk := clock.NewSystem()
	biddingSvc := bidding.NewService(store, clk, cfg.BidRetryAttempts)
	settlementSvc := settlement.NewService(store, clk)
	querySvc := query.NewService(store)

	verifier := auth.JWT{Secret: []byte(cfg.JWTSecret), TokenTTL: cfg.TokenTTL}
	router := server.SetupRouter(biddingSvc, settlementSvc, querySvc, verifier)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	utils.Info("starting auction server", map[string]any{"port": cfg.Port})

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("server error", map[string]any{"error": err.Error()})
		}
	case <-stopCtx.Done():
		utils.Info("shutdown signal received, stopping server", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Error("server shutdown error", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}

// openStore builds the ledger store from config: Postgres with migrations
// applied when DATABASE_URL is set, otherwise the seeded in-memory store.
func openStore(cfg config.Config) (repository.AuctionStore, func(), error) {
	if cfg.DatabaseURL == "" {
		utils.Warn("DATABASE_URL not set, using in-memory store with sample auctions", nil)
		repo := repository.NewMemoryRepo()
		seedSampleAuctions(repo)
		return repo, func() {}, nil
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to db: %w", err)
	}
	if err := pool.Ping(startupCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}

	return postgres.NewStore(pool), pool.Close, nil
}

// seedSampleAuctions adds sample ideas to the in-memory store
func seedSampleAuctions(repo *repository.MemoryRepo) {
	now := time.Now().UTC()
	samples := []struct {
		title string
		price decimal.Decimal
	}{
		{"Solar-powered bike lock", decimal.NewFromInt(5000)},
		{"Pocket language tutor", decimal.NewFromInt(12000)},
		{"Compostable phone case", decimal.NewFromInt(3500)},
	}

	for _, s := range samples {
		ideaID := utils.GenerateID()
		idea := models.Idea{
			IdeaID:        ideaID,
			Title:         s.title,
			Description:   s.title + " concept listing",
			Category:      "sample",
			Status:        models.StatusAuction,
			StartingPrice: s.price,
			AuthorID:      "seed-author",
			AuthorName:    "Seed Author",
			CreatedAt:     now,
		}
		auction := models.Auction{
			AuctionID:  utils.GenerateID(),
			IdeaID:     ideaID,
			StartTime:  now,
			EndTime:    now.Add(24 * time.Hour),
			CurrentBid: s.price,
		}
		if err := repo.CreateIdeaWithAuction(context.Background(), idea, auction); err != nil {
			utils.Warn("failed to seed sample auction", map[string]any{"title": s.title, "error": err.Error()})
		}
	}
}
