package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"idea-auction/internal/auth"
	bidding "idea-auction/internal/biddingService"
	model "idea-auction/internal/models"
	query "idea-auction/internal/queryService"
	"idea-auction/internal/repository"
	"idea-auction/internal/server"
	settlement "idea-auction/internal/settlementService"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testVerifier = auth.JWT{Secret: []byte("integration-secret"), TokenTTL: time.Hour}

// stepClock is a settable clock so tests can move past auction deadlines
// without sleeping.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock(start time.Time) *stepClock {
	return &stepClock{now: start.UTC()}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SetupTestRouter initializes the full router over the in-memory repository.
func SetupTestRouter(clk *stepClock) (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	biddingSvc := bidding.NewService(repo, clk, 3)
	settlementSvc := settlement.NewService(repo, clk)
	querySvc := query.NewService(repo)

	router := server.SetupRouter(biddingSvc, settlementSvc, querySvc, testVerifier)
	return router, repo
}

// SeedIdeaWithAuction inserts an idea and its auction directly into the store.
func SeedIdeaWithAuction(t *testing.T, repo *repository.MemoryRepo, ideaID, authorID string, startingPrice int64, start, end time.Time) {
	t.Helper()
	err := repo.CreateIdeaWithAuction(context.Background(), model.Idea{
		IdeaID:        ideaID,
		Title:         "Idea " + ideaID,
		Description:   "An idea listed for auction",
		Category:      "tech",
		Status:        model.StatusAuction,
		StartingPrice: decimal.NewFromInt(startingPrice),
		AuthorID:      authorID,
		AuthorName:    "Author of " + ideaID,
		CreatedAt:     start,
	}, model.Auction{
		AuctionID:  "auction-" + ideaID,
		IdeaID:     ideaID,
		StartTime:  start,
		EndTime:    end,
		CurrentBid: decimal.NewFromInt(startingPrice),
	})
	require.NoError(t, err)
}

// BearerFor mints a signed token for the given identity.
func BearerFor(t *testing.T, userID, name string) string {
	t.Helper()
	claims := auth.Claims{Name: name}
	claims.Subject = userID
	token, _, err := testVerifier.Sign(claims)
	require.NoError(t, err)
	return "Bearer " + token
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, bearer string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, bearer string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error
	if body != nil {
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	w := ExecuteRequest(t, router, method, url, bearer, reqBody)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "response body: %s", w.Body.String())
	return parsed, w
}
