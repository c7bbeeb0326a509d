package server

import (
	"net/http"

	"idea-auction/internal/auth"
	handler "idea-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	biddingSvc handler.BiddingServiceInterface,
	settlementSvc handler.SettlementServiceInterface,
	querySvc handler.QueryServiceInterface,
	verifier auth.JWT,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging + latency metrics

	auctionHandler := handler.NewAuctionHandler(biddingSvc, settlementSvc, querySvc)
	authRequired := auth.Middleware(verifier)

	auctions := router.Group("/auctions")
	{
		auctions.GET("/active", auctionHandler.GetActiveAuctionsHandler)
		auctions.GET("/:idea_id", auctionHandler.GetAuctionDetailHandler)
		auctions.POST("/:idea_id/bids", authRequired, auctionHandler.PlaceBidHandler)
		auctions.POST("/:idea_id/finalize", authRequired, auctionHandler.FinalizeAuctionHandler)
	}

	router.GET("/transactions", auctionHandler.GetTransactionsHandler)
	router.POST("/payment-intents/:idea_id", authRequired, auctionHandler.CreatePaymentIntentHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
