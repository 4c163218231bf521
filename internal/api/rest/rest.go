package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/patronly/boost-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Deposit submission (requires authentication)
		v1.POST("/deposits", middleware.Auth(authCfg), handler.SubmitDeposit)

		// Campaign submission with terms (requires authentication)
		v1.POST("/campaigns", middleware.Auth(authCfg), handler.SubmitCampaign)

		// Deposit endpoints (public read access)
		v1.GET("/deposits/:id", handler.GetDeposit)
		v1.GET("/deposits", handler.ListDeposits)

		// Campaign endpoints (public read access)
		v1.GET("/campaigns/:id", handler.GetCampaign)
		v1.GET("/campaigns", handler.ListCampaigns)

		// Activity feed (public read access)
		v1.GET("/activity", handler.ListActivity)

		// Leaderboard (public read access)
		v1.GET("/leaderboard", handler.GetLeaderboard)
	}
}
