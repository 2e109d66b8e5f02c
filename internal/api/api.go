package api

import (
	"net/http"

	airdropHandler "dropz-server/internal/airdrop/handler"
	authHandler "dropz-server/internal/auth/handler"
	"dropz-server/internal/leaderboard"
	"dropz-server/internal/ratelimit"
	transactionsHandler "dropz-server/internal/transactions/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	router              *gin.RouterGroup
	airdropHandler      airdropHandler.Handler
	transactionsHandler transactionsHandler.Handler
	authHandler         authHandler.Handler
	leaderboardHandler  leaderboard.Handler
	rateLimiter         *ratelimit.Service
}

func New(router *gin.RouterGroup, airdropHandler airdropHandler.Handler, transactionsHandler transactionsHandler.Handler, authHandler authHandler.Handler, leaderboardHandler leaderboard.Handler, rateLimiter *ratelimit.Service) API {
	return API{
		router:              router,
		airdropHandler:      airdropHandler,
		transactionsHandler: transactionsHandler,
		authHandler:         authHandler,
		leaderboardHandler:  leaderboardHandler,
		rateLimiter:         rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.Metrics()

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/register", a.authHandler.HandleRegister)
		authGroup.POST("/login", a.authHandler.HandleLogin)
		authGroup.GET("/me", a.authHandler.AuthMiddleware(), a.authHandler.HandleGetMe)

		limited := a.rateLimiter.Middleware()

		airdropGroup := apiGroup.Group("/airdrops")
		airdropGroup.POST("", limited, a.airdropHandler.HandleCreateAirdrop)
		airdropGroup.GET("", a.airdropHandler.HandleListAirdrops)
		airdropGroup.GET("/search", a.airdropHandler.HandleSearchAirdrops)
		airdropGroup.GET("/owner/:owner", a.airdropHandler.HandleGetAirdropsByOwner)
		airdropGroup.GET("/:airdrop_id", a.airdropHandler.HandleGetAirdrop)
		airdropGroup.PATCH("/:airdrop_id/status", limited, a.airdropHandler.HandleUpdateStatus)
		airdropGroup.POST("/:airdrop_id/join", limited, a.airdropHandler.HandleJoin)
		airdropGroup.POST("/:airdrop_id/complete-task", limited, a.airdropHandler.HandleCompleteTask)
		airdropGroup.POST("/:airdrop_id/checkin", limited, a.airdropHandler.HandleDailyCheckin)
		airdropGroup.POST("/:airdrop_id/claim", limited, a.airdropHandler.HandleClaim)
		airdropGroup.GET("/:airdrop_id/participants", a.airdropHandler.HandleListParticipants)
		airdropGroup.GET("/:airdrop_id/participants/:wallet", a.airdropHandler.HandleGetParticipant)
		airdropGroup.GET("/:airdrop_id/claimable/:wallet", a.airdropHandler.HandleGetClaimableAmount)
		airdropGroup.GET("/:airdrop_id/leaderboard", a.leaderboardHandler.HandleGetLeaderboard)
		airdropGroup.GET("/:airdrop_id/leaderboard/:wallet", a.leaderboardHandler.HandleGetWalletRank)

		transactionsGroup := apiGroup.Group("/transactions")
		transactionsGroup.POST("", a.transactionsHandler.HandleCreateTransaction)
		transactionsGroup.GET("/:wallet", a.transactionsHandler.HandleGetWalletHistory)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

func (a *API) Metrics() {
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
