package api

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ozlemtrn/oynaogren/internal/config"
	"github.com/ozlemtrn/oynaogren/internal/core"
	"github.com/ozlemtrn/oynaogren/internal/middleware"
)

// SetupRoutes wires all middleware and API routes onto the router.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	authClient *auth.Client,
	progressService core.ProgressService,
	livesService core.LivesService,
	billingService core.BillingService,
	storyService core.StoryService,
) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware(appConfig))

	progressHandler := NewProgressHandler(progressService)
	livesHandler := NewLivesHandler(progressService, livesService)
	billingHandler := NewBillingHandler(billingService)
	storyHandler := NewStoryHandler(storyService)
	catalogHandler := NewCatalogHandler()

	authMiddleware := middleware.NewAuthMiddleware(authClient)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stripe calls this directly; it authenticates with its signature header,
	// not a Firebase token.
	router.POST("/api/v1/billing/webhooks/stripe", billingHandler.StripeWebhookHandler)

	// Static content, no user state involved.
	router.GET("/api/v1/catalog/units", catalogHandler.ListUnitsHandler)
	router.GET("/api/v1/catalog/questions", catalogHandler.ListQuestionsHandler)

	apiV1 := router.Group("/api/v1")
	apiV1.Use(authMiddleware.VerifyToken())
	{
		progress := apiV1.Group("/progress")
		{
			progress.POST("/initialize", progressHandler.InitializeHandler)
			progress.GET("/me", progressHandler.GetProgressHandler)
			progress.GET("/map", progressHandler.GetMapHandler)
			progress.POST("/answers", progressHandler.SubmitAnswerHandler)
			progress.POST("/answers/correct", progressHandler.RecordCorrectAnswerHandler)
			progress.POST("/advance", progressHandler.AdvanceHandler)
		}

		lives := apiV1.Group("/lives")
		{
			lives.POST("/deduct", livesHandler.DeductLifeHandler)
			lives.POST("/regenerate", livesHandler.RegenerateHandler)
			lives.POST("/purchase", livesHandler.PurchaseHandler)
		}

		billing := apiV1.Group("/billing")
		{
			billing.POST("/create-checkout-session", billingHandler.CreateCheckoutSessionHandler)
		}

		stories := apiV1.Group("/stories")
		{
			stories.GET("", storyHandler.ListStoriesHandler)
			stories.POST("/:storyId/complete", storyHandler.CompleteStoryHandler)
		}
	}
}
