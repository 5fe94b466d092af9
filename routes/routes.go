package routes

import (
	"retrofit-backend/config"
	"retrofit-backend/controllers"
	"retrofit-backend/services"
	"retrofit-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(store *services.DraftStore) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://app.retrofitquotes.ca",
			"http://localhost:3000",
			"http://localhost:8081",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Quote routes
		quotes := api.Group("/quotes")
		{
			quotes.POST("", controllers.CreateQuote)
			quotes.GET("", controllers.GetQuotes)
			quotes.GET("/:id", controllers.GetQuote)
			quotes.PUT("/:id", controllers.UpdateQuote)
			quotes.DELETE("/:id", controllers.DeleteQuote)
		}

		// Wizard draft routes
		draftController := controllers.NewDraftController(store)
		drafts := api.Group("/drafts")
		{
			drafts.POST("", draftController.CreateDraft)
			drafts.GET("/:id", draftController.GetDraft)
			drafts.POST("/:id/advance", draftController.Advance)
			drafts.POST("/:id/retreat", draftController.Retreat)
			drafts.POST("/:id/items", draftController.AddItem)
			drafts.PUT("/:id/items/:itemId", draftController.UpdateItem)
			drafts.DELETE("/:id/items/:itemId", draftController.RemoveItem)
			drafts.PUT("/:id/items/:itemId/price", draftController.SetItemPrice)
			drafts.GET("/:id/totals", draftController.GetTotals)
			drafts.GET("/:id/invoice.pdf", draftController.GetInvoicePDF)
			drafts.GET("/:id/share", draftController.GetShareText)
			drafts.POST("/:id/save", draftController.SaveDraft)
		}
		api.GET("/price-options", draftController.GetPriceOptions)

		// Material library routes
		materials := api.Group("/materials")
		{
			materials.POST("", controllers.CreateMaterial)
			materials.GET("", controllers.GetMaterials)
			materials.GET("/:id", controllers.GetMaterial)
			materials.PUT("/:id", controllers.UpdateMaterial)
			materials.DELETE("/:id", controllers.DeleteMaterial)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.PUT("/notifications", controllers.UpdateNotificationSettings)
			profile.PUT("/follow-up-template", controllers.UpdateFollowUpTemplate)
		}
	}

	return r
}
