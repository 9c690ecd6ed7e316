package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/pcbuild-backend/config"
	"github.com/ikkim/pcbuild-backend/internal/app/controller"
	"github.com/ikkim/pcbuild-backend/internal/middleware"
)

type Router struct {
	quoteController          *controller.QuoteController
	adminController          *controller.AdminController
	catalogController        *controller.CatalogController
	additionalItemController *controller.AdditionalItemController
	bundleController         *controller.BundleController
	documentController       *controller.DocumentController
	commissionController     *controller.CommissionController
	adminMiddleware          *middleware.AdminMiddleware
	config                   *config.Config
}

func NewRouter(
	quoteController *controller.QuoteController,
	adminController *controller.AdminController,
	catalogController *controller.CatalogController,
	additionalItemController *controller.AdditionalItemController,
	bundleController *controller.BundleController,
	documentController *controller.DocumentController,
	commissionController *controller.CommissionController,
	adminMiddleware *middleware.AdminMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		quoteController:          quoteController,
		adminController:          adminController,
		catalogController:        catalogController,
		additionalItemController: additionalItemController,
		bundleController:         bundleController,
		documentController:       documentController,
		commissionController:     commissionController,
		adminMiddleware:          adminMiddleware,
		config:                   cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORS(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "PC Build API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/quotes", r.quoteController.CreateQuote)
		v1.POST("/admin/login", r.adminController.Login)

		admin := v1.Group("/admin")
		admin.Use(r.adminMiddleware.RequireAdmin())
		{
			admin.PUT("/passphrase", r.adminController.ChangePassphrase)

			catalog := admin.Group("/catalog")
			{
				catalog.GET("", r.catalogController.GetCatalog)
				catalog.GET("/:category", r.catalogController.ListComponents)
				catalog.POST("/:category", r.catalogController.CreateComponent)
				catalog.POST("/:category/import", r.catalogController.ImportComponents)
				catalog.PUT("/:category/:id", r.catalogController.UpdateComponent)
				catalog.DELETE("/:category/:id", r.catalogController.DeleteComponent)
			}

			items := admin.Group("/additional-items")
			{
				items.GET("", r.additionalItemController.ListItems)
				items.POST("", r.additionalItemController.CreateItem)
				items.POST("/import", r.additionalItemController.ImportItems)
				items.GET("/settlements", r.additionalItemController.GetSettlements)
				items.PUT("/:id", r.additionalItemController.UpdateItem)
				items.DELETE("/:id", r.additionalItemController.DeleteItem)
			}

			bundles := admin.Group("/bundles")
			{
				bundles.GET("", r.bundleController.ListBundles)
				bundles.POST("", r.bundleController.CreateBundle)
				bundles.GET("/quotes", r.bundleController.ListQuotes)
				bundles.GET("/:id", r.bundleController.GetBundle)
				bundles.PUT("/:id", r.bundleController.UpdateBundle)
				bundles.DELETE("/:id", r.bundleController.DeleteBundle)
				bundles.PATCH("/:id/price", r.bundleController.RepriceBundle)
				bundles.GET("/:id/documents", r.documentController.GetDocuments)
				bundles.GET("/:id/documents/export", r.documentController.ExportDocuments)
				bundles.POST("/:id/documents/publish", r.documentController.PublishDocuments)
			}

			commission := admin.Group("/commission-rates")
			{
				commission.GET("", r.commissionController.GetRates)
				commission.PUT("", r.commissionController.UpdateRates)
			}
		}
	}

	return router
}
