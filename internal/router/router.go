package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gascompare/docs"
	"gascompare/internal/handler"
	"gascompare/internal/middleware"
	"gascompare/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Extraction *handler.ExtractionHandler
	Offer      *handler.OfferHandler
	Comparison *handler.ComparisonHandler
	Document   *handler.DocumentHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, allowedOrigins []string, maxMultipartMemory int64) *gin.Engine {
	r := gin.New()
	if maxMultipartMemory > 0 {
		r.MaxMultipartMemory = maxMultipartMemory
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require valid JWT
	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(authSvc))

	v1.POST("/extractions", h.Extraction.Extract)

	offers := v1.Group("/offers")
	offers.GET("", h.Offer.List)
	offers.POST("", h.Offer.Create)
	offers.PUT("/:id", h.Offer.Update)
	offers.DELETE("/:id", h.Offer.Delete)

	comparison := v1.Group("/comparison")
	comparison.GET("", h.Comparison.Compare)
	comparison.GET("/export", h.Comparison.Export)

	documents := v1.Group("/documents")
	documents.GET("", h.Document.List)
	documents.GET("/:id/content", h.Document.Download)
	documents.DELETE("/:id", h.Document.Delete)

	return r
}
