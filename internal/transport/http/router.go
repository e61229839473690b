// Package http exposes the storefront over HTTP with gin.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds everything the router mounts.
type RouterConfig struct {
	Catalog    *CatalogHandler
	Storefront *StorefrontHandler
	Health     *HealthHandler

	// WriteLimit guards the state-mutating endpoints. Nil disables it.
	WriteLimit gin.HandlerFunc

	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(
		RequestID(),
		Recovery(cfg.Logger),
		AccessLog(cfg.Logger),
		CORS(cfg.AllowedOrigins),
	)

	r.GET("/healthz", cfg.Health.Health)

	// Unprefixed aliases kept for older clients.
	r.GET("/products", cfg.Catalog.ListProducts)
	r.GET("/categories", cfg.Catalog.ListCategories)

	api := r.Group("/api")
	{
		api.GET("/products", cfg.Catalog.ListProducts)
		api.GET("/products/:id", cfg.Catalog.GetProduct)
		api.GET("/categories", cfg.Catalog.ListCategories)
		api.GET("/categories/:slug", cfg.Catalog.GetCategory)
		api.GET("/featured-products", cfg.Catalog.FeaturedProducts)
		api.GET("/clearance-brands", cfg.Catalog.ClearanceBrands)
		api.GET("/site-stats", cfg.Catalog.SiteStats)
	}

	writes := api.Group("")
	if cfg.WriteLimit != nil {
		writes.Use(cfg.WriteLimit)
	}
	{
		writes.POST("/newsletter", cfg.Storefront.Subscribe)
		writes.POST("/analytics/track", cfg.Storefront.Track)
	}

	return r
}
