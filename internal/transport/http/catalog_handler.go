package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/params"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/clearance_brands"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/featured_products"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/get_category"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/site_stats"
)

// Cache-Control values of the cacheable read endpoints.
const (
	cacheCategories = "public, max-age=3600"
	cacheFeatured   = "public, max-age=300, stale-while-revalidate=600"
	cacheClearance  = "public, max-age=600, stale-while-revalidate=1200"
	cacheSiteStats  = "public, max-age=900, stale-while-revalidate=1800"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	listProducts     *list_products.Query
	getProduct       *get_product.Query
	listCategories   *list_categories.Query
	getCategory      *get_category.Query
	featuredProducts *featured_products.Query
	clearanceBrands  *clearance_brands.Query
	siteStats        *site_stats.Query
	logger           *zap.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	listCategories *list_categories.Query,
	getCategory *get_category.Query,
	featuredProducts *featured_products.Query,
	clearanceBrands *clearance_brands.Query,
	siteStats *site_stats.Query,
	logger *zap.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		listProducts:     listProducts,
		getProduct:       getProduct,
		listCategories:   listCategories,
		getCategory:      getCategory,
		featuredProducts: featuredProducts,
		clearanceBrands:  clearanceBrands,
		siteStats:        siteStats,
		logger:           logger,
	}
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	criteria, err := params.Parse(c.Request.URL.Query())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	page, err := h.listProducts.Execute(c.Request.Context(), &list_products.Request{Criteria: criteria})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{ProductID: c.Param("id")})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Cache-Control", cacheCategories)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory handles GET /api/categories/:slug. Listing parameters apply to
// the category's products.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	criteria, err := params.Parse(c.Request.URL.Query())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	resp, err := h.getCategory.Execute(c.Request.Context(), &get_category.Request{
		Slug:     c.Param("slug"),
		Criteria: criteria,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FeaturedProducts handles GET /api/featured-products.
func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	req := &featured_products.Request{Sort: c.Query(params.Sort)}
	if raw := c.Query(params.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, h.logger, domain.NewValidationError(params.Limit, raw, "must be an integer"))
			return
		}
		req.Limit = limit
	}

	products, err := h.featuredProducts.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Cache-Control", cacheFeatured)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ClearanceBrands handles GET /api/clearance-brands.
func (h *CatalogHandler) ClearanceBrands(c *gin.Context) {
	brands, err := h.clearanceBrands.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Cache-Control", cacheClearance)
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// SiteStats handles GET /api/site-stats.
func (h *CatalogHandler) SiteStats(c *gin.Context) {
	stats, err := h.siteStats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Cache-Control", cacheSiteStats)
	c.JSON(http.StatusOK, stats)
}
