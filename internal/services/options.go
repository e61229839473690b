package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogcontracts "github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/clearance_brands"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/featured_products"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/get_category"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/queries/site_stats"
	catalogrepo "github.com/light-bringer/ecofinds-storefront/internal/app/catalog/repo"
	storefrontcontracts "github.com/light-bringer/ecofinds-storefront/internal/app/storefront/contracts"
	storefrontrepo "github.com/light-bringer/ecofinds-storefront/internal/app/storefront/repo"
	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/usecases/subscribe_newsletter"
	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/usecases/track_event"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/analytics"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/ratelimit"
	httptransport "github.com/light-bringer/ecofinds-storefront/internal/transport/http"
)

// Catalog source kinds.
const (
	SourceFile    = "file"
	SourceSpanner = "spanner"
)

// Config is the subset of server configuration the container needs.
type Config struct {
	CatalogSource   string
	ExploreSeedPath string
	LandingSeedPath string
	SpannerDB       string

	RedisURL        string
	RateLimitMax    int
	RateLimitWindow time.Duration

	AnalyticsWorkers int
	AllowedOrigins   []string
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client
	Catalog       *catalogrepo.Store
	Dispatcher    *analytics.AsyncDispatcher
	Router        *gin.Engine

	logger *zap.Logger
}

// NewServiceOptions creates and wires up all application dependencies.
// The catalog is not loaded; call Catalog.Load before serving.
func NewServiceOptions(ctx context.Context, cfg Config, logger *zap.Logger) (_ *ServiceOptions, err error) {
	opts := &ServiceOptions{logger: logger}
	defer func() {
		if err != nil {
			opts.Close()
		}
	}()

	// 1. Infrastructure
	clk := clock.NewRealClock()

	source, err := opts.catalogSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RedisURL != "" {
		if opts.RedisClient, err = connectRedis(ctx, cfg.RedisURL); err != nil {
			return nil, err
		}
	}

	// 2. Repositories
	opts.Catalog = catalogrepo.NewStore(source, logger, clk)

	var (
		newsletter storefrontcontracts.NewsletterSink
		limitStore ratelimit.Store
	)
	if opts.RedisClient != nil {
		newsletter = storefrontrepo.NewRedisNewsletterSink(opts.RedisClient)
		limitStore = ratelimit.NewRedisStore(opts.RedisClient, clk)
	} else {
		logger.Warn("REDIS_URL not set, using in-process rate limiting and log-only newsletter sink")
		newsletter = storefrontrepo.NewLogNewsletterSink(logger)
		limitStore = ratelimit.NewMemoryStore(clk)
	}

	opts.Dispatcher, err = analytics.NewAsyncDispatcher(analytics.NewLogSink(logger), cfg.AnalyticsWorkers, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics dispatcher: %w", err)
	}

	// 3. Queries (read operations)
	listProductsQuery := list_products.NewQuery(opts.Catalog)
	getProductQuery := get_product.NewQuery(opts.Catalog)
	listCategoriesQuery := list_categories.NewQuery(opts.Catalog)
	getCategoryQuery := get_category.NewQuery(opts.Catalog)
	featuredProductsQuery := featured_products.NewQuery(opts.Catalog)
	clearanceBrandsQuery := clearance_brands.NewQuery(opts.Catalog)
	siteStatsQuery := site_stats.NewQuery(opts.Catalog)

	// 4. Use cases (write operations)
	subscribeUseCase := subscribe_newsletter.NewInteractor(newsletter, clk)
	trackUseCase := track_event.NewInteractor(opts.Dispatcher, clk, logger)

	// 5. HTTP handlers
	limiter := ratelimit.New(limitStore, ratelimit.Auth(cfg.RateLimitMax, cfg.RateLimitWindow), clk)

	opts.Router = httptransport.NewRouter(httptransport.RouterConfig{
		Catalog: httptransport.NewCatalogHandler(
			listProductsQuery,
			getProductQuery,
			listCategoriesQuery,
			getCategoryQuery,
			featuredProductsQuery,
			clearanceBrandsQuery,
			siteStatsQuery,
			logger,
		),
		Storefront:     httptransport.NewStorefrontHandler(subscribeUseCase, trackUseCase, logger),
		Health:         httptransport.NewHealthHandler(opts.Catalog),
		WriteLimit:     ratelimit.Middleware(limiter, logger),
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger.Named("http"),
	})

	return opts, nil
}

func (s *ServiceOptions) catalogSource(ctx context.Context, cfg Config) (catalogcontracts.Source, error) {
	switch cfg.CatalogSource {
	case SourceFile, "":
		return catalogrepo.NewFileSource(cfg.ExploreSeedPath, cfg.LandingSeedPath), nil

	case SourceSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		s.SpannerClient = client
		// Landing projections are not stored in Spanner.
		return catalogrepo.NewSpannerSource(client, catalogrepo.NewFileSource("", cfg.LandingSeedPath)), nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

func connectRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Dispatcher != nil {
		if err := s.Dispatcher.Close(analytics.DefaultDeliveryTimeout); err != nil {
			s.logger.Warn("analytics dispatcher did not drain", zap.Error(err))
		}
	}
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
