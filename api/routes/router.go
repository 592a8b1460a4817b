package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kamaubrian/sokolink-backend/api/controllers"
	"github.com/kamaubrian/sokolink-backend/api/middleware"
	"github.com/kamaubrian/sokolink-backend/internal/auth"
	"github.com/kamaubrian/sokolink-backend/internal/cart"
	"github.com/kamaubrian/sokolink-backend/internal/catalog"
	checkoutsvc "github.com/kamaubrian/sokolink-backend/internal/checkout"
	"github.com/kamaubrian/sokolink-backend/internal/orders"
	"github.com/kamaubrian/sokolink-backend/pkg/auth/session"
	"github.com/kamaubrian/sokolink-backend/pkg/config"
	"github.com/kamaubrian/sokolink-backend/pkg/db"
	"github.com/kamaubrian/sokolink-backend/pkg/logger"
	"github.com/kamaubrian/sokolink-backend/pkg/metrics"
	"github.com/kamaubrian/sokolink-backend/pkg/redis"
)

// Deps collects everything the HTTP surface needs. The caller owns
// construction and teardown of each dependency.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       db.Pinger
	RedisClient    *redis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	Gatherer       prometheus.Gatherer

	AuthService     auth.Service
	RegisterService auth.RegisterService
	CatalogService  catalog.Service
	CartService     cart.Service
	CheckoutService checkoutsvc.Service
	OrdersService   orders.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	// typed-nil guard so optional redis wiring degrades cleanly
	var idemStore redis.IdempotencyStore
	var cachePinger redis.Pinger
	if deps.RedisClient != nil {
		idemStore = deps.RedisClient
		cachePinger = deps.RedisClient
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, cachePinger))
	})

	metricsHandler := promhttp.Handler()
	if deps.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.Idempotency(idemStore, cfg.Checkout, logg)).
			Post("/register", controllers.AuthRegister(deps.RegisterService, deps.AuthService, logg))
		r.Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.JWT, logg))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductList(deps.CatalogService, logg))
		// alias kept for storefront clients that call a dedicated search path
		r.Get("/search", controllers.ProductList(deps.CatalogService, logg))
		r.Get("/categories", controllers.ProductCategories(deps.CatalogService, logg))
		r.Get("/{productId}", controllers.ProductDetail(deps.CatalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
			r.Post("/", controllers.ProductCreate(deps.CatalogService, logg))
			r.Patch("/{productId}", controllers.ProductUpdate(deps.CatalogService, logg))
			r.Delete("/{productId}", controllers.ProductDelete(deps.CatalogService, logg))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(middleware.Idempotency(idemStore, cfg.Checkout, logg))

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.CartService, logg))
			r.Delete("/", controllers.CartClear(deps.CartService, logg))
			r.Post("/items", controllers.CartAddItem(deps.CartService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(deps.CartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.CartService, logg))
		})

		r.Post("/api/v1/checkout", controllers.Checkout(deps.CheckoutService, logg))

		r.Route("/api/v1/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(deps.OrdersService, logg))
			r.Get("/{orderId}", controllers.OrderDetail(deps.OrdersService, logg))
			r.Get("/{orderId}/receipt", controllers.OrderReceipt(deps.OrdersService, logg))
		})
	})

	return r
}
