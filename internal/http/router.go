package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/products-msv/docs"
	"github.com/rogerio-castellano/products-msv/internal/auth"
	"github.com/rogerio-castellano/products-msv/internal/http/handlers"
	rl "github.com/rogerio-castellano/products-msv/internal/http/rate_limiter"
	"github.com/rogerio-castellano/products-msv/internal/metrics"
)

type RouterConfig struct {
	Handlers *handlers.Handlers
	// Auth guards the mutating routes when set.
	Auth *auth.Authenticator
	// RateLimiter throttles every API route when set.
	RateLimiter *rl.Limiter
	Logger      *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	h := cfg.Handlers
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/ping", h.PingHandler)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Middleware)
		}

		r.Post("/login", h.LoginHandler)

		r.Get("/api/products/{sku}", h.GetProductHandler)
		r.Get("/api/inventories/low-stock", h.LowStockHandler)
		r.Get("/api/inventories/summary", h.SummaryHandler)
		r.Get("/api/inventories/product/{sku}/movements", h.GetMovementsHandler)

		r.Group(func(r chi.Router) {
			if cfg.Auth != nil {
				r.Use(AuthMiddleware(cfg.Auth))
			}

			r.Post("/api/products", h.CreateProductHandler)
			r.Patch("/api/inventories/product/{sku}", h.AddStockHandler)
			r.Post("/api/orders", h.OrderProductsHandler)
		})
	})

	return r
}
