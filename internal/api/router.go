package api

import (
	_ "priceoracle/docs"
	"priceoracle/internal/oracle/handler"
	httpserver "priceoracle/internal/platform/http"
	"priceoracle/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

// NewRouter mounts the oracle API. limiter may be nil.
func NewRouter(priceHandler *handler.Handler, limiter *httpserver.RateLimiter) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(httpserver.RequestLogger)
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Method("GET", "/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Get("/api/v1/price", priceHandler.GetPrice)
		r.Get("/price", priceHandler.GetPrice)
	})
	router.Get("/api/v1/oracle/public-key", priceHandler.GetPublicKey)
	return router
}
