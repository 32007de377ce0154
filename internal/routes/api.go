// Package routes wires handlers onto the router.
package routes

import (
	"net/http"

	"github.com/nikhilbhatia/upahaar/internal/middleware"
	"github.com/nikhilbhatia/upahaar/internal/router"
)

// RegisterAPIRoutes mounts every endpoint onto r. Probes and the metrics
// scrape endpoint skip the request-scoped middleware; the /api group gets
// request IDs, a request logger, and HTTP metrics.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Handle(http.MethodGet, "/metrics", deps.Metrics.Handler())

	apiGroup := r.Group(
		middleware.RequestID,
		middleware.WithRequestLogger(deps.Logger),
		deps.Metrics.Middleware,
	)

	apiGroup.Post("/api/tax/quote", deps.Tax.Quote)
	apiGroup.Post("/api/tax/reverse", deps.Tax.Reverse)
	apiGroup.Get("/api/tax/rates", deps.Tax.Rates)
	apiGroup.Get("/api/tax/states/{name}", deps.Tax.State)

	apiGroup.Post("/api/orders", deps.Orders.Create)
	apiGroup.Get("/api/orders/{id}", deps.Orders.Get)
	apiGroup.Get("/api/orders/{id}/invoice", deps.Orders.Invoice)
}
