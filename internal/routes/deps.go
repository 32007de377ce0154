package routes

import (
	"log/slog"

	"github.com/nikhilbhatia/upahaar/internal/handler/api"
	"github.com/nikhilbhatia/upahaar/internal/middleware"
)

// APIDeps carries the handlers and middleware the API routes need.
type APIDeps struct {
	Logger  *slog.Logger
	Metrics *middleware.Metrics
	Tax     *api.TaxHandler
	Orders  *api.OrderHandler
	Health  *api.HealthHandler
}
