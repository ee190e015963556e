package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/finverde/Family-Finance-Backend/internal/api/handlers"
	custommiddleware "github.com/finverde/Family-Finance-Backend/internal/api/middleware"
	"github.com/finverde/Family-Finance-Backend/internal/config"
	"github.com/finverde/Family-Finance-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	dashboardService *service.DashboardService,
	wealthService *service.WealthService,
	insightService *service.InsightService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		dashboardHandler := handlers.NewDashboardHandler(dashboardService, wealthService)
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(custommiddleware.RequireOwnerID)
			r.Get("/summary", dashboardHandler.Summary)
			r.Get("/wealth", dashboardHandler.Wealth)
		})
		r.With(custommiddleware.RequireOwnerID).Get("/income/breakdown", dashboardHandler.IncomeBreakdown)
		r.With(custommiddleware.RequireOwnerID).Get("/expenses/breakdown", dashboardHandler.ExpenseBreakdown)

		r.Route("/insights", func(r chi.Router) {
			insightHandler := handlers.NewInsightHandler(insightService)
			r.With(custommiddleware.RequireOwnerID).Get("/", insightHandler.Insights)
			r.With(custommiddleware.APIKeyMiddleware).Post("/generate", insightHandler.Generate)
		})
	})

	return r
}
