package routes

import (
	"net/http"

	"github.com/templui/goalfund/internal/app"
	"github.com/templui/goalfund/internal/handler"
	"github.com/templui/goalfund/internal/metrics"
	"github.com/templui/goalfund/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	goal := handler.NewGoalHandler(app.GoalService)

	mux := http.NewServeMux()

	// Operations
	mux.HandleFunc("GET /api/health", health.Health)
	mux.Handle("GET /metrics", metrics.Handler(app.Registry))

	// Goals
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("GET /api/goals/{id}", goal.Show)
	mux.HandleFunc("GET /api/goals/ref/{code}", goal.ShowByReference)
	mux.HandleFunc("POST /api/goals/{id}/contributors", goal.AddContributor)
	mux.HandleFunc("POST /api/goals/{id}/payments", goal.RecordPayment)

	// 404
	mux.HandleFunc("GET /{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	middlewares := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Recover,
	}
	if app.WriteLimiter != nil {
		middlewares = append(middlewares, app.WriteLimiter.LimitWrites)
	}
	// Metrics must wrap the mux directly to see the matched pattern
	middlewares = append(middlewares, middleware.Metrics(app.HTTPMetrics))

	return middleware.Chain(mux, middlewares...)
}
