package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"family-brief-service/internal/http/handlers"
	"family-brief-service/internal/http/middleware"
	"family-brief-service/internal/http/ui"
	"family-brief-service/internal/metrics"
)

// NewRouter registers the dashboard, API, and probe routes.
func NewRouter(handler *handlers.Handler, renderer *ui.Renderer, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(logger, recorder, next)
	})

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	if renderer != nil {
		r.Get("/", renderer.Dashboard)
		r.Handle("/static/*", ui.Static())
	}

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/weather", handler.Weather)
		r.Get("/air", handler.AirQuality)
		r.Get("/news", handler.Headlines)
		r.Get("/sports", handler.Sports)
		r.Route("/lists", func(r chi.Router) {
			r.Get("/grocery", handler.GroceryList)
			r.Put("/grocery", handler.SaveGroceryList)
			r.Get("/todo", handler.TodoList)
			r.Put("/todo", handler.SaveTodoList)
		})
	})

	return r
}
