package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-path-planner/internal/app/config"
	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/ijalalfrz/flight-path-planner/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-path-planner/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.RateLimiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/routes", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			httptransport.RateLimit(limiter, cfg.HTTP.RateLimit),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.RouteEndpoint.SearchRoutes,
			httptransport.DecodeRequest[dto.RouteRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/cities", httptransport.MakeHandlerFunc(
			endpts.RouteEndpoint.ListCities,
			httptransport.NoRequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}
