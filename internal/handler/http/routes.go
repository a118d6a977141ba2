package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/", h.root)
			r.Get("/health", h.health)

			r.Post("/auth/register", h.register)
			r.Post("/auth/verify-otp", h.verifyOTP)
			r.Post("/auth/login", h.login)

			r.Post("/climate/data", h.climateData)
			r.Post("/climate/scenario", h.scenario)
			r.Get("/climate/layers", h.layers)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)
			r.Put("/user/language", h.updateLanguage)

			r.Post("/chat", h.chat)
			r.Get("/chat/history", h.chatHistory)
			r.Post("/recommendations", h.recommendations)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
