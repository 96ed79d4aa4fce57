package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(TracingMiddleware)
	r.Use(LoggingMiddleware(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)
	r.Handle("/metrics", s.metrics.Handler())

	r.Post("/calculate", s.Calculate)
	r.Get("/history", s.History)
	r.Post("/ask", s.Ask)

	return r
}
