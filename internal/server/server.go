// Package server exposes the record collection over a small JSON API.
//
// Routes:
//
//	GET  /health                 load status and collection size
//	GET  /api/facets             period, campus and location options
//	GET  /api/locations?campus=  location options for one campus
//	GET  /api/items?...          filtered records (format=html for cards)
//	POST /api/refresh            re-fetch the sheet
//	GET  /metrics                Prometheus exposition
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/filter"
	"github.com/lostfound-tw/lostfound/internal/logger"
	"github.com/lostfound-tw/lostfound/internal/metrics"
	"github.com/lostfound-tw/lostfound/internal/store"
)

// Server serves the current contents of a store.Store.
type Server struct {
	store      *store.Store
	load       store.Loader
	engine     *filter.Engine
	categories *facet.Categories
	metrics    *metrics.Metrics
	log        *logger.Logger
	location   *time.Location
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records evaluations on m and serves it on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLocation sets the zone date bounds are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(s *Server) {
		if loc != nil {
			s.location = loc
		}
	}
}

// New creates a Server. load is used by refreshes; categories drive facets
// and the location filter.
func New(st *store.Store, load store.Loader, categories *facet.Categories, opts ...Option) *Server {
	if categories == nil {
		categories = facet.DefaultCategories()
	}
	s := &Server{
		store:      st,
		load:       load,
		engine:     filter.NewEngine(categories),
		categories: categories,
		log:        logger.Default(),
		location:   time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes builds the chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/facets", s.facets)
		r.Get("/locations", s.locations)
		r.Get("/items", s.items)
		r.Post("/refresh", s.refresh)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.log.Debug("HTTP request", logger.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		})
	})
}
