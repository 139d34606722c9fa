// Package http exposes the aggregates over a small read-only JSON API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/cache"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/dashboard"
	applog "github.com/Anton-Biryukov-Mig/course-work-1/internal/log"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/source"
)

// Server serves the dashboard summary and the three spending reports.
// Every request aggregates over the transaction set loaded at startup;
// only the dashboard (which calls external services) is cached.
type Server struct {
	transactions   source.TransactionReader
	settings       source.SettingsReader
	assembler      *dashboard.Assembler
	dashboardCache *cache.LRUCache[dashboard.Summary]
	logger         *applog.Logger
	now            func() time.Time
}

func NewServer(
	transactions source.TransactionReader,
	settings source.SettingsReader,
	assembler *dashboard.Assembler,
	dashboardCache *cache.LRUCache[dashboard.Summary],
	logger *applog.Logger,
) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentHTTP)
	}
	return &Server{
		transactions:   transactions,
		settings:       settings,
		assembler:      assembler,
		dashboardCache: dashboardCache,
		logger:         logger,
		now:            time.Now,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(applog.RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)
	r.Get("/api/dashboard", s.handleDashboard)
	r.Get("/api/reports/category", s.handleCategoryReport)
	r.Get("/api/reports/weekday", s.handleWeekdayReport)
	r.Get("/api/reports/workday", s.handleWorkdayReport)

	return r
}

// NewHTTPServer wraps the handler in an http.Server with sane timeouts.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        s.Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
}
