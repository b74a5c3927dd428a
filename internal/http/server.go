package http

import (
	"net/http"

	"github.com/mauv0809/league-scheduler/internal/config"
	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/metrics"
	"github.com/mauv0809/league-scheduler/internal/planner"
)

func NewServer(plannerSvc planner.Service, store league.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Planner:        plannerSvc,
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/generate-matchups", Chain(s.GenerateMatchupsHandler(), paramsMiddleware))
	s.Router.Handle("/regenerate-matchups", Chain(s.RegenerateMatchupsHandler(), paramsMiddleware))
	s.Router.Handle("/generate-schedule", Chain(s.GenerateScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/save-schedule", Chain(s.SaveScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/schedule", Chain(s.GetScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/capacity", Chain(s.CapacityHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
