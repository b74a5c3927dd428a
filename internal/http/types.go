package http

import (
	"net/http"

	"github.com/mauv0809/league-scheduler/internal/config"
	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/metrics"
	"github.com/mauv0809/league-scheduler/internal/planner"
)

type Server struct {
	Planner        planner.Service
	Store          league.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
