package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		GenerationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_generation_runs_total",
			Help: "The total number of matchup generation runs.",
		}),
		MatchupsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_matchups_generated_total",
			Help: "The total number of matchups produced by generation runs.",
		}),
		ScheduleRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_schedule_runs_total",
			Help: "The total number of automatic scheduling runs.",
		}),
		MatchupsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_matchups_placed_total",
			Help: "The total number of matchups placed by the scheduler.",
		}),
		MatchupsUnplaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_matchups_unplaced_total",
			Help: "The total number of matchups the scheduler could not place.",
		}),
		ScheduleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_schedule_duration_seconds",
			Help:    "The duration of individual scheduling runs.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		AutosaveRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_autosave_runs_total",
			Help: "The total number of autosave flushes attempted.",
		}),
		AutosaveFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_autosave_failed_total",
			Help: "The total number of autosave flushes that failed.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.GenerationRuns,
		s.MatchupsGenerated,
		s.ScheduleRuns,
		s.MatchupsPlaced,
		s.MatchupsUnplaced,
		s.ScheduleDuration,
		s.AutosaveRuns,
		s.AutosaveFailed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncGenerationRuns() {
	s.GenerationRuns.Inc()
}

func (s *Service) AddMatchupsGenerated(count int) {
	s.MatchupsGenerated.Add(float64(count))
}

func (s *Service) IncScheduleRuns() {
	s.ScheduleRuns.Inc()
}

func (s *Service) AddMatchupsPlaced(count int) {
	s.MatchupsPlaced.Add(float64(count))
}

func (s *Service) AddMatchupsUnplaced(count int) {
	s.MatchupsUnplaced.Add(float64(count))
}

func (s *Service) ObserveScheduleDuration(duration float64) {
	s.ScheduleDuration.Observe(duration)
}

func (s *Service) IncAutosaveRuns() {
	s.AutosaveRuns.Inc()
}

func (s *Service) IncAutosaveFailed() {
	s.AutosaveFailed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
