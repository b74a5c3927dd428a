package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	GenerationRuns     prometheus.Counter
	MatchupsGenerated  prometheus.Counter
	ScheduleRuns       prometheus.Counter
	MatchupsPlaced     prometheus.Counter
	MatchupsUnplaced   prometheus.Counter
	ScheduleDuration   prometheus.Histogram
	AutosaveRuns       prometheus.Counter
	AutosaveFailed     prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
