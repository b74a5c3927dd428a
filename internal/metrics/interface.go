package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncGenerationRuns()
	AddMatchupsGenerated(count int)
	IncScheduleRuns()
	AddMatchupsPlaced(count int)
	AddMatchupsUnplaced(count int)
	ObserveScheduleDuration(duration float64)
	IncAutosaveRuns()
	IncAutosaveFailed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
