package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	generationRuns    int
	matchupsGenerated int
	scheduleRuns      int
	matchupsPlaced    int
	matchupsUnplaced  int
	scheduleDurations []float64
	autosaveRuns      int
	autosaveFailed    int
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		scheduleDurations: make([]float64, 0),
	}
}

func (m *Mock) IncGenerationRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generationRuns++
}

func (m *Mock) AddMatchupsGenerated(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchupsGenerated += count
}

func (m *Mock) IncScheduleRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleRuns++
}

func (m *Mock) AddMatchupsPlaced(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchupsPlaced += count
}

func (m *Mock) AddMatchupsUnplaced(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchupsUnplaced += count
}

func (m *Mock) ObserveScheduleDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleDurations = append(m.scheduleDurations, duration)
}

func (m *Mock) IncAutosaveRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autosaveRuns++
}

func (m *Mock) IncAutosaveFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autosaveFailed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// GenerationRuns returns the number of times IncGenerationRuns was called.
func (m *Mock) GenerationRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generationRuns
}

// MatchupsGenerated returns the running total passed to AddMatchupsGenerated.
func (m *Mock) MatchupsGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchupsGenerated
}

// ScheduleRuns returns the number of times IncScheduleRuns was called.
func (m *Mock) ScheduleRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduleRuns
}

// MatchupsPlaced returns the running total passed to AddMatchupsPlaced.
func (m *Mock) MatchupsPlaced() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchupsPlaced
}

// MatchupsUnplaced returns the running total passed to AddMatchupsUnplaced.
func (m *Mock) MatchupsUnplaced() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchupsUnplaced
}

// AutosaveRuns returns the number of times IncAutosaveRuns was called.
func (m *Mock) AutosaveRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autosaveRuns
}

// AutosaveFailed returns the number of times IncAutosaveFailed was called.
func (m *Mock) AutosaveFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autosaveFailed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
