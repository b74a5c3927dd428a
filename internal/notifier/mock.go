package notifier

import (
	"sync"

	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendScheduleSummaryFunc   func(seasonID string, placed, unplaced []schedule.Matchup, dryRun bool) error
	SendSchedulePublishedFunc func(seasonID string, events []*schedule.Event, dryRun bool) error

	// Call records
	SendScheduleSummaryCalls []struct {
		SeasonID string
		Placed   []schedule.Matchup
		Unplaced []schedule.Matchup
		DryRun   bool
	}
	SendSchedulePublishedCalls []struct {
		SeasonID string
		Events   []*schedule.Event
		DryRun   bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScheduleSummaryCalls = nil
	m.SendSchedulePublishedCalls = nil
}

func (m *Mock) SendScheduleSummary(seasonID string, placed, unplaced []schedule.Matchup, dryRun bool) error {
	m.mu.Lock()
	m.SendScheduleSummaryCalls = append(m.SendScheduleSummaryCalls, struct {
		SeasonID string
		Placed   []schedule.Matchup
		Unplaced []schedule.Matchup
		DryRun   bool
	}{seasonID, placed, unplaced, dryRun})
	m.mu.Unlock()
	if m.SendScheduleSummaryFunc != nil {
		return m.SendScheduleSummaryFunc(seasonID, placed, unplaced, dryRun)
	}
	return nil
}

func (m *Mock) SendSchedulePublished(seasonID string, events []*schedule.Event, dryRun bool) error {
	m.mu.Lock()
	m.SendSchedulePublishedCalls = append(m.SendSchedulePublishedCalls, struct {
		SeasonID string
		Events   []*schedule.Event
		DryRun   bool
	}{seasonID, events, dryRun})
	m.mu.Unlock()
	if m.SendSchedulePublishedFunc != nil {
		return m.SendSchedulePublishedFunc(seasonID, events, dryRun)
	}
	return nil
}
