package planner

import (
	"sync"

	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// MockService is a mock implementation of the Service interface for testing.
// It is safe for concurrent use.
type MockService struct {
	mu sync.Mutex

	// Spies for method calls
	GenerateMatchupsFunc     func(seasonID string) (int, error)
	RegenerateMatchupsFunc   func(seasonID string) (int, error)
	GenerateScheduleFunc     func(seasonID string, dates []string, startTime string, slotsPerEvening int, dryRun bool) (ScheduleSummary, error)
	SaveScheduleFunc         func(seasonID string, events []league.EventRecord, placements []league.PlacementRecord, dryRun bool) error
	GetScheduleForSeasonFunc func(seasonID string) (ScheduleView, error)
	EstimateCapacityFunc     func(seasonID string, dateCount, slotsPerEvening int) (schedule.CapacityEstimate, error)

	// Call records
	GenerateMatchupsCalls   []string
	RegenerateMatchupsCalls []string
	GenerateScheduleCalls   []GenerateScheduleCall
	SaveScheduleCalls       []SaveScheduleCall
}

// GenerateScheduleCall holds the arguments for a call to GenerateSchedule.
type GenerateScheduleCall struct {
	SeasonID        string
	Dates           []string
	StartTime       string
	SlotsPerEvening int
	DryRun          bool
}

// SaveScheduleCall holds the arguments for a call to SaveSchedule.
type SaveScheduleCall struct {
	SeasonID   string
	Events     []league.EventRecord
	Placements []league.PlacementRecord
	DryRun     bool
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

// Reset clears all call records.
func (m *MockService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateMatchupsCalls = nil
	m.RegenerateMatchupsCalls = nil
	m.GenerateScheduleCalls = nil
	m.SaveScheduleCalls = nil
}

func (m *MockService) GenerateMatchups(seasonID string) (int, error) {
	m.mu.Lock()
	m.GenerateMatchupsCalls = append(m.GenerateMatchupsCalls, seasonID)
	m.mu.Unlock()
	if m.GenerateMatchupsFunc != nil {
		return m.GenerateMatchupsFunc(seasonID)
	}
	return 0, nil
}

func (m *MockService) RegenerateMatchups(seasonID string) (int, error) {
	m.mu.Lock()
	m.RegenerateMatchupsCalls = append(m.RegenerateMatchupsCalls, seasonID)
	m.mu.Unlock()
	if m.RegenerateMatchupsFunc != nil {
		return m.RegenerateMatchupsFunc(seasonID)
	}
	return 0, nil
}

func (m *MockService) GenerateSchedule(seasonID string, dates []string, startTime string, slotsPerEvening int, dryRun bool) (ScheduleSummary, error) {
	m.mu.Lock()
	m.GenerateScheduleCalls = append(m.GenerateScheduleCalls, GenerateScheduleCall{seasonID, dates, startTime, slotsPerEvening, dryRun})
	m.mu.Unlock()
	if m.GenerateScheduleFunc != nil {
		return m.GenerateScheduleFunc(seasonID, dates, startTime, slotsPerEvening, dryRun)
	}
	return ScheduleSummary{SeasonID: seasonID}, nil
}

func (m *MockService) SaveSchedule(seasonID string, events []league.EventRecord, placements []league.PlacementRecord, dryRun bool) error {
	m.mu.Lock()
	m.SaveScheduleCalls = append(m.SaveScheduleCalls, SaveScheduleCall{seasonID, events, placements, dryRun})
	m.mu.Unlock()
	if m.SaveScheduleFunc != nil {
		return m.SaveScheduleFunc(seasonID, events, placements, dryRun)
	}
	return nil
}

func (m *MockService) GetScheduleForSeason(seasonID string) (ScheduleView, error) {
	if m.GetScheduleForSeasonFunc != nil {
		return m.GetScheduleForSeasonFunc(seasonID)
	}
	return ScheduleView{SeasonID: seasonID}, nil
}

func (m *MockService) EstimateCapacity(seasonID string, dateCount, slotsPerEvening int) (schedule.CapacityEstimate, error) {
	if m.EstimateCapacityFunc != nil {
		return m.EstimateCapacityFunc(seasonID, dateCount, slotsPerEvening)
	}
	return schedule.CapacityEstimate{}, nil
}
