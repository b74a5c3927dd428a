package league

import (
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertSeasonFunc        func(season Season) error
	UpsertCategoriesFunc    func(categories []Category) error
	UpsertGroupsFunc        func(groups []Group) error
	UpsertTeamsFunc         func(teams []TeamInfo) error
	AssignTeamsToSeasonFunc func(seasonID string, teamIDs []string) error
	GetSeasonTeamsFunc      func(seasonID string) ([]TeamInfo, error)
	GetScheduleConfigFunc   func(seasonID string) (ScheduleConfig, error)
	SetScheduleConfigFunc   func(cfg ScheduleConfig) error
	CountMatchupsFunc       func(seasonID string) (int, error)
	InsertMatchupsFunc      func(matchups []MatchupRecord) error
	DeleteMatchupsFunc      func(seasonID string) error
	GetMatchupsFunc         func(seasonID string) ([]MatchupRecord, error)
	GetEventsFunc           func(seasonID string) ([]EventRecord, error)
	SaveScheduleFunc        func(seasonID string, events []EventRecord, placements []PlacementRecord) error

	// Call records
	InsertMatchupsCalls [][]MatchupRecord
	DeleteMatchupsCalls []string
	SaveScheduleCalls   []struct {
		SeasonID   string
		Events     []EventRecord
		Placements []PlacementRecord
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchupsCalls = nil
	m.DeleteMatchupsCalls = nil
	m.SaveScheduleCalls = nil
}

func (m *MockStore) UpsertSeason(season Season) error {
	if m.UpsertSeasonFunc != nil {
		return m.UpsertSeasonFunc(season)
	}
	return nil
}

func (m *MockStore) UpsertCategories(categories []Category) error {
	if m.UpsertCategoriesFunc != nil {
		return m.UpsertCategoriesFunc(categories)
	}
	return nil
}

func (m *MockStore) UpsertGroups(groups []Group) error {
	if m.UpsertGroupsFunc != nil {
		return m.UpsertGroupsFunc(groups)
	}
	return nil
}

func (m *MockStore) UpsertTeams(teams []TeamInfo) error {
	if m.UpsertTeamsFunc != nil {
		return m.UpsertTeamsFunc(teams)
	}
	return nil
}

func (m *MockStore) AssignTeamsToSeason(seasonID string, teamIDs []string) error {
	if m.AssignTeamsToSeasonFunc != nil {
		return m.AssignTeamsToSeasonFunc(seasonID, teamIDs)
	}
	return nil
}

func (m *MockStore) GetSeasonTeams(seasonID string) ([]TeamInfo, error) {
	if m.GetSeasonTeamsFunc != nil {
		return m.GetSeasonTeamsFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) GetScheduleConfig(seasonID string) (ScheduleConfig, error) {
	if m.GetScheduleConfigFunc != nil {
		return m.GetScheduleConfigFunc(seasonID)
	}
	return ScheduleConfig{SeasonID: seasonID, StartTime: "19:00", SlotsPerEvening: 6, SlotMinutes: 45}, nil
}

func (m *MockStore) SetScheduleConfig(cfg ScheduleConfig) error {
	if m.SetScheduleConfigFunc != nil {
		return m.SetScheduleConfigFunc(cfg)
	}
	return nil
}

func (m *MockStore) CountMatchups(seasonID string) (int, error) {
	if m.CountMatchupsFunc != nil {
		return m.CountMatchupsFunc(seasonID)
	}
	return 0, nil
}

func (m *MockStore) InsertMatchups(matchups []MatchupRecord) error {
	m.mu.Lock()
	m.InsertMatchupsCalls = append(m.InsertMatchupsCalls, matchups)
	m.mu.Unlock()
	if m.InsertMatchupsFunc != nil {
		return m.InsertMatchupsFunc(matchups)
	}
	return nil
}

func (m *MockStore) DeleteMatchupsForSeason(seasonID string) error {
	m.mu.Lock()
	m.DeleteMatchupsCalls = append(m.DeleteMatchupsCalls, seasonID)
	m.mu.Unlock()
	if m.DeleteMatchupsFunc != nil {
		return m.DeleteMatchupsFunc(seasonID)
	}
	return nil
}

func (m *MockStore) GetMatchups(seasonID string) ([]MatchupRecord, error) {
	if m.GetMatchupsFunc != nil {
		return m.GetMatchupsFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) GetEvents(seasonID string) ([]EventRecord, error) {
	if m.GetEventsFunc != nil {
		return m.GetEventsFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) SaveSchedule(seasonID string, events []EventRecord, placements []PlacementRecord) error {
	m.mu.Lock()
	m.SaveScheduleCalls = append(m.SaveScheduleCalls, struct {
		SeasonID   string
		Events     []EventRecord
		Placements []PlacementRecord
	}{seasonID, events, placements})
	m.mu.Unlock()
	if m.SaveScheduleFunc != nil {
		return m.SaveScheduleFunc(seasonID, events, placements)
	}
	return nil
}
