package league

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Category is a named competitive division. Every team belongs to exactly one.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Season owns the teams, events and matchups for one competition period.
type Season struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is an optional sub-division of a category's teams for a season. A team
// has at most one group per season.
type Group struct {
	ID         string `json:"id"`
	SeasonID   string `json:"season_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// TeamInfo is a team row. UnavailableDates is a free-text comma-separated list
// of YYYY-MM-DD dates maintained by the team itself.
type TeamInfo struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	CategoryID       string  `json:"category_id"`
	GroupID          *string `json:"group_id,omitempty"`
	UnavailableDates string  `json:"unavailable_dates"`
	LongTravel       bool    `json:"long_travel"`
}

// ScheduleConfig holds the per-season scheduling defaults.
type ScheduleConfig struct {
	SeasonID        string `json:"season_id"`
	StartTime       string `json:"start_time"` // HH:MM
	SlotsPerEvening int    `json:"slots_per_evening"`
	SlotMinutes     int    `json:"slot_minutes"`
}

// EventRecord is a schedule event row.
type EventRecord struct {
	ID       string `json:"id"`
	SeasonID string `json:"season_id"`
	Name     string `json:"name"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// MatchupRecord is a matchup row. The placement columns are either all set or
// all null; the schema enforces this with a CHECK constraint and every write
// path preserves it.
type MatchupRecord struct {
	ID         string  `json:"id"`
	SeasonID   string  `json:"season_id"`
	CategoryID string  `json:"category_id"`
	TeamAID    string  `json:"team_a_id"`
	TeamBID    string  `json:"team_b_id"`
	EventID    *string `json:"event_id"`
	CourtID    *string `json:"court_id"`
	SlotIndex  *int    `json:"slot_index"`
}

// Placed reports whether the record carries a full placement triple.
func (r MatchupRecord) Placed() bool {
	return r.EventID != nil && r.CourtID != nil && r.SlotIndex != nil
}

// PlacementRecord is one matchup's placement in a bulk save; a nil triple
// means unscheduled.
type PlacementRecord struct {
	MatchupID string  `json:"matchup_id"`
	EventID   *string `json:"event_id"`
	CourtID   *string `json:"court_id"`
	SlotIndex *int    `json:"slot_index"`
}
