package planner

import (
	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/notifier"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// Store defines the database operations required by the planner.
type Store interface {
	GetSeasonTeams(seasonID string) ([]league.TeamInfo, error)
	GetScheduleConfig(seasonID string) (league.ScheduleConfig, error)
	CountMatchups(seasonID string) (int, error)
	InsertMatchups(matchups []league.MatchupRecord) error
	DeleteMatchupsForSeason(seasonID string) error
	GetMatchups(seasonID string) ([]league.MatchupRecord, error)
	GetEvents(seasonID string) ([]league.EventRecord, error)
	SaveSchedule(seasonID string, events []league.EventRecord, placements []league.PlacementRecord) error
}

// Notifier defines the notification operations required by the planner.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}

// Service is the planner surface consumed by the transports.
type Service interface {
	GenerateMatchups(seasonID string) (int, error)
	RegenerateMatchups(seasonID string) (int, error)
	GenerateSchedule(seasonID string, dates []string, startTime string, slotsPerEvening int, dryRun bool) (ScheduleSummary, error)
	SaveSchedule(seasonID string, events []league.EventRecord, placements []league.PlacementRecord, dryRun bool) error
	GetScheduleForSeason(seasonID string) (ScheduleView, error)
	EstimateCapacity(seasonID string, dateCount, slotsPerEvening int) (schedule.CapacityEstimate, error)
}
