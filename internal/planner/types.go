package planner

import (
	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/metrics"
	"github.com/mauv0809/league-scheduler/internal/pubsub"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// Planner handles the business logic of matchup generation and scheduling.
type Planner struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}

// ScheduleSummary reports the outcome of an automatic scheduling run.
type ScheduleSummary struct {
	SeasonID string `json:"season_id"`
	Placed   int    `json:"placed"`
	Unplaced int    `json:"unplaced"`
	Events   int    `json:"events"`
}

// ScheduleView is the read model for the placement board and read-only
// schedule pages.
type ScheduleView struct {
	SeasonID    string                      `json:"season_id"`
	Config      league.ScheduleConfig       `json:"config"`
	SlotTimes   []string                    `json:"slot_times"`
	Events      []*schedule.Event           `json:"events"`
	Unscheduled []schedule.Matchup          `json:"unscheduled"`
	Findings    []schedule.PlacementFinding `json:"findings,omitempty"`
}
