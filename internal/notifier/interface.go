package notifier

import (
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// Notifier defines a high-level interface for sending notifications about scheduling events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// Sent after an automatic scheduling run, summarizing what was placed and
	// what could not be.
	SendScheduleSummary(seasonID string, placed, unplaced []schedule.Matchup, dryRun bool) error
	// Sent when a schedule is saved, announcing the event calendar.
	SendSchedulePublished(seasonID string, events []*schedule.Event, dryRun bool) error
}
