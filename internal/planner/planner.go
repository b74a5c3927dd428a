package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/metrics"
	"github.com/mauv0809/league-scheduler/internal/pubsub"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

var _ Service = (*Planner)(nil)

// ErrPartialPlacement marks a placement row with some but not all of its
// event/court/slot fields set.
var ErrPartialPlacement = errors.New("partial placement triple")

// New creates a new Planner.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Planner {
	return &Planner{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// GenerateMatchups generates the season's round-robin matchups from the
// current roster. Returns ErrAlreadyExists if the season already has matchups;
// use RegenerateMatchups to start over.
func (p *Planner) GenerateMatchups(seasonID string) (int, error) {
	count, err := p.store.CountMatchups(seasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to count matchups: %w", err)
	}
	if count > 0 {
		return 0, schedule.ErrAlreadyExists
	}
	return p.generate(seasonID)
}

// RegenerateMatchups deletes the season's matchups, placements included, and
// generates a fresh set. Destructive and deliberate: callers confirm first.
func (p *Planner) RegenerateMatchups(seasonID string) (int, error) {
	if err := p.store.DeleteMatchupsForSeason(seasonID); err != nil {
		return 0, fmt.Errorf("failed to delete matchups: %w", err)
	}
	return p.generate(seasonID)
}

func (p *Planner) generate(seasonID string) (int, error) {
	roster, err := p.store.GetSeasonTeams(seasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to load season teams: %w", err)
	}

	matchups := schedule.GenerateMatchups(seasonID, league.TeamsFromInfos(roster))
	if err := p.store.InsertMatchups(league.MatchupRecordsFrom(matchups)); err != nil {
		return 0, fmt.Errorf("failed to insert matchups: %w", err)
	}

	p.metrics.IncGenerationRuns()
	p.metrics.AddMatchupsGenerated(len(matchups))
	if err := p.pubsub.SendMessage(string(pubsub.EventMatchupsGenerated), pubsub.MatchupsGeneratedPayload{
		SeasonID: seasonID,
		Count:    len(matchups),
	}); err != nil {
		log.Error("Failed to publish matchups-generated event", "error", err, "seasonID", seasonID)
	}

	log.Info("Generated matchups", "seasonID", seasonID, "teams", len(roster), "matchups", len(matchups))
	return len(matchups), nil
}

// GenerateSchedule runs the greedy placer over the season's unplaced matchups
// across the given dates and persists the outcome. Existing placements are
// kept; matchups with no valid slot stay unplaced. Empty startTime or a
// non-positive slotsPerEvening fall back to the season's schedule config.
func (p *Planner) GenerateSchedule(seasonID string, dates []string, startTime string, slotsPerEvening int, dryRun bool) (ScheduleSummary, error) {
	start := time.Now()
	p.metrics.IncScheduleRuns()

	cfg, err := p.store.GetScheduleConfig(seasonID)
	if err != nil {
		return ScheduleSummary{}, err
	}
	if startTime == "" {
		startTime = cfg.StartTime
	}
	if _, _, err := schedule.ParseStartTime(startTime); err != nil {
		return ScheduleSummary{}, err
	}
	if slotsPerEvening <= 0 {
		slotsPerEvening = cfg.SlotsPerEvening
	}

	existing, unscheduled, err := p.loadBoardState(seasonID, slotsPerEvening)
	if err != nil {
		return ScheduleSummary{}, err
	}
	targets := schedule.BuildEvents(seasonID, dates, slotsPerEvening, existing)

	result := schedule.Place(unscheduled, targets)
	p.metrics.AddMatchupsPlaced(len(result.Placed))
	p.metrics.AddMatchupsUnplaced(len(result.Unplaced))
	p.metrics.ObserveScheduleDuration(time.Since(start).Seconds())

	summary := ScheduleSummary{
		SeasonID: seasonID,
		Placed:   len(result.Placed),
		Unplaced: len(result.Unplaced),
		Events:   len(targets),
	}

	if !dryRun {
		// The store save prunes events missing from the list, so the records
		// must cover the whole season: the target-date events plus every
		// event the run did not touch.
		eventRecords, placements := placementRecords(seasonID, mergeEvents(existing, targets), result.Unplaced)
		if err := p.store.SaveSchedule(seasonID, eventRecords, placements); err != nil {
			return ScheduleSummary{}, fmt.Errorf("failed to persist schedule: %w", err)
		}
		if err := p.pubsub.SendMessage(string(pubsub.EventScheduleDrafted), pubsub.ScheduleDraftedPayload{
			SeasonID: seasonID,
			Placed:   summary.Placed,
			Unplaced: summary.Unplaced,
		}); err != nil {
			log.Error("Failed to publish schedule-drafted event", "error", err, "seasonID", seasonID)
		}
	}

	if err := p.notifier.SendScheduleSummary(seasonID, result.Placed, result.Unplaced, dryRun); err != nil {
		log.Error("Failed to send schedule summary", "error", err, "seasonID", seasonID)
	}

	log.Info("Schedule run finished", "seasonID", seasonID, "placed", summary.Placed, "unplaced", summary.Unplaced, "dryRun", dryRun)
	return summary, nil
}

// SaveSchedule persists a board snapshot. Each placement must be a full
// event/court/slot triple or entirely empty; anything in between is rejected
// before touching the store.
func (p *Planner) SaveSchedule(seasonID string, events []league.EventRecord, placements []league.PlacementRecord, dryRun bool) error {
	for _, pl := range placements {
		allSet := pl.EventID != nil && pl.CourtID != nil && pl.SlotIndex != nil
		allNil := pl.EventID == nil && pl.CourtID == nil && pl.SlotIndex == nil
		if !allSet && !allNil {
			return fmt.Errorf("matchup %s: %w", pl.MatchupID, ErrPartialPlacement)
		}
	}

	if dryRun {
		log.Info("Dry run mode: schedule not saved.", "seasonID", seasonID, "events", len(events), "placements", len(placements))
		return nil
	}

	if err := p.store.SaveSchedule(seasonID, events, placements); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	if err := p.pubsub.SendMessage(string(pubsub.EventScheduleSaved), pubsub.ScheduleSavedPayload{
		SeasonID:   seasonID,
		Events:     len(events),
		Placements: len(placements),
	}); err != nil {
		log.Error("Failed to publish schedule-saved event", "error", err, "seasonID", seasonID)
	}

	view, err := p.GetScheduleForSeason(seasonID)
	if err != nil {
		log.Error("Failed to load saved schedule for notification", "error", err, "seasonID", seasonID)
		return nil
	}
	if err := p.notifier.SendSchedulePublished(seasonID, view.Events, dryRun); err != nil {
		log.Error("Failed to send schedule-published notification", "error", err, "seasonID", seasonID)
	}
	return nil
}

// GetScheduleForSeason builds the read model feeding the placement board and
// the read-only schedule views.
func (p *Planner) GetScheduleForSeason(seasonID string) (ScheduleView, error) {
	cfg, err := p.store.GetScheduleConfig(seasonID)
	if err != nil {
		return ScheduleView{}, err
	}

	events, unscheduled, err := p.loadBoardState(seasonID, cfg.SlotsPerEvening)
	if err != nil {
		return ScheduleView{}, err
	}

	view := ScheduleView{
		SeasonID:    seasonID,
		Config:      cfg,
		Events:      events,
		Unscheduled: unscheduled,
		Findings:    schedule.AnnotatePlacements(events),
	}

	hour, minute, err := schedule.ParseStartTime(cfg.StartTime)
	if err != nil {
		return ScheduleView{}, err
	}
	slots := cfg.SlotsPerEvening
	for _, ev := range events {
		if ev.SlotCount() > slots {
			slots = ev.SlotCount()
		}
	}
	for i := 0; i < slots; i++ {
		view.SlotTimes = append(view.SlotTimes, schedule.SlotTime(i, hour, minute, cfg.SlotMinutes))
	}
	return view, nil
}

// EstimateCapacity is the advisory pre-schedule capacity check against the
// season's current matchup count.
func (p *Planner) EstimateCapacity(seasonID string, dateCount, slotsPerEvening int) (schedule.CapacityEstimate, error) {
	if slotsPerEvening <= 0 {
		cfg, err := p.store.GetScheduleConfig(seasonID)
		if err != nil {
			return schedule.CapacityEstimate{}, err
		}
		slotsPerEvening = cfg.SlotsPerEvening
	}

	count, err := p.store.CountMatchups(seasonID)
	if err != nil {
		return schedule.CapacityEstimate{}, fmt.Errorf("failed to count matchups: %w", err)
	}
	return schedule.EstimateCapacity(dateCount, slotsPerEvening, schedule.CourtsPerEvent, count), nil
}

func (p *Planner) loadBoardState(seasonID string, slotsPerEvening int) ([]*schedule.Event, []schedule.Matchup, error) {
	roster, err := p.store.GetSeasonTeams(seasonID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load season teams: %w", err)
	}
	matchups, err := p.store.GetMatchups(seasonID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load matchups: %w", err)
	}
	eventRecords, err := p.store.GetEvents(seasonID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load events: %w", err)
	}

	events, unscheduled := league.BuildBoardState(eventRecords, matchups, roster, slotsPerEvening)
	return events, unscheduled, nil
}

// mergeEvents unions the season's pre-existing events with the run's target
// events. Targets on an existing date are the same pointers as in existing, so
// only genuinely new events are appended.
func mergeEvents(existing, targets []*schedule.Event) []*schedule.Event {
	merged := append([]*schedule.Event(nil), existing...)
	seen := make(map[string]bool, len(existing))
	for _, ev := range existing {
		seen[ev.ID] = true
	}
	for _, ev := range targets {
		if !seen[ev.ID] {
			merged = append(merged, ev)
		}
	}
	return merged
}

// placementRecords flattens post-placement events plus the unplaced backlog
// into rows for the store. Every matchup appears exactly once.
func placementRecords(seasonID string, events []*schedule.Event, unplaced []schedule.Matchup) ([]league.EventRecord, []league.PlacementRecord) {
	eventRecords := make([]league.EventRecord, 0, len(events))
	var placements []league.PlacementRecord
	for _, ev := range events {
		eventRecords = append(eventRecords, league.EventRecord{ID: ev.ID, SeasonID: seasonID, Name: ev.Name, Date: ev.Date})
		for _, m := range ev.PlacedMatchups() {
			eventID := m.Placement.EventID
			courtID := m.Placement.CourtID
			slot := m.Placement.SlotIndex
			placements = append(placements, league.PlacementRecord{
				MatchupID: m.ID,
				EventID:   &eventID,
				CourtID:   &courtID,
				SlotIndex: &slot,
			})
		}
	}
	for _, m := range unplaced {
		placements = append(placements, league.PlacementRecord{MatchupID: m.ID})
	}
	return eventRecords, placements
}
