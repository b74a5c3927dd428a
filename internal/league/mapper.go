package league

import (
	"github.com/charmbracelet/log"

	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// TeamFromInfo converts a team row into the scheduling core's read-only view.
func TeamFromInfo(t TeamInfo) schedule.Team {
	team := schedule.Team{
		ID:               t.ID,
		Name:             t.Name,
		CategoryID:       t.CategoryID,
		UnavailableDates: t.UnavailableDates,
		LongTravel:       t.LongTravel,
	}
	if t.GroupID != nil {
		team.GroupID = *t.GroupID
	}
	return team
}

// TeamsFromInfos converts a roster, preserving order.
func TeamsFromInfos(infos []TeamInfo) []schedule.Team {
	teams := make([]schedule.Team, 0, len(infos))
	for _, t := range infos {
		teams = append(teams, TeamFromInfo(t))
	}
	return teams
}

// MatchupRecordsFrom converts core matchups into rows, carrying any placement
// triple along.
func MatchupRecordsFrom(matchups []schedule.Matchup) []MatchupRecord {
	records := make([]MatchupRecord, 0, len(matchups))
	for _, m := range matchups {
		r := MatchupRecord{
			ID:         m.ID,
			SeasonID:   m.SeasonID,
			CategoryID: m.CategoryID,
			TeamAID:    m.TeamA.ID,
			TeamBID:    m.TeamB.ID,
		}
		if m.Placement != nil {
			eventID := m.Placement.EventID
			courtID := m.Placement.CourtID
			slot := m.Placement.SlotIndex
			r.EventID = &eventID
			r.CourtID = &courtID
			r.SlotIndex = &slot
		}
		records = append(records, r)
	}
	return records
}

// EventRecordsFrom converts core events into rows.
func EventRecordsFrom(events []*schedule.Event) []EventRecord {
	records := make([]EventRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, EventRecord{ID: ev.ID, SeasonID: ev.SeasonID, Name: ev.Name, Date: ev.Date})
	}
	return records
}

// BuildBoardState reconstructs the in-memory board inputs from persisted rows:
// events with their placed matchups slotted in, plus the unscheduled backlog.
// A placement pointing at an unknown event or an out-of-range slot is treated
// as unscheduled rather than dropped.
func BuildBoardState(events []EventRecord, matchups []MatchupRecord, roster []TeamInfo, slotsPerEvening int) ([]*schedule.Event, []schedule.Matchup) {
	teams := make(map[string]schedule.Team, len(roster))
	for _, t := range roster {
		teams[t.ID] = TeamFromInfo(t)
	}

	evs := make([]*schedule.Event, 0, len(events))
	byID := make(map[string]*schedule.Event, len(events))
	for _, e := range events {
		ev := schedule.NewEvent(e.ID, e.SeasonID, e.Name, e.Date, slotsPerEvening)
		evs = append(evs, ev)
		byID[e.ID] = ev
	}

	var unscheduled []schedule.Matchup
	for _, r := range matchups {
		m := schedule.Matchup{
			ID:         r.ID,
			SeasonID:   r.SeasonID,
			CategoryID: r.CategoryID,
			TeamA:      teams[r.TeamAID],
			TeamB:      teams[r.TeamBID],
		}
		if !r.Placed() {
			unscheduled = append(unscheduled, m)
			continue
		}

		ev, ok := byID[*r.EventID]
		if !ok {
			log.Warn("Matchup placed in unknown event, treating as unscheduled", "matchup", r.ID, "event", *r.EventID)
			unscheduled = append(unscheduled, m)
			continue
		}
		court, ok := ev.Court(*r.CourtID)
		if !ok || *r.SlotIndex < 0 {
			log.Warn("Matchup placement invalid, treating as unscheduled", "matchup", r.ID, "court", *r.CourtID, "slot", *r.SlotIndex)
			unscheduled = append(unscheduled, m)
			continue
		}
		// Persisted slot counts can exceed the configured default when the
		// editor added slots; grow to fit.
		for *r.SlotIndex >= ev.SlotCount() {
			ev.AddSlot()
		}
		m.Placement = &schedule.Placement{EventID: *r.EventID, CourtID: *r.CourtID, SlotIndex: *r.SlotIndex}
		placed := m
		court.Slots[*r.SlotIndex] = &placed
	}
	return evs, unscheduled
}

// RecordsFromSnapshot converts a board snapshot into the rows SaveSchedule
// expects. Every matchup on the board appears in the placements slice, so a
// save fully replaces the season's placement state.
func RecordsFromSnapshot(seasonID string, snap schedule.Snapshot) ([]EventRecord, []PlacementRecord) {
	events := make([]EventRecord, 0, len(snap.Events))
	for _, e := range snap.Events {
		events = append(events, EventRecord{ID: e.ID, SeasonID: seasonID, Name: e.Name, Date: e.Date})
	}

	placements := make([]PlacementRecord, 0, len(snap.Placements))
	for _, p := range snap.Placements {
		r := PlacementRecord{MatchupID: p.MatchupID}
		if p.Placement != nil {
			eventID := p.Placement.EventID
			courtID := p.Placement.CourtID
			slot := p.Placement.SlotIndex
			r.EventID = &eventID
			r.CourtID = &courtID
			r.SlotIndex = &slot
		}
		placements = append(placements, r)
	}
	return events, placements
}
