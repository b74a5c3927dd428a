package schedule

import (
	"fmt"
	"sort"
)

// Soft-preference weights. An availability warning must always outweigh any
// realistic court imbalance so a warned date is only used as a last resort.
const (
	availabilityPenalty = 50
	loadBalanceWeight   = 2
)

// Result reports the outcome of a placement run. Matchups that could not be
// placed anywhere are a normal outcome, not an error.
type Result struct {
	Placed   []Matchup
	Unplaced []Matchup
}

// BuildEvents returns one event per target date, sorted by date, reusing an
// existing event for a date when present. Reused events keep their placements;
// their courts are extended to at least slotsPerEvening slots.
func BuildEvents(seasonID string, dates []string, slotsPerEvening int, existing []*Event) []*Event {
	byDate := make(map[string]*Event, len(existing))
	for _, ev := range existing {
		byDate[ev.Date] = ev
	}

	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)

	var events []*Event
	seen := make(map[string]bool, len(sorted))
	for _, date := range sorted {
		if seen[date] {
			continue
		}
		seen[date] = true

		ev, ok := byDate[date]
		if !ok {
			ev = NewEvent(EventID(seasonID, date), seasonID, fmt.Sprintf("Game night %s", date), date, slotsPerEvening)
		}
		for ev.SlotCount() < slotsPerEvening {
			ev.AddSlot()
		}
		events = append(events, ev)
	}
	return events
}

// Place assigns each matchup to the best valid slot it can find across the
// given events, committing directly into the events' courts. The heuristic is
// greedy, single-pass and non-backtracking: once a matchup is committed it is
// never reconsidered, which trades optimality for predictable, reproducible
// output. Do not replace this with a solver.
//
// Matchups are processed in a stable order (category, then input order) and
// candidates enumerated in date order, court A before court B, slot index
// ascending. Candidates failing the hard conflict check are discarded; the
// rest are scored (lower is better) by availability warnings on the event
// date and by how unevenly the event's courts are filled. Ties keep the
// earliest candidate in enumeration order.
func Place(matchups []Matchup, events []*Event) Result {
	ordered := append([]Matchup(nil), matchups...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CategoryID < ordered[j].CategoryID
	})

	slate := append([]*Event(nil), events...)
	sort.SliceStable(slate, func(i, j int) bool {
		return slate[i].Date < slate[j].Date
	})

	var result Result
	for _, m := range ordered {
		ev, court, slot, found := bestCandidate(m, slate)
		if !found {
			result.Unplaced = append(result.Unplaced, m)
			continue
		}

		placed := m
		placed.Placement = &Placement{EventID: ev.ID, CourtID: court.ID, SlotIndex: slot}
		court.Slots[slot] = &placed
		result.Placed = append(result.Placed, placed)
	}
	return result
}

func bestCandidate(m Matchup, events []*Event) (*Event, *Court, int, bool) {
	var (
		bestEvent *Event
		bestCourt *Court
		bestSlot  int
		bestScore int
		found     bool
	)

	for _, ev := range events {
		warned := len(AvailabilityWarnings(m, ev.Date))
		for ci := range ev.Courts {
			court := &ev.Courts[ci]
			load := courtLoadDelta(ev, court)
			for slot := range court.Slots {
				if court.Slots[slot] != nil {
					continue
				}
				if CheckSlot(m, ev, slot, nil) != nil {
					continue
				}
				score := warned*availabilityPenalty + load*loadBalanceWeight
				if !found || score < bestScore {
					bestEvent, bestCourt, bestSlot, bestScore = ev, court, slot, score
					found = true
				}
			}
		}
	}
	return bestEvent, bestCourt, bestSlot, found
}

// courtLoadDelta penalizes courts that are already fuller than the event's
// emptiest court, steering placements toward an even spread.
func courtLoadDelta(ev *Event, c *Court) int {
	min := -1
	for i := range ev.Courts {
		if f := ev.Courts[i].filled(); min < 0 || f < min {
			min = f
		}
	}
	return c.filled() - min
}
