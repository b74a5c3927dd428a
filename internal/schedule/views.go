package schedule

import "sort"

// CategoryGroup is a read view of matchups bucketed by category.
type CategoryGroup struct {
	CategoryID string    `json:"category_id"`
	Matchups   []Matchup `json:"matchups"`
}

// GroupByCategory buckets matchups by category, categories sorted by id and
// matchups kept in input order. Pure derivation over core state so it can be
// tested without any rendering layer.
func GroupByCategory(matchups []Matchup) []CategoryGroup {
	buckets := make(map[string][]Matchup)
	var order []string
	for _, m := range matchups {
		if _, seen := buckets[m.CategoryID]; !seen {
			order = append(order, m.CategoryID)
		}
		buckets[m.CategoryID] = append(buckets[m.CategoryID], m)
	}
	sort.Strings(order)

	groups := make([]CategoryGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, CategoryGroup{CategoryID: id, Matchups: buckets[id]})
	}
	return groups
}

// PlacementFinding annotates one already-placed matchup with any hard
// conflicts or soft warnings it currently has.
type PlacementFinding struct {
	MatchupID string   `json:"matchup_id"`
	EventID   string   `json:"event_id"`
	CourtID   string   `json:"court_id"`
	SlotIndex int      `json:"slot_index"`
	Conflicts []string `json:"conflicts,omitempty"` // colliding team names; should be empty when all moves went through the validator
	Warnings  []string `json:"warnings,omitempty"`  // availability warnings; informational only
}

// AnnotatePlacements re-checks every committed placement against the slate it
// sits in and returns findings for those with conflicts or warnings, in event,
// court, slot order. This advisory pass is intentionally kept alongside the
// commit-time hard check: it also surfaces conflicts in state saved by clients
// that did not gate their moves.
func AnnotatePlacements(events []*Event) []PlacementFinding {
	var findings []PlacementFinding
	for _, ev := range events {
		for ci := range ev.Courts {
			for slot, m := range ev.Courts[ci].Slots {
				if m == nil {
					continue
				}
				finding := PlacementFinding{
					MatchupID: m.ID,
					EventID:   ev.ID,
					CourtID:   ev.Courts[ci].ID,
					SlotIndex: slot,
					Warnings:  AvailabilityWarnings(*m, ev.Date),
				}
				if conflict := CheckSlot(*m, ev, slot, nil); conflict != nil {
					finding.Conflicts = conflict.Teams
				}
				if len(finding.Conflicts) > 0 || len(finding.Warnings) > 0 {
					findings = append(findings, finding)
				}
			}
		}
	}
	return findings
}
