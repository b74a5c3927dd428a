package schedule_test

import (
	"testing"

	"github.com/mauv0809/league-scheduler/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvents(t *testing.T) {
	t.Run("one event per date, sorted, two courts", func(t *testing.T) {
		events := schedule.BuildEvents("season-1", []string{"2026-09-18", "2026-09-04"}, 6, nil)
		require.Len(t, events, 2)
		assert.Equal(t, "2026-09-04", events[0].Date)
		assert.Equal(t, "2026-09-18", events[1].Date)
		assert.Equal(t, 6, events[0].SlotCount())
	})

	t.Run("existing event for a date is reused and extended", func(t *testing.T) {
		existing := schedule.NewEvent("ev-1", "season-1", "Opening night", "2026-09-04", 3)
		placeAt(existing, schedule.CourtA, 0, matchup("m", team("w", "W"), team("x", "X")))

		events := schedule.BuildEvents("season-1", []string{"2026-09-04"}, 6, []*schedule.Event{existing})
		require.Len(t, events, 1)
		assert.Same(t, existing, events[0])
		assert.Equal(t, 6, events[0].SlotCount())
		assert.Len(t, events[0].PlacedMatchups(), 1, "placements survive extension")
	})

	t.Run("duplicate dates collapse", func(t *testing.T) {
		events := schedule.BuildEvents("season-1", []string{"2026-09-04", "2026-09-04"}, 4, nil)
		assert.Len(t, events, 1)
	})
}

func TestPlace(t *testing.T) {
	t.Run("places all matchups when capacity allows", func(t *testing.T) {
		teams := []schedule.Team{team("w", "W"), team("x", "X"), team("y", "Y"), team("z", "Z")}
		matchups := schedule.GenerateMatchups("season-1", teams)
		events := schedule.BuildEvents("season-1", []string{"2026-09-04", "2026-09-11"}, 3, nil)

		result := schedule.Place(matchups, events)
		assert.Len(t, result.Placed, 6)
		assert.Empty(t, result.Unplaced)

		for _, m := range result.Placed {
			require.NotNil(t, m.Placement)
		}
		assertNoDoubleBooking(t, events)
	})

	t.Run("never commits a hard conflict", func(t *testing.T) {
		// Three teams sharing every matchup: only one matchup can sit at a
		// given slot index per event.
		teams := []schedule.Team{team("w", "W"), team("x", "X"), team("y", "Y")}
		matchups := schedule.GenerateMatchups("season-1", teams)
		events := schedule.BuildEvents("season-1", []string{"2026-09-04"}, 3, nil)

		result := schedule.Place(matchups, events)
		assert.Len(t, result.Placed, 3)
		assertNoDoubleBooking(t, events)
	})

	t.Run("infeasible matchups stay unplaced without error", func(t *testing.T) {
		teams := []schedule.Team{team("w", "W"), team("x", "X"), team("y", "Y")}
		matchups := schedule.GenerateMatchups("season-1", teams)
		events := schedule.BuildEvents("season-1", []string{"2026-09-04"}, 1, nil)

		result := schedule.Place(matchups, events)
		// One slot index, two courts, three mutually-overlapping matchups:
		// only one can be placed.
		assert.Len(t, result.Placed, 1)
		assert.Len(t, result.Unplaced, 2)
	})

	t.Run("avoids dates with availability warnings when possible", func(t *testing.T) {
		w := team("w", "W")
		w.UnavailableDates = "2026-09-04"
		matchups := []schedule.Matchup{matchup("m-wx", w, team("x", "X"))}
		events := schedule.BuildEvents("season-1", []string{"2026-09-04", "2026-09-11"}, 2, nil)

		result := schedule.Place(matchups, events)
		require.Len(t, result.Placed, 1)
		placedEvent := result.Placed[0].Placement.EventID
		assert.Equal(t, events[1].ID, placedEvent, "warned date is only a last resort")
	})

	t.Run("warned date is still used when it is the only option", func(t *testing.T) {
		w := team("w", "W")
		w.UnavailableDates = "2026-09-04"
		matchups := []schedule.Matchup{matchup("m-wx", w, team("x", "X"))}
		events := schedule.BuildEvents("season-1", []string{"2026-09-04"}, 1, nil)

		result := schedule.Place(matchups, events)
		assert.Len(t, result.Placed, 1)
		assert.Empty(t, result.Unplaced)
	})

	t.Run("balances load across courts", func(t *testing.T) {
		teams := []schedule.Team{team("w", "W"), team("x", "X"), team("y", "Y"), team("z", "Z")}
		matchups := schedule.GenerateMatchups("season-1", teams)
		events := schedule.BuildEvents("season-1", []string{"2026-09-04"}, 6, nil)

		schedule.Place(matchups, events)
		ev := events[0]
		courtA, _ := ev.Court(schedule.CourtA)
		courtB, _ := ev.Court(schedule.CourtB)
		fillA := len(filterPlaced(courtA.Slots))
		fillB := len(filterPlaced(courtB.Slots))
		assert.LessOrEqual(t, abs(fillA-fillB), 1, "courts stay within one matchup of each other")
	})

	t.Run("does not reorder the caller's event slice", func(t *testing.T) {
		teams := []schedule.Team{team("w", "W"), team("x", "X")}
		matchups := schedule.GenerateMatchups("season-1", teams)
		events := []*schedule.Event{
			schedule.NewEvent("ev-late", "season-1", "Night 2", "2026-09-11", 2),
			schedule.NewEvent("ev-early", "season-1", "Night 1", "2026-09-04", 2),
		}

		result := schedule.Place(matchups, events)
		require.Len(t, result.Placed, 1)
		assert.Equal(t, "ev-early", result.Placed[0].Placement.EventID, "placement still prefers the earliest date")
		assert.Equal(t, "ev-late", events[0].ID)
		assert.Equal(t, "ev-early", events[1].ID)
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		teams := []schedule.Team{team("w", "W"), team("x", "X"), team("y", "Y"), team("z", "Z")}

		run := func() schedule.Result {
			matchups := schedule.GenerateMatchups("season-1", teams)
			events := schedule.BuildEvents("season-1", []string{"2026-09-04", "2026-09-11"}, 3, nil)
			return schedule.Place(matchups, events)
		}
		assert.Equal(t, run(), run())
	})
}

func assertNoDoubleBooking(t *testing.T, events []*schedule.Event) {
	t.Helper()
	for _, ev := range events {
		for slot := 0; slot < ev.SlotCount(); slot++ {
			seen := make(map[string]bool)
			for i := range ev.Courts {
				m := ev.Courts[i].Slots[slot]
				if m == nil {
					continue
				}
				for _, id := range []string{m.TeamA.ID, m.TeamB.ID} {
					assert.False(t, seen[id], "team %s double-booked at event %s slot %d", id, ev.ID, slot)
					seen[id] = true
				}
			}
		}
	}
}

func filterPlaced(slots []*schedule.Matchup) []*schedule.Matchup {
	var out []*schedule.Matchup
	for _, s := range slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
