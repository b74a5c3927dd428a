package schedule_test

import (
	"testing"

	"github.com/mauv0809/league-scheduler/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	a := schedule.Matchup{ID: "m1", CategoryID: "cat-b"}
	b := schedule.Matchup{ID: "m2", CategoryID: "cat-a"}
	c := schedule.Matchup{ID: "m3", CategoryID: "cat-b"}

	groups := schedule.GroupByCategory([]schedule.Matchup{a, b, c})
	require.Len(t, groups, 2)
	assert.Equal(t, "cat-a", groups[0].CategoryID)
	assert.Equal(t, "cat-b", groups[1].CategoryID)
	require.Len(t, groups[1].Matchups, 2)
	assert.Equal(t, "m1", groups[1].Matchups[0].ID, "input order preserved within a category")

	assert.Empty(t, schedule.GroupByCategory(nil))
}

func TestAnnotatePlacements(t *testing.T) {
	w, x, y := team("w", "Wolves"), team("x", "Xylos"), team("y", "Yetis")
	w.UnavailableDates = "2026-09-04"

	ev := schedule.NewEvent("ev-1", "season-1", "Night 1", "2026-09-04", 2)

	t.Run("clean slate yields no findings", func(t *testing.T) {
		placeAt(ev, schedule.CourtA, 1, matchup("m-xy", x, y))
		assert.Empty(t, schedule.AnnotatePlacements([]*schedule.Event{ev}))
	})

	t.Run("availability warning on a placed matchup", func(t *testing.T) {
		placeAt(ev, schedule.CourtA, 0, matchup("m-wx", w, x))
		findings := schedule.AnnotatePlacements([]*schedule.Event{ev})
		require.Len(t, findings, 1)
		assert.Equal(t, "m-wx", findings[0].MatchupID)
		assert.Empty(t, findings[0].Conflicts)
		require.Len(t, findings[0].Warnings, 1)
		assert.Contains(t, findings[0].Warnings[0], "Wolves")
	})

	t.Run("hard conflict introduced by an ungated writer is surfaced", func(t *testing.T) {
		// Force the invalid state directly, as a pre-validator client could.
		placeAt(ev, schedule.CourtB, 0, matchup("m-wy", w, y))
		findings := schedule.AnnotatePlacements([]*schedule.Event{ev})

		var conflicted []string
		for _, f := range findings {
			if len(f.Conflicts) > 0 {
				conflicted = append(conflicted, f.MatchupID)
			}
		}
		assert.ElementsMatch(t, []string{"m-wx", "m-wy"}, conflicted)
	})
}
