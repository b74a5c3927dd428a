package schedule_test

import (
	"testing"

	"github.com/mauv0809/league-scheduler/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchups(t *testing.T) {
	t.Run("four teams in one group yield six matchups", func(t *testing.T) {
		teams := []schedule.Team{team("w", "W"), team("x", "X"), team("y", "Y"), team("z", "Z")}
		matchups := schedule.GenerateMatchups("season-1", teams)
		require.Len(t, matchups, 6)

		pairs := make(map[string]bool)
		for _, m := range matchups {
			assert.NotEqual(t, m.TeamA.ID, m.TeamB.ID)
			assert.Nil(t, m.Placement, "generated matchups start unplaced")
			pairs[m.TeamA.ID+m.TeamB.ID] = true
		}
		assert.Len(t, pairs, 6, "all pairs unique")
	})

	t.Run("groups scope generation within a category", func(t *testing.T) {
		a1, a2 := team("a1", "A1"), team("a2", "A2")
		b1, b2 := team("b1", "B1"), team("b2", "B2")
		a1.GroupID, a2.GroupID = "grp-a", "grp-a"
		b1.GroupID, b2.GroupID = "grp-b", "grp-b"

		matchups := schedule.GenerateMatchups("season-1", []schedule.Team{a1, a2, b1, b2})
		require.Len(t, matchups, 2)
		for _, m := range matchups {
			assert.Equal(t, m.TeamA.GroupID, m.TeamB.GroupID, "no cross-group pairings")
		}
	})

	t.Run("categories never mix", func(t *testing.T) {
		c1 := schedule.Team{ID: "c1", CategoryID: "cat-1"}
		c2 := schedule.Team{ID: "c2", CategoryID: "cat-2"}
		assert.Empty(t, schedule.GenerateMatchups("season-1", []schedule.Team{c1, c2}))
	})

	t.Run("zero or one team groups yield nothing", func(t *testing.T) {
		assert.Empty(t, schedule.GenerateMatchups("season-1", nil))
		assert.Empty(t, schedule.GenerateMatchups("season-1", []schedule.Team{team("solo", "Solo")}))
	})

	t.Run("output is deterministic across runs", func(t *testing.T) {
		teams := []schedule.Team{team("w", "W"), team("x", "X"), team("y", "Y")}
		first := schedule.GenerateMatchups("season-1", teams)
		second := schedule.GenerateMatchups("season-1", teams)
		assert.Equal(t, first, second)
	})
}

func TestMatchupID(t *testing.T) {
	assert.Equal(t,
		schedule.MatchupID("s", "team-a", "team-b"),
		schedule.MatchupID("s", "team-b", "team-a"),
		"id is independent of pair order")
	assert.NotEqual(t,
		schedule.MatchupID("s1", "team-a", "team-b"),
		schedule.MatchupID("s2", "team-a", "team-b"),
		"id is scoped to the season")
}
