package league_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/league-scheduler/internal/database"
	"github.com/mauv0809/league-scheduler/internal/league"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := league.New(db)
	teardown := func() {
		dbTeardown()
	}

	return store, db, teardown
}

// seedSeason inserts a season, one category and the given teams, all assigned
// to the season.
func seedSeason(t *testing.T, store league.Store, seasonID string, teams ...league.TeamInfo) {
	t.Helper()

	require.NoError(t, store.UpsertSeason(league.Season{ID: seasonID, Name: "Test Season"}))
	require.NoError(t, store.UpsertCategories([]league.Category{{ID: "cat-1", Name: "Division 1"}}))
	require.NoError(t, store.UpsertTeams(teams))

	ids := make([]string, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.ID)
	}
	require.NoError(t, store.AssignTeamsToSeason(seasonID, ids))
}

func TestSeasonTeams(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1",
		league.TeamInfo{ID: "t2", Name: "Bears", CategoryID: "cat-1", UnavailableDates: "2026-09-04"},
		league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1", LongTravel: true},
	)

	teams, err := store.GetSeasonTeams("s1")
	require.NoError(t, err)
	require.Len(t, teams, 2)

	// Ordered by category, name, id for deterministic generation.
	assert.Equal(t, "Aces", teams[0].Name)
	assert.True(t, teams[0].LongTravel)
	assert.Equal(t, "Bears", teams[1].Name)
	assert.Equal(t, "2026-09-04", teams[1].UnavailableDates)
}

func TestUpsertTeamsUpdatesExistingRows(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1", league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1"})

	require.NoError(t, store.UpsertTeams([]league.TeamInfo{
		{ID: "t1", Name: "Aces Renamed", CategoryID: "cat-1", UnavailableDates: "2026-10-01"},
	}))

	teams, err := store.GetSeasonTeams("s1")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Aces Renamed", teams[0].Name)
	assert.Equal(t, "2026-10-01", teams[0].UnavailableDates)
}

func TestScheduleConfigDefaults(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	cfg, err := store.GetScheduleConfig("s1")
	require.NoError(t, err)
	assert.Equal(t, "19:00", cfg.StartTime)
	assert.Equal(t, 6, cfg.SlotsPerEvening)
	assert.Equal(t, 45, cfg.SlotMinutes)
}

func TestScheduleConfigRoundTrip(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1", league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1"})

	require.NoError(t, store.SetScheduleConfig(league.ScheduleConfig{
		SeasonID: "s1", StartTime: "16:15", SlotsPerEvening: 8, SlotMinutes: 45,
	}))

	cfg, err := store.GetScheduleConfig("s1")
	require.NoError(t, err)
	assert.Equal(t, "16:15", cfg.StartTime)
	assert.Equal(t, 8, cfg.SlotsPerEvening)
}

func TestInsertAndCountMatchups(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1",
		league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1"},
		league.TeamInfo{ID: "t2", Name: "Bears", CategoryID: "cat-1"},
	)

	require.NoError(t, store.InsertMatchups([]league.MatchupRecord{
		{ID: "m1", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2"},
	}))

	count, err := store.CountMatchups("s1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	matchups, err := store.GetMatchups("s1")
	require.NoError(t, err)
	require.Len(t, matchups, 1)
	assert.False(t, matchups[0].Placed())
}

func TestDeleteMatchupsForSeasonIsScoped(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1",
		league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1"},
		league.TeamInfo{ID: "t2", Name: "Bears", CategoryID: "cat-1"},
	)
	require.NoError(t, store.UpsertSeason(league.Season{ID: "s2", Name: "Other Season"}))
	require.NoError(t, store.AssignTeamsToSeason("s2", []string{"t1", "t2"}))

	require.NoError(t, store.InsertMatchups([]league.MatchupRecord{
		{ID: "m1", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2"},
		{ID: "m2", SeasonID: "s2", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2"},
	}))

	require.NoError(t, store.DeleteMatchupsForSeason("s1"))

	count, err := store.CountMatchups("s1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = store.CountMatchups("s2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSaveScheduleAppliesPlacements(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1",
		league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1"},
		league.TeamInfo{ID: "t2", Name: "Bears", CategoryID: "cat-1"},
	)
	require.NoError(t, store.InsertMatchups([]league.MatchupRecord{
		{ID: "m1", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2"},
	}))

	eventID := "e1"
	courtID := "A"
	slot := 0
	err := store.SaveSchedule("s1",
		[]league.EventRecord{{ID: "e1", SeasonID: "s1", Name: "Game night 2026-09-04", Date: "2026-09-04"}},
		[]league.PlacementRecord{{MatchupID: "m1", EventID: &eventID, CourtID: &courtID, SlotIndex: &slot}},
	)
	require.NoError(t, err)

	events, err := store.GetEvents("s1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2026-09-04", events[0].Date)

	matchups, err := store.GetMatchups("s1")
	require.NoError(t, err)
	require.Len(t, matchups, 1)
	require.True(t, matchups[0].Placed())
	assert.Equal(t, "e1", *matchups[0].EventID)
	assert.Equal(t, "A", *matchups[0].CourtID)
	assert.Equal(t, 0, *matchups[0].SlotIndex)
}

func TestSaveScheduleRemovesDroppedEvents(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1",
		league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1"},
		league.TeamInfo{ID: "t2", Name: "Bears", CategoryID: "cat-1"},
	)
	require.NoError(t, store.InsertMatchups([]league.MatchupRecord{
		{ID: "m1", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2"},
	}))

	eventID := "e1"
	courtID := "A"
	slot := 0
	require.NoError(t, store.SaveSchedule("s1",
		[]league.EventRecord{
			{ID: "e1", SeasonID: "s1", Name: "Night 1", Date: "2026-09-04"},
			{ID: "e2", SeasonID: "s1", Name: "Night 2", Date: "2026-09-11"},
		},
		[]league.PlacementRecord{{MatchupID: "m1", EventID: &eventID, CourtID: &courtID, SlotIndex: &slot}},
	))

	// Save again with e1 gone and the matchup unscheduled.
	require.NoError(t, store.SaveSchedule("s1",
		[]league.EventRecord{{ID: "e2", SeasonID: "s1", Name: "Night 2", Date: "2026-09-11"}},
		[]league.PlacementRecord{{MatchupID: "m1"}},
	))

	events, err := store.GetEvents("s1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e2", events[0].ID)

	matchups, err := store.GetMatchups("s1")
	require.NoError(t, err)
	require.Len(t, matchups, 1)
	assert.False(t, matchups[0].Placed())
}

func TestSaveScheduleUnknownMatchupRollsBack(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedSeason(t, store, "s1",
		league.TeamInfo{ID: "t1", Name: "Aces", CategoryID: "cat-1"},
		league.TeamInfo{ID: "t2", Name: "Bears", CategoryID: "cat-1"},
	)

	eventID := "e1"
	courtID := "A"
	slot := 0
	err := store.SaveSchedule("s1",
		[]league.EventRecord{{ID: "e1", SeasonID: "s1", Name: "Night 1", Date: "2026-09-04"}},
		[]league.PlacementRecord{{MatchupID: "missing", EventID: &eventID, CourtID: &courtID, SlotIndex: &slot}},
	)
	require.Error(t, err)

	// The event upsert from the failed save must not stick.
	events, err := store.GetEvents("s1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestBuildBoardState(t *testing.T) {
	eventID := "e1"
	courtID := "A"
	slot := 2

	groupID := "g1"
	roster := []league.TeamInfo{
		{ID: "t1", Name: "Aces", CategoryID: "cat-1", GroupID: &groupID},
		{ID: "t2", Name: "Bears", CategoryID: "cat-1"},
		{ID: "t3", Name: "Crows", CategoryID: "cat-1"},
	}
	events := []league.EventRecord{{ID: "e1", SeasonID: "s1", Name: "Night 1", Date: "2026-09-04"}}
	matchups := []league.MatchupRecord{
		{ID: "m1", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2", EventID: &eventID, CourtID: &courtID, SlotIndex: &slot},
		{ID: "m2", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t3"},
	}

	evs, unscheduled := league.BuildBoardState(events, matchups, roster, 6)
	require.Len(t, evs, 1)
	require.Len(t, unscheduled, 1)
	assert.Equal(t, "m2", unscheduled[0].ID)

	court, ok := evs[0].Court("A")
	require.True(t, ok)
	require.NotNil(t, court.Slots[2])
	assert.Equal(t, "m1", court.Slots[2].ID)
	assert.Equal(t, "Aces", court.Slots[2].TeamA.Name)
	assert.Equal(t, "g1", court.Slots[2].TeamA.GroupID)
}

func TestBuildBoardStateDanglingPlacement(t *testing.T) {
	eventID := "gone"
	courtID := "A"
	slot := 0

	matchups := []league.MatchupRecord{
		{ID: "m1", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2", EventID: &eventID, CourtID: &courtID, SlotIndex: &slot},
	}

	evs, unscheduled := league.BuildBoardState(nil, matchups, nil, 6)
	assert.Empty(t, evs)
	require.Len(t, unscheduled, 1)
	assert.Nil(t, unscheduled[0].Placement)
}

func TestBuildBoardStateGrowsSlotsToFit(t *testing.T) {
	eventID := "e1"
	courtID := "B"
	slot := 7

	events := []league.EventRecord{{ID: "e1", SeasonID: "s1", Name: "Night 1", Date: "2026-09-04"}}
	matchups := []league.MatchupRecord{
		{ID: "m1", SeasonID: "s1", CategoryID: "cat-1", TeamAID: "t1", TeamBID: "t2", EventID: &eventID, CourtID: &courtID, SlotIndex: &slot},
	}

	evs, unscheduled := league.BuildBoardState(events, matchups, nil, 6)
	require.Len(t, evs, 1)
	assert.Empty(t, unscheduled)
	assert.Equal(t, 8, evs[0].SlotCount())

	court, ok := evs[0].Court("B")
	require.True(t, ok)
	require.NotNil(t, court.Slots[7])
}
