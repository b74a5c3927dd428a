package autosave

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/metrics"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

type fakeSaver struct {
	mu    sync.Mutex
	calls []league.PlacementRecord
	count int
	err   error
}

func (f *fakeSaver) SaveSchedule(seasonID string, events []league.EventRecord, placements []league.PlacementRecord, dryRun bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	f.calls = append(f.calls, placements...)
	return f.err
}

func (f *fakeSaver) saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func dirtyBoard(t *testing.T) *schedule.Board {
	t.Helper()
	board := schedule.NewBoard()
	board.Initialize([]*schedule.Event{schedule.NewEvent("e1", "s1", "Night 1", "2026-09-04", 6)}, nil)
	board.AddEvent("Night 2", "2026-09-11", 6)
	require.True(t, board.Dirty())
	return board
}

func TestFlushSavesDirtyBoard(t *testing.T) {
	board := dirtyBoard(t)
	saver := &fakeSaver{}
	metr := metrics.NewMock()
	d := New("s1", board, saver, metr, time.Hour)

	require.NoError(t, d.Flush())

	assert.Equal(t, 1, saver.saves())
	assert.False(t, board.Dirty())
	assert.False(t, board.LastSavedAt().IsZero())
	assert.Equal(t, 1, metr.AutosaveRuns())
	assert.Equal(t, 0, metr.AutosaveFailed())
}

func TestFlushSkipsCleanBoard(t *testing.T) {
	board := schedule.NewBoard()
	board.Initialize(nil, nil)
	saver := &fakeSaver{}
	d := New("s1", board, saver, metrics.NewMock(), time.Hour)

	require.NoError(t, d.Flush())
	assert.Equal(t, 0, saver.saves())
}

func TestFailedFlushLeavesBoardDirty(t *testing.T) {
	board := dirtyBoard(t)
	saver := &fakeSaver{err: errors.New("db unavailable")}
	metr := metrics.NewMock()
	d := New("s1", board, saver, metr, time.Hour)

	require.Error(t, d.Flush())

	assert.True(t, board.Dirty(), "a failed save must leave the dirty flag set")
	assert.True(t, board.LastSavedAt().IsZero())
	assert.Equal(t, 1, metr.AutosaveFailed())

	// The next flush retries with the current state.
	saver.err = nil
	require.NoError(t, d.Flush())
	assert.False(t, board.Dirty())
}

func TestPeriodicFlush(t *testing.T) {
	board := dirtyBoard(t)
	saver := &fakeSaver{}
	d := New("s1", board, saver, metrics.NewMock(), 10*time.Millisecond)

	d.Start()
	defer d.Stop()

	require.Eventually(t, func() bool {
		return saver.saves() == 1
	}, time.Second, 5*time.Millisecond)

	d.Lock()
	dirty := board.Dirty()
	d.Unlock()
	assert.False(t, dirty)
}

func TestStopFlushesPendingChanges(t *testing.T) {
	board := dirtyBoard(t)
	saver := &fakeSaver{}
	d := New("s1", board, saver, metrics.NewMock(), time.Hour)

	d.Start()
	d.Stop()

	assert.Equal(t, 1, saver.saves())
	assert.False(t, board.Dirty())
}
