package autosave

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/metrics"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// Saver persists a board snapshot. Satisfied by the planner.
type Saver interface {
	SaveSchedule(seasonID string, events []league.EventRecord, placements []league.PlacementRecord, dryRun bool) error
}

// Driver periodically flushes a dirty board to persistence. The board itself
// never saves; this driver owns the board-to-store boundary. A failed flush
// leaves the dirty flag and the in-memory state untouched, so the next tick
// retries with the latest state.
type Driver struct {
	seasonID string
	board    *schedule.Board
	saver    Saver
	metrics  metrics.Metrics
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New creates a driver for one board session.
func New(seasonID string, board *schedule.Board, saver Saver, metrics metrics.Metrics, interval time.Duration) *Driver {
	return &Driver{
		seasonID: seasonID,
		board:    board,
		saver:    saver,
		metrics:  metrics,
		interval: interval,
	}
}

// Lock takes the session lock. Callers mutating the board while the driver is
// running must hold it so a flush never sees a half-applied edit.
func (d *Driver) Lock() { d.mu.Lock() }

// Unlock releases the session lock.
func (d *Driver) Unlock() { d.mu.Unlock() }

// Start launches the periodic flush loop. Call Stop to end it.
func (d *Driver) Start() {
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := d.Flush(); err != nil {
					log.Error("Autosave failed", "error", err, "seasonID", d.seasonID)
				}
			case <-d.stop:
				return
			}
		}
	}()
	log.Info("Autosave started", "seasonID", d.seasonID, "interval", d.interval)
}

// Stop ends the loop and makes a best-effort final flush of any unsaved
// changes.
func (d *Driver) Stop() {
	if d.stop != nil {
		close(d.stop)
		<-d.done
	}
	if err := d.Flush(); err != nil {
		log.Error("Final autosave flush failed", "error", err, "seasonID", d.seasonID)
	}
}

// Flush saves the current snapshot if the board is dirty. MarkSaved is only
// called after the save succeeds.
func (d *Driver) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.board.Dirty() {
		return nil
	}

	d.metrics.IncAutosaveRuns()
	events, placements := league.RecordsFromSnapshot(d.seasonID, d.board.Snapshot())
	if err := d.saver.SaveSchedule(d.seasonID, events, placements, false); err != nil {
		d.metrics.IncAutosaveFailed()
		return err
	}
	d.board.MarkSaved()
	log.Debug("Autosave flushed", "seasonID", d.seasonID, "events", len(events), "placements", len(placements))
	return nil
}
