package schedule

import (
	"time"

	"github.com/google/uuid"
)

// MoveSource identifies where a matchup is being moved from. It is a closed
// union: either a concrete slot or the unscheduled list.
type MoveSource interface {
	isMoveSource()
}

// SlotSource is a move originating from a specific event/court/slot.
type SlotSource struct {
	EventID   string
	CourtID   string
	SlotIndex int
}

// UnscheduledSource is a move originating from the unscheduled list.
type UnscheduledSource struct{}

func (SlotSource) isMoveSource()        {}
func (UnscheduledSource) isMoveSource() {}

// Board is the in-memory placement model for a single editor session. Every
// operation runs synchronously to completion and either commits fully or
// leaves the state untouched; there is no partial failure state. The board
// never talks to persistence itself — it only exposes Dirty and LastSavedAt
// for an external autosave driver.
type Board struct {
	events      []*Event
	unscheduled []Matchup
	active      *Matchup
	dirty       bool
	lastSavedAt time.Time

	now func() time.Time
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{now: time.Now}
}

// Initialize replaces the entire board state, clearing the dirty flag and any
// active matchup. Used on load and reload.
func (b *Board) Initialize(events []*Event, unscheduled []Matchup) {
	b.events = events
	b.unscheduled = append([]Matchup(nil), unscheduled...)
	b.active = nil
	b.dirty = false
}

// Events returns the board's events in display order.
func (b *Board) Events() []*Event { return b.events }

// Unscheduled returns the current unscheduled list.
func (b *Board) Unscheduled() []Matchup { return b.unscheduled }

// Dirty reports whether there are unsaved changes.
func (b *Board) Dirty() bool { return b.dirty }

// LastSavedAt returns the time of the last successful save.
func (b *Board) LastSavedAt() time.Time { return b.lastSavedAt }

// SetActive records the matchup currently mid-drag.
func (b *Board) SetActive(m Matchup) { b.active = &m }

// ClearActive clears the mid-drag matchup.
func (b *Board) ClearActive() { b.active = nil }

// Active returns the matchup currently mid-drag, if any.
func (b *Board) Active() *Matchup { return b.active }

// MarkSaved clears the dirty flag and stamps the save time. Called by the
// autosave driver after persistence succeeds, never by the board itself.
func (b *Board) MarkSaved() {
	b.dirty = false
	b.lastSavedAt = b.now()
}

// MoveToSlot moves a matchup from its source location into the target slot.
// The hard conflict check runs against the target event with the matchup's own
// id excluded, so moving within an event never collides with itself. On any
// failure a typed error is returned and no state changes.
func (b *Board) MoveToSlot(matchupID string, source MoveSource, targetEventID, targetCourtID string, targetSlot int) error {
	m, err := b.matchupAt(matchupID, source)
	if err != nil {
		return err
	}

	event, err := b.event(targetEventID)
	if err != nil {
		return err
	}
	court, ok := event.Court(targetCourtID)
	if !ok {
		return &NotFoundError{Kind: "court", ID: targetCourtID}
	}
	if targetSlot < 0 || targetSlot >= len(court.Slots) {
		return &NotFoundError{Kind: "slot", ID: targetEventID}
	}
	if occupant := court.Slots[targetSlot]; occupant != nil && occupant.ID != m.ID {
		return ErrSlotOccupied
	}

	exclude := map[string]bool{m.ID: true}
	if conflict := CheckSlot(m, event, targetSlot, exclude); conflict != nil {
		return conflict
	}

	// All checks passed; commit atomically.
	b.detach(m.ID, source)
	m.Placement = &Placement{EventID: targetEventID, CourtID: targetCourtID, SlotIndex: targetSlot}
	court.Slots[targetSlot] = &m
	b.dirty = true
	return nil
}

// MoveToUnscheduled removes a matchup from its slot and appends it to the
// unscheduled list. Idempotent: unscheduling an already-unscheduled matchup
// does not duplicate it.
func (b *Board) MoveToUnscheduled(matchupID string, source MoveSource) error {
	switch src := source.(type) {
	case UnscheduledSource:
		if _, ok := b.findUnscheduled(matchupID); !ok {
			return &NotFoundError{Kind: "matchup", ID: matchupID}
		}
		return nil // already unscheduled; nothing to do
	case SlotSource:
		m, err := b.matchupAt(matchupID, src)
		if err != nil {
			return err
		}
		b.detach(m.ID, src)
		m.Placement = nil
		if _, ok := b.findUnscheduled(m.ID); !ok {
			b.unscheduled = append(b.unscheduled, m)
		}
		b.dirty = true
		return nil
	default:
		return &NotFoundError{Kind: "source", ID: matchupID}
	}
}

// AddEvent creates a new event with the given slot count and appends it.
func (b *Board) AddEvent(name, date string, slotsPerEvening int) *Event {
	ev := NewEvent(uuid.NewString(), b.seasonID(), name, date, slotsPerEvening)
	b.events = append(b.events, ev)
	b.dirty = true
	return ev
}

// DeleteEvent removes an event, first returning every one of its placed
// matchups to the unscheduled list. No matchup is ever destroyed by deleting
// an event.
func (b *Board) DeleteEvent(eventID string) error {
	idx := -1
	for i, ev := range b.events {
		if ev.ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Kind: "event", ID: eventID}
	}

	for _, m := range b.events[idx].PlacedMatchups() {
		m.Placement = nil
		if _, ok := b.findUnscheduled(m.ID); !ok {
			b.unscheduled = append(b.unscheduled, m)
		}
	}
	b.events = append(b.events[:idx], b.events[idx+1:]...)
	b.dirty = true
	return nil
}

// UpdateEvent applies the non-nil fields to an event.
func (b *Board) UpdateEvent(eventID string, name, date *string) error {
	ev, err := b.event(eventID)
	if err != nil {
		return err
	}
	if name != nil {
		ev.Name = *name
	}
	if date != nil {
		ev.Date = *date
	}
	b.dirty = true
	return nil
}

// AddSlot appends one slot to both courts of an event. There is deliberately
// no slot deletion operation: removing slots could orphan placed matchups.
func (b *Board) AddSlot(eventID string) error {
	ev, err := b.event(eventID)
	if err != nil {
		return err
	}
	ev.AddSlot()
	b.dirty = true
	return nil
}

// Snapshot captures the full placement state for persistence: every event and
// every matchup's placement triple (or nil triple when unscheduled).
func (b *Board) Snapshot() Snapshot {
	var snap Snapshot
	for _, ev := range b.events {
		snap.Events = append(snap.Events, EventState{ID: ev.ID, Name: ev.Name, Date: ev.Date})
		for i := range ev.Courts {
			for _, m := range ev.Courts[i].Slots {
				if m != nil {
					p := *m.Placement
					snap.Placements = append(snap.Placements, PlacementState{MatchupID: m.ID, Placement: &p})
				}
			}
		}
	}
	for _, m := range b.unscheduled {
		snap.Placements = append(snap.Placements, PlacementState{MatchupID: m.ID})
	}
	return snap
}

// Snapshot is the serialized board state handed to the persistence driver.
type Snapshot struct {
	Events     []EventState
	Placements []PlacementState
}

// EventState is an event's persistable fields.
type EventState struct {
	ID   string
	Name string
	Date string
}

// PlacementState is one matchup's placement; a nil Placement means
// unscheduled.
type PlacementState struct {
	MatchupID string
	Placement *Placement
}

func (b *Board) event(id string) (*Event, error) {
	for _, ev := range b.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, &NotFoundError{Kind: "event", ID: id}
}

func (b *Board) findUnscheduled(matchupID string) (int, bool) {
	for i, m := range b.unscheduled {
		if m.ID == matchupID {
			return i, true
		}
	}
	return 0, false
}

// matchupAt resolves and validates the matchup at a move source without
// mutating anything.
func (b *Board) matchupAt(matchupID string, source MoveSource) (Matchup, error) {
	switch src := source.(type) {
	case UnscheduledSource:
		if i, ok := b.findUnscheduled(matchupID); ok {
			return b.unscheduled[i], nil
		}
		return Matchup{}, &NotFoundError{Kind: "matchup", ID: matchupID}
	case SlotSource:
		ev, err := b.event(src.EventID)
		if err != nil {
			return Matchup{}, err
		}
		court, ok := ev.Court(src.CourtID)
		if !ok {
			return Matchup{}, &NotFoundError{Kind: "court", ID: src.CourtID}
		}
		if src.SlotIndex < 0 || src.SlotIndex >= len(court.Slots) {
			return Matchup{}, &NotFoundError{Kind: "slot", ID: src.EventID}
		}
		m := court.Slots[src.SlotIndex]
		if m == nil || m.ID != matchupID {
			return Matchup{}, &NotFoundError{Kind: "matchup", ID: matchupID}
		}
		return *m, nil
	default:
		return Matchup{}, &NotFoundError{Kind: "source", ID: matchupID}
	}
}

// detach removes the matchup from its (already validated) source location.
func (b *Board) detach(matchupID string, source MoveSource) {
	switch src := source.(type) {
	case UnscheduledSource:
		if i, ok := b.findUnscheduled(matchupID); ok {
			b.unscheduled = append(b.unscheduled[:i], b.unscheduled[i+1:]...)
		}
	case SlotSource:
		if ev, err := b.event(src.EventID); err == nil {
			if court, ok := ev.Court(src.CourtID); ok {
				court.Slots[src.SlotIndex] = nil
			}
		}
	}
}

func (b *Board) seasonID() string {
	if len(b.events) > 0 {
		return b.events[0].SeasonID
	}
	if len(b.unscheduled) > 0 {
		return b.unscheduled[0].SeasonID
	}
	return ""
}
