package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyExists is returned when matchup generation is attempted for a
	// season that already has matchups. Callers should regenerate instead.
	ErrAlreadyExists = errors.New("schedule: matchups already exist for season")

	// ErrSlotOccupied is returned when a matchup is dropped on a slot that
	// already holds another matchup.
	ErrSlotOccupied = errors.New("schedule: target slot is already occupied")
)

// TimeConflictError reports the single hard invariant of the scheduler: a team
// may never be placed in two courts at the same slot index within one event.
type TimeConflictError struct {
	EventID   string
	SlotIndex int
	Teams     []string
}

func (e *TimeConflictError) Error() string {
	return fmt.Sprintf("time conflict at slot %d: %s already playing at this time",
		e.SlotIndex, strings.Join(e.Teams, ", "))
}

// NotFoundError reports an unknown event, court, slot or matchup identifier.
// It indicates a caller bug and is surfaced but never fatal.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
