package schedule

// Court identifiers are fixed: every event has exactly two courts.
const (
	CourtA = "A"
	CourtB = "B"

	CourtsPerEvent = 2
)

// DateLayout is the wire format for all calendar dates in the scheduler.
const DateLayout = "2006-01-02"

// Team is a read-only reference to a team as seen by the scheduling core.
// Teams are created and edited elsewhere; the core never mutates them.
type Team struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	CategoryID       string `json:"category_id"`
	GroupID          string `json:"group_id,omitempty"` // empty means no group
	UnavailableDates string `json:"unavailable_dates"`  // comma-separated YYYY-MM-DD
	LongTravel       bool   `json:"long_travel"`
}

// Placement identifies where and when a matchup is scheduled.
// A matchup is either fully placed (all three fields set) or unscheduled (nil
// Placement); partial placement is never representable.
type Placement struct {
	EventID   string `json:"event_id"`
	CourtID   string `json:"court_id"`
	SlotIndex int    `json:"slot_index"`
}

// Matchup is an unordered pairing of two teams within a category. TeamA/TeamB
// ordering is presentational only and carries no home/away meaning.
type Matchup struct {
	ID         string     `json:"id"`
	SeasonID   string     `json:"season_id"`
	CategoryID string     `json:"category_id"`
	TeamA      Team       `json:"team_a"`
	TeamB      Team       `json:"team_b"`
	Placement  *Placement `json:"placement,omitempty"`
}

// Placed reports whether the matchup has been assigned to a slot.
func (m Matchup) Placed() bool {
	return m.Placement != nil
}

// HasTeam reports whether either side of the matchup is the given team.
func (m Matchup) HasTeam(teamID string) bool {
	return m.TeamA.ID == teamID || m.TeamB.ID == teamID
}

// Court is an ordered sequence of slots. A nil slot entry is open; slot order
// is the source of truth for a matchup's effective start time.
type Court struct {
	ID    string     `json:"id"`
	Slots []*Matchup `json:"slots"`
}

// filled counts occupied slots.
func (c *Court) filled() int {
	n := 0
	for _, s := range c.Slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Event is a dated game evening with exactly two courts.
type Event struct {
	ID       string                `json:"id"`
	SeasonID string                `json:"season_id"`
	Name     string                `json:"name"`
	Date     string                `json:"date"` // YYYY-MM-DD
	Courts   [CourtsPerEvent]Court `json:"courts"`
}

// NewEvent creates an event with both courts holding slotCount open slots.
func NewEvent(id, seasonID, name, date string, slotCount int) *Event {
	return &Event{
		ID:       id,
		SeasonID: seasonID,
		Name:     name,
		Date:     date,
		Courts: [CourtsPerEvent]Court{
			{ID: CourtA, Slots: make([]*Matchup, slotCount)},
			{ID: CourtB, Slots: make([]*Matchup, slotCount)},
		},
	}
}

// Court returns the court with the given identifier.
func (e *Event) Court(id string) (*Court, bool) {
	for i := range e.Courts {
		if e.Courts[i].ID == id {
			return &e.Courts[i], true
		}
	}
	return nil, false
}

// AddSlot appends one open slot to both courts. Slots are append-only so that
// existing placements can never be orphaned.
func (e *Event) AddSlot() {
	for i := range e.Courts {
		e.Courts[i].Slots = append(e.Courts[i].Slots, nil)
	}
}

// SlotCount returns the number of slots per court.
func (e *Event) SlotCount() int {
	return len(e.Courts[0].Slots)
}

// PlacedMatchups returns every matchup currently placed in the event, court A
// before court B, slot index ascending.
func (e *Event) PlacedMatchups() []Matchup {
	var out []Matchup
	for i := range e.Courts {
		for _, m := range e.Courts[i].Slots {
			if m != nil {
				out = append(out, *m)
			}
		}
	}
	return out
}
