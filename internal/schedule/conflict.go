package schedule

import (
	"fmt"
	"strings"
	"time"
)

// CheckSlot runs the hard double-booking check for placing candidate into the
// given event at slotIndex. It scans the matchups placed at that slot index in
// either court; if any shares a team with the candidate, placement is rejected.
// Matchup IDs in exclude are skipped, which is how a matchup being moved within
// the same event avoids colliding with itself.
//
// A nil return means the placement is allowed.
func CheckSlot(candidate Matchup, event *Event, slotIndex int, exclude map[string]bool) *TimeConflictError {
	var colliding []string
	for i := range event.Courts {
		slots := event.Courts[i].Slots
		if slotIndex < 0 || slotIndex >= len(slots) {
			continue
		}
		other := slots[slotIndex]
		if other == nil || other.ID == candidate.ID || exclude[other.ID] {
			continue
		}
		for _, team := range []Team{other.TeamA, other.TeamB} {
			if candidate.HasTeam(team.ID) {
				colliding = append(colliding, team.Name)
			}
		}
	}
	if len(colliding) == 0 {
		return nil
	}
	return &TimeConflictError{EventID: event.ID, SlotIndex: slotIndex, Teams: colliding}
}

// AvailabilityWarnings runs the soft availability check: for each team in the
// matchup whose declared unavailable-date list contains the event date, a
// warning is produced. Warnings never block placement.
func AvailabilityWarnings(m Matchup, date string) []string {
	var warnings []string
	for _, team := range []Team{m.TeamA, m.TeamB} {
		if teamUnavailableOn(team, date) {
			warnings = append(warnings, fmt.Sprintf("%s is marked unavailable on %s", team.Name, date))
		}
	}
	return warnings
}

// teamUnavailableOn matches the event date against the team's comma-separated
// unavailable-date list. Entries are trimmed and normalized to date-only before
// comparison; unparseable entries are ignored.
func teamUnavailableOn(t Team, date string) bool {
	if t.UnavailableDates == "" {
		return false
	}
	for _, entry := range strings.Split(t.UnavailableDates, ",") {
		if normalizeDate(entry) == date {
			return true
		}
	}
	return false
}

func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Accept date-only and datetime forms.
	if idx := strings.IndexAny(s, "T "); idx > 0 {
		s = s[:idx]
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ""
	}
	return s
}
