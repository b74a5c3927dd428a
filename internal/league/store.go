package league

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a new Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) UpsertSeason(season Season) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO seasons (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name;
	`, season.ID, season.Name)
	if err != nil {
		return fmt.Errorf("failed to upsert season %s: %w", season.ID, err)
	}
	return nil
}

func (s *store) UpsertCategories(categories []Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, c := range categories {
		if _, err := tx.Exec(`
			INSERT INTO categories (id, name) VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name;
		`, c.ID, c.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert category %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

func (s *store) UpsertGroups(groups []Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, g := range groups {
		if _, err := tx.Exec(`
			INSERT INTO groups (id, season_id, category_id, name) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				season_id = excluded.season_id,
				category_id = excluded.category_id,
				name = excluded.name;
		`, g.ID, g.SeasonID, g.CategoryID, g.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert group %s: %w", g.ID, err)
		}
	}
	return tx.Commit()
}

func (s *store) UpsertTeams(teams []TeamInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO teams (id, name, category_id, group_id, unavailable_dates, long_travel)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category_id = excluded.category_id,
			group_id = excluded.group_id,
			unavailable_dates = excluded.unavailable_dates,
			long_travel = excluded.long_travel;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range teams {
		if _, err := stmt.Exec(t.ID, t.Name, t.CategoryID, t.GroupID, t.UnavailableDates, t.LongTravel); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert team %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func (s *store) AssignTeamsToSeason(seasonID string, teamIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, id := range teamIDs {
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO season_teams (season_id, team_id) VALUES (?, ?);
		`, seasonID, id); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to assign team %s to season %s: %w", id, seasonID, err)
		}
	}
	return tx.Commit()
}

// GetSeasonTeams returns the season's roster in a stable order (category, then
// team name, then id) so that matchup generation is deterministic.
func (s *store) GetSeasonTeams(seasonID string) ([]TeamInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.category_id, t.group_id, t.unavailable_dates, t.long_travel
		FROM teams t
		JOIN season_teams st ON st.team_id = t.id
		WHERE st.season_id = ?
		ORDER BY t.category_id, t.name, t.id
	`, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []TeamInfo
	for rows.Next() {
		var t TeamInfo
		var groupID sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.CategoryID, &groupID, &t.UnavailableDates, &t.LongTravel); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		if groupID.Valid {
			t.GroupID = &groupID.String
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetScheduleConfig returns the season's schedule config, falling back to the
// league-wide defaults when none has been stored.
func (s *store) GetScheduleConfig(seasonID string) (ScheduleConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := ScheduleConfig{SeasonID: seasonID, StartTime: "19:00", SlotsPerEvening: 6, SlotMinutes: 45}
	err := s.db.QueryRow(`
		SELECT start_time, slots_per_evening, slot_minutes FROM schedule_config WHERE season_id = ?
	`, seasonID).Scan(&cfg.StartTime, &cfg.SlotsPerEvening, &cfg.SlotMinutes)
	if err != nil && err != sql.ErrNoRows {
		return cfg, fmt.Errorf("failed to read schedule config: %w", err)
	}
	return cfg, nil
}

func (s *store) SetScheduleConfig(cfg ScheduleConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO schedule_config (season_id, start_time, slots_per_evening, slot_minutes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(season_id) DO UPDATE SET
			start_time = excluded.start_time,
			slots_per_evening = excluded.slots_per_evening,
			slot_minutes = excluded.slot_minutes;
	`, cfg.SeasonID, cfg.StartTime, cfg.SlotsPerEvening, cfg.SlotMinutes)
	if err != nil {
		return fmt.Errorf("failed to set schedule config: %w", err)
	}
	return nil
}

func (s *store) CountMatchups(seasonID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM matchups WHERE season_id = ?`, seasonID).Scan(&count)
	return count, err
}

func (s *store) InsertMatchups(matchups []MatchupRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO matchups (id, season_id, category_id, team_a_id, team_b_id, event_id, court_id, slot_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, m := range matchups {
		if _, err := stmt.Exec(m.ID, m.SeasonID, m.CategoryID, m.TeamAID, m.TeamBID, m.EventID, m.CourtID, m.SlotIndex); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert matchup %s: %w", m.ID, err)
		}
	}
	return tx.Commit()
}

func (s *store) DeleteMatchupsForSeason(seasonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM matchups WHERE season_id = ?`, seasonID)
	if err != nil {
		return fmt.Errorf("failed to delete matchups for season %s: %w", seasonID, err)
	}
	return nil
}

func (s *store) GetMatchups(seasonID string) ([]MatchupRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, season_id, category_id, team_a_id, team_b_id, event_id, court_id, slot_index
		FROM matchups
		WHERE season_id = ?
		ORDER BY category_id, id
	`, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matchups []MatchupRecord
	for rows.Next() {
		var m MatchupRecord
		var eventID, courtID sql.NullString
		var slotIndex sql.NullInt64
		if err := rows.Scan(&m.ID, &m.SeasonID, &m.CategoryID, &m.TeamAID, &m.TeamBID, &eventID, &courtID, &slotIndex); err != nil {
			log.Error("Failed to scan matchup row", "error", err)
			continue
		}
		if eventID.Valid && courtID.Valid && slotIndex.Valid {
			idx := int(slotIndex.Int64)
			m.EventID = &eventID.String
			m.CourtID = &courtID.String
			m.SlotIndex = &idx
		}
		matchups = append(matchups, m)
	}
	return matchups, rows.Err()
}

func (s *store) GetEvents(seasonID string) ([]EventRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, season_id, name, event_date FROM events
		WHERE season_id = ?
		ORDER BY event_date, id
	`, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []EventRecord
	for rows.Next() {
		var e EventRecord
		if err := rows.Scan(&e.ID, &e.SeasonID, &e.Name, &e.Date); err != nil {
			log.Error("Failed to scan event row", "error", err)
			continue
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// SaveSchedule persists the full board state in one transaction: the event
// list replaces the season's events and every placement triple is applied.
// Either all placements for the call succeed or none do.
func (s *store) SaveSchedule(seasonID string, events []EventRecord, placements []PlacementRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, e := range events {
		if _, err := tx.Exec(`
			INSERT INTO events (id, season_id, name, event_date) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				event_date = excluded.event_date;
		`, e.ID, seasonID, e.Name, e.Date); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert event %s: %w", e.ID, err)
		}
	}

	for _, p := range placements {
		res, err := tx.Exec(`
			UPDATE matchups SET event_id = ?, court_id = ?, slot_index = ?
			WHERE id = ? AND season_id = ?;
		`, p.EventID, p.CourtID, p.SlotIndex, p.MatchupID, seasonID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to place matchup %s: %w", p.MatchupID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return err
		}
		if affected == 0 {
			tx.Rollback()
			return fmt.Errorf("matchup %s not found in season %s", p.MatchupID, seasonID)
		}
	}

	// Events removed on the board are removed here too, after their
	// placements have been cleared by the placement updates above. Anything
	// still pointing at a removed event is unscheduled defensively so the
	// delete cannot orphan a matchup.
	if err := s.deleteMissingEvents(tx, seasonID, events); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *store) deleteMissingEvents(tx *sql.Tx, seasonID string, keep []EventRecord) error {
	args := make([]any, 0, len(keep)+1)
	args = append(args, seasonID)
	placeholders := make([]string, 0, len(keep))
	for _, e := range keep {
		placeholders = append(placeholders, "?")
		args = append(args, e.ID)
	}

	notIn := ""
	if len(placeholders) > 0 {
		notIn = fmt.Sprintf(" AND event_id IN (SELECT id FROM events WHERE season_id = ? AND id NOT IN (%s))", strings.Join(placeholders, ","))
		_, err := tx.Exec(`
			UPDATE matchups SET event_id = NULL, court_id = NULL, slot_index = NULL
			WHERE season_id = ?`+notIn, append([]any{seasonID}, args...)...)
		if err != nil {
			return fmt.Errorf("failed to unschedule matchups of removed events: %w", err)
		}
		_, err = tx.Exec(fmt.Sprintf(`
			DELETE FROM events WHERE season_id = ? AND id NOT IN (%s)`, strings.Join(placeholders, ",")), args...)
		if err != nil {
			return fmt.Errorf("failed to delete removed events: %w", err)
		}
		return nil
	}

	if _, err := tx.Exec(`
		UPDATE matchups SET event_id = NULL, court_id = NULL, slot_index = NULL
		WHERE season_id = ? AND event_id IS NOT NULL`, seasonID); err != nil {
		return fmt.Errorf("failed to unschedule matchups of removed events: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM events WHERE season_id = ?`, seasonID); err != nil {
		return fmt.Errorf("failed to delete removed events: %w", err)
	}
	return nil
}
