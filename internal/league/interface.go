package league

// Store defines the interface for interacting with the league's data.
type Store interface {
	UpsertSeason(season Season) error
	UpsertCategories(categories []Category) error
	UpsertGroups(groups []Group) error
	UpsertTeams(teams []TeamInfo) error
	AssignTeamsToSeason(seasonID string, teamIDs []string) error
	GetSeasonTeams(seasonID string) ([]TeamInfo, error)

	GetScheduleConfig(seasonID string) (ScheduleConfig, error)
	SetScheduleConfig(cfg ScheduleConfig) error

	CountMatchups(seasonID string) (int, error)
	InsertMatchups(matchups []MatchupRecord) error
	DeleteMatchupsForSeason(seasonID string) error
	GetMatchups(seasonID string) ([]MatchupRecord, error)

	GetEvents(seasonID string) ([]EventRecord, error)
	SaveSchedule(seasonID string, events []EventRecord, placements []PlacementRecord) error
}
