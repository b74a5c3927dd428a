package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/mauv0809/league-scheduler/internal/database"
	"github.com/mauv0809/league-scheduler/internal/league"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "league.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	// Remote is optional; when unset the seeder writes to the local file.
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := league.New(db)

	season := league.Season{ID: "season-2026-autumn", Name: "Autumn 2026"}
	if err := store.UpsertSeason(season); err != nil {
		log.Fatalf("Failed to seed season: %s", err)
	}

	categories := []league.Category{
		{ID: "div-1", Name: "Division 1"},
		{ID: "div-2", Name: "Division 2"},
	}
	if err := store.UpsertCategories(categories); err != nil {
		log.Fatalf("Failed to seed categories: %s", err)
	}

	groups := []league.Group{
		{ID: "div-2-north", SeasonID: season.ID, CategoryID: "div-2", Name: "North"},
		{ID: "div-2-south", SeasonID: season.ID, CategoryID: "div-2", Name: "South"},
	}
	if err := store.UpsertGroups(groups); err != nil {
		log.Fatalf("Failed to seed groups: %s", err)
	}

	north := "div-2-north"
	south := "div-2-south"
	teams := []league.TeamInfo{
		{ID: "team-aces", Name: "Aces", CategoryID: "div-1", UnavailableDates: "2026-09-18"},
		{ID: "team-bears", Name: "Bears", CategoryID: "div-1"},
		{ID: "team-crows", Name: "Crows", CategoryID: "div-1", LongTravel: true},
		{ID: "team-drakes", Name: "Drakes", CategoryID: "div-1", UnavailableDates: "2026-09-04, 2026-10-02"},
		{ID: "team-eagles", Name: "Eagles", CategoryID: "div-2", GroupID: &north},
		{ID: "team-foxes", Name: "Foxes", CategoryID: "div-2", GroupID: &north},
		{ID: "team-geese", Name: "Geese", CategoryID: "div-2", GroupID: &north, LongTravel: true},
		{ID: "team-hawks", Name: "Hawks", CategoryID: "div-2", GroupID: &south},
		{ID: "team-ibis", Name: "Ibis", CategoryID: "div-2", GroupID: &south},
		{ID: "team-jays", Name: "Jays", CategoryID: "div-2", GroupID: &south, UnavailableDates: "2026-09-25"},
	}
	if err := store.UpsertTeams(teams); err != nil {
		log.Fatalf("Failed to seed teams: %s", err)
	}

	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	if err := store.AssignTeamsToSeason(season.ID, ids); err != nil {
		log.Fatalf("Failed to assign teams to season: %s", err)
	}

	if err := store.SetScheduleConfig(league.ScheduleConfig{
		SeasonID:        season.ID,
		StartTime:       "19:00",
		SlotsPerEvening: 6,
		SlotMinutes:     45,
	}); err != nil {
		log.Fatalf("Failed to seed schedule config: %s", err)
	}

	fmt.Printf("Seeded season %q with %d teams across %d categories.\n", season.Name, len(teams), len(categories))
	log.Info("Seeding finished.")
}
