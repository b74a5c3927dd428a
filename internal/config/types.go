package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName           string
	MigrationsDir    string
	Port             string
	Slack            SlackConfig
	Turso            TursoConfig
	ProjectID string

	// AutosaveInterval is the flush interval a board-editing session host
	// passes to autosave.New. The HTTP server is stateless and does not
	// host a session itself.
	AutosaveInterval time.Duration
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
