package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchupsGenerated EventType = "matchups-generated"
	EventScheduleDrafted   EventType = "schedule-drafted"
	EventScheduleSaved     EventType = "schedule-saved"
)

// MatchupsGeneratedPayload is published after a generation run.
type MatchupsGeneratedPayload struct {
	SeasonID string `msgpack:"season_id"`
	Count    int    `msgpack:"count"`
}

// ScheduleDraftedPayload is published after an automatic scheduling run.
type ScheduleDraftedPayload struct {
	SeasonID string `msgpack:"season_id"`
	Placed   int    `msgpack:"placed"`
	Unplaced int    `msgpack:"unplaced"`
}

// ScheduleSavedPayload is published after a schedule save.
type ScheduleSavedPayload struct {
	SeasonID   string `msgpack:"season_id"`
	Events     int    `msgpack:"events"`
	Placements int    `msgpack:"placements"`
}
