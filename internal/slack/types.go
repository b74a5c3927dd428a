package slack

import (
	"github.com/slack-go/slack"

	"github.com/mauv0809/league-scheduler/internal/metrics"
)

// SlackClient is a wrapper around the official slack-go client.
type SlackClient struct {
	api       *slack.Client
	channelID string
	metrics   metrics.Metrics
}
