package slack

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/mauv0809/league-scheduler/internal/metrics"
	"github.com/mauv0809/league-scheduler/internal/notifier"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

var _ notifier.Notifier = (*SlackClient)(nil)

// NewClient creates a new Slack client wrapper.
func NewClient(token, channelID string, metrics metrics.Metrics) *SlackClient {
	api := slack.New(token)
	return &SlackClient{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewClientWithAPI creates a new Slack client with a custom API client. Used for testing.
func NewClientWithAPI(api *slack.Client, channelID string, metrics metrics.Metrics) *SlackClient {
	return &SlackClient{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// SendScheduleSummary posts the outcome of a scheduling run to the configured channel.
func (c *SlackClient) SendScheduleSummary(seasonID string, placed, unplaced []schedule.Matchup, dryRun bool) error {
	msg := c.FormatScheduleSummary(seasonID, placed, unplaced)
	return c.sendMessage(msg, dryRun)
}

// SendSchedulePublished announces a saved schedule's event calendar.
func (c *SlackClient) SendSchedulePublished(seasonID string, events []*schedule.Event, dryRun bool) error {
	msg := c.FormatSchedulePublished(seasonID, events)
	return c.sendMessage(msg, dryRun)
}

func (c *SlackClient) sendMessage(message slack.Message, dryRun bool) error {
	if c.api == nil || c.channelID == "" {
		log.Warn("Slack client or channel ID is not configured. Skipping notification.")
		return errors.New("slack client or channel ID is not configured")
	}

	if dryRun {
		log.Info("Dry run mode: Slack notification not sent.", "msg", message)
		return nil
	}

	_, _, err := c.api.PostMessage(c.channelID, slack.MsgOptionBlocks(message.Blocks.BlockSet...))
	if err != nil {
		log.Error("Failed to send Slack message", "error", err)
		if c.metrics != nil {
			c.metrics.IncSlackNotifFailed()
		}
		return err
	}
	if c.metrics != nil {
		c.metrics.IncSlackNotifSent()
	}
	return nil
}
