package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/mauv0809/league-scheduler/internal/schedule"
)

// FormatScheduleSummary creates the Slack message for a finished scheduling run using Block Kit.
func (c *SlackClient) FormatScheduleSummary(seasonID string, placed, unplaced []schedule.Matchup) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📅 Schedule draft ready 📅", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Season: %s\nPlaced: %d\nUnplaced: %d", seasonID, len(placed), len(unplaced))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if len(unplaced) > 0 {
		var lines []string
		for _, m := range unplaced {
			lines = append(lines, fmt.Sprintf("• %s vs %s", m.TeamA.Name, m.TeamB.Name))
		}
		unplacedText := "Needs manual placement:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", unplacedText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// FormatSchedulePublished creates the Slack message announcing a saved schedule using Block Kit.
func (c *SlackClient) FormatSchedulePublished(seasonID string, events []*schedule.Event) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏐 Schedule published! 🏐", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, ev := range events {
		date := ev.Date
		if t, err := time.Parse(schedule.DateLayout, ev.Date); err == nil {
			date = t.Format("Monday 02 Jan")
		}
		lines = append(lines, fmt.Sprintf("• %s: %d matchups", date, len(ev.PlacedMatchups())))
	}
	if len(lines) > 0 {
		eventsText := "Game nights:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", eventsText, true, false), nil, nil))
	}

	contextText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Season %s", seasonID), true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}
