package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var (
	dates           []string
	startTime       string
	slotsPerEvening int
)

func init() {
	scheduleCmd.Flags().StringSliceVar(&dates, "date", nil, "Target dates (YYYY-MM-DD), repeatable")
	scheduleCmd.Flags().StringVar(&startTime, "start", "", "First slot start time (HH:MM), defaults to the season config")
	scheduleCmd.Flags().IntVar(&slotsPerEvening, "slots", 0, "Slots per court per evening, defaults to the season config")
	capacityCmd.Flags().IntVar(&slotsPerEvening, "slots", 0, "Slots per court per evening, defaults to the season config")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(regenerateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the season's round-robin matchups",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSeason(); err != nil {
			return err
		}
		return performPostRequest("/generate-matchups", url.Values{"seasonID": {season}}, "")
	},
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Delete and regenerate the season's matchups (destructive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSeason(); err != nil {
			return err
		}
		return performPostRequest("/regenerate-matchups", url.Values{"seasonID": {season}, "confirm": {"true"}}, "")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the automatic scheduler over the given dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSeason(); err != nil {
			return err
		}
		if len(dates) == 0 {
			return errors.New("at least one --date is required")
		}
		body := fmt.Sprintf(`{"season_id": %q, "dates": [%s], "start_time": %q, "slots_per_evening": %d}`,
			season, quoteJoin(dates), startTime, slotsPerEvening)
		return performPostRequest("/generate-schedule", nil, body)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the season's current schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSeason(); err != nil {
			return err
		}
		return performGetRequest("/schedule", url.Values{"seasonID": {season}})
	},
}

var capacityCmd = &cobra.Command{
	Use:   "capacity [dateCount]",
	Short: "Estimate whether the planned evenings can hold the season's matchups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSeason(); err != nil {
			return err
		}
		params := url.Values{"seasonID": {season}, "dates": {args[0]}}
		if slotsPerEvening > 0 {
			params.Set("slots", fmt.Sprintf("%d", slotsPerEvening))
		}
		return performGetRequest("/capacity", params)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

func requireSeason() error {
	if season == "" {
		return errors.New("--season is required")
	}
	return nil
}

func quoteJoin(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, fmt.Sprintf("%q", item))
	}
	return strings.Join(quoted, ", ")
}

func buildURL(endpoint string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	if dryRun {
		params.Set("dry_run", "true")
	}
	u := host + endpoint
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func performGetRequest(endpoint string, params url.Values) error {
	u := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", u)

	resp, err := http.Get(u)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, params url.Values, body string) error {
	u := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", u)

	resp, err := http.Post(u, "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
