package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/hip/internal/api"
	"github.com/user/hip/internal/config"
)

var (
	eventsQuery     string
	eventsCategory  string
	eventsStartYear int
	eventsEndYear   int
	eventsLimit     int
	eventsJSON      bool
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List history events",
	Long:  "List events from the site, filtered by day key, free-text query, category, or year range.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Unlike the quiz, an unscoped events listing covers the whole
		// dataset rather than today.
		var dayKey string
		if flagDate != "" || flagMMDD != "" {
			dayKey = resolveDayKey()
		}

		client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, cfg.Logger())
		events, err := client.FetchEvents(context.Background(), api.EventParams{
			DayKey:    dayKey,
			Query:     eventsQuery,
			Category:  eventsCategory,
			StartYear: eventsStartYear,
			EndYear:   eventsEndYear,
			Limit:     eventsLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch events: %w", err)
		}

		if eventsJSON {
			data, err := json.MarshalIndent(events, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}
		for i, ev := range events {
			fmt.Printf("%d. %s (%d)\n", i+1, ev.Title, ev.Year)
			if ev.Description != "" {
				fmt.Printf("   %s\n", truncate(ev.Description, 100))
			}
			fmt.Println()
		}
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func init() {
	eventsCmd.Flags().StringVarP(&eventsQuery, "query", "Q", "", "Free-text search query")
	eventsCmd.Flags().StringVar(&eventsCategory, "category", "", "Category filter")
	eventsCmd.Flags().IntVar(&eventsStartYear, "start-year", 0, "Earliest year to include")
	eventsCmd.Flags().IntVar(&eventsEndYear, "end-year", 0, "Latest year to include")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 0, "Maximum number of events")
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(eventsCmd)
}
