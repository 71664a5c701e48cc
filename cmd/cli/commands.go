package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(scoreboardsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var scoreboardsCmd = &cobra.Command{
	Use:   "scoreboards",
	Short: "List the configured scoreboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/scoreboards")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List all tennis matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tennis")
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the most recently updated match",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tennis/current")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("X-API-Key", apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Println(string(body))
	return nil
}
