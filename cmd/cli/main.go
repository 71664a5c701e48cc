package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host   string
	apiKey string
)

var rootCmd = &cobra.Command{
	Use:   "courtcast-cli",
	Short: "A CLI to interact with the courtcast server",
	Long: `A command-line interface for making requests to the various endpoints
of the courtcast application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:3000", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "dev-api-key-12345", "The API key sent with each request")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
