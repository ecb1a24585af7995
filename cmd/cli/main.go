package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"workwithme/internal/client"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "workwithme",
	Short: "Terminal client for the How to Work With Me questionnaire",
	Long: `Build and share a "How to Work With Me" profile from the terminal.

The wizard walks through the question catalog one category at a time,
keeps your answers in memory, and submits them in a single update at the
end. Nothing is saved if you quit before the final step.`,
}

func apiClient() *client.Client {
	return client.New(serverURL)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the questionnaire API")

	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(adminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
