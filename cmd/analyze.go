// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reposcore/reposcore/internal/domain"
	"github.com/reposcore/reposcore/internal/gateway"
	"github.com/reposcore/reposcore/internal/report"
	"github.com/reposcore/reposcore/internal/usecase"
)

// One output file per report format.
var outputFiles = map[string]string{
	"csv":   "scores.csv",
	"table": "scores.txt",
	"chart": "scores.html",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scores repository participation and writes report files",
	Long: `Collects merged pull requests and issues for the specified repository,
computes weighted participation scores per contributor, and writes the result
as a CSV file, a text table, and an HTML bar chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		repo, _ := cmd.Flags().GetString("repo")
		outputDir, _ := cmd.Flags().GetString("output")
		formats, _ := cmd.Flags().GetStringSlice("format")
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
			os.Exit(1)
		}
		for _, format := range formats {
			if _, ok := outputFiles[format]; !ok {
				fmt.Fprintf(os.Stderr, "Unknown format %q. Valid formats: csv, table, chart.\n", format)
				os.Exit(1)
			}
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		collector := usecase.NewCollector(githubGateway, logger)
		scorer := usecase.NewScorer(logger)

		// A failed collection aborts before any report is written; scores
		// must never be computed from partial data.
		activity, err := collector.Collect(ctx, repo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to collect activity: %v\n", err)
			os.Exit(1)
		}
		scores := scorer.Score(activity)

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
			os.Exit(1)
		}
		for _, format := range formats {
			path := filepath.Join(outputDir, outputFiles[format])
			if err := writeReport(format, path, scores); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to write %s report: %v\n", format, err)
				os.Exit(1)
			}
			fmt.Printf("wrote %s\n", path)
		}
	},
}

func writeReport(format, path string, scores []domain.ParticipantScore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	switch format {
	case "csv":
		err = report.WriteCSV(f, scores)
	case "table":
		err = report.WriteTable(f, scores)
	case "chart":
		err = report.WriteChart(f, scores)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.PersistentFlags().StringP("repo", "r", "", "Target repository as owner/name (required)")
	analyzeCmd.MarkPersistentFlagRequired("repo")
	analyzeCmd.Flags().StringP("output", "o", "results", "Directory for report files")
	analyzeCmd.Flags().StringSlice("format", []string{"csv", "table", "chart"}, "Report formats to write (csv, table, chart)")
}
