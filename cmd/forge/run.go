package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"content-forge/config"
	"content-forge/markdown"
	"content-forge/models"
	"content-forge/services"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pipeline for a topic and export drafts",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		outDir, _ := cmd.Flags().GetString("out")
		includeDuplicates, _ := cmd.Flags().GetBool("include-duplicates")

		if count <= 0 {
			count = config.GetConfig().DefaultPerSourceCount
		}

		svc, err := services.NewGeminiForgeService(cmd.Context())
		if err != nil {
			return err
		}

		result, err := svc.Generate(cmd.Context(), topic, count)
		if err != nil {
			printReport(result.Report)
			return err
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}

		written := 0
		for _, item := range result.Items {
			if item.IsDuplicate && !includeDuplicates {
				continue
			}
			path := filepath.Join(outDir, markdown.DraftFilename(item))
			if err := os.WriteFile(path, []byte(item.Markdown), 0o644); err != nil {
				return fmt.Errorf("failed to write draft %s: %w", path, err)
			}
			fmt.Printf("wrote %s\n", path)
			written++
		}

		printReport(result.Report)
		fmt.Printf("drafts written: %d\n", written)
		return nil
	},
}

func printReport(report *models.RunReport) {
	fmt.Printf("run %s\n", report.RunID)
	fmt.Printf("items fetched: %d\n", report.TotalItemsFetched)
	for source, n := range report.ItemsPerSource {
		fmt.Printf("  %s: %d\n", source, n)
	}
	fmt.Printf("duplicates found: %d\n", report.DuplicatesFound)
	for _, e := range report.Errors {
		fmt.Printf("error: %s\n", e)
	}
	for _, gc := range report.GroundingChunks {
		fmt.Printf("source: %s (%s)\n", gc.Title, gc.URI)
	}
}

func init() {
	runCmd.Flags().String("topic", "", "topic to generate content drafts for")
	runCmd.Flags().Int("count", 0, "items per source (defaults to config)")
	runCmd.Flags().String("out", "drafts", "output directory for markdown drafts")
	runCmd.Flags().Bool("include-duplicates", false, "also export items flagged as duplicates")
	runCmd.MarkFlagRequired("topic")

	rootCmd.AddCommand(runCmd)
}
